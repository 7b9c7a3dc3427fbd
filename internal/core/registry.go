package core

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// TrackerRegistry routes tracker operations to the tracker that owns a
// network client.
type TrackerRegistry struct {
	logs     *zap.SugaredLogger
	trackers map[string]*PendingTransactionTracker
}

func NewTrackerRegistry(logger *zap.SugaredLogger, trackers ...*PendingTransactionTracker) *TrackerRegistry {
	r := &TrackerRegistry{
		logs:     logger,
		trackers: make(map[string]*PendingTransactionTracker, len(trackers)),
	}
	for _, t := range trackers {
		r.trackers[t.NetworkClientID()] = t
	}
	return r
}

func (r *TrackerRegistry) Tracker(networkClientID string) (*PendingTransactionTracker, error) {
	t, ok := r.trackers[networkClientID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownNetworkClient, networkClientID)
	}
	return t, nil
}

func (r *TrackerRegistry) StartIfPendingTransactions(networkClientID string) error {
	t, err := r.Tracker(networkClientID)
	if err != nil {
		return err
	}
	t.StartIfPendingTransactions()
	return nil
}

// StartAll refreshes every tracker, typically once the store has been loaded.
func (r *TrackerRegistry) StartAll() {
	for _, t := range r.trackers {
		t.StartIfPendingTransactions()
	}
	r.logs.Infow("trackers refreshed", "count", len(r.trackers))
}

func (r *TrackerRegistry) AddTransactionToPoll(tx Transaction) error {
	t, err := r.Tracker(tx.NetworkClientID)
	if err != nil {
		return err
	}
	t.AddTransactionToPoll(tx)
	return nil
}

func (r *TrackerRegistry) ForceCheckTransaction(ctx context.Context, tx Transaction) error {
	t, err := r.Tracker(tx.NetworkClientID)
	if err != nil {
		return err
	}
	return t.ForceCheckTransaction(ctx, tx)
}

func (r *TrackerRegistry) Close() {
	for _, t := range r.trackers {
		t.Close()
	}
}
