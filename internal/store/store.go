package store

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"sync"
	"time"

	"txwatch/internal/core"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrAlreadyTracked error = errors.New("transaction already tracked")

// Store is the in-memory collection of every known transaction. It is written
// through to the repository and mutated by applying tracker events.
type Store struct {
	logs *zap.SugaredLogger
	repo Repository
	now  func() time.Time

	mu  sync.RWMutex
	txs map[string]core.Transaction

	listenersMu sync.RWMutex
	listeners   []func(core.Transaction)
}

func NewStore(logger *zap.SugaredLogger, repo Repository) *Store {
	return &Store{
		logs: logger,
		repo: repo,
		now:  time.Now,
		txs:  make(map[string]core.Transaction),
	}
}

// OnChange registers fn to be called after a transaction is added, changed or
// removed. Callbacks run outside the store lock.
func (s *Store) OnChange(fn func(core.Transaction)) {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *Store) Load(ctx context.Context) error {
	transactions, err := s.repo.GetAllTransactions(ctx)
	if err != nil {
		return fmt.Errorf("load transactions: %w", err)
	}

	s.mu.Lock()
	for _, tx := range transactions {
		s.txs[tx.ID] = tx
	}
	s.mu.Unlock()

	s.logs.Infow("transactions loaded", "count", len(transactions))
	return nil
}

// Transactions returns a snapshot ordered by creation time.
func (s *Store) Transactions() []core.Transaction {
	s.mu.RLock()
	txs := make([]core.Transaction, 0, len(s.txs))
	for _, tx := range s.txs {
		txs = append(txs, tx.Clone())
	}
	s.mu.RUnlock()

	sort.Slice(txs, func(i, j int) bool {
		if txs[i].CreatedAt.Equal(txs[j].CreatedAt) {
			return txs[i].ID < txs[j].ID
		}
		return txs[i].CreatedAt.Before(txs[j].CreatedAt)
	})
	return txs
}

func (s *Store) Get(id string) (core.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tx, ok := s.txs[id]
	if !ok {
		return core.Transaction{}, fmt.Errorf("%w: %s", core.ErrTransactionNotFound, id)
	}
	return tx.Clone(), nil
}

// Add starts tracking a broadcast transaction. The id is generated when empty.
func (s *Store) Add(ctx context.Context, tx core.Transaction) (core.Transaction, error) {
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	tx.Status = core.StatusSubmitted
	tx.CreatedAt = s.now().UTC()

	s.mu.RLock()
	for _, existing := range s.txs {
		if existing.ID == tx.ID ||
			(tx.Hash != "" && existing.Hash == tx.Hash && existing.NetworkClientID == tx.NetworkClientID) {
			s.mu.RUnlock()
			return core.Transaction{}, fmt.Errorf("%w: %s", ErrAlreadyTracked, existing.ID)
		}
	}
	s.mu.RUnlock()

	if err := s.repo.SaveTransaction(ctx, tx); err != nil {
		return core.Transaction{}, fmt.Errorf("persist transaction: %w", err)
	}

	s.mu.Lock()
	s.txs[tx.ID] = tx
	s.mu.Unlock()

	s.logs.Infow("transaction added", "id", tx.ID, "hash", tx.Hash, "networkClientId", tx.NetworkClientID)
	s.notify(tx)

	return tx.Clone(), nil
}

// Remove stops tracking a transaction, e.g. when it is cancelled elsewhere.
func (s *Store) Remove(ctx context.Context, id string) error {
	tx, err := s.Get(id)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteTransaction(ctx, id); err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}

	s.mu.Lock()
	delete(s.txs, id)
	s.mu.Unlock()

	s.logs.Infow("transaction removed", "id", id)
	s.notify(tx)

	return nil
}

// Apply folds a tracker event into the stored record. Events for unknown
// transactions and events that change nothing are ignored.
func (s *Store) Apply(ctx context.Context, ev core.Event) error {
	id := ev.Transaction.ID

	s.mu.Lock()
	current, ok := s.txs[id]
	if !ok {
		s.mu.Unlock()
		s.logs.Debugw("event for unknown transaction", "id", id, "event", ev.Kind)
		return nil
	}

	next, changed := applyEvent(current, ev)
	if !changed {
		s.mu.Unlock()
		return nil
	}
	s.txs[id] = next
	s.mu.Unlock()

	s.logs.Infow("transaction updated", "id", id, "event", ev.Kind, "status", next.Status, "note", ev.Note)

	if err := s.repo.SaveTransaction(ctx, next); err != nil {
		return fmt.Errorf("persist transaction: %w", err)
	}

	s.notify(next)
	return nil
}

// Run applies events until ctx is done or events is closed.
func (s *Store) Run(ctx context.Context, events <-chan core.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if err := s.Apply(ctx, ev); err != nil {
				s.logs.Errorw("failed to apply event", "error", err, "id", ev.Transaction.ID, "event", ev.Kind)
			}
		}
	}
}

func (s *Store) notify(tx core.Transaction) {
	s.listenersMu.RLock()
	listeners := make([]func(core.Transaction), len(s.listeners))
	copy(listeners, s.listeners)
	s.listenersMu.RUnlock()

	for _, fn := range listeners {
		fn(tx.Clone())
	}
}

func applyEvent(current core.Transaction, ev core.Event) (core.Transaction, bool) {
	var next core.Transaction

	switch ev.Kind {
	case core.EventUpdated:
		if current.IsTerminal() {
			return current, false
		}
		next = ev.Transaction.Clone()
		next.ID = current.ID
		next.CreatedAt = current.CreatedAt
		if current.FirstRetryBlockNumber != nil {
			first := *current.FirstRetryBlockNumber
			next.FirstRetryBlockNumber = &first
		}
		next.RetryCount = max(next.RetryCount, current.RetryCount)

	case core.EventConfirmed:
		if current.Status == core.StatusConfirmed {
			return current, false
		}
		next = current.Clone()
		confirmed := ev.Transaction
		if confirmed.Receipt != nil {
			receipt := *confirmed.Receipt
			next.Receipt = &receipt
			next.TxParams.GasUsed = confirmed.TxParams.GasUsed
		}
		if confirmed.BaseFeePerGas != "" {
			next.BaseFeePerGas = confirmed.BaseFeePerGas
		}
		if confirmed.BlockTimestamp != 0 {
			next.BlockTimestamp = confirmed.BlockTimestamp
		}
		next.Status = core.StatusConfirmed
		next.VerifiedOnBlockchain = true
		next.Warning = nil

	case core.EventFailed:
		if current.IsTerminal() {
			return current, false
		}
		next = current.Clone()
		next.Status = core.StatusFailed
		next.Error = "unknown error"
		if ev.Err != nil {
			next.Error = ev.Err.Error()
		}

	case core.EventDropped:
		if current.IsTerminal() {
			return current, false
		}
		next = current.Clone()
		next.Status = core.StatusDropped

	default:
		return current, false
	}

	return next, !reflect.DeepEqual(current, next)
}
