package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// MaxRetryBlockDistance caps the exponential gap between resubmissions.
const MaxRetryBlockDistance = 50

// knownTransactionErrors are broadcast errors expected while a transaction is
// still in the mempool or already mined. They are matched case-insensitively.
var knownTransactionErrors = []string{
	"replacement transaction underpriced",
	"known transaction",
	"gas price too low to replace",
	"transaction with the same hash was already imported",
	"gateway timeout",
	"nonce too low",
}

// RequiredRetryBlockGap returns how many blocks must pass since the first retry
// block before the next resubmission of a transaction retried retryCount times.
func RequiredRetryBlockGap(retryCount int) uint64 {
	if retryCount < 0 {
		retryCount = 0
	}
	// 1<<6 already exceeds the cap
	if retryCount >= 6 {
		return MaxRetryBlockDistance
	}
	return min(uint64(MaxRetryBlockDistance), uint64(1)<<retryCount)
}

func isKnownTransactionError(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, known := range knownTransactionErrors {
		if strings.Contains(msg, known) {
			return true
		}
	}
	return false
}

func (t *PendingTransactionTracker) resubmitTransactions(ctx context.Context, latestBlock uint64, resolved map[string]struct{}) {
	if !t.isResubmitEnabled() || !t.IsRunning() {
		return
	}

	pending := t.getPendingTransactions()
	if len(pending) == 0 {
		return
	}

	t.logs.Debugw("resubmitting pending transactions", "count", len(pending), "blockNumber", latestBlock)

	for _, tx := range pending {
		if _, ok := resolved[tx.ID]; ok {
			continue
		}

		if err := t.safeResubmitTransaction(ctx, tx, latestBlock); err != nil {
			if isKnownTransactionError(err) {
				t.logs.Debugw("ignoring known resubmit error", "id", tx.ID, "error", err)
				continue
			}

			t.logs.Warnw("failed to resubmit transaction", "id", tx.ID, "error", err)
			t.warnTransaction(tx, err.Error(), warnResubmitFailed)
		}
	}
}

func (t *PendingTransactionTracker) safeResubmitTransaction(ctx context.Context, tx Transaction, latestBlock uint64) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("resubmit transaction: %v", r)
		}
	}()
	return t.resubmitTransaction(ctx, tx, latestBlock)
}

func (t *PendingTransactionTracker) resubmitTransaction(ctx context.Context, tx Transaction, latestBlock uint64) error {
	tx, due := t.isResubmitDue(tx, latestBlock)
	if !due {
		return nil
	}

	if !t.beforeCheck(ctx, tx) {
		t.logs.Debugw("resubmit skipped by hook", "id", tx.ID)
		return nil
	}

	querier := t.getChainQuerier(tx.NetworkClientID)
	if querier == nil {
		return ErrNoChainQuerier
	}

	if t.publisher == nil {
		return errors.New("no publisher configured")
	}

	hash, err := t.publisher.PublishTransaction(ctx, querier, tx)
	if err != nil {
		return err
	}

	t.logs.Infow("transaction resubmitted", "id", tx.ID, "hash", hash, "retryCount", tx.RetryCount+1)

	updated := tx.Clone()
	updated.RetryCount++
	t.updateTransaction(updated, noteRetryCountIncreased)

	return nil
}

// isResubmitDue starts the backoff window on first evaluation and reports
// whether enough blocks have passed since. The returned transaction carries
// the first retry block.
func (t *PendingTransactionTracker) isResubmitDue(tx Transaction, latestBlock uint64) (Transaction, bool) {
	if tx.FirstRetryBlockNumber == nil {
		tx = tx.Clone()
		first := latestBlock
		tx.FirstRetryBlockNumber = &first
		t.updateTransaction(tx.Clone(), noteFirstRetryBlock)
	}

	var blocksSinceFirstRetry uint64
	if latestBlock > *tx.FirstRetryBlockNumber {
		blocksSinceFirstRetry = latestBlock - *tx.FirstRetryBlockNumber
	}

	return tx, blocksSinceFirstRetry >= RequiredRetryBlockGap(tx.RetryCount)
}
