package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// DroppedBlockCount is how many consecutive cycles a transaction must look
// superseded by the network nonce before it is declared dropped. The node we
// talk to may be out of sync.
const DroppedBlockCount = 3

var (
	ErrNoTxHash             = errors.New("no tx hash: we had an error while submitting this transaction, please try again")
	ErrDroppedOrReplaced    = errors.New("Transaction dropped or replaced")
	ErrNoChainQuerier       = errors.New("no chain querier for network client")
	ErrUnknownNetworkClient = errors.New("unknown network client")
	ErrTransactionNotFound  = errors.New("transaction not found")
)

const (
	noteWarningAdded        = "pending tracker: warning added"
	noteConfirmed           = "pending tracker: transaction confirmed"
	noteFirstRetryBlock     = "pending tracker: first retry block number set"
	noteRetryCountIncreased = "pending tracker: retry count increased"

	warnLoadFailed     = "There was a problem loading this transaction."
	warnResubmitFailed = "There was an error when resubmitting this transaction."
)

type Options struct {
	ChainID         string
	NetworkClientID string

	Transactions    TransactionSource
	GetChainQuerier func(networkClientID string) ChainQuerier
	Lock            GlobalLock
	Publisher       Publisher
	BlockSource     BlockSource
	Hub             *EventHub

	// IsResubmitEnabled defaults to always true.
	IsResubmitEnabled func() bool
	// BeforeCheckPendingTransaction gates failing hashless transactions and
	// resubmitting. Defaults to always true.
	BeforeCheckPendingTransaction func(ctx context.Context, tx Transaction) bool
}

// PendingTransactionTracker watches the submitted transactions of a single
// network client, resolving them to confirmed, failed or dropped and
// resubmitting the ones that stay pending.
type PendingTransactionTracker struct {
	logs *zap.SugaredLogger

	chainID         string
	networkClientID string

	transactions      TransactionSource
	getChainQuerier   func(networkClientID string) ChainQuerier
	lock              GlobalLock
	publisher         Publisher
	hub               *EventHub
	ownsHub           bool
	isResubmitEnabled func() bool
	beforeCheck       func(ctx context.Context, tx Transaction) bool

	poller *TransactionPoller

	mu                      sync.Mutex
	running                 bool
	transactionToForcePoll  *Transaction
	droppedBlockCountByHash map[string]int
}

func NewPendingTransactionTracker(logger *zap.SugaredLogger, opts Options) *PendingTransactionTracker {
	logs := logger.With("chainId", opts.ChainID, "networkClientId", opts.NetworkClientID)

	hub := opts.Hub
	ownsHub := false
	if hub == nil {
		hub = NewEventHub()
		ownsHub = true
	}

	isResubmitEnabled := opts.IsResubmitEnabled
	if isResubmitEnabled == nil {
		isResubmitEnabled = func() bool { return true }
	}

	beforeCheck := opts.BeforeCheckPendingTransaction
	if beforeCheck == nil {
		beforeCheck = func(context.Context, Transaction) bool { return true }
	}

	return &PendingTransactionTracker{
		logs:                    logs,
		chainID:                 opts.ChainID,
		networkClientID:         opts.NetworkClientID,
		transactions:            opts.Transactions,
		getChainQuerier:         opts.GetChainQuerier,
		lock:                    opts.Lock,
		publisher:               opts.Publisher,
		hub:                     hub,
		ownsHub:                 ownsHub,
		isResubmitEnabled:       isResubmitEnabled,
		beforeCheck:             beforeCheck,
		poller:                  NewTransactionPoller(logs, opts.BlockSource),
		droppedBlockCountByHash: make(map[string]int),
	}
}

func (t *PendingTransactionTracker) Hub() *EventHub {
	return t.hub
}

func (t *PendingTransactionTracker) NetworkClientID() string {
	return t.networkClientID
}

func (t *PendingTransactionTracker) IsRunning() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

// StartIfPendingTransactions starts polling when this network client has
// pending transactions and stops it otherwise.
func (t *PendingTransactionTracker) StartIfPendingTransactions() {
	pending := t.getPendingTransactions()
	if len(pending) > 0 {
		t.start(pending)
		return
	}
	t.Stop()
}

// AddTransactionToPoll checks the given transaction on the next cycles even
// when it falls outside the pending filter. Its confirmation is emitted as is,
// without merging block metadata into it.
func (t *PendingTransactionTracker) AddTransactionToPoll(tx Transaction) {
	t.start([]Transaction{tx})

	forced := tx.Clone()
	t.mu.Lock()
	t.transactionToForcePoll = &forced
	t.mu.Unlock()
}

// ForceCheckTransaction checks a single transaction right away, under the
// global lock.
func (t *PendingTransactionTracker) ForceCheckTransaction(ctx context.Context, tx Transaction) error {
	release, err := t.lock.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire global lock: %w", err)
	}
	defer release()

	t.safeCheckTransaction(ctx, tx)
	return nil
}

func (t *PendingTransactionTracker) Stop() {
	t.mu.Lock()
	if !t.running {
		t.mu.Unlock()
		return
	}
	t.running = false
	t.mu.Unlock()

	t.poller.Stop()
	t.logs.Infow("stopped polling")
}

// Close stops polling and drops the subscribers of a hub the tracker created.
func (t *PendingTransactionTracker) Close() {
	t.Stop()
	if t.ownsHub {
		t.hub.Close()
	}
}

func (t *PendingTransactionTracker) start(pending []Transaction) {
	t.poller.SetPendingTransactions(pending)

	t.mu.Lock()
	if t.running {
		t.mu.Unlock()
		return
	}
	t.running = true
	t.mu.Unlock()

	t.poller.Start(t.onLatestBlock)
	t.logs.Infow("started polling", "pending", len(pending))
}

func (t *PendingTransactionTracker) onLatestBlock(ctx context.Context, latestBlock uint64) {
	ctx, span := otel.Tracer("txwatch/core").Start(ctx, "pending_tracker.cycle")
	span.SetAttributes(
		attribute.String("chain.id", t.chainID),
		attribute.String("network_client.id", t.networkClientID),
		attribute.Int64("block.number", int64(latestBlock)),
	)
	defer span.End()

	release, err := t.lock.Acquire(ctx)
	if err != nil {
		span.RecordError(err)
		t.logs.Errorw("failed to acquire global lock", "error", err, "blockNumber", latestBlock)
		return
	}

	resolved := t.checkTransactions(ctx)
	release()

	t.resubmitTransactions(ctx, latestBlock, resolved)
}

// checkTransactions checks every pending transaction concurrently and returns
// the ids that reached a terminal state. The store applies those asynchronously
// so the resubmit phase of the same cycle must skip them.
func (t *PendingTransactionTracker) checkTransactions(ctx context.Context) map[string]struct{} {
	pending := t.getPendingTransactions()

	t.mu.Lock()
	if t.transactionToForcePoll != nil {
		pending = withForcePoll(pending, t.transactionToForcePoll.Clone())
	}
	t.mu.Unlock()

	t.pruneDroppedBlockCounts(pending)

	resolved := make(map[string]struct{})
	if len(pending) == 0 {
		t.logs.Debugw("no pending transactions to check")
		return resolved
	}

	t.logs.Debugw("checking pending transactions", "count", len(pending), "ids", transactionIDs(pending))

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	for _, tx := range pending {
		wg.Add(1)
		go func(tx Transaction) {
			defer wg.Done()
			if t.safeCheckTransaction(ctx, tx) {
				mu.Lock()
				resolved[tx.ID] = struct{}{}
				mu.Unlock()
			}
		}(tx)
	}
	wg.Wait()

	return resolved
}

func (t *PendingTransactionTracker) safeCheckTransaction(ctx context.Context, tx Transaction) (resolved bool) {
	defer func() {
		if r := recover(); r != nil {
			t.logs.Errorw("panic while checking transaction", "id", tx.ID, "panic", r)
			resolved = false
		}
	}()
	return t.checkTransaction(ctx, tx)
}

// checkTransaction reports whether tx was confirmed, failed or dropped.
func (t *PendingTransactionTracker) checkTransaction(ctx context.Context, tx Transaction) bool {
	if tx.Hash == "" {
		if t.beforeCheck(ctx, tx) {
			t.failTransaction(tx, ErrNoTxHash)
			return true
		}
	}

	if t.isNonceTaken(tx) {
		t.logs.Infow("nonce already taken", "id", tx.ID)
		t.dropTransaction(tx)
		return true
	}

	if tx.Hash == "" {
		return false
	}

	querier := t.getChainQuerier(t.networkClientID)
	if querier == nil {
		t.warnTransaction(tx, ErrNoChainQuerier.Error(), warnLoadFailed)
		return false
	}

	receipt, err := querier.TransactionReceipt(ctx, tx.Hash)
	if err != nil {
		t.logs.Warnw("failed to get transaction receipt", "id", tx.ID, "error", err)
		t.warnTransaction(tx, err.Error(), warnLoadFailed)
		return false
	}

	if receipt != nil {
		if receipt.Status == ReceiptStatusFailure {
			t.logs.Infow("transaction receipt has failed status", "id", tx.ID)
			t.failTransaction(tx, ErrDroppedOrReplaced)
			return true
		}

		if receipt.Status == ReceiptStatusSuccess && receipt.complete() {
			if err := t.onTransactionConfirmed(ctx, querier, tx, *receipt); err != nil {
				t.logs.Warnw("failed to confirm transaction", "id", tx.ID, "error", err)
				t.warnTransaction(tx, err.Error(), warnLoadFailed)
				return false
			}
			return true
		}
	}

	dropped, err := t.isTransactionDropped(ctx, querier, tx)
	if err != nil {
		t.logs.Warnw("failed to get network nonce", "id", tx.ID, "error", err)
		t.warnTransaction(tx, err.Error(), warnLoadFailed)
		return false
	}

	if dropped {
		t.dropTransaction(tx)
	}
	return dropped
}

func (t *PendingTransactionTracker) onTransactionConfirmed(ctx context.Context, querier ChainQuerier, tx Transaction, receipt Receipt) error {
	t.logs.Infow("transaction confirmed", "id", tx.ID, "hash", tx.Hash, "blockNumber", receipt.BlockNumber)

	t.clearDroppedBlockCount(tx.Hash)

	if t.takeForcePoll(tx.ID) {
		t.hub.emit(Event{Kind: EventConfirmed, Transaction: tx.Clone()})
		return nil
	}

	block, err := querier.BlockByHash(ctx, receipt.BlockHash)
	if err != nil {
		return fmt.Errorf("get block by hash: %w", err)
	}

	updated := tx.Clone()
	if block != nil {
		updated.BaseFeePerGas = block.BaseFeePerGas
		updated.BlockTimestamp = block.Timestamp
	}
	updated.Status = StatusConfirmed
	updated.TxParams.GasUsed = receipt.GasUsed
	updated.Receipt = &receipt
	updated.VerifiedOnBlockchain = true

	t.updateTransaction(updated, noteConfirmed)
	t.hub.emit(Event{Kind: EventConfirmed, Transaction: updated.Clone()})

	return nil
}

func (t *PendingTransactionTracker) isTransactionDropped(ctx context.Context, querier ChainQuerier, tx Transaction) (bool, error) {
	nonce := tx.TxParams.Nonce
	if nonce == nil || tx.Hash == "" {
		return false, nil
	}

	networkNextNonce, err := querier.TransactionCount(ctx, tx.TxParams.From)
	if err != nil {
		return false, fmt.Errorf("get transaction count: %w", err)
	}

	if *nonce >= networkNextNonce {
		return false, nil
	}

	t.mu.Lock()
	count := t.droppedBlockCountByHash[tx.Hash] + 1
	if count < DroppedBlockCount {
		t.droppedBlockCountByHash[tx.Hash] = count
		t.mu.Unlock()
		t.logs.Debugw("incrementing dropped block count", "id", tx.ID, "droppedBlockCount", count)
		return false, nil
	}
	delete(t.droppedBlockCountByHash, tx.Hash)
	t.mu.Unlock()

	t.logs.Infow("hit dropped block count", "id", tx.ID)
	return true, nil
}

func (t *PendingTransactionTracker) isNonceTaken(tx Transaction) bool {
	nonce := tx.TxParams.Nonce
	if nonce == nil {
		return false
	}

	for _, other := range t.getChainTransactions() {
		if other.ID == tx.ID ||
			other.Status != StatusConfirmed ||
			other.Type == TransactionTypeIncoming ||
			other.TxParams.Nonce == nil ||
			*other.TxParams.Nonce != *nonce {
			continue
		}
		if strings.EqualFold(other.TxParams.From, tx.TxParams.From) {
			return true
		}
	}

	return false
}

func (t *PendingTransactionTracker) getChainTransactions() []Transaction {
	all := t.transactions.Transactions()
	txs := make([]Transaction, 0, len(all))
	for _, tx := range all {
		if tx.ChainID == t.chainID {
			txs = append(txs, tx)
		}
	}
	return txs
}

func (t *PendingTransactionTracker) getPendingTransactions() []Transaction {
	all := t.transactions.Transactions()
	pending := make([]Transaction, 0, len(all))
	for _, tx := range all {
		if tx.ChainID != t.chainID || tx.NetworkClientID != t.networkClientID {
			continue
		}
		if tx.IsPending() {
			pending = append(pending, tx)
		}
	}
	return pending
}

func (t *PendingTransactionTracker) warnTransaction(tx Transaction, errMsg, message string) {
	updated := tx.Clone()
	updated.Warning = &Warning{Error: errMsg, Message: message}
	t.updateTransaction(updated, noteWarningAdded)
}

func (t *PendingTransactionTracker) failTransaction(tx Transaction, err error) {
	t.logs.Infow("transaction failed", "id", tx.ID, "error", err)
	t.takeForcePoll(tx.ID)
	t.clearDroppedBlockCount(tx.Hash)
	t.hub.emit(Event{Kind: EventFailed, Transaction: tx.Clone(), Err: err})
}

func (t *PendingTransactionTracker) dropTransaction(tx Transaction) {
	t.logs.Infow("transaction dropped", "id", tx.ID)
	t.takeForcePoll(tx.ID)
	t.clearDroppedBlockCount(tx.Hash)
	t.hub.emit(Event{Kind: EventDropped, Transaction: tx.Clone()})
}

func (t *PendingTransactionTracker) updateTransaction(tx Transaction, note string) {
	t.hub.emit(Event{Kind: EventUpdated, Transaction: tx, Note: note})
}

// withForcePoll adds the forced transaction to pending, replacing the entry
// with the same id so it is checked once per cycle.
func withForcePoll(pending []Transaction, forced Transaction) []Transaction {
	for i := range pending {
		if pending[i].ID == forced.ID {
			pending[i] = forced
			return pending
		}
	}
	return append(pending, forced)
}

// takeForcePoll clears the force-poll slot when it holds id and reports
// whether it did.
func (t *PendingTransactionTracker) takeForcePoll(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.transactionToForcePoll == nil || t.transactionToForcePoll.ID != id {
		return false
	}
	t.transactionToForcePoll = nil
	return true
}

func (t *PendingTransactionTracker) clearDroppedBlockCount(hash string) {
	if hash == "" {
		return
	}
	t.mu.Lock()
	delete(t.droppedBlockCountByHash, hash)
	t.mu.Unlock()
}

func (t *PendingTransactionTracker) pruneDroppedBlockCounts(tracked []Transaction) {
	hashes := make(map[string]struct{}, len(tracked))
	for _, tx := range tracked {
		hashes[tx.Hash] = struct{}{}
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	for hash := range t.droppedBlockCountByHash {
		if _, ok := hashes[hash]; !ok {
			delete(t.droppedBlockCountByHash, hash)
		}
	}
}

func transactionIDs(txs []Transaction) []string {
	ids := make([]string, 0, len(txs))
	for _, tx := range txs {
		ids = append(ids, tx.ID)
	}
	return ids
}
