package core

import (
	"context"
	"sync"

	"github.com/ethereum/go-ethereum/event"
	"go.uber.org/zap"
)

// BlockListener is invoked once per new block while transactions are watched.
type BlockListener func(ctx context.Context, blockNumber uint64)

// TransactionPoller invokes a listener for every new block height reported by
// its BlockSource, as long as it has at least one transaction to watch.
type TransactionPoller struct {
	logs   *zap.SugaredLogger
	source BlockSource

	mu        sync.Mutex
	pending   []Transaction
	running   bool
	lastBlock uint64
	sub       event.Subscription
	cancel    context.CancelFunc
	done      chan struct{}
}

func NewTransactionPoller(logger *zap.SugaredLogger, source BlockSource) *TransactionPoller {
	return &TransactionPoller{
		logs:   logger,
		source: source,
	}
}

// SetPendingTransactions replaces the watch set. An empty set suspends
// listener invocations from the next block on.
func (p *TransactionPoller) SetPendingTransactions(txs []Transaction) {
	pending := make([]Transaction, len(txs))
	copy(pending, txs)

	p.mu.Lock()
	p.pending = pending
	p.mu.Unlock()
}

func (p *TransactionPoller) Start(listener BlockListener) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	blocks := make(chan uint64, 16)

	p.sub = p.source.SubscribeNewBlocks(blocks)
	p.cancel = cancel
	p.done = make(chan struct{})
	p.running = true

	go p.loop(ctx, blocks, p.sub, listener, p.done)

	p.logs.Debugw("transaction poller started")
}

func (p *TransactionPoller) Stop() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}

	p.running = false
	p.cancel()
	p.sub.Unsubscribe()
	done := p.done
	p.mu.Unlock()

	<-done

	p.logs.Debugw("transaction poller stopped")
}

func (p *TransactionPoller) loop(ctx context.Context, blocks <-chan uint64, sub event.Subscription, listener BlockListener, done chan struct{}) {
	defer close(done)

	// listener invocations outlive Stop, an in-flight cycle finishes on its own
	listenerCtx := context.WithoutCancel(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case err, ok := <-sub.Err():
			if ok && err != nil {
				p.logs.Errorw("block subscription failed", "error", err)
			}
			return
		case blockNumber := <-blocks:
			if !p.shouldNotify(blockNumber) {
				continue
			}
			go listener(listenerCtx, blockNumber)
		}
	}
}

func (p *TransactionPoller) shouldNotify(blockNumber uint64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.lastBlock != 0 && blockNumber <= p.lastBlock {
		return false
	}
	p.lastBlock = blockNumber

	if len(p.pending) == 0 {
		p.logs.Debugw("no pending transactions, skipping block", "blockNumber", blockNumber)
		return false
	}

	return true
}
