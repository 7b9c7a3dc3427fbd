package ethereum

import (
	"context"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/event"
	"go.uber.org/zap"
)

// BlockTracker polls the node for its latest block number and publishes every
// new height to its subscribers. Polling only happens while someone listens.
type BlockTracker struct {
	logs     *zap.SugaredLogger
	client   EthClient
	interval time.Duration

	feed  event.Feed
	scope event.SubscriptionScope

	mu     sync.Mutex
	latest uint64
}

func NewBlockTracker(logger *zap.SugaredLogger, client EthClient, interval time.Duration) *BlockTracker {
	return &BlockTracker{
		logs:     logger,
		client:   client,
		interval: interval,
	}
}

func (b *BlockTracker) SubscribeNewBlocks(ch chan<- uint64) event.Subscription {
	return b.scope.Track(b.feed.Subscribe(ch))
}

func (b *BlockTracker) Latest() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.latest
}

// Run polls until ctx is done, then drops every subscription.
func (b *BlockTracker) Run(ctx context.Context) {
	defer b.scope.Close()

	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			b.Poll(ctx)
		}
	}
}

// Poll fetches the latest block once and publishes it if it is new.
func (b *BlockTracker) Poll(ctx context.Context) {
	if b.scope.Count() == 0 {
		return
	}

	number, err := b.client.BlockNumber(ctx)
	if err != nil {
		b.logs.Warnw("failed to get latest block number", "error", err)
		return
	}

	b.mu.Lock()
	if number <= b.latest {
		b.mu.Unlock()
		return
	}
	b.latest = number
	b.mu.Unlock()

	b.logs.Debugw("new block", "blockNumber", number)
	b.feed.Send(number)
}
