package core

import (
	"context"

	"github.com/ethereum/go-ethereum/event"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name ChainQuerier . ChainQuerier
type ChainQuerier interface {
	TransactionReceipt(ctx context.Context, hash string) (*Receipt, error)
	BlockByHash(ctx context.Context, hash string) (*Block, error)
	TransactionCount(ctx context.Context, address string) (uint64, error)
}

//counterfeiter:generate -o fake -fake-name Publisher . Publisher
type Publisher interface {
	PublishTransaction(ctx context.Context, querier ChainQuerier, tx Transaction) (string, error)
}

//counterfeiter:generate -o fake -fake-name TransactionSource . TransactionSource
type TransactionSource interface {
	Transactions() []Transaction
}

//counterfeiter:generate -o fake -fake-name GlobalLock . GlobalLock
type GlobalLock interface {
	Acquire(ctx context.Context) (func(), error)
}

type BlockSource interface {
	SubscribeNewBlocks(ch chan<- uint64) event.Subscription
}
