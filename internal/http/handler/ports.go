package handler

import (
	"context"
	"net/http"

	"txwatch/internal/auth"
	"txwatch/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Authenticator . Authenticator
type Authenticator interface {
	Authenticate(ctx context.Context, msg auth.AuthMessage) (string, error)
}

//counterfeiter:generate -o fake -fake-name TransactionStore . TransactionStore
type TransactionStore interface {
	Transactions() []core.Transaction
	Get(id string) (core.Transaction, error)
	Add(ctx context.Context, tx core.Transaction) (core.Transaction, error)
	Remove(ctx context.Context, id string) error
}

//counterfeiter:generate -o fake -fake-name TrackerService . TrackerService
type TrackerService interface {
	AddTransactionToPoll(tx core.Transaction) error
	ForceCheckTransaction(ctx context.Context, tx core.Transaction) error
}

//counterfeiter:generate -o fake -fake-name TransactionResolver . TransactionResolver
type TransactionResolver interface {
	ResolveTransaction(ctx context.Context, networkClientID, rawTx, hash string) (core.Transaction, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
