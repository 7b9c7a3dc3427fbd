package ethereum

import (
	"context"
	"errors"
	"fmt"

	"txwatch/internal/core"

	"go.uber.org/zap"
)

var (
	ErrNoRawTransaction    = errors.New("transaction has no signed payload to rebroadcast")
	ErrCannotSendRawTx     = errors.New("chain querier cannot send raw transactions")
	ErrRawTransactionDrift = errors.New("signed payload does not match the tracked nonce")
)

// Publisher rebroadcasts the signed payload stored with a transaction.
type Publisher struct {
	logs *zap.SugaredLogger
}

func NewPublisher(logger *zap.SugaredLogger) *Publisher {
	return &Publisher{
		logs: logger,
	}
}

func (p *Publisher) PublishTransaction(ctx context.Context, querier core.ChainQuerier, tx core.Transaction) (string, error) {
	if tx.RawTx == "" {
		return "", ErrNoRawTransaction
	}

	sender, ok := querier.(RawTransactionSender)
	if !ok {
		return "", ErrCannotSendRawTx
	}

	signed, err := DecodeRawTransaction(tx.RawTx)
	if err != nil {
		return "", err
	}

	if tx.TxParams.Nonce != nil && *tx.TxParams.Nonce != signed.Nonce() {
		return "", fmt.Errorf("%w: tracked %d, signed %d", ErrRawTransactionDrift, *tx.TxParams.Nonce, signed.Nonce())
	}

	hash, err := sender.SendRawTransaction(ctx, signed)
	if err != nil {
		return "", err
	}

	p.logs.Infow("transaction rebroadcast", "id", tx.ID, "hash", hash, "networkClientId", tx.NetworkClientID)

	return hash, nil
}
