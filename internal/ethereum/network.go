package ethereum

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"txwatch/internal/core"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"
)

// NetworkClient bundles the connections used for one configured RPC endpoint.
type NetworkClient struct {
	ID           string
	ChainID      string
	Service      *EthService
	BlockTracker *BlockTracker

	client *ethclient.Client
}

func DialNetworkClient(ctx context.Context, logger *zap.SugaredLogger, id, url string, pollInterval time.Duration) (*NetworkClient, error) {
	client, err := ethclient.DialContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("dial network client %q: %w", id, err)
	}

	service := NewEthService(client)

	chainID, err := service.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("network client %q: %w", id, err)
	}

	logs := logger.With("networkClientId", id)

	return &NetworkClient{
		ID:           id,
		ChainID:      hexutil.EncodeBig(chainID),
		Service:      service,
		BlockTracker: NewBlockTracker(logs, client, pollInterval),
		client:       client,
	}, nil
}

func (n *NetworkClient) Close() {
	if n.client != nil {
		n.client.Close()
	}
}

var (
	ErrInvalidRawTransaction = errors.New("invalid raw transaction")
	ErrHashMismatch          = errors.New("hash does not match the raw transaction")
)

// NetworkClients indexes the dialled network clients by id.
type NetworkClients map[string]*NetworkClient

// ResolveTransaction builds the record for a broadcast transaction from its
// signed payload or, without one, from the node's view of hash.
func (n NetworkClients) ResolveTransaction(ctx context.Context, networkClientID, rawTx, hash string) (core.Transaction, error) {
	client, ok := n[networkClientID]
	if !ok {
		return core.Transaction{}, fmt.Errorf("%w: %s", core.ErrUnknownNetworkClient, networkClientID)
	}

	tx := core.Transaction{
		ChainID:         client.ChainID,
		NetworkClientID: client.ID,
		RawTx:           rawTx,
	}

	if rawTx == "" {
		result, err := client.Service.LookupTransaction(ctx, hash)
		if err != nil {
			return core.Transaction{}, err
		}
		tx.Hash = result.Hash
		tx.TxParams = result.Params
		return tx, nil
	}

	signed, err := DecodeRawTransaction(rawTx)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("%w: %w", ErrInvalidRawTransaction, err)
	}

	chainID, err := hexutil.DecodeBig(client.ChainID)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("decode chain id: %w", err)
	}

	params, err := TxParamsFromTransaction(signed, chainID)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("%w: %w", ErrInvalidRawTransaction, err)
	}

	tx.Hash = signed.Hash().Hex()
	if hash != "" && !strings.EqualFold(hash, tx.Hash) {
		return core.Transaction{}, fmt.Errorf("%w: %s", ErrHashMismatch, hash)
	}
	tx.TxParams = params

	return tx, nil
}
