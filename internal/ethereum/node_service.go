package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"txwatch/internal/core"

	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
)

var ErrTransactionNotFound = errors.New("transaction not found on node")

// EthService answers the tracker's chain queries for a single network client.
type EthService struct {
	client EthClient
}

func NewEthService(ethClient EthClient) *EthService {
	return &EthService{
		client: ethClient,
	}
}

// TransactionReceipt returns nil without error while the transaction is not mined.
func (s *EthService) TransactionReceipt(ctx context.Context, hash string) (*core.Receipt, error) {
	receipt, err := s.client.TransactionReceipt(ctx, common.HexToHash(hash))
	if err != nil {
		if errors.Is(err, goethereum.NotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction receipt: %w", err)
	}

	result := &core.Receipt{
		Status:  receipt.Status,
		GasUsed: hexutil.EncodeUint64(receipt.GasUsed),
	}
	if receipt.BlockHash != (common.Hash{}) {
		result.BlockHash = receipt.BlockHash.Hex()
	}
	if receipt.BlockNumber != nil {
		result.BlockNumber = receipt.BlockNumber.Uint64()
	}
	if receipt.EffectiveGasPrice != nil {
		result.EffectiveGasPrice = hexutil.EncodeBig(receipt.EffectiveGasPrice)
	}

	return result, nil
}

func (s *EthService) BlockByHash(ctx context.Context, hash string) (*core.Block, error) {
	header, err := s.client.HeaderByHash(ctx, common.HexToHash(hash))
	if err != nil {
		return nil, fmt.Errorf("get block header: %w", err)
	}

	block := &core.Block{
		Hash:      header.Hash().Hex(),
		Timestamp: header.Time,
	}
	if header.Number != nil {
		block.Number = header.Number.Uint64()
	}
	if header.BaseFee != nil {
		block.BaseFeePerGas = hexutil.EncodeBig(header.BaseFee)
	}

	return block, nil
}

// TransactionCount returns the next nonce of address at the latest block.
func (s *EthService) TransactionCount(ctx context.Context, address string) (uint64, error) {
	if !common.IsHexAddress(address) {
		return 0, fmt.Errorf("invalid address %q", address)
	}

	count, err := s.client.NonceAt(ctx, common.HexToAddress(address), nil)
	if err != nil {
		return 0, fmt.Errorf("get transaction count: %w", err)
	}

	return count, nil
}

func (s *EthService) SendRawTransaction(ctx context.Context, tx *types.Transaction) (string, error) {
	if err := s.client.SendTransaction(ctx, tx); err != nil {
		return "", fmt.Errorf("send transaction: %w", err)
	}
	return tx.Hash().Hex(), nil
}

func (s *EthService) BlockNumber(ctx context.Context) (uint64, error) {
	number, err := s.client.BlockNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("get block number: %w", err)
	}
	return number, nil
}

func (s *EthService) ChainID(ctx context.Context) (*big.Int, error) {
	chainID, err := s.client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("get chain id: %w", err)
	}
	return chainID, nil
}

// LookupTransaction fetches a broadcast transaction from the node and recovers
// its parameters, including the sender.
func (s *EthService) LookupTransaction(ctx context.Context, hash string) (LookupResult, error) {
	tx, pending, err := s.client.TransactionByHash(ctx, common.HexToHash(hash))
	if err != nil {
		if errors.Is(err, goethereum.NotFound) {
			return LookupResult{}, fmt.Errorf("%w: %s", ErrTransactionNotFound, hash)
		}
		return LookupResult{}, fmt.Errorf("get transaction by hash: %w", err)
	}

	chainID, err := s.ChainID(ctx)
	if err != nil {
		return LookupResult{}, err
	}

	params, err := TxParamsFromTransaction(tx, chainID)
	if err != nil {
		return LookupResult{}, err
	}

	return LookupResult{
		Params:  params,
		Hash:    tx.Hash().Hex(),
		Pending: pending,
	}, nil
}

// DecodeRawTransaction parses a hex encoded signed transaction.
func DecodeRawTransaction(rawTx string) (*types.Transaction, error) {
	data, err := hexutil.Decode(rawTx)
	if err != nil {
		return nil, fmt.Errorf("decode raw transaction hex: %w", err)
	}

	tx := new(types.Transaction)
	if err := tx.UnmarshalBinary(data); err != nil {
		return nil, fmt.Errorf("unmarshal raw transaction: %w", err)
	}

	return tx, nil
}

func TxParamsFromTransaction(tx *types.Transaction, chainID *big.Int) (core.TxParams, error) {
	signer := types.LatestSignerForChainID(chainID)
	from, err := types.Sender(signer, tx)
	if err != nil {
		return core.TxParams{}, fmt.Errorf("recover sender: %w", err)
	}

	nonce := tx.Nonce()
	params := core.TxParams{
		From:  from.Hex(),
		Nonce: &nonce,
		Value: hexutil.EncodeBig(tx.Value()),
		Data:  hexutil.Encode(tx.Data()),
		Gas:   hexutil.EncodeUint64(tx.Gas()),
	}
	if tx.To() != nil {
		params.To = tx.To().Hex()
	}

	if tx.Type() == types.LegacyTxType || tx.Type() == types.AccessListTxType {
		params.GasPrice = hexutil.EncodeBig(tx.GasPrice())
	} else {
		params.MaxFeePerGas = hexutil.EncodeBig(tx.GasFeeCap())
		params.MaxPriorityFeePerGas = hexutil.EncodeBig(tx.GasTipCap())
	}

	return params, nil
}
