package repository

import (
	"time"

	"txwatch/internal/core"
)

type Transaction struct {
	ID                    string        `gorm:"primaryKey;size:36"`
	Hash                  string        `gorm:"size:66;index"` // empty when the broadcast never returned a hash
	ChainID               string        `gorm:"size:20;not null;index"`
	NetworkClientID       string        `gorm:"size:64;not null;index"`
	Type                  string        `gorm:"size:32"`
	Status                string        `gorm:"size:16;not null;index"`
	VerifiedOnBlockchain  bool          `gorm:"not null"`
	IsUserOperation       bool          `gorm:"not null"`
	From                  string        `gorm:"size:42;not null"`
	To                    string        `gorm:"size:42"`
	Nonce                 *uint64       // nullable, unknown until signed
	Value                 string        `gorm:"size:100"`
	Data                  string        `gorm:"type:text"`
	Gas                   string        `gorm:"size:66"`
	GasPrice              string        `gorm:"size:66"`
	MaxFeePerGas          string        `gorm:"size:66"`
	MaxPriorityFeePerGas  string        `gorm:"size:66"`
	GasUsed               string        `gorm:"size:66"`
	RawTx                 string        `gorm:"type:text"`
	RetryCount            int           `gorm:"not null"`
	FirstRetryBlockNumber *uint64
	Receipt               *core.Receipt `gorm:"type:text;serializer:json"`
	Warning               *core.Warning `gorm:"type:text;serializer:json"`
	Error                 string        `gorm:"type:text"`
	BaseFeePerGas         string        `gorm:"size:66"`
	BlockTimestamp        uint64
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

type Operator struct {
	ID           string `gorm:"primaryKey;autoIncrement:false"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}

func fromCoreTransaction(tx core.Transaction) Transaction {
	return Transaction{
		ID:                    tx.ID,
		Hash:                  tx.Hash,
		ChainID:               tx.ChainID,
		NetworkClientID:       tx.NetworkClientID,
		Type:                  string(tx.Type),
		Status:                string(tx.Status),
		VerifiedOnBlockchain:  tx.VerifiedOnBlockchain,
		IsUserOperation:       tx.IsUserOperation,
		From:                  tx.TxParams.From,
		To:                    tx.TxParams.To,
		Nonce:                 tx.TxParams.Nonce,
		Value:                 tx.TxParams.Value,
		Data:                  tx.TxParams.Data,
		Gas:                   tx.TxParams.Gas,
		GasPrice:              tx.TxParams.GasPrice,
		MaxFeePerGas:          tx.TxParams.MaxFeePerGas,
		MaxPriorityFeePerGas:  tx.TxParams.MaxPriorityFeePerGas,
		GasUsed:               tx.TxParams.GasUsed,
		RawTx:                 tx.RawTx,
		RetryCount:            tx.RetryCount,
		FirstRetryBlockNumber: tx.FirstRetryBlockNumber,
		Receipt:               tx.Receipt,
		Warning:               tx.Warning,
		Error:                 tx.Error,
		BaseFeePerGas:         tx.BaseFeePerGas,
		BlockTimestamp:        tx.BlockTimestamp,
		CreatedAt:             tx.CreatedAt,
	}
}

func (t Transaction) toCore() core.Transaction {
	return core.Transaction{
		ID:                   t.ID,
		Hash:                 t.Hash,
		ChainID:              t.ChainID,
		NetworkClientID:      t.NetworkClientID,
		Type:                 core.TransactionType(t.Type),
		Status:               core.TransactionStatus(t.Status),
		VerifiedOnBlockchain: t.VerifiedOnBlockchain,
		IsUserOperation:      t.IsUserOperation,
		TxParams: core.TxParams{
			From:                 t.From,
			To:                   t.To,
			Nonce:                t.Nonce,
			Value:                t.Value,
			Data:                 t.Data,
			Gas:                  t.Gas,
			GasPrice:             t.GasPrice,
			MaxFeePerGas:         t.MaxFeePerGas,
			MaxPriorityFeePerGas: t.MaxPriorityFeePerGas,
			GasUsed:              t.GasUsed,
		},
		RawTx:                 t.RawTx,
		RetryCount:            t.RetryCount,
		FirstRetryBlockNumber: t.FirstRetryBlockNumber,
		Receipt:               t.Receipt,
		Warning:               t.Warning,
		Error:                 t.Error,
		BaseFeePerGas:         t.BaseFeePerGas,
		BlockTimestamp:        t.BlockTimestamp,
		CreatedAt:             t.CreatedAt,
	}
}
