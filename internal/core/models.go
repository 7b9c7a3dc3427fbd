package core

import "time"

type TransactionStatus string

const (
	StatusSubmitted TransactionStatus = "submitted"
	StatusConfirmed TransactionStatus = "confirmed"
	StatusFailed    TransactionStatus = "failed"
	StatusDropped   TransactionStatus = "dropped"
)

type TransactionType string

const (
	TransactionTypeSimpleSend TransactionType = "simpleSend"
	TransactionTypeIncoming   TransactionType = "incoming"
)

const (
	ReceiptStatusFailure uint64 = 0
	ReceiptStatusSuccess uint64 = 1
)

type TxParams struct {
	From                 string  `json:"from"`
	To                   string  `json:"to,omitempty"`
	Nonce                *uint64 `json:"nonce,omitempty"`
	Value                string  `json:"value,omitempty"`
	Data                 string  `json:"data,omitempty"`
	Gas                  string  `json:"gas,omitempty"`
	GasPrice             string  `json:"gasPrice,omitempty"`
	MaxFeePerGas         string  `json:"maxFeePerGas,omitempty"`
	MaxPriorityFeePerGas string  `json:"maxPriorityFeePerGas,omitempty"`
	GasUsed              string  `json:"gasUsed,omitempty"`
}

type Receipt struct {
	Status            uint64 `json:"status"`
	GasUsed           string `json:"gasUsed,omitempty"`
	BlockHash         string `json:"blockHash,omitempty"`
	BlockNumber       uint64 `json:"blockNumber,omitempty"`
	EffectiveGasPrice string `json:"effectiveGasPrice,omitempty"`
}

// complete reports whether the receipt carries the block it was mined in.
func (r Receipt) complete() bool {
	return r.BlockHash != "" && r.BlockNumber != 0
}

type Block struct {
	Hash          string `json:"hash"`
	Number        uint64 `json:"number"`
	BaseFeePerGas string `json:"baseFeePerGas,omitempty"`
	Timestamp     uint64 `json:"timestamp"`
}

// Warning is a non-fatal annotation left on a transaction that is still pending.
type Warning struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type Transaction struct {
	ID                    string            `json:"id"`
	Hash                  string            `json:"hash,omitempty"`
	ChainID               string            `json:"chainId"`
	NetworkClientID       string            `json:"networkClientId"`
	Type                  TransactionType   `json:"type,omitempty"`
	Status                TransactionStatus `json:"status"`
	VerifiedOnBlockchain  bool              `json:"verifiedOnBlockchain"`
	IsUserOperation       bool              `json:"isUserOperation"`
	TxParams              TxParams          `json:"txParams"`
	RawTx                 string            `json:"rawTx,omitempty"`
	RetryCount            int               `json:"retryCount"`
	FirstRetryBlockNumber *uint64           `json:"firstRetryBlockNumber,omitempty"`
	Receipt               *Receipt          `json:"txReceipt,omitempty"`
	Warning               *Warning          `json:"warning,omitempty"`
	Error                 string            `json:"error,omitempty"`
	BaseFeePerGas         string            `json:"baseFeePerGas,omitempty"`
	BlockTimestamp        uint64            `json:"blockTimestamp,omitempty"`
	CreatedAt             time.Time         `json:"createdAt"`
}

// Clone returns a deep copy so emitted records never alias the caller's snapshot.
func (t Transaction) Clone() Transaction {
	c := t
	if t.TxParams.Nonce != nil {
		nonce := *t.TxParams.Nonce
		c.TxParams.Nonce = &nonce
	}
	if t.FirstRetryBlockNumber != nil {
		block := *t.FirstRetryBlockNumber
		c.FirstRetryBlockNumber = &block
	}
	if t.Receipt != nil {
		receipt := *t.Receipt
		c.Receipt = &receipt
	}
	if t.Warning != nil {
		warning := *t.Warning
		c.Warning = &warning
	}
	return c
}

func (t Transaction) IsPending() bool {
	return t.Status == StatusSubmitted && !t.VerifiedOnBlockchain && !t.IsUserOperation
}

func (t Transaction) IsTerminal() bool {
	switch t.Status {
	case StatusConfirmed, StatusFailed, StatusDropped:
		return true
	}
	return false
}
