package payload

import (
	"regexp"

	"txwatch/internal/core"

	"github.com/jellydator/validation"
)

var (
	hashRegex  = regexp.MustCompile(`^0x[a-fA-F0-9]{64}$`)
	rawTxRegex = regexp.MustCompile(`^0x([a-fA-F0-9]{2})+$`)
)

// SubmitTransactionRequest registers a transaction that was already broadcast.
// Either the signed payload or the hash must be present.
type SubmitTransactionRequest struct {
	NetworkClientID string               `json:"networkClientId"`
	Hash            string               `json:"hash"`
	RawTx           string               `json:"rawTx"`
	Type            core.TransactionType `json:"type"`
}

func (s SubmitTransactionRequest) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.NetworkClientID, validation.Required),
		validation.Field(&s.Hash,
			validation.When(s.RawTx == "", validation.Required),
			validation.Match(hashRegex),
		),
		validation.Field(&s.RawTx, validation.Match(rawTxRegex)),
		validation.Field(&s.Type, validation.Length(0, 32)),
	)
}

type StatusFilter struct {
	Status core.TransactionStatus
}

func (f StatusFilter) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Status, validation.In(
			core.StatusSubmitted,
			core.StatusConfirmed,
			core.StatusFailed,
			core.StatusDropped,
		)),
	)
}
