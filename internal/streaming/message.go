package streaming

import (
	"encoding/json"
	"errors"
	"time"

	"txwatch/internal/core"
)

type MessageType string

const (
	MessageTypeConfirmed MessageType = MessageType(core.EventConfirmed)
	MessageTypeFailed    MessageType = MessageType(core.EventFailed)
	MessageTypeDropped   MessageType = MessageType(core.EventDropped)
	MessageTypeUpdated   MessageType = MessageType(core.EventUpdated)
)

// Message is the envelope published for every tracker event.
type Message struct {
	Type            MessageType      `json:"type"`
	ChainID         string           `json:"chain_id"`
	NetworkClientID string           `json:"network_client_id"`
	TransactionID   string           `json:"transaction_id"`
	TraceID         string           `json:"trace_id,omitempty"`
	Hash            string           `json:"hash,omitempty"`
	Status          string           `json:"status"`
	Error           string           `json:"error,omitempty"`
	Note            string           `json:"note,omitempty"`
	EmittedAt       time.Time        `json:"emitted_at"`
	Transaction     core.Transaction `json:"transaction"`
}

func FromEvent(ev core.Event, emittedAt time.Time) Message {
	msg := Message{
		Type:            MessageType(ev.Kind),
		ChainID:         ev.Transaction.ChainID,
		NetworkClientID: ev.Transaction.NetworkClientID,
		TransactionID:   ev.Transaction.ID,
		Hash:            ev.Transaction.Hash,
		Status:          string(ev.Transaction.Status),
		Note:            ev.Note,
		EmittedAt:       emittedAt.UTC(),
		Transaction:     ev.Transaction,
	}
	if ev.Err != nil {
		msg.Error = ev.Err.Error()
	}
	return msg
}

func Encode(msg Message) ([]byte, error) {
	if msg.Type == "" {
		return nil, errors.New("message type is required")
	}
	if msg.ChainID == "" {
		return nil, errors.New("chain_id is required")
	}
	if msg.TransactionID == "" {
		return nil, errors.New("transaction_id is required")
	}
	return json.Marshal(msg)
}

func Decode(payload []byte) (Message, error) {
	var msg Message
	if err := json.Unmarshal(payload, &msg); err != nil {
		return Message{}, err
	}
	if msg.Type == "" {
		return Message{}, errors.New("message type is missing")
	}
	if msg.ChainID == "" {
		return Message{}, errors.New("chain_id is missing")
	}
	if msg.TransactionID == "" {
		return Message{}, errors.New("transaction_id is missing")
	}
	return msg, nil
}
