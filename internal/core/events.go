package core

import (
	"github.com/ethereum/go-ethereum/event"
)

type EventKind string

const (
	EventConfirmed EventKind = "transaction-confirmed"
	EventFailed    EventKind = "transaction-failed"
	EventDropped   EventKind = "transaction-dropped"
	EventUpdated   EventKind = "transaction-updated"
)

// Event is the payload carried by the hub. Err is set for EventFailed and
// Note for EventUpdated.
type Event struct {
	Kind        EventKind
	Transaction Transaction
	Err         error
	Note        string
}

// EventHub fans tracker events out to every subscribed channel. Send blocks
// until each subscriber has accepted the event, so subscribers should use
// buffered channels and drain them continuously.
type EventHub struct {
	feed  event.Feed
	scope event.SubscriptionScope
}

func NewEventHub() *EventHub {
	return &EventHub{}
}

func (h *EventHub) Subscribe(ch chan<- Event) event.Subscription {
	return h.scope.Track(h.feed.Subscribe(ch))
}

// Close unsubscribes every subscriber.
func (h *EventHub) Close() {
	h.scope.Close()
}

func (h *EventHub) emit(ev Event) {
	h.feed.Send(ev)
}
