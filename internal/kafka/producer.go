package kafka

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"txwatch/internal/core"
	"txwatch/internal/streaming"
	"txwatch/internal/telemetry"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const DefaultTopic = "pending-transactions"

var ErrNoBrokers error = errors.New("kafka brokers are required")

// NewWriter returns a writer that publishes to topic on the given brokers.
// Events are written one at a time, so each write flushes without waiting
// for a batch to fill.
func NewWriter(brokers []string, topic string) (*kafka.Writer, error) {
	if len(brokers) == 0 {
		return nil, ErrNoBrokers
	}
	if strings.TrimSpace(topic) == "" {
		topic = DefaultTopic
	}
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchSize:    1,
		BatchTimeout: 10 * time.Millisecond,
		WriteTimeout: 5 * time.Second,
	}, nil
}

// EventProducer publishes tracker events. Messages are keyed by transaction
// id so every event of one transaction lands on the same partition.
type EventProducer struct {
	logs   *zap.SugaredLogger
	writer MessageWriter
	now    func() time.Time
}

func NewEventProducer(logger *zap.SugaredLogger, writer MessageWriter) *EventProducer {
	return &EventProducer{
		logs:   logger,
		writer: writer,
		now:    time.Now,
	}
}

func (p *EventProducer) PublishEvent(ctx context.Context, ev core.Event) error {
	ctx, span := otel.Tracer("txwatch/kafka").Start(ctx, "tracker.publish_event", trace.WithSpanKind(trace.SpanKindProducer))
	defer span.End()

	tx := ev.Transaction
	span.SetAttributes(
		attribute.String("event.kind", string(ev.Kind)),
		attribute.String("tx.id", tx.ID),
		attribute.String("tx.hash", tx.Hash),
		attribute.String("chain.id", tx.ChainID),
	)

	msg := streaming.FromEvent(ev, p.now())
	if sc := span.SpanContext(); sc.HasTraceID() {
		msg.TraceID = sc.TraceID().String()
	}

	payload, err := streaming.Encode(msg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("encode event: %w", err)
	}

	headers := make([]kafka.Header, 0, 2)
	telemetry.InjectKafkaHeaders(ctx, &headers)

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:     []byte(tx.ID),
		Value:   payload,
		Headers: headers,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("write messages: %w", err)
	}
	return nil
}

// QueueSize bounds the events waiting to be published. Events arriving while
// the queue is full are dropped so a slow broker never backs up the hub.
const QueueSize = 256

// Run publishes every event received on events until ctx is done or the
// channel is closed. Publish failures are logged and do not stop the loop.
func (p *EventProducer) Run(ctx context.Context, events <-chan core.Event) {
	queue := make(chan core.Event, QueueSize)
	go p.enqueue(ctx, events, queue)

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-queue:
			if !ok {
				return
			}
			if err := p.PublishEvent(ctx, ev); err != nil {
				p.logs.Errorw("failed to publish tracker event",
					"kind", ev.Kind,
					"id", ev.Transaction.ID,
					"error", err,
				)
			}
		}
	}
}

func (p *EventProducer) enqueue(ctx context.Context, events <-chan core.Event, queue chan<- core.Event) {
	defer close(queue)
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			select {
			case queue <- ev:
			default:
				p.logs.Warnw("event queue full, dropping tracker event",
					"kind", ev.Kind,
					"id", ev.Transaction.ID,
				)
			}
		}
	}
}

func (p *EventProducer) Close() error {
	return p.writer.Close()
}
