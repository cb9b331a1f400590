package events

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/slicelab/pizza-store-api/internal/domains/orders/domain"
	"github.com/slicelab/pizza-store-api/internal/domains/orders/ports"
)

var _ ports.EventPublisher = (*KafkaPublisher)(nil)

// DefaultTopic is the stream downstream services consume order events from.
const DefaultTopic = "pizza-store.orders.placed"

// orderPlacedEvent is the wire shape published for each accepted order.
type orderPlacedEvent struct {
	OrderID    string `json:"order_id"`
	Status     string `json:"status"`
	ItemCount  int    `json:"item_count"`
	Total      string `json:"total"`
	OccurredAt string `json:"occurred_at"`
}

// KafkaPublisher emits order-placed events keyed by order ID.
type KafkaPublisher struct {
	writer *kafka.Writer
}

// NewKafkaPublisher builds a publisher from a comma-separated broker list.
// It returns nil when no brokers are configured; callers treat a nil
// publisher as "events disabled".
func NewKafkaPublisher(brokersCSV, topic string) *KafkaPublisher {
	var brokers []string
	for _, b := range strings.Split(brokersCSV, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	if len(brokers) == 0 {
		return nil
	}
	if topic == "" {
		topic = DefaultTopic
	}
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

// OrderPlaced publishes the event for an accepted order.
func (p *KafkaPublisher) OrderPlaced(ctx context.Context, order *domain.Order) error {
	payload, err := json.Marshal(orderPlacedEvent{
		OrderID:    order.ID,
		Status:     string(order.Status),
		ItemCount:  len(order.Items),
		Total:      order.Totals.Total.StringFixed(2),
		OccurredAt: order.CreatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(order.ID),
		Value: payload,
	})
}

// Close flushes and closes the underlying writer.
func (p *KafkaPublisher) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
