package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"

	"github.com/AbdulrahmanTurki/testQR/internal/domain"
)

// OrderConsumer reads order events off Kafka and folds them into the Redis
// sales aggregates served by analytics.
type OrderConsumer struct {
	Reader *kafka.Reader
	Store  OrderStatsStore
}

func NewOrderConsumer(reader *kafka.Reader, store OrderStatsStore) *OrderConsumer {
	return &OrderConsumer{Reader: reader, Store: store}
}

func (c *OrderConsumer) Start(ctx context.Context) {
	log.Println("[order-agg] starting consumer")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("[order-agg] error reading message: %v", err)
			continue
		}

		var evt domain.OrderEvent
		if err := json.Unmarshal(message.Value, &evt); err != nil {
			log.Printf("[order-agg] error unmarshaling message: %v", err)
			continue
		}

		c.ProcessEvent(ctx, evt)
	}
}

// ProcessEvent only counts creations. Status updates carry no items and do
// not change what was sold.
func (c *OrderConsumer) ProcessEvent(ctx context.Context, evt domain.OrderEvent) {
	if evt.Type != domain.EventOrderCreated {
		return
	}

	log.Printf("[order-agg] processing order %d for restaurant %s", evt.OrderID, evt.UserID)

	if err := c.Store.RecordOrder(ctx, evt); err != nil {
		log.Printf("[order-agg] error recording order %d: %v", evt.OrderID, err)
		return
	}
}
