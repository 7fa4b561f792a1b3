package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"

	"restomanage/internal/domain"
)

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

// Consumer watches order events and drops the cached leaderboard so other
// instances see fresh totals within one read instead of one TTL.
type Consumer struct {
	Reader MessageReader
	Cache  ReportCache
}

func NewConsumer(reader MessageReader, cache ReportCache) *Consumer {
	return &Consumer{Reader: reader, Cache: cache}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting order-event consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		c.Process(ctx, event)
	}
}

func (c *Consumer) Process(ctx context.Context, event domain.OrderEvent) {
	if event.Type != domain.EventOrderCreated {
		return
	}
	if err := c.Cache.Invalidate(ctx); err != nil {
		log.Printf("Error invalidating report cache: %v", err)
	}
}
