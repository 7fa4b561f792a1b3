package tests

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"restomanage/internal/domain"
	"restomanage/internal/mocks"
	"restomanage/internal/service"
)

func TestConsumer_ProcessOrderCreated(t *testing.T) {
	cache := mocks.NewReportCache(t)
	cache.On("Invalidate", mock.Anything).Return(nil)

	consumer := service.NewConsumer(nil, cache)
	consumer.Process(context.Background(), domain.OrderEvent{
		Type:      domain.EventOrderCreated,
		OrderID:   7,
		ClientID:  1,
		ItemCount: 2,
		Timestamp: time.Now(),
	})
}

func TestConsumer_IgnoresOtherEventTypes(t *testing.T) {
	cache := mocks.NewReportCache(t)

	consumer := service.NewConsumer(nil, cache)
	consumer.Process(context.Background(), domain.OrderEvent{Type: "order_deleted", OrderID: 7})

	cache.AssertNotCalled(t, "Invalidate", mock.Anything)
}
