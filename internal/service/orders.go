package service

import (
	"context"
	"errors"
	"time"

	"restomanage/internal/domain"
)

var ErrInvalidQuantity = errors.New("item quantity must be at least 1")

type OrderService struct {
	repo      OrderRepository
	cache     ReportCache
	publisher OrderPublisher
	qrEncoder QRGenerator
}

func NewOrderService(repo OrderRepository, cache ReportCache, publisher OrderPublisher, qr QRGenerator) *OrderService {
	return &OrderService{repo: repo, cache: cache, publisher: publisher, qrEncoder: qr}
}

// Create persists the order and its items as one unit. Client and dish
// references are validated inside the repository transaction; a failure on
// any item leaves nothing behind.
func (s *OrderService) Create(ctx context.Context, req domain.OrderCreate) (*domain.Order, error) {
	for _, item := range req.Items {
		if item.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
	}

	order := &domain.Order{
		ClientID:    req.ClientID,
		PaymentType: req.PaymentType,
		Items:       req.Items,
	}
	if err := s.repo.CreateOrder(order); err != nil {
		return nil, err
	}

	// Post-commit fan-out is best-effort: the order is durable either way.
	if s.publisher != nil {
		_ = s.publisher.PublishOrderCreated(ctx, domain.OrderEvent{
			Type:      domain.EventOrderCreated,
			OrderID:   order.ID,
			ClientID:  order.ClientID,
			ItemCount: len(order.Items),
			Timestamp: time.Now(),
		})
	}
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx)
	}

	return order, nil
}

func (s *OrderService) Get(id int) (*domain.Order, error) {
	return s.repo.GetOrder(id)
}

func (s *OrderService) List(limit, offset int) ([]domain.Order, error) {
	return s.repo.ListOrders(clampLimit(limit, 50, 200), clampOffset(offset))
}

func (s *OrderService) ReceiptQR(id int) ([]byte, error) {
	if _, err := s.repo.GetOrder(id); err != nil {
		return nil, err
	}
	return s.qrEncoder.Generate(id)
}

var _ OrderServiceInterface = (*OrderService)(nil)
