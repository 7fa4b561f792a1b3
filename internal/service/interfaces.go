package service

import (
	"context"

	"restomanage/internal/domain"
	"restomanage/internal/storage"
)

type DishRepository interface {
	CreateDish(dish *domain.Dish) error
	ListDishes(filter domain.DishFilter) ([]domain.Dish, error)
	GetDish(id int) (*domain.Dish, error)
	UpdateDish(dish *domain.Dish) error
	DeleteDish(id int) (int64, error)
}

type ClientRepository interface {
	CreateClient(client *domain.Client) error
	ListClients(filter domain.ClientFilter) ([]domain.Client, error)
	GetClient(id int) (*domain.Client, error)
	UpdateClient(client *domain.Client) error
	DeleteClient(id int) (int64, error)
}

type OrderRepository interface {
	CreateOrder(order *domain.Order) error
	GetOrder(id int) (*domain.Order, error)
	ListOrders(limit, offset int) ([]domain.Order, error)
}

type AnalyticsRepository interface {
	ListDishes(filter domain.DishFilter) ([]domain.Dish, error)
	ClientOrders(clientID int) ([]domain.ClientOrderSummary, error)
	TopClientsBySpend(limit int) ([]domain.ClientSpend, error)
	OrderBreakdown(orderID int) (*domain.OrderBreakdown, error)
	RaisePrices(category string, minCalories int, percent float64) (int64, error)
}

type ReportCache interface {
	GetTopClients(ctx context.Context, limit int) ([]domain.ClientSpend, error)
	SetTopClients(ctx context.Context, limit int, spenders []domain.ClientSpend) error
	Invalidate(ctx context.Context) error
}

type OrderPublisher interface {
	PublishOrderCreated(ctx context.Context, event domain.OrderEvent) error
}

type DishServiceInterface interface {
	Create(dish *domain.Dish) error
	List(filter domain.DishFilter) ([]domain.Dish, error)
	Get(id int) (*domain.Dish, error)
	Patch(id int, patch domain.DishPatch) (*domain.Dish, error)
	Delete(id int) error
}

type ClientServiceInterface interface {
	Create(client *domain.Client) error
	List(filter domain.ClientFilter) ([]domain.Client, error)
	Get(id int) (*domain.Client, error)
	Patch(id int, patch domain.ClientPatch) (*domain.Client, error)
	Delete(id int) error
}

type OrderServiceInterface interface {
	Create(ctx context.Context, req domain.OrderCreate) (*domain.Order, error)
	Get(id int) (*domain.Order, error)
	List(limit, offset int) ([]domain.Order, error)
	ReceiptQR(id int) ([]byte, error)
}

type AnalyticsServiceInterface interface {
	FilterDishes(filter domain.DishFilter) ([]domain.Dish, error)
	ClientOrders(clientID int) ([]domain.ClientOrderSummary, error)
	TopClients(ctx context.Context, limit int) ([]domain.ClientSpend, error)
	OrderBreakdown(orderID int) (*domain.OrderBreakdown, error)
	RaisePrices(ctx context.Context, category string, minCalories int, percent float64) (domain.PriceRaiseResult, error)
}

var (
	_ DishRepository      = (*storage.PostgresRepository)(nil)
	_ ClientRepository    = (*storage.PostgresRepository)(nil)
	_ OrderRepository     = (*storage.PostgresRepository)(nil)
	_ AnalyticsRepository = (*storage.PostgresRepository)(nil)
	_ ReportCache         = (*storage.RedisCache)(nil)
	_ OrderPublisher      = (*storage.KafkaPublisher)(nil)
)
