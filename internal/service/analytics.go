package service

import (
	"context"

	"restomanage/internal/domain"
)

type AnalyticsService struct {
	repo  AnalyticsRepository
	cache ReportCache
}

func NewAnalyticsService(repo AnalyticsRepository, cache ReportCache) *AnalyticsService {
	return &AnalyticsService{repo: repo, cache: cache}
}

func (s *AnalyticsService) FilterDishes(filter domain.DishFilter) ([]domain.Dish, error) {
	filter.Limit = clampLimit(filter.Limit, 50, 200)
	filter.Offset = clampOffset(filter.Offset)
	return s.repo.ListDishes(filter)
}

func (s *AnalyticsService) ClientOrders(clientID int) ([]domain.ClientOrderSummary, error) {
	return s.repo.ClientOrders(clientID)
}

// TopClients serves the leaderboard from the cache when it is warm and falls
// back to the aggregate query otherwise.
func (s *AnalyticsService) TopClients(ctx context.Context, limit int) ([]domain.ClientSpend, error) {
	limit = clampLimit(limit, 10, 100)

	if s.cache != nil {
		if spenders, err := s.cache.GetTopClients(ctx, limit); err == nil {
			return spenders, nil
		}
	}

	spenders, err := s.repo.TopClientsBySpend(limit)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetTopClients(ctx, limit, spenders)
	}
	return spenders, nil
}

func (s *AnalyticsService) OrderBreakdown(orderID int) (*domain.OrderBreakdown, error) {
	return s.repo.OrderBreakdown(orderID)
}

func (s *AnalyticsService) RaisePrices(ctx context.Context, category string, minCalories int, percent float64) (domain.PriceRaiseResult, error) {
	updated, err := s.repo.RaisePrices(category, minCalories, percent)
	if err != nil {
		return domain.PriceRaiseResult{}, err
	}
	// Spend totals are computed against current prices, so the leaderboard
	// cache is stale after any adjustment.
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx)
	}
	return domain.PriceRaiseResult{Updated: updated, Category: category, Percent: percent}, nil
}

var _ AnalyticsServiceInterface = (*AnalyticsService)(nil)
