package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/AbdulrahmanTurki/testQR/internal/domain"
)

const (
	recentOrdersLimit = 5
	topItemsLimit     = 5
)

type AnalyticsService struct {
	repository OrderRepository
	board      TopItemsStore
}

func NewAnalyticsService(repository OrderRepository, board TopItemsStore) *AnalyticsService {
	return &AnalyticsService{repository: repository, board: board}
}

// Summary fetches the full order history in one query and aggregates it in
// memory: revenue sum, order count, distinct-customer count over user ids,
// the five most recent orders and the five best-selling items. Fine for
// small restaurants; no server-side aggregation needed.
func (s *AnalyticsService) Summary(ctx context.Context, userID string) (*domain.AnalyticsSummary, error) {
	orders, err := s.repository.ListOrderHistory(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order history: %w", err)
	}

	summary := &domain.AnalyticsSummary{
		TotalOrders:  len(orders),
		RecentOrders: []domain.Order{},
	}

	customers := map[string]struct{}{}
	for _, order := range orders {
		summary.TotalRevenue += order.TotalPrice
		customers[order.UserID] = struct{}{}
	}
	summary.CustomerCount = len(customers)

	if len(orders) > recentOrdersLimit {
		summary.RecentOrders = orders[:recentOrdersLimit]
	} else {
		summary.RecentOrders = orders
	}

	summary.TopItems = s.topItems(ctx, userID, orders)

	return summary, nil
}

// topItems prefers the Redis leaderboard kept by the event consumer and
// falls back to tallying the history when the board is empty or unreachable.
func (s *AnalyticsService) topItems(ctx context.Context, userID string, orders []domain.Order) []domain.TopItem {
	if s.board != nil {
		items, err := s.board.TopItems(ctx, userID, topItemsLimit)
		if err == nil && len(items) > 0 {
			return items
		}
	}
	return tallyTopItems(orders, topItemsLimit)
}

func tallyTopItems(orders []domain.Order, limit int) []domain.TopItem {
	counts := map[string]int{}
	for _, order := range orders {
		for _, item := range order.Items {
			if item.Name == "" {
				continue
			}
			counts[item.Name] += item.Quantity
		}
	}

	items := make([]domain.TopItem, 0, len(counts))
	for name, quantity := range counts {
		items = append(items, domain.TopItem{Name: name, Quantity: quantity})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Quantity != items[j].Quantity {
			return items[i].Quantity > items[j].Quantity
		}
		return items[i].Name < items[j].Name
	})

	if len(items) > limit {
		items = items[:limit]
	}
	return items
}
