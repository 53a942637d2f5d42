package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AbdulrahmanTurki/testQR/internal/domain"
	"github.com/AbdulrahmanTurki/testQR/internal/mocks"
	"github.com/AbdulrahmanTurki/testQR/internal/service"
)

func historyFixture() []domain.Order {
	now := time.Now()
	orders := make([]domain.Order, 0, 6)
	for i := 0; i < 6; i++ {
		orders = append(orders, domain.Order{
			ID:         10 - i,
			UserID:     "u1",
			TableName:  "Table 1",
			Status:     domain.StatusCompleted,
			TotalPrice: 10.00,
			CreatedAt:  now.Add(-time.Duration(i) * time.Hour),
			Items: []domain.OrderItem{
				{MenuItemID: 1, Name: "Burger", Quantity: 2, PriceAtTime: 4.00},
				{MenuItemID: 2, Name: "Fries", Quantity: 1, PriceAtTime: 2.00},
			},
		})
	}
	return orders
}

func TestAnalyticsService_Summary_FallbackTally(t *testing.T) {
	repository := mocks.NewOrderRepository(t)
	board := mocks.NewTopItemsStore(t)
	svc := service.NewAnalyticsService(repository, board)

	ctx := context.Background()
	repository.On("ListOrderHistory", "u1").Return(historyFixture(), nil).Once()
	board.On("TopItems", ctx, "u1", 5).Return([]domain.TopItem{}, nil).Once()

	summary, err := svc.Summary(ctx, "u1")
	assert.NoError(t, err)

	assert.Equal(t, 60.00, summary.TotalRevenue)
	assert.Equal(t, 6, summary.TotalOrders)
	// every order belongs to the one restaurant owner
	assert.Equal(t, 1, summary.CustomerCount)
	assert.Len(t, summary.RecentOrders, 5)

	// 6 orders x 2 burgers and x 1 fries, tallied from history
	assert.Equal(t, []domain.TopItem{
		{Name: "Burger", Quantity: 12},
		{Name: "Fries", Quantity: 6},
	}, summary.TopItems)
}

func TestAnalyticsService_Summary_PrefersLeaderboard(t *testing.T) {
	repository := mocks.NewOrderRepository(t)
	board := mocks.NewTopItemsStore(t)
	svc := service.NewAnalyticsService(repository, board)

	ctx := context.Background()
	repository.On("ListOrderHistory", "u1").Return(historyFixture(), nil).Once()
	board.On("TopItems", ctx, "u1", 5).Return([]domain.TopItem{
		{Name: "Burger", Quantity: 40},
	}, nil).Once()

	summary, err := svc.Summary(ctx, "u1")
	assert.NoError(t, err)
	assert.Equal(t, []domain.TopItem{{Name: "Burger", Quantity: 40}}, summary.TopItems)
}

func TestAnalyticsService_Summary_BoardErrorFallsBack(t *testing.T) {
	repository := mocks.NewOrderRepository(t)
	board := mocks.NewTopItemsStore(t)
	svc := service.NewAnalyticsService(repository, board)

	ctx := context.Background()
	repository.On("ListOrderHistory", "u1").Return(historyFixture(), nil).Once()
	board.On("TopItems", ctx, "u1", 5).Return(nil, errors.New("redis down")).Once()

	summary, err := svc.Summary(ctx, "u1")
	assert.NoError(t, err)
	assert.NotEmpty(t, summary.TopItems)
}

func TestAnalyticsService_Summary_EmptyHistory(t *testing.T) {
	repository := mocks.NewOrderRepository(t)
	board := mocks.NewTopItemsStore(t)
	svc := service.NewAnalyticsService(repository, board)

	ctx := context.Background()
	repository.On("ListOrderHistory", "u1").Return([]domain.Order{}, nil).Once()
	board.On("TopItems", ctx, "u1", 5).Return([]domain.TopItem{}, nil).Once()

	summary, err := svc.Summary(ctx, "u1")
	assert.NoError(t, err)
	assert.Zero(t, summary.TotalRevenue)
	assert.Zero(t, summary.TotalOrders)
	assert.Zero(t, summary.CustomerCount)
	assert.Empty(t, summary.RecentOrders)
	assert.Empty(t, summary.TopItems)
}
