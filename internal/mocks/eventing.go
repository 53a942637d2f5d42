package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/AbdulrahmanTurki/testQR/internal/domain"
)

type OrderNotifier struct {
	mock.Mock
}

func NewOrderNotifier(t testingT) *OrderNotifier {
	m := &OrderNotifier{}
	register(&m.Mock, t)
	return m
}

func (m *OrderNotifier) PublishOrderEvent(ctx context.Context, evt domain.OrderEvent) error {
	return m.Called(ctx, evt).Error(0)
}

type OrderPublisher struct {
	mock.Mock
}

func NewOrderPublisher(t testingT) *OrderPublisher {
	m := &OrderPublisher{}
	register(&m.Mock, t)
	return m
}

func (m *OrderPublisher) PublishOrderEvent(ctx context.Context, evt domain.OrderEvent) error {
	return m.Called(ctx, evt).Error(0)
}

type OrderStatsStore struct {
	mock.Mock
}

func NewOrderStatsStore(t testingT) *OrderStatsStore {
	m := &OrderStatsStore{}
	register(&m.Mock, t)
	return m
}

func (m *OrderStatsStore) RecordOrder(ctx context.Context, evt domain.OrderEvent) error {
	return m.Called(ctx, evt).Error(0)
}

type TopItemsStore struct {
	mock.Mock
}

func NewTopItemsStore(t testingT) *TopItemsStore {
	m := &TopItemsStore{}
	register(&m.Mock, t)
	return m
}

func (m *TopItemsStore) TopItems(ctx context.Context, userID string, limit int) ([]domain.TopItem, error) {
	args := m.Called(ctx, userID, limit)
	items, _ := args.Get(0).([]domain.TopItem)
	return items, args.Error(1)
}

type OrderEventStream struct {
	mock.Mock
}

func NewOrderEventStream(t testingT) *OrderEventStream {
	m := &OrderEventStream{}
	register(&m.Mock, t)
	return m
}

func (m *OrderEventStream) SubscribeOrderEvents(ctx context.Context) (<-chan domain.OrderEvent, func()) {
	args := m.Called(ctx)
	events, _ := args.Get(0).(<-chan domain.OrderEvent)
	stop, _ := args.Get(1).(func())
	if stop == nil {
		stop = func() {}
	}
	return events, stop
}
