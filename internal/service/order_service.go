package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/AbdulrahmanTurki/testQR/internal/domain"
)

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrMissingTable       = errors.New("table name is required")
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrCompensationFailed = errors.New("order cleanup failed, orphaned order left behind")
)

// nextStatus encodes the only transitions staff may perform: strictly
// forward, one step at a time.
var nextStatus = map[string]string{
	domain.StatusNew:        domain.StatusInProgress,
	domain.StatusInProgress: domain.StatusReady,
	domain.StatusReady:      domain.StatusCompleted,
}

type OrderService struct {
	repository OrderRepository
	notifier   OrderNotifier
	publisher  OrderPublisher
}

func NewOrderService(repository OrderRepository, notifier OrderNotifier, publisher OrderPublisher) *OrderService {
	return &OrderService{
		repository: repository,
		notifier:   notifier,
		publisher:  publisher,
	}
}

// PlaceOrder records one order and its line items, or nothing. The total is
// always computed here from the cart; any client-supplied total is ignored.
// Item insertion failing after the order row exists triggers a best-effort
// compensating delete. If that delete also fails the orphaned order is
// reported with ErrCompensationFailed so it can be observed and cleaned up.
func (s *OrderService) PlaceOrder(ctx context.Context, restaurantID, tableName string, cart []domain.CartItem) (int, error) {
	if tableName == "" {
		return 0, ErrMissingTable
	}
	if len(cart) == 0 {
		return 0, ErrEmptyCart
	}

	var total float64
	for _, item := range cart {
		total += item.Price * float64(item.Quantity)
	}

	order := domain.Order{
		UserID:     restaurantID,
		TableName:  tableName,
		Status:     domain.StatusNew,
		TotalPrice: total,
	}
	if err := s.repository.InsertOrder(&order); err != nil {
		return 0, fmt.Errorf("failed to create order: %w", err)
	}

	if err := s.repository.InsertOrderItems(order.ID, cart); err != nil {
		if delErr := s.repository.DeleteOrder(order.ID); delErr != nil {
			return 0, fmt.Errorf("%w: order %d: delete: %v (items: %v)",
				ErrCompensationFailed, order.ID, delErr, err)
		}
		return 0, fmt.Errorf("failed to create order items: %w", err)
	}

	s.emit(ctx, domain.OrderEvent{
		Type:       domain.EventOrderCreated,
		OrderID:    order.ID,
		UserID:     restaurantID,
		Status:     order.Status,
		TotalPrice: total,
		Items:      eventItems(cart),
		Timestamp:  time.Now(),
	})

	return order.ID, nil
}

func (s *OrderService) ListActive(userID string) ([]domain.Order, error) {
	return s.repository.ListActiveOrders(userID)
}

// UpdateStatus moves an order one step forward. Backward or skipping
// transitions are rejected.
func (s *OrderService) UpdateStatus(ctx context.Context, userID string, orderID int, status string) error {
	current, err := s.repository.OrderStatus(userID, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrOrderNotFound
		}
		return fmt.Errorf("failed to load order: %w", err)
	}

	if nextStatus[current] != status {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, status)
	}

	if err := s.repository.UpdateOrderStatus(userID, orderID, status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrOrderNotFound
		}
		return err
	}

	s.emit(ctx, domain.OrderEvent{
		Type:      domain.EventStatusUpdated,
		OrderID:   orderID,
		UserID:    userID,
		Status:    status,
		Timestamp: time.Now(),
	})

	return nil
}

// emit publishes best-effort: a dead broker never fails the order.
func (s *OrderService) emit(ctx context.Context, evt domain.OrderEvent) {
	if s.notifier != nil {
		if err := s.notifier.PublishOrderEvent(ctx, evt); err != nil {
			log.Printf("[order-svc] notify failed for order %d: %v", evt.OrderID, err)
		}
	}
	if s.publisher != nil {
		if err := s.publisher.PublishOrderEvent(ctx, evt); err != nil {
			log.Printf("[order-svc] publish failed for order %d: %v", evt.OrderID, err)
		}
	}
}

func eventItems(cart []domain.CartItem) []domain.OrderEventItem {
	items := make([]domain.OrderEventItem, 0, len(cart))
	for _, item := range cart {
		items = append(items, domain.OrderEventItem{
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			Quantity:   item.Quantity,
		})
	}
	return items
}
