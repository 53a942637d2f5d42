package service

import (
	"context"

	"github.com/AbdulrahmanTurki/testQR/internal/domain"
)

// Repositories over Postgres.

type OrderRepository interface {
	InsertOrder(order *domain.Order) error
	InsertOrderItems(orderID int, items []domain.CartItem) error
	DeleteOrder(orderID int) error
	ListActiveOrders(userID string) ([]domain.Order, error)
	ListOrderHistory(userID string) ([]domain.Order, error)
	OrderStatus(userID string, orderID int) (string, error)
	UpdateOrderStatus(userID string, orderID int, status string) error
}

type MenuRepository interface {
	CreateMenuItem(item *domain.MenuItem) error
	ListMenuItems(userID string) ([]domain.MenuItem, error)
	ListAvailableMenuItems(userID string) ([]domain.MenuItem, error)
	UpdateMenuItem(userID string, item *domain.MenuItem) error
	DeleteMenuItem(userID string, id int) error
}

type QRRepository interface {
	InsertQRCode(code *domain.QrCode) error
	ListQRCodes(userID string) ([]domain.QrCode, error)
	GetQRCode(userID string, id int) (domain.QrCode, error)
	DeleteQRCode(userID string, id int) error
}

type ProfileRepository interface {
	GetProfile(id string) (domain.Profile, error)
	UpsertProfile(profile domain.Profile) error
}

type UserRepository interface {
	CreateUser(user *domain.User) error
	GetUserByEmail(email string) (domain.User, error)
}

// Eventing.

// OrderNotifier is the realtime change channel consumed by the kitchen
// display (Redis pub/sub).
type OrderNotifier interface {
	PublishOrderEvent(ctx context.Context, evt domain.OrderEvent) error
}

// OrderPublisher carries order events to the aggregation consumer (Kafka).
type OrderPublisher interface {
	PublishOrderEvent(ctx context.Context, evt domain.OrderEvent) error
}

type OrderEventStream interface {
	SubscribeOrderEvents(ctx context.Context) (<-chan domain.OrderEvent, func())
}

// OrderStatsStore is the consumer's sink for sales aggregates.
type OrderStatsStore interface {
	RecordOrder(ctx context.Context, evt domain.OrderEvent) error
}

// TopItemsStore serves the leaderboard read path of analytics.
type TopItemsStore interface {
	TopItems(ctx context.Context, userID string, limit int) ([]domain.TopItem, error)
}

// Service interfaces consumed by the HTTP layer.

type OrderServiceInterface interface {
	PlaceOrder(ctx context.Context, restaurantID, tableName string, cart []domain.CartItem) (int, error)
	ListActive(userID string) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, userID string, orderID int, status string) error
}

type MenuServiceInterface interface {
	List(userID string) ([]domain.MenuItem, error)
	Create(userID string, item *domain.MenuItem) error
	Update(userID string, item *domain.MenuItem) error
	Delete(userID string, id int) error
	PublicMenu(restaurantID string) (*domain.PublicMenu, error)
}

type QRServiceInterface interface {
	List(userID string) ([]domain.QrCode, error)
	Create(userID, tableName string) (*domain.QrCode, error)
	Image(userID string, id int) ([]byte, error)
	Delete(userID string, id int) error
}

type AnalyticsServiceInterface interface {
	Summary(ctx context.Context, userID string) (*domain.AnalyticsSummary, error)
}

type AuthServiceInterface interface {
	Signup(input SignupInput) (domain.User, error)
	Signin(email, password string) (string, error)
	ParseToken(token string) (string, error)
}

type ProfileServiceInterface interface {
	Get(userID string) (domain.Profile, error)
	Update(profile domain.Profile) error
}

var (
	_ OrderServiceInterface     = (*OrderService)(nil)
	_ MenuServiceInterface      = (*MenuService)(nil)
	_ QRServiceInterface        = (*QRService)(nil)
	_ AnalyticsServiceInterface = (*AnalyticsService)(nil)
	_ AuthServiceInterface      = (*AuthService)(nil)
	_ ProfileServiceInterface   = (*ProfileService)(nil)
)
