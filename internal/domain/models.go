package domain

import "time"

// Order statuses. Staff move an order strictly forward, one step at a time.
const (
	StatusNew        = "New"
	StatusInProgress = "In Progress"
	StatusReady      = "Ready"
	StatusCompleted  = "Completed"
)

// Menu item statuses. Only available items are shown to customers.
const (
	MenuItemAvailable   = "Available"
	MenuItemUnavailable = "Unavailable"
)

type MenuItem struct {
	ID        int       `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Price     float64   `json:"price"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type Order struct {
	ID         int         `json:"id"`
	UserID     string      `json:"user_id"`
	TableName  string      `json:"table_name"`
	Status     string      `json:"status"`
	TotalPrice float64     `json:"total_price"`
	CreatedAt  time.Time   `json:"created_at"`
	Items      []OrderItem `json:"items"`
}

type OrderItem struct {
	ID          int     `json:"id"`
	OrderID     int     `json:"order_id"`
	MenuItemID  int     `json:"menu_item_id"`
	Name        string  `json:"name"`
	Quantity    int     `json:"quantity"`
	PriceAtTime float64 `json:"price_at_time"`
}

// CartItem is one entry of a customer cart as submitted by the menu page.
// Price is the unit price shown to the customer; it is captured into
// price_at_time so later menu edits never change historical totals.
type CartItem struct {
	MenuItemID int     `json:"menu_item_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

type QrCode struct {
	ID        int       `json:"id"`
	UserID    string    `json:"user_id"`
	TableName string    `json:"table_name"`
	QrValue   string    `json:"qr_value"`
	CreatedAt time.Time `json:"created_at"`
}

type Profile struct {
	ID             string `json:"id"`
	FullName       string `json:"full_name"`
	RestaurantName string `json:"restaurant_name"`
}

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// PublicMenu is what a scanned QR code resolves to: the restaurant name and
// its currently available items.
type PublicMenu struct {
	RestaurantName string     `json:"restaurant_name"`
	Items          []MenuItem `json:"items"`
}

// OrderEvent is published to Redis (kitchen display trigger) and Kafka
// (aggregation) whenever an order is created or its status changes.
type OrderEvent struct {
	Type       string           `json:"type"`
	OrderID    int              `json:"order_id"`
	UserID     string           `json:"user_id"`
	Status     string           `json:"status"`
	TotalPrice float64          `json:"total_price"`
	Items      []OrderEventItem `json:"items,omitempty"`
	Timestamp  time.Time        `json:"timestamp"`
}

type OrderEventItem struct {
	MenuItemID int    `json:"menu_item_id"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
}

const (
	EventOrderCreated  = "order_created"
	EventStatusUpdated = "status_updated"
)

type TopItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type AnalyticsSummary struct {
	TotalRevenue  float64   `json:"total_revenue"`
	TotalOrders   int       `json:"total_orders"`
	CustomerCount int       `json:"customer_count"`
	RecentOrders  []Order   `json:"recent_orders"`
	TopItems      []TopItem `json:"top_items"`
}
