package storage

import (
	"database/sql"
	"fmt"

	"github.com/AbdulrahmanTurki/testQR/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

// EnsureSchema creates the tables on first start. Statements are idempotent
// so restarts against an existing database are safe.
func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			email TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS profiles (
			id TEXT PRIMARY KEY REFERENCES users(id),
			full_name TEXT NOT NULL DEFAULT '',
			restaurant_name TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS menu_items (
			id SERIAL PRIMARY KEY,
			user_id TEXT NOT NULL REFERENCES users(id),
			name TEXT NOT NULL,
			category TEXT NOT NULL DEFAULT '',
			price NUMERIC(10,2) NOT NULL CHECK (price >= 0),
			status TEXT NOT NULL DEFAULT 'Available',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			user_id TEXT NOT NULL REFERENCES users(id),
			table_name TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'New',
			total_price NUMERIC(10,2) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id SERIAL PRIMARY KEY,
			order_id INT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			menu_item_id INT NOT NULL,
			quantity INT NOT NULL,
			price_at_time NUMERIC(10,2) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS qr_codes (
			id SERIAL PRIMARY KEY,
			user_id TEXT NOT NULL REFERENCES users(id),
			table_name TEXT NOT NULL,
			qr_value TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}

	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// --- users ---

func (r *PostgresRepository) CreateUser(user *domain.User) error {
	return r.DB.QueryRow(`
		INSERT INTO users (id, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`, user.ID, user.Email, user.PasswordHash).Scan(&user.CreatedAt)
}

func (r *PostgresRepository) GetUserByEmail(email string) (domain.User, error) {
	var user domain.User
	err := r.DB.QueryRow(`
		SELECT id, email, password_hash, created_at
		FROM users
		WHERE email = $1
	`, email).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt)
	return user, err
}

// --- profiles ---

func (r *PostgresRepository) GetProfile(id string) (domain.Profile, error) {
	var profile domain.Profile
	err := r.DB.QueryRow(`
		SELECT id, full_name, restaurant_name
		FROM profiles
		WHERE id = $1
	`, id).Scan(&profile.ID, &profile.FullName, &profile.RestaurantName)
	return profile, err
}

func (r *PostgresRepository) UpsertProfile(profile domain.Profile) error {
	_, err := r.DB.Exec(`
		INSERT INTO profiles (id, full_name, restaurant_name)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE
		SET full_name = EXCLUDED.full_name, restaurant_name = EXCLUDED.restaurant_name
	`, profile.ID, profile.FullName, profile.RestaurantName)
	return err
}

// --- menu items ---

func (r *PostgresRepository) CreateMenuItem(item *domain.MenuItem) error {
	return r.DB.QueryRow(`
		INSERT INTO menu_items (user_id, name, category, price, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, item.UserID, item.Name, item.Category, item.Price, item.Status).
		Scan(&item.ID, &item.CreatedAt)
}

func (r *PostgresRepository) ListMenuItems(userID string) ([]domain.MenuItem, error) {
	return r.queryMenuItems(`
		SELECT id, user_id, name, COALESCE(category, ''), price, status, created_at
		FROM menu_items
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
}

func (r *PostgresRepository) ListAvailableMenuItems(userID string) ([]domain.MenuItem, error) {
	return r.queryMenuItems(`
		SELECT id, user_id, name, COALESCE(category, ''), price, status, created_at
		FROM menu_items
		WHERE user_id = $1 AND status = 'Available'
		ORDER BY created_at DESC
	`, userID)
}

func (r *PostgresRepository) queryMenuItems(query string, args ...interface{}) ([]domain.MenuItem, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.UserID, &item.Name, &item.Category,
			&item.Price, &item.Status, &item.CreatedAt); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *PostgresRepository) UpdateMenuItem(userID string, item *domain.MenuItem) error {
	result, err := r.DB.Exec(`
		UPDATE menu_items
		SET name = $1, category = $2, price = $3, status = $4
		WHERE id = $5 AND user_id = $6
	`, item.Name, item.Category, item.Price, item.Status, item.ID, userID)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteMenuItem removes a menu item only. Historical order_items keep their
// menu_item_id and price_at_time, so past totals are unaffected.
func (r *PostgresRepository) DeleteMenuItem(userID string, id int) error {
	result, err := r.DB.Exec(`
		DELETE FROM menu_items WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// --- orders ---

func (r *PostgresRepository) InsertOrder(order *domain.Order) error {
	return r.DB.QueryRow(`
		INSERT INTO orders (user_id, table_name, status, total_price)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, order.UserID, order.TableName, order.Status, order.TotalPrice).
		Scan(&order.ID, &order.CreatedAt)
}

func (r *PostgresRepository) InsertOrderItems(orderID int, items []domain.CartItem) error {
	for _, item := range items {
		_, err := r.DB.Exec(`
			INSERT INTO order_items (order_id, menu_item_id, quantity, price_at_time)
			VALUES ($1, $2, $3, $4)
		`, orderID, item.MenuItemID, item.Quantity, item.Price)
		if err != nil {
			return fmt.Errorf("insert order item for menu item %d: %w", item.MenuItemID, err)
		}
	}
	return nil
}

func (r *PostgresRepository) DeleteOrder(orderID int) error {
	_, err := r.DB.Exec(`DELETE FROM orders WHERE id = $1`, orderID)
	return err
}

func (r *PostgresRepository) OrderStatus(userID string, orderID int) (string, error) {
	var status string
	err := r.DB.QueryRow(`
		SELECT status FROM orders WHERE id = $1 AND user_id = $2
	`, orderID, userID).Scan(&status)
	return status, err
}

func (r *PostgresRepository) UpdateOrderStatus(userID string, orderID int, status string) error {
	result, err := r.DB.Exec(`
		UPDATE orders SET status = $1 WHERE id = $2 AND user_id = $3
	`, status, orderID, userID)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ListActiveOrders returns the kitchen display feed: open orders oldest
// first, each with its line items.
func (r *PostgresRepository) ListActiveOrders(userID string) ([]domain.Order, error) {
	return r.queryOrders(`
		SELECT id, user_id, table_name, status, total_price, created_at
		FROM orders
		WHERE user_id = $1 AND status IN ('New', 'In Progress', 'Ready')
		ORDER BY created_at ASC
	`, userID)
}

func (r *PostgresRepository) ListOrderHistory(userID string) ([]domain.Order, error) {
	return r.queryOrders(`
		SELECT id, user_id, table_name, status, total_price, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
}

func (r *PostgresRepository) queryOrders(query string, args ...interface{}) ([]domain.Order, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.UserID, &order.TableName,
			&order.Status, &order.TotalPrice, &order.CreatedAt); err != nil {
			continue
		}
		orders = append(orders, order)
	}

	for i := range orders {
		items, err := r.orderItems(orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (r *PostgresRepository) orderItems(orderID int) ([]domain.OrderItem, error) {
	rows, err := r.DB.Query(`
		SELECT oi.id, oi.order_id, oi.menu_item_id, COALESCE(m.name, 'Unknown Item'),
		       oi.quantity, oi.price_at_time
		FROM order_items oi
		LEFT JOIN menu_items m ON oi.menu_item_id = m.id
		WHERE oi.order_id = $1
		ORDER BY oi.id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.OrderItem{}
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.MenuItemID,
			&item.Name, &item.Quantity, &item.PriceAtTime); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// --- qr codes ---

func (r *PostgresRepository) InsertQRCode(code *domain.QrCode) error {
	return r.DB.QueryRow(`
		INSERT INTO qr_codes (user_id, table_name, qr_value)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, code.UserID, code.TableName, code.QrValue).
		Scan(&code.ID, &code.CreatedAt)
}

func (r *PostgresRepository) ListQRCodes(userID string) ([]domain.QrCode, error) {
	rows, err := r.DB.Query(`
		SELECT id, user_id, table_name, qr_value, created_at
		FROM qr_codes
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	codes := []domain.QrCode{}
	for rows.Next() {
		var code domain.QrCode
		if err := rows.Scan(&code.ID, &code.UserID, &code.TableName,
			&code.QrValue, &code.CreatedAt); err != nil {
			continue
		}
		codes = append(codes, code)
	}
	return codes, nil
}

func (r *PostgresRepository) GetQRCode(userID string, id int) (domain.QrCode, error) {
	var code domain.QrCode
	err := r.DB.QueryRow(`
		SELECT id, user_id, table_name, qr_value, created_at
		FROM qr_codes
		WHERE id = $1 AND user_id = $2
	`, id, userID).Scan(&code.ID, &code.UserID, &code.TableName, &code.QrValue, &code.CreatedAt)
	return code, err
}

func (r *PostgresRepository) DeleteQRCode(userID string, id int) error {
	result, err := r.DB.Exec(`
		DELETE FROM qr_codes WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
