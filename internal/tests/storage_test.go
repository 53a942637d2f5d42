package tests

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/AbdulrahmanTurki/testQR/internal/domain"
	"github.com/AbdulrahmanTurki/testQR/internal/mocks"
	"github.com/AbdulrahmanTurki/testQR/internal/service"
	"github.com/AbdulrahmanTurki/testQR/internal/storage"
)

func setupRepository(t *testing.T) (*storage.PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return storage.NewPostgresRepository(db), mock
}

func TestPostgresRepository_InsertOrder(t *testing.T) {
	repository, mock := setupRepository(t)

	created := time.Now()
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs("u1", "Patio 5", domain.StatusNew, 25.50).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(7, created))

	order := domain.Order{UserID: "u1", TableName: "Patio 5", Status: domain.StatusNew, TotalPrice: 25.50}
	assert.NoError(t, repository.InsertOrder(&order))
	assert.Equal(t, 7, order.ID)
	assert.Equal(t, created, order.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_InsertOrderItems_StopsOnFirstError(t *testing.T) {
	repository, mock := setupRepository(t)

	mock.ExpectExec("INSERT INTO order_items").
		WithArgs(7, 1, 2, 10.00).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs(7, 2, 1, 5.50).
		WillReturnError(errors.New("constraint violation"))

	err := repository.InsertOrderItems(7, []domain.CartItem{
		{MenuItemID: 1, Price: 10.00, Quantity: 2},
		{MenuItemID: 2, Price: 5.50, Quantity: 1},
	})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Exercises the full compensation path against SQL: item insert fails after
// the order row exists, so the order row is deleted again.
func TestPlaceOrder_CompensatingDeleteAgainstSQL(t *testing.T) {
	repository, mock := setupRepository(t)

	mock.ExpectQuery("INSERT INTO orders").
		WithArgs("u1", "Patio 5", domain.StatusNew, 20.00).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(8, time.Now()))
	mock.ExpectExec("INSERT INTO order_items").
		WillReturnError(errors.New("constraint violation"))
	mock.ExpectExec("DELETE FROM orders").
		WithArgs(8).
		WillReturnResult(sqlmock.NewResult(0, 1))

	svc := service.NewOrderService(repository, mocks.NewOrderNotifier(t), mocks.NewOrderPublisher(t))
	_, err := svc.PlaceOrder(context.Background(), "u1", "Patio 5",
		[]domain.CartItem{{MenuItemID: 1, Name: "Burger", Price: 10.00, Quantity: 2}})

	assert.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrCompensationFailed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_ListActiveOrders(t *testing.T) {
	repository, mock := setupRepository(t)

	earlier := time.Now().Add(-time.Hour)
	later := time.Now()

	mock.ExpectQuery("SELECT id, user_id, table_name, status, total_price, created_at").
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "table_name", "status", "total_price", "created_at"}).
			AddRow(1, "u1", "Patio 5", domain.StatusNew, 25.50, earlier).
			AddRow(2, "u1", "Table 2", domain.StatusReady, 9.00, later))
	mock.ExpectQuery("FROM order_items").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "menu_item_id", "name", "quantity", "price_at_time"}).
			AddRow(10, 1, 1, "Burger", 2, 10.00))
	mock.ExpectQuery("FROM order_items").
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "menu_item_id", "name", "quantity", "price_at_time"}).
			AddRow(11, 2, 2, "Unknown Item", 1, 9.00))

	orders, err := repository.ListActiveOrders("u1")
	assert.NoError(t, err)
	assert.Len(t, orders, 2)
	// creation-time ascending, as the kitchen display expects
	assert.Equal(t, 1, orders[0].ID)
	assert.Equal(t, 2, orders[1].ID)
	assert.Equal(t, "Burger", orders[0].Items[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_UpdateMenuItem_NotFound(t *testing.T) {
	repository, mock := setupRepository(t)

	mock.ExpectExec("UPDATE menu_items").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repository.UpdateMenuItem("u1", &domain.MenuItem{ID: 42, Name: "Burger", Price: 9})
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestPostgresRepository_UpdateOrderStatus(t *testing.T) {
	repository, mock := setupRepository(t)

	mock.ExpectExec("UPDATE orders SET status").
		WithArgs(domain.StatusReady, 5, "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repository.UpdateOrderStatus("u1", 5, domain.StatusReady))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_GetUserByEmail(t *testing.T) {
	repository, mock := setupRepository(t)

	mock.ExpectQuery("SELECT id, email, password_hash, created_at").
		WithArgs("owner@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "created_at"}).
			AddRow("u1", "owner@example.com", "hash", time.Now()))

	user, err := repository.GetUserByEmail("owner@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
}

func TestPostgresRepository_DeleteQRCode_NotFound(t *testing.T) {
	repository, mock := setupRepository(t)

	mock.ExpectExec("DELETE FROM qr_codes").
		WithArgs(99, "u1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repository.DeleteQRCode("u1", 99), sql.ErrNoRows)
}
