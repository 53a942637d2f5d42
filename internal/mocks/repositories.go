// Package mocks holds testify mocks for the service and storage interfaces.
package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/AbdulrahmanTurki/testQR/internal/domain"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

func register(m *mock.Mock, t testingT) {
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
}

type OrderRepository struct {
	mock.Mock
}

func NewOrderRepository(t testingT) *OrderRepository {
	m := &OrderRepository{}
	register(&m.Mock, t)
	return m
}

func (m *OrderRepository) InsertOrder(order *domain.Order) error {
	return m.Called(order).Error(0)
}

func (m *OrderRepository) InsertOrderItems(orderID int, items []domain.CartItem) error {
	return m.Called(orderID, items).Error(0)
}

func (m *OrderRepository) DeleteOrder(orderID int) error {
	return m.Called(orderID).Error(0)
}

func (m *OrderRepository) ListActiveOrders(userID string) ([]domain.Order, error) {
	args := m.Called(userID)
	orders, _ := args.Get(0).([]domain.Order)
	return orders, args.Error(1)
}

func (m *OrderRepository) ListOrderHistory(userID string) ([]domain.Order, error) {
	args := m.Called(userID)
	orders, _ := args.Get(0).([]domain.Order)
	return orders, args.Error(1)
}

func (m *OrderRepository) OrderStatus(userID string, orderID int) (string, error) {
	args := m.Called(userID, orderID)
	return args.String(0), args.Error(1)
}

func (m *OrderRepository) UpdateOrderStatus(userID string, orderID int, status string) error {
	return m.Called(userID, orderID, status).Error(0)
}

type MenuRepository struct {
	mock.Mock
}

func NewMenuRepository(t testingT) *MenuRepository {
	m := &MenuRepository{}
	register(&m.Mock, t)
	return m
}

func (m *MenuRepository) CreateMenuItem(item *domain.MenuItem) error {
	return m.Called(item).Error(0)
}

func (m *MenuRepository) ListMenuItems(userID string) ([]domain.MenuItem, error) {
	args := m.Called(userID)
	items, _ := args.Get(0).([]domain.MenuItem)
	return items, args.Error(1)
}

func (m *MenuRepository) ListAvailableMenuItems(userID string) ([]domain.MenuItem, error) {
	args := m.Called(userID)
	items, _ := args.Get(0).([]domain.MenuItem)
	return items, args.Error(1)
}

func (m *MenuRepository) UpdateMenuItem(userID string, item *domain.MenuItem) error {
	return m.Called(userID, item).Error(0)
}

func (m *MenuRepository) DeleteMenuItem(userID string, id int) error {
	return m.Called(userID, id).Error(0)
}

type QRRepository struct {
	mock.Mock
}

func NewQRRepository(t testingT) *QRRepository {
	m := &QRRepository{}
	register(&m.Mock, t)
	return m
}

func (m *QRRepository) InsertQRCode(code *domain.QrCode) error {
	return m.Called(code).Error(0)
}

func (m *QRRepository) ListQRCodes(userID string) ([]domain.QrCode, error) {
	args := m.Called(userID)
	codes, _ := args.Get(0).([]domain.QrCode)
	return codes, args.Error(1)
}

func (m *QRRepository) GetQRCode(userID string, id int) (domain.QrCode, error) {
	args := m.Called(userID, id)
	code, _ := args.Get(0).(domain.QrCode)
	return code, args.Error(1)
}

func (m *QRRepository) DeleteQRCode(userID string, id int) error {
	return m.Called(userID, id).Error(0)
}

type ProfileRepository struct {
	mock.Mock
}

func NewProfileRepository(t testingT) *ProfileRepository {
	m := &ProfileRepository{}
	register(&m.Mock, t)
	return m
}

func (m *ProfileRepository) GetProfile(id string) (domain.Profile, error) {
	args := m.Called(id)
	profile, _ := args.Get(0).(domain.Profile)
	return profile, args.Error(1)
}

func (m *ProfileRepository) UpsertProfile(profile domain.Profile) error {
	return m.Called(profile).Error(0)
}

type UserRepository struct {
	mock.Mock
}

func NewUserRepository(t testingT) *UserRepository {
	m := &UserRepository{}
	register(&m.Mock, t)
	return m
}

func (m *UserRepository) CreateUser(user *domain.User) error {
	return m.Called(user).Error(0)
}

func (m *UserRepository) GetUserByEmail(email string) (domain.User, error) {
	args := m.Called(email)
	user, _ := args.Get(0).(domain.User)
	return user, args.Error(1)
}
