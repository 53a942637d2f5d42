package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/AbdulrahmanTurki/testQR/internal/domain"
	"github.com/AbdulrahmanTurki/testQR/internal/service"
)

type OrderServiceInterface struct {
	mock.Mock
}

func NewOrderServiceInterface(t testingT) *OrderServiceInterface {
	m := &OrderServiceInterface{}
	register(&m.Mock, t)
	return m
}

func (m *OrderServiceInterface) PlaceOrder(ctx context.Context, restaurantID, tableName string, cart []domain.CartItem) (int, error) {
	args := m.Called(ctx, restaurantID, tableName, cart)
	return args.Int(0), args.Error(1)
}

func (m *OrderServiceInterface) ListActive(userID string) ([]domain.Order, error) {
	args := m.Called(userID)
	orders, _ := args.Get(0).([]domain.Order)
	return orders, args.Error(1)
}

func (m *OrderServiceInterface) UpdateStatus(ctx context.Context, userID string, orderID int, status string) error {
	return m.Called(ctx, userID, orderID, status).Error(0)
}

type MenuServiceInterface struct {
	mock.Mock
}

func NewMenuServiceInterface(t testingT) *MenuServiceInterface {
	m := &MenuServiceInterface{}
	register(&m.Mock, t)
	return m
}

func (m *MenuServiceInterface) List(userID string) ([]domain.MenuItem, error) {
	args := m.Called(userID)
	items, _ := args.Get(0).([]domain.MenuItem)
	return items, args.Error(1)
}

func (m *MenuServiceInterface) Create(userID string, item *domain.MenuItem) error {
	return m.Called(userID, item).Error(0)
}

func (m *MenuServiceInterface) Update(userID string, item *domain.MenuItem) error {
	return m.Called(userID, item).Error(0)
}

func (m *MenuServiceInterface) Delete(userID string, id int) error {
	return m.Called(userID, id).Error(0)
}

func (m *MenuServiceInterface) PublicMenu(restaurantID string) (*domain.PublicMenu, error) {
	args := m.Called(restaurantID)
	menu, _ := args.Get(0).(*domain.PublicMenu)
	return menu, args.Error(1)
}

type QRServiceInterface struct {
	mock.Mock
}

func NewQRServiceInterface(t testingT) *QRServiceInterface {
	m := &QRServiceInterface{}
	register(&m.Mock, t)
	return m
}

func (m *QRServiceInterface) List(userID string) ([]domain.QrCode, error) {
	args := m.Called(userID)
	codes, _ := args.Get(0).([]domain.QrCode)
	return codes, args.Error(1)
}

func (m *QRServiceInterface) Create(userID, tableName string) (*domain.QrCode, error) {
	args := m.Called(userID, tableName)
	code, _ := args.Get(0).(*domain.QrCode)
	return code, args.Error(1)
}

func (m *QRServiceInterface) Image(userID string, id int) ([]byte, error) {
	args := m.Called(userID, id)
	png, _ := args.Get(0).([]byte)
	return png, args.Error(1)
}

func (m *QRServiceInterface) Delete(userID string, id int) error {
	return m.Called(userID, id).Error(0)
}

type AnalyticsServiceInterface struct {
	mock.Mock
}

func NewAnalyticsServiceInterface(t testingT) *AnalyticsServiceInterface {
	m := &AnalyticsServiceInterface{}
	register(&m.Mock, t)
	return m
}

func (m *AnalyticsServiceInterface) Summary(ctx context.Context, userID string) (*domain.AnalyticsSummary, error) {
	args := m.Called(ctx, userID)
	summary, _ := args.Get(0).(*domain.AnalyticsSummary)
	return summary, args.Error(1)
}

type AuthServiceInterface struct {
	mock.Mock
}

func NewAuthServiceInterface(t testingT) *AuthServiceInterface {
	m := &AuthServiceInterface{}
	register(&m.Mock, t)
	return m
}

func (m *AuthServiceInterface) Signup(input service.SignupInput) (domain.User, error) {
	args := m.Called(input)
	user, _ := args.Get(0).(domain.User)
	return user, args.Error(1)
}

func (m *AuthServiceInterface) Signin(email, password string) (string, error) {
	args := m.Called(email, password)
	return args.String(0), args.Error(1)
}

func (m *AuthServiceInterface) ParseToken(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}

type ProfileServiceInterface struct {
	mock.Mock
}

func NewProfileServiceInterface(t testingT) *ProfileServiceInterface {
	m := &ProfileServiceInterface{}
	register(&m.Mock, t)
	return m
}

func (m *ProfileServiceInterface) Get(userID string) (domain.Profile, error) {
	args := m.Called(userID)
	profile, _ := args.Get(0).(domain.Profile)
	return profile, args.Error(1)
}

func (m *ProfileServiceInterface) Update(profile domain.Profile) error {
	return m.Called(profile).Error(0)
}
