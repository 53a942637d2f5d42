package tests

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/AbdulrahmanTurki/testQR/internal/domain"
	"github.com/AbdulrahmanTurki/testQR/internal/mocks"
	"github.com/AbdulrahmanTurki/testQR/internal/service"
)

func TestMenuService_Create(t *testing.T) {
	tests := []struct {
		name          string
		item          domain.MenuItem
		prepareMocks  func(repository *mocks.MenuRepository)
		expectedError error
	}{
		{
			name: "success_defaults_to_available",
			item: domain.MenuItem{Name: "Burger", Category: "Mains", Price: 9.50},
			prepareMocks: func(repository *mocks.MenuRepository) {
				repository.On("CreateMenuItem", mock.MatchedBy(func(item *domain.MenuItem) bool {
					return item.Status == domain.MenuItemAvailable && item.UserID == "u1"
				})).Return(nil).Once()
			},
		},
		{
			name:          "error_negative_price",
			item:          domain.MenuItem{Name: "Burger", Price: -1},
			prepareMocks:  func(*mocks.MenuRepository) {},
			expectedError: service.ErrNegativePrice,
		},
		{
			name:          "error_missing_name",
			item:          domain.MenuItem{Price: 3},
			prepareMocks:  func(*mocks.MenuRepository) {},
			expectedError: service.ErrMissingMenuItemName,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repository := mocks.NewMenuRepository(t)
			svc := service.NewMenuService(repository, mocks.NewProfileRepository(t))

			testCase.prepareMocks(repository)

			err := svc.Create("u1", &testCase.item)
			assert.ErrorIs(t, err, testCase.expectedError)
		})
	}
}

func TestMenuService_Delete_NotFound(t *testing.T) {
	repository := mocks.NewMenuRepository(t)
	svc := service.NewMenuService(repository, mocks.NewProfileRepository(t))

	repository.On("DeleteMenuItem", "u1", 42).Return(sql.ErrNoRows).Once()

	err := svc.Delete("u1", 42)
	assert.ErrorIs(t, err, service.ErrMenuItemNotFound)
}

func TestMenuService_PublicMenu(t *testing.T) {
	repository := mocks.NewMenuRepository(t)
	profiles := mocks.NewProfileRepository(t)
	svc := service.NewMenuService(repository, profiles)

	profiles.On("GetProfile", "u1").
		Return(domain.Profile{ID: "u1", RestaurantName: "Golden Fork"}, nil).Once()
	repository.On("ListAvailableMenuItems", "u1").Return([]domain.MenuItem{
		{ID: 1, Name: "Burger", Status: domain.MenuItemAvailable},
	}, nil).Once()

	menu, err := svc.PublicMenu("u1")
	assert.NoError(t, err)
	assert.Equal(t, "Golden Fork", menu.RestaurantName)
	assert.Len(t, menu.Items, 1)
}

func TestMenuService_PublicMenu_UnknownRestaurant(t *testing.T) {
	repository := mocks.NewMenuRepository(t)
	profiles := mocks.NewProfileRepository(t)
	svc := service.NewMenuService(repository, profiles)

	profiles.On("GetProfile", "ghost").Return(domain.Profile{}, sql.ErrNoRows).Once()

	_, err := svc.PublicMenu("ghost")
	assert.ErrorIs(t, err, service.ErrRestaurantNotFound)
}
