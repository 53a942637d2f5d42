package service

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/AbdulrahmanTurki/testQR/internal/domain"
)

var (
	ErrNegativePrice       = errors.New("price must not be negative")
	ErrMenuItemNotFound    = errors.New("menu item not found")
	ErrRestaurantNotFound  = errors.New("restaurant not found")
	ErrMissingMenuItemName = errors.New("menu item name is required")
)

type MenuService struct {
	repository MenuRepository
	profiles   ProfileRepository
}

func NewMenuService(repository MenuRepository, profiles ProfileRepository) *MenuService {
	return &MenuService{repository: repository, profiles: profiles}
}

func (s *MenuService) List(userID string) ([]domain.MenuItem, error) {
	return s.repository.ListMenuItems(userID)
}

func (s *MenuService) Create(userID string, item *domain.MenuItem) error {
	if item.Name == "" {
		return ErrMissingMenuItemName
	}
	if item.Price < 0 {
		return ErrNegativePrice
	}
	item.UserID = userID
	if item.Status == "" {
		item.Status = domain.MenuItemAvailable
	}
	return s.repository.CreateMenuItem(item)
}

func (s *MenuService) Update(userID string, item *domain.MenuItem) error {
	if item.Name == "" {
		return ErrMissingMenuItemName
	}
	if item.Price < 0 {
		return ErrNegativePrice
	}
	err := s.repository.UpdateMenuItem(userID, item)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrMenuItemNotFound
	}
	return err
}

func (s *MenuService) Delete(userID string, id int) error {
	err := s.repository.DeleteMenuItem(userID, id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrMenuItemNotFound
	}
	return err
}

// PublicMenu is the customer-facing view behind a scanned QR code: the
// restaurant name plus only the items marked available.
func (s *MenuService) PublicMenu(restaurantID string) (*domain.PublicMenu, error) {
	profile, err := s.profiles.GetProfile(restaurantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("failed to load restaurant profile: %w", err)
	}

	items, err := s.repository.ListAvailableMenuItems(restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load menu items: %w", err)
	}

	return &domain.PublicMenu{
		RestaurantName: profile.RestaurantName,
		Items:          items,
	}, nil
}
