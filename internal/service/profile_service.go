package service

import (
	"database/sql"
	"errors"

	"github.com/AbdulrahmanTurki/testQR/internal/domain"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileService struct {
	repository ProfileRepository
}

func NewProfileService(repository ProfileRepository) *ProfileService {
	return &ProfileService{repository: repository}
}

func (s *ProfileService) Get(userID string) (domain.Profile, error) {
	profile, err := s.repository.GetProfile(userID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Profile{}, ErrProfileNotFound
	}
	return profile, err
}

func (s *ProfileService) Update(profile domain.Profile) error {
	return s.repository.UpsertProfile(profile)
}
