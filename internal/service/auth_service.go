package service

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/AbdulrahmanTurki/testQR/internal/domain"
)

const (
	bcryptCost = 10
	tokenTTL   = 24 * time.Hour
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMissingCredentials = errors.New("email and password are required")
)

type AuthService struct {
	users     UserRepository
	profiles  ProfileRepository
	jwtSecret []byte
}

func NewAuthService(users UserRepository, profiles ProfileRepository, jwtSecret string) *AuthService {
	return &AuthService{
		users:     users,
		profiles:  profiles,
		jwtSecret: []byte(jwtSecret),
	}
}

type SignupInput struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	FullName       string `json:"full_name"`
	RestaurantName string `json:"restaurant_name"`
}

// Signup creates the staff account and its profile row. The profile is
// created implicitly here, mirroring signup creating both together.
func (s *AuthService) Signup(input SignupInput) (domain.User, error) {
	if input.Email == "" || input.Password == "" {
		return domain.User{}, ErrMissingCredentials
	}

	if _, err := s.users.GetUserByEmail(input.Email); err == nil {
		return domain.User{}, ErrEmailTaken
	} else if !errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		ID:           uuid.NewString(),
		Email:        input.Email,
		PasswordHash: string(hash),
	}
	if err := s.users.CreateUser(&user); err != nil {
		return domain.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	profile := domain.Profile{
		ID:             user.ID,
		FullName:       input.FullName,
		RestaurantName: input.RestaurantName,
	}
	if err := s.profiles.UpsertProfile(profile); err != nil {
		return domain.User{}, fmt.Errorf("failed to create profile: %w", err)
	}

	return user, nil
}

func (s *AuthService) Signin(email, password string) (string, error) {
	if email == "" || password == "" {
		return "", ErrMissingCredentials
	}

	user, err := s.users.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(tokenTTL).Unix(),
	})
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ParseToken validates a bearer token and returns the user id it carries.
func (s *AuthService) ParseToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidCredentials
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidCredentials
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return "", ErrInvalidCredentials
	}
	return userID, nil
}
