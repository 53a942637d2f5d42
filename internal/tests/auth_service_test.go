package tests

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/AbdulrahmanTurki/testQR/internal/domain"
	"github.com/AbdulrahmanTurki/testQR/internal/mocks"
	"github.com/AbdulrahmanTurki/testQR/internal/service"
)

const testSecret = "test-secret"

func TestAuthService_Signup(t *testing.T) {
	users := mocks.NewUserRepository(t)
	profiles := mocks.NewProfileRepository(t)
	svc := service.NewAuthService(users, profiles, testSecret)

	users.On("GetUserByEmail", "owner@example.com").Return(domain.User{}, sql.ErrNoRows).Once()
	users.On("CreateUser", mock.MatchedBy(func(user *domain.User) bool {
		return user.ID != "" && user.Email == "owner@example.com" &&
			bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter22")) == nil
	})).Return(nil).Once()
	profiles.On("UpsertProfile", mock.MatchedBy(func(profile domain.Profile) bool {
		return profile.FullName == "Sam Owner" && profile.RestaurantName == "Golden Fork"
	})).Return(nil).Once()

	user, err := svc.Signup(service.SignupInput{
		Email:          "owner@example.com",
		Password:       "hunter22",
		FullName:       "Sam Owner",
		RestaurantName: "Golden Fork",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, user.ID)
}

func TestAuthService_Signup_EmailTaken(t *testing.T) {
	users := mocks.NewUserRepository(t)
	svc := service.NewAuthService(users, mocks.NewProfileRepository(t), testSecret)

	users.On("GetUserByEmail", "owner@example.com").
		Return(domain.User{ID: "u1", Email: "owner@example.com"}, nil).Once()

	_, err := svc.Signup(service.SignupInput{Email: "owner@example.com", Password: "x"})
	assert.ErrorIs(t, err, service.ErrEmailTaken)
}

func TestAuthService_Signup_MissingCredentials(t *testing.T) {
	svc := service.NewAuthService(mocks.NewUserRepository(t), mocks.NewProfileRepository(t), testSecret)

	_, err := svc.Signup(service.SignupInput{Email: "", Password: ""})
	assert.ErrorIs(t, err, service.ErrMissingCredentials)
}

func TestAuthService_SigninAndParseToken(t *testing.T) {
	users := mocks.NewUserRepository(t)
	svc := service.NewAuthService(users, mocks.NewProfileRepository(t), testSecret)

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	assert.NoError(t, err)
	users.On("GetUserByEmail", "owner@example.com").Return(domain.User{
		ID: "u1", Email: "owner@example.com", PasswordHash: string(hash),
	}, nil).Once()

	token, err := svc.Signin("owner@example.com", "hunter22")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	userID, err := svc.ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "u1", userID)
}

func TestAuthService_Signin_WrongPassword(t *testing.T) {
	users := mocks.NewUserRepository(t)
	svc := service.NewAuthService(users, mocks.NewProfileRepository(t), testSecret)

	hash, _ := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	users.On("GetUserByEmail", "owner@example.com").Return(domain.User{
		ID: "u1", PasswordHash: string(hash),
	}, nil).Once()

	_, err := svc.Signin("owner@example.com", "wrong")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestAuthService_Signin_UnknownUser(t *testing.T) {
	users := mocks.NewUserRepository(t)
	svc := service.NewAuthService(users, mocks.NewProfileRepository(t), testSecret)

	users.On("GetUserByEmail", "ghost@example.com").Return(domain.User{}, sql.ErrNoRows).Once()

	_, err := svc.Signin("ghost@example.com", "x")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestAuthService_ParseToken_Garbage(t *testing.T) {
	svc := service.NewAuthService(mocks.NewUserRepository(t), mocks.NewProfileRepository(t), testSecret)

	_, err := svc.ParseToken("not-a-token")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}
