package authusecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gohabits/internal/habits/app"
	"gohabits/internal/habits/domain/entities"
	"gohabits/internal/habits/domain/services"
)

func TestLogin(t *testing.T) {
	ctx := context.Background()

	email := "test@example.com"
	password := "password123"
	token := "jwt-token"
	expiresAt := time.Now().Add(24 * time.Hour)

	storedUser := &entities.User{
		ID:           "user-id-1",
		Email:        email,
		Username:     "testuser",
		PasswordHash: "hashed_password",
	}

	t.Run("Successful login", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		passwordSvc := new(mockPasswordService)
		tokenSvc := new(mockTokenService)

		userRepo.On("FindByEmail", ctx, email).Return(storedUser, nil)
		passwordSvc.On("Verify", ctx, password, storedUser.PasswordHash).Return(true, nil)
		tokenSvc.On("GenerateAccessToken", ctx, storedUser.ID, storedUser.Email).Return(token, expiresAt, nil)

		useCase := app.NewAuthUseCase(userRepo, passwordSvc, tokenSvc)
		gotToken, gotExpiry, err := useCase.Login(ctx, email, password)

		require.NoError(t, err)
		assert.Equal(t, token, gotToken)
		assert.Equal(t, expiresAt, gotExpiry)
		userRepo.AssertExpectations(t)
		passwordSvc.AssertExpectations(t)
		tokenSvc.AssertExpectations(t)
	})

	t.Run("Missing fields", func(t *testing.T) {
		useCase := app.NewAuthUseCase(new(mockUserRepository), new(mockPasswordService), new(mockTokenService))

		_, _, err := useCase.Login(ctx, "", password)
		assert.ErrorIs(t, err, entities.ErrMissingFields)

		_, _, err = useCase.Login(ctx, email, "")
		assert.ErrorIs(t, err, entities.ErrMissingFields)
	})

	t.Run("Unknown email", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		userRepo.On("FindByEmail", ctx, email).Return(nil, entities.ErrUserNotFound)

		useCase := app.NewAuthUseCase(userRepo, new(mockPasswordService), new(mockTokenService))
		_, _, err := useCase.Login(ctx, email, password)

		assert.ErrorIs(t, err, entities.ErrUserNotFound)
	})

	t.Run("Wrong password", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		passwordSvc := new(mockPasswordService)

		userRepo.On("FindByEmail", ctx, email).Return(storedUser, nil)
		passwordSvc.On("Verify", ctx, password, storedUser.PasswordHash).Return(false, nil)

		useCase := app.NewAuthUseCase(userRepo, passwordSvc, new(mockTokenService))
		_, _, err := useCase.Login(ctx, email, password)

		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	})

	t.Run("Token generation error", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		passwordSvc := new(mockPasswordService)
		tokenSvc := new(mockTokenService)

		tokenErr := errors.New("secret key is empty")
		userRepo.On("FindByEmail", ctx, email).Return(storedUser, nil)
		passwordSvc.On("Verify", ctx, password, storedUser.PasswordHash).Return(true, nil)
		tokenSvc.On("GenerateAccessToken", ctx, storedUser.ID, storedUser.Email).Return("", time.Time{}, tokenErr)

		useCase := app.NewAuthUseCase(userRepo, passwordSvc, tokenSvc)
		_, _, err := useCase.Login(ctx, email, password)

		assert.ErrorIs(t, err, tokenErr)
	})

	t.Run("Verification error", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		passwordSvc := new(mockPasswordService)

		verifyErr := errors.New("bcrypt failure")
		userRepo.On("FindByEmail", ctx, email).Return(storedUser, nil)
		passwordSvc.On("Verify", ctx, password, storedUser.PasswordHash).Return(false, verifyErr)

		useCase := app.NewAuthUseCase(userRepo, passwordSvc, new(mockTokenService))
		_, _, err := useCase.Login(ctx, email, password)

		assert.ErrorIs(t, err, verifyErr)
	})
}
