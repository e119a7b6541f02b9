package bcrypt_service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cryptobcrypt "golang.org/x/crypto/bcrypt"

	adapters "gohabits/internal/habits/adapters/services"
	"gohabits/internal/habits/domain/services"
)

//nolint:gosec
const (
	msgEmptyPasswordError          = "should return error for empty password"
	msgNoErrorValidPassword        = "should not return error for valid password"
	msgHashNotEmpty                = "hash should not be empty"
	msgErrorInvalidPassword        = "error should be err invalid password"
	msgHashVerifiable              = "created hash should be verifiable"
	msgHashEmptyInvalidPassword    = "hash should be empty for invalid password"
	msgNoErrorFirstHash            = "should not return error for first hash"
	msgNoErrorSecondHash           = "should not return error for second hash"
	msgDifferentHashesSamePassword = "hashes of same password should differ due to salt"
)

func TestHashSuccess(t *testing.T) {
	service := adapters.NewBcrypt(10)
	validPassword := "validPassword123"
	ctx := context.Background()

	hash, err := service.Hash(ctx, validPassword)

	require.NoError(t, err, msgNoErrorValidPassword)
	assert.NotEmpty(t, hash, msgHashNotEmpty)

	err = cryptobcrypt.CompareHashAndPassword([]byte(hash), []byte(validPassword))
	assert.NoError(t, err, msgHashVerifiable)
}

func TestHashEmptyPassword(t *testing.T) {
	service := adapters.NewBcrypt(10)
	ctx := context.Background()

	hash, err := service.Hash(ctx, "")

	require.Error(t, err, msgEmptyPasswordError)
	assert.Empty(t, hash, msgHashEmptyInvalidPassword)
	assert.ErrorIs(t, err, services.ErrInvalidPassword, msgErrorInvalidPassword)
}

func TestHashSamePasswordTwice(t *testing.T) {
	service := adapters.NewBcrypt(10)
	password := "samePassword123"
	ctx := context.Background()

	firstHash, err := service.Hash(ctx, password)
	require.NoError(t, err, msgNoErrorFirstHash)

	secondHash, err := service.Hash(ctx, password)
	require.NoError(t, err, msgNoErrorSecondHash)

	assert.NotEqual(t, firstHash, secondHash, msgDifferentHashesSamePassword)
}
