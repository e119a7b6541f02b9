// Package services определяет доменные типы и ошибки сервисов учетных данных.
package services

import (
	"errors"
)

// Ошибки, связанные с паролями.
var (
	ErrHashingFailed      = errors.New("failed to hash password")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
