// Package dto содержит объекты передачи данных HTTP-слоя.
package dto

// RegisterRequest содержит данные для регистрации пользователя.
type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterResponse содержит данные созданного пользователя.
type RegisterResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// LoginRequest содержит данные для входа пользователя.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse содержит выпущенный токен сессии.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}
