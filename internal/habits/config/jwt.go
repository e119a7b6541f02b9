package config

import "time"

// JWTConfig содержит настройки для JWT токенов.
// Пустой секретный ключ приводит к ошибке при выпуске токена.
type JWTConfig struct {
	SecretKey      string `yaml:"secret_key" env:"HABITS_JWT_SECRET_KEY" env-default:""`
	AccessTokenTTL string `yaml:"access_token_ttl" env:"HABITS_JWT_ACCESS_TOKEN_TTL" env-default:"24h"`
	BCryptCost     int    `yaml:"bcrypt_cost" env:"HABITS_JWT_BCRYPT_COST" env-default:"10"`
}

// GetAccessTokenTTL возвращает продолжительность времени жизни access токена.
func (c *JWTConfig) GetAccessTokenTTL() time.Duration {
	duration, err := time.ParseDuration(c.AccessTokenTTL)
	if err != nil {
		return 24 * time.Hour
	}
	return duration
}
