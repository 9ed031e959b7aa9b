package config

import "time"

// DefaultJWTSecret используется, когда NOTES_JWT_SECRET_KEY не задан.
//
//nolint:gosec
const DefaultJWTSecret = "change-me-in-production"

// JWTConfig содержит настройки для JWT токенов и хеширования паролей.
type JWTConfig struct {
	SecretKey      string        `yaml:"secret_key" env:"NOTES_JWT_SECRET_KEY" env-default:"change-me-in-production"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"NOTES_JWT_ACCESS_TOKEN_TTL" env-default:"60m"`
	BCryptCost     int           `yaml:"bcrypt_cost" env:"NOTES_JWT_BCRYPT_COST" env-default:"10"`
}
