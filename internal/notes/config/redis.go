package config

import (
	"time"

	"gonotes/pkg/db/redis"
)

// RedisConfig содержит настройки кеша пользователей.
type RedisConfig struct {
	Enabled  bool          `yaml:"enabled" env:"NOTES_REDIS_ENABLED" env-default:"false"`
	Host     string        `yaml:"host" env:"NOTES_REDIS_HOST" env-default:"localhost"`
	Port     int           `yaml:"port" env:"NOTES_REDIS_PORT" env-default:"6379"`
	Password string        `yaml:"password" env:"NOTES_REDIS_PASSWORD" env-default:""`
	DB       int           `yaml:"db" env:"NOTES_REDIS_DB" env-default:"0"`
	PoolSize int           `yaml:"pool_size" env:"NOTES_REDIS_POOL_SIZE" env-default:"10"`
	Timeout  time.Duration `yaml:"timeout" env:"NOTES_REDIS_TIMEOUT" env-default:"3s"`
	UserTTL  time.Duration `yaml:"user_ttl" env:"NOTES_REDIS_USER_TTL" env-default:"5m"`
}

// ClientConfig преобразует настройки в конфигурацию клиента Redis.
func (r *RedisConfig) ClientConfig() redis.Config {
	return redis.Config{
		Host:     r.Host,
		Port:     r.Port,
		Password: r.Password,
		DB:       r.DB,
		PoolSize: r.PoolSize,
		Timeout:  r.Timeout,
	}
}
