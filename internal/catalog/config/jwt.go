package config

import "time"

// JWTConfig содержит настройки для JWT токенов.
// Ключ подписи обязателен и не имеет значения по умолчанию.
type JWTConfig struct {
	SecretKey      string `yaml:"secret_key" env:"CATALOG_JWT_SECRET_KEY" env-required:"true"`
	AccessTokenTTL string `yaml:"access_token_ttl" env:"CATALOG_JWT_ACCESS_TOKEN_TTL" env-default:"15m"`
}

// GetAccessTokenTTL возвращает продолжительность времени жизни access токена.
func (c *JWTConfig) GetAccessTokenTTL() time.Duration {
	duration, err := time.ParseDuration(c.AccessTokenTTL)
	if err != nil {
		return 15 * time.Minute
	}
	return duration
}
