package config

import (
	"fmt"
	"time"
)

// HTTPConfig конфигурация HTTP сервера.
type HTTPConfig struct {
	Host        string `yaml:"host" env:"CATALOG_HTTP_HOST" env-default:"0.0.0.0"`
	Port        int    `yaml:"port" env:"CATALOG_HTTP_PORT" env-default:"8080"`
	ReadTimeout string `yaml:"read_timeout" env:"CATALOG_HTTP_READ_TIMEOUT" env-default:"10s"`
}

// GetAddress возвращает адрес для HTTP сервера.
func (h *HTTPConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", h.Host, h.Port)
}

// GetReadTimeout возвращает таймаут чтения запроса.
func (h *HTTPConfig) GetReadTimeout() time.Duration {
	duration, err := time.ParseDuration(h.ReadTimeout)
	if err != nil {
		return 10 * time.Second
	}
	return duration
}
