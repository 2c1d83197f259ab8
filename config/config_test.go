package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SERVER_BASE_URL", "")
	t.Setenv("HTTP_TIMEOUT", "")
	t.Setenv("STORAGE_DRIVER", "")

	cfg := Load()

	assert.Equal(t, "http://localhost:5000", cfg.ServerBaseURL)
	assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 5*time.Second, cfg.NotificationTTL)
	assert.Equal(t, StoragePostgres, cfg.StorageDriver)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_BASE_URL", "https://cadastro.example.com")
	t.Setenv("HTTP_TIMEOUT", "3s")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("STORAGE_DRIVER", StorageMemory)

	cfg := Load()

	assert.Equal(t, "https://cadastro.example.com", cfg.ServerBaseURL)
	assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 9090, cfg.AppPort)
	assert.Equal(t, StorageMemory, cfg.StorageDriver)
}
