package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg := FromEnv()
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 100, cfg.PageSize)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("PAGE_SIZE", "25")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "3")
	t.Setenv("CORS_ORIGINS", "https://shop.example.com, https://admin.example.com")

	cfg := FromEnv()
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, 25, cfg.PageSize)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, []string{"https://shop.example.com", "https://admin.example.com"}, cfg.CORSOrigins)
}

func TestFromEnv_MalformedValuesFallBack(t *testing.T) {
	t.Setenv("PAGE_SIZE", "zero")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "soon")

	cfg := FromEnv()
	assert.Equal(t, 100, cfg.PageSize)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}
