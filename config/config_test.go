package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("UPLOAD_DIR", "")
	t.Setenv("ASSETS_DIR", "")

	cfg := Load()
	assert.Equal(t, "postgresql://postgres@localhost:5432/hrms", cfg.DatabaseURL)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Equal(t, "attached_assets", cfg.AssetsDir)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiration)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgresql://hr@db:5432/people")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("UPLOAD_DIR", "/srv/uploads")

	cfg := Load()
	assert.Equal(t, "postgresql://hr@db:5432/people", cfg.DatabaseURL)
	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "/srv/uploads", cfg.UploadDir)
}
