package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "localhost:3000", cfg.Addr)
	assert.Equal(t, "devsecret", cfg.JWT.Secret)
	assert.Equal(t, 24*time.Hour, cfg.JWT.TTL)
	assert.Equal(t, 10, cfg.BcryptCost)
}

func TestNewConfig_FromEnv(t *testing.T) {
	t.Setenv("MOCK_ADDR", ":8080")
	t.Setenv("MOCK_JWT_SECRET", "s3cret")
	t.Setenv("MOCK_JWT_TTL", "15m")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
	assert.Equal(t, 15*time.Minute, cfg.JWT.TTL)
}

func TestNewConfig_Invalid(t *testing.T) {
	t.Setenv("MOCK_BCRYPT_COST", "lots")

	_, err := NewConfig()
	require.Error(t, err)
}
