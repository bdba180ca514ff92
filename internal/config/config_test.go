package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigRequiresMongoURL(t *testing.T) {
	viper.Reset()
	t.Setenv("MONGO_URL", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MONGO_URL")
}

func TestLoadConfigDefaults(t *testing.T) {
	viper.Reset()
	t.Setenv("MONGO_URL", "mongodb://localhost:27017")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURL)
	assert.Equal(t, "hrms_db", cfg.DBName)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.False(t, cfg.IsLocalDev)
	assert.Equal(t,
		[]string{"http://localhost:3000", "http://localhost:5173"},
		cfg.AllowedOrigins(),
		"fallback allow-list for local development")
}

func TestLoadConfigOverrides(t *testing.T) {
	viper.Reset()
	t.Setenv("MONGO_URL", "mongodb://db:27017")
	t.Setenv("DB_NAME", "hr")
	t.Setenv("CORS_ORIGINS", " https://a.example.com , https://b.example.com ,")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "hr", cfg.DBName)
	assert.Equal(t,
		[]string{"https://a.example.com", "https://b.example.com"},
		cfg.AllowedOrigins(),
		"origins are trimmed and empty entries dropped")
}
