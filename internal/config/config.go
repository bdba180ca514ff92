package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Config is read from environment variables at startup. MONGO_URL has
// no default: without a store connection string the process must not
// come up.
type Config struct {
	MongoURL     string `mapstructure:"MONGO_URL"`
	DBName       string `mapstructure:"DB_NAME"`
	ServerPort   string `mapstructure:"SERVER_PORT"`
	CORSOrigins  string `mapstructure:"CORS_ORIGINS"`
	OTLPEndpoint string `mapstructure:"OTLP_ENDPOINT"`
	IsLocalDev   bool   `mapstructure:"IS_LOCAL_DEV"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (config Config, err error) {
	viper.SetDefault("MONGO_URL", "")
	viper.SetDefault("DB_NAME", "hrms_db")
	viper.SetDefault("SERVER_PORT", "8080")
	// Fallback allow-list for local frontend development.
	viper.SetDefault("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")
	viper.SetDefault("OTLP_ENDPOINT", "jaeger:4317")
	viper.SetDefault("IS_LOCAL_DEV", false)

	// Read in environment variables that match the keys.
	viper.AutomaticEnv()

	if err = viper.Unmarshal(&config); err != nil {
		return
	}
	if config.MongoURL == "" {
		err = errors.New("MONGO_URL is not set")
	}
	return
}

// AllowedOrigins splits the comma-separated origin allow-list,
// dropping empty entries.
func (c Config) AllowedOrigins() []string {
	parts := strings.Split(c.CORSOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
