package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"slotpoll/core/logger"
)

// Load reads .env (when present) and binds environment variables.
func Load() {
	if err := godotenv.Load(); err != nil {
		logger.Info("Config:Load", "message", "no .env file, using environment only")
	}
	viper.AutomaticEnv()
}

// Get returns the value for key, empty string when unset.
func Get(key string) string {
	return viper.GetString(key)
}

// GetSafe returns the value for key or an error when unset.
func GetSafe(key string) (string, error) {
	if !viper.IsSet(key) || viper.GetString(key) == "" {
		return "", fmt.Errorf("config key %q is not set", key)
	}
	return viper.GetString(key), nil
}

// GetInt returns the integer value for key, falling back to def when
// unset or unparsable.
func GetInt(key string, def int) int {
	if !viper.IsSet(key) {
		return def
	}
	v := viper.GetInt(key)
	if v == 0 && viper.GetString(key) != "0" {
		return def
	}
	return v
}

// GetOrDefault returns the value for key, or def when unset.
func GetOrDefault(key, def string) string {
	if v := viper.GetString(key); v != "" {
		return v
	}
	return def
}
