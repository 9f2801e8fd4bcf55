package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const (
	AppName     = "amazon-feed-normalizer"
	EnvFileName = "config.env"
)

// LoadEnvFile loads environment variables from the config file in the user's
// config directory. Errors are ignored since the file may not exist.
func LoadEnvFile() {
	configBase, err := os.UserConfigDir()
	if err != nil {
		return
	}
	configPath := filepath.Join(configBase, AppName, EnvFileName)
	_ = godotenv.Load(configPath)
}

// LogLevel returns the level set via NORMALIZER_LOG_LEVEL, defaulting to
// info when unset or unparseable.
func LogLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(os.Getenv("NORMALIZER_LOG_LEVEL"))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}
