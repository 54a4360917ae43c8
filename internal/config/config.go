package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds process-level settings for the CLI and the upload server.
type Config struct {
	// Mode is the default grouping mode name.
	Mode string
	// LogLevel is "debug", "info", "warn" or "error".
	LogLevel string
	// Addr is the listen address of the upload server.
	Addr string
	// MaxUploadMB caps the size of one upload request.
	MaxUploadMB int64
}

// LoadDotEnv reads KEY=VALUE pairs from path into the environment.
// A missing file is not an error. Variables already set win.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Mode:        getenv("GSTRMERGE_MODE", "flat"),
		LogLevel:    getenv("GSTRMERGE_LOG_LEVEL", "info"),
		Addr:        getenv("GSTRMERGE_ADDR", ":8080"),
		MaxUploadMB: getenvInt("GSTRMERGE_MAX_UPLOAD_MB", 100),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
