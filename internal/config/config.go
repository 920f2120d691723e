package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/rota/internal/scheduler"
	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

// Config holds process-wide settings for the rota binary.
type Config struct {
	DBPath    string
	DayOrder  scheduler.DayOrder
	ReportDir string
	LogLevel  slog.Level
	LogFile   string // empty disables the JSON log file
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		DBPath:    defaultDBPath(),
		DayOrder:  scheduler.DefaultDayOrder,
		ReportDir: ".",
		LogLevel:  slog.LevelInfo,
	}
}

// Load reads the env file named by ROTA_ENV_FILE (default .env) and then
// the environment. Variables already set in the environment win over the
// file. A missing env file is not an error.
func Load() (Config, error) {
	path := os.Getenv("ROTA_ENV_FILE")
	if path == "" {
		path = defaultEnvFile
	}
	if err := LoadEnvFile(path); err != nil {
		return Config{}, err
	}
	return LoadConfig(), nil
}

// LoadEnvFile exports the variables of a dotenv file without overriding
// ones that are already set.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading env file %s: %w", path, err)
	}
	return nil
}

// LoadConfig reads configuration from environment variables, falling back
// to defaults for any unset or invalid values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("ROTA_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("ROTA_DAY_ORDER"); v != "" {
		if order, err := scheduler.ParseDayOrder(v); err == nil {
			cfg.DayOrder = order
		}
	}
	if v := os.Getenv("ROTA_REPORT_DIR"); v != "" {
		cfg.ReportDir = v
	}
	if v := os.Getenv("ROTA_LOG_LEVEL"); v != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(strings.TrimSpace(v))); err == nil {
			cfg.LogLevel = level
		}
	}
	cfg.LogFile = os.Getenv("ROTA_LOG_FILE")

	return cfg
}

// ReportPath resolves a report file name against ReportDir. Absolute names
// are returned unchanged.
func (c Config) ReportPath(name string) string {
	if name == "" || filepath.IsAbs(name) || c.ReportDir == "" {
		return name
	}
	return filepath.Join(c.ReportDir, name)
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "rota.db"
	}
	return filepath.Join(home, ".rota", "rota.db")
}
