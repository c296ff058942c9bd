package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/jask/tablekit/internal/datatable"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Table    TableConfig
	Log      LogConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// TableConfig holds the initial state of the data table.
type TableConfig struct {
	ItemsPerPage  int    `mapstructure:"items_per_page"`
	PageRange     int    `mapstructure:"page_range"`
	SortColumn    string `mapstructure:"sort_column"`
	SortDirection string `mapstructure:"sort_direction"`
}

// LogConfig holds logging settings. An empty File logs to stderr.
type LogConfig struct {
	Level string
	File  string
}

const (
	minItemsPerPage = 1
	maxItemsPerPage = 500
	maxPageRange    = 10
)

// Path returns the config file location: $TABLEKIT_CONFIG or
// ~/.config/tablekit/config.toml.
func Path() string {
	if p := os.Getenv("TABLEKIT_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "tablekit", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix TABLEKIT_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "tablekit", "tablekit.db"))
	v.SetDefault("table.items_per_page", datatable.DefaultItemsPerPage)
	v.SetDefault("table.page_range", datatable.DefaultPageRange)
	v.SetDefault("table.sort_column", "name")
	v.SetDefault("table.sort_direction", "asc")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.file", "")

	v.SetConfigType("toml")
	v.SetConfigFile(Path())

	v.SetEnvPrefix("TABLEKIT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// a missing file is fine; defaults and env still apply
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Normalize()
	return c, nil
}

// Normalize clamps table settings into their supported ranges.
func (c *Config) Normalize() {
	c.Table.ItemsPerPage = min(max(c.Table.ItemsPerPage, minItemsPerPage), maxItemsPerPage)
	c.Table.PageRange = min(max(c.Table.PageRange, 0), maxPageRange)
	c.Table.SortColumn = strings.TrimSpace(c.Table.SortColumn)
}

// Sort returns the configured initial sort. An unparsable direction falls
// back to ascending.
func (c Config) Sort() datatable.SortConfig {
	dir, err := datatable.ParseDirection(c.Table.SortDirection)
	if err != nil {
		dir = datatable.Ascending
	}
	return datatable.SortConfig{ColumnID: c.Table.SortColumn, Direction: dir}
}

// LogLevel parses Log.Level, defaulting to warn.
func (c Config) LogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.Log.Level))); err != nil {
		return slog.LevelWarn
	}
	return lvl
}

// Save writes the provided config to disk, creating the config directory if needed.
// The TUI uses it to remember the preferred page size.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("table.items_per_page", cfg.Table.ItemsPerPage)
	v.Set("table.page_range", cfg.Table.PageRange)
	v.Set("table.sort_column", cfg.Table.SortColumn)
	v.Set("table.sort_direction", cfg.Table.SortDirection)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.file", cfg.Log.File)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
