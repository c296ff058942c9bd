package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/tablekit/internal/datatable"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("TABLEKIT_CONFIG", filepath.Join(dir, "missing.toml"))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, ".local", "share", "tablekit", "tablekit.db"), cfg.Database.Path)
	require.Equal(t, datatable.DefaultItemsPerPage, cfg.Table.ItemsPerPage)
	require.Equal(t, datatable.DefaultPageRange, cfg.Table.PageRange)
	require.Equal(t, datatable.SortConfig{ColumnID: "name"}, cfg.Sort())
	require.Equal(t, slog.LevelWarn, cfg.LogLevel())
}

func TestLoadFileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[database]
path = "/tmp/people.db"

[table]
items_per_page = 9000
page_range = 3
sort_column = " age "
sort_direction = "desc"

[log]
level = "debug"
`), 0o644))
	t.Setenv("TABLEKIT_CONFIG", path)
	t.Setenv("TABLEKIT_TABLE_PAGE_RANGE", "-4")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "/tmp/people.db", cfg.Database.Path)
	require.Equal(t, maxItemsPerPage, cfg.Table.ItemsPerPage)
	require.Equal(t, 0, cfg.Table.PageRange)
	require.Equal(t, datatable.SortConfig{ColumnID: "age", Direction: datatable.Descending}, cfg.Sort())
	require.Equal(t, slog.LevelDebug, cfg.LogLevel())
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[table\nitems_per_page = "), 0o644))
	t.Setenv("TABLEKIT_CONFIG", path)

	_, err := Load()
	require.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	t.Setenv("TABLEKIT_CONFIG", path)

	in := Config{
		Database: DatabaseConfig{Path: "/data/t.db"},
		Table:    TableConfig{ItemsPerPage: 15, PageRange: 1, SortColumn: "city", SortDirection: "desc"},
		Log:      LogConfig{Level: "info", File: "/tmp/tablekit.log"},
	}
	require.NoError(t, Save(in))

	out, err := Load()
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestSortAndLevelFallbacks(t *testing.T) {
	cfg := Config{Table: TableConfig{SortColumn: "name", SortDirection: "sideways"}, Log: LogConfig{Level: "loud"}}
	require.Equal(t, datatable.Ascending, cfg.Sort().Direction)
	require.Equal(t, slog.LevelWarn, cfg.LogLevel())

	cfg.Table.ItemsPerPage = 0
	cfg.Table.PageRange = 99
	cfg.Normalize()
	require.Equal(t, 1, cfg.Table.ItemsPerPage)
	require.Equal(t, maxPageRange, cfg.Table.PageRange)
}
