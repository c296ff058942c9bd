// tablekit is a terminal viewer for the people table: search, sort and page
// through records kept in a local sqlite database.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/jask/tablekit/internal/config"
	"github.com/jask/tablekit/internal/database"
	"github.com/jask/tablekit/internal/database/repository"
	"github.com/jask/tablekit/internal/datatable"
	"github.com/jask/tablekit/internal/service"
	"github.com/jask/tablekit/internal/testdata"
	"github.com/jask/tablekit/internal/tui"
)

const defaultSeedCount = 200

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var (
		configPath string
		dbPath     string
		importPath string
		seed       int
		perPage    int
		logLevel   string
	)
	flagSet := pflag.NewFlagSet("tablekit", pflag.ContinueOnError)
	flagSet.StringVar(&configPath, "config", "", "config file (default ~/.config/tablekit/config.toml)")
	flagSet.StringVar(&dbPath, "db", "", "sqlite database path (overrides database.path)")
	flagSet.StringVar(&importPath, "import", "", "import people from a CSV file before starting")
	flagSet.IntVar(&seed, "seed", 0, "insert N generated sample people before starting")
	flagSet.IntVar(&perPage, "per-page", 0, "rows per page (overrides table.items_per_page)")
	flagSet.StringVar(&logLevel, "log-level", "", "debug, info, warn or error (overrides log.level)")
	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	if configPath != "" {
		if err := os.Setenv("TABLEKIT_CONFIG", configPath); err != nil {
			return err
		}
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if dbPath != "" {
		cfg.Database.Path = dbPath
	}
	if perPage > 0 {
		cfg.Table.ItemsPerPage = perPage
		cfg.Normalize()
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx := context.Background()
	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return fmt.Errorf("mkdir db dir: %w", err)
	}
	if err := database.RunMigrations(cfg.Database.Path); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	db, err := database.Open(ctx, cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	people := repository.NewPeopleRepo(db)
	if err := prepareData(ctx, logger, people, importPath, seed); err != nil {
		return err
	}

	dir, err := service.NewDirectory(ctx, people, logger,
		datatable.WithItemsPerPage(cfg.Table.ItemsPerPage),
		datatable.WithPageRange(cfg.Table.PageRange),
		datatable.WithSort(cfg.Sort()),
	)
	if err != nil {
		return err
	}

	app := tui.New(ctx, dir,
		tui.WithLogger(logger),
		tui.WithPageSizeHook(func(n int) error {
			cfg.Table.ItemsPerPage = n
			return config.Save(cfg)
		}),
	)
	_, err = tea.NewProgram(app, tea.WithAltScreen()).Run()
	return err
}

// prepareData imports and seeds as requested. An empty database gets a
// default sample so the viewer has something to show.
func prepareData(ctx context.Context, logger *slog.Logger, people *repository.PeopleRepo, importPath string, seed int) error {
	if importPath != "" {
		f, err := os.Open(importPath)
		if err != nil {
			return fmt.Errorf("open import: %w", err)
		}
		defer f.Close()
		res, err := (&service.IngestService{People: people}).ImportCSV(ctx, f)
		if err != nil {
			return fmt.Errorf("import %s: %w", importPath, err)
		}
		for _, rowErr := range res.Errors {
			logger.Warn("import row skipped", "file", importPath, "err", rowErr)
		}
		logger.Info("import done", "imported", res.Imported, "skipped", res.Skipped, "errors", len(res.Errors))
	}

	n, err := people.Count(ctx)
	if err != nil {
		return fmt.Errorf("count people: %w", err)
	}
	if seed == 0 && n == 0 {
		seed = defaultSeedCount
	}
	if seed > 0 {
		if err := testdata.Seed(ctx, people, seed, int64(n)); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		logger.Info("seeded sample people", "count", seed)
	}
	return nil
}

// newLogger writes text logs to log.file, or to stderr when unset.
func newLogger(cfg config.Config) (*slog.Logger, func(), error) {
	var w io.Writer = os.Stderr
	closeFn := func() {}
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.LogLevel()}))
	slog.SetDefault(logger)
	return logger, closeFn, nil
}
