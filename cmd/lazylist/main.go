package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/lazylist/internal/logging"
	"github.com/sandeepkv93/lazylist/internal/storage"
	"github.com/sandeepkv93/lazylist/internal/update"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "lazylist failed: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("lazylist", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to a TOML config file (default ./"+update.DefaultConfigFile+" when present)")
	dbPath := fs.String("db", "", "path to the SQLite document store")
	logPath := fs.String("log", "", "path to the log file")
	openTitle := fs.String("open", "", "title of a saved document to open")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := update.LoadRuntimeConfig(resolveConfigPath(*configPath), update.DefaultRuntimeConfig())
	if err != nil {
		return err
	}
	cfg = update.RuntimeConfigFromEnv(cfg)
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}
	if *logPath != "" {
		cfg.LogPath = *logPath
	}
	if *openTitle != "" {
		cfg.StartDocument = *openTitle
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closeLog, err := logging.OpenFile(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	repo, err := storage.OpenSQLite(cfg.DBPath)
	if err != nil {
		return err
	}
	defer repo.Close()
	logger.Info("starting", "db", cfg.DBPath, "pane", cfg.SidePane, "dump", cfg.DumpFormat)

	model := update.NewModelWithConfig(update.Dependencies{
		Store:     repo,
		Clipboard: update.SystemClipboard{},
		Logger:    logger,
	}, cfg)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		logger.Error("program exited", "err", err)
		return err
	}
	return nil
}

func resolveConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if _, err := os.Stat(update.DefaultConfigFile); errors.Is(err, os.ErrNotExist) {
		return ""
	}
	return update.DefaultConfigFile
}
