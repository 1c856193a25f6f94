// Package cli implements the courtdocs CLI commands.
package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rcliao/courtdocs/internal/archive"
	"github.com/rcliao/courtdocs/internal/config"
	"github.com/rcliao/courtdocs/internal/embedding"
	"github.com/rcliao/courtdocs/internal/store"
)

var (
	dbPath     string
	configPath string
	formatFlag string

	cfg    *config.Config
	logger *slog.Logger
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "courtdocs",
	Short: "Court decision archive",
	Long:  "Ingest Azerbaijani court decisions, extract their metadata, and search them by judge, court, year or free text.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig()
	},
	SilenceUsage: true,
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (default: $COURTDOCS_DB or ~/.courtdocs/courtdocs.db)")
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: ./courtdocs.yaml or ~/.courtdocs/config.yaml)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "json", "Output format: json or text")
}

func loadConfig() error {
	if err := config.LoadEnv(); err != nil {
		return err
	}

	var err error
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, _, err = config.LoadDefault()
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	config.ApplyEnv(cfg, os.Getenv)
	if dbPath != "" {
		cfg.Database.Path = dbPath
	}

	logger = cfg.NewLogger(os.Stderr)
	slog.SetDefault(logger)
	return nil
}

// openService opens the configured store and wraps it in an archive.Service.
// The caller closes the returned store.
func openService() (*store.SQLiteStore, *archive.Service, error) {
	emb, err := embedding.New(cfg.EmbeddingConfig(os.Getenv))
	if err != nil {
		return nil, nil, err
	}
	st, err := store.NewSQLiteStore(cfg.Database.Path)
	if err != nil {
		return nil, nil, err
	}
	svc := archive.New(st, archive.Options{
		Embedder:   emb,
		Chunk:      cfg.ChunkOptions(),
		TopK:       cfg.Search.TopK,
		MaxResults: cfg.Search.MaxResults,
		Logger:     logger,
	})
	return st, svc, nil
}

func mustOpen() (*store.SQLiteStore, *archive.Service) {
	st, svc, err := openService()
	if err != nil {
		exitErr("open store", err)
	}
	return st, svc
}

func printJSON(v any) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

func textOutput() bool {
	return formatFlag == "text"
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
