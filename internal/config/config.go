// Package config loads courtdocs settings from YAML, .env files and the environment.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/rcliao/courtdocs/internal/chunker"
	"github.com/rcliao/courtdocs/internal/embedding"
)

// DatabaseConfig locates the SQLite database.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// EmbedderConfig selects and configures the embedding provider.
// An empty provider disables embeddings; search then falls back to keywords.
type EmbedderConfig struct {
	Provider    string `yaml:"provider"`
	Model       string `yaml:"model"`
	BaseURL     string `yaml:"base_url"`
	APIKeyEnv   string `yaml:"api_key_env"`
	Dims        int    `yaml:"dims"`
	TimeoutSecs int    `yaml:"timeout_secs"`
}

// ChunkerConfig configures how document text is split before embedding.
type ChunkerConfig struct {
	Words   int `yaml:"words"`
	Overlap int `yaml:"overlap"`
}

// SearchConfig bounds result sizes.
type SearchConfig struct {
	MaxResults int `yaml:"max_results"`
	TopK       int `yaml:"top_k"`
}

// ServerConfig configures the HTTP surface.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// LogConfig configures the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// Config is the root application configuration structure.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Embedder EmbedderConfig `yaml:"embedder"`
	Chunker  ChunkerConfig  `yaml:"chunker"`
	Search   SearchConfig   `yaml:"search"`
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{Path: defaultDBPath()},
		Embedder: EmbedderConfig{APIKeyEnv: "OPENAI_API_KEY", TimeoutSecs: 30},
		Chunker:  ChunkerConfig{Words: chunker.DefaultWords, Overlap: chunker.DefaultOverlap},
		Search:   SearchConfig{MaxResults: 100, TopK: 10},
		Server:   ServerConfig{Addr: ":8080"},
		Log:      LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads a config from path. A missing file yields defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	applyDefaults(cfg)
	return cfg, nil
}

// LoadDefault tries ./courtdocs.yaml, then ~/.courtdocs/config.yaml, and
// returns the path it used ("" when neither exists).
func LoadDefault() (*Config, string, error) {
	candidates := []string{"courtdocs.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".courtdocs", "config.yaml"))
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			cfg, err := Load(p)
			return cfg, p, err
		}
	}
	return Default(), "", nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// LoadEnv loads .env files into the process environment without overriding
// variables that are already set. Missing files are skipped.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides cfg with COURTDOCS_* variables read through getenv.
func ApplyEnv(cfg *Config, getenv func(string) string) {
	set := func(dst *string, key string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}
	set(&cfg.Database.Path, "COURTDOCS_DB")
	set(&cfg.Embedder.Provider, "COURTDOCS_EMBED_PROVIDER")
	set(&cfg.Embedder.Model, "COURTDOCS_EMBED_MODEL")
	set(&cfg.Embedder.BaseURL, "COURTDOCS_EMBED_URL")
	set(&cfg.Server.Addr, "COURTDOCS_ADDR")
	set(&cfg.Log.Level, "COURTDOCS_LOG_LEVEL")
}

// EmbeddingConfig resolves the provider settings, reading the API key from
// the variable named by api_key_env.
func (c *Config) EmbeddingConfig(getenv func(string) string) embedding.Config {
	e := c.Embedder
	var key string
	if e.APIKeyEnv != "" {
		key = getenv(e.APIKeyEnv)
	}
	return embedding.Config{
		Provider: e.Provider,
		Model:    e.Model,
		BaseURL:  e.BaseURL,
		APIKey:   key,
		Dims:     e.Dims,
		Timeout:  time.Duration(e.TimeoutSecs) * time.Second,
	}
}

// ChunkOptions converts the chunker section.
func (c *Config) ChunkOptions() chunker.Options {
	return chunker.Options{Words: c.Chunker.Words, Overlap: c.Chunker.Overlap}
}

// NewLogger builds the slog logger described by c.Log.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(c.Log.Level)}
	if strings.EqualFold(c.Log.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return l
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "courtdocs.db"
	}
	return filepath.Join(home, ".courtdocs", "courtdocs.db")
}

func applyDefaults(cfg *Config) {
	d := Default()
	if cfg.Database.Path == "" {
		cfg.Database.Path = d.Database.Path
	}
	if cfg.Embedder.APIKeyEnv == "" {
		cfg.Embedder.APIKeyEnv = d.Embedder.APIKeyEnv
	}
	if cfg.Embedder.TimeoutSecs == 0 {
		cfg.Embedder.TimeoutSecs = d.Embedder.TimeoutSecs
	}
	if cfg.Chunker.Words == 0 {
		cfg.Chunker = d.Chunker
	}
	if cfg.Search.MaxResults == 0 {
		cfg.Search.MaxResults = d.Search.MaxResults
	}
	if cfg.Search.TopK == 0 {
		cfg.Search.TopK = d.Search.TopK
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = d.Server.Addr
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = d.Log.Level
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = d.Log.Format
	}
}
