package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_Precedence(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "courtdocs.yaml")
	yaml := "database:\n  path: " + filepath.Join(dir, "file.db") + "\nlog:\n  level: debug\n"
	if err := os.WriteFile(cfgFile, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { configPath, dbPath = "", "" })

	configPath = cfgFile
	t.Setenv("COURTDOCS_DB", "")
	if err := loadConfig(); err != nil {
		t.Fatal(err)
	}
	if cfg.Database.Path != filepath.Join(dir, "file.db") {
		t.Errorf("file path = %q", cfg.Database.Path)
	}
	if cfg.Log.Level != "debug" || logger == nil {
		t.Errorf("log config = %+v", cfg.Log)
	}

	t.Setenv("COURTDOCS_DB", filepath.Join(dir, "env.db"))
	if err := loadConfig(); err != nil {
		t.Fatal(err)
	}
	if cfg.Database.Path != filepath.Join(dir, "env.db") {
		t.Errorf("env path = %q", cfg.Database.Path)
	}

	dbPath = filepath.Join(dir, "flag.db")
	if err := loadConfig(); err != nil {
		t.Fatal(err)
	}
	if cfg.Database.Path != dbPath {
		t.Errorf("flag path = %q", cfg.Database.Path)
	}
}

func TestOpenService_HashEmbedder(t *testing.T) {
	t.Cleanup(func() { configPath, dbPath = "", "" })
	configPath = filepath.Join(t.TempDir(), "missing.yaml")
	dbPath = filepath.Join(t.TempDir(), "courtdocs.db")
	t.Setenv("COURTDOCS_EMBED_PROVIDER", "hash")
	if err := loadConfig(); err != nil {
		t.Fatal(err)
	}

	st, svc, err := openService()
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()

	stats, err := svc.Stats(t.Context())
	if err != nil {
		t.Fatal(err)
	}
	if stats.Embedder != "hash/256" || stats.TotalDocuments != 0 {
		t.Errorf("stats = %+v", stats)
	}
}
