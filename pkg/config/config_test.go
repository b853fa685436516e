package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	// the compatibility contract with existing hosts
	if cfg.Suggest.Limit != 5 {
		t.Errorf("default limit = %d, want 5", cfg.Suggest.Limit)
	}
	if cfg.Suggest.MinWordLength != 2 {
		t.Errorf("default min_word_length = %d, want 2", cfg.Suggest.MinWordLength)
	}
	if cfg.Suggest.MaxEditDistance != 2 {
		t.Errorf("default max_edit_distance = %d, want 2", cfg.Suggest.MaxEditDistance)
	}
}

func TestSuggestOptions(t *testing.T) {
	cfg := DefaultConfig()
	opts := cfg.Suggest.Options()
	if opts.Limit != cfg.Suggest.Limit ||
		opts.MinWordLength != cfg.Suggest.MinWordLength ||
		opts.MaxEditDistance != cfg.Suggest.MaxEditDistance {
		t.Errorf("Options() = %+v does not mirror %+v", opts, cfg.Suggest)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := DefaultConfig()
	cfg.Suggest.Limit = 8
	cfg.Server.MaxBufferLen = 1024
	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded.Suggest.Limit != 8 {
		t.Errorf("loaded limit = %d, want 8", loaded.Suggest.Limit)
	}
	if loaded.Server.MaxBufferLen != 1024 {
		t.Errorf("loaded max_buffer_len = %d, want 1024", loaded.Server.MaxBufferLen)
	}
}

func TestInitConfigCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig: %v", err)
	}
	if cfg.Suggest.Limit != 5 {
		t.Errorf("created config limit = %d, want 5", cfg.Suggest.Limit)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file was not created: %v", err)
	}
}

func TestPartialParseKeepsValidSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[suggest]\nlimit = 7\nmin_word_length = \"broken\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	// the valid key survives, the broken key falls back to the default
	if cfg.Suggest.Limit != 7 {
		t.Errorf("limit = %d, want recovered 7", cfg.Suggest.Limit)
	}
	if cfg.Suggest.MinWordLength != 2 {
		t.Errorf("min_word_length = %d, want default 2", cfg.Suggest.MinWordLength)
	}
}

func TestUpdate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := DefaultConfig()

	limit := 10
	maxDist := 3
	if err := cfg.Update(path, &limit, nil, &maxDist); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if cfg.Suggest.Limit != 10 || cfg.Suggest.MaxEditDistance != 3 {
		t.Errorf("updated config = %+v", cfg.Suggest)
	}
	if cfg.Suggest.MinWordLength != 2 {
		t.Errorf("untouched field changed: %d", cfg.Suggest.MinWordLength)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Suggest.Limit != 10 {
		t.Errorf("persisted limit = %d, want 10", loaded.Suggest.Limit)
	}
}
