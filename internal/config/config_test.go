package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Output.Precision != 4 {
		t.Errorf("expected precision 4, got %d", cfg.Output.Precision)
	}
	if cfg.Output.Degrees {
		t.Error("expected degrees to be false by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "vectool.yaml")

	yamlContent := `
output:
  precision: 6
  degrees: true

logging:
  level: "debug"
  log_file: "vectool.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Output.Precision != 6 {
		t.Errorf("expected precision 6, got %d", cfg.Output.Precision)
	}
	if !cfg.Output.Degrees {
		t.Error("expected degrees to be true")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "vectool.log" {
		t.Errorf("expected log file 'vectool.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFilePartial(t *testing.T) {
	// Values absent from the file keep their defaults.
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "vectool.yaml")

	yamlContent := `
output:
  precision: 2
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Output.Precision != 2 {
		t.Errorf("expected precision 2, got %d", cfg.Output.Precision)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default log level 'info', got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
output:
  precision: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/vectool.yaml"); err == nil {
		t.Error("expected error loading missing file")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("expected non-empty config dir")
	}
	if filepath.Base(dir) != "vectool" {
		t.Errorf("expected config dir named 'vectool', got %s", dir)
	}
}

func TestApplyFlags(t *testing.T) {
	cfg := Default()

	if err := flag.Set("debug", "true"); err != nil {
		t.Fatalf("failed to set flag: %v", err)
	}
	if err := flag.Set("precision", "8"); err != nil {
		t.Fatalf("failed to set flag: %v", err)
	}
	if err := flag.Set("degrees", "true"); err != nil {
		t.Fatalf("failed to set flag: %v", err)
	}

	applyFlags(cfg)

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Output.Precision != 8 {
		t.Errorf("expected precision 8, got %d", cfg.Output.Precision)
	}
	if !cfg.Output.Degrees {
		t.Error("expected degrees to be true")
	}

	// Reset for other tests
	_ = flag.Set("debug", "false")
	_ = flag.Set("precision", "-1")
	_ = flag.Set("degrees", "false")
}

func TestSaveAndReload(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "sub", "vectool.yaml")

	cfg := Default()
	cfg.Output.Precision = 7
	cfg.Output.Degrees = true
	cfg.Logging.Level = "warn"

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}

	if loaded.Output.Precision != 7 {
		t.Errorf("expected precision 7, got %d", loaded.Output.Precision)
	}
	if !loaded.Output.Degrees {
		t.Error("expected degrees to be true")
	}
	if loaded.Logging.Level != "warn" {
		t.Errorf("expected log level 'warn', got %s", loaded.Logging.Level)
	}
}
