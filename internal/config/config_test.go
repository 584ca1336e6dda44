package config

import (
	"os"
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	wantCols := []string{"mse", "mse_icu", "mse_cum"}
	if len(cfg.Scan.ValueColumns) != len(wantCols) {
		t.Fatalf("Scan.ValueColumns = %q, want %q", cfg.Scan.ValueColumns, wantCols)
	}
	for i, v := range wantCols {
		if cfg.Scan.ValueColumns[i] != v {
			t.Errorf("Scan.ValueColumns[%d] = %q, want %q", i, cfg.Scan.ValueColumns[i], v)
		}
	}
	if cfg.Scan.IDColumn != "param_set_id" {
		t.Errorf("Scan.IDColumn = %q, want %q", cfg.Scan.IDColumn, "param_set_id")
	}
	if cfg.Scan.MaxLineLength != 4096 {
		t.Errorf("Scan.MaxLineLength = %d, want %d", cfg.Scan.MaxLineLength, 4096)
	}
	if cfg.Scan.DelimiterByte() != ',' {
		t.Errorf("Scan.DelimiterByte() = %q, want %q", cfg.Scan.DelimiterByte(), ',')
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
}

func TestLoad_OverrideDefaults(t *testing.T) {
	os.Setenv("MINFIND_ID_COLUMN", "run")
	os.Setenv("MINFIND_MAX_LINE_LENGTH", "65536")
	os.Setenv("MINFIND_DELIMITER", ";")
	os.Setenv("LOG_LEVEL", "debug")
	defer func() {
		os.Unsetenv("MINFIND_ID_COLUMN")
		os.Unsetenv("MINFIND_MAX_LINE_LENGTH")
		os.Unsetenv("MINFIND_DELIMITER")
		os.Unsetenv("LOG_LEVEL")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Scan.IDColumn != "run" {
		t.Errorf("Scan.IDColumn = %q, want %q", cfg.Scan.IDColumn, "run")
	}
	if cfg.Scan.MaxLineLength != 65536 {
		t.Errorf("Scan.MaxLineLength = %d, want %d", cfg.Scan.MaxLineLength, 65536)
	}
	if cfg.Scan.DelimiterByte() != ';' {
		t.Errorf("Scan.DelimiterByte() = %q, want %q", cfg.Scan.DelimiterByte(), ';')
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
}

func TestLoad_CommaSeparatedSlice(t *testing.T) {
	os.Setenv("MINFIND_VALUE_COLUMNS", " loss , val_loss,, ")
	defer os.Unsetenv("MINFIND_VALUE_COLUMNS")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	expected := []string{"loss", "val_loss"}
	if len(cfg.Scan.ValueColumns) != len(expected) {
		t.Fatalf("ValueColumns length = %d, want %d", len(cfg.Scan.ValueColumns), len(expected))
	}
	for i, v := range expected {
		if cfg.Scan.ValueColumns[i] != v {
			t.Errorf("ValueColumns[%d] = %q, want %q", i, cfg.Scan.ValueColumns[i], v)
		}
	}
}

func TestLoad_AltEnvVar(t *testing.T) {
	os.Setenv("MINFIND_LOG_LEVEL", "warn")
	os.Setenv("MINFIND_LOG_FORMAT", "json")
	defer func() {
		os.Unsetenv("MINFIND_LOG_LEVEL")
		os.Unsetenv("MINFIND_LOG_FORMAT")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "warn")
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q, want %q", cfg.Logging.Format, "json")
	}
}

func TestLoad_PrimaryEnvVarWins(t *testing.T) {
	os.Setenv("LOG_LEVEL", "error")
	os.Setenv("MINFIND_LOG_LEVEL", "debug")
	defer func() {
		os.Unsetenv("LOG_LEVEL")
		os.Unsetenv("MINFIND_LOG_LEVEL")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "error")
	}
}

func TestLoad_InvalidInteger(t *testing.T) {
	os.Setenv("MINFIND_MAX_LINE_LENGTH", "lots")
	defer os.Unsetenv("MINFIND_MAX_LINE_LENGTH")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() expected error for non-integer MINFIND_MAX_LINE_LENGTH")
	}
	if !strings.Contains(err.Error(), "MINFIND_MAX_LINE_LENGTH") {
		t.Errorf("error should mention MINFIND_MAX_LINE_LENGTH: %v", err)
	}
}

func validConfig() *Config {
	return &Config{
		Scan: ScanConfig{
			ValueColumns:  []string{"mse"},
			IDColumn:      "param_set_id",
			MaxLineLength: 4096,
			Delimiter:     ",",
		},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(*Config) {},
		},
		{
			name:    "no value columns",
			mutate:  func(c *Config) { c.Scan.ValueColumns = nil },
			wantErr: "MINFIND_VALUE_COLUMNS",
		},
		{
			name:    "empty id column",
			mutate:  func(c *Config) { c.Scan.IDColumn = "" },
			wantErr: "MINFIND_ID_COLUMN",
		},
		{
			name:    "zero line length",
			mutate:  func(c *Config) { c.Scan.MaxLineLength = 0 },
			wantErr: "MINFIND_MAX_LINE_LENGTH",
		},
		{
			name:    "multi-byte delimiter",
			mutate:  func(c *Config) { c.Scan.Delimiter = "::" },
			wantErr: "MINFIND_DELIMITER",
		},
		{
			name:    "newline delimiter",
			mutate:  func(c *Config) { c.Scan.Delimiter = "\n" },
			wantErr: "MINFIND_DELIMITER",
		},
		{
			name:    "invalid log level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: "LOG_LEVEL",
		},
		{
			name:    "invalid log format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "LOG_FORMAT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() expected error mentioning %s", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error should mention %s: %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidate_ReportsAllFailures(t *testing.T) {
	cfg := validConfig()
	cfg.Scan.IDColumn = ""
	cfg.Logging.Format = "xml"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() expected error")
	}
	for _, want := range []string{"MINFIND_ID_COLUMN", "LOG_FORMAT"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error should mention %s: %v", want, err)
		}
	}
}

func TestConfigString(t *testing.T) {
	str := validConfig().String()
	for _, want := range []string{"mse", "param_set_id", "4096"} {
		if !strings.Contains(str, want) {
			t.Errorf("String() = %q, should contain %q", str, want)
		}
	}
}
