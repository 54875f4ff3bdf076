package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name       string
		createFile bool
		content    string
		wantErr    bool
		validate   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:       "valid yaml",
			createFile: true,
			content: `logging:
  level: "debug"
  format: "json"
codec:
  width: 64
  signed: true
`,
			wantErr: false,
			validate: func(t *testing.T, cfg *Config, err error) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
				}
				if cfg.Logging.Format != "json" {
					t.Errorf("Logging.Format = %q, want %q", cfg.Logging.Format, "json")
				}
				if cfg.Codec.Width != 64 {
					t.Errorf("Codec.Width = %d, want 64", cfg.Codec.Width)
				}
				if !cfg.Codec.Signed {
					t.Errorf("Codec.Signed = false, want true")
				}
			},
		},
		{
			name:       "missing file falls back to defaults",
			createFile: false,
			wantErr:    false,
			validate: func(t *testing.T, cfg *Config, err error) {
				def := Default()
				if *cfg != *def {
					t.Errorf("missing file config = %+v, want defaults %+v", cfg, def)
				}
			},
		},
		{
			name:       "partial yaml keeps defaults",
			createFile: true,
			content: `logging:
  level: "warn"
`,
			wantErr: false,
			validate: func(t *testing.T, cfg *Config, err error) {
				if cfg.Logging.Level != "warn" {
					t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "warn")
				}
				if cfg.Codec.Width != 32 {
					t.Errorf("Codec.Width = %d, want default 32", cfg.Codec.Width)
				}
			},
		},
		{
			name:       "malformed yaml",
			createFile: true,
			content:    "codec:\n  width: [32",
			wantErr:    true,
			validate: func(t *testing.T, cfg *Config, err error) {
				if err == nil || !strings.Contains(err.Error(), "yaml") {
					t.Errorf("want yaml parse error, got: %v", err)
				}
			},
		},
		{
			name:       "invalid width",
			createFile: true,
			content:    "codec:\n  width: 16\n",
			wantErr:    true,
			validate: func(t *testing.T, cfg *Config, err error) {
				if err == nil || !strings.Contains(err.Error(), "width") {
					t.Errorf("want width validation error, got: %v", err)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.yaml")

			if tt.createFile {
				if err := os.WriteFile(configPath, []byte(tt.content), 0o644); err != nil {
					t.Fatalf("write test config: %v", err)
				}
			}

			cfg, err := Load(configPath)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && cfg == nil {
				t.Fatalf("Load() returned nil config")
			}
			if tt.validate != nil {
				tt.validate(t, cfg, err)
			}
		})
	}
}
