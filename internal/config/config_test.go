package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(New(), "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := Config{LogFormat: "human", Output: "text"}
	if *cfg != want {
		t.Errorf("Load() = %+v, want %+v", *cfg, want)
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := "debug: true\nlog_format: json\nmax_tag_size: 65536\nbackup_suffix: .bak\noutput: json\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(New(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := Config{
		Debug:        true,
		LogFormat:    "json",
		MaxTagSize:   65536,
		BackupSuffix: ".bak",
		Output:       "json",
		File:         path,
	}
	if *cfg != want {
		t.Errorf("Load() = %+v, want %+v", *cfg, want)
	}
}

func TestLoad_SearchesWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.WriteFile(filepath.Join(dir, "apetag.yaml"), []byte("output: json\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(New(), "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Output != "json" {
		t.Errorf("Output = %q, want json", cfg.Output)
	}
}

func TestLoad_Env(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APETAG_MAX_TAG_SIZE", "1024")
	t.Setenv("APETAG_BACKUP_SUFFIX", ".orig")

	cfg, err := Load(New(), "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.MaxTagSize != 1024 {
		t.Errorf("MaxTagSize = %d, want 1024", cfg.MaxTagSize)
	}
	if cfg.BackupSuffix != ".orig" {
		t.Errorf("BackupSuffix = %q, want .orig", cfg.BackupSuffix)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"bad output", "output: xml\n"},
		{"bad log format", "log_format: plain\n"},
		{"negative size", "max_tag_size: -1\n"},
		{"malformed yaml", "output: [\n"},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, "cfg"+string(rune('a'+i))+".yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(New(), path); err == nil {
				t.Error("expected error")
			}
		})
	}

	t.Run("missing explicit file", func(t *testing.T) {
		if _, err := Load(New(), filepath.Join(dir, "missing.yaml")); err == nil {
			t.Error("expected error")
		}
	})
}
