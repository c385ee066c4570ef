package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jessebraham/camper/internal/config"
)

func TestLoad_MissingFileIsEmptyConfig(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.FanID != 0 || cfg.Identity != "" {
		t.Errorf("expected zero config, got %+v", cfg)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	want := &config.Config{
		FanID:    896389,
		Identity: "secret-cookie",
		Library:  t.TempDir(),
		Format:   "flac",
	}
	if err := config.Save(want, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.FanID != want.FanID {
		t.Errorf("FanID = %d, want %d", got.FanID, want.FanID)
	}
	if got.Identity != want.Identity {
		t.Errorf("Identity = %q, want %q", got.Identity, want.Identity)
	}
	if got.Library != want.Library {
		t.Errorf("Library = %q, want %q", got.Library, want.Library)
	}
	if got.Format != "flac" {
		t.Errorf("Format = %q, want %q", got.Format, "flac")
	}
}

func TestLoad_IdentityFromEnv(t *testing.T) {
	t.Setenv("CAMPER_IDENTITY", "env-cookie")

	path := filepath.Join(t.TempDir(), "config.yml")
	if err := config.Save(&config.Config{FanID: 1, Identity: "file-cookie"}, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Identity != "env-cookie" {
		t.Errorf("Identity = %q, want env override %q", cfg.Identity, "env-cookie")
	}
}

func TestValid_Complete(t *testing.T) {
	cfg := &config.Config{
		FanID:    42,
		Identity: "cookie",
		Library:  t.TempDir(),
		Format:   "mp3-v0",
	}
	if !cfg.Valid() {
		t.Error("complete config should be valid")
	}
}

func TestValid_Incomplete(t *testing.T) {
	lib := t.TempDir()
	cases := map[string]config.Config{
		"zero fan_id":     {Identity: "c", Library: lib, Format: "mp3"},
		"empty identity":  {FanID: 1, Library: lib, Format: "mp3"},
		"missing library": {FanID: 1, Identity: "c", Library: filepath.Join(lib, "gone"), Format: "mp3"},
		"bad format":      {FanID: 1, Identity: "c", Library: lib, Format: "midi"},
	}
	for name, cfg := range cases {
		if cfg.Valid() {
			t.Errorf("%s: config should be invalid", name)
		}
	}
}

func TestValid_LibraryMustBeDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "notadir")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg := &config.Config{FanID: 1, Identity: "c", Library: file, Format: "mp3"}
	if cfg.Valid() {
		t.Error("library pointing at a file should be invalid")
	}
}

func TestString_OmitsUnsetFields(t *testing.T) {
	cfg := &config.Config{FanID: 7}
	s := cfg.String()
	if s == "" {
		t.Fatal("String should render set fields")
	}
	for _, forbidden := range []string{"identity", "library", "format"} {
		if strings.Contains(s, forbidden) {
			t.Errorf("String should omit unset field %q, got:\n%s", forbidden, s)
		}
	}
}
