package lats

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadConfig_EmptyPathIsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Fatalf("LoadConfig(\"\") = %+v; want defaults", cfg)
	}
}

func TestLoadConfig_PartialOverlay(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "lats.yaml")
	data := "organization: myorg\nextra_repos:\n  - foo/bar\nmanifest: out.txt\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Organization != "myorg" {
		t.Fatalf("Organization = %q; want myorg", cfg.Organization)
	}

	if want := []string{"foo/bar"}; !reflect.DeepEqual(cfg.ExtraRepos, want) {
		t.Fatalf("ExtraRepos = %v; want %v", cfg.ExtraRepos, want)
	}

	if cfg.ManifestPath != "out.txt" {
		t.Fatalf("ManifestPath = %q; want out.txt", cfg.ManifestPath)
	}

	// Untouched keys keep their defaults.
	def := DefaultConfig()
	if cfg.APIURL != def.APIURL || cfg.CachePath != def.CachePath || cfg.PageSize != def.PageSize {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestLoadConfig_BadYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "lats.yaml")
	if err := os.WriteFile(path, []byte(":\n  - ["), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("want parse error")
	}
}

func TestConfig_NormalizedBackfills(t *testing.T) {
	t.Parallel()

	got := Config{Organization: "myorg", PageSize: -1}.normalized()
	def := DefaultConfig()

	if got.Organization != "myorg" {
		t.Fatalf("Organization = %q; want myorg", got.Organization)
	}

	if got.APIURL != def.APIURL || got.PageSize != def.PageSize ||
		got.ManifestPath != def.ManifestPath || got.StartMarker != def.StartMarker {
		t.Fatalf("backfill incomplete: %+v", got)
	}

	// Extras are intentionally not backfilled: a hand-built Config tracks
	// only what it names.
	if got.ExtraRepos != nil {
		t.Fatalf("ExtraRepos = %v; want nil", got.ExtraRepos)
	}
}
