package lats

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the explicit configuration for one run. All knobs live here -
// there is no package-level mutable state - so tests and callers substitute
// values without patching anything.
type Config struct {
	// Organization whose repositories are scanned.
	Organization string `yaml:"organization"`

	// APIURL is the GitHub REST endpoint (overridable for tests/proxies).
	APIURL string `yaml:"api_url"`

	// ExtraRepos are full "owner/repo" paths outside the organization,
	// tracked identically but cached by full path instead of bare name.
	ExtraRepos []string `yaml:"extra_repos"`

	// ManifestPath is the "owner/repo@tag" output file.
	ManifestPath string `yaml:"manifest"`

	// CachePath is the unversioned-identifier cache file.
	CachePath string `yaml:"cache"`

	// DocsPath is the documentation file receiving the spliced section.
	DocsPath string `yaml:"docs"`

	// StartMarker / EndMarker bound the spliced section in DocsPath.
	StartMarker string `yaml:"start_marker"`
	EndMarker   string `yaml:"end_marker"`

	// PageSize is the per_page value for listing calls.
	PageSize int `yaml:"page_size"`

	// Token is the optional GitHub API token. Never read from the config
	// file; set it from a flag or environment.
	Token string `yaml:"-"`
}

// DefaultConfig mirrors the tracked setup: the GitHub "actions" organization
// plus a handful of widely used third-party actions.
func DefaultConfig() Config {
	return Config{
		Organization: "actions",
		APIURL:       DefaultAPIURL,
		ExtraRepos: []string{
			"DeLaGuardo/setup-clojure",
			"DeterminateSystems/determinate-nix-action",
			"DeterminateSystems/flake-checker-action",
			"DeterminateSystems/flakehub-cache-action",
			"DeterminateSystems/flakehub-push",
			"DeterminateSystems/magic-nix-cache-action",
			"DeterminateSystems/nix-installer-action",
			"docker/build-push-action",
			"tailscale/github-action",
		},
		ManifestPath: "versions.txt",
		CachePath:    "unversioned.txt",
		DocsPath:     "README.md",
		StartMarker:  DefaultStartMarker,
		EndMarker:    DefaultEndMarker,
		PageSize:     DefaultPageSize,
	}
}

// LoadConfig returns DefaultConfig overlaid with an optional YAML file.
// An empty path returns the defaults unchanged; keys absent from the file
// keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg.normalized(), nil
}

// normalized returns a copy with zero fields backfilled from the defaults,
// so a sparse YAML file or a hand-built Config still runs.
func (c Config) normalized() Config {
	def := DefaultConfig()
	out := c

	if out.Organization == "" {
		out.Organization = def.Organization
	}

	if out.APIURL == "" {
		out.APIURL = def.APIURL
	}

	if out.ManifestPath == "" {
		out.ManifestPath = def.ManifestPath
	}

	if out.CachePath == "" {
		out.CachePath = def.CachePath
	}

	if out.DocsPath == "" {
		out.DocsPath = def.DocsPath
	}

	if out.StartMarker == "" {
		out.StartMarker = def.StartMarker
	}

	if out.EndMarker == "" {
		out.EndMarker = def.EndMarker
	}

	if out.PageSize <= 0 {
		out.PageSize = def.PageSize
	}

	return out
}
