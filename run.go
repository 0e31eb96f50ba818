package lats

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Summary reports what one run did.
type Summary struct {
	Repos       int  // repositories listed in the organization
	Versions    int  // records written to the manifest
	Unversioned int  // identifiers written back to the cache
	CacheSkips  int  // repositories skipped via the cache
	DocsUpdated bool // docs splice happened
}

// Run executes the whole pipeline, synchronously and in order: load the
// unversioned cache, list the organization's repositories, resolve a latest
// tag per repository and per extra repository, then write the manifest,
// splice the docs, and save the rebuilt cache.
//
// Files are written only after every repository has been processed, so a
// transport failure mid-run leaves the previous manifest and cache intact.
// A nil logger falls back to slog.Default.
func Run(cfg Config, f Fetcher, log *slog.Logger) (Summary, error) {
	cfg = cfg.normalized()
	if log == nil {
		log = slog.Default()
	}

	var sum Summary

	cached, err := LoadUnversioned(cfg.CachePath)
	if err != nil {
		return sum, fmt.Errorf("load cache: %w", err)
	}

	if len(cached) > 0 {
		log.Info("loaded unversioned cache", "entries", len(cached))
	}

	client := &Client{Fetcher: f, APIURL: cfg.APIURL, PageSize: cfg.PageSize, Log: log}

	log.Info("listing repositories", "org", cfg.Organization)

	repos, err := client.ListRepos(cfg.Organization)
	if err != nil {
		return sum, err
	}

	sum.Repos = len(repos)
	log.Info("repositories listed", "org", cfg.Organization, "count", len(repos))

	records := make([]Record, 0, len(repos))
	unversioned := make(map[string]struct{})

	// check resolves one repository; key is the cache identifier (bare name
	// for the primary org, full path for extras).
	check := func(owner, repo, key string) error {
		path := owner + "/" + repo

		if _, ok := cached[key]; ok {
			log.Debug("skipping cached unversioned", "repo", path)
			unversioned[key] = struct{}{}
			sum.CacheSkips++

			return nil
		}

		tags, err := client.ListTags(owner, repo)
		if err != nil {
			return err
		}

		tag, ok := SelectLatest(tags)
		if !ok {
			log.Debug("no recognized version tag", "repo", path,
				"tags", len(tags), "semverish", countSemverish(tags))
			unversioned[key] = struct{}{}

			return nil
		}

		records = append(records, Record{Path: path, Tag: tag})
		log.Debug("selected", "repo", path, "tag", tag)

		return nil
	}

	for _, name := range repos {
		if err := check(cfg.Organization, name, name); err != nil {
			return sum, err
		}
	}

	if len(cfg.ExtraRepos) > 0 {
		log.Info("processing extra repositories", "count", len(cfg.ExtraRepos))
	}

	for _, full := range cfg.ExtraRepos {
		owner, repo, ok := strings.Cut(full, "/")
		if !ok || owner == "" || repo == "" {
			log.Warn("ignoring malformed extra repo", "repo", full)
			continue
		}

		if err := check(owner, repo, full); err != nil {
			return sum, err
		}
	}

	content := RenderManifest(records)
	if err := os.WriteFile(cfg.ManifestPath, []byte(content), 0o644); err != nil {
		return sum, fmt.Errorf("write manifest: %w", err)
	}

	sum.Versions = len(records)
	log.Info("manifest written", "path", cfg.ManifestPath, "versions", len(records))

	spliced, err := SpliceDocs(cfg.DocsPath, content, cfg.StartMarker, cfg.EndMarker)
	if err != nil {
		return sum, fmt.Errorf("update docs: %w", err)
	}

	sum.DocsUpdated = spliced
	if spliced {
		log.Info("docs updated", "path", cfg.DocsPath)
	} else {
		log.Warn("docs file not found, splice skipped", "path", cfg.DocsPath)
	}

	if err := SaveUnversioned(cfg.CachePath, unversioned); err != nil {
		return sum, fmt.Errorf("save cache: %w", err)
	}

	sum.Unversioned = len(unversioned)
	log.Info("unversioned cache written", "path", cfg.CachePath, "entries", len(unversioned))

	return sum, nil
}
