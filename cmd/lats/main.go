/*
Package main is the LATS cli tool (Latest Action Tag Scanner):
scans a GitHub organization plus extra repositories for their latest
version tags and maintains the versions manifest, the README section,
and the unversioned-repository cache.
*/
package main

import (
	"log/slog"
	"os"

	"github.com/woozymasta/lats"

	"github.com/jessevdk/go-flags"
	"github.com/lmittmann/tint"
)

type Options struct {
	// Source selection
	OptionsSource OptionsSource `group:"Source"`
	// Output files
	OptionsFiles OptionsFiles `group:"Files"`
	// Logging
	OptionsLog OptionsLog `group:"Logging"`
}

type OptionsSource struct {
	Config string   `short:"c" long:"config"  description:"YAML config file (flags override it)"`
	Org    string   `short:"o" long:"org"     description:"GitHub organization to scan"`
	Extra  []string `short:"r" long:"extra"   description:"Extra owner/repo to track (repeatable, replaces the built-in list)"`
	APIURL string   `long:"api-url"           description:"GitHub API base URL"`
	Token  string   `short:"t" long:"token"   description:"GitHub API token" env:"GITHUB_TOKEN"`
}

type OptionsFiles struct {
	Manifest string `short:"m" long:"manifest" description:"Manifest output file"`
	Cache    string `long:"cache"              description:"Unversioned-repository cache file"`
	Docs     string `short:"d" long:"docs"     description:"Documentation file to splice the manifest into"`
}

type OptionsLog struct {
	Verbose bool `short:"v" long:"verbose" description:"Enable debug logging"`
}

func main() {
	var opt Options
	parser := flags.NewParser(&opt, flags.Default)
	parser.LongDescription = `LATS — Latest Action Tag Scanner.
Walks every repository of a GitHub organization (plus an extra list of
owner/repo entries), picks the latest vN / N / X.Y tag per repository,
and writes the owner/repo@tag manifest, a README section, and a cache of
repositories with no recognized version tag.`
	if _, err := parser.Parse(); err != nil {
		if flagErr, ok := err.(*flags.Error); ok && flagErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	level := slog.LevelInfo
	if opt.OptionsLog.Verbose {
		level = slog.LevelDebug
	}

	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level}))
	slog.SetDefault(log)

	cfg, err := lats.LoadConfig(opt.OptionsSource.Config)
	if err != nil {
		log.Error("bad configuration", "error", err)
		os.Exit(1)
	}

	// Flags override config file values
	if opt.OptionsSource.Org != "" {
		cfg.Organization = opt.OptionsSource.Org
	}
	if len(opt.OptionsSource.Extra) > 0 {
		cfg.ExtraRepos = opt.OptionsSource.Extra
	}
	if opt.OptionsSource.APIURL != "" {
		cfg.APIURL = opt.OptionsSource.APIURL
	}
	if opt.OptionsFiles.Manifest != "" {
		cfg.ManifestPath = opt.OptionsFiles.Manifest
	}
	if opt.OptionsFiles.Cache != "" {
		cfg.CachePath = opt.OptionsFiles.Cache
	}
	if opt.OptionsFiles.Docs != "" {
		cfg.DocsPath = opt.OptionsFiles.Docs
	}
	cfg.Token = opt.OptionsSource.Token

	sum, err := lats.Run(cfg, lats.NewHTTPFetcher(cfg.Token), log)
	if err != nil {
		log.Error("run failed", "error", err)
		os.Exit(1)
	}

	log.Info("done",
		"repos", sum.Repos,
		"versions", sum.Versions,
		"unversioned", sum.Unversioned,
		"cache-skips", sum.CacheSkips)
}
