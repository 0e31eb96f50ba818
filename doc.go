/*
Package lats (Latest Action Tag Scanner) tracks the newest release tag of
GitHub Actions repositories.

The scanner walks every repository of an organization plus an explicit list
of extra "owner/repo" entries, fetches their tags through the GitHub REST
API, and picks the latest tag under three recognized conventions, in strict
priority order:

 1. vINTEGER (e.g., v1, v2, v10) - the standard GitHub Actions form
 2. INTEGER (e.g., 1, 2, 13) - plain major version
 3. MAJOR.MINOR (e.g., 13.4, 12.1) - dotted form without patch

As soon as one convention matches at least one tag, only that convention is
ranked; a repository tagging v2 never competes against its own 13.4. Tags
matching none of the three forms are ignored, and a repository with no match
at all lands in the unversioned cache so later runs skip its tag queries.

Results are written as a flat "owner/repo@tag" manifest, mirrored into a
documentation file between two marker lines, and the unversioned cache is
rebuilt from scratch on every run.

The transport is injectable: the pipeline only needs a Fetcher that returns
the raw response body for a URL. HTTPFetcher is the production
implementation; tests run against an in-memory one.

Typical flow:

	cfg, _ := lats.LoadConfig("") // defaults: the GitHub "actions" org
	sum, err := lats.Run(cfg, lats.NewHTTPFetcher(token), nil)
*/
package lats
