package lats

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/tidwall/gjson"
)

const (
	// DefaultAPIURL is the GitHub REST API endpoint.
	DefaultAPIURL = "https://api.github.com"

	// DefaultPageSize is the per_page value for listing calls; listing stops
	// at the first page shorter than this.
	DefaultPageSize = 100
)

// Fetcher is the transport boundary: fetch one URL and return the raw body.
//
// Implementations must return the body even for non-2xx responses - the
// GitHub API encodes its errors as JSON objects with a "message" field, and
// callers interpret those. A non-nil error means the transport itself
// failed, which aborts the whole run.
type Fetcher interface {
	Fetch(url string, header http.Header) ([]byte, error)
}

// HTTPFetcher is the production Fetcher on top of net/http.
type HTTPFetcher struct {
	// Client to use; nil falls back to http.DefaultClient.
	Client *http.Client

	// Token is an optional GitHub API token for higher rate limits.
	Token string
}

// NewHTTPFetcher returns an HTTPFetcher with a 60s timeout. An empty token
// means unauthenticated requests (60/hour instead of 5000).
func NewHTTPFetcher(token string) *HTTPFetcher {
	return &HTTPFetcher{
		Client: &http.Client{Timeout: 60 * time.Second},
		Token:  token,
	}
}

// Fetch performs a GET and returns the body regardless of HTTP status.
func (f *HTTPFetcher) Fetch(url string, header http.Header) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	for k, vals := range header {
		for _, v := range vals {
			req.Header.Add(k, v)
		}
	}

	if f.Token != "" {
		req.Header.Set("Authorization", "Bearer "+f.Token)
	}

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return io.ReadAll(resp.Body)
}

// apiHeader is the fixed header set for GitHub listing calls.
func apiHeader() http.Header {
	h := http.Header{}
	h.Set("Accept", "application/vnd.github+json")

	return h
}

// Client lists repositories and tags through a Fetcher.
// Zero-value fields fall back to DefaultAPIURL / DefaultPageSize / slog.Default.
type Client struct {
	Fetcher  Fetcher
	APIURL   string
	PageSize int
	Log      *slog.Logger
}

func (c *Client) apiURL() string {
	if c.APIURL != "" {
		return c.APIURL
	}

	return DefaultAPIURL
}

func (c *Client) pageSize() int {
	if c.PageSize > 0 {
		return c.PageSize
	}

	return DefaultPageSize
}

func (c *Client) logger() *slog.Logger {
	if c.Log != nil {
		return c.Log
	}

	return slog.Default()
}

// ListRepos returns the names of every repository in an organization,
// walking fixed-size pages until a short or empty page. Any transport
// failure, as well as a non-array payload (bad credentials, unknown org),
// is an error: without the full listing the run cannot proceed.
func (c *Client) ListRepos(org string) ([]string, error) {
	var names []string

	for page := 1; ; page++ {
		url := fmt.Sprintf("%s/orgs/%s/repos?per_page=%d&page=%d", c.apiURL(), org, c.pageSize(), page)

		body, err := c.Fetcher.Fetch(url, apiHeader())
		if err != nil {
			return nil, fmt.Errorf("list repos for %s: %w", org, err)
		}

		root := gjson.ParseBytes(body)
		if !root.IsArray() {
			return nil, fmt.Errorf("list repos for %s: %s", org, apiMessage(root))
		}

		recs := root.Array()
		if len(recs) == 0 {
			return names, nil
		}

		for _, r := range recs {
			names = append(names, r.Get("name").String())
		}

		if len(recs) < c.pageSize() {
			return names, nil
		}
	}
}

// ListTags returns every tag name of one repository, walking fixed-size
// pages until a short or empty page.
//
// An error-shaped payload (object with "message" instead of an array, e.g.
// rate limiting) is not an error: it is logged and the tags accumulated so
// far are returned, so one throttled repository never aborts the run. Only
// a transport-level failure returns a non-nil error.
func (c *Client) ListTags(owner, repo string) ([]string, error) {
	var tags []string

	for page := 1; ; page++ {
		url := fmt.Sprintf("%s/repos/%s/%s/tags?per_page=%d&page=%d", c.apiURL(), owner, repo, c.pageSize(), page)

		body, err := c.Fetcher.Fetch(url, apiHeader())
		if err != nil {
			return nil, fmt.Errorf("list tags for %s/%s: %w", owner, repo, err)
		}

		root := gjson.ParseBytes(body)
		if !root.IsArray() {
			c.logger().Warn("api error, stopping tag walk",
				"repo", owner+"/"+repo, "message", apiMessage(root))

			return tags, nil
		}

		recs := root.Array()
		if len(recs) == 0 {
			return tags, nil
		}

		for _, r := range recs {
			tags = append(tags, r.Get("name").String())
		}

		if len(recs) < c.pageSize() {
			return tags, nil
		}
	}
}

// apiMessage extracts the "message" field from an error payload,
// falling back to a generic description for unparseable bodies.
func apiMessage(root gjson.Result) string {
	if msg := root.Get("message").String(); msg != "" {
		return msg
	}

	return "unexpected API response"
}
