package lats

import (
	"errors"
	"io/fs"
	"os"
	"sort"
	"strings"
)

// Default marker lines bounding the spliced section of the docs file.
const (
	DefaultStartMarker = "<!-- VERSIONS_START -->"
	DefaultEndMarker   = "<!-- VERSIONS_END -->"
)

// docsHeader opens the spliced section.
const docsHeader = "## Latest versions"

// Record pairs a full repository path with its selected tag.
type Record struct {
	Path string // "owner/repo"
	Tag  string
}

// String formats the record as one manifest line (without newline).
func (r Record) String() string {
	return r.Path + "@" + r.Tag
}

// RenderManifest formats records as "owner/repo@tag" lines sorted by path,
// case-insensitively, with a trailing newline. Equal folded paths keep
// their input order. The input slice is not modified.
func RenderManifest(records []Record) string {
	out := append([]Record(nil), records...)
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Path) < strings.ToLower(out[j].Path)
	})

	lines := make([]string, 0, len(out))
	for _, r := range out {
		lines = append(lines, r.String())
	}

	return strings.Join(lines, "\n") + "\n"
}

// SpliceDocs replaces the section of the docs file between the start and
// end markers with a header and a fenced block holding content verbatim.
// When the markers are absent the whole section is appended at end of file.
//
// Returns false (and no error) when the file does not exist - the splice is
// a best-effort mirror, a missing docs file never fails the run.
func SpliceDocs(path, content, start, end string) (bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	section := start + "\n" + docsHeader + "\n\n```\n" + content + "```\n" + end

	text := string(data)
	i := strings.Index(text, start)
	j := strings.Index(text, end)

	var updated string
	if i >= 0 && j >= i {
		updated = text[:i] + section + text[j+len(end):]
	} else {
		updated = strings.TrimRight(text, " \t\r\n") + "\n\n" + section + "\n"
	}

	return true, os.WriteFile(path, []byte(updated), 0o644)
}
