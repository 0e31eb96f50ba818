package lats

import (
	"errors"
	"io/fs"
	"os"
	"sort"
	"strings"
)

// LoadUnversioned reads the identifiers known from a previous run to have no
// recognized version tag: one per line, blank lines and surrounding
// whitespace ignored. A missing file is an empty set, not an error.
//
// Primary-organization repositories are keyed by bare name, extra
// repositories by full "owner/repo" path.
func LoadUnversioned(path string) (map[string]struct{}, error) {
	set := make(map[string]struct{})

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return set, nil
	}

	if err != nil {
		return nil, err
	}

	for _, line := range strings.Split(string(data), "\n") {
		if id := strings.TrimSpace(line); id != "" {
			set[id] = struct{}{}
		}
	}

	return set, nil
}

// SaveUnversioned overwrites path with the identifiers, one per line,
// sorted ascending. The file is fully replaced: entries for repositories
// that gained tags or disappeared are simply not written back.
func SaveUnversioned(path string, set map[string]struct{}) error {
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	var b strings.Builder
	for _, id := range ids {
		b.WriteString(id)
		b.WriteByte('\n')
	}

	return os.WriteFile(path, []byte(b.String()), 0o644)
}
