package lats

import "regexp"

var (
	// Prefixed integer: exactly lowercase "v" + digits (e.g. "v1", "v10").
	tagVInt = regexp.MustCompile(`^v(\d+)$`)

	// Bare integer: digits and nothing else (e.g. "1", "13").
	tagInt = regexp.MustCompile(`^(\d+)$`)

	// Major.minor: exactly two digit groups (e.g. "13.4"); "1.0.0" does not match.
	tagMajMin = regexp.MustCompile(`^(\d+)\.(\d+)$`)
)
