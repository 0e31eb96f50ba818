package lats

import (
	"strconv"
	"strings"

	sv "github.com/woozymasta/semver"
)

// Convention identifies one of the recognized tag syntaxes.
type Convention uint8

const (
	// ConventionNone marks a tag matching no recognized form.
	ConventionNone Convention = iota
	// ConventionVInt matches "v" + integer (v1, v10).
	ConventionVInt
	// ConventionInt matches a bare integer (1, 13).
	ConventionInt
	// ConventionMajMin matches major.minor (13.4).
	ConventionMajMin
)

// String returns a stable textual representation for Convention.
func (c Convention) String() string {
	switch c {
	case ConventionVInt:
		return "vinteger"
	case ConventionInt:
		return "integer"
	case ConventionMajMin:
		return "major.minor"
	default:
		return "none"
	}
}

// Classify reports which convention a tag belongs to. The tag is trimmed of
// surrounding whitespace first; no other normalization is applied, so "V1"
// and "v1.0.0" are both ConventionNone. The three forms are disjoint.
func Classify(tag string) Convention {
	t := strings.TrimSpace(tag)

	switch {
	case tagVInt.MatchString(t):
		return ConventionVInt
	case tagInt.MatchString(t):
		return ConventionInt
	case tagMajMin.MatchString(t):
		return ConventionMajMin
	default:
		return ConventionNone
	}
}

// SelectLatest picks the latest tag from an unordered list.
//
// Conventions are tried in priority order: vINTEGER, then bare INTEGER, then
// MAJOR.MINOR. The first convention with at least one match wins outright
// and only its candidates are ranked, even when a lower-priority tag would
// be numerically larger ("v2" beats "13"). Ranking is by integer value, or
// by (major, minor) for the dotted form. The returned string is the trimmed
// tag; the second result is false when no tag matches any convention.
func SelectLatest(tags []string) (string, bool) {
	var (
		bestV, bestInt, bestMM string
		haveV, haveInt, haveMM bool
		vNum, intNum           int
		mmMaj, mmMin           int
	)

	for _, raw := range tags {
		t := strings.TrimSpace(raw)

		if m := tagVInt.FindStringSubmatch(t); m != nil {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				continue // digit run overflows int
			}

			if !haveV || n > vNum {
				bestV, vNum, haveV = t, n, true
			}

			continue
		}

		if haveV {
			continue // a vN tag already fixed the convention
		}

		if m := tagInt.FindStringSubmatch(t); m != nil {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}

			if !haveInt || n > intNum {
				bestInt, intNum, haveInt = t, n, true
			}

			continue
		}

		if m := tagMajMin.FindStringSubmatch(t); m != nil {
			maj, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}

			min, err := strconv.Atoi(m[2])
			if err != nil {
				continue
			}

			if !haveMM || maj > mmMaj || (maj == mmMaj && min > mmMin) {
				bestMM, mmMaj, mmMin, haveMM = t, maj, min, true
			}
		}
	}

	switch {
	case haveV:
		return bestV, true
	case haveInt:
		return bestInt, true
	case haveMM:
		return bestMM, true
	default:
		return "", false
	}
}

// countSemverish reports how many tags parse as SemVer. Diagnostic only:
// logged for repositories that end up unversioned, so a repo releasing
// full X.Y.Z tags is visible as a deliberate non-match rather than noise.
func countSemverish(tags []string) int {
	n := 0
	for _, t := range tags {
		if v, ok := sv.ParseNoCanon(strings.TrimSpace(t)); ok && v.IsValid() {
			n++
		}
	}

	return n
}
