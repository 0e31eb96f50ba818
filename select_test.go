package lats

import "testing"

func TestClassify(t *testing.T) {
	t.Parallel()

	cases := []struct {
		tag  string
		want Convention
	}{
		{"v1", ConventionVInt},
		{"v10", ConventionVInt},
		{"v007", ConventionVInt},
		{"1", ConventionInt},
		{"13", ConventionInt},
		{"13.4", ConventionMajMin},
		{"0.1", ConventionMajMin},
		{"  v2  ", ConventionVInt}, // trimmed before matching

		// strict: no case folding, no partial matches
		{"V1", ConventionNone},
		{"v", ConventionNone},
		{"v1a", ConventionNone},
		{"v1.0", ConventionNone},
		{"v1.0.0", ConventionNone},
		{"1.0.0", ConventionNone},
		{"1.2.3.4", ConventionNone},
		{"v1-beta", ConventionNone},
		{"release-1", ConventionNone},
		{"beta", ConventionNone},
		{"abc", ConventionNone},
		{"", ConventionNone},
	}

	for _, tc := range cases {
		if got := Classify(tc.tag); got != tc.want {
			t.Fatalf("Classify(%q) = %v; want %v", tc.tag, got, tc.want)
		}
	}
}

func TestSelectLatest(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   []string
		want string
		ok   bool
	}{
		{
			name: "vinteger numeric max, not lexicographic",
			in:   []string{"v1", "v2", "v3", "v10", "v2.1.0"},
			want: "v10", ok: true,
		},
		{
			name: "vinteger beats larger bare integer",
			in:   []string{"v1", "v2", "13", "14"},
			want: "v2", ok: true,
		},
		{
			name: "bare integer beats larger major.minor",
			in:   []string{"5", "13.4", "13.3"},
			want: "5", ok: true,
		},
		{
			name: "major.minor ranked by major then minor",
			in:   []string{"13.4", "13.3", "12.9", "12.1"},
			want: "13.4", ok: true,
		},
		{
			name: "major.minor numeric, 10.1 beats 9.9",
			in:   []string{"9.9", "10.1", "2.5", "1.0"},
			want: "10.1", ok: true,
		},
		{
			name: "unclassified tags ignored around a match",
			in:   []string{"v1.0.0", "release-1", "v3", "beta"},
			want: "v3", ok: true,
		},
		{
			name: "surrounding whitespace trimmed",
			in:   []string{" v3 ", "v2"},
			want: "v3", ok: true,
		},
		{
			name: "late vN still overrides earlier conventions",
			in:   []string{"13", "12.4", "v1"},
			want: "v1", ok: true,
		},
		{name: "empty list", in: nil, want: "", ok: false},
		{name: "only junk", in: []string{"abc", "1.0.0", "V1", "v"}, want: "", ok: false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, ok := SelectLatest(tc.in)
			if got != tc.want || ok != tc.ok {
				t.Fatalf("SelectLatest(%v) = (%q, %v); want (%q, %v)",
					tc.in, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestSelectLatest_SingleRejects(t *testing.T) {
	t.Parallel()

	// Each of these alone must yield no selection under any convention.
	rejects := []string{
		"v1.0.0", "v1-beta", "release-1", "v", "v1a", "V1", "beta", "1.0.0", "abc",
	}

	for _, tag := range rejects {
		if got, ok := SelectLatest([]string{tag}); ok {
			t.Fatalf("SelectLatest([%q]) = (%q, true); want no selection", tag, got)
		}
	}
}

func TestCountSemverish(t *testing.T) {
	t.Parallel()

	in := []string{"1.0.0", "v2.3.4", "1.2.3-rc.1", "abc", "release-1"}
	if got := countSemverish(in); got != 3 {
		t.Fatalf("countSemverish(%v) = %d; want 3", in, got)
	}
}
