package contract

import (
	"strings"
	"testing"
)

// FuzzShouldIgnore fuzzes the ShouldIgnore function with random paths and exclude patterns.
func FuzzShouldIgnore(f *testing.F) {
	seeds := []struct {
		path     string
		excludes string // comma-separated
	}{
		{"programs/vault/src/lib.rs", "target/"},
		{"target/debug/build.rs", "target/"},
		{"programs/amm/src/state.generated.rs", "*.generated.rs"},
		{"tests/fixtures/pool.rs", "tests/"},
		{"", ""},
		{"very/long/path/to/file.rs", "**/node_modules/**"},
	}
	for _, seed := range seeds {
		f.Add(seed.path, seed.excludes)
	}

	f.Fuzz(func(_ *testing.T, path string, excludesStr string) {
		excludes := []string{}
		if excludesStr != "" {
			// Simple split, may not handle complex cases but good for fuzzing
			for ex := range strings.SplitSeq(excludesStr, ",") {
				if trimmed := strings.TrimSpace(ex); trimmed != "" {
					excludes = append(excludes, trimmed)
				}
			}
		}
		_ = ShouldIgnore(path, excludes)
	})
}

// FuzzTruncatePath fuzzes the TruncatePath function.
func FuzzTruncatePath(f *testing.F) {
	seeds := []struct {
		path     string
		maxWidth int
	}{
		{"lib.rs", 10},
		{"programs/vault/src/instructions/deposit_collateral.rs", 20},
		{"", 5},
		{"a", 1},
	}
	for _, seed := range seeds {
		f.Add(seed.path, seed.maxWidth)
	}

	f.Fuzz(func(t *testing.T, path string, maxWidth int) {
		out := TruncatePath(path, maxWidth)
		if maxWidth > 3 && len([]rune(out)) > maxWidth && len([]rune(path)) > maxWidth {
			t.Errorf("TruncatePath(%q, %d) = %q exceeds width", path, maxWidth, out)
		}
	})
}

// FuzzParseBoolString fuzzes the ParseBoolString function.
func FuzzParseBoolString(f *testing.F) {
	for _, seed := range []string{"yes", "no", "true", "false", "1", "0", "YES", "", "maybe"} {
		f.Add(seed)
	}

	f.Fuzz(func(_ *testing.T, s string) {
		_, _ = ParseBoolString(s)
	})
}
