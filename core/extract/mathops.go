package extract

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/auditlens/auditlens/internal/contract"
)

// mathOpsWarnThreshold is the raw weighted count above which the extractor
// reports likely pattern over-triggering. The run continues; the warning is
// diagnostic only.
const mathOpsWarnThreshold = 500.0

// mathFamily is one weighted pattern family contributing to the math
// operation count.
type mathFamily struct {
	ID      string
	Pattern *regexp.Regexp
	Weight  float64
}

// Families are evaluated in order; overlapping matches across families are
// deduplicated by character span so a token matched by two families counts
// once, under the first family that claimed it.
var mathFamilies = []mathFamily{
	{
		ID:      "guarded-arithmetic",
		Pattern: regexp.MustCompile(`\b(?:checked|saturating|wrapping|overflowing)_(?:add|sub|mul|div|rem|pow|shl|shr)\b`),
		Weight:  1.0,
	},
	{
		ID:      "financial-math",
		Pattern: regexp.MustCompile(`\b(?:sqrt|powf|powi|pow|exp|ln|log2|log10|compound\w*|interest\w*|apy|apr)\b`),
		Weight:  2.0,
	},
	{
		ID:      "bitwise-shift",
		Pattern: regexp.MustCompile(`<<|>>`),
		Weight:  1.0,
	},
	{
		ID:      "fixed-point",
		Pattern: regexp.MustCompile(`\b(?:u128|i128|U192|U256|Decimal|PreciseNumber|fixed_point\w*)\b`),
		Weight:  1.0,
	},
	{
		ID:      "protocol-helper",
		Pattern: regexp.MustCompile(`\b(?:calculate|compute)_[a-z_]+\b|\b(?:price|fee|rate)_[a-z_]+\b`),
		Weight:  1.5,
	},
}

// CountMathOperations computes the weighted math operation count for one
// file. Matches on function declaration lines are excluded so parameter and
// type names are not mistaken for operations, and each character span counts
// at most once regardless of how many families match it. The result is
// rounded to the nearest integer.
func CountMathOperations(path, text string) int {
	declLines := functionDeclLines(text)

	type span struct{ start, end int }
	var claimed []span

	overlaps := func(s span) bool {
		// claimed stays small in practice; linear scan over sorted spans
		// with early exit is enough.
		idx := sort.Search(len(claimed), func(i int) bool { return claimed[i].end > s.start })
		return idx < len(claimed) && claimed[idx].start < s.end
	}
	claim := func(s span) {
		idx := sort.Search(len(claimed), func(i int) bool { return claimed[i].start >= s.start })
		claimed = append(claimed, span{})
		copy(claimed[idx+1:], claimed[idx:])
		claimed[idx] = s
	}

	var raw float64
	for _, fam := range mathFamilies {
		for _, loc := range fam.Pattern.FindAllStringIndex(text, -1) {
			s := span{loc[0], loc[1]}
			if declLines[lineOf(text, s.start)] {
				continue
			}
			if overlaps(s) {
				continue
			}
			claim(s)
			raw += fam.Weight
		}
	}

	if raw > mathOpsWarnThreshold {
		contract.LogWarn(fmt.Sprintf("Math operation patterns over-triggered in %s", path),
			fmt.Errorf("raw weighted count %.0f exceeds %.0f", raw, mathOpsWarnThreshold))
	}

	return int(math.Round(raw))
}

// functionDeclLines reports which line numbers contain a function
// declaration keyword. Matched tokens on those lines are treated as
// signature text rather than operations.
func functionDeclLines(text string) map[int]bool {
	lines := map[int]bool{}
	for i, line := range strings.Split(text, "\n") {
		if fnDeclPattern.MatchString(line) {
			lines[i] = true
		}
	}
	return lines
}

// lineOf returns the zero-based line number containing byte offset pos.
func lineOf(text string, pos int) int {
	return strings.Count(text[:pos], "\n")
}
