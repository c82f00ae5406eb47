package extract

import (
	"regexp"
	"strings"
)

// branchPattern matches the control-flow tokens that each contribute one
// decision point: branches, loops, match, logical operators, and the error
// propagation operator. "else if" contributes through its embedded if.
var branchPattern = regexp.MustCompile(`\bif\b|\bwhile\b|\bfor\b|\bmatch\b|&&|\|\||\?`)

var matchKeywordPattern = regexp.MustCompile(`\bmatch[\s(]`)

// EstimateComplexity computes the total and maximum cyclomatic complexity for
// one file. Function boundaries are located lexically; when none are found
// but the extractor counted functions, the whole file is treated as a single
// decision-point pool distributed evenly across the reported function count.
// When fewer boundaries are found than functions were counted, the shortfall
// is estimated from the average complexity of the located functions. Both
// results are floored at 1 so degenerate input never yields zero.
func EstimateComplexity(text string, functionCount int) (total, max int) {
	bounds := fnDeclPattern.FindAllStringIndex(text, -1)

	if len(bounds) == 0 {
		if functionCount == 0 {
			return 1, 1
		}
		pool := decisionPoints(text)
		avg := (pool + functionCount - 1) / functionCount
		if avg < 1 {
			avg = 1
		}
		total = pool
		if total < 1 {
			total = 1
		}
		max = 2 * avg
		if max > total {
			max = total
		}
		if max < 1 {
			max = 1
		}
		return total, max
	}

	// Slice the file into contiguous function body spans: from one
	// declaration start to the next, or end of file for the last.
	for i, b := range bounds {
		end := len(text)
		if i+1 < len(bounds) {
			end = bounds[i+1][0]
		}
		c := decisionPoints(text[b[0]:end])
		total += c
		if c > max {
			max = c
		}
	}

	// Compensate for under-detection: the extractor's function count is the
	// source of truth, so missing functions are assumed to carry the average
	// complexity seen so far. Max is left unchanged.
	if len(bounds) < functionCount {
		avg := float64(total) / float64(len(bounds))
		total += int(float64(functionCount-len(bounds))*avg + 0.5)
	}

	if total < 1 {
		total = 1
	}
	if max < 1 {
		max = 1
	}
	return total, max
}

// decisionPoints counts the cyclomatic decision points in one span: a base
// value of 1, one per control-flow token, and (arms - 1) extra per match
// block since the match keyword itself already contributed one.
func decisionPoints(span string) int {
	points := 1 + len(branchPattern.FindAllStringIndex(span, -1))
	for _, body := range matchBlockBodies(span) {
		arms := strings.Count(body, "=>")
		if arms > 1 {
			points += arms - 1
		}
	}
	return points
}

// matchBlockBodies returns the brace-delimited body of every match expression
// in text. Blocks with unbalanced braces are skipped rather than guessed at.
func matchBlockBodies(text string) []string {
	var bodies []string
	for _, loc := range matchKeywordPattern.FindAllStringIndex(text, -1) {
		open := strings.Index(text[loc[1]-1:], "{")
		if open < 0 {
			continue
		}
		start := loc[1] - 1 + open
		depth := 0
		for i := start; i < len(text); i++ {
			switch text[i] {
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					bodies = append(bodies, text[start+1:i])
					i = len(text)
				}
			}
		}
	}
	return bodies
}
