// Package extract turns raw source text into per-file factor records using a
// fixed battery of lexical pattern rules. It is a best-effort heuristic by
// design: no parsing, no dataflow, no guarantees of soundness; approximations
// are accepted wherever they keep the battery simple and deterministic.
package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/auditlens/auditlens/schema"
)

// Extract runs the full rule battery over one file's text and returns its
// factor record. The result is deterministic in the input and is never
// mutated after return.
func Extract(path, text string) schema.RawFileMetrics {
	m := schema.RawFileMetrics{Path: path}

	m.LinesOfCode = CountLogicalLines(text)
	m.NumFunctions = len(fnDeclPattern.FindAllStringIndex(text, -1))
	m.NumPrograms = countPrograms(text)

	m.UnsafeCodeBlocks = unsafeBlockRule.Count(text)
	m.PanicCalls = panicRule.Count(text)
	m.UnwrapCalls = unwrapRule.Count(text)
	m.MatchWithoutDefault = countMatchWithoutDefault(text)
	m.AccessControlIssues = countAccessControlIssues(text)

	m.StateVariables = countStateVariables(text)
	m.PublicFunctions = len(pubFnPattern.FindAllStringIndex(text, -1))
	m.PrivateFunctions = countPrivateFunctions(text)

	m.ExternalCallCount, m.UniqueExternalCalls = externalCalls(text)
	m.StandardLibraryUsage = uniqueMatches(stdLibPattern, text)

	m.CPICount = cpiRule.Count(text)
	m.TokenTransferCount = tokenTransferRule.Count(text)
	m.MathOperations = CountMathOperations(path, text)
	m.TimeDependentHits = timeDependentRule.Count(text)

	m.DefiPatterns = detectDefiPatterns(text)
	m.OracleUsages = detectOracleUsages(text)
	m.EconomicRisks = detectEconomicRisks(text)
	m.ProtocolInteractions = uniqueMatchesLower(knownProtocolPattern, text)

	m.Anchor = extractAnchorFeatures(text)

	m.TotalComplexity, m.MaxComplexity = EstimateComplexity(text, m.NumFunctions)

	return m
}

// countPrograms prefers explicit program attributes; files that only carry
// an id declaration still count as one program each.
func countPrograms(text string) int {
	if n := len(programAttr.FindAllStringIndex(text, -1)); n > 0 {
		return n
	}
	return len(declareIDMacro.FindAllStringIndex(text, -1))
}

// countPrivateFunctions counts fn declarations not immediately preceded by
// the pub keyword. The preceding-token check is approximate and can miscount
// around unusual formatting; that imprecision is accepted.
func countPrivateFunctions(text string) int {
	count := 0
	for _, loc := range fnDeclPattern.FindAllStringIndex(text, -1) {
		if !precededByPub(text, loc[0]) {
			count++
		}
	}
	return count
}

// precededByPub reports whether the token stream immediately before pos ends
// with pub, optionally carrying a visibility scope like pub(crate).
func precededByPub(text string, pos int) bool {
	i := pos
	for i > 0 && (text[i-1] == ' ' || text[i-1] == '\t') {
		i--
	}
	if i > 0 && text[i-1] == ')' {
		depth := 0
		for i > 0 {
			i--
			if text[i] == ')' {
				depth++
			} else if text[i] == '(' {
				depth--
				if depth == 0 {
					break
				}
			}
		}
	}
	return strings.HasSuffix(text[:i], "pub")
}

// countMatchWithoutDefault counts match expressions whose body lacks a
// catch-all arm.
func countMatchWithoutDefault(text string) int {
	count := 0
	for _, body := range matchBlockBodies(text) {
		if !strings.Contains(body, "_ =>") && !strings.Contains(body, "_=>") {
			count++
		}
	}
	return count
}

// countAccessControlIssues flags unchecked account usages that are not
// balanced by an explicit safety comment. The two counts are not positionally
// correlated; this is a file-level heuristic.
func countAccessControlIssues(text string) int {
	unchecked := uncheckedAccountRule.Count(text)
	justified := checkCommentRule.Count(text)
	if unchecked <= justified {
		return 0
	}
	return unchecked - justified
}

// externalCalls returns the raw occurrence count and the sorted set of
// distinct call targets.
func externalCalls(text string) (int, []string) {
	matches := externalCallPattern.FindAllString(text, -1)
	return len(matches), sortedUnique(matches)
}

// detectDefiPatterns appends at most one pattern entry per category. The
// fixed medium complexity and risk mirror the fact that keyword presence
// says nothing about implementation difficulty.
func detectDefiPatterns(text string) []schema.DeFiPattern {
	var patterns []schema.DeFiPattern
	for _, trigger := range defiTriggers {
		if trigger.Pattern.MatchString(text) {
			patterns = append(patterns, schema.DeFiPattern{
				Type:       trigger.Type,
				Complexity: schema.MediumRisk,
				RiskLevel:  schema.MediumRisk,
			})
		}
	}
	return patterns
}

// detectOracleUsages appends at most one usage entry per oracle family,
// recording the distinct matched tokens as the touched functions.
func detectOracleUsages(text string) []schema.OracleUsage {
	var usages []schema.OracleUsage
	for _, fam := range oracleFamilies {
		matches := fam.Pattern.FindAllString(text, -1)
		if len(matches) == 0 {
			continue
		}
		usages = append(usages, schema.OracleUsage{
			Oracle:    fam.Name,
			Functions: sortedUniqueLower(matches),
			RiskLevel: fam.RiskLevel,
		})
	}
	return usages
}

// detectEconomicRisks appends one entry per triggered risk category with the
// textual hit count and the category's fixed weight.
func detectEconomicRisks(text string) []schema.EconomicRiskFactor {
	var risks []schema.EconomicRiskFactor
	for _, rule := range riskRules {
		hits := len(rule.Pattern.FindAllStringIndex(text, -1))
		if hits == 0 {
			continue
		}
		risks = append(risks, schema.EconomicRiskFactor{
			Type:     rule.Type,
			Severity: rule.Severity,
			Count:    hits,
			Weight:   rule.Weight,
		})
	}
	return risks
}

func uniqueMatches(pattern *regexp.Regexp, text string) []string {
	return sortedUnique(pattern.FindAllString(text, -1))
}

func uniqueMatchesLower(pattern *regexp.Regexp, text string) []string {
	return sortedUniqueLower(pattern.FindAllString(text, -1))
}

func sortedUnique(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	var out []string
	for _, v := range values {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}

func sortedUniqueLower(values []string) []string {
	lowered := make([]string, len(values))
	for i, v := range values {
		lowered[i] = strings.ToLower(v)
	}
	return sortedUnique(lowered)
}
