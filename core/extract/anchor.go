package extract

import (
	"regexp"
	"strings"

	"github.com/auditlens/auditlens/schema"
)

var (
	accountAttrPattern = regexp.MustCompile(`#\[account[\(\]]`)
	pubFieldPattern    = regexp.MustCompile(`\bpub\s+[a-z_][A-Za-z0-9_]*\s*:`)
	derivePattern      = regexp.MustCompile(`#\[derive\(([^)]*)\)\]`)

	constraintPattern = regexp.MustCompile(`\bconstraint\s*=|\bhas_one\s*=`)
	seedsPattern      = regexp.MustCompile(`\bseeds\s*=|\bbump\b`)
	signerPattern     = regexp.MustCompile(`\bSigner\s*<|\bis_signer\b`)
	ownerPattern      = regexp.MustCompile(`\bowner\s*=|\.owner\s*==`)
	spacePattern      = regexp.MustCompile(`\bspace\s*=`)
	rentPattern       = regexp.MustCompile(`(?i)\brent_exempt\w*\b|\bRent::get\b`)
)

// extractAnchorFeatures collects the framework-specific counters for one
// file. Instruction handlers are the public functions inside a program
// module; when no program module exists the handler count is zero even if
// the file declares public functions.
func extractAnchorFeatures(text string) schema.AnchorFeatures {
	feats := schema.AnchorFeatures{
		ConstraintUsage:  len(constraintPattern.FindAllStringIndex(text, -1)),
		SeedsUsage:       len(seedsPattern.FindAllStringIndex(text, -1)),
		SignerChecks:     len(signerPattern.FindAllStringIndex(text, -1)),
		OwnerChecks:      len(ownerPattern.FindAllStringIndex(text, -1)),
		SpaceAllocations: len(spacePattern.FindAllStringIndex(text, -1)),
		RentExemptChecks: len(rentPattern.FindAllStringIndex(text, -1)),
		DeriveMacros:     deriveMacroNames(text),
	}

	for _, body := range programModuleBodies(text) {
		feats.InstructionHandlers += len(pubFnPattern.FindAllStringIndex(body, -1))
	}
	return feats
}

// deriveMacroNames returns every macro name listed in derive attributes, in
// order of appearance. Duplicates within a file are preserved.
func deriveMacroNames(text string) []string {
	var names []string
	for _, m := range derivePattern.FindAllStringSubmatch(text, -1) {
		for part := range strings.SplitSeq(m[1], ",") {
			if name := strings.TrimSpace(part); name != "" {
				names = append(names, name)
			}
		}
	}
	return names
}

// programModuleBodies returns the brace-delimited body of every module
// annotated with a program attribute.
func programModuleBodies(text string) []string {
	var bodies []string
	for _, loc := range programAttr.FindAllStringIndex(text, -1) {
		rest := text[loc[1]:]
		modIdx := strings.Index(rest, "mod ")
		if modIdx < 0 {
			continue
		}
		if body, ok := braceBlock(rest[modIdx:]); ok {
			bodies = append(bodies, body)
		}
	}
	return bodies
}

// countStateVariables counts public field declarations inside
// account-annotated struct and enum blocks. Files without annotated blocks
// contribute zero; there is deliberately no fallback to counting plain
// struct or enum declarations.
func countStateVariables(text string) int {
	count := 0
	for _, loc := range accountAttrPattern.FindAllStringIndex(text, -1) {
		rest := text[loc[0]:]
		structIdx := indexOfDecl(rest)
		if structIdx < 0 {
			continue
		}
		if body, ok := braceBlock(rest[structIdx:]); ok {
			count += len(pubFieldPattern.FindAllStringIndex(body, -1))
		}
	}
	return count
}

var declKeywordPattern = regexp.MustCompile(`\b(?:struct|enum)\s+[A-Za-z_]`)

// indexOfDecl finds the nearest struct or enum keyword after an account
// attribute, or -1 when the attribute annotates something else.
func indexOfDecl(rest string) int {
	loc := declKeywordPattern.FindStringIndex(rest)
	if loc == nil {
		return -1
	}
	// An attribute more than a few lines above the declaration is likely
	// unrelated; 400 bytes covers multi-line attribute arguments.
	if loc[0] > 400 {
		return -1
	}
	return loc[0]
}

// braceBlock returns the content between the first { in s and its matching
// closing brace. Returns false for unbalanced input.
func braceBlock(s string) (string, bool) {
	start := strings.Index(s, "{")
	if start < 0 {
		return "", false
	}
	depth := 0
	for i := start; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start+1 : i], true
			}
		}
	}
	return "", false
}
