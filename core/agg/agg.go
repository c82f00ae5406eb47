// Package agg folds per-file factor records into one repository-level record.
package agg

import (
	"sort"

	"github.com/auditlens/auditlens/schema"
)

// Aggregate folds every per-file record into a single AggregatedFactors.
// The fold is order-independent: counts sum, maxima track, sets union, and
// lists concatenate in input order. knownProtocolInteractions is the one
// list-valued field that is deduplicated, because the signal there is which
// protocols appear, not how often. The derived average is computed once from
// the summed totals, never as an average of per-file averages.
func Aggregate(files []schema.RawFileMetrics) schema.AggregatedFactors {
	var out schema.AggregatedFactors

	// Each run owns its accumulator sets; nothing here outlives the fold.
	uniqueCalls := make(map[string]struct{})
	stdModules := make(map[string]struct{})
	protocols := make(map[string]struct{})

	for _, f := range files {
		out.LinesOfCode += f.LinesOfCode
		out.NumFunctions += f.NumFunctions
		out.NumPrograms += f.NumPrograms

		out.TotalCyclomaticComplexity += f.TotalComplexity
		if f.MaxComplexity > out.MaxCyclomaticComplexity {
			out.MaxCyclomaticComplexity = f.MaxComplexity
		}

		out.UnsafeCodeBlocks += f.UnsafeCodeBlocks
		out.PanicCalls += f.PanicCalls
		out.UnwrapCalls += f.UnwrapCalls
		out.MatchWithoutDefault += f.MatchWithoutDefault
		out.AccessControlIssues += f.AccessControlIssues

		out.StateVariables += f.StateVariables
		out.PublicFunctions += f.PublicFunctions
		out.PrivateFunctions += f.PrivateFunctions

		out.ExternalCallCount += f.ExternalCallCount
		for _, call := range f.UniqueExternalCalls {
			uniqueCalls[call] = struct{}{}
		}
		for _, mod := range f.StandardLibraryUsage {
			stdModules[mod] = struct{}{}
		}

		out.CPICount += f.CPICount
		out.TokenTransferCount += f.TokenTransferCount
		out.MathOperations += f.MathOperations
		out.TimeDependentLogic += f.TimeDependentHits

		out.DefiPatterns = append(out.DefiPatterns, f.DefiPatterns...)
		out.OracleUsages = append(out.OracleUsages, f.OracleUsages...)
		out.EconomicRiskFactors = append(out.EconomicRiskFactors, f.EconomicRisks...)
		for _, p := range f.ProtocolInteractions {
			protocols[p] = struct{}{}
		}

		out.Anchor.ConstraintUsage += f.Anchor.ConstraintUsage
		out.Anchor.SeedsUsage += f.Anchor.SeedsUsage
		out.Anchor.SignerChecks += f.Anchor.SignerChecks
		out.Anchor.OwnerChecks += f.Anchor.OwnerChecks
		out.Anchor.SpaceAllocations += f.Anchor.SpaceAllocations
		out.Anchor.RentExemptChecks += f.Anchor.RentExemptChecks
		out.Anchor.InstructionHandlers += f.Anchor.InstructionHandlers
		out.Anchor.DeriveMacros = append(out.Anchor.DeriveMacros, f.Anchor.DeriveMacros...)
	}

	out.UniqueExternalCalls = sortedKeys(uniqueCalls)
	out.StandardLibraryUsage = sortedKeys(stdModules)
	out.KnownProtocolInteractions = sortedKeys(protocols)

	// Presentation alias: memory safety findings are currently exactly the
	// unsafe block count.
	out.MemorySafetyIssues = out.UnsafeCodeBlocks

	if out.NumFunctions > 0 {
		out.AvgCyclomaticComplexity = float64(out.TotalCyclomaticComplexity) / float64(out.NumFunctions)
	}

	return out
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
