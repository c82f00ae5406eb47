package augment

import (
	"encoding/json"

	"github.com/auditlens/auditlens/schema"
)

// ApplyOverrides patches factors in place with the override values named in
// result.Overridden. Only keys present in both Overridden and Factors are
// applied; unknown keys and values that fail to decode are skipped silently.
// Structured values (pattern lists, anchor features) replace the heuristic
// value wholesale. The returned slice lists the factor names actually
// applied, in the order they appeared in Overridden.
func ApplyOverrides(factors *schema.AggregatedFactors, result *schema.AugmentResult) []string {
	if factors == nil || result == nil {
		return nil
	}

	var applied []string
	for _, name := range result.Overridden {
		value, ok := result.Factors[name]
		if !ok {
			continue
		}
		if applyOne(factors, schema.FactorKey(name), value) {
			applied = append(applied, name)
		}
	}
	return applied
}

func applyOne(f *schema.AggregatedFactors, key schema.FactorKey, value any) bool {
	switch key {
	case schema.FactorLinesOfCode:
		return setInt(&f.LinesOfCode, value)
	case schema.FactorNumFunctions:
		return setInt(&f.NumFunctions, value)
	case schema.FactorNumPrograms:
		return setInt(&f.NumPrograms, value)
	case schema.FactorTotalCyclomaticComplexity:
		return setInt(&f.TotalCyclomaticComplexity, value)
	case schema.FactorMaxCyclomaticComplexity:
		return setInt(&f.MaxCyclomaticComplexity, value)
	case schema.FactorAvgCyclomaticComplexity:
		return setFloat(&f.AvgCyclomaticComplexity, value)
	case schema.FactorUnsafeCodeBlocks:
		return setInt(&f.UnsafeCodeBlocks, value)
	case schema.FactorPanicCalls:
		return setInt(&f.PanicCalls, value)
	case schema.FactorUnwrapCalls:
		return setInt(&f.UnwrapCalls, value)
	case schema.FactorMatchWithoutDefault:
		return setInt(&f.MatchWithoutDefault, value)
	case schema.FactorMemorySafetyIssues:
		return setInt(&f.MemorySafetyIssues, value)
	case schema.FactorAccessControlIssues:
		return setInt(&f.AccessControlIssues, value)
	case schema.FactorStateVariables:
		return setInt(&f.StateVariables, value)
	case schema.FactorPublicFunctions:
		return setInt(&f.PublicFunctions, value)
	case schema.FactorPrivateFunctions:
		return setInt(&f.PrivateFunctions, value)
	case schema.FactorExternalCallCount:
		return setInt(&f.ExternalCallCount, value)
	case schema.FactorUniqueExternalCalls:
		return setTyped(&f.UniqueExternalCalls, value)
	case schema.FactorStandardLibraryUsage:
		return setTyped(&f.StandardLibraryUsage, value)
	case schema.FactorCPICount:
		return setInt(&f.CPICount, value)
	case schema.FactorTokenTransferCount:
		return setInt(&f.TokenTransferCount, value)
	case schema.FactorMathOperations:
		return setInt(&f.MathOperations, value)
	case schema.FactorTimeDependentLogic:
		return setInt(&f.TimeDependentLogic, value)
	case schema.FactorDefiPatterns:
		return setTyped(&f.DefiPatterns, value)
	case schema.FactorOracleUsages:
		return setTyped(&f.OracleUsages, value)
	case schema.FactorEconomicRiskFactors:
		return setTyped(&f.EconomicRiskFactors, value)
	case schema.FactorKnownProtocols:
		return setTyped(&f.KnownProtocolInteractions, value)
	case schema.FactorAnchorFeatures:
		return setTyped(&f.Anchor, value)
	default:
		return false
	}
}

// setInt accepts the numeric shapes JSON decoding can produce.
func setInt(dst *int, value any) bool {
	switch v := value.(type) {
	case float64:
		*dst = int(v)
		return true
	case int:
		*dst = v
		return true
	case json.Number:
		if n, err := v.Int64(); err == nil {
			*dst = int(n)
			return true
		}
	}
	return false
}

func setFloat(dst *float64, value any) bool {
	switch v := value.(type) {
	case float64:
		*dst = v
		return true
	case int:
		*dst = float64(v)
		return true
	case json.Number:
		if n, err := v.Float64(); err == nil {
			*dst = n
			return true
		}
	}
	return false
}

// setTyped round-trips a dynamically-typed value through JSON into the
// concrete factor type. This handles string slices and the structured
// pattern/feature records with one code path.
func setTyped[T any](dst *T, value any) bool {
	raw, err := json.Marshal(value)
	if err != nil {
		return false
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return false
	}
	*dst = out
	return true
}
