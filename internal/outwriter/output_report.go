package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/auditlens/auditlens/internal/contract"
	"github.com/auditlens/auditlens/schema"
)

// WriteReportResults outputs an analysis report, dispatching based on the output format configured.
func WriteReportResults(report *schema.AnalysisReport, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, report)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportCSV(w, report)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportTable(report, cfg, duration, w)
		}, "Wrote table")
	}
	return nil
}

// dimensionRow is one row of the dimension score table.
type dimensionRow struct {
	name  string
	score int
}

func dimensionRows(scores schema.ComplexityScores) []dimensionRow {
	return []dimensionRow{
		{"Structural", scores.Structural.Score},
		{"Security", scores.Security.Score},
		{"Systemic", scores.Systemic.Score},
		{"Economic", scores.Economic.Score},
	}
}

// writeReportTable generates and writes the human-readable report.
func writeReportTable(report *schema.AnalysisReport, cfg *contract.Config, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Dimension", "Score", "Label"})
	table.Configure(func(tc *tablewriter.Config) {
		tc.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, d := range dimensionRows(report.Scores) {
		data = append(data, []string{
			d.name,
			strconv.Itoa(d.score),
			labelFor(float64(d.score), cfg),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if cfg.Explain {
		if err := writeScoreDetails(writer, report.Scores); err != nil {
			return err
		}
	}

	if cfg.Detail {
		if err := writeFactorTable(writer, &report.Factors); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(writer, "Analyzed %d files (%d skipped) in %v with %d workers. Report backend: %s\n",
		report.FilesAnalyzed, report.FilesSkipped, duration, cfg.Workers, cfg.ReportBackend); err != nil {
		return err
	}
	if report.Augmented {
		if _, err := fmt.Fprintf(writer, "Augmented factors: %s\n", strings.Join(report.OverriddenFactors, ", ")); err != nil {
			return err
		}
	}
	return nil
}

// writeScoreDetails prints the exact inputs that fed each score formula.
func writeScoreDetails(w io.Writer, scores schema.ComplexityScores) error {
	st := scores.Structural.Details
	se := scores.Security.Details
	sy := scores.Systemic.Details
	ec := scores.Economic.Details

	lines := []string{
		fmt.Sprintf("Structural: loc=%d functions=%d avgCx=%.2f maxCx=%d",
			st.LinesOfCode, st.NumFunctions, st.AvgCyclomaticComplexity, st.MaxCyclomaticComplexity),
		fmt.Sprintf("Security:   unsafe=%d panics=%d unwraps=%d memSafety=%d accessCtl=%d",
			se.UnsafeCodeBlocks, se.PanicCalls, se.UnwrapCalls, se.MemorySafetyIssues, se.AccessControlIssues),
		fmt.Sprintf("Systemic:   extCalls=%d uniqueCalls=%d oracles=%d cpi=%d constraints=%d",
			sy.ExternalCallCount, sy.UniqueExternalCalls, sy.OracleCount, sy.CPICount, sy.ConstraintUsage),
		fmt.Sprintf("Economic:   transfers=%d mathOps=%d defi=%d riskSum=%.1f timeDeps=%d",
			ec.TokenTransferCount, ec.MathOperations, ec.DefiPatternCount, ec.WeightedRiskSum, ec.TimeDependentLogic),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// writeFactorTable prints every factor value in catalog order.
func writeFactorTable(w io.Writer, factors *schema.AggregatedFactors) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Factor", "Value"})

	catalog := schema.FactorCatalog()
	var data [][]string
	for _, key := range schema.CatalogOrder {
		info := catalog[key]
		data = append(data, []string{info.DisplayName, factorValue(factors, key)})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeReportCSV writes the dimension scores in CSV format.
func writeReportCSV(w io.Writer, report *schema.AnalysisReport) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	if err := csvWriter.Write([]string{"dimension", "score", "label"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, d := range dimensionRows(report.Scores) {
		rec := []string{
			strings.ToLower(d.name),
			strconv.Itoa(d.score),
			schema.GetPlainLabel(float64(d.score)),
		}
		if err := csvWriter.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// factorValue renders one factor of the aggregated record as a display string.
// Sets are joined; structured lists are summarized by their entries.
func factorValue(f *schema.AggregatedFactors, key schema.FactorKey) string {
	switch key {
	case schema.FactorLinesOfCode:
		return strconv.Itoa(f.LinesOfCode)
	case schema.FactorNumFunctions:
		return strconv.Itoa(f.NumFunctions)
	case schema.FactorNumPrograms:
		return strconv.Itoa(f.NumPrograms)
	case schema.FactorTotalCyclomaticComplexity:
		return strconv.Itoa(f.TotalCyclomaticComplexity)
	case schema.FactorMaxCyclomaticComplexity:
		return strconv.Itoa(f.MaxCyclomaticComplexity)
	case schema.FactorAvgCyclomaticComplexity:
		return fmt.Sprintf("%.2f", f.AvgCyclomaticComplexity)
	case schema.FactorUnsafeCodeBlocks:
		return strconv.Itoa(f.UnsafeCodeBlocks)
	case schema.FactorPanicCalls:
		return strconv.Itoa(f.PanicCalls)
	case schema.FactorUnwrapCalls:
		return strconv.Itoa(f.UnwrapCalls)
	case schema.FactorMatchWithoutDefault:
		return strconv.Itoa(f.MatchWithoutDefault)
	case schema.FactorMemorySafetyIssues:
		return strconv.Itoa(f.MemorySafetyIssues)
	case schema.FactorAccessControlIssues:
		return strconv.Itoa(f.AccessControlIssues)
	case schema.FactorStateVariables:
		return strconv.Itoa(f.StateVariables)
	case schema.FactorPublicFunctions:
		return strconv.Itoa(f.PublicFunctions)
	case schema.FactorPrivateFunctions:
		return strconv.Itoa(f.PrivateFunctions)
	case schema.FactorExternalCallCount:
		return strconv.Itoa(f.ExternalCallCount)
	case schema.FactorUniqueExternalCalls:
		return joinCapped(f.UniqueExternalCalls)
	case schema.FactorStandardLibraryUsage:
		return joinCapped(f.StandardLibraryUsage)
	case schema.FactorCPICount:
		return strconv.Itoa(f.CPICount)
	case schema.FactorTokenTransferCount:
		return strconv.Itoa(f.TokenTransferCount)
	case schema.FactorMathOperations:
		return strconv.Itoa(f.MathOperations)
	case schema.FactorTimeDependentLogic:
		return strconv.Itoa(f.TimeDependentLogic)
	case schema.FactorDefiPatterns:
		parts := make([]string, len(f.DefiPatterns))
		for i, p := range f.DefiPatterns {
			parts[i] = fmt.Sprintf("%s(%s)", p.Type, p.RiskLevel)
		}
		return joinCapped(parts)
	case schema.FactorOracleUsages:
		parts := make([]string, len(f.OracleUsages))
		for i, o := range f.OracleUsages {
			parts[i] = fmt.Sprintf("%s(%s)", o.Oracle, o.RiskLevel)
		}
		return joinCapped(parts)
	case schema.FactorEconomicRiskFactors:
		parts := make([]string, len(f.EconomicRiskFactors))
		for i, r := range f.EconomicRiskFactors {
			parts[i] = fmt.Sprintf("%s x%d", r.Type, r.Count)
		}
		return joinCapped(parts)
	case schema.FactorKnownProtocols:
		return joinCapped(f.KnownProtocolInteractions)
	case schema.FactorAnchorFeatures:
		a := f.Anchor
		return fmt.Sprintf("constraints=%d seeds=%d signer=%d owner=%d handlers=%d",
			a.ConstraintUsage, a.SeedsUsage, a.SignerChecks, a.OwnerChecks, a.InstructionHandlers)
	default:
		return ""
	}
}

// maxJoinedItems caps set rendering so one wide factor cannot blow up the table.
const maxJoinedItems = 6

func joinCapped(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	if len(items) > maxJoinedItems {
		shown := strings.Join(items[:maxJoinedItems], ", ")
		return fmt.Sprintf("%s (+%d more)", shown, len(items)-maxJoinedItems)
	}
	return strings.Join(items, ", ")
}
