package cmd

import (
	"github.com/auditlens/auditlens/core"
	"github.com/auditlens/auditlens/internal/contract"
	"github.com/spf13/cobra"
)

// scanCmd performs the full repository analysis.
var scanCmd = &cobra.Command{
	Use:   "scan [repo-path]",
	Short: "Score a program source tree across the four audit dimensions.",
	Long: `Scan every Rust source file under the given path, aggregate the extracted
factors into one repository-level record, and score it across four
independent dimensions:

- Structural: size and cyclomatic complexity of the codebase
- Security: unsafe blocks, panics, unwraps, unchecked accounts
- Systemic: external surface, oracles, cross-program invocations
- Economic: token flows, math density, DeFi patterns, time dependence

Each score is capped at 100; a single dominant factor can saturate its
dimension. Use --explain to see the inputs behind each score and --detail
for the full factor table.

When an augmentation endpoint is configured, the heuristic factors are
refined by an external semantic analyzer before scoring. Augmentation
failures are never fatal; the scan falls back to the local factors.

Examples:
  # Scan the current directory
  auditlens scan

  # Scan a specific program with the score breakdown
  auditlens scan ./programs/amm --explain

  # Restrict the scan and export the report as JSON
  auditlens scan --include programs/vault --output json --output-file report.json

  # Refine factors with an external analyzer
  auditlens scan --augment-url http://localhost:8000/analyze --augment-workspace ws-42`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteScan(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run scan", err)
		}
	},
}
