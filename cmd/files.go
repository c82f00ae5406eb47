package cmd

import (
	"github.com/auditlens/auditlens/core"
	"github.com/auditlens/auditlens/internal/contract"
	"github.com/spf13/cobra"
)

// filesCmd performs file-level attention ranking.
var filesCmd = &cobra.Command{
	Use:   "files [repo-path]",
	Short: "Show the top files ranked by audit attention score.",
	Long: `Rank individual source files by how much review attention they deserve.

The attention score applies the structural formula per file: lines of code,
function count, and cyclomatic complexity. Large dense files with deep
branching rise to the top; thin glue files sink.

Use this to:
- Decide where a time-boxed review should start
- Spot files that concentrate most of a program's logic
- Track how refactors shift complexity between files

Examples:
  # Rank the top 10 files
  auditlens files --limit 10

  # Include per-file safety counters
  auditlens files --detail

  # Export the ranking to CSV
  auditlens files --output csv --output-file ranking.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteFiles(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run files analysis", err)
		}
	},
}
