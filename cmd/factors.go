package cmd

import (
	"github.com/auditlens/auditlens/core"
	"github.com/auditlens/auditlens/internal/contract"
	"github.com/spf13/cobra"
)

// factorsCmd displays the factor catalog.
var factorsCmd = &cobra.Command{
	Use:   "factors",
	Short: "List every aggregated factor with its type and category.",
	Long: `Display the catalog of factors that feed the four scoring dimensions.

For each factor the catalog shows its display name, value type (count,
ratio, set or list), owning category, and a short description. The catalog
is presentation metadata only; it does not affect scoring.

Examples:
  # Print the catalog as a table
  auditlens factors

  # Export the catalog for documentation
  auditlens factors --output json --output-file factors.json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteFactorCatalog(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot list factors", err)
		}
	},
}
