package commands

import (
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/shoptrends/internal/cli/output"
)

// NewPlotCommand creates the plot command.
func NewPlotCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "plot",
		Short: "Write both figures without printing the report",
		Long: `Load shopping_trends.csv and write figure-1 (overview) and figure-2
(relationships) to the output directory.`,
		Example: `  # Write SVG figures to ./charts
  shoptrends plot --out-dir charts --image-format svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc := NewCommandContext(cmd)
			tbl, err := cc.loadTable(cmd.Context())
			if err != nil {
				return err
			}
			figures, err := cc.renderFigures(tbl)
			if err != nil {
				return err
			}
			if cc.Renderer.EffectiveMode() == output.ModeJSON {
				return cc.Renderer.JSON(map[string][]FigureFile{"figures": figures})
			}
			return nil
		},
	}
}
