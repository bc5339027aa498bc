package commands

import (
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/shoptrends/internal/report"
)

// NewDescribeCommand creates the describe command.
func NewDescribeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "Print the dataset report without drawing figures",
		Long: `Load shopping_trends.csv and print the first rows, descriptive statistics,
column info and missing-value counts.`,
		Example: `  # Report as markdown for an agent or a pipe
  shoptrends describe -o markdown

  # Report as a single JSON document
  shoptrends describe -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc := NewCommandContext(cmd)
			tbl, err := cc.loadTable(cmd.Context())
			if err != nil {
				return err
			}
			rep, err := report.Build(tbl)
			if err != nil {
				return err
			}
			return report.Write(cc.Renderer, rep)
		},
	}
}
