package commands

import (
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/shoptrends/internal/cli/output"
	"github.com/leapstack-labs/shoptrends/internal/report"
)

// AnalyzeResult is the JSON document of a full run.
type AnalyzeResult struct {
	Report  report.Report `json:"report"`
	Figures []FigureFile  `json:"figures"`
}

// RunAnalyze loads the dataset, prints the report and writes both figures.
// It is the default action of the root command.
func RunAnalyze(cmd *cobra.Command, _ []string) error {
	cc := NewCommandContext(cmd)
	r := cc.Renderer

	tbl, err := cc.loadTable(cmd.Context())
	if err != nil {
		return err
	}
	rep, err := report.Build(tbl)
	if err != nil {
		return err
	}

	if r.EffectiveMode() == output.ModeJSON {
		figures, err := cc.renderFigures(tbl)
		if err != nil {
			return err
		}
		return r.JSON(AnalyzeResult{Report: rep, Figures: figures})
	}

	if err := report.Write(r, rep); err != nil {
		return err
	}
	r.Header(2, "Figures")
	_, err = cc.renderFigures(tbl)
	return err
}
