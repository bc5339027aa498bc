package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/shoptrends/internal/chart"
	"github.com/leapstack-labs/shoptrends/internal/cli/config"
	"github.com/leapstack-labs/shoptrends/internal/cli/output"
	"github.com/leapstack-labs/shoptrends/internal/dataset"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext builds a CommandContext from the loaded configuration
// and the logger stored on the command context.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := config.GetCurrentConfig()
	return &CommandContext{
		Cfg:      cfg,
		Logger:   config.GetLogger(cmd.Context()),
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.OutputFormat)),
	}
}

// loadTable reads the dataset from its fixed path with the configured source.
func (cc *CommandContext) loadTable(ctx context.Context) (*dataset.Table, error) {
	return dataset.Load(ctx, dataset.DefaultPath,
		dataset.WithSource(dataset.Source(cc.Cfg.Source)),
		dataset.WithLogger(cc.Logger),
	)
}

// FigureFile is a figure written to disk.
type FigureFile struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// renderFigures builds and saves both figures in order. It stops at the
// first figure that cannot be built.
func (cc *CommandContext) renderFigures(tbl *dataset.Table) ([]FigureFile, error) {
	format := chart.Format(cc.Cfg.ImageFormat)
	builders := []func(*dataset.Table) (*chart.Figure, error){chart.FigureOne, chart.FigureTwo}

	files := make([]FigureFile, 0, len(builders))
	for _, build := range builders {
		fig, err := build(tbl)
		if err != nil {
			return files, err
		}
		path, err := chart.Save(fig, cc.Cfg.OutDir, format)
		if err != nil {
			return files, fmt.Errorf("failed to write %s: %w", fig.Name, err)
		}
		cc.Logger.Info("figure written", "figure", fig.Name, "path", path)
		files = append(files, FigureFile{Name: fig.Name, Path: path})

		if cc.Renderer.EffectiveMode() != output.ModeJSON {
			cc.Renderer.StatusLine(fig.Name, "success", path)
		}
	}
	return files, nil
}
