// Package cli provides the command-line interface for shoptrends.
package cli

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/shoptrends/internal/chart"
	"github.com/leapstack-labs/shoptrends/internal/cli/commands"
	"github.com/leapstack-labs/shoptrends/internal/cli/config"
	"github.com/leapstack-labs/shoptrends/internal/cli/output"
	"github.com/leapstack-labs/shoptrends/internal/dataset"
)

var cfgFile string

// Version is set at build time.
var Version = "0.1.0"

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "shoptrends",
		Short: "shoptrends - Shopping trends exploratory analysis",
		Long: `shoptrends loads shopping_trends.csv from the working directory, prints a
report of the table (first rows, descriptive statistics, column info and
missing values) and writes two figures of charts.

Run without a subcommand to do all of it.`,
		Version: Version,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.LoadConfig(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			logger := config.NewLogger(cmd.ErrOrStderr(), cfg).With("run_id", uuid.NewString())
			cmd.SetContext(config.WithLogger(cmd.Context(), logger))

			if cfg.Verbose {
				if configFile := config.GetConfigFileUsed(); configFile != "" {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Using config file: %s\n", configFile)
				}
			}
			logger.Debug("config loaded",
				"source", cfg.Source,
				"out_dir", cfg.OutDir,
				"image_format", cfg.ImageFormat,
				"output", cfg.OutputFormat,
			)
			return nil
		},
		RunE:          commands.RunAnalyze,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(commands.VersionTemplate)

	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: ./shoptrends.yaml)")
	pf.String("source", "", "Dataset engine (csv|duckdb)")
	pf.String("out-dir", "", "Directory figures are written to (default: figures)")
	pf.String("image-format", "", "Figure image format (png|svg)")
	pf.StringP("output", "o", "", "Output format (auto|text|markdown|json)")
	pf.String("log-level", "", "Log level (debug|info|warn|error)")
	pf.String("log-format", "", "Log format (text|json)")
	pf.BoolP("verbose", "v", false, "Verbose output")

	completions := map[string][]string{
		"source":       sourceNames(),
		"image-format": formatNames(),
		"output":       outputNames(),
		"log-level":    {"debug", "info", "warn", "error"},
		"log-format":   {"text", "json"},
	}
	for flag, values := range completions {
		_ = rootCmd.RegisterFlagCompletionFunc(flag, func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
			return values, cobra.ShellCompDirectiveNoFileComp
		})
	}

	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewDescribeCommand())
	rootCmd.AddCommand(commands.NewPlotCommand())
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func sourceNames() []string {
	names := make([]string, len(dataset.Sources))
	for i, s := range dataset.Sources {
		names[i] = string(s)
	}
	return names
}

func formatNames() []string {
	names := make([]string, len(chart.Formats))
	for i, f := range chart.Formats {
		names[i] = string(f)
	}
	return names
}

func outputNames() []string {
	names := make([]string, len(output.Modes))
	for i, m := range output.Modes {
		names[i] = string(m)
	}
	return names
}

// NewCompletionCommand creates the completion command.
func NewCompletionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for shoptrends.

To load completions:

Bash:
  $ source <(shoptrends completion bash)

Zsh:
  $ shoptrends completion zsh > "${fpath[1]}/_shoptrends"

Fish:
  $ shoptrends completion fish | source

PowerShell:
  PS> shoptrends completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
	return cmd
}
