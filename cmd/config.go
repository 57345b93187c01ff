package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lakshaymaurya-felt/devsweep/internal/config"
	"github.com/lakshaymaurya-felt/devsweep/internal/core"
	"github.com/lakshaymaurya-felt/devsweep/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage dev-sweep configuration",
	Long:  "Show the configuration file location and contents, or reset it to defaults.",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	configCmd.Flags().Bool("show", false, "Print the current config")
	configCmd.Flags().Bool("reset", false, "Reset config to defaults")
}

func runConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	path := configPath
	if path == "" {
		path = config.Path()
	}
	path = core.ExpandHome(path)

	if reset, _ := cmd.Flags().GetBool("reset"); reset {
		if err := config.Default().Save(path); err != nil {
			return err
		}
		fmt.Fprintf(out, "  %s Config reset to defaults.\n", ui.SuccessStyle().Render(ui.IconCheck))
		fmt.Fprintf(out, "  %s %s\n", ui.DimStyle().Render(ui.IconArrow), path)
		return nil
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	if show, _ := cmd.Flags().GetBool("show"); show {
		return printConfig(cmd, cfg)
	}

	exists := ui.DimStyle().Render("no (using defaults)")
	if _, err := os.Stat(path); err == nil {
		exists = ui.SuccessStyle().Render("yes")
	}
	fmt.Fprintf(out, "\n  dev-sweep configuration\n\n")
	fmt.Fprintf(out, "  Config file: %s\n", path)
	fmt.Fprintf(out, "  Exists:      %s\n\n", exists)
	if err := printConfig(cmd, cfg); err != nil {
		return err
	}
	fmt.Fprintf(out, "\n  %s Use --show or --reset to manage.\n\n", ui.DimStyle().Render(ui.IconArrow))
	return nil
}

func printConfig(cmd *cobra.Command, cfg *config.Config) error {
	if jsonOutput {
		return writeJSON(cmd.OutOrStdout(), cfg)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
