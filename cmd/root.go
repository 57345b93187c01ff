package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	debug      bool
	jsonOutput bool
	maxDepth   int
	olderThan  string
	configPath string

	// Version info populated from main
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets build-time version information.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "dev-sweep [path]",
	Short: "Find and clean build artifacts & dependency caches across your dev projects",
	Long: `dev-sweep scans your filesystem for developer projects and identifies
reclaimable disk space from build artifacts, dependency caches, and
generated files. It recognises Rust, Node.js, Python, Java, .NET, Go
and many more project types.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Without a subcommand, behave like "scan".
		return runScan(cmd, args)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Show detailed operation logs")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")
	rootCmd.PersistentFlags().IntVarP(&maxDepth, "max-depth", "d", -1, "Maximum directory depth to scan, -1 for unbounded (default from config)")
	rootCmd.PersistentFlags().StringVarP(&olderThan, "older-than", "o", "", `Only include projects older than this (e.g. "30d", "3m", "1y")`)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $DEVSWEEP_CONFIG or user config dir)")
	rootCmd.Flags().String("min-size", "", "Minimum cleanable size to show (e.g., 50MB)")

	// Register all subcommands
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
