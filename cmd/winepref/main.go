package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"winepref/internal/config"
	"winepref/internal/prefix"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:           "winepref",
	Short:         "winepref - Manage isolated wineprefix directories",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	// Unknown subcommands are rejected by Args; no subcommand at all is
	// a usage error.
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("winepref %s\n  commit: %s\n  built:  %s\n", version, commit, date))

	rootCmd.AddCommand(lsCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(shortcutCmd)
}

// loadEnv loads the config and scans the prefix registry. Every subcommand
// starts from this pair.
func loadEnv() (*config.Config, prefix.Registry, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	return cfg, prefix.Load(cfg.PrefixDir), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
