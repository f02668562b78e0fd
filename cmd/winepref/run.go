package main

import (
	"github.com/spf13/cobra"

	"winepref/internal/wine"
)

var runCmd = &cobra.Command{
	Use:   "run <prefix> <exe>",
	Short: "Run an executable in wine with WINEPREFIX set to the prefix",
	Long: `Run an executable in wine with WINEPREFIX set to the prefix directory.

The executable's own exit status is not checked; only a failed spawn is an
error.

Examples:
  winepref run work installer.exe`,
	Args: cobra.ExactArgs(2),
	RunE: runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	_, prefixen, err := loadEnv()
	if err != nil {
		return err
	}

	prefixPath, err := prefixen.Resolve(args[0])
	if err != nil {
		return err
	}

	return wine.NewRunner().Run(prefixPath, args[1])
}
