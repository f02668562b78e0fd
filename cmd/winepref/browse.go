package main

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"github.com/spf13/cobra"

	"winepref/internal/wine"
)

var browseCmd = &cobra.Command{
	Use:   "browse <prefix>",
	Short: "Open a shell in a prefix directory with WINEPREFIX set",
	Long: `Open a shell in a prefix directory with WINEPREFIX set to the prefix.

The configured shell replaces the winepref process entirely, so exiting the
shell returns to wherever winepref was started from.

Examples:
  winepref browse work`,
	Args: cobra.ExactArgs(1),
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, prefixen, err := loadEnv()
	if err != nil {
		return err
	}

	prefixPath, err := prefixen.Resolve(args[0])
	if err != nil {
		return err
	}

	shellPath, err := exec.LookPath(cfg.Shell)
	if err != nil {
		return fmt.Errorf("Can't find shell '%s' specified in config", cfg.Shell)
	}

	if err := os.Setenv(wine.EnvVar, prefixPath); err != nil {
		return err
	}
	if err := os.Chdir(prefixPath); err != nil {
		return fmt.Errorf("failed to enter prefix directory: %w", err)
	}

	// Transfers control to the shell; does not return on success.
	if err := syscall.Exec(shellPath, []string{cfg.Shell}, os.Environ()); err != nil {
		return fmt.Errorf("failed to exec shell '%s': %w", cfg.Shell, err)
	}
	return nil
}
