package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"winepref/internal/desktop"
	"winepref/internal/wine"
)

var shortcutName string

var shortcutCmd = &cobra.Command{
	Use:   "shortcut <exe> [prefix]",
	Short: "Create a desktop file that launches an exe in a prefix",
	Long: `Create a desktop file that launches an exe in a prefix.

When no prefix argument is given, the WINEPREFIX environment variable is
used, so shortcuts can be created from inside a 'winepref browse' session.

Examples:
  winepref shortcut game.exe mybox
  winepref shortcut game.exe                 # inside 'winepref browse'
  winepref shortcut game.exe mybox -n "My Game"`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runShortcut,
}

func init() {
	shortcutCmd.Flags().StringVarP(&shortcutName, "name", "n", "", "Display name for the desktop file (default: exe file name)")
}

// shortcutTarget determines the prefix and display name for a shortcut.
// An explicit prefix argument overrides envPrefix; the display name
// defaults to the exe's base file name.
func shortcutTarget(args []string, envPrefix, nameFlag string) (pfx, name string, err error) {
	pfx = envPrefix
	if len(args) > 1 {
		pfx = args[1]
	}
	if pfx == "" {
		return "", "", errors.New("Don't know what wineprefix to use")
	}

	name = nameFlag
	if name == "" {
		name = filepath.Base(args[0])
	}
	return pfx, name, nil
}

func runShortcut(cmd *cobra.Command, args []string) error {
	if _, _, err := loadEnv(); err != nil {
		return err
	}

	pfx, name, err := shortcutTarget(args, os.Getenv(wine.EnvVar), shortcutName)
	if err != nil {
		return err
	}

	path, err := desktop.Create(pfx, args[0], name)
	if err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n", path)
	return nil
}
