package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	lsJSON  bool
	lsPaths bool
)

var lsCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List all prefix directories",
	Long: `List all prefix directories found under prefix_dir.

Examples:
  winepref ls
  winepref ls --paths
  winepref ls --json`,
	Args: cobra.NoArgs,
	RunE: runLs,
}

func init() {
	lsCmd.Flags().BoolVar(&lsJSON, "json", false, "Output as JSON")
	lsCmd.Flags().BoolVar(&lsPaths, "paths", false, "Output full paths (for scripting)")
}

func runLs(cmd *cobra.Command, args []string) error {
	_, prefixen, err := loadEnv()
	if err != nil {
		return err
	}

	if lsJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(prefixen)
	}

	for _, name := range prefixen.Names() {
		if lsPaths {
			fmt.Println(prefixen[name])
		} else {
			fmt.Println(name)
		}
	}
	return nil
}
