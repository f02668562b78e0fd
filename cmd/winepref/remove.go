package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"winepref/internal/prefix"
	"winepref/internal/wine"
)

var removeForce bool

var removeCmd = &cobra.Command{
	Use:     "remove <prefix>",
	Aliases: []string{"rm"},
	Short:   "Delete a prefix directory and everything in it",
	Long: `Delete a prefix directory and everything in it.

Examples:
  winepref remove old-prefix
  winepref rm old-prefix --force`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func init() {
	removeCmd.Flags().BoolVarP(&removeForce, "force", "f", false, "Skip confirmation prompt")
}

func runRemove(cmd *cobra.Command, args []string) error {
	cfg, prefixen, err := loadEnv()
	if err != nil {
		return err
	}

	name := args[0]
	prefixPath, err := prefixen.Resolve(name)
	if err != nil {
		return err
	}

	if !removeForce {
		fmt.Printf("Delete prefix '%s' at %s? [y/N]: ", name, prefixPath)
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			fmt.Println("Aborted")
			return nil
		}
	}

	mgr := prefix.NewManager(cfg.PrefixDir, wine.NewRunner())
	if err := mgr.Remove(name, prefixen); err != nil {
		return err
	}

	fmt.Printf("Removed prefix '%s'\n", name)
	return nil
}
