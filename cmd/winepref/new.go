package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"winepref/internal/prefix"
	"winepref/internal/wine"
)

var newCmd = &cobra.Command{
	Use:   "new <prefix>",
	Short: "Create a new wineprefix and run winecfg in it",
	Long: `Create a new wineprefix and run winecfg in it.

Creation is all-or-nothing: if winecfg fails or is interrupted, the newly
created directory is removed again.

Examples:
  winepref new work`,
	Args: cobra.ExactArgs(1),
	RunE: runNew,
}

func runNew(cmd *cobra.Command, args []string) error {
	cfg, prefixen, err := loadEnv()
	if err != nil {
		return err
	}

	// An interrupt while winecfg runs must still trigger the rollback.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mgr := prefix.NewManager(cfg.PrefixDir, wine.NewRunner())
	return mgr.Create(ctx, args[0], prefixen)
}
