// Package wine invokes the external wine binaries against a prefix directory.
package wine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// EnvVar is the environment variable wine reads for its data directory.
const EnvVar = "WINEPREFIX"

// Runner executes wine commands with WINEPREFIX pointed at a prefix.
// Binary names are configurable so tests can substitute stubs.
type Runner struct {
	WineBin    string
	WinecfgBin string
}

// NewRunner returns a Runner using the standard binary names.
func NewRunner() *Runner {
	return &Runner{WineBin: "wine", WinecfgBin: "winecfg"}
}

// PrefixEnv returns the current environment with WINEPREFIX set to prefixPath.
func PrefixEnv(prefixPath string) []string {
	return append(os.Environ(), EnvVar+"="+prefixPath)
}

// Configure runs winecfg against the prefix with inherited stdio and waits
// for it to finish. Cancelling the context kills the child.
func (r *Runner) Configure(ctx context.Context, prefixPath string) error {
	cmd := exec.CommandContext(ctx, r.WinecfgBin)
	cmd.Env = PrefixEnv(prefixPath)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed: %w", r.WinecfgBin, err)
	}
	return nil
}

// Run executes exe in wine against the prefix and waits for it. A non-zero
// exit from wine is not an error; only a failed spawn is reported.
func (r *Runner) Run(prefixPath, exe string) error {
	cmd := exec.Command(r.WineBin, exe)
	cmd.Env = PrefixEnv(prefixPath)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to run %s: %w", r.WineBin, err)
	}
	return nil
}
