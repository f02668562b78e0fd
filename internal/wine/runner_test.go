package wine

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func stubScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stub.sh")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0755); err != nil {
		t.Fatalf("failed to write stub script: %v", err)
	}
	return path
}

func TestPrefixEnv(t *testing.T) {
	env := PrefixEnv("/prefixes/work")

	found := false
	for _, kv := range env {
		if kv == "WINEPREFIX=/prefixes/work" {
			found = true
		}
	}
	if !found {
		t.Error("expected WINEPREFIX=/prefixes/work in environment")
	}
	if len(env) <= len(os.Environ())-1 {
		t.Error("expected current environment to be preserved")
	}
}

func TestConfigure(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r := &Runner{WineBin: "wine", WinecfgBin: stubScript(t, "exit 0")}
		if err := r.Configure(context.Background(), t.TempDir()); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("non-zero exit is an error", func(t *testing.T) {
		r := &Runner{WineBin: "wine", WinecfgBin: stubScript(t, "exit 3")}
		if err := r.Configure(context.Background(), t.TempDir()); err == nil {
			t.Error("expected error for failing winecfg")
		}
	})

	t.Run("cancelled context kills the child", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		r := &Runner{WineBin: "wine", WinecfgBin: stubScript(t, "sleep 10")}
		if err := r.Configure(ctx, t.TempDir()); err == nil {
			t.Error("expected error for cancelled configure")
		}
	})
}

func TestRun(t *testing.T) {
	t.Run("non-zero exit is forwarded, not failed", func(t *testing.T) {
		r := &Runner{WineBin: stubScript(t, "exit 7"), WinecfgBin: "winecfg"}
		if err := r.Run(t.TempDir(), "game.exe"); err != nil {
			t.Errorf("expected nil for non-zero child exit, got %v", err)
		}
	})

	t.Run("spawn failure is an error", func(t *testing.T) {
		r := &Runner{WineBin: filepath.Join(t.TempDir(), "missing-wine"), WinecfgBin: "winecfg"}
		if err := r.Run(t.TempDir(), "game.exe"); err == nil {
			t.Error("expected error when the binary cannot be spawned")
		}
	})
}
