// Package config loads the winepref configuration file, creating it with
// documented defaults on first run.
package config

import (
	"bufio"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"winepref/internal/xdg"
)

// DefaultConfig is written on first run so the tool works out of the box.
const DefaultConfig = `[options]
# Directory for storing wineprefixes
prefix_dir = "~/.wineprefix"
# The shell to use for 'winepref browse'.
# If set to "default" then the login shell of the invoking user is used.
shell = "default"
`

// Config holds the resolved winepref configuration.
type Config struct {
	// PrefixDir is the absolute directory holding all prefixes.
	PrefixDir string
	// Shell is the shell started by 'winepref browse'.
	Shell string
}

type fileConfig struct {
	Options struct {
		PrefixDir string `toml:"prefix_dir"`
		Shell     string `toml:"shell"`
	} `toml:"options"`
}

// Path returns the config file location under the XDG config home.
func Path() string {
	return filepath.Join(xdg.ConfigHome(), "winepref", "config.toml")
}

// Load reads and validates the config file. It never returns a partially
// valid Config.
func Load() (*Config, error) {
	path := Path()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}
		if err := os.WriteFile(path, []byte(DefaultConfig), 0644); err != nil {
			return nil, fmt.Errorf("failed to write default config: %w", err)
		}
		fmt.Printf("Wrote default config to %s\n", path)
	}

	var raw fileConfig
	md, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, fmt.Errorf("error while reading config in %s: %w", path, err)
	}
	if !md.IsDefined("options") {
		return nil, fmt.Errorf("error while reading config in %s: missing [options] section", path)
	}
	for _, key := range []string{"prefix_dir", "shell"} {
		if !md.IsDefined("options", key) {
			return nil, fmt.Errorf("error while reading config in %s: missing key %q in [options]", path, key)
		}
	}

	prefixDir := expandTilde(raw.Options.PrefixDir)
	if !filepath.IsAbs(prefixDir) {
		return nil, fmt.Errorf("prefix_dir in config is not absolute")
	}

	shell := raw.Options.Shell
	if shell == "default" {
		shell = loginShell()
	}

	return &Config{
		PrefixDir: prefixDir,
		Shell:     shell,
	}, nil
}

// expandTilde expands a leading ~ to the user's home directory.
func expandTilde(path string) string {
	if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			return home
		}
	}
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// loginShell returns the invoking user's login shell from the system user
// database, falling back to $SHELL and finally /bin/sh.
func loginShell() string {
	if u, err := user.Current(); err == nil {
		if shell := passwdShell(u.Uid); shell != "" {
			return shell
		}
	}
	if shell := os.Getenv("SHELL"); shell != "" {
		return shell
	}
	return "/bin/sh"
}

// passwdShell looks up the shell field for uid in /etc/passwd.
func passwdShell(uid string) string {
	f, err := os.Open("/etc/passwd")
	if err != nil {
		return ""
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		// name:passwd:uid:gid:gecos:dir:shell
		fields := strings.Split(line, ":")
		if len(fields) == 7 && fields[2] == uid {
			return fields[6]
		}
	}
	return ""
}
