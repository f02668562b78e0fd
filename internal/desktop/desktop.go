// Package desktop generates .desktop launcher entries for wine executables.
package desktop

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"winepref/internal/wine"
	"winepref/internal/xdg"
)

// baseTable escapes the characters the desktop-entry format reserves inside
// quoted strings. The exe table is derived from it below.
var baseTable = map[rune]string{
	'\\': `\\`,
	'"':  `\"`,
	'`':  "\\`",
	'$':  `\$`,
}

// exeTable additionally doubles %, which the Exec field reserves for
// field codes.
var exeTable = func() map[rune]string {
	t := map[rune]string{'%': "%%"}
	for c, repl := range baseTable {
		t[c] = repl
	}
	return t
}()

func escapeWith(table map[rune]string, s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, c := range s {
		if repl, ok := table[c]; ok {
			b.WriteString(repl)
		} else {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// EscapeName escapes a string for the Name field.
func EscapeName(s string) string { return escapeWith(baseTable, s) }

// EscapeExec escapes a string interpolated into the Exec field, where the
// desktop-entry format also expands % field codes.
func EscapeExec(s string) string { return escapeWith(exeTable, s) }

// ApplicationsDir returns the per-user applications directory.
func ApplicationsDir() string {
	return filepath.Join(xdg.DataHome(), "applications")
}

// Create writes a launcher that runs exe in wine with WINEPREFIX set to
// prefix, named after the display name. An existing launcher with the same
// name is overwritten. Returns the path of the written file.
func Create(prefix, exe, name string) (string, error) {
	content := fmt.Sprintf(`[Desktop Entry]
Type=Application
Name=%s
Exec=env "%s=%s" wine "%s"
Icon=wine
`, EscapeName(name), wine.EnvVar, EscapeExec(prefix), EscapeExec(exe))

	dir := ApplicationsDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create applications directory: %w", err)
	}
	path := filepath.Join(dir, name+".desktop")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write desktop file: %w", err)
	}
	return path, nil
}
