// Package prefix manages named wineprefix directories under a root directory.
package prefix

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// NamePattern is the rule a prefix name must satisfy: non-empty, with no
// newline, space, tab, slash, or quote characters.
const NamePattern = `^[^\n \t/'"]+$`

var nameRE = regexp.MustCompile(NamePattern)

// ValidName reports whether name satisfies the prefix naming rule.
func ValidName(name string) bool {
	return nameRE.MatchString(name)
}

// Registry maps prefix names to their directories.
type Registry map[string]string

// Load scans the immediate children of prefixDir and keeps directories
// whose base name satisfies the naming rule. Symlinks to directories
// count as prefixes. A missing prefixDir is the valid empty state of a
// fresh install, not an error.
func Load(prefixDir string) Registry {
	reg := Registry{}
	entries, err := os.ReadDir(prefixDir)
	if err != nil {
		return reg
	}
	for _, entry := range entries {
		if !ValidName(entry.Name()) {
			continue
		}
		path := filepath.Join(prefixDir, entry.Name())
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			continue
		}
		reg[entry.Name()] = path
	}
	return reg
}

// Names returns the registry keys, sorted.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve returns the directory of the named prefix.
func (r Registry) Resolve(name string) (string, error) {
	if path, ok := r[name]; ok {
		return path, nil
	}
	return "", fmt.Errorf("Prefix '%s' doesn't exist. Existing prefixen: %s",
		name, strings.Join(r.Names(), ", "))
}
