package desktop

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEscapeIdentity(t *testing.T) {
	// Strings free of the five reserved characters pass through both
	// tables unchanged.
	inputs := []string{
		"",
		"plain",
		"My App",
		"/usr/bin/thing.exe",
		"unicode: прiвет 漢字",
		"safe-!@#^&*()_+=[]{};:,.<>?|~",
	}

	for _, s := range inputs {
		if got := EscapeName(s); got != s {
			t.Errorf("EscapeName(%q) = %q, want identity", s, got)
		}
		if got := EscapeExec(s); got != s {
			t.Errorf("EscapeExec(%q) = %q, want identity", s, got)
		}
	}
}

func TestEscapeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`say "hi"`, `say \"hi\"`},
		{"back`tick", "back\\`tick"},
		{"$HOME", `\$HOME`},
		{`C:\Games`, `C:\\Games`},
		{"100% legit", "100% legit"}, // base table leaves % alone
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := EscapeName(tt.in); got != tt.want {
				t.Errorf("EscapeName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEscapeExec(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"100%", "100%%"},
		{"%f placeholder", "%%f placeholder"},
		{`C:\Games\My App.exe`, `C:\\Games\\My App.exe`},
		{`"$x"`, `\"\$x\"`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := EscapeExec(tt.in); got != tt.want {
				t.Errorf("EscapeExec(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCreate(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)

	path, err := Create("mybox", `C:\Games\My App.exe`, "My App")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := filepath.Join(dataHome, "applications", "My App.desktop")
	if path != want {
		t.Errorf("expected path %q, got %q", want, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read desktop file: %v", err)
	}
	content := string(data)

	for _, line := range []string{
		"[Desktop Entry]",
		"Type=Application",
		"Name=My App",
		`Exec=env "WINEPREFIX=mybox" wine "C:\\Games\\My App.exe"`,
		"Icon=wine",
	} {
		if !strings.Contains(content, line+"\n") {
			t.Errorf("expected line %q in desktop file, got:\n%s", line, content)
		}
	}
}

func TestCreateOverwrites(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	if _, err := Create("one", "a.exe", "Game"); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	path, err := Create("two", "b.exe", "Game")
	if err != nil {
		t.Fatalf("second create failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read desktop file: %v", err)
	}
	if !strings.Contains(string(data), `WINEPREFIX=two`) {
		t.Error("expected second write to overwrite the first")
	}
}

func TestCreateEscapesPercentInPrefix(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	path, err := Create("100%", "game.exe", "Game")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read desktop file: %v", err)
	}
	if !strings.Contains(string(data), `"WINEPREFIX=100%%"`) {
		t.Errorf("expected doubled %% in Exec prefix, got:\n%s", string(data))
	}
}
