package files

import (
	"path/filepath"
	"testing"
)

func TestResolveLogPathHonorsConfiguredPath(t *testing.T) {
	custom := filepath.Join(t.TempDir(), "custom.txt")

	got, err := ResolveLogPath(custom)
	if err != nil {
		t.Fatalf("ResolveLogPath() error = %v", err)
	}
	if got != custom {
		t.Fatalf("ResolveLogPath() = %q, want %q", got, custom)
	}
}

func TestResolveLogPathExpandsTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ResolveLogPath("~/notes/study.txt")
	if err != nil {
		t.Fatalf("ResolveLogPath() error = %v", err)
	}

	want := filepath.Join(home, "notes", "study.txt")
	if got != want {
		t.Fatalf("ResolveLogPath() = %q, want %q", got, want)
	}
}

func TestResolveLogPathDefaultsToHomeDotBelajar(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ResolveLogPath("  ")
	if err != nil {
		t.Fatalf("ResolveLogPath() error = %v", err)
	}

	want := filepath.Join(home, DefaultDirName, DefaultLogName)
	if got != want {
		t.Fatalf("ResolveLogPath() = %q, want %q", got, want)
	}
}
