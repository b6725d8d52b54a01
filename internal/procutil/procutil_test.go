package procutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExecutableDir(t *testing.T) {
	dir, err := ExecutableDir()
	if err != nil {
		t.Fatal(err)
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ExecutableDir() = %q, want absolute path", dir)
	}
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !info.IsDir() {
		t.Errorf("%q is not a directory", dir)
	}
}

func TestNextToExecutable(t *testing.T) {
	dir, err := ExecutableDir()
	if err != nil {
		t.Fatal(err)
	}

	abs := filepath.Join(t.TempDir(), "launcher.yaml")

	tests := []struct {
		name string
		want string
	}{
		{"", ""},
		{abs, abs},
		{"launcher.yaml", filepath.Join(dir, "launcher.yaml")},
		{filepath.Join("logs", "launcher.log"), filepath.Join(dir, "logs", "launcher.log")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextToExecutable(tt.name); got != tt.want {
				t.Errorf("NextToExecutable(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}
