//go:build !windows

package launch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestStart_Detached(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app")
	if err := os.WriteFile(path, []byte("#!/bin/sh\nsleep 1\n"), 0755); err != nil {
		t.Fatal(err)
	}

	child, err := Start(path)
	if err != nil {
		t.Fatal(err)
	}
	if child.PID <= 0 {
		t.Errorf("PID = %d, want > 0", child.PID)
	}
	if child.Path != path {
		t.Errorf("Path = %q, want %q", child.Path, path)
	}

	info, err := Describe(context.Background(), child.PID)
	if err != nil {
		t.Fatal(err)
	}
	if info.PID != int32(child.PID) {
		t.Errorf("Describe PID = %d, want %d", info.PID, child.PID)
	}
}

func TestStart_NotExecutable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app")
	if err := os.WriteFile(path, []byte("data"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Start(path); err == nil {
		t.Fatal("expected error for non-executable file")
	}
}

func TestCommand_InheritsStdio(t *testing.T) {
	cmd := command("/bin/true")

	if cmd.Stdin != os.Stdin {
		t.Error("Stdin is not the launcher's stdin")
	}
	if cmd.Stdout != os.Stdout {
		t.Error("Stdout is not the launcher's stdout")
	}
	if cmd.Stderr != os.Stderr {
		t.Error("Stderr is not the launcher's stderr")
	}
	if cmd.SysProcAttr == nil {
		t.Error("SysProcAttr not set; child would share the launcher's session")
	}
}
