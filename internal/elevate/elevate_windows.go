//go:build windows

package elevate

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/sys/windows"
)

// IsAdmin returns true if the current process token is a member of the
// built-in Administrators group. Any failure counts as not elevated.
func IsAdmin() bool {
	var sid *windows.SID
	err := windows.AllocateAndInitializeSid(
		&windows.SECURITY_NT_AUTHORITY,
		2,
		windows.SECURITY_BUILTIN_DOMAIN_RID,
		windows.DOMAIN_ALIAS_RID_ADMINS,
		0, 0, 0, 0, 0, 0,
		&sid,
	)
	if err != nil {
		return false
	}
	defer windows.FreeSid(sid)

	member, err := windows.Token(0).IsMember(sid)
	if err != nil {
		return false
	}
	return member
}

// RunAsAdmin asks the shell to start the current executable again with the
// "runas" verb, which shows the UAC consent prompt.
func RunAsAdmin() error {
	exe, args, err := relaunchTarget()
	if err != nil {
		return err
	}

	escaped := make([]string, len(args))
	for i, a := range args {
		escaped[i] = windows.EscapeArg(a)
	}

	verb, err := windows.UTF16PtrFromString("runas")
	if err != nil {
		return err
	}
	file, err := windows.UTF16PtrFromString(exe)
	if err != nil {
		return err
	}
	params, err := windows.UTF16PtrFromString(strings.Join(escaped, " "))
	if err != nil {
		return err
	}
	cwd, err := windows.UTF16PtrFromString(filepath.Dir(exe))
	if err != nil {
		return err
	}

	if err := windows.ShellExecute(0, verb, file, params, cwd, windows.SW_NORMAL); err != nil {
		return fmt.Errorf("UAC elevation failed or was cancelled: %w", err)
	}
	return nil
}
