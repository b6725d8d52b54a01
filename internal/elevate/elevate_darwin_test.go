//go:build darwin

package elevate

import "testing"

func TestAppleScript(t *testing.T) {
	got := appleScript("/Applications/Noki Launcher/launcher", []string{"it's"})
	want := `do shell script "'/Applications/Noki Launcher/launcher' 'it'\\''s' >/dev/null 2>&1 &" with administrator privileges`
	if got != want {
		t.Errorf("appleScript() =\n%s\nwant\n%s", got, want)
	}
}
