package core

import (
	"context"
	"errors"
	"os"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/user/noki-launcher/internal/config"
	"github.com/user/noki-launcher/internal/launch"
)

const testPath = "/opt/noki/dist/app.exe"

// fakeTarget records what the sequence asked of the filesystem and process layer.
type fakeTarget struct {
	locateErr error
	exists    bool
	existsErr error
	startErr  error
	panicOn   string

	started []string
}

func (f *fakeTarget) sequence() *Sequence {
	return &Sequence{
		Locate: func() (string, error) {
			if f.panicOn == "locate" {
				panic("locator exploded")
			}
			return testPath, f.locateErr
		},
		Exists: func(string) (bool, error) {
			return f.exists, f.existsErr
		},
		Start: func(path string) (*launch.Child, error) {
			f.started = append(f.started, path)
			if f.startErr != nil {
				return nil, &launch.Error{Path: path, Err: f.startErr}
			}
			return &launch.Child{PID: 4242, Path: path, StartedAt: time.Now()}, nil
		},
	}
}

func collect(t *testing.T, s *Sequence) []Update {
	t.Helper()
	out := make(chan Update)
	go s.Run(context.Background(), out)

	var updates []Update
	timeout := time.After(5 * time.Second)
	for {
		select {
		case u, ok := <-out:
			if !ok {
				return updates
			}
			updates = append(updates, u)
		case <-timeout:
			t.Fatal("sequence did not finish")
		}
	}
}

func percents(updates []Update) []int {
	var p []int
	for _, u := range updates {
		if u.State != StateFailed {
			p = append(p, u.Percent)
		}
	}
	return p
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestRun_Success(t *testing.T) {
	f := &fakeTarget{exists: true}
	updates := collect(t, f.sequence())

	if got, want := percents(updates), []int{10, 30, 60, 100}; !equalInts(got, want) {
		t.Fatalf("percents = %v, want %v", got, want)
	}

	wantStates := []State{StateInitializing, StateChecking, StateLaunching, StateLaunched}
	for i, u := range updates {
		if u.State != wantStates[i] {
			t.Errorf("update %d state = %s, want %s", i, u.State, wantStates[i])
		}
	}

	last := updates[len(updates)-1]
	if last.Child == nil || last.Child.PID != 4242 {
		t.Errorf("last update child = %+v, want pid 4242", last.Child)
	}
	if !last.Terminal() {
		t.Error("launched update is not terminal")
	}
	if len(f.started) != 1 || f.started[0] != testPath {
		t.Errorf("started = %v, want [%s]", f.started, testPath)
	}
}

func TestRun_TargetMissing(t *testing.T) {
	f := &fakeTarget{exists: false}
	updates := collect(t, f.sequence())

	if got, want := percents(updates), []int{10, 30}; !equalInts(got, want) {
		t.Fatalf("percents = %v, want %v", got, want)
	}
	if len(f.started) != 0 {
		t.Errorf("Start called with %v, want no launch attempt", f.started)
	}

	last := updates[len(updates)-1]
	if last.State != StateFailed || last.Report == nil {
		t.Fatalf("last update = %+v, want failure report", last)
	}
	if last.Report.Kind != KindTargetMissing {
		t.Errorf("Kind = %s, want %s", last.Report.Kind, KindTargetMissing)
	}
	if !strings.Contains(last.Report.Text(), testPath) {
		t.Errorf("report text %q does not contain %s", last.Report.Text(), testPath)
	}
	if last.Message != last.Report.Text() {
		t.Errorf("Message = %q, want report text", last.Message)
	}
}

func TestRun_LaunchFailed(t *testing.T) {
	f := &fakeTarget{exists: true, startErr: syscall.Errno(193)}
	updates := collect(t, f.sequence())

	if got, want := percents(updates), []int{10, 30, 60}; !equalInts(got, want) {
		t.Fatalf("percents = %v, want %v", got, want)
	}

	last := updates[len(updates)-1]
	if last.Report == nil || last.Report.Kind != KindLaunchFailed {
		t.Fatalf("last update = %+v, want launch-failed report", last)
	}
	if last.Report.Code != 193 {
		t.Errorf("Code = %d, want 193", last.Report.Code)
	}
	text := last.Report.Text()
	if !strings.Contains(text, "193") || !strings.Contains(text, testPath) {
		t.Errorf("report text %q lacks code or path", text)
	}
	if !errors.Is(last.Report, syscall.Errno(193)) {
		t.Error("report does not wrap the OS error")
	}
}

func TestRun_Unexpected(t *testing.T) {
	tests := []struct {
		name   string
		target *fakeTarget
		want   string
	}{
		{"stat error", &fakeTarget{existsErr: os.ErrPermission}, "permission denied"},
		{"locate error", &fakeTarget{locateErr: errors.New("no executable path")}, "no executable path"},
		{"panic", &fakeTarget{panicOn: "locate"}, "locator exploded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updates := collect(t, tt.target.sequence())

			last := updates[len(updates)-1]
			if last.Report == nil || last.Report.Kind != KindUnexpected {
				t.Fatalf("last update = %+v, want unexpected report", last)
			}
			if !strings.Contains(last.Report.Text(), tt.want) {
				t.Errorf("report text %q does not contain %q", last.Report.Text(), tt.want)
			}
			if len(tt.target.started) != 0 {
				t.Error("Start called after an unexpected failure")
			}
			for _, u := range updates[:len(updates)-1] {
				if u.Terminal() {
					t.Errorf("terminal update %+v before the end", u)
				}
			}
		})
	}
}

func TestRun_CancelledStopsSilently(t *testing.T) {
	f := &fakeTarget{exists: true}
	s := f.sequence()
	s.Pacing.Initialize = config.Duration{Duration: time.Hour}

	ctx, cancel := context.WithCancel(context.Background())
	out := make(chan Update)
	go s.Run(ctx, out)

	first := <-out
	if first.Percent != 10 {
		t.Fatalf("first update = %+v, want 10%%", first)
	}
	cancel()

	select {
	case u, ok := <-out:
		if ok {
			t.Errorf("got update %+v after cancel, want closed channel", u)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("sequence did not stop after cancel")
	}
	if len(f.started) != 0 {
		t.Error("Start called after cancel")
	}
}

func TestRun_DescribeFailureIgnored(t *testing.T) {
	f := &fakeTarget{exists: true}
	s := f.sequence()
	s.Describe = func(context.Context, int) (launch.Info, error) {
		return launch.Info{}, errors.New("access denied")
	}

	updates := collect(t, s)
	if last := updates[len(updates)-1]; last.State != StateLaunched {
		t.Errorf("last state = %s, want %s", last.State, StateLaunched)
	}
}

func TestRun_DescribePanicAfterLaunch(t *testing.T) {
	f := &fakeTarget{exists: true}
	s := f.sequence()
	s.Describe = func(context.Context, int) (launch.Info, error) {
		panic("process table unavailable")
	}

	updates := collect(t, s)
	if got, want := percents(updates), []int{10, 30, 60, 100}; !equalInts(got, want) {
		t.Fatalf("percents = %v, want %v", got, want)
	}
	for _, u := range updates {
		if u.State == StateFailed {
			t.Errorf("failure update %+v after a successful launch", u)
		}
	}
	if last := updates[len(updates)-1]; last.State != StateLaunched {
		t.Errorf("last state = %s, want %s", last.State, StateLaunched)
	}
}

func TestNewSequence_UsesConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Target.Name = "other.exe"

	s := NewSequence(cfg)
	if s.Pacing != cfg.Pacing {
		t.Errorf("Pacing = %+v, want %+v", s.Pacing, cfg.Pacing)
	}
	path, err := s.Locate()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(path, "other.exe") {
		t.Errorf("Locate() = %q, want configured name", path)
	}
}
