// Package core drives the launch sequence: locate the target, check it exists,
// start it, and report progress to the UI.
package core

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/user/noki-launcher/internal/config"
	"github.com/user/noki-launcher/internal/launch"
	"github.com/user/noki-launcher/internal/logger"
)

// Sequence runs the launch stages once. The function fields default to the
// real implementations in package launch.
type Sequence struct {
	Pacing config.Pacing

	Locate func() (string, error)
	Exists func(path string) (bool, error)
	Start  func(path string) (*launch.Child, error)

	// Describe is called after a successful start, for the log only.
	Describe func(ctx context.Context, pid int) (launch.Info, error)
}

// NewSequence creates a sequence for the configured target.
func NewSequence(cfg *config.Config) *Sequence {
	target := cfg.Target
	return &Sequence{
		Pacing: cfg.Pacing,
		Locate: func() (string, error) {
			return launch.Resolve(target)
		},
		Exists:   launch.Exists,
		Start:    launch.Start,
		Describe: launch.Describe,
	}
}

// Run executes the stages and sends every update to out, closing it when done.
// Each stage either completes or ends the run with a failed update; nothing is
// retried. A cancelled ctx ends the run silently at the next pause.
func (s *Sequence) Run(ctx context.Context, out chan<- Update) {
	defer close(out)
	defer func() {
		if r := recover(); r != nil {
			logger.L().Error("launch sequence panicked", zap.Any("panic", r))
			s.fail(out, unexpectedReport(fmt.Errorf("%v", r)))
		}
	}()

	if err := s.run(ctx, out); err != nil {
		s.fail(out, unexpectedReport(err))
	}
}

func (s *Sequence) run(ctx context.Context, out chan<- Update) error {
	if !s.step(ctx, out, StateInitializing, 10, msgInitializing, s.Pacing.Initialize) {
		return nil
	}
	if !s.step(ctx, out, StateChecking, 30, msgChecking, s.Pacing.Check) {
		return nil
	}

	path, err := s.Locate()
	if err != nil {
		return fmt.Errorf("failed to locate target: %w", err)
	}
	logger.Info("Target path: %s", path)

	exists, err := s.Exists(path)
	if err != nil {
		return err
	}
	if !exists {
		s.fail(out, missingReport(path))
		return nil
	}

	if !s.step(ctx, out, StateLaunching, 60, msgLaunching, s.Pacing.Launch) {
		return nil
	}

	child, err := s.Start(path)
	if err != nil {
		s.fail(out, launchReport(path, err))
		return nil
	}
	logger.L().Info("Target started", zap.String("path", child.Path), zap.Int("pid", child.PID))

	// The UI closes when out is closed, so the final pause keeps 100% visible.
	out <- Update{State: StateLaunched, Percent: 100, Message: msgLaunched, Child: child}
	s.describe(ctx, child)
	pause(ctx, s.Pacing.Success.Duration)
	return nil
}

// step emits a progress update and waits for the stage's pause. It returns
// false if ctx was cancelled meanwhile.
func (s *Sequence) step(ctx context.Context, out chan<- Update, state State, percent int, msg string, d config.Duration) bool {
	out <- Update{State: state, Percent: percent, Message: msg}
	return pause(ctx, d.Duration)
}

func (s *Sequence) fail(out chan<- Update, r *Report) {
	logger.Error("Launch failed: %v", r)
	out <- Update{State: StateFailed, Message: r.Text(), Report: r}
}

func (s *Sequence) describe(ctx context.Context, child *launch.Child) {
	if s.Describe == nil {
		return
	}
	// The child is already running; nothing here may turn the run into a failure.
	defer logger.Recover("describe-child")

	info, err := s.Describe(ctx, child.PID)
	if err != nil {
		logger.Warning("Failed to inspect started process %d: %v", child.PID, err)
		return
	}
	logger.L().Debug("Started process",
		zap.Int32("pid", info.PID),
		zap.String("name", info.Name),
		zap.Time("created", info.CreatedAt),
		zap.Bool("running", info.Running))
}

func pause(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
