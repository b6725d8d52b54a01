// Noki Launcher - elevates itself, shows a progress window and starts the
// companion program from the dist directory.
package main

//go:generate go run ../../build/gen-winres -o rsrc_windows_amd64.syso

import (
	"fmt"
	"os"

	"github.com/user/noki-launcher/internal/config"
	"github.com/user/noki-launcher/internal/core"
	"github.com/user/noki-launcher/internal/elevate"
	"github.com/user/noki-launcher/internal/logger"
	"github.com/user/noki-launcher/internal/ui"
)

const (
	exitOK            = 0
	exitFatal         = 1
	exitLaunchFailure = 2 // only with exit.strict
)

const (
	msgNeedAdmin    = "需要管理员权限才能运行此程序。\n请右键点击程序，选择'以管理员身份运行'。"
	msgBadConfig    = "配置文件无效:\n%v"
	msgWindowFailed = "无法创建窗口:\n%v"
)

// launcher holds the OS-facing steps of a run so the startup flow can be
// exercised without elevating or opening a window.
type launcher struct {
	isAdmin    func() bool
	runAsAdmin func() error
	runUI      func(cfg *config.Config, seq *core.Sequence) (ui.Outcome, error)
	showError  func(message string)
}

func newLauncher() *launcher {
	return &launcher{
		isAdmin:    elevate.IsAdmin,
		runAsAdmin: elevate.RunAsAdmin,
		runUI:      ui.Run,
		showError:  ui.ShowError,
	}
}

func main() {
	os.Exit(newLauncher().run(config.GetConfigPath()))
}

func (l *launcher) run(configPath string) int {
	cfg, err := config.Load(configPath)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		l.showError(fmt.Sprintf(msgBadConfig, err))
		return exitFatal
	}

	if err := logger.Init(cfg.Logging); err != nil {
		// Keep going with console logging only.
		logger.Warning("Failed to open log file: %v", err)
	}
	defer logger.Close()

	// The target needs administrator rights, so the launcher does too.
	if !l.isAdmin() {
		logger.Info("Not running as administrator, requesting elevation...")
		if err := l.runAsAdmin(); err != nil {
			logger.Error("Failed to elevate privileges: %v", err)
			l.showError(msgNeedAdmin)
			return exitFatal
		}
		return exitOK // elevated instance takes over
	}

	logger.Info("Launcher starting (elevated)")

	outcome, err := l.runUI(cfg, core.NewSequence(cfg))
	if err != nil {
		l.showError(fmt.Sprintf(msgWindowFailed, err))
		return exitFatal
	}

	logger.Info("Launcher exiting: %s", outcome)
	return exitCode(outcome, cfg.Exit.Strict)
}

// exitCode maps the run outcome to the process exit status. Worker failures
// exit 0 like a success unless strict is set.
func exitCode(outcome ui.Outcome, strict bool) int {
	if strict && outcome == ui.OutcomeFailed {
		return exitLaunchFailure
	}
	return exitOK
}
