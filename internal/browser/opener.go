package browser

import (
	"fmt"
	"os/exec"
	"runtime"

	"go.uber.org/zap"
)

// Opener hands URLs to the system browser.
type Opener struct {
	logger *zap.Logger
	launch func(url string) *exec.Cmd
}

// NewOpener creates an Opener for the current platform.
func NewOpener(logger *zap.Logger) *Opener {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Opener{logger: logger, launch: systemCommand}
}

// Open starts the platform URL handler and returns without waiting for it.
func (o *Opener) Open(url string) error {
	cmd := o.launch(url)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting %s: %w", cmd.Path, err)
	}

	o.logger.Info("opened url", zap.String("url", url), zap.Int("pid", cmd.Process.Pid))

	// Reap the handler so it does not linger as a zombie.
	go func() {
		if err := cmd.Wait(); err != nil {
			o.logger.Warn("url handler exited with error", zap.String("url", url), zap.Error(err))
		}
	}()
	return nil
}

func systemCommand(url string) *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url)
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return exec.Command("xdg-open", url)
	}
}
