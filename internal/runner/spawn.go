package runner

import (
	"fmt"
	"os/exec"
	"time"
)

// start launches name with args in a new session and reaps it in the
// background.
func start(opts Options, name string, args []string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = nil
	cmd.Stdout = opts.Output
	cmd.Stderr = opts.Output
	cmd.SysProcAttr = detachedAttr()

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("runner: start %s: %w", name, err)
	}

	logger := opts.logger()
	pid := cmd.Process.Pid
	started := time.Now()
	logger.Debug("Process started", "pid", pid, "argv", cmd.Args)

	go func() {
		err := cmd.Wait()
		logger.Debug("Process exited",
			"pid", pid,
			"duration", time.Since(started).Round(time.Millisecond),
			"error", err,
		)
	}()
	return nil
}
