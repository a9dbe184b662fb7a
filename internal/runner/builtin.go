package runner

import (
	"errors"
	"strings"
)

func init() {
	Register("shell", "run the command through a shell (default: bash <command>)", newShell)
	Register("exec", "split the command on whitespace and execute it directly", newExec)
	Register("dry-run", "log the command without starting anything", newDryRun)
}

type shellRunner struct {
	opts Options
}

func newShell(opts Options) Runner {
	if opts.Shell == "" {
		opts.Shell = "bash"
	}
	return &shellRunner{opts: opts}
}

func (r *shellRunner) Name() string { return "shell" }

func (r *shellRunner) SpawnDetached(command string) error {
	args := append(append([]string{}, r.opts.ShellArgs...), command)
	return start(r.opts, r.opts.Shell, args)
}

type execRunner struct {
	opts Options
}

func newExec(opts Options) Runner {
	return &execRunner{opts: opts}
}

func (r *execRunner) Name() string { return "exec" }

func (r *execRunner) SpawnDetached(command string) error {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return errors.New("runner: empty command")
	}
	return start(r.opts, fields[0], fields[1:])
}

type dryRunner struct {
	opts Options
}

func newDryRun(opts Options) Runner {
	return &dryRunner{opts: opts}
}

func (r *dryRunner) Name() string { return "dry-run" }

func (r *dryRunner) SpawnDetached(command string) error {
	r.opts.logger().Info("Dry run, not starting", "command", command)
	return nil
}
