package xcodecommand

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/bitrise-io/go-utils/errorutil"
	"github.com/bitrise-io/go-utils/v2/command"
	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-xcode/v2/errorfinder"
	cmd "github.com/bitrise-steplib/steps-xcode-invoke/command"
)

// waitDelay bounds how long Run waits for the output pipes after a cancelled process was killed.
const waitDelay = 2 * time.Second

type commandRunner struct {
	logger         log.Logger
	commandFactory command.Factory
	envRepository  env.Repository
}

// NewRunner returns a Runner backed by the given command factory.
// The environment of envRepository is inherited, envs are applied on top of it.
func NewRunner(logger log.Logger, commandFactory command.Factory, envRepository env.Repository) Runner {
	return &commandRunner{
		logger:         logger,
		commandFactory: commandFactory,
		envRepository:  envRepository,
	}
}

func (c *commandRunner) Run(ctx context.Context, name string, args []string, envs map[string]string, mode Mode) (Output, error) {
	var (
		outBuffer bytes.Buffer
		errBuffer bytes.Buffer
	)

	stdout, stderr := io.Writer(&outBuffer), io.Writer(io.Discard)
	switch mode {
	case ModeSeparate:
		stderr = &errBuffer
	case ModeCombined:
		stderr = &outBuffer
	}

	var (
		exitCode  int
		err       error
		printable string
	)
	if ctx.Done() == nil {
		exitCode, printable, err = c.runWithFactory(name, args, envs, stdout, stderr)
	} else {
		exitCode, printable, err = c.runWithContext(ctx, name, args, envs, stdout, stderr)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Output{ExitCode: -1}, fmt.Errorf("%s: %w", printable, ctxErr)
		}
	}

	out := Output{
		Stdout:   outBuffer.Bytes(),
		ExitCode: exitCode,
	}
	if mode == ModeSeparate {
		out.Stderr = errBuffer.Bytes()
	}

	if err != nil {
		var exerr *exec.ExitError
		if errors.As(err, &exerr) || errorutil.IsExitStatusError(err) {
			c.logger.Debugf("%s exited with code %d", filepath.Base(name), exitCode)
			return out, nil
		}

		out.ExitCode = -1
		return out, fmt.Errorf("failed to run %s: %w", printable, err)
	}

	return out, nil
}

func (c *commandRunner) runWithFactory(name string, args []string, envs map[string]string, stdout, stderr io.Writer) (int, string, error) {
	opts := &command.Opts{
		Stdout: stdout,
		Stderr: stderr,
		Env:    cmd.EnvList(envs),
	}
	if filepath.Base(name) == "xcodebuild" {
		opts.ErrorFinder = errorfinder.FindXcodebuildErrors
	}

	command := c.commandFactory.Create(name, args, opts)
	printable := command.PrintableCommandArgs()
	c.logger.Debugf("$ %s", printable)

	exitCode, err := command.RunAndReturnExitCode()
	return exitCode, printable, err
}

// runWithContext kills the process once ctx is done, the command factory has no handle for that.
func (c *commandRunner) runWithContext(ctx context.Context, name string, args []string, envs map[string]string, stdout, stderr io.Writer) (int, string, error) {
	merged := cmd.EnvMap(c.envRepository.List())
	maps.Copy(merged, envs)

	execCmd := exec.CommandContext(ctx, name, args...)
	execCmd.Env = cmd.EnvList(merged)
	execCmd.Stdout = stdout
	execCmd.Stderr = stderr
	execCmd.Cancel = func() error {
		return execCmd.Process.Kill()
	}
	execCmd.WaitDelay = waitDelay

	printable := cmd.PrintableCommandArgs(append([]string{name}, args...))
	c.logger.Debugf("$ %s", printable)

	if err := execCmd.Run(); err != nil {
		var exerr *exec.ExitError
		if errors.As(err, &exerr) {
			return exerr.ExitCode(), printable, err
		}
		return -1, printable, err
	}
	return 0, printable, nil
}
