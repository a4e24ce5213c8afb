package xcodecommand

import (
	"context"
)

// Mode selects which output streams of a command are captured.
type Mode int

// Output modes ...
const (
	// ModeStdout captures stdout and discards stderr.
	ModeStdout Mode = iota
	// ModeSeparate captures stdout and stderr into separate buffers.
	ModeSeparate
	// ModeCombined captures stdout and stderr into a single buffer.
	ModeCombined
)

// ParseMode maps the output_mode input values to a Mode.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "", "stdout":
		return ModeStdout, true
	case "separate":
		return ModeSeparate, true
	case "combined":
		return ModeCombined, true
	default:
		return ModeStdout, false
	}
}

// String ...
func (m Mode) String() string {
	switch m {
	case ModeSeparate:
		return "separate"
	case ModeCombined:
		return "combined"
	default:
		return "stdout"
	}
}

// Output ...
type Output struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Runner executes an external command.
// A non-zero exit status is reported through Output.ExitCode, not as an error.
type Runner interface {
	Run(ctx context.Context, name string, args []string, envs map[string]string, mode Mode) (Output, error)
}
