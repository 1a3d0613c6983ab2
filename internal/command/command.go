package command

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Error reports a failed external command along with its exit code
type Error struct {
	Argv     []string
	ExitCode int
	Stderr   string
}

// Error implements the error interface for Error
func (e *Error) Error() string {
	msg := fmt.Sprintf(
		"command %q exited with code %d",
		strings.Join(e.Argv, " "),
		e.ExitCode,
	)

	if e.Stderr != "" {
		msg = msg + ": " + strings.TrimSpace(e.Stderr)
	}

	return msg
}

// ExecRunner implements Runner using os/exec
type ExecRunner struct {
	dir string
}

// NewExecRunner returns a Runner executing commands in dir
func NewExecRunner(dir string) *ExecRunner {
	return &ExecRunner{dir: dir}
}

// Run executes the command discarding stdout
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	_, err := r.Output(ctx, name, args...)

	return err
}

// Output executes the command and returns its stdout
func (r *ExecRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	cmd.Dir = r.dir

	stderr := new(bytes.Buffer)

	cmd.Stderr = stderr

	out, err := cmd.Output()

	if err != nil {
		exitCode := -1

		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}

		return nil, &Error{
			Argv:     append([]string{name}, args...),
			ExitCode: exitCode,
			Stderr:   stderr.String(),
		}
	}

	return out, nil
}
