package command

import "context"

//go:generate mockgen -destination=../mock/command/mock_command.go -package=mock_command . Runner

// Runner is the single seam through which external commands are invoked.
// Implementations must return *Error for any non-zero exit.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}
