package deploy

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/kparekh77/api-project-template/internal/pkg/logger"
)

// Runner defines the interface for locating and executing external commands
type Runner interface {
	// LookPath returns the full path of the named tool.
	// It returns any error encountered when the tool is not on PATH.
	LookPath(name string) (string, error)

	// Run executes the command and waits for it to finish.
	Run(ctx context.Context, name string, args ...string) error

	// RunWithInput executes the command feeding input on stdin.
	RunWithInput(ctx context.Context, input []byte, name string, args ...string) error
}

// execRunner runs commands on the host, inheriting stdout and stderr
type execRunner struct {
	logger logger.Logger
}

// NewExecRunner creates a Runner backed by os/exec
func NewExecRunner(logger logger.Logger) Runner {
	return &execRunner{
		logger: logger,
	}
}

// LookPath returns the full path of the named tool
func (runner *execRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Run executes the command and waits for it to finish
func (runner *execRunner) Run(ctx context.Context, name string, args ...string) error {
	return runner.RunWithInput(ctx, nil, name, args...)
}

// RunWithInput executes the command feeding input on stdin
func (runner *execRunner) RunWithInput(ctx context.Context, input []byte, name string, args ...string) error {
	runner.logger.Info(fmt.Sprintf("running %s %s", name, strings.Join(args, " ")))

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if input != nil {
		cmd.Stdin = bytes.NewReader(input)
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed: %w", name, err)
	}
	return nil
}
