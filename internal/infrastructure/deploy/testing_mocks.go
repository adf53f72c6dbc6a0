//go:build unit
// +build unit

package deploy

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockRunner is a mock implementation of Runner
type MockRunner struct {
	mock.Mock
}

func (m *MockRunner) LookPath(name string) (string, error) {
	args := m.Called(name)
	return args.String(0), args.Error(1)
}

func (m *MockRunner) Run(ctx context.Context, name string, cmdArgs ...string) error {
	args := m.Called(ctx, name, cmdArgs)
	return args.Error(0)
}

func (m *MockRunner) RunWithInput(ctx context.Context, input []byte, name string, cmdArgs ...string) error {
	args := m.Called(ctx, input, name, cmdArgs)
	return args.Error(0)
}
