//go:build unit
// +build unit

package deploy

import (
	"context"
	"errors"
	"testing"

	"github.com/kparekh77/api-project-template/internal/pkg/config"
	"github.com/kparekh77/api-project-template/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testPipelineSettings() *config.PipelineSettings {
	return &config.PipelineSettings{
		Target:       "ci",
		PipelineName: "resource-api",
		ConfigPath:   "ci/pipeline.yaml",
		BranchName:   "my-branch",
	}
}

func newTestPipelineController(t *testing.T, runner Runner) *PipelineController {
	t.Helper()

	controller, err := NewPipelineController(runner, testPipelineSettings(), testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return controller
}

func TestNewPipelineController_MissingVariable_Error(t *testing.T) {
	settings := testPipelineSettings()
	settings.Target = ""

	_, err := NewPipelineController(new(MockRunner), settings, testutil.SetupTestLogger(t))
	require.Error(t, err)
	assert.Equal(t, ExitCodeMissingVariable, ExitCodeFromError(err))
}

func TestPipelineController_Set_Success(t *testing.T) {
	mockRunner := new(MockRunner)
	controller := newTestPipelineController(t, mockRunner)

	mockRunner.On("LookPath", "fly").Return("/usr/bin/fly", nil)
	mockRunner.On("Run", mock.Anything, "fly", []string{
		"--target", "ci", "set-pipeline",
		"--pipeline", "resource-api-my-branch",
		"--config", "ci/pipeline.yaml",
		"--var", "branch_name=my-branch",
		"--non-interactive",
	}).Return(nil).Once()

	require.NoError(t, controller.Set(context.Background()))
	mockRunner.AssertExpectations(t)
}

func TestPipelineController_Unpause_Success(t *testing.T) {
	mockRunner := new(MockRunner)
	controller := newTestPipelineController(t, mockRunner)

	mockRunner.On("LookPath", "fly").Return("/usr/bin/fly", nil)
	mockRunner.On("Run", mock.Anything, "fly", []string{
		"--target", "ci", "unpause-pipeline",
		"--pipeline", "resource-api-my-branch",
	}).Return(nil).Once()

	require.NoError(t, controller.Unpause(context.Background()))
	mockRunner.AssertExpectations(t)
}

func TestPipelineController_Trigger_Success(t *testing.T) {
	mockRunner := new(MockRunner)
	controller := newTestPipelineController(t, mockRunner)

	mockRunner.On("LookPath", "fly").Return("/usr/bin/fly", nil)
	mockRunner.On("Run", mock.Anything, "fly", []string{
		"--target", "ci", "trigger-job",
		"--job", "resource-api-my-branch/deploy",
	}).Return(nil).Once()

	require.NoError(t, controller.Trigger(context.Background(), "deploy"))
	mockRunner.AssertExpectations(t)
}

func TestPipelineController_Destroy_Success(t *testing.T) {
	mockRunner := new(MockRunner)
	controller := newTestPipelineController(t, mockRunner)

	mockRunner.On("LookPath", "fly").Return("/usr/bin/fly", nil)
	mockRunner.On("Run", mock.Anything, "fly", []string{
		"--target", "ci", "destroy-pipeline",
		"--pipeline", "resource-api-my-branch",
		"--non-interactive",
	}).Return(nil).Once()

	require.NoError(t, controller.Destroy(context.Background()))
	mockRunner.AssertExpectations(t)
}

func TestPipelineController_MissingFly_Error(t *testing.T) {
	mockRunner := new(MockRunner)
	controller := newTestPipelineController(t, mockRunner)

	mockRunner.On("LookPath", "fly").Return("", errors.New("not found"))

	err := controller.Set(context.Background())
	require.Error(t, err)
	assert.Equal(t, ExitCodeMissingTool, ExitCodeFromError(err))
	mockRunner.AssertNotCalled(t, "Run")
}
