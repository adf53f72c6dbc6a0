package deploy

import (
	"context"
	"fmt"

	"github.com/kparekh77/api-project-template/internal/pkg/config"
	"github.com/kparekh77/api-project-template/internal/pkg/logger"
)

// PipelineController drives the Concourse pipeline lifecycle for feature
// branch continuous delivery
type PipelineController struct {
	runner   Runner
	settings *config.PipelineSettings
	logger   logger.Logger
}

// NewPipelineController creates a new PipelineController
func NewPipelineController(runner Runner, settings *config.PipelineSettings, logger logger.Logger) (*PipelineController, error) {
	if err := settings.Validate(); err != nil {
		return nil, NewExitError(ExitCodeMissingVariable, err)
	}

	return &PipelineController{
		runner:   runner,
		settings: settings,
		logger:   logger,
	}, nil
}

// Set creates or updates the branch pipeline from its config file
func (c *PipelineController) Set(ctx context.Context) error {
	if err := c.checkPrerequisites(); err != nil {
		return err
	}

	return c.runner.Run(ctx, "fly", "--target", c.settings.Target, "set-pipeline",
		"--pipeline", c.pipelineName(),
		"--config", c.settings.ConfigPath,
		"--var", fmt.Sprintf("branch_name=%s", c.settings.BranchName),
		"--non-interactive")
}

// Unpause unpauses the branch pipeline
func (c *PipelineController) Unpause(ctx context.Context) error {
	if err := c.checkPrerequisites(); err != nil {
		return err
	}

	return c.runner.Run(ctx, "fly", "--target", c.settings.Target, "unpause-pipeline",
		"--pipeline", c.pipelineName())
}

// Trigger triggers the named job in the branch pipeline
func (c *PipelineController) Trigger(ctx context.Context, jobName string) error {
	if err := c.checkPrerequisites(); err != nil {
		return err
	}

	return c.runner.Run(ctx, "fly", "--target", c.settings.Target, "trigger-job",
		"--job", fmt.Sprintf("%s/%s", c.pipelineName(), jobName))
}

// Destroy removes the branch pipeline
func (c *PipelineController) Destroy(ctx context.Context) error {
	if err := c.checkPrerequisites(); err != nil {
		return err
	}

	return c.runner.Run(ctx, "fly", "--target", c.settings.Target, "destroy-pipeline",
		"--pipeline", c.pipelineName(),
		"--non-interactive")
}

func (c *PipelineController) checkPrerequisites() error {
	if _, err := c.runner.LookPath("fly"); err != nil {
		return NewExitError(ExitCodeMissingTool, fmt.Errorf("required tool fly not found on PATH"))
	}
	return nil
}

// pipelineName scopes the configured pipeline to the feature branch
func (c *PipelineController) pipelineName() string {
	return fmt.Sprintf("%s-%s", c.settings.PipelineName, c.settings.BranchName)
}
