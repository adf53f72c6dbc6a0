package commands

import (
	"fmt"
	"os"

	"github.com/kparekh77/api-project-template/internal/infrastructure/deploy"
	"github.com/kparekh77/api-project-template/internal/pkg/config"
	"github.com/kparekh77/api-project-template/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// PipelineCommandHandler encapsulates logic for pipeline lifecycle operations via CLI.
type PipelineCommandHandler struct {
	runner deploy.Runner
	logger logger.Logger
}

// NewPipelineCommandHandler initializes and returns a PipelineCommandHandler instance with
// a configured logger and command runner.
func NewPipelineCommandHandler() (*PipelineCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &PipelineCommandHandler{
		runner: deploy.NewExecRunner(loggerInstance),
		logger: loggerInstance,
	}, nil
}

// SetCmd creates or updates the feature branch pipeline
func (commandHandler *PipelineCommandHandler) SetCmd(cmd *cobra.Command, _ []string) error {
	controller, err := commandHandler.newController(cmd)
	if err != nil {
		return err
	}
	return controller.Set(cmd.Context())
}

// UnpauseCmd unpauses the feature branch pipeline
func (commandHandler *PipelineCommandHandler) UnpauseCmd(cmd *cobra.Command, _ []string) error {
	controller, err := commandHandler.newController(cmd)
	if err != nil {
		return err
	}
	return controller.Unpause(cmd.Context())
}

// TriggerCmd triggers a job in the feature branch pipeline
func (commandHandler *PipelineCommandHandler) TriggerCmd(cmd *cobra.Command, _ []string) error {
	jobName, err := cmd.Flags().GetString("job")
	if err != nil {
		return fmt.Errorf("invalid job flag: %w", err)
	}

	controller, err := commandHandler.newController(cmd)
	if err != nil {
		return err
	}
	return controller.Trigger(cmd.Context(), jobName)
}

// DestroyCmd removes the feature branch pipeline
func (commandHandler *PipelineCommandHandler) DestroyCmd(cmd *cobra.Command, _ []string) error {
	controller, err := commandHandler.newController(cmd)
	if err != nil {
		return err
	}
	return controller.Destroy(cmd.Context())
}

func (commandHandler *PipelineCommandHandler) newController(cmd *cobra.Command) (*deploy.PipelineController, error) {
	target, err := cmd.Flags().GetString("target")
	if err != nil {
		return nil, fmt.Errorf("invalid target flag: %w", err)
	}
	pipelineName, err := cmd.Flags().GetString("pipeline")
	if err != nil {
		return nil, fmt.Errorf("invalid pipeline flag: %w", err)
	}
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("invalid config flag: %w", err)
	}
	branchName, err := cmd.Flags().GetString("branch")
	if err != nil {
		return nil, fmt.Errorf("invalid branch flag: %w", err)
	}

	settings := &config.PipelineSettings{
		Target:       target,
		PipelineName: pipelineName,
		ConfigPath:   configPath,
		BranchName:   branchName,
	}

	return deploy.NewPipelineController(commandHandler.runner, settings, commandHandler.logger)
}

// InitPipelineCommands registers pipeline-related commands
func InitPipelineCommands(rootCmd *cobra.Command) error {
	handler, err := NewPipelineCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create pipeline command handler %w", err)
	}

	var pipelineCmd = &cobra.Command{
		Use:   "pipeline",
		Short: "Control the feature branch continuous delivery pipeline",
	}
	pipelineCmd.PersistentFlags().StringP("target", "", "ci", "Concourse target name")
	pipelineCmd.PersistentFlags().StringP("pipeline", "", "resource-api", "Base pipeline name")
	pipelineCmd.PersistentFlags().StringP("config", "", "ci/pipeline.yaml", "Path to the pipeline config file")
	pipelineCmd.PersistentFlags().StringP("branch", "", os.Getenv(config.DeployVarBranchName), "Feature branch name")

	var setCmd = &cobra.Command{
		Use:   "set",
		Short: "Create or update the branch pipeline",
		RunE:  handler.SetCmd,
	}
	pipelineCmd.AddCommand(setCmd)

	var unpauseCmd = &cobra.Command{
		Use:   "unpause",
		Short: "Unpause the branch pipeline",
		RunE:  handler.UnpauseCmd,
	}
	pipelineCmd.AddCommand(unpauseCmd)

	var triggerCmd = &cobra.Command{
		Use:   "trigger",
		Short: "Trigger a job in the branch pipeline",
		RunE:  handler.TriggerCmd,
	}
	triggerCmd.Flags().StringP("job", "", "deploy", "Job to trigger")
	pipelineCmd.AddCommand(triggerCmd)

	var destroyCmd = &cobra.Command{
		Use:   "destroy",
		Short: "Remove the branch pipeline",
		RunE:  handler.DestroyCmd,
	}
	pipelineCmd.AddCommand(destroyCmd)

	rootCmd.AddCommand(pipelineCmd)

	return nil
}
