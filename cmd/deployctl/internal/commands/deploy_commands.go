package commands

import (
	"fmt"
	"strings"

	"github.com/kparekh77/api-project-template/internal/infrastructure/deploy"
	"github.com/kparekh77/api-project-template/internal/pkg/config"
	"github.com/kparekh77/api-project-template/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// DeployCommandHandler encapsulates logic for feature branch deployment operations via CLI.
type DeployCommandHandler struct {
	runner deploy.Runner
	logger logger.Logger
}

// NewDeployCommandHandler initializes and returns a DeployCommandHandler instance with
// a configured logger and command runner.
func NewDeployCommandHandler() (*DeployCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &DeployCommandHandler{
		runner: deploy.NewExecRunner(loggerInstance),
		logger: loggerInstance,
	}, nil
}

// DeployCmd deploys the current feature branch into the target cluster namespace
func (commandHandler *DeployCommandHandler) DeployCmd(cmd *cobra.Command, _ []string) error {
	deployer, err := commandHandler.newDeployer()
	if err != nil {
		return err
	}
	return deployer.Deploy(cmd.Context())
}

// CleanupCmd deletes the feature branch resources from the target cluster namespace
func (commandHandler *DeployCommandHandler) CleanupCmd(cmd *cobra.Command, _ []string) error {
	deployer, err := commandHandler.newDeployer()
	if err != nil {
		return err
	}
	return deployer.Cleanup(cmd.Context())
}

// PortForwardCmd forwards a local port to the deployed service
func (commandHandler *DeployCommandHandler) PortForwardCmd(cmd *cobra.Command, _ []string) error {
	localPort, err := cmd.Flags().GetInt("local-port")
	if err != nil {
		return fmt.Errorf("invalid local-port flag: %w", err)
	}
	servicePort, err := cmd.Flags().GetInt("service-port")
	if err != nil {
		return fmt.Errorf("invalid service-port flag: %w", err)
	}

	deployer, err := commandHandler.newDeployer()
	if err != nil {
		return err
	}
	return deployer.PortForward(cmd.Context(), localPort, servicePort)
}

func (commandHandler *DeployCommandHandler) newDeployer() (*deploy.Deployer, error) {
	if missing := config.MissingDeployVars(); len(missing) > 0 {
		return nil, deploy.NewExitError(deploy.ExitCodeMissingVariable,
			fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", ")))
	}

	settings, err := config.ReadDeploySettingsFromEnv()
	if err != nil {
		return nil, deploy.NewExitError(deploy.ExitCodeMissingVariable, err)
	}

	return deploy.NewDeployer(commandHandler.runner, settings, commandHandler.logger)
}

// InitDeployCommands registers deployment-related commands
func InitDeployCommands(rootCmd *cobra.Command) error {
	handler, err := NewDeployCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create deploy command handler %w", err)
	}

	var deployCmd = &cobra.Command{
		Use:   "deploy",
		Short: "Deploy the feature branch to the cluster",
		RunE:  handler.DeployCmd,
	}
	rootCmd.AddCommand(deployCmd)

	var cleanupCmd = &cobra.Command{
		Use:   "cleanup",
		Short: "Delete the feature branch resources from the cluster",
		RunE:  handler.CleanupCmd,
	}
	rootCmd.AddCommand(cleanupCmd)

	var portForwardCmd = &cobra.Command{
		Use:   "port-forward",
		Short: "Forward a local port to the deployed service",
		RunE:  handler.PortForwardCmd,
	}
	portForwardCmd.Flags().IntP("local-port", "", 8080, "Local port to listen on")
	portForwardCmd.Flags().IntP("service-port", "", 80, "Service port to forward to")
	rootCmd.AddCommand(portForwardCmd)

	return nil
}
