// Package main is the entry point for the deployctl application.
// It initializes the root command and registers the deployment and pipeline
// sub-commands, then executes the command-line interface.
package main

import (
	"fmt"
	"os"

	commands "github.com/kparekh77/api-project-template/cmd/deployctl/internal/commands"
	"github.com/kparekh77/api-project-template/internal/infrastructure/deploy"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(deploy.ExitCodeFromError(err))
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "deployctl",
		Short: "Feature branch deployment CLI tool",
		Long: `deployctl deploys a feature branch of the API to a shared cluster namespace
and controls the continuous delivery pipeline for that branch.

Deployments require the following environment variables:
- GCP_PROJECT_ID
- GCP_SERVICE_ACCOUNT_KEY_FILE
- CLUSTER_NAME
- CLUSTER_ZONE
- NAMESPACE
- BRANCH_NAME
- IMAGE_TAG
- MANIFEST_DIR

Distinct exit codes signal precondition failures:
1 missing tool, 2 missing variable, 3 authentication failure,
4 cluster credential failure.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	return rootCmd.Execute()
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	// Register deployment commands
	if err := commands.InitDeployCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize deploy commands: %w", err)
	}

	// Register pipeline commands
	if err := commands.InitPipelineCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize pipeline commands: %w", err)
	}

	return nil
}
