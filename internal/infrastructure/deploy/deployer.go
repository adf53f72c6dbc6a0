package deploy

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/kparekh77/api-project-template/internal/pkg/config"
	"github.com/kparekh77/api-project-template/internal/pkg/logger"
)

// Manifest templates applied in order on every feature branch deployment.
var manifestFiles = []string{
	"configmap.yaml",
	"deployment.yaml",
	"service.yaml",
}

// Tools the deployer shells out to.
var requiredTools = []string{
	"gcloud",
	"kubectl",
}

// Deployer performs feature branch deployments into a cluster namespace
type Deployer struct {
	runner   Runner
	settings *config.DeploySettings
	logger   logger.Logger
}

// NewDeployer creates a new Deployer
func NewDeployer(runner Runner, settings *config.DeploySettings, logger logger.Logger) (*Deployer, error) {
	if err := settings.Validate(); err != nil {
		return nil, NewExitError(ExitCodeMissingVariable, err)
	}

	return &Deployer{
		runner:   runner,
		settings: settings,
		logger:   logger,
	}, nil
}

// Deploy authenticates against the cloud provider, fetches cluster credentials
// and replaces the branch's configmap, deployment and service resources.
func (d *Deployer) Deploy(ctx context.Context) error {
	if err := d.checkPrerequisites(); err != nil {
		return err
	}

	if err := d.authenticate(ctx); err != nil {
		return err
	}

	if err := d.fetchClusterCredentials(ctx); err != nil {
		return err
	}

	for _, manifestFile := range manifestFiles {
		rendered, err := d.renderManifest(manifestFile)
		if err != nil {
			return err
		}

		if err := d.runner.RunWithInput(ctx, rendered, "kubectl", "delete", "--namespace", d.settings.Namespace, "--ignore-not-found", "-f", "-"); err != nil {
			return err
		}

		if err := d.runner.RunWithInput(ctx, rendered, "kubectl", "apply", "--namespace", d.settings.Namespace, "-f", "-"); err != nil {
			return err
		}
	}

	d.logger.Info(fmt.Sprintf("deployed branch %s to namespace %s", d.settings.BranchName, d.settings.Namespace))
	return nil
}

// Cleanup deletes the branch's configmap, deployment and service resources.
// Absent resources are not an error.
func (d *Deployer) Cleanup(ctx context.Context) error {
	if err := d.checkPrerequisites(); err != nil {
		return err
	}

	for _, manifestFile := range manifestFiles {
		rendered, err := d.renderManifest(manifestFile)
		if err != nil {
			return err
		}

		if err := d.runner.RunWithInput(ctx, rendered, "kubectl", "delete", "--namespace", d.settings.Namespace, "--ignore-not-found", "-f", "-"); err != nil {
			return err
		}
	}

	d.logger.Info(fmt.Sprintf("cleaned up branch %s in namespace %s", d.settings.BranchName, d.settings.Namespace))
	return nil
}

// PortForward forwards a local port to the branch's service in the cluster.
// It blocks until the context is cancelled or kubectl exits.
func (d *Deployer) PortForward(ctx context.Context, localPort, servicePort int) error {
	if err := d.checkPrerequisites(); err != nil {
		return err
	}

	serviceName := fmt.Sprintf("service/resource-api-%s", d.settings.BranchName)
	portMapping := fmt.Sprintf("%d:%d", localPort, servicePort)

	return d.runner.Run(ctx, "kubectl", "port-forward", "--namespace", d.settings.Namespace, serviceName, portMapping)
}

func (d *Deployer) checkPrerequisites() error {
	for _, tool := range requiredTools {
		if _, err := d.runner.LookPath(tool); err != nil {
			return NewExitError(ExitCodeMissingTool, fmt.Errorf("required tool %s not found on PATH", tool))
		}
	}
	return nil
}

func (d *Deployer) authenticate(ctx context.Context) error {
	err := d.runner.Run(ctx, "gcloud", "auth", "activate-service-account",
		"--key-file", d.settings.ServiceAccountKeyFile,
		"--project", d.settings.ProjectID)
	if err != nil {
		return NewExitError(ExitCodeAuthFailure, err)
	}
	return nil
}

func (d *Deployer) fetchClusterCredentials(ctx context.Context) error {
	err := d.runner.Run(ctx, "gcloud", "container", "clusters", "get-credentials", d.settings.ClusterName,
		"--zone", d.settings.ClusterZone,
		"--project", d.settings.ProjectID)
	if err != nil {
		return NewExitError(ExitCodeClusterCredentials, err)
	}
	return nil
}

func (d *Deployer) renderManifest(manifestFile string) ([]byte, error) {
	rendered, err := RenderManifestFile(filepath.Join(d.settings.ManifestDir, manifestFile), d.templateVars())
	if err != nil {
		return nil, NewExitError(ExitCodeMissingVariable, err)
	}
	return rendered, nil
}

func (d *Deployer) templateVars() map[string]string {
	return map[string]string{
		config.DeployVarProjectID:         d.settings.ProjectID,
		config.DeployVarServiceAccountKey: d.settings.ServiceAccountKeyFile,
		config.DeployVarClusterName:       d.settings.ClusterName,
		config.DeployVarClusterZone:       d.settings.ClusterZone,
		config.DeployVarNamespace:         d.settings.Namespace,
		config.DeployVarBranchName:        d.settings.BranchName,
		config.DeployVarImageTag:          d.settings.ImageTag,
		config.DeployVarManifestDir:       d.settings.ManifestDir,
	}
}
