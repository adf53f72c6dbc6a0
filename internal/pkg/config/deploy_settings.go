package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Environment variables the feature branch deployer depends on.
const (
	DeployVarProjectID         = "GCP_PROJECT_ID"
	DeployVarServiceAccountKey = "GCP_SERVICE_ACCOUNT_KEY_FILE"
	DeployVarClusterName       = "CLUSTER_NAME"
	DeployVarClusterZone       = "CLUSTER_ZONE"
	DeployVarNamespace         = "NAMESPACE"
	DeployVarBranchName        = "BRANCH_NAME"
	DeployVarImageTag          = "IMAGE_TAG"
	DeployVarManifestDir       = "MANIFEST_DIR"
)

// DeployRequiredVars lists every environment variable that must be set before
// a feature branch deployment may start.
func DeployRequiredVars() []string {
	return []string{
		DeployVarProjectID,
		DeployVarServiceAccountKey,
		DeployVarClusterName,
		DeployVarClusterZone,
		DeployVarNamespace,
		DeployVarBranchName,
		DeployVarImageTag,
		DeployVarManifestDir,
	}
}

// DeploySettings holds everything the feature branch deployer needs to target
// a cluster namespace.
type DeploySettings struct {
	ProjectID             string `validate:"required"`
	ServiceAccountKeyFile string `validate:"required"`
	ClusterName           string `validate:"required"`
	ClusterZone           string `validate:"required"`
	Namespace             string `validate:"required"`
	BranchName            string `validate:"required"`
	ImageTag              string `validate:"required"`
	ManifestDir           string `validate:"required"`
}

// Validate checks that all fields in DeploySettings are valid
func (s *DeploySettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DeploySettings: %w", err)
	}

	return nil
}

// MissingDeployVars returns the names of required deployment variables that are
// unset or empty in the process environment.
func MissingDeployVars() []string {
	var missing []string
	for _, name := range DeployRequiredVars() {
		if strings.TrimSpace(os.Getenv(name)) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

// ReadDeploySettingsFromEnv builds DeploySettings from the process environment.
func ReadDeploySettingsFromEnv() (*DeploySettings, error) {
	settings := &DeploySettings{
		ProjectID:             os.Getenv(DeployVarProjectID),
		ServiceAccountKeyFile: os.Getenv(DeployVarServiceAccountKey),
		ClusterName:           os.Getenv(DeployVarClusterName),
		ClusterZone:           os.Getenv(DeployVarClusterZone),
		Namespace:             os.Getenv(DeployVarNamespace),
		BranchName:            os.Getenv(DeployVarBranchName),
		ImageTag:              os.Getenv(DeployVarImageTag),
		ManifestDir:           os.Getenv(DeployVarManifestDir),
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return settings, nil
}

// PipelineSettings holds the Concourse pipeline coordinates for feature branch
// continuous delivery.
type PipelineSettings struct {
	Target       string `validate:"required"`
	PipelineName string `validate:"required"`
	ConfigPath   string `validate:"required"`
	BranchName   string `validate:"required"`
}

// Validate checks that all fields in PipelineSettings are valid
func (s *PipelineSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for PipelineSettings: %w", err)
	}

	return nil
}
