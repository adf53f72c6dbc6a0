//go:build unit
// +build unit

package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setAllDeployVars(t *testing.T) {
	t.Helper()
	t.Setenv(DeployVarProjectID, "my-project")
	t.Setenv(DeployVarServiceAccountKey, "/secrets/deployer.json")
	t.Setenv(DeployVarClusterName, "dev-cluster")
	t.Setenv(DeployVarClusterZone, "europe-west2-a")
	t.Setenv(DeployVarNamespace, "feature-branches")
	t.Setenv(DeployVarBranchName, "feature/new-endpoint")
	t.Setenv(DeployVarImageTag, "feature-new-endpoint-42")
	t.Setenv(DeployVarManifestDir, "deployments/k8s")
}

func TestMissingDeployVars(t *testing.T) {
	setAllDeployVars(t)
	assert.Empty(t, MissingDeployVars())

	t.Setenv(DeployVarClusterName, "")
	os.Unsetenv(DeployVarClusterName)
	t.Setenv(DeployVarImageTag, "   ")

	missing := MissingDeployVars()
	assert.Contains(t, missing, DeployVarClusterName)
	assert.Contains(t, missing, DeployVarImageTag)
	assert.Len(t, missing, 2)
}

func TestReadDeploySettingsFromEnv(t *testing.T) {
	setAllDeployVars(t)

	settings, err := ReadDeploySettingsFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "my-project", settings.ProjectID)
	assert.Equal(t, "dev-cluster", settings.ClusterName)
	assert.Equal(t, "feature/new-endpoint", settings.BranchName)
}

func TestReadDeploySettingsFromEnvMissingVariable(t *testing.T) {
	setAllDeployVars(t)
	t.Setenv(DeployVarNamespace, "")
	os.Unsetenv(DeployVarNamespace)

	_, err := ReadDeploySettingsFromEnv()
	require.Error(t, err)
}

func TestPipelineSettingsValidation(t *testing.T) {
	valid := &PipelineSettings{
		Target:       "dev",
		PipelineName: "resource-api-feature",
		ConfigPath:   "ci/pipeline.yaml",
		BranchName:   "feature/new-endpoint",
	}
	require.NoError(t, valid.Validate())

	invalid := &PipelineSettings{Target: "dev"}
	require.Error(t, invalid.Validate())
}
