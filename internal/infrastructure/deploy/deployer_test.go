//go:build unit
// +build unit

package deploy

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/kparekh77/api-project-template/internal/pkg/config"
	"github.com/kparekh77/api-project-template/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func writeTestManifests(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	manifests := map[string]string{
		"configmap.yaml":  "kind: ConfigMap\nname: api-${BRANCH_NAME}\n",
		"deployment.yaml": "kind: Deployment\nimage: registry/api:${IMAGE_TAG}\n",
		"service.yaml":    "kind: Service\nname: api-${BRANCH_NAME}\n",
	}
	for name, content := range manifests {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}
	return dir
}

func testDeploySettings(manifestDir string) *config.DeploySettings {
	return &config.DeploySettings{
		ProjectID:             "test-project",
		ServiceAccountKeyFile: "/keys/deployer.json",
		ClusterName:           "test-cluster",
		ClusterZone:           "europe-west1-b",
		Namespace:             "feature-branches",
		BranchName:            "my-branch",
		ImageTag:              "feature-abc123",
		ManifestDir:           manifestDir,
	}
}

func newTestDeployer(t *testing.T, runner Runner, manifestDir string) *Deployer {
	t.Helper()

	deployer, err := NewDeployer(runner, testDeploySettings(manifestDir), testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return deployer
}

func TestNewDeployer_MissingVariable_Error(t *testing.T) {
	settings := testDeploySettings(t.TempDir())
	settings.BranchName = ""

	_, err := NewDeployer(new(MockRunner), settings, testutil.SetupTestLogger(t))
	require.Error(t, err)
	assert.Equal(t, ExitCodeMissingVariable, ExitCodeFromError(err))
}

func TestDeployer_Deploy_Success(t *testing.T) {
	mockRunner := new(MockRunner)
	deployer := newTestDeployer(t, mockRunner, writeTestManifests(t))

	mockRunner.On("LookPath", "gcloud").Return("/usr/bin/gcloud", nil)
	mockRunner.On("LookPath", "kubectl").Return("/usr/bin/kubectl", nil)

	mockRunner.On("Run", mock.Anything, "gcloud", []string{
		"auth", "activate-service-account",
		"--key-file", "/keys/deployer.json",
		"--project", "test-project",
	}).Return(nil).Once()

	mockRunner.On("Run", mock.Anything, "gcloud", []string{
		"container", "clusters", "get-credentials", "test-cluster",
		"--zone", "europe-west1-b",
		"--project", "test-project",
	}).Return(nil).Once()

	mockRunner.On("RunWithInput", mock.Anything, mock.Anything, "kubectl", []string{
		"delete", "--namespace", "feature-branches", "--ignore-not-found", "-f", "-",
	}).Return(nil).Times(3)

	mockRunner.On("RunWithInput", mock.Anything, mock.Anything, "kubectl", []string{
		"apply", "--namespace", "feature-branches", "-f", "-",
	}).Return(nil).Times(3)

	require.NoError(t, deployer.Deploy(context.Background()))
	mockRunner.AssertExpectations(t)
}

func TestDeployer_Deploy_RendersImageTagIntoManifest(t *testing.T) {
	mockRunner := new(MockRunner)
	deployer := newTestDeployer(t, mockRunner, writeTestManifests(t))

	mockRunner.On("LookPath", mock.Anything).Return("/usr/bin/tool", nil)
	mockRunner.On("Run", mock.Anything, "gcloud", mock.Anything).Return(nil)

	var applied []string
	mockRunner.On("RunWithInput", mock.Anything, mock.Anything, "kubectl", mock.Anything).
		Run(func(args mock.Arguments) {
			applied = append(applied, string(args.Get(1).([]byte)))
		}).Return(nil)

	require.NoError(t, deployer.Deploy(context.Background()))

	require.Len(t, applied, 6)
	assert.Contains(t, applied[2], "registry/api:feature-abc123")
	assert.NotContains(t, applied[2], "${IMAGE_TAG}")
}

func TestDeployer_Deploy_MissingTool_Error(t *testing.T) {
	mockRunner := new(MockRunner)
	deployer := newTestDeployer(t, mockRunner, writeTestManifests(t))

	mockRunner.On("LookPath", "gcloud").Return("", errors.New("not found"))

	err := deployer.Deploy(context.Background())
	require.Error(t, err)
	assert.Equal(t, ExitCodeMissingTool, ExitCodeFromError(err))
	mockRunner.AssertNotCalled(t, "Run")
}

func TestDeployer_Deploy_AuthFailure_Error(t *testing.T) {
	mockRunner := new(MockRunner)
	deployer := newTestDeployer(t, mockRunner, writeTestManifests(t))

	mockRunner.On("LookPath", mock.Anything).Return("/usr/bin/tool", nil)
	mockRunner.On("Run", mock.Anything, "gcloud", mock.MatchedBy(func(args []string) bool {
		return args[0] == "auth"
	})).Return(errors.New("invalid credentials")).Once()

	err := deployer.Deploy(context.Background())
	require.Error(t, err)
	assert.Equal(t, ExitCodeAuthFailure, ExitCodeFromError(err))
}

func TestDeployer_Deploy_ClusterCredentialFailure_Error(t *testing.T) {
	mockRunner := new(MockRunner)
	deployer := newTestDeployer(t, mockRunner, writeTestManifests(t))

	mockRunner.On("LookPath", mock.Anything).Return("/usr/bin/tool", nil)
	mockRunner.On("Run", mock.Anything, "gcloud", mock.MatchedBy(func(args []string) bool {
		return args[0] == "auth"
	})).Return(nil).Once()
	mockRunner.On("Run", mock.Anything, "gcloud", mock.MatchedBy(func(args []string) bool {
		return args[0] == "container"
	})).Return(errors.New("cluster not found")).Once()

	err := deployer.Deploy(context.Background())
	require.Error(t, err)
	assert.Equal(t, ExitCodeClusterCredentials, ExitCodeFromError(err))
}

func TestDeployer_Deploy_UnresolvedManifestVariable_Error(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configmap.yaml"), []byte("host: ${DATABASE_HOST}\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "deployment.yaml"), []byte("kind: Deployment\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "service.yaml"), []byte("kind: Service\n"), 0o600))

	mockRunner := new(MockRunner)
	deployer := newTestDeployer(t, mockRunner, dir)

	mockRunner.On("LookPath", mock.Anything).Return("/usr/bin/tool", nil)
	mockRunner.On("Run", mock.Anything, "gcloud", mock.Anything).Return(nil)

	err := deployer.Deploy(context.Background())
	require.Error(t, err)
	assert.Equal(t, ExitCodeMissingVariable, ExitCodeFromError(err))
	assert.Contains(t, err.Error(), "DATABASE_HOST")
	mockRunner.AssertNotCalled(t, "RunWithInput")
}

func TestDeployer_Cleanup_Success(t *testing.T) {
	mockRunner := new(MockRunner)
	deployer := newTestDeployer(t, mockRunner, writeTestManifests(t))

	mockRunner.On("LookPath", mock.Anything).Return("/usr/bin/tool", nil)
	mockRunner.On("RunWithInput", mock.Anything, mock.Anything, "kubectl", []string{
		"delete", "--namespace", "feature-branches", "--ignore-not-found", "-f", "-",
	}).Return(nil).Times(3)

	require.NoError(t, deployer.Cleanup(context.Background()))
	mockRunner.AssertExpectations(t)
	mockRunner.AssertNotCalled(t, "Run")
}

func TestDeployer_PortForward_Success(t *testing.T) {
	mockRunner := new(MockRunner)
	deployer := newTestDeployer(t, mockRunner, writeTestManifests(t))

	mockRunner.On("LookPath", mock.Anything).Return("/usr/bin/tool", nil)
	mockRunner.On("Run", mock.Anything, "kubectl", []string{
		"port-forward", "--namespace", "feature-branches", "service/resource-api-my-branch", "8080:80",
	}).Return(nil).Once()

	require.NoError(t, deployer.PortForward(context.Background(), 8080, 80))
	mockRunner.AssertExpectations(t)
}
