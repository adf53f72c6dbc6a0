//go:build unit
// +build unit

package deploy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderManifest_Success(t *testing.T) {
	template := []byte("image: registry/api:${IMAGE_TAG}\nnamespace: ${NAMESPACE}\n")
	vars := map[string]string{
		"IMAGE_TAG": "feature-abc123",
		"NAMESPACE": "feature-branches",
	}

	rendered, err := RenderManifest(template, vars)
	require.NoError(t, err)
	assert.Equal(t, "image: registry/api:feature-abc123\nnamespace: feature-branches\n", string(rendered))
}

func TestRenderManifest_RepeatedPlaceholder(t *testing.T) {
	template := []byte("name: api-${BRANCH_NAME}\nlabel: ${BRANCH_NAME}\n")
	vars := map[string]string{"BRANCH_NAME": "my-branch"}

	rendered, err := RenderManifest(template, vars)
	require.NoError(t, err)
	assert.Equal(t, "name: api-my-branch\nlabel: my-branch\n", string(rendered))
}

func TestRenderManifest_UnresolvedVariable_Error(t *testing.T) {
	template := []byte("image: registry/api:${IMAGE_TAG}\nnamespace: ${NAMESPACE}\n")
	vars := map[string]string{"IMAGE_TAG": "feature-abc123"}

	_, err := RenderManifest(template, vars)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NAMESPACE")
}

func TestRenderManifest_EmptyValue_Error(t *testing.T) {
	template := []byte("namespace: ${NAMESPACE}\n")
	vars := map[string]string{"NAMESPACE": ""}

	_, err := RenderManifest(template, vars)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NAMESPACE")
}

func TestRenderManifest_NoPlaceholders(t *testing.T) {
	template := []byte("kind: Service\n")

	rendered, err := RenderManifest(template, map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, template, rendered)
}

func TestRenderManifestFile_Success(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "service.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: api-${BRANCH_NAME}\n"), 0o600))

	rendered, err := RenderManifestFile(path, map[string]string{"BRANCH_NAME": "my-branch"})
	require.NoError(t, err)
	assert.Equal(t, "name: api-my-branch\n", string(rendered))
}

func TestRenderManifestFile_MissingFile_Error(t *testing.T) {
	_, err := RenderManifestFile(filepath.Join(t.TempDir(), "absent.yaml"), map[string]string{})
	require.Error(t, err)
}
