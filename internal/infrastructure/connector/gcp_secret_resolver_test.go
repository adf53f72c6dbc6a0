//go:build unit
// +build unit

package connector

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kparekh77/api-project-template/internal/pkg/testutil"

	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"github.com/googleapis/gax-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSecretVersionAccessor is a mock implementation of secretVersionAccessor
type MockSecretVersionAccessor struct {
	mock.Mock
}

func (m *MockSecretVersionAccessor) AccessSecretVersion(ctx context.Context, req *secretmanagerpb.AccessSecretVersionRequest, opts ...gax.CallOption) (*secretmanagerpb.AccessSecretVersionResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*secretmanagerpb.AccessSecretVersionResponse), args.Error(1)
}

func (m *MockSecretVersionAccessor) Close() error {
	args := m.Called()
	return args.Error(0)
}

func secretResponse(value string) *secretmanagerpb.AccessSecretVersionResponse {
	return &secretmanagerpb.AccessSecretVersionResponse{
		Payload: &secretmanagerpb.SecretPayload{Data: []byte(value)},
	}
}

func newTestResolver(t *testing.T, client secretVersionAccessor, cacheTTL time.Duration, now func() time.Time) *gcpSecretResolver {
	t.Helper()

	return &gcpSecretResolver{
		client:    client,
		projectID: "test-project",
		cacheTTL:  cacheTTL,
		logger:    testutil.SetupTestLogger(t),
		now:       now,
		cache:     map[string]cachedSecret{},
	}
}

func TestGcpSecretResolver_Resolve_Success(t *testing.T) {
	mockClient := new(MockSecretVersionAccessor)
	resolver := newTestResolver(t, mockClient, time.Minute, time.Now)

	mockClient.On("AccessSecretVersion", mock.Anything, &secretmanagerpb.AccessSecretVersionRequest{
		Name: "projects/test-project/secrets/db-password/versions/latest",
	}).Return(secretResponse("s3cr3t"), nil).Once()

	value, err := resolver.Resolve(context.Background(), "db-password")
	require.NoError(t, err)
	assert.Equal(t, "s3cr3t", value)
	mockClient.AssertExpectations(t)
}

func TestGcpSecretResolver_Resolve_FullyQualifiedName(t *testing.T) {
	mockClient := new(MockSecretVersionAccessor)
	resolver := newTestResolver(t, mockClient, time.Minute, time.Now)

	fullName := "projects/other-project/secrets/db-password/versions/3"
	mockClient.On("AccessSecretVersion", mock.Anything, &secretmanagerpb.AccessSecretVersionRequest{
		Name: fullName,
	}).Return(secretResponse("pinned"), nil).Once()

	value, err := resolver.Resolve(context.Background(), fullName)
	require.NoError(t, err)
	assert.Equal(t, "pinned", value)
	mockClient.AssertExpectations(t)
}

func TestGcpSecretResolver_Resolve_CachesWithinTTL(t *testing.T) {
	mockClient := new(MockSecretVersionAccessor)
	resolver := newTestResolver(t, mockClient, time.Minute, time.Now)

	mockClient.On("AccessSecretVersion", mock.Anything, mock.Anything).
		Return(secretResponse("s3cr3t"), nil).Once()

	for i := 0; i < 3; i++ {
		value, err := resolver.Resolve(context.Background(), "db-password")
		require.NoError(t, err)
		assert.Equal(t, "s3cr3t", value)
	}

	mockClient.AssertNumberOfCalls(t, "AccessSecretVersion", 1)
}

func TestGcpSecretResolver_Resolve_RefetchesAfterTTL(t *testing.T) {
	mockClient := new(MockSecretVersionAccessor)

	currentTime := time.Now()
	resolver := newTestResolver(t, mockClient, time.Minute, func() time.Time { return currentTime })

	mockClient.On("AccessSecretVersion", mock.Anything, mock.Anything).
		Return(secretResponse("old-value"), nil).Once()
	mockClient.On("AccessSecretVersion", mock.Anything, mock.Anything).
		Return(secretResponse("new-value"), nil).Once()

	value, err := resolver.Resolve(context.Background(), "db-password")
	require.NoError(t, err)
	assert.Equal(t, "old-value", value)

	currentTime = currentTime.Add(2 * time.Minute)

	value, err = resolver.Resolve(context.Background(), "db-password")
	require.NoError(t, err)
	assert.Equal(t, "new-value", value)
	mockClient.AssertNumberOfCalls(t, "AccessSecretVersion", 2)
}

func TestGcpSecretResolver_Resolve_AccessFailure_Error(t *testing.T) {
	mockClient := new(MockSecretVersionAccessor)
	resolver := newTestResolver(t, mockClient, time.Minute, time.Now)

	mockClient.On("AccessSecretVersion", mock.Anything, mock.Anything).
		Return(nil, errors.New("permission denied")).Once()

	_, err := resolver.Resolve(context.Background(), "db-password")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db-password")
}

func TestGcpSecretResolver_Close(t *testing.T) {
	mockClient := new(MockSecretVersionAccessor)
	resolver := newTestResolver(t, mockClient, time.Minute, time.Now)

	mockClient.On("Close").Return(nil).Once()

	require.NoError(t, resolver.Close())
	mockClient.AssertExpectations(t)
}
