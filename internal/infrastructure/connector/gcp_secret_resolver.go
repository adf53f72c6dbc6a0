package connector

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/kparekh77/api-project-template/internal/pkg/config"
	"github.com/kparekh77/api-project-template/internal/pkg/logger"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"github.com/googleapis/gax-go/v2"
	"google.golang.org/api/option"
)

// SecretResolver defines the interface for resolving secret names to their current values
type SecretResolver interface {
	// Resolve returns the value of the named secret.
	// It returns any error encountered while accessing the secret store.
	Resolve(ctx context.Context, secretName string) (string, error)

	// Close releases the underlying client connection.
	Close() error
}

// secretVersionAccessor abstracts the Secret Manager client for testability
type secretVersionAccessor interface {
	AccessSecretVersion(ctx context.Context, req *secretmanagerpb.AccessSecretVersionRequest, opts ...gax.CallOption) (*secretmanagerpb.AccessSecretVersionResponse, error)
	Close() error
}

type cachedSecret struct {
	value     string
	fetchedAt time.Time
}

// gcpSecretResolver resolves secrets from GCP Secret Manager with a per-secret TTL cache
type gcpSecretResolver struct {
	client    secretVersionAccessor
	projectID string
	cacheTTL  time.Duration
	logger    logger.Logger
	now       func() time.Time

	mu    sync.Mutex
	cache map[string]cachedSecret
}

// NewGcpSecretResolver creates a SecretResolver backed by GCP Secret Manager
func NewGcpSecretResolver(ctx context.Context, settings *config.SecretManagerSettings, logger logger.Logger) (SecretResolver, error) {
	if settings.CloudProvider != config.GcpCloudProvider {
		return nil, fmt.Errorf("unsupported cloud provider: %s", settings.CloudProvider)
	}

	var opts []option.ClientOption
	if settings.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(settings.CredentialsFile))
	}

	client, err := secretmanager.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to create secret manager client: %w", err)
	}

	return &gcpSecretResolver{
		client:    client,
		projectID: settings.ProjectID,
		cacheTTL:  time.Duration(settings.CacheTTLSecs) * time.Second,
		logger:    logger,
		now:       time.Now,
		cache:     map[string]cachedSecret{},
	}, nil
}

// Resolve returns the latest version of the named secret. Values are cached
// per secret name and refetched once the cache entry is older than the TTL.
func (resolver *gcpSecretResolver) Resolve(ctx context.Context, secretName string) (string, error) {
	resolver.mu.Lock()
	cached, ok := resolver.cache[secretName]
	resolver.mu.Unlock()

	if ok && resolver.now().Sub(cached.fetchedAt) < resolver.cacheTTL {
		return cached.value, nil
	}

	response, err := resolver.client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: resolver.qualifiedName(secretName),
	})
	if err != nil {
		return "", fmt.Errorf("unable to access secret %s: %w", secretName, err)
	}

	value := string(response.GetPayload().GetData())

	resolver.mu.Lock()
	resolver.cache[secretName] = cachedSecret{value: value, fetchedAt: resolver.now()}
	resolver.mu.Unlock()

	resolver.logger.Info(fmt.Sprintf("resolved secret %s", secretName))
	return value, nil
}

// Close releases the underlying client connection
func (resolver *gcpSecretResolver) Close() error {
	return resolver.client.Close()
}

// qualifiedName expands a bare secret name into a full resource name pointing
// at the latest version. Fully qualified names are passed through unchanged.
func (resolver *gcpSecretResolver) qualifiedName(secretName string) string {
	if strings.HasPrefix(secretName, "projects/") {
		return secretName
	}
	return fmt.Sprintf("projects/%s/secrets/%s/versions/latest", resolver.projectID, secretName)
}
