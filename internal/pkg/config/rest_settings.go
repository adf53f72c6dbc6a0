package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// AppSettings holds the service identity reported in logs and the OpenAPI document
type AppSettings struct {
	Name        string `mapstructure:"name" validate:"required"`
	Version     string `mapstructure:"version" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required"`
}

// Validate checks that all fields in AppSettings are valid
func (s *AppSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for AppSettings: %w", err)
	}

	return nil
}

// CorsSettings holds the Cross-Origin Resource Sharing configuration
type CorsSettings struct {
	AllowOrigins     []string `mapstructure:"allow_origins" validate:"required,min=1"`
	AllowMethods     []string `mapstructure:"allow_methods" validate:"required,min=1"`
	AllowHeaders     []string `mapstructure:"allow_headers" validate:"required,min=1"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
}

// Validate checks that all fields in CorsSettings are valid
func (s *CorsSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for CorsSettings: %w", err)
	}

	return nil
}

// KillSwitchSettings holds the location of the kill switch state file
type KillSwitchSettings struct {
	ConfigPath string `mapstructure:"config_path" validate:"required"`
}

// Validate checks that all fields in KillSwitchSettings are valid
func (s *KillSwitchSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for KillSwitchSettings: %w", err)
	}

	return nil
}

// SecretManagerSettings holds configuration for the cloud secret manager connector
type SecretManagerSettings struct {
	CloudProvider string `mapstructure:"cloud_provider" validate:"required,oneof=gcp"`
	ProjectID     string `mapstructure:"project_id" validate:"required"`
	CacheTTLSecs  int    `mapstructure:"cache_ttl_secs" validate:"required,min=1"`

	// CredentialsFile is optional; application default credentials are used when empty.
	CredentialsFile string `mapstructure:"credentials_file" validate:"omitempty,file"`
}

// Validate checks that all fields in SecretManagerSettings are valid
func (s *SecretManagerSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for SecretManagerSettings: %w", err)
	}

	return nil
}

// RestConfig aggregates all settings required by the REST API process
type RestConfig struct {
	Port       string             `mapstructure:"port" validate:"required"`
	App        AppSettings        `mapstructure:"app"`
	Logger     LoggerSettings     `mapstructure:"logger"`
	Database   DatabaseSettings   `mapstructure:"database"`
	Cors       CorsSettings       `mapstructure:"cors"`
	KillSwitch KillSwitchSettings `mapstructure:"kill_switch"`

	// SecretManager is optional; when nil no secret resolution is performed.
	SecretManager *SecretManagerSettings `mapstructure:"secret_manager"`
}

// Validate checks that all nested settings in RestConfig are valid
func (c *RestConfig) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}

	if err := c.App.Validate(); err != nil {
		return err
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Cors.Validate(); err != nil {
		return err
	}
	if err := c.KillSwitch.Validate(); err != nil {
		return err
	}
	if c.SecretManager != nil {
		if err := c.SecretManager.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// InitializeRestConfig reads the REST API configuration from the given YAML file,
// allowing environment variables (prefixed with APP, e.g. APP_DATABASE_DSN) to
// override file values.
func InitializeRestConfig(configPath string) (*RestConfig, error) {
	v := viper.New()
	v.SetConfigFile(configPath)

	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only surfaces overrides for keys present in the config
	// file, so keys that deployments supply purely through the environment
	// need explicit bindings.
	envOnlyKeys := []string{
		"database.password_secret",
		"secret_manager.cloud_provider",
		"secret_manager.project_id",
		"secret_manager.cache_ttl_secs",
		"secret_manager.credentials_file",
	}
	for _, key := range envOnlyKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind environment key %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var config RestConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}
