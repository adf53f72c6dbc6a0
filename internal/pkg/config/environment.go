package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"
)

// Sentinel values recognised by the environment loader.
const (
	// ChangeMeKeyValue marks a dotenv entry as a placeholder that must be
	// replaced before the service can run in the target environment.
	ChangeMeKeyValue = "CHANGE_ME"

	// InheritFromEnvironmentKeyValue marks a dotenv entry whose value must be
	// supplied by the deployment environment. If it survives loading, the
	// deployment environment did not provide it.
	InheritFromEnvironmentKeyValue = "INHERIT_FROM_ENVIRONMENT"
)

// EnvironmentNameVar selects which .env.<name> overlay file is loaded.
const EnvironmentNameVar = "ENVIRONMENT"

// DefaultEnvironmentName is assumed when EnvironmentNameVar is unset.
const DefaultEnvironmentName = "local"

// Names of the environment variables the service reads at startup.
const (
	ConfigPathVar   = "CONFIG_PATH"
	PortVar         = "APP_PORT"
	DatabaseTypeVar = "APP_DATABASE_TYPE"
	DatabaseDSNVar  = "APP_DATABASE_DSN"
)

// CompulsoryVars lists the variables every deployment must provide, either
// in the process environment or through the dotenv files.
func CompulsoryVars() []string {
	return []string{
		EnvironmentNameVar,
		ConfigPathVar,
		PortVar,
		DatabaseTypeVar,
		DatabaseDSNVar,
	}
}

// LoadEnvironment loads environment variables from `<dir>/.env` and
// `<dir>/.env.<environment>` without overriding variables already present in
// the process environment, then verifies that every loaded variable carries a
// real value and that every compulsory variable is set. A nil compulsory list
// defaults to CompulsoryVars.
//
// Loading fails when:
//   - a variable is defined as ChangeMeKeyValue in the dotenv files and the
//     deployment environment supplied no replacement
//   - a variable still resolves to InheritFromEnvironmentKeyValue after all
//     sources are applied
//   - a compulsory variable is missing entirely
func LoadEnvironment(dir string, compulsory []string) error {
	if compulsory == nil {
		compulsory = CompulsoryVars()
	}
	if os.Getenv(EnvironmentNameVar) == "" {
		if err := os.Setenv(EnvironmentNameVar, DefaultEnvironmentName); err != nil {
			return fmt.Errorf("failed to default %s: %w", EnvironmentNameVar, err)
		}
	}

	shared := filepath.Join(dir, ".env")
	overlay := filepath.Join(dir, ".env."+strings.ToLower(os.Getenv(EnvironmentNameVar)))

	fileValues := map[string]string{}
	for _, path := range []string{shared, overlay} {
		if _, err := os.Stat(path); err != nil {
			continue
		}

		values, err := godotenv.Read(path)
		if err != nil {
			return fmt.Errorf("failed to read dotenv file %s: %w", path, err)
		}
		for key, value := range values {
			fileValues[key] = value
		}

		// godotenv.Load never overrides existing process variables, which
		// preserves deployment-environment precedence.
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("failed to load dotenv file %s: %w", path, err)
		}
	}

	var changeMe []string
	for name, value := range fileValues {
		if value == ChangeMeKeyValue && os.Getenv(name) == ChangeMeKeyValue {
			changeMe = append(changeMe, name)
		}
	}
	if len(changeMe) > 0 {
		sort.Strings(changeMe)
		return fmt.Errorf("the following variables were set as '%s' but no value was found for them in the deployment environment: %s",
			ChangeMeKeyValue, strings.Join(changeMe, ", "))
	}

	var inherited []string
	for name := range fileValues {
		if os.Getenv(name) == InheritFromEnvironmentKeyValue {
			inherited = append(inherited, name)
		}
	}
	if len(inherited) > 0 {
		sort.Strings(inherited)
		return fmt.Errorf("the following variables were set as '%s' but no value was found for them in the deployed environment: %s",
			InheritFromEnvironmentKeyValue, strings.Join(inherited, ", "))
	}

	var missing []string
	for _, name := range compulsory {
		if _, ok := os.LookupEnv(name); !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing compulsory environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}
