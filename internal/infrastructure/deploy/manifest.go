package deploy

import (
	"fmt"
	"os"
	"regexp"
	"sort"
)

var manifestVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// RenderManifest substitutes ${VAR} placeholders in the template with values
// from vars. Any placeholder without a value aborts the rendering.
func RenderManifest(template []byte, vars map[string]string) ([]byte, error) {
	missing := map[string]struct{}{}

	rendered := manifestVarPattern.ReplaceAllFunc(template, func(match []byte) []byte {
		name := string(manifestVarPattern.FindSubmatch(match)[1])
		value, ok := vars[name]
		if !ok || value == "" {
			missing[name] = struct{}{}
			return match
		}
		return []byte(value)
	})

	if len(missing) > 0 {
		names := make([]string, 0, len(missing))
		for name := range missing {
			names = append(names, name)
		}
		sort.Strings(names)
		return nil, fmt.Errorf("unresolved manifest variables: %v", names)
	}

	return rendered, nil
}

// RenderManifestFile reads the template at path and renders it with vars
func RenderManifestFile(path string, vars map[string]string) ([]byte, error) {
	template, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read manifest %s: %w", path, err)
	}
	return RenderManifest(template, vars)
}
