package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// KillSwitchState is the runtime kill switch flag, read from a JSON file that
// is mounted as a config map in deployed environments. The file is re-read on
// every request so flipping the flag needs no restart.
type KillSwitchState struct {
	Enabled bool `json:"enabled"`
}

// LoadKillSwitchState reads and decodes the kill switch state file.
func LoadKillSwitchState(path string) (*KillSwitchState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read kill switch state file %s: %w", path, err)
	}

	var state KillSwitchState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to decode kill switch state file %s: %w", path, err)
	}

	return &state, nil
}
