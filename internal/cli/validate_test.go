package cli

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopfloor/internal/config"
)

func TestValidate_ValidFile(t *testing.T) {
	path := writeYAML(t, "capacities: [3, 2]\nitems: [1, 2, 3]\n")

	stdout, _, err := executeCommand(t, nil, "validate", path)
	require.NoError(t, err)
	assert.Equal(t, "valid: 2 rack(s), 3 item(s)\n", stdout)
}

func TestValidate_InvalidFileExitsOne(t *testing.T) {
	path := writeYAML(t, "capacities: [0]\nitems: [1]\n")

	stdout, _, err := executeCommand(t, nil, "validate", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, stdout, "invalid: "+config.ErrCodeSchema)
}

func TestValidate_MissingFileExitsOne(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yaml")

	_, _, err := executeCommand(t, nil, "validate", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestValidate_JSONOutput(t *testing.T) {
	path := writeYAML(t, "capacities: [1]\nitems: [5]\n")

	stdout, _, err := executeCommand(t, nil, "--format", "json", "validate", path)
	require.NoError(t, err)

	var resp struct {
		Status string           `json:"status"`
		Data   ValidationResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.True(t, resp.Data.Valid)
	assert.Equal(t, 1, resp.Data.Racks)
	assert.Equal(t, 1, resp.Data.Items)
}

func TestValidate_JSONOutput_Invalid(t *testing.T) {
	path := writeYAML(t, "capacities: [1]\nitems: []\n")

	stdout, _, err := executeCommand(t, nil, "--format", "json", "validate", path)
	require.Error(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, config.ErrCodeSchema, resp.Error.Code)
}
