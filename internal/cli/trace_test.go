package cli

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrace_PrintsRecordedSteps(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "trace.db")
	runID := recordRunViaCLI(t, dbPath, "1\n4\n10\n20\n10\n30\n")

	stdout, _, err := executeCommand(t, nil, "trace", "--db", dbPath, runID)
	require.NoError(t, err)

	assert.Contains(t, stdout, "run "+runID)
	assert.Contains(t, stdout, "racks [1], 4 item(s)")
	assert.Contains(t, stdout, "NEW")
	assert.Contains(t, stdout, "OUTSIDE")
}

func TestTrace_NoRunIDListsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "trace.db")
	runID := recordRunViaCLI(t, dbPath, "1\n1\n5\n")

	stdout, _, err := executeCommand(t, nil, "trace", "--db", dbPath)
	require.NoError(t, err)
	assert.Equal(t, runID+"\n", stdout)
}

func TestTrace_UnknownRunExitsTwo(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "trace.db")
	recordRunViaCLI(t, dbPath, "1\n1\n5\n")

	_, _, err := executeCommand(t, nil, "trace", "--db", dbPath, "no-such-run")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestTrace_JSONOutput(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "trace.db")
	runID := recordRunViaCLI(t, dbPath, "1 1\n4\n1\n2\n3\n1\n")

	stdout, _, err := executeCommand(t, nil, "--format", "json", "trace", "--db", dbPath, runID)
	require.NoError(t, err)

	var resp struct {
		Status string      `json:"status"`
		Data   TraceReport `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, runID, resp.Data.RunID)
	assert.Equal(t, []int{1, 1}, resp.Data.Capacities)
	require.Len(t, resp.Data.Steps, 4)
	assert.Equal(t, "NEW", resp.Data.Steps[0].Provenance)
	assert.Equal(t, "OUTSIDE", resp.Data.Steps[3].Provenance)
}

func TestTrace_JSONListRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "trace.db")
	runID := recordRunViaCLI(t, dbPath, "1\n1\n5\n")

	stdout, _, err := executeCommand(t, nil, "--format", "json", "trace", "--db", dbPath)
	require.NoError(t, err)

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			Runs []string `json:"runs"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, []string{runID}, resp.Data.Runs)
}
