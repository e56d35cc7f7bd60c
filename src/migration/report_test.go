package migration

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRunReportWriteFiles(t *testing.T) {
	report := &RunReport{
		RunID:     "abc12345",
		Status:    RunSucceeded,
		StartedAt: time.Now().UTC().Add(-time.Minute),
		Steps: []StepReport{
			{ID: "backup", Name: "Initial backup", Status: StepCompleted, DurationMS: 12},
			{ID: "products", Name: "Products import", Status: StepFailed, Error: "boom", RolledBack: true},
		},
		TotalInserted: 7,
	}
	report.FinishedAt = time.Now().UTC()

	dir := t.TempDir()
	jsonPath, err := report.WriteFiles(dir)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "migration-abc12345.json"), jsonPath)

	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	var decoded RunReport
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, report.RunID, decoded.RunID)
	require.Len(t, decoded.Steps, 2)

	text, err := os.ReadFile(filepath.Join(dir, "migration-abc12345.txt"))
	require.NoError(t, err)
	summary := string(text)
	require.Contains(t, summary, "Migration run abc12345")
	require.Contains(t, summary, "error: boom")
	require.Contains(t, summary, "rollback executed")
	require.Contains(t, summary, "inserted=7")
}
