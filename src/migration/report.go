package migration

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// StepReport is the per-step slice of the final run report.
type StepReport struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Status     string `json:"status"`
	Critical   bool   `json:"critical"`
	DurationMS int64  `json:"durationMs"`
	Inserted   int    `json:"inserted"`
	Skipped    int    `json:"skipped"`
	Failed     int    `json:"failed"`
	Detail     string `json:"detail,omitempty"`
	Error      string `json:"error,omitempty"`
	RolledBack bool   `json:"rolledBack,omitempty"`
}

// RunReport is the end-of-run artifact, written both as JSON and as a
// human-readable summary.
type RunReport struct {
	RunID         string            `json:"runId"`
	DryRun        bool              `json:"dryRun"`
	Status        RunStatus         `json:"status"`
	StartedAt     time.Time         `json:"startedAt"`
	FinishedAt    time.Time         `json:"finishedAt"`
	Steps         []StepReport      `json:"steps"`
	Backups       []BackupHandle    `json:"backups"`
	Validation    *ValidationReport `json:"validation,omitempty"`
	TotalInserted int               `json:"totalInserted"`
	TotalSkipped  int               `json:"totalSkipped"`
	TotalFailed   int               `json:"totalFailed"`
}

// WriteFiles persists the report into dir as <runId>.json plus a plain-text
// summary. Returns the JSON path.
func (r *RunReport) WriteFiles(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating reports directory: %w", err)
	}

	jsonPath := filepath.Join(dir, fmt.Sprintf("migration-%s.json", r.RunID))
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(jsonPath, data, 0o644); err != nil {
		return "", fmt.Errorf("writing JSON report: %w", err)
	}

	textPath := filepath.Join(dir, fmt.Sprintf("migration-%s.txt", r.RunID))
	if err := os.WriteFile(textPath, []byte(r.Summary()), 0o644); err != nil {
		return "", fmt.Errorf("writing summary report: %w", err)
	}
	return jsonPath, nil
}

// Summary renders the human-readable end-of-run summary.
func (r *RunReport) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Migration run %s\n", r.RunID)
	fmt.Fprintf(&b, "Status: %s", r.Status)
	if r.DryRun {
		b.WriteString(" (dry run)")
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Started: %s\n", r.StartedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "Finished: %s (%.1fs)\n\n", r.FinishedAt.Format(time.RFC3339),
		r.FinishedAt.Sub(r.StartedAt).Seconds())

	b.WriteString("Steps:\n")
	for _, s := range r.Steps {
		fmt.Fprintf(&b, "  [%-9s] %-28s inserted=%-4d skipped=%-4d failed=%-4d (%dms)\n",
			s.Status, s.Name, s.Inserted, s.Skipped, s.Failed, s.DurationMS)
		if s.Error != "" {
			fmt.Fprintf(&b, "              error: %s\n", s.Error)
		}
		if s.RolledBack {
			b.WriteString("              rollback executed\n")
		}
	}

	fmt.Fprintf(&b, "\nTotals: inserted=%d skipped=%d failed=%d\n",
		r.TotalInserted, r.TotalSkipped, r.TotalFailed)

	if len(r.Backups) > 0 {
		b.WriteString("\nBackups:\n")
		for _, h := range r.Backups {
			fmt.Fprintf(&b, "  %s (%d bytes)\n", h.Path, h.SizeBytes)
		}
	}

	if r.Validation != nil {
		fmt.Fprintf(&b, "\nValidation: %d errors, %d warnings\n",
			r.Validation.ErrorCount(), r.Validation.WarningCount())
		for _, issue := range r.Validation.Issues {
			fmt.Fprintf(&b, "  [%s] %s: %s\n", issue.Severity, issue.Entity, issue.Message)
		}
	}
	return b.String()
}
