package migration

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ChemCoat/ChemCoat-Backend/src/logger"
)

// RollbackAction names what a step's failure undoes.
type RollbackAction string

const (
	// RollbackRestoreBackup restores the most recent backup taken this run.
	RollbackRestoreBackup RollbackAction = "restore-backup"
	// RollbackDeleteRows deletes the rows the failed step inserted.
	RollbackDeleteRows RollbackAction = "delete-rows"
	// RollbackNone leaves the store as-is.
	RollbackNone RollbackAction = "none"
)

// Step statuses as recorded in the run report.
const (
	StepPending   = "pending"
	StepRunning   = "running"
	StepCompleted = "completed"
	StepFailed    = "failed"
	StepSkipped   = "skipped"
)

// RunStatus is the overall state of a migration run.
type RunStatus string

const (
	RunNotStarted RunStatus = "not-started"
	RunInProgress RunStatus = "in-progress"
	RunSucceeded  RunStatus = "succeeded"
	RunFailed     RunStatus = "failed"
	RunRolledBack RunStatus = "rolled-back"
)

// Confirmer is the step-by-step pause point. Implementations block until the
// operator answers; AutoConfirm never pauses.
type Confirmer interface {
	Confirm(stepName string) bool
}

// AutoConfirm approves every step. Used for automated runs and tests.
type AutoConfirm struct{}

func (AutoConfirm) Confirm(string) bool { return true }

// StepResult carries a completed step's counts into the report.
type StepResult struct {
	Inserted int
	Skipped  int
	Failed   int
	Detail   string
}

func fromBatch(b *BatchResult) StepResult {
	return StepResult{Inserted: b.Inserted, Skipped: b.Skipped, Failed: b.Failed}
}

// Step is one named entry in the fixed pipeline. Critical steps halt the run
// on failure and trigger their rollback action; non-critical steps log and
// let the run continue.
type Step struct {
	ID        string
	Name      string
	Estimate  time.Duration
	Critical  bool
	Rollback  RollbackAction
	Entity    string // natural-key table for the delete-rows rollback
	Run       func(rc *RunContext) (StepResult, error)
	Synthetic StepResult // reported instead of running in dry-run mode
}

// RunContext threads accumulated run state through the steps. It replaces
// shared globals: every counter and handle a later step needs lives here.
type RunContext struct {
	DB           *gorm.DB
	Loader       *Loader
	Backups      *BackupManager
	LastBackup   *BackupHandle
	InsertedKeys map[string][]string
	Validation   *ValidationReport
}

// SourcePaths locates the external artifacts the extractors read.
type SourcePaths struct {
	ProductsXLSX  string
	ProductsSheet string
	ProjectsDir   string
	ClientsDir    string
	ApprovalsDir  string
	MediaRoot     string
}

// Options configures one orchestrator run.
type Options struct {
	DryRun         bool
	StepByStep     bool
	SkipValidation bool
	Confirmer      Confirmer
	Sources        SourcePaths
	StorePath      string
	BackupDir      string
	ReportsDir     string
	MediaURLPrefix string
}

// Orchestrator drives the fixed ordered step list with rollback-on-critical-
// failure semantics. Execution is strictly sequential; exactly one process
// touches the store during a run.
type Orchestrator struct {
	db   *gorm.DB
	log  *logger.Logger
	opts Options
}

func NewOrchestrator(db *gorm.DB, log *logger.Logger, opts Options) *Orchestrator {
	if opts.Confirmer == nil {
		opts.Confirmer = AutoConfirm{}
	}
	if opts.MediaURLPrefix == "" {
		opts.MediaURLPrefix = "/media"
	}
	return &Orchestrator{db: db, log: log.With("component", "orchestrator"), opts: opts}
}

// Steps returns the pipeline in execution order.
func (o *Orchestrator) Steps() []Step {
	mediaPrefix := o.opts.MediaURLPrefix
	return []Step{
		{
			ID: "backup", Name: "Initial backup", Estimate: 2 * time.Second,
			Critical: true, Rollback: RollbackNone,
			Synthetic: StepResult{Detail: "backup skipped (dry run)"},
			Run: func(rc *RunContext) (StepResult, error) {
				handle, err := rc.Backups.CreateBackup("initial")
				if err != nil {
					return StepResult{}, err
				}
				if handle != nil {
					rc.LastBackup = handle
					return StepResult{Detail: fmt.Sprintf("backup at %s", handle.Path)}, nil
				}
				return StepResult{Detail: "no store file yet, nothing to back up"}, nil
			},
		},
		{
			ID: "schema-init", Name: "Schema initialization", Estimate: 3 * time.Second,
			Critical: true, Rollback: RollbackRestoreBackup,
			Synthetic: StepResult{Detail: "9 tables would be migrated"},
			Run: func(rc *RunContext) (StepResult, error) {
				if err := rc.Loader.EnsureSchema(); err != nil {
					return StepResult{}, fmt.Errorf("schema init: %w", err)
				}
				return StepResult{Detail: "schema migrated"}, nil
			},
		},
		{
			ID: "categories", Name: "Categories seed", Estimate: time.Second,
			Critical: true, Rollback: RollbackDeleteRows, Entity: "categories",
			Synthetic: StepResult{Inserted: 9},
			Run: func(rc *RunContext) (StepResult, error) {
				batch := rc.Loader.LoadCategories(DefaultCategories())
				rc.InsertedKeys["categories"] = batch.InsertedKeys
				return fromBatch(batch), nil
			},
		},
		{
			ID: "products", Name: "Products import", Estimate: 20 * time.Second,
			Critical: true, Rollback: RollbackDeleteRows, Entity: "products",
			Synthetic: StepResult{Inserted: 96, Skipped: 4},
			Run: func(rc *RunContext) (StepResult, error) {
				extractor := NewExcelExtractor(o.opts.Sources.ProductsXLSX, o.opts.Sources.ProductsSheet, o.log)
				rows, err := extractor.Extract()
				if err != nil {
					return StepResult{}, err
				}
				batch := rc.Loader.LoadProducts(rows)
				rc.InsertedKeys["products"] = batch.InsertedKeys
				return fromBatch(batch), nil
			},
		},
		{
			ID: "projects", Name: "Projects import", Estimate: 10 * time.Second,
			Critical: false, Rollback: RollbackDeleteRows, Entity: "projects",
			Synthetic: StepResult{Inserted: 32},
			Run: func(rc *RunContext) (StepResult, error) {
				extractor := NewDirectoryExtractor(o.opts.Sources.ProjectsDir, mediaPrefix+"/projects", o.log)
				batch := rc.Loader.LoadProjects(extractor.ExtractProjects())
				rc.InsertedKeys["projects"] = batch.InsertedKeys
				return fromBatch(batch), nil
			},
		},
		{
			ID: "clients", Name: "Clients import", Estimate: 5 * time.Second,
			Critical: false, Rollback: RollbackDeleteRows, Entity: "clients",
			Synthetic: StepResult{Inserted: 24},
			Run: func(rc *RunContext) (StepResult, error) {
				extractor := NewDirectoryExtractor(o.opts.Sources.ClientsDir, mediaPrefix+"/clients", o.log)
				batch := rc.Loader.LoadClients(extractor.ExtractLogos())
				rc.InsertedKeys["clients"] = batch.InsertedKeys
				return fromBatch(batch), nil
			},
		},
		{
			ID: "approvals", Name: "Approvals import", Estimate: 5 * time.Second,
			Critical: false, Rollback: RollbackDeleteRows, Entity: "approvals",
			Synthetic: StepResult{Inserted: 8},
			Run: func(rc *RunContext) (StepResult, error) {
				extractor := NewDirectoryExtractor(o.opts.Sources.ApprovalsDir, mediaPrefix+"/approvals", o.log)
				batch := rc.Loader.LoadApprovals(extractor.ExtractLogos())
				rc.InsertedKeys["approvals"] = batch.InsertedKeys
				return fromBatch(batch), nil
			},
		},
		{
			ID: "media", Name: "Media files import", Estimate: 15 * time.Second,
			Critical: false, Rollback: RollbackDeleteRows, Entity: "media",
			Synthetic: StepResult{Inserted: 140},
			Run: func(rc *RunContext) (StepResult, error) {
				candidates := ScanMediaFiles(o.opts.Sources.MediaRoot, mediaPrefix, o.log)
				batch := rc.Loader.LoadMediaFiles(candidates)
				rc.InsertedKeys["media"] = batch.InsertedKeys
				return fromBatch(batch), nil
			},
		},
		{
			ID: "content", Name: "Site content", Estimate: 2 * time.Second,
			Critical: false, Rollback: RollbackNone, // upsert is idempotent
			Synthetic: StepResult{Inserted: 35},
			Run: func(rc *RunContext) (StepResult, error) {
				batch := rc.Loader.UpsertContent(TemplateExtractor{}.Extract())
				return fromBatch(batch), nil
			},
		},
		{
			ID: "validate", Name: "Validation", Estimate: 10 * time.Second,
			// Validation failure halts the run but never reverts loaded data:
			// the rows stay in place for inspection.
			Critical: true, Rollback: RollbackNone,
			Synthetic: StepResult{Detail: "validation skipped (dry run)"},
			Run: func(rc *RunContext) (StepResult, error) {
				validator := NewValidator(rc.DB, o.opts.Sources.MediaRoot, mediaPrefix, o.log)
				report, err := validator.Run()
				if err != nil {
					return StepResult{}, err
				}
				rc.Validation = report
				if n := report.ErrorCount(); n > 0 {
					return StepResult{Failed: n}, fmt.Errorf("validation found %d errors", n)
				}
				return StepResult{Detail: fmt.Sprintf("%d warnings", report.WarningCount())}, nil
			},
		},
		{
			ID: "optimize", Name: "Store optimization", Estimate: 5 * time.Second,
			Critical: false, Rollback: RollbackNone,
			Synthetic: StepResult{Detail: "ANALYZE skipped (dry run)"},
			Run: func(rc *RunContext) (StepResult, error) {
				if err := rc.DB.Exec("ANALYZE").Error; err != nil {
					return StepResult{}, fmt.Errorf("analyze: %w", err)
				}
				return StepResult{Detail: "statistics refreshed"}, nil
			},
		},
		{
			ID: "final-verify", Name: "Final verification", Estimate: 3 * time.Second,
			Critical: true, Rollback: RollbackNone,
			Synthetic: StepResult{Detail: "verification skipped (dry run)"},
			Run: func(rc *RunContext) (StepResult, error) {
				var categories int64
				if err := rc.DB.Table("categories").Count(&categories).Error; err != nil {
					return StepResult{}, fmt.Errorf("store unreachable: %w", err)
				}
				if categories == 0 {
					return StepResult{}, fmt.Errorf("no categories present after migration")
				}
				return StepResult{Detail: fmt.Sprintf("%d categories present", categories)}, nil
			},
		},
	}
}

// Run executes the pipeline and returns the run report. The report is always
// non-nil; the error mirrors the report's failed status for callers that
// want an exit code.
func (o *Orchestrator) Run() (*RunReport, error) {
	report := &RunReport{
		RunID:     uuid.NewString()[:8],
		DryRun:    o.opts.DryRun,
		Status:    RunInProgress,
		StartedAt: time.Now().UTC(),
	}
	rc := &RunContext{
		DB:           o.db,
		Loader:       NewLoader(o.db, o.log),
		Backups:      NewBackupManager(o.opts.StorePath, o.opts.BackupDir, o.log),
		InsertedKeys: map[string][]string{},
	}

	var runErr error
	for _, step := range o.Steps() {
		stepReport := StepReport{ID: step.ID, Name: step.Name, Critical: step.Critical, Status: StepPending}

		if o.opts.SkipValidation && step.ID == "validate" {
			o.log.Info("skipping step", "step", step.ID)
			stepReport.Status = StepSkipped
			report.Steps = append(report.Steps, stepReport)
			continue
		}

		if o.opts.StepByStep && !o.opts.Confirmer.Confirm(step.Name) {
			o.log.Warn("run aborted by operator", "beforeStep", step.ID)
			stepReport.Status = StepSkipped
			report.Steps = append(report.Steps, stepReport)
			report.Status = RunFailed
			runErr = fmt.Errorf("aborted before step %s", step.ID)
			break
		}

		o.log.Info("step starting", "step", step.ID, "estimate", step.Estimate.String())
		stepReport.Status = StepRunning
		start := time.Now()

		var result StepResult
		var err error
		if o.opts.DryRun {
			result = step.Synthetic
		} else {
			result, err = step.Run(rc)
		}
		stepReport.DurationMS = time.Since(start).Milliseconds()
		stepReport.Inserted = result.Inserted
		stepReport.Skipped = result.Skipped
		stepReport.Failed = result.Failed
		stepReport.Detail = result.Detail
		report.TotalInserted += result.Inserted
		report.TotalSkipped += result.Skipped
		report.TotalFailed += result.Failed
		if rc.LastBackup != nil && len(report.Backups) == 0 {
			report.Backups = append(report.Backups, *rc.LastBackup)
		}

		if err == nil {
			stepReport.Status = StepCompleted
			report.Steps = append(report.Steps, stepReport)
			o.log.Info("step completed", "step", step.ID, "durationMs", stepReport.DurationMS)
			continue
		}

		stepReport.Status = StepFailed
		stepReport.Error = err.Error()
		o.log.Error("step failed", "step", step.ID, "error", err)

		if !step.Critical {
			report.Steps = append(report.Steps, stepReport)
			continue
		}

		rolledBack := o.rollback(rc, step)
		stepReport.RolledBack = rolledBack
		report.Steps = append(report.Steps, stepReport)
		if rolledBack {
			report.Status = RunRolledBack
		} else {
			report.Status = RunFailed
		}
		runErr = fmt.Errorf("critical step %s failed: %w", step.ID, err)
		break
	}

	if report.Status == RunInProgress {
		report.Status = RunSucceeded
	}
	report.Validation = rc.Validation
	report.FinishedAt = time.Now().UTC()

	if o.opts.ReportsDir != "" && !o.opts.DryRun {
		if path, err := report.WriteFiles(o.opts.ReportsDir); err != nil {
			o.log.Warn("could not write run report", "error", err)
		} else {
			o.log.Info("run report written", "path", path)
		}
	}
	return report, runErr
}

// rollback executes a failed critical step's declared rollback action and
// reports whether anything was actually undone.
func (o *Orchestrator) rollback(rc *RunContext, step Step) bool {
	switch step.Rollback {
	case RollbackRestoreBackup:
		if rc.LastBackup == nil {
			o.log.Warn("no backup available to restore", "step", step.ID)
			return false
		}
		if err := rc.Backups.RestoreFromBackup(rc.LastBackup); err != nil {
			o.log.Error("rollback restore failed", "step", step.ID, "error", err)
			return false
		}
		return true
	case RollbackDeleteRows:
		keys := rc.InsertedKeys[step.Entity]
		if err := rc.Loader.DeleteByKeys(step.Entity, keys); err != nil {
			o.log.Error("rollback delete failed", "step", step.ID, "error", err)
			return false
		}
		return len(keys) > 0
	default:
		return false
	}
}

// RollbackToInitial restores the earliest "initial" backup. This is the
// --rollback CLI path; it runs no pipeline steps.
func (o *Orchestrator) RollbackToInitial() error {
	backups := NewBackupManager(o.opts.StorePath, o.opts.BackupDir, o.log)
	handle, err := backups.FindEarliestBackup("initial")
	if err != nil {
		return err
	}
	if handle == nil {
		return fmt.Errorf("no initial backup found in %s", o.opts.BackupDir)
	}
	return backups.RestoreFromBackup(handle)
}
