package migration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ChemCoat/ChemCoat-Backend/src/logger"
	"github.com/ChemCoat/ChemCoat-Backend/src/models"
)

type denyConfirmer struct{}

func (denyConfirmer) Confirm(string) bool { return false }

func testOptions(t *testing.T) Options {
	t.Helper()
	dir := t.TempDir()
	return Options{
		Sources: SourcePaths{
			ProductsXLSX:  filepath.Join(dir, "products.xlsx"),
			ProductsSheet: "Products",
			ProjectsDir:   filepath.Join(dir, "projects"),
			ClientsDir:    filepath.Join(dir, "clients"),
			ApprovalsDir:  filepath.Join(dir, "approvals"),
			MediaRoot:     filepath.Join(dir, "media"),
		},
		StorePath:  filepath.Join(dir, "store.db"),
		BackupDir:  filepath.Join(dir, "backups"),
		ReportsDir: filepath.Join(dir, "reports"),
	}
}

func openStore(t *testing.T, path string) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db
}

func TestOrchestratorRunEmptySources(t *testing.T) {
	opts := testOptions(t)
	db := openStore(t, opts.StorePath)

	o := NewOrchestrator(db, logger.NewNop(), opts)
	report, err := o.Run()
	require.NoError(t, err)
	require.Equal(t, RunSucceeded, report.Status)
	require.False(t, report.DryRun)
	require.Len(t, report.Steps, len(o.Steps()))
	for _, step := range report.Steps {
		require.Equal(t, StepCompleted, step.Status, "step %s", step.ID)
	}

	// Categories were seeded even though every external source was absent.
	require.Equal(t, 9, report.TotalInserted-len(defaultContentSeeds()))
	var count int64
	require.NoError(t, db.Model(&models.CategoryModel{}).Count(&count).Error)
	require.EqualValues(t, 9, count)

	// A report pair lands in the reports directory.
	entries, err := os.ReadDir(opts.ReportsDir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
}

func TestOrchestratorRunIsIdempotent(t *testing.T) {
	opts := testOptions(t)
	db := openStore(t, opts.StorePath)
	o := NewOrchestrator(db, logger.NewNop(), opts)

	first, err := o.Run()
	require.NoError(t, err)
	require.Equal(t, RunSucceeded, first.Status)

	second, err := o.Run()
	require.NoError(t, err)
	require.Equal(t, RunSucceeded, second.Status)

	// The second run skips what the first inserted; content upserts count as
	// writes both times.
	require.Equal(t, first.TotalInserted-9, second.TotalInserted)
	require.Equal(t, 9, second.TotalSkipped)
}

func TestOrchestratorDryRunTouchesNothing(t *testing.T) {
	opts := testOptions(t)
	opts.DryRun = true

	// No database handle at all: dry-run must not need one.
	o := NewOrchestrator(nil, logger.NewNop(), opts)
	report, err := o.Run()
	require.NoError(t, err)
	require.Equal(t, RunSucceeded, report.Status)
	require.True(t, report.DryRun)

	for _, dir := range []string{opts.BackupDir, opts.ReportsDir} {
		_, statErr := os.Stat(dir)
		require.True(t, os.IsNotExist(statErr), "dry run created %s", dir)
	}
	_, statErr := os.Stat(opts.StorePath)
	require.True(t, os.IsNotExist(statErr), "dry run created the store file")
}

func TestOrchestratorSkipValidation(t *testing.T) {
	opts := testOptions(t)
	opts.SkipValidation = true
	db := openStore(t, opts.StorePath)

	report, err := NewOrchestrator(db, logger.NewNop(), opts).Run()
	require.NoError(t, err)
	require.Equal(t, RunSucceeded, report.Status)

	var validate *StepReport
	for i := range report.Steps {
		if report.Steps[i].ID == "validate" {
			validate = &report.Steps[i]
		}
	}
	require.NotNil(t, validate)
	require.Equal(t, StepSkipped, validate.Status)
}

func TestOrchestratorStepByStepAbort(t *testing.T) {
	opts := testOptions(t)
	opts.StepByStep = true
	opts.Confirmer = denyConfirmer{}
	db := openStore(t, opts.StorePath)

	report, err := NewOrchestrator(db, logger.NewNop(), opts).Run()
	require.Error(t, err)
	require.Equal(t, RunFailed, report.Status)
	require.Len(t, report.Steps, 1)
	require.Equal(t, "backup", report.Steps[0].ID)
	require.Equal(t, StepSkipped, report.Steps[0].Status)
}

func TestOrchestratorHaltsOnValidationErrors(t *testing.T) {
	opts := testOptions(t)
	db := openStore(t, opts.StorePath)
	o := NewOrchestrator(db, logger.NewNop(), opts)

	// Plant an orphaned product so the validation step fails.
	require.NoError(t, NewLoader(db, logger.NewNop()).EnsureSchema())
	require.NoError(t, db.Create(&models.ProductModel{
		Name:         "Ghost Bond",
		Description:  "Orphaned on purpose.",
		CategoryID:   "discontinued-line",
		Applications: "[]",
		Features:     "[]",
		ProductCode:  "CC-GHOSTBOND",
	}).Error)

	report, err := o.Run()
	require.Error(t, err)
	require.Equal(t, RunFailed, report.Status)

	last := report.Steps[len(report.Steps)-1]
	require.Equal(t, "validate", last.ID)
	require.Equal(t, StepFailed, last.Status)
	require.False(t, last.RolledBack)

	// Loaded rows stay in place for inspection; later steps never ran.
	var count int64
	require.NoError(t, db.Model(&models.ProductModel{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
	for _, step := range report.Steps {
		require.NotEqual(t, "optimize", step.ID)
		require.NotEqual(t, "final-verify", step.ID)
	}
	require.NotNil(t, report.Validation)
	require.Positive(t, report.Validation.ErrorCount())
}

func TestRollbackRestoreBackup(t *testing.T) {
	opts := testOptions(t)
	original := []byte("pristine store bytes")
	require.NoError(t, os.WriteFile(opts.StorePath, original, 0o644))

	o := NewOrchestrator(nil, logger.NewNop(), opts)
	rc := &RunContext{
		Backups:      NewBackupManager(opts.StorePath, opts.BackupDir, logger.NewNop()),
		InsertedKeys: map[string][]string{},
	}

	handle, err := rc.Backups.CreateBackup("initial")
	require.NoError(t, err)
	rc.LastBackup = handle

	require.NoError(t, os.WriteFile(opts.StorePath, []byte("half-migrated wreck"), 0o644))

	require.True(t, o.rollback(rc, Step{ID: "schema-init", Rollback: RollbackRestoreBackup}))
	restored, err := os.ReadFile(opts.StorePath)
	require.NoError(t, err)
	require.Equal(t, original, restored)

	// Without a backup handle there is nothing to restore.
	rc.LastBackup = nil
	require.False(t, o.rollback(rc, Step{ID: "schema-init", Rollback: RollbackRestoreBackup}))
}

func TestRollbackDeleteRows(t *testing.T) {
	opts := testOptions(t)
	db := openStore(t, opts.StorePath)
	loader := NewLoader(db, logger.NewNop())
	require.NoError(t, loader.EnsureSchema())

	batch := loader.LoadClients([]LogoCandidate{
		{Name: "UltraTech Cement", LogoURL: "/media/clients/u.png", SortOrder: 1},
	})
	require.Equal(t, 1, batch.Inserted)

	o := NewOrchestrator(db, logger.NewNop(), opts)
	rc := &RunContext{
		Loader:       loader,
		InsertedKeys: map[string][]string{"clients": batch.InsertedKeys},
	}
	require.True(t, o.rollback(rc, Step{ID: "clients", Rollback: RollbackDeleteRows, Entity: "clients"}))

	var count int64
	require.NoError(t, db.Model(&models.ClientModel{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestRollbackToInitial(t *testing.T) {
	opts := testOptions(t)
	original := []byte("first ever snapshot")
	require.NoError(t, os.WriteFile(opts.StorePath, original, 0o644))

	m := NewBackupManager(opts.StorePath, opts.BackupDir, logger.NewNop())
	_, err := m.CreateBackup("initial")
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(opts.StorePath, []byte("later state"), 0o644))

	o := NewOrchestrator(nil, logger.NewNop(), opts)
	require.NoError(t, o.RollbackToInitial())

	restored, err := os.ReadFile(opts.StorePath)
	require.NoError(t, err)
	require.Equal(t, original, restored)
}

func TestRollbackToInitialNoBackup(t *testing.T) {
	opts := testOptions(t)
	o := NewOrchestrator(nil, logger.NewNop(), opts)
	require.Error(t, o.RollbackToInitial())
}

func TestStepOrder(t *testing.T) {
	o := NewOrchestrator(nil, logger.NewNop(), testOptions(t))
	var ids []string
	for _, step := range o.Steps() {
		ids = append(ids, step.ID)
	}
	require.Equal(t, []string{
		"backup", "schema-init", "categories", "products", "projects",
		"clients", "approvals", "media", "content", "validate",
		"optimize", "final-verify",
	}, ids)
}
