package migration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ChemCoat/ChemCoat-Backend/src/logger"
	"github.com/ChemCoat/ChemCoat-Backend/src/models"
)

func issuesFor(report *ValidationReport, entity, severity string) []Issue {
	var out []Issue
	for _, issue := range report.Issues {
		if issue.Entity == entity && issue.Severity == severity {
			out = append(out, issue)
		}
	}
	return out
}

func TestValidatorCleanStore(t *testing.T) {
	loader, db := newTestLoader(t)
	loader.LoadCategories(DefaultCategories())
	loader.LoadProducts(sampleRows())
	loader.UpsertContent(defaultContentSeeds())

	v := NewValidator(db, t.TempDir(), "/media", logger.NewNop())
	report, err := v.Run()
	require.NoError(t, err)
	require.Zero(t, report.ErrorCount())

	require.EqualValues(t, 9, report.EntityCounts["categories"])
	require.EqualValues(t, 2, report.EntityCounts["products"])
	require.True(t, report.Checks["product_integrity"])
	require.True(t, report.Checks["project_integrity"])
	require.True(t, report.Checks["media_files"])
	require.Contains(t, report.QueryLatencyMS, "products_by_category")
}

func TestValidatorDetectsOrphanedProduct(t *testing.T) {
	loader, db := newTestLoader(t)
	loader.LoadCategories(DefaultCategories())

	orphan := models.ProductModel{
		Name:         "Ghost Bond",
		Description:  "References a category that does not exist.",
		CategoryID:   "discontinued-line",
		Applications: "[]",
		Features:     "[]",
		ProductCode:  "CC-GHOSTBOND",
		IsActive:     true,
	}
	require.NoError(t, db.Create(&orphan).Error)

	v := NewValidator(db, t.TempDir(), "/media", logger.NewNop())
	report, err := v.Run()
	require.NoError(t, err)

	errs := issuesFor(report, "products", SeverityError)
	require.Len(t, errs, 1)
	require.Contains(t, errs[0].Message, "discontinued-line")
	require.False(t, report.Checks["product_integrity"])
}

func TestValidatorDetectsCorruptJSON(t *testing.T) {
	loader, db := newTestLoader(t)
	loader.LoadCategories(DefaultCategories())

	bad := models.ProductModel{
		Name:         "Broken Rows",
		Description:  "Applications column is not JSON.",
		CategoryID:   FallbackCategoryID,
		Applications: "not json at all",
		Features:     "[]",
		ProductCode:  "CC-BROKENROWS",
	}
	require.NoError(t, db.Create(&bad).Error)

	v := NewValidator(db, t.TempDir(), "/media", logger.NewNop())
	report, err := v.Run()
	require.NoError(t, err)

	errs := issuesFor(report, "products", SeverityError)
	require.Len(t, errs, 1)
	require.Contains(t, errs[0].Message, "applications")
}

func TestValidatorProjectCategoryEnum(t *testing.T) {
	_, db := newTestLoader(t)

	require.NoError(t, db.Create(&models.ProjectModel{
		Name:          "Mystery Site",
		Category:      "underwater_basket_weaving",
		GalleryImages: "[]",
	}).Error)

	v := NewValidator(db, t.TempDir(), "/media", logger.NewNop())
	report, err := v.Run()
	require.NoError(t, err)

	errs := issuesFor(report, "projects", SeverityError)
	require.Len(t, errs, 1)
	require.False(t, report.Checks["project_integrity"])
}

func TestValidatorApprovalDates(t *testing.T) {
	_, db := newTestLoader(t)

	good := "2025-06-30"
	bad := "30/06/2025"
	require.NoError(t, db.Create(&models.ApprovalModel{
		AuthorityName: "Bureau of Indian Standards",
		ApprovalType:  "Certification",
		IssueDate:     &good,
		ExpiryDate:    &bad,
	}).Error)

	v := NewValidator(db, t.TempDir(), "/media", logger.NewNop())
	report, err := v.Run()
	require.NoError(t, err)

	errs := issuesFor(report, "approvals", SeverityError)
	require.Len(t, errs, 1)
	require.Contains(t, errs[0].Message, "expiry_date")
}

func TestValidatorMediaFilesAndOrphans(t *testing.T) {
	_, db := newTestLoader(t)

	mediaRoot := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(mediaRoot, "present.jpg"), []byte("jpg"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(mediaRoot, "orphan.png"), []byte("png"), 0o644))

	require.NoError(t, db.Create(&models.MediaFileModel{
		Filename: "present.jpg", OriginalName: "present.jpg",
		FilePath: "/media/present.jpg", FileSize: 3, MimeType: "image/jpeg",
	}).Error)
	require.NoError(t, db.Create(&models.MediaFileModel{
		Filename: "gone.jpg", OriginalName: "gone.jpg",
		FilePath: "/media/gone.jpg", FileSize: 3, MimeType: "image/jpeg",
	}).Error)

	v := NewValidator(db, mediaRoot, "/media", logger.NewNop())
	report, err := v.Run()
	require.NoError(t, err)

	errs := issuesFor(report, "media", SeverityError)
	require.Len(t, errs, 1)
	require.Contains(t, errs[0].Message, "gone.jpg")

	warns := issuesFor(report, "media", SeverityWarning)
	require.Len(t, warns, 1)
	require.Contains(t, warns[0].Message, "orphan.png")
	require.False(t, report.Checks["media_files"])
}

func TestValidatorSEOWarnings(t *testing.T) {
	loader, db := newTestLoader(t)

	loader.UpsertContent([]ContentSeed{
		{Page: "home", Section: "seo", Key: "meta_title", Value: "too short"},
		{Page: "home", Section: "seo", Key: "meta_keywords", Value: "one,two"},
	})

	v := NewValidator(db, t.TempDir(), "/media", logger.NewNop())
	report, err := v.Run()
	require.NoError(t, err)
	require.Zero(t, report.ErrorCount())

	warns := issuesFor(report, "content", SeverityWarning)
	require.Len(t, warns, 2)
	require.True(t, report.Checks["seo_fields"])
}
