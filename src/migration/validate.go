package migration

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/ChemCoat/ChemCoat-Backend/src/logger"
	"github.com/ChemCoat/ChemCoat-Backend/src/models"
)

// Issue severities. Errors mark the validation check as failed; warnings are
// reported but never fail a check.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Issue is one finding from the post-load integrity pass.
type Issue struct {
	Severity string `json:"severity"`
	Entity   string `json:"entity"`
	Message  string `json:"message"`
}

// ValidationReport is the structured result of the validator: row counts per
// entity, the full issue list, and a pass/fail flag per check category.
type ValidationReport struct {
	EntityCounts   map[string]int64 `json:"entityCounts"`
	Issues         []Issue          `json:"issues"`
	Checks         map[string]bool  `json:"checks"`
	QueryLatencyMS map[string]int64 `json:"queryLatencyMs"`
}

// ErrorCount returns the number of error-severity issues.
func (r *ValidationReport) ErrorCount() int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			n++
		}
	}
	return n
}

// WarningCount returns the number of warning-severity issues.
func (r *ValidationReport) WarningCount() int {
	return len(r.Issues) - r.ErrorCount()
}

func (r *ValidationReport) addIssue(severity, entity, message string) {
	r.Issues = append(r.Issues, Issue{Severity: severity, Entity: entity, Message: message})
}

// Validator runs the post-load integrity pass. It reports issues; it never
// fixes data and never rolls anything back.
type Validator struct {
	db        *gorm.DB
	mediaRoot string
	urlPrefix string
	log       *logger.Logger
}

func NewValidator(db *gorm.DB, mediaRoot, urlPrefix string, log *logger.Logger) *Validator {
	return &Validator{db: db, mediaRoot: mediaRoot, urlPrefix: urlPrefix, log: log.With("component", "validator")}
}

// Run executes every check and returns the report. The returned error is
// non-nil only when the validator itself cannot run (e.g. the store is
// unreachable); data-quality findings live in the report.
func (v *Validator) Run() (*ValidationReport, error) {
	report := &ValidationReport{
		EntityCounts:   map[string]int64{},
		Checks:         map[string]bool{},
		QueryLatencyMS: map[string]int64{},
	}

	if err := v.countEntities(report); err != nil {
		return nil, err
	}
	v.checkProducts(report)
	v.checkProjects(report)
	v.checkApprovals(report)
	v.checkMediaFiles(report)
	v.checkSEOFields(report)
	v.sampleLatency(report)

	v.log.Info("validation finished",
		"errors", report.ErrorCount(),
		"warnings", report.WarningCount(),
	)
	return report, nil
}

func (v *Validator) countEntities(report *ValidationReport) error {
	tables := map[string]interface{}{
		"categories": &models.CategoryModel{},
		"products":   &models.ProductModel{},
		"projects":   &models.ProjectModel{},
		"clients":    &models.ClientModel{},
		"approvals":  &models.ApprovalModel{},
		"media":      &models.MediaFileModel{},
		"content":    &models.ContentItemModel{},
	}
	for name, model := range tables {
		var count int64
		if err := v.db.Model(model).Count(&count).Error; err != nil {
			return fmt.Errorf("counting %s: %w", name, err)
		}
		report.EntityCounts[name] = count
	}
	return nil
}

// checkProducts verifies required fields, JSON parseability of the
// multi-value columns, and that every category_id references an existing
// category. Insert-or-ignore loading lets orphans slip in; this is where
// they are caught.
func (v *Validator) checkProducts(report *ValidationReport) {
	var categories []models.CategoryModel
	if err := v.db.Find(&categories).Error; err != nil {
		report.addIssue(SeverityError, "products", fmt.Sprintf("could not load categories for FK check: %v", err))
		report.Checks["product_integrity"] = false
		return
	}
	known := make(map[string]bool, len(categories))
	for _, c := range categories {
		known[c.Id] = true
	}

	var products []models.ProductModel
	if err := v.db.Find(&products).Error; err != nil {
		report.addIssue(SeverityError, "products", fmt.Sprintf("could not load products: %v", err))
		report.Checks["product_integrity"] = false
		return
	}

	before := report.ErrorCount()
	for _, p := range products {
		if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.Description) == "" || p.CategoryID == "" {
			report.addIssue(SeverityError, "products", fmt.Sprintf("product %d is missing required fields", p.Id))
		}
		if !known[p.CategoryID] {
			report.addIssue(SeverityError, "products", fmt.Sprintf("product %d references missing category %q", p.Id, p.CategoryID))
		}
		if !isJSONStringArray(p.Applications) {
			report.addIssue(SeverityError, "products", fmt.Sprintf("product %d has unparseable applications JSON", p.Id))
		}
		if !isJSONStringArray(p.Features) {
			report.addIssue(SeverityError, "products", fmt.Sprintf("product %d has unparseable features JSON", p.Id))
		}
	}
	report.Checks["product_integrity"] = report.ErrorCount() == before
}

func (v *Validator) checkProjects(report *ValidationReport) {
	valid := make(map[string]bool, len(models.ProjectCategories))
	for _, c := range models.ProjectCategories {
		valid[c] = true
	}

	var projects []models.ProjectModel
	if err := v.db.Find(&projects).Error; err != nil {
		report.addIssue(SeverityError, "projects", fmt.Sprintf("could not load projects: %v", err))
		report.Checks["project_integrity"] = false
		return
	}

	before := report.ErrorCount()
	for _, p := range projects {
		if strings.TrimSpace(p.Name) == "" {
			report.addIssue(SeverityError, "projects", fmt.Sprintf("project %d has an empty name", p.Id))
		}
		if !valid[p.Category] {
			report.addIssue(SeverityError, "projects", fmt.Sprintf("project %d has unknown category %q", p.Id, p.Category))
		}
		if !isJSONStringArray(p.GalleryImages) {
			report.addIssue(SeverityError, "projects", fmt.Sprintf("project %d has unparseable gallery_images JSON", p.Id))
		}
	}
	report.Checks["project_integrity"] = report.ErrorCount() == before
}

func (v *Validator) checkApprovals(report *ValidationReport) {
	var approvals []models.ApprovalModel
	if err := v.db.Find(&approvals).Error; err != nil {
		report.addIssue(SeverityError, "approvals", fmt.Sprintf("could not load approvals: %v", err))
		report.Checks["approval_dates"] = false
		return
	}

	before := report.ErrorCount()
	for _, a := range approvals {
		for field, value := range map[string]*string{"issue_date": a.IssueDate, "expiry_date": a.ExpiryDate} {
			if value == nil || *value == "" {
				continue
			}
			if _, err := time.Parse("2006-01-02", *value); err != nil {
				report.addIssue(SeverityError, "approvals", fmt.Sprintf("approval %d has malformed %s %q", a.Id, field, *value))
			}
		}
	}
	report.Checks["approval_dates"] = report.ErrorCount() == before
}

// checkMediaFiles verifies each media row resolves to a file on disk and,
// conversely, flags disk files with no row (orphans). Orphans are warnings:
// the site still works, the file is just unmanaged.
func (v *Validator) checkMediaFiles(report *ValidationReport) {
	var files []models.MediaFileModel
	if err := v.db.Find(&files).Error; err != nil {
		report.addIssue(SeverityError, "media", fmt.Sprintf("could not load media files: %v", err))
		report.Checks["media_files"] = false
		return
	}

	before := report.ErrorCount()
	referenced := make(map[string]bool, len(files))
	for _, f := range files {
		rel := strings.TrimPrefix(f.FilePath, v.urlPrefix)
		rel = strings.TrimPrefix(rel, "/")
		full := filepath.Join(v.mediaRoot, filepath.FromSlash(rel))
		referenced[full] = true
		if _, err := os.Stat(full); err != nil {
			report.addIssue(SeverityError, "media", fmt.Sprintf("media row %d references missing file %s", f.Id, f.FilePath))
		}
	}
	report.Checks["media_files"] = report.ErrorCount() == before

	orphans := 0
	_ = filepath.WalkDir(v.mediaRoot, func(p string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() || !isImageFile(d.Name()) {
			return nil
		}
		if !referenced[p] {
			report.addIssue(SeverityWarning, "media", fmt.Sprintf("orphaned file on disk: %s", p))
			orphans++
		}
		return nil
	})
	report.Checks["media_orphans"] = true // orphans are warnings only
	if orphans > 0 {
		v.log.Warn("orphaned media files found", "count", orphans)
	}
}

// checkSEOFields applies length heuristics to the per-page meta fields.
// These are warnings, not errors: short copy hurts rankings, not integrity.
func (v *Validator) checkSEOFields(report *ValidationReport) {
	var items []models.ContentItemModel
	if err := v.db.Where("section = ?", "seo").Find(&items).Error; err != nil {
		report.addIssue(SeverityError, "content", fmt.Sprintf("could not load SEO content: %v", err))
		report.Checks["seo_fields"] = false
		return
	}

	for _, item := range items {
		length := len(item.ContentValue)
		switch item.ContentKey {
		case "meta_title":
			if length < 30 || length > 60 {
				report.addIssue(SeverityWarning, "content",
					fmt.Sprintf("page %q meta_title length %d outside 30-60", item.Page, length))
			}
		case "meta_description":
			if length < 120 || length > 160 {
				report.addIssue(SeverityWarning, "content",
					fmt.Sprintf("page %q meta_description length %d outside 120-160", item.Page, length))
			}
		case "meta_keywords":
			if len(strings.Split(item.ContentValue, ",")) < 3 {
				report.addIssue(SeverityWarning, "content",
					fmt.Sprintf("page %q has fewer than 3 meta keywords", item.Page))
			}
		}
	}
	report.Checks["seo_fields"] = true
}

// sampleLatency times a few representative listing queries. Numbers land in
// the report for eyeballing; there is no threshold that fails the run.
func (v *Validator) sampleLatency(report *ValidationReport) {
	samples := map[string]func() error{
		"products_by_category": func() error {
			var rows []models.ProductModel
			return v.db.Where("category_id = ?", FallbackCategoryID).Limit(50).Find(&rows).Error
		},
		"featured_projects": func() error {
			var rows []models.ProjectModel
			return v.db.Where("is_featured = ?", true).Limit(20).Find(&rows).Error
		},
		"content_by_page": func() error {
			var rows []models.ContentItemModel
			return v.db.Where("page = ?", "home").Find(&rows).Error
		},
	}
	for name, query := range samples {
		start := time.Now()
		if err := query(); err != nil {
			report.addIssue(SeverityWarning, "latency", fmt.Sprintf("sample query %s failed: %v", name, err))
			continue
		}
		report.QueryLatencyMS[name] = time.Since(start).Milliseconds()
	}
}

func isJSONStringArray(text string) bool {
	var values []string
	return json.Unmarshal([]byte(text), &values) == nil
}
