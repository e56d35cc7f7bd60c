package migration

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ChemCoat/ChemCoat-Backend/src/logger"
	"github.com/ChemCoat/ChemCoat-Backend/src/models"
)

// LoadOutcome tags what happened to a single record during loading.
type LoadOutcome string

const (
	// OutcomeInserted means the record was written as a new row.
	OutcomeInserted LoadOutcome = "inserted"
	// OutcomeSkippedDuplicate means the natural key already existed and the
	// record was ignored. Re-running a loader does not update existing rows.
	OutcomeSkippedDuplicate LoadOutcome = "skipped_duplicate"
	// OutcomeFailedMalformed means the store rejected the record for a reason
	// other than a duplicate key. The loader continues with the next record.
	OutcomeFailedMalformed LoadOutcome = "failed_malformed"
)

// RecordResult is the per-record outcome of a load.
type RecordResult struct {
	Key     string      `json:"key"`
	Outcome LoadOutcome `json:"outcome"`
	Reason  string      `json:"reason,omitempty"`
}

// BatchResult aggregates one loader invocation. Every skipped or failed
// record is counted and surfaced; nothing fails silently.
type BatchResult struct {
	Inserted     int            `json:"inserted"`
	Skipped      int            `json:"skipped"`
	Failed       int            `json:"failed"`
	Errors       []string       `json:"errors,omitempty"`
	Records      []RecordResult `json:"-"`
	InsertedKeys []string       `json:"-"`
}

func (b *BatchResult) add(key string, outcome LoadOutcome, reason string) {
	b.Records = append(b.Records, RecordResult{Key: key, Outcome: outcome, Reason: reason})
	switch outcome {
	case OutcomeInserted:
		b.Inserted++
		b.InsertedKeys = append(b.InsertedKeys, key)
	case OutcomeSkippedDuplicate:
		b.Skipped++
	case OutcomeFailedMalformed:
		b.Failed++
		b.Errors = append(b.Errors, fmt.Sprintf("%s: %s", key, reason))
	}
}

// Loader writes candidate records into the store. All loaders except content
// use insert-or-ignore semantics: a unique-key conflict is counted as
// skipped, any other per-record failure is captured and the batch continues.
type Loader struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLoader(db *gorm.DB, log *logger.Logger) *Loader {
	return &Loader{db: db, log: log.With("component", "loader")}
}

// EnsureSchema migrates every table the pipeline loads into.
func (l *Loader) EnsureSchema() error {
	return l.db.AutoMigrate(
		&models.CategoryModel{},
		&models.ProductModel{},
		&models.ProjectModel{},
		&models.ClientModel{},
		&models.ApprovalModel{},
		&models.MediaFileModel{},
		&models.ContentItemModel{},
		&models.AuditEntryModel{},
		&models.UserModel{},
	)
}

// insertIgnore writes one record, swallowing unique-key conflicts.
func (l *Loader) insertIgnore(result *BatchResult, key string, value interface{}) {
	tx := l.db.Clauses(clause.OnConflict{DoNothing: true}).Create(value)
	switch {
	case tx.Error != nil:
		l.log.Warn("record rejected", "key", key, "error", tx.Error)
		result.add(key, OutcomeFailedMalformed, tx.Error.Error())
	case tx.RowsAffected == 0:
		result.add(key, OutcomeSkippedDuplicate, "")
	default:
		result.add(key, OutcomeInserted, "")
	}
}

// LoadProducts maps extracted spreadsheet rows through the transformers and
// inserts them keyed on product_code.
func (l *Loader) LoadProducts(rows []ProductRow) *BatchResult {
	result := &BatchResult{}
	for _, row := range rows {
		product := BuildProduct(row)
		l.insertIgnore(result, product.ProductCode, &product)
	}
	l.logBatch("products", result)
	return result
}

// LoadProjects inserts project candidates keyed on name.
func (l *Loader) LoadProjects(candidates []ProjectCandidate) *BatchResult {
	result := &BatchResult{}
	for i, c := range candidates {
		project := BuildProject(c, i+1)
		l.insertIgnore(result, project.Name, &project)
	}
	l.logBatch("projects", result)
	return result
}

// LoadClients inserts client candidates keyed on company_name, classifying
// each company's industry from its name.
func (l *Loader) LoadClients(candidates []LogoCandidate) *BatchResult {
	result := &BatchResult{}
	for _, c := range candidates {
		client := BuildClient(c)
		l.insertIgnore(result, client.CompanyName, &client)
	}
	l.logBatch("clients", result)
	return result
}

// LoadApprovals inserts approval candidates keyed on authority_name.
func (l *Loader) LoadApprovals(candidates []LogoCandidate) *BatchResult {
	result := &BatchResult{}
	for _, c := range candidates {
		approval := BuildApproval(c)
		l.insertIgnore(result, approval.AuthorityName, &approval)
	}
	l.logBatch("approvals", result)
	return result
}

// LoadMediaFiles inserts scanned media candidates keyed on filename.
func (l *Loader) LoadMediaFiles(candidates []MediaCandidate) *BatchResult {
	result := &BatchResult{}
	now := time.Now().UTC()
	for _, c := range candidates {
		media := models.MediaFileModel{
			Filename:     c.Filename,
			OriginalName: c.OriginalName,
			FilePath:     c.FilePath,
			FileSize:     c.FileSize,
			MimeType:     c.MimeType,
			UploadedAt:   now,
		}
		l.insertIgnore(result, media.Filename, &media)
	}
	l.logBatch("media", result)
	return result
}

// UpsertContent writes content seeds with true upsert semantics on the
// (page, section, content_key) natural key: re-running replaces the value.
// This is the one loader that corrects already-loaded data on re-run.
func (l *Loader) UpsertContent(seeds []ContentSeed) *BatchResult {
	result := &BatchResult{}
	for _, seed := range seeds {
		key := seed.Page + "/" + seed.Section + "/" + seed.Key
		item := models.ContentItemModel{
			Page:         seed.Page,
			Section:      seed.Section,
			ContentKey:   seed.Key,
			ContentValue: seed.Value,
			UpdatedAt:    time.Now().UTC(),
		}
		tx := l.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "page"}, {Name: "section"}, {Name: "content_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"content_value", "updated_at"}),
		}).Create(&item)
		if tx.Error != nil {
			l.log.Warn("content record rejected", "key", key, "error", tx.Error)
			result.add(key, OutcomeFailedMalformed, tx.Error.Error())
			continue
		}
		result.add(key, OutcomeInserted, "")
	}
	l.logBatch("content", result)
	return result
}

// LoadCategories seeds the fixed category set, insert-or-ignore on the slug.
func (l *Loader) LoadCategories(categories []models.CategoryModel) *BatchResult {
	result := &BatchResult{}
	for i := range categories {
		l.insertIgnore(result, categories[i].Id, &categories[i])
	}
	l.logBatch("categories", result)
	return result
}

// DeleteByKeys removes the rows a step inserted, identified by natural key.
// Used by the delete-rows rollback action.
func (l *Loader) DeleteByKeys(entity string, keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	var tx *gorm.DB
	switch entity {
	case "products":
		tx = l.db.Where("product_code IN ?", keys).Delete(&models.ProductModel{})
	case "projects":
		tx = l.db.Where("name IN ?", keys).Delete(&models.ProjectModel{})
	case "clients":
		tx = l.db.Where("company_name IN ?", keys).Delete(&models.ClientModel{})
	case "approvals":
		tx = l.db.Where("authority_name IN ?", keys).Delete(&models.ApprovalModel{})
	case "media":
		tx = l.db.Where("filename IN ?", keys).Delete(&models.MediaFileModel{})
	case "categories":
		tx = l.db.Where("id IN ?", keys).Delete(&models.CategoryModel{})
	default:
		return fmt.Errorf("no delete rollback defined for entity %q", entity)
	}
	if tx.Error != nil {
		return fmt.Errorf("deleting %s rows: %w", entity, tx.Error)
	}
	l.log.Info("step rows deleted", "entity", entity, "rows", tx.RowsAffected)
	return nil
}

func (l *Loader) logBatch(entity string, result *BatchResult) {
	l.log.Info("batch loaded",
		"entity", entity,
		"inserted", result.Inserted,
		"skipped", result.Skipped,
		"failed", result.Failed,
	)
}

// BuildProduct turns a spreadsheet row into a product model, applying
// category mapping, product-code derivation and JSON list encoding.
func BuildProduct(row ProductRow) models.ProductModel {
	return models.ProductModel{
		Name:                    row.Name,
		Description:             row.Description,
		CategoryID:              MapCategory(row.Category),
		Applications:            EncodeJSONList(SplitMultiValue(row.Applications)),
		Features:                EncodeJSONList(SplitMultiValue(row.Features)),
		Usage:                   optionalText(row.Usage),
		Advantages:              optionalText(row.Advantages),
		TechnicalSpecifications: optionalText(row.TechnicalSpec),
		ProductCode:             DeriveProductCode(row.Name),
		IsActive:                true,
	}
}

// BuildProject turns a directory candidate into a project model.
func BuildProject(c ProjectCandidate, sortOrder int) models.ProjectModel {
	return models.ProjectModel{
		Name:          c.Name,
		Category:      c.Category,
		GalleryImages: EncodeJSONList([]string{c.ImageURL}),
		IsActive:      true,
		SortOrder:     sortOrder,
	}
}

// BuildClient turns a logo candidate into a client model.
func BuildClient(c LogoCandidate) models.ClientModel {
	return models.ClientModel{
		CompanyName: c.Name,
		Industry:    ClassifyIndustry(c.Name),
		LogoURL:     c.LogoURL,
		SortOrder:   c.SortOrder,
	}
}

// BuildApproval turns a logo candidate into an approval model. The approval
// type is a coarse guess from the authority name; certificates carry no
// machine-readable type.
func BuildApproval(c LogoCandidate) models.ApprovalModel {
	approvalType := "Certification"
	lower := strings.ToLower(c.Name)
	if strings.Contains(lower, "test") || strings.Contains(lower, "lab") {
		approvalType = "Test Report"
	}
	return models.ApprovalModel{
		AuthorityName: c.Name,
		ApprovalType:  approvalType,
		LogoURL:       c.LogoURL,
		SortOrder:     c.SortOrder,
	}
}

// DefaultCategories is the fixed category set seeded before products load.
func DefaultCategories() []models.CategoryModel {
	names := []struct {
		id, name string
	}{
		{"concrete-admixtures", "Concrete Admixtures"},
		{"waterproofing-chemicals", "Waterproofing Chemicals"},
		{"grouts-anchors", "Grouts & Anchors"},
		{"epoxy-systems", "Epoxy Systems"},
		{"protective-coatings", "Protective Coatings"},
		{"sealants-adhesives", "Sealants & Adhesives"},
		{"curing-compounds", "Curing Compounds"},
		{"repair-mortars", "Repair Mortars"},
		{FallbackCategoryID, "Other Products"},
	}
	categories := make([]models.CategoryModel, 0, len(names))
	for i, n := range names {
		categories = append(categories, models.CategoryModel{
			Id:        n.id,
			Name:      n.name,
			SortOrder: i + 1,
		})
	}
	return categories
}

func optionalText(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}