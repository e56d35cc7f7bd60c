package services

import (
	"time"

	"github.com/ChemCoat/ChemCoat-Backend/src/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ContentService struct {
	db    *gorm.DB
	audit *AuditService
}

// NewContentService creates a new instance of ContentService
func NewContentService(db *gorm.DB, audit *AuditService) *ContentService {
	return &ContentService{db: db, audit: audit}
}

// GetContentByPage retrieves every content item belonging to one page
func (s *ContentService) GetContentByPage(page string) ([]models.ContentItemModel, error) {
	var items []models.ContentItemModel
	result := s.db.Where("page = ?", page).Order("section, content_key").Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}
	return items, nil
}

// UpsertContent writes a content value keyed on (page, section, content_key).
// Editing from the admin dashboard and the migration pipeline go through the
// same upsert semantics: the latest value wins.
func (s *ContentService) UpsertContent(item *models.ContentItemModel) (*models.ContentItemModel, error) {
	item.UpdatedAt = time.Now().UTC()
	result := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "page"}, {Name: "section"}, {Name: "content_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"content_value", "updated_at"}),
	}).Create(item)
	if result.Error != nil {
		return nil, result.Error
	}
	_ = s.audit.Record("content", item.Id, "update", nil, item)
	return item, nil
}

// DeleteContent deletes one content item by its natural key
func (s *ContentService) DeleteContent(page, section, key string) error {
	result := s.db.Where("page = ? AND section = ? AND content_key = ?", page, section, key).
		Delete(&models.ContentItemModel{})
	return result.Error
}
