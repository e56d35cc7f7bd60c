package services

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ChemCoat/ChemCoat-Backend/src/models"
	"gorm.io/gorm"
)

type AuditService struct {
	db *gorm.DB
}

// NewAuditService creates a new instance of AuditService
func NewAuditService(db *gorm.DB) *AuditService {
	return &AuditService{db: db}
}

// Record writes one audit entry with JSON snapshots of the entity before and
// after the mutation. Audit failures are returned but callers treat them as
// non-fatal: a CRUD operation does not fail because its audit row did.
func (s *AuditService) Record(entityType string, entityID int, action string, oldValue, newValue interface{}) error {
	entry := models.AuditEntryModel{
		EntityType: entityType,
		EntityID:   fmt.Sprintf("%d", entityID),
		Action:     action,
		OldValue:   snapshot(oldValue),
		NewValue:   snapshot(newValue),
		CreatedAt:  time.Now().UTC(),
	}
	return s.db.Create(&entry).Error
}

// GetRecent retrieves the most recent audit entries, newest first.
func (s *AuditService) GetRecent(limit int) ([]models.AuditEntryModel, error) {
	if limit <= 0 {
		limit = 50
	}
	var entries []models.AuditEntryModel
	result := s.db.Order("id DESC").Limit(limit).Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}
	return entries, nil
}

func snapshot(value interface{}) *string {
	if value == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return nil
	}
	s := string(data)
	return &s
}
