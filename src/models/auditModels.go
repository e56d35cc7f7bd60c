package models

import "time"

// AuditEntryModel records admin mutations (create/update/delete) with before
// and after snapshots serialized as JSON.
type AuditEntryModel struct {
	Id         int       `json:"id" gorm:"primaryKey;autoIncrement"`
	EntityType string    `json:"entityType" gorm:"column:entity_type;type:varchar(100);not null"`
	EntityID   string    `json:"entityId" gorm:"column:entity_id;type:varchar(100);not null"`
	Action     string    `json:"action" gorm:"type:varchar(20);not null"`
	OldValue   *string   `json:"oldValue" gorm:"column:old_value;type:text"`
	NewValue   *string   `json:"newValue" gorm:"column:new_value;type:text"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (AuditEntryModel) TableName() string {
	return "audit_entries"
}
