package models

import "time"

// ContentItemModel is keyed by the natural key (page, section, content_key).
// Unlike every other entity, content uses true upsert semantics: re-loading
// the same key replaces the value.
type ContentItemModel struct {
	Id           int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Page         string    `json:"page" gorm:"type:varchar(100);not null;uniqueIndex:idx_site_content_key"`
	Section      string    `json:"section" gorm:"type:varchar(100);not null;uniqueIndex:idx_site_content_key"`
	ContentKey   string    `json:"contentKey" gorm:"column:content_key;type:varchar(100);not null;uniqueIndex:idx_site_content_key"`
	ContentValue string    `json:"contentValue" gorm:"column:content_value;type:text"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (ContentItemModel) TableName() string {
	return "site_content"
}
