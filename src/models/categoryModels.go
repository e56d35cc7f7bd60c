package models

// CategoryModel uses a string slug as its primary key (e.g. "construction-chemicals")
// so products can reference categories by a stable, human-readable id.
type CategoryModel struct {
	Id          string `json:"id" gorm:"primaryKey;type:varchar(100)"`
	Name        string `json:"name" gorm:"column:name;type:varchar(255);not null"`
	Description string `json:"description" gorm:"type:text"`
	SortOrder   int    `json:"sortOrder" gorm:"column:sort_order;default:0"`
}

func (CategoryModel) TableName() string {
	return "categories"
}
