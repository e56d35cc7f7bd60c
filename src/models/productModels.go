package models

import "time"

type ProductModel struct {
	Id          int     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string  `json:"name" gorm:"type:varchar(255);not null"`
	Description string  `json:"description" gorm:"type:text"`
	CategoryID  string  `json:"categoryId" gorm:"column:category_id;type:varchar(100);not null"`
	// Applications and Features hold ordered lists serialized as JSON text.
	// The migration validator checks that they parse back into string arrays.
	Applications            string    `json:"applications" gorm:"type:text"`
	Features                string    `json:"features" gorm:"type:text"`
	Usage                   *string   `json:"usage" gorm:"type:text"`
	Advantages              *string   `json:"advantages" gorm:"type:text"`
	TechnicalSpecifications *string   `json:"technicalSpecifications" gorm:"column:technical_specifications;type:text"`
	ProductCode             string    `json:"productCode" gorm:"column:product_code;type:varchar(50);uniqueIndex"`
	IsActive                bool      `json:"isActive" gorm:"column:is_active;default:true;not null"`
	CreatedAt               time.Time `json:"createdAt"`
	UpdatedAt               time.Time `json:"updatedAt"`
}

func (ProductModel) TableName() string {
	return "products"
}
