package models

type ClientModel struct {
	Id               int     `json:"id" gorm:"primaryKey;autoIncrement"`
	CompanyName      string  `json:"companyName" gorm:"column:company_name;type:varchar(255);not null;uniqueIndex"`
	Industry         string  `json:"industry" gorm:"type:varchar(100)"`
	LogoURL          string  `json:"logoUrl" gorm:"column:logo_url;type:varchar(500)"`
	PartnershipSince *string `json:"partnershipSince" gorm:"column:partnership_since;type:varchar(10)"`
	IsFeatured       bool    `json:"isFeatured" gorm:"column:is_featured;default:false"`
	SortOrder        int     `json:"sortOrder" gorm:"column:sort_order;default:0"`
}

func (ClientModel) TableName() string {
	return "clients"
}
