package models

type ApprovalModel struct {
	Id            int     `json:"id" gorm:"primaryKey;autoIncrement"`
	AuthorityName string  `json:"authorityName" gorm:"column:authority_name;type:varchar(255);not null;uniqueIndex"`
	ApprovalType  string  `json:"approvalType" gorm:"column:approval_type;type:varchar(100)"`
	Description   *string `json:"description" gorm:"type:text"`
	LogoURL       string  `json:"logoUrl" gorm:"column:logo_url;type:varchar(500)"`
	// Issue and expiry dates are ISO 8601 date strings (YYYY-MM-DD). The
	// migration validator checks the format rather than the schema.
	IssueDate  *string `json:"issueDate" gorm:"column:issue_date;type:varchar(10)"`
	ExpiryDate *string `json:"expiryDate" gorm:"column:expiry_date;type:varchar(10)"`
	SortOrder  int     `json:"sortOrder" gorm:"column:sort_order;default:0"`
}

func (ApprovalModel) TableName() string {
	return "approvals"
}
