package dtos

// ProductSummaryDTO is the lightweight product row shown in the admin
// dashboard table, with the serialized application list decoded.
type ProductSummaryDTO struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	CategoryID   string   `json:"categoryId"`
	ProductCode  string   `json:"productCode"`
	IsActive     bool     `json:"isActive"`
	Applications []string `json:"applications"`
}
