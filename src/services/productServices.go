package services

import (
	"encoding/json"
	"errors"

	"github.com/ChemCoat/ChemCoat-Backend/src/dtos"
	"github.com/ChemCoat/ChemCoat-Backend/src/models"
	"gorm.io/gorm"
)

type ProductService struct {
	db    *gorm.DB
	audit *AuditService
}

// NewProductService creates a new instance of ProductService
func NewProductService(db *gorm.DB, audit *AuditService) *ProductService {
	return &ProductService{db: db, audit: audit}
}

// GetAllProducts retrieves product records, optionally filtered by category
func (s *ProductService) GetAllProducts(categoryID *string) ([]models.ProductModel, error) {
	var products []models.ProductModel
	query := s.db.Where("is_active = ?", true)
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}
	result := query.Order("name").Find(&products)
	if result.Error != nil {
		return nil, result.Error
	}
	return products, nil
}

// GetProductByID retrieves a product record by ID
func (s *ProductService) GetProductByID(id int) (*models.ProductModel, error) {
	var product models.ProductModel
	result := s.db.First(&product, id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &product, nil
}

// GetProductSummaries returns the lightweight listing used by the admin
// dashboard table, with decoded application lists.
func (s *ProductService) GetProductSummaries() ([]dtos.ProductSummaryDTO, error) {
	var products []models.ProductModel
	if err := s.db.Order("name").Find(&products).Error; err != nil {
		return nil, err
	}
	summaries := make([]dtos.ProductSummaryDTO, 0, len(products))
	for _, p := range products {
		var applications []string
		_ = json.Unmarshal([]byte(p.Applications), &applications)
		summaries = append(summaries, dtos.ProductSummaryDTO{
			ID:           p.Id,
			Name:         p.Name,
			CategoryID:   p.CategoryID,
			ProductCode:  p.ProductCode,
			IsActive:     p.IsActive,
			Applications: applications,
		})
	}
	return summaries, nil
}

// CreateProduct creates a new product record in the database
func (s *ProductService) CreateProduct(product *models.ProductModel) (*models.ProductModel, error) {
	if product.Applications == "" {
		product.Applications = "[]"
	}
	if product.Features == "" {
		product.Features = "[]"
	}
	result := s.db.Create(product)
	if result.Error != nil {
		return nil, result.Error
	}
	_ = s.audit.Record("product", product.Id, "create", nil, product)
	return product, nil
}

// UpdateProduct updates an existing product record
func (s *ProductService) UpdateProduct(id int, updated *models.ProductModel) (*models.ProductModel, error) {
	var product models.ProductModel
	result := s.db.First(&product, id)
	if result.Error != nil {
		return nil, result.Error
	}
	old := product

	product.Name = updated.Name
	product.Description = updated.Description
	product.CategoryID = updated.CategoryID
	product.Applications = updated.Applications
	product.Features = updated.Features
	product.Usage = updated.Usage
	product.Advantages = updated.Advantages
	product.TechnicalSpecifications = updated.TechnicalSpecifications
	product.IsActive = updated.IsActive
	if err := s.db.Save(&product).Error; err != nil {
		return nil, err
	}
	_ = s.audit.Record("product", product.Id, "update", &old, &product)
	return &product, nil
}

// DeleteProduct deletes a product record by ID
func (s *ProductService) DeleteProduct(id int) error {
	var product models.ProductModel
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if err := s.db.Delete(&models.ProductModel{}, id).Error; err != nil {
		return err
	}
	_ = s.audit.Record("product", id, "delete", &product, nil)
	return nil
}
