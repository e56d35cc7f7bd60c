package services

import (
	"github.com/ChemCoat/ChemCoat-Backend/src/models"
	"gorm.io/gorm"
)

type CategoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new instance of CategoryService
func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

// GetAllCategories retrieves all category records ordered for display
func (s *CategoryService) GetAllCategories() ([]models.CategoryModel, error) {
	var categories []models.CategoryModel
	result := s.db.Order("sort_order").Find(&categories)
	if result.Error != nil {
		return nil, result.Error
	}
	return categories, nil
}

// GetCategoryByID retrieves a category record by its slug id
func (s *CategoryService) GetCategoryByID(id string) (*models.CategoryModel, error) {
	var category models.CategoryModel
	result := s.db.First(&category, "id = ?", id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &category, nil
}

// CreateCategory creates a new category record in the database
func (s *CategoryService) CreateCategory(category *models.CategoryModel) (*models.CategoryModel, error) {
	result := s.db.Create(category)
	if result.Error != nil {
		return nil, result.Error
	}
	return category, nil
}

// UpdateCategory updates an existing category record
func (s *CategoryService) UpdateCategory(id string, updated *models.CategoryModel) (*models.CategoryModel, error) {
	var category models.CategoryModel
	result := s.db.First(&category, "id = ?", id)
	if result.Error != nil {
		return nil, result.Error
	}
	category.Name = updated.Name
	category.Description = updated.Description
	category.SortOrder = updated.SortOrder
	if err := s.db.Save(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory deletes a category record by its slug id. Products keep
// their category_id; the migration validator flags any orphans this creates.
func (s *CategoryService) DeleteCategory(id string) error {
	result := s.db.Delete(&models.CategoryModel{}, "id = ?", id)
	return result.Error
}
