package services

import (
	"errors"

	"github.com/ChemCoat/ChemCoat-Backend/src/models"
	"gorm.io/gorm"
)

type ProjectService struct {
	db    *gorm.DB
	audit *AuditService
}

// NewProjectService creates a new instance of ProjectService
func NewProjectService(db *gorm.DB, audit *AuditService) *ProjectService {
	return &ProjectService{db: db, audit: audit}
}

// GetAllProjects retrieves project records, optionally filtered by category
func (s *ProjectService) GetAllProjects(category *string) ([]models.ProjectModel, error) {
	var projects []models.ProjectModel
	query := s.db.Where("is_active = ?", true)
	if category != nil {
		query = query.Where("category = ?", *category)
	}
	result := query.Order("sort_order").Find(&projects)
	if result.Error != nil {
		return nil, result.Error
	}
	return projects, nil
}

// GetFeaturedProjects retrieves the projects highlighted on the home page
func (s *ProjectService) GetFeaturedProjects() ([]models.ProjectModel, error) {
	var projects []models.ProjectModel
	result := s.db.Where("is_featured = ? AND is_active = ?", true, true).
		Order("sort_order").Find(&projects)
	if result.Error != nil {
		return nil, result.Error
	}
	return projects, nil
}

// GetProjectByID retrieves a project record by ID
func (s *ProjectService) GetProjectByID(id int) (*models.ProjectModel, error) {
	var project models.ProjectModel
	result := s.db.First(&project, id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &project, nil
}

// CreateProject creates a new project record in the database
func (s *ProjectService) CreateProject(project *models.ProjectModel) (*models.ProjectModel, error) {
	if project.GalleryImages == "" {
		project.GalleryImages = "[]"
	}
	result := s.db.Create(project)
	if result.Error != nil {
		return nil, result.Error
	}
	_ = s.audit.Record("project", project.Id, "create", nil, project)
	return project, nil
}

// UpdateProject updates an existing project record
func (s *ProjectService) UpdateProject(id int, updated *models.ProjectModel) (*models.ProjectModel, error) {
	var project models.ProjectModel
	result := s.db.First(&project, id)
	if result.Error != nil {
		return nil, result.Error
	}
	old := project

	project.Name = updated.Name
	project.Description = updated.Description
	project.Category = updated.Category
	project.Location = updated.Location
	project.ClientName = updated.ClientName
	project.CompletionDate = updated.CompletionDate
	project.GalleryImages = updated.GalleryImages
	project.IsFeatured = updated.IsFeatured
	project.IsActive = updated.IsActive
	project.SortOrder = updated.SortOrder
	if err := s.db.Save(&project).Error; err != nil {
		return nil, err
	}
	_ = s.audit.Record("project", project.Id, "update", &old, &project)
	return &project, nil
}

// DeleteProject deletes a project record by ID
func (s *ProjectService) DeleteProject(id int) error {
	var project models.ProjectModel
	if err := s.db.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if err := s.db.Delete(&models.ProjectModel{}, id).Error; err != nil {
		return err
	}
	_ = s.audit.Record("project", id, "delete", &project, nil)
	return nil
}
