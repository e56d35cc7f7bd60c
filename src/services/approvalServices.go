package services

import (
	"github.com/ChemCoat/ChemCoat-Backend/src/models"
	"gorm.io/gorm"
)

type ApprovalService struct {
	db *gorm.DB
}

// NewApprovalService creates a new instance of ApprovalService
func NewApprovalService(db *gorm.DB) *ApprovalService {
	return &ApprovalService{db: db}
}

// GetAllApprovals retrieves all approval records ordered for display
func (s *ApprovalService) GetAllApprovals() ([]models.ApprovalModel, error) {
	var approvals []models.ApprovalModel
	result := s.db.Order("sort_order").Find(&approvals)
	if result.Error != nil {
		return nil, result.Error
	}
	return approvals, nil
}

// GetApprovalByID retrieves an approval record by ID
func (s *ApprovalService) GetApprovalByID(id int) (*models.ApprovalModel, error) {
	var approval models.ApprovalModel
	result := s.db.First(&approval, id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &approval, nil
}

// CreateApproval creates a new approval record in the database
func (s *ApprovalService) CreateApproval(approval *models.ApprovalModel) (*models.ApprovalModel, error) {
	result := s.db.Create(approval)
	if result.Error != nil {
		return nil, result.Error
	}
	return approval, nil
}

// UpdateApproval updates an existing approval record
func (s *ApprovalService) UpdateApproval(id int, updated *models.ApprovalModel) (*models.ApprovalModel, error) {
	var approval models.ApprovalModel
	result := s.db.First(&approval, id)
	if result.Error != nil {
		return nil, result.Error
	}
	approval.AuthorityName = updated.AuthorityName
	approval.ApprovalType = updated.ApprovalType
	approval.Description = updated.Description
	approval.LogoURL = updated.LogoURL
	approval.IssueDate = updated.IssueDate
	approval.ExpiryDate = updated.ExpiryDate
	approval.SortOrder = updated.SortOrder
	if err := s.db.Save(&approval).Error; err != nil {
		return nil, err
	}
	return &approval, nil
}

// DeleteApproval deletes an approval record by ID
func (s *ApprovalService) DeleteApproval(id int) error {
	result := s.db.Delete(&models.ApprovalModel{}, id)
	return result.Error
}
