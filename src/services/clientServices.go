package services

import (
	"github.com/ChemCoat/ChemCoat-Backend/src/models"
	"gorm.io/gorm"
)

type ClientService struct {
	db *gorm.DB
}

// NewClientService creates a new instance of ClientService
func NewClientService(db *gorm.DB) *ClientService {
	return &ClientService{db: db}
}

// GetAllClients retrieves all client records ordered for display
func (s *ClientService) GetAllClients() ([]models.ClientModel, error) {
	var clients []models.ClientModel
	result := s.db.Order("sort_order").Find(&clients)
	if result.Error != nil {
		return nil, result.Error
	}
	return clients, nil
}

// GetFeaturedClients retrieves the clients shown in the home page logo strip
func (s *ClientService) GetFeaturedClients() ([]models.ClientModel, error) {
	var clients []models.ClientModel
	result := s.db.Where("is_featured = ?", true).Order("sort_order").Find(&clients)
	if result.Error != nil {
		return nil, result.Error
	}
	return clients, nil
}

// CreateClient creates a new client record in the database
func (s *ClientService) CreateClient(client *models.ClientModel) (*models.ClientModel, error) {
	result := s.db.Create(client)
	if result.Error != nil {
		return nil, result.Error
	}
	return client, nil
}

// UpdateClient updates an existing client record
func (s *ClientService) UpdateClient(id int, updated *models.ClientModel) (*models.ClientModel, error) {
	var client models.ClientModel
	result := s.db.First(&client, id)
	if result.Error != nil {
		return nil, result.Error
	}
	client.CompanyName = updated.CompanyName
	client.Industry = updated.Industry
	client.LogoURL = updated.LogoURL
	client.PartnershipSince = updated.PartnershipSince
	client.IsFeatured = updated.IsFeatured
	client.SortOrder = updated.SortOrder
	if err := s.db.Save(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// DeleteClient deletes a client record by ID
func (s *ClientService) DeleteClient(id int) error {
	result := s.db.Delete(&models.ClientModel{}, id)
	return result.Error
}
