package services

import (
	"time"

	"github.com/ChemCoat/ChemCoat-Backend/src/models"
	"gorm.io/gorm"
)

type MediaService struct {
	db *gorm.DB
}

// NewMediaService creates a new instance of MediaService
func NewMediaService(db *gorm.DB) *MediaService {
	return &MediaService{db: db}
}

// GetAllMediaFiles retrieves all media file records, newest first
func (s *MediaService) GetAllMediaFiles() ([]models.MediaFileModel, error) {
	var files []models.MediaFileModel
	result := s.db.Order("uploaded_at DESC").Find(&files)
	if result.Error != nil {
		return nil, result.Error
	}
	return files, nil
}

// GetMediaFileByID retrieves a media file record by ID
func (s *MediaService) GetMediaFileByID(id int) (*models.MediaFileModel, error) {
	var file models.MediaFileModel
	result := s.db.First(&file, id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &file, nil
}

// CreateMediaFile registers an uploaded file. The upload itself happens
// outside this service; only the metadata row is written here.
func (s *MediaService) CreateMediaFile(file *models.MediaFileModel) (*models.MediaFileModel, error) {
	if file.UploadedAt.IsZero() {
		file.UploadedAt = time.Now().UTC()
	}
	result := s.db.Create(file)
	if result.Error != nil {
		return nil, result.Error
	}
	return file, nil
}

// UpdateMediaFile updates the editable metadata of a media file record
func (s *MediaService) UpdateMediaFile(id int, updated *models.MediaFileModel) (*models.MediaFileModel, error) {
	var file models.MediaFileModel
	result := s.db.First(&file, id)
	if result.Error != nil {
		return nil, result.Error
	}
	file.AltText = updated.AltText
	file.OriginalName = updated.OriginalName
	if err := s.db.Save(&file).Error; err != nil {
		return nil, err
	}
	return &file, nil
}

// DeleteMediaFile deletes a media file record by ID
func (s *MediaService) DeleteMediaFile(id int) error {
	result := s.db.Delete(&models.MediaFileModel{}, id)
	return result.Error
}
