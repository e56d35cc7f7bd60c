package models

import "time"

type MediaFileModel struct {
	Id           int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Filename     string    `json:"filename" gorm:"type:varchar(255);not null;uniqueIndex"`
	OriginalName string    `json:"originalName" gorm:"column:original_name;type:varchar(255)"`
	// FilePath is the public URL path (e.g. /media/products/foo.jpg). The
	// validator resolves it against the media root and flags missing files.
	FilePath   string    `json:"filePath" gorm:"column:file_path;type:varchar(500);not null"`
	FileSize   int64     `json:"fileSize" gorm:"column:file_size"`
	MimeType   string    `json:"mimeType" gorm:"column:mime_type;type:varchar(100)"`
	AltText    *string   `json:"altText" gorm:"column:alt_text;type:varchar(255)"`
	UploadedAt time.Time `json:"uploadedAt" gorm:"column:uploaded_at"`
}

func (MediaFileModel) TableName() string {
	return "media_files"
}
