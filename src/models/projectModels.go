package models

// Project categories form a small fixed enum of project types. The migration
// validator checks Category against this set.
const (
	ProjectCategoryMetroRail      = "metro_rail"
	ProjectCategoryRoadsBridges   = "roads_bridges"
	ProjectCategoryBuildings      = "buildings_factories"
	ProjectCategoryWaterTreatment = "water_treatment"
	ProjectCategoryOther          = "other"
)

// ProjectCategories lists every valid project category code.
var ProjectCategories = []string{
	ProjectCategoryMetroRail,
	ProjectCategoryRoadsBridges,
	ProjectCategoryBuildings,
	ProjectCategoryWaterTreatment,
	ProjectCategoryOther,
}

type ProjectModel struct {
	Id             int     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name           string  `json:"name" gorm:"type:varchar(255);not null;uniqueIndex"`
	Description    *string `json:"description" gorm:"type:text"`
	Category       string  `json:"category" gorm:"type:varchar(50);not null"`
	Location       *string `json:"location" gorm:"type:varchar(255)"`
	ClientName     *string `json:"clientName" gorm:"column:client_name;type:varchar(255)"`
	CompletionDate *string `json:"completionDate" gorm:"column:completion_date;type:varchar(10)"`
	// GalleryImages holds an ordered list of URLs serialized as JSON text.
	GalleryImages string `json:"galleryImages" gorm:"column:gallery_images;type:text"`
	IsFeatured    bool   `json:"isFeatured" gorm:"column:is_featured;default:false"`
	IsActive      bool   `json:"isActive" gorm:"column:is_active;default:true;not null"`
	SortOrder     int    `json:"sortOrder" gorm:"column:sort_order;default:0"`
}

func (ProjectModel) TableName() string {
	return "projects"
}
