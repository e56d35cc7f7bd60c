package seed

import (
	"os"

	"github.com/ChemCoat/ChemCoat-Backend/src/logger"
	"github.com/ChemCoat/ChemCoat-Backend/src/migration"
	"github.com/ChemCoat/ChemCoat-Backend/src/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed creates the initial admin user and the fixed category set if they do
// not exist yet. Safe to run on every startup.
func Seed(db *gorm.DB, log *logger.Logger) {
	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "chemcoat"
	}

	var user models.UserModel
	result := db.Where("username = ?", username).First(&user)
	if result.Error == nil {
		log.Debug("admin user already exists", "username", username)
	} else {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Error("could not hash admin password", "error", err)
			return
		}
		newUser := models.UserModel{
			Username: username,
			Password: string(hashedPassword),
		}
		if err := db.Create(&newUser).Error; err != nil {
			log.Error("failed to create admin user", "error", err)
		} else {
			log.Info("admin user created", "username", username)
		}
	}

	created := 0
	for _, category := range migration.DefaultCategories() {
		var existing models.CategoryModel
		if err := db.First(&existing, "id = ?", category.Id).Error; err == nil {
			continue
		}
		if err := db.Create(&category).Error; err != nil {
			log.Error("failed to create category", "id", category.Id, "error", err)
			continue
		}
		created++
	}
	if created > 0 {
		log.Info("categories seeded", "created", created)
	}
}
