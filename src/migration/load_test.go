package migration

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ChemCoat/ChemCoat-Backend/src/logger"
	"github.com/ChemCoat/ChemCoat-Backend/src/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, NewLoader(db, logger.NewNop()).EnsureSchema())
	return db
}

func newTestLoader(t *testing.T) (*Loader, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewLoader(db, logger.NewNop()), db
}

func sampleRows() []ProductRow {
	return []ProductRow{
		{
			Category:     "Concrete Admixtures",
			Name:         "SuperPlast 400",
			Description:  "High-range water reducing admixture.",
			Applications: "Ready mix concrete\nPrecast elements",
			Features:     "Improved workability; Reduced water demand",
		},
		{
			Category:    "Waterproofing",
			Name:        "Aqua-Seal",
			Description: "Flexible cementitious waterproof coating.",
		},
	}
}

func TestLoadProductsIdempotent(t *testing.T) {
	loader, db := newTestLoader(t)
	loader.LoadCategories(DefaultCategories())

	first := loader.LoadProducts(sampleRows())
	require.Equal(t, 2, first.Inserted)
	require.Zero(t, first.Skipped)
	require.Zero(t, first.Failed)
	require.Len(t, first.InsertedKeys, 2)

	// Re-running the same load must not duplicate or modify rows.
	second := loader.LoadProducts(sampleRows())
	require.Zero(t, second.Inserted)
	require.Equal(t, 2, second.Skipped)
	require.Zero(t, second.Failed)

	var count int64
	require.NoError(t, db.Model(&models.ProductModel{}).Count(&count).Error)
	require.EqualValues(t, 2, count)

	var product models.ProductModel
	require.NoError(t, db.First(&product, "product_code = ?", "CC-SUPERPLAST40").Error)
	require.Equal(t, "concrete-admixtures", product.CategoryID)
	require.Equal(t, `["Ready mix concrete","Precast elements"]`, product.Applications)
	require.Equal(t, `["Improved workability","Reduced water demand"]`, product.Features)
	require.True(t, product.IsActive)

	var bare models.ProductModel
	require.NoError(t, db.First(&bare, "product_code = ?", "CC-AQUASEAL").Error)
	require.Equal(t, "waterproofing-chemicals", bare.CategoryID)
	require.Equal(t, "[]", bare.Applications)
	require.Nil(t, bare.Usage)
}

func TestLoadCategoriesIdempotent(t *testing.T) {
	loader, db := newTestLoader(t)

	first := loader.LoadCategories(DefaultCategories())
	require.Equal(t, 9, first.Inserted)

	second := loader.LoadCategories(DefaultCategories())
	require.Zero(t, second.Inserted)
	require.Equal(t, 9, second.Skipped)

	var count int64
	require.NoError(t, db.Model(&models.CategoryModel{}).Count(&count).Error)
	require.EqualValues(t, 9, count)
}

func TestLoadClientsClassifiesIndustry(t *testing.T) {
	loader, db := newTestLoader(t)

	batch := loader.LoadClients([]LogoCandidate{
		{Name: "UltraTech Cement", LogoURL: "/media/clients/ultratech.png", SortOrder: 1},
		{Name: "Acme Widgets", LogoURL: "/media/clients/acme.png", SortOrder: 2},
	})
	require.Equal(t, 2, batch.Inserted)

	var client models.ClientModel
	require.NoError(t, db.First(&client, "company_name = ?", "UltraTech Cement").Error)
	require.Equal(t, "Cement & Concrete", client.Industry)

	var other models.ClientModel
	require.NoError(t, db.First(&other, "company_name = ?", "Acme Widgets").Error)
	require.Equal(t, DefaultIndustry, other.Industry)
}

func TestUpsertContentReplacesValue(t *testing.T) {
	loader, db := newTestLoader(t)

	seed := ContentSeed{Page: "home", Section: "hero", Key: "title", Value: "Old headline"}
	batch := loader.UpsertContent([]ContentSeed{seed})
	require.Equal(t, 1, batch.Inserted)

	seed.Value = "New headline"
	batch = loader.UpsertContent([]ContentSeed{seed})
	require.Equal(t, 1, batch.Inserted)
	require.Zero(t, batch.Failed)

	// One row, latest value wins.
	var items []models.ContentItemModel
	require.NoError(t, db.Where("page = ? AND section = ? AND content_key = ?", "home", "hero", "title").Find(&items).Error)
	require.Len(t, items, 1)
	require.Equal(t, "New headline", items[0].ContentValue)
}

func TestUpsertContentDistinctKeysCoexist(t *testing.T) {
	loader, db := newTestLoader(t)

	batch := loader.UpsertContent([]ContentSeed{
		{Page: "home", Section: "hero", Key: "title", Value: "a"},
		{Page: "home", Section: "hero", Key: "subtitle", Value: "b"},
		{Page: "about", Section: "hero", Key: "title", Value: "c"},
	})
	require.Equal(t, 3, batch.Inserted)

	var count int64
	require.NoError(t, db.Model(&models.ContentItemModel{}).Count(&count).Error)
	require.EqualValues(t, 3, count)
}

func TestDeleteByKeys(t *testing.T) {
	loader, db := newTestLoader(t)
	loader.LoadCategories(DefaultCategories())
	batch := loader.LoadProducts(sampleRows())

	require.NoError(t, loader.DeleteByKeys("products", batch.InsertedKeys))

	var count int64
	require.NoError(t, db.Model(&models.ProductModel{}).Count(&count).Error)
	require.Zero(t, count)

	// Empty key set is a no-op, unknown entities are rejected.
	require.NoError(t, loader.DeleteByKeys("products", nil))
	require.Error(t, loader.DeleteByKeys("martians", []string{"x"}))
}

func TestLoadMediaFiles(t *testing.T) {
	loader, db := newTestLoader(t)

	candidates := []MediaCandidate{
		{Filename: "plant.jpg", OriginalName: "plant.jpg", FilePath: "/media/plant.jpg", FileSize: 1024, MimeType: "image/jpeg"},
	}
	first := loader.LoadMediaFiles(candidates)
	require.Equal(t, 1, first.Inserted)

	second := loader.LoadMediaFiles(candidates)
	require.Equal(t, 1, second.Skipped)

	var media models.MediaFileModel
	require.NoError(t, db.First(&media, "filename = ?", "plant.jpg").Error)
	require.Equal(t, "image/jpeg", media.MimeType)
	require.False(t, media.UploadedAt.IsZero())
}

func TestBuildApprovalType(t *testing.T) {
	require.Equal(t, "Test Report", BuildApproval(LogoCandidate{Name: "National Test House"}).ApprovalType)
	require.Equal(t, "Certification", BuildApproval(LogoCandidate{Name: "Bureau of Indian Standards"}).ApprovalType)
}
