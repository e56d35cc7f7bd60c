package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ChemCoat/ChemCoat-Backend/src/models"
)

func TestContentServiceUpsert(t *testing.T) {
	db := newTestDB(t)
	service := NewContentService(db, NewAuditService(db))

	_, err := service.UpsertContent(&models.ContentItemModel{
		Page: "home", Section: "hero", ContentKey: "title", ContentValue: "Old headline",
	})
	require.NoError(t, err)

	_, err = service.UpsertContent(&models.ContentItemModel{
		Page: "home", Section: "hero", ContentKey: "title", ContentValue: "New headline",
	})
	require.NoError(t, err)

	items, err := service.GetContentByPage("home")
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "New headline", items[0].ContentValue)

	require.NoError(t, service.DeleteContent("home", "hero", "title"))
	items, err = service.GetContentByPage("home")
	require.NoError(t, err)
	require.Empty(t, items)
}
