package catalog

import (
	"context"
	"testing"

	"qr-menu-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicMenuHidesUnpublished(t *testing.T) {
	s := newTestService(t)
	ownerID, _ := onboard(t, s, "a@cafe.test", "Cafe X")
	ctx := context.Background()

	m, err := s.CreateMenu(ctx, ownerID, MenuInput{Name: "Lunch"})
	require.NoError(t, err)

	// unpublished and nonexistent look exactly the same
	_, err = s.PublicMenu(ctx, m.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.PublicMenu(ctx, "no-such-menu")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPublicMenuGateOnRestaurantAndMenuFlags(t *testing.T) {
	s := newTestService(t)
	ownerID, _ := onboard(t, s, "a@cafe.test", "Cafe X")
	ctx := context.Background()

	published := true
	m, err := s.CreateMenu(ctx, ownerID, MenuInput{Name: "Lunch", IsPublished: &published})
	require.NoError(t, err)

	_, err = s.PublicMenu(ctx, m.ID)
	require.NoError(t, err)

	// deactivating the menu hides it
	off := false
	_, err = s.UpdateMenu(ctx, ownerID, m.ID, MenuPatch{IsActive: &off})
	require.NoError(t, err)
	_, err = s.PublicMenu(ctx, m.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	on := true
	_, err = s.UpdateMenu(ctx, ownerID, m.ID, MenuPatch{IsActive: &on})
	require.NoError(t, err)

	// deactivating the restaurant hides it too
	_, err = s.UpdateRestaurant(ctx, ownerID, RestaurantPatch{IsActive: &off})
	require.NoError(t, err)
	_, err = s.PublicMenu(ctx, m.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPublishFlow(t *testing.T) {
	s := newTestService(t)
	ownerID, _ := onboard(t, s, "a@cafe.test", "Cafe X")
	ctx := context.Background()

	m, err := s.CreateMenu(ctx, ownerID, MenuInput{Name: "Lunch"})
	require.NoError(t, err)
	cat, err := s.CreateCategory(ctx, ownerID, m.ID, CategoryInput{Name: "Mains"})
	require.NoError(t, err)
	_, err = s.CreateItem(ctx, ownerID, m.ID, ItemInput{Name: "Burger", Price: 9.50, CategoryID: cat.ID})
	require.NoError(t, err)

	_, err = s.PublicMenu(ctx, m.ID)
	require.ErrorIs(t, err, ErrNotFound)

	published := true
	_, err = s.UpdateMenu(ctx, ownerID, m.ID, MenuPatch{IsPublished: &published})
	require.NoError(t, err)

	view, err := s.PublicMenu(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cafe X", view.Restaurant.Name)
	require.Len(t, view.Categories, 1)
	assert.Equal(t, "Mains", view.Categories[0].Name)
	require.Len(t, view.Categories[0].Items, 1)
	assert.Equal(t, "Burger", view.Categories[0].Items[0].Name)
	assert.Equal(t, "9.50", view.Categories[0].Items[0].Price)
	assert.Equal(t, 1, view.TotalItems)
	assert.Equal(t, 1, view.TotalCategories)
}

func TestPublicCategoryOrdering(t *testing.T) {
	s := newTestService(t)
	ownerID, _ := onboard(t, s, "a@cafe.test", "Cafe X")
	ctx := context.Background()

	published := true
	m, err := s.CreateMenu(ctx, ownerID, MenuInput{Name: "Lunch", IsPublished: &published})
	require.NoError(t, err)

	// (display_order, sort_order, name) = (0,2,B), (0,1,A), (1,0,Z)
	seed := []models.Category{
		{MenuID: m.ID, Name: "B", SortOrder: 2, DisplayOrder: 0, IsActive: true},
		{MenuID: m.ID, Name: "A", SortOrder: 1, DisplayOrder: 0, IsActive: true},
		{MenuID: m.ID, Name: "Z", SortOrder: 0, DisplayOrder: 1, IsActive: true},
	}
	for i := range seed {
		require.NoError(t, s.db.Create(&seed[i]).Error)
	}

	view, err := s.PublicMenu(ctx, m.ID)
	require.NoError(t, err)
	require.Len(t, view.Categories, 3)
	assert.Equal(t, "A", view.Categories[0].Name)
	assert.Equal(t, "B", view.Categories[1].Name)
	assert.Equal(t, "Z", view.Categories[2].Name)
}

func TestPublicMenuFiltersAndBucketsOthers(t *testing.T) {
	s := newTestService(t)
	ownerID, _ := onboard(t, s, "a@cafe.test", "Cafe X")
	ctx := context.Background()

	published := true
	m, err := s.CreateMenu(ctx, ownerID, MenuInput{Name: "Lunch", IsPublished: &published})
	require.NoError(t, err)
	mains, err := s.CreateCategory(ctx, ownerID, m.ID, CategoryInput{Name: "Mains"})
	require.NoError(t, err)
	hidden, err := s.CreateCategory(ctx, ownerID, m.ID, CategoryInput{Name: "Seasonal"})
	require.NoError(t, err)

	_, err = s.CreateItem(ctx, ownerID, m.ID, ItemInput{Name: "Burger", Price: 9.5, CategoryID: mains.ID})
	require.NoError(t, err)
	orphan, err := s.CreateItem(ctx, ownerID, m.ID, ItemInput{Name: "Pumpkin Soup", Price: 6, CategoryID: hidden.ID})
	require.NoError(t, err)
	gone, err := s.CreateItem(ctx, ownerID, m.ID, ItemInput{Name: "Pasta", Price: 11, CategoryID: mains.ID})
	require.NoError(t, err)

	// hide the seasonal category and take pasta off the menu
	off := false
	_, err = s.UpdateCategory(ctx, ownerID, m.ID, hidden.ID, CategoryPatch{IsActive: &off})
	require.NoError(t, err)
	_, err = s.PatchItem(ctx, ownerID, m.ID, gone.ID, ItemPatch{IsAvailable: &off})
	require.NoError(t, err)

	view, err := s.PublicMenu(ctx, m.ID)
	require.NoError(t, err)
	require.Len(t, view.Categories, 2)

	assert.Equal(t, "Mains", view.Categories[0].Name)
	require.Len(t, view.Categories[0].Items, 1)
	assert.Equal(t, "Burger", view.Categories[0].Items[0].Name)

	// items of the inactive category land in the trailing synthetic bucket
	other := view.Categories[1]
	assert.Equal(t, "Other Items", other.Name)
	require.Len(t, other.Items, 1)
	assert.Equal(t, orphan.ID, other.Items[0].ID)
	assert.Equal(t, 2, view.TotalItems)
}

func TestPublicMenuEmptyCategoryStaysVisible(t *testing.T) {
	s := newTestService(t)
	ownerID, _ := onboard(t, s, "a@cafe.test", "Cafe X")
	ctx := context.Background()

	published := true
	m, err := s.CreateMenu(ctx, ownerID, MenuInput{Name: "Lunch", IsPublished: &published})
	require.NoError(t, err)
	_, err = s.CreateCategory(ctx, ownerID, m.ID, CategoryInput{Name: "Mains"})
	require.NoError(t, err)

	view, err := s.PublicMenu(ctx, m.ID)
	require.NoError(t, err)
	require.Len(t, view.Categories, 1)
	assert.Empty(t, view.Categories[0].Items)
	assert.Zero(t, view.TotalItems)
}
