package handlers

import (
	"net/http"

	"qr-menu-api/catalog"
	"qr-menu-api/middleware"

	"github.com/gin-gonic/gin"
)

type ItemRequest struct {
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description"`
	Price         float64  `json:"price" binding:"min=0"`
	CategoryID    string   `json:"category_id" binding:"required"`
	EstimatedTime *int     `json:"estimated_time_minutes"`
	Ingredients   []string `json:"ingredients"`
	IsVegetarian  bool     `json:"is_vegetarian"`
	IsVegan       bool     `json:"is_vegan"`
	IsGlutenFree  bool     `json:"is_gluten_free"`
	IsSpicy       bool     `json:"is_spicy"`
	IsAvailable   *bool    `json:"is_available"`
}

func (r ItemRequest) input() catalog.ItemInput {
	return catalog.ItemInput{
		Name:          r.Name,
		Description:   r.Description,
		Price:         r.Price,
		CategoryID:    r.CategoryID,
		EstimatedTime: r.EstimatedTime,
		Ingredients:   r.Ingredients,
		IsVegetarian:  r.IsVegetarian,
		IsVegan:       r.IsVegan,
		IsGlutenFree:  r.IsGlutenFree,
		IsSpicy:       r.IsSpicy,
		IsAvailable:   r.IsAvailable,
	}
}

// CreateItem adds a new item to a menu
func CreateItem(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	var req ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := svc.CreateItem(c.Request.Context(), ownerID, c.Param("menuId"), req.input())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Item created", "item": item})
}

// ListItems returns a menu's items in dashboard order
func ListItems(c *gin.Context) {
	items, err := svc.ListItems(c.Request.Context(), middleware.GetUserID(c), c.Param("menuId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(items), "items": items})
}

// UpdateItem replaces an item's editable fields
func UpdateItem(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	var req ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := svc.UpdateItem(c.Request.Context(), ownerID, c.Param("menuId"), c.Param("itemId"), req.input())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item updated", "item": item})
}

type PatchItemRequest struct {
	IsAvailable  *bool `json:"is_available"`
	SortOrder    *int  `json:"sort_order"`
	DisplayOrder *int  `json:"display_order"`
}

// PatchItem flips availability or reorders a single item
func PatchItem(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	var req PatchItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := svc.PatchItem(c.Request.Context(), ownerID, c.Param("menuId"), c.Param("itemId"), catalog.ItemPatch{
		IsAvailable:  req.IsAvailable,
		SortOrder:    req.SortOrder,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item updated", "item": item})
}

// DeleteItem removes an item
func DeleteItem(c *gin.Context) {
	err := svc.DeleteItem(c.Request.Context(), middleware.GetUserID(c), c.Param("menuId"), c.Param("itemId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item deleted"})
}
