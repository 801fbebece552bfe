package handlers

import (
	"net/http"

	"qr-menu-api/catalog"
	"qr-menu-api/middleware"

	"github.com/gin-gonic/gin"
)

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

// CreateCategory appends a category to a menu
func CreateCategory(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := svc.CreateCategory(c.Request.Context(), ownerID, c.Param("menuId"), catalog.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Category created", "category": category})
}

// ListCategories returns a menu's categories
func ListCategories(c *gin.Context) {
	categories, err := svc.ListCategories(c.Request.Context(), middleware.GetUserID(c), c.Param("menuId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(categories), "categories": categories})
}

type UpdateCategoryRequest struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	DisplayOrder *int    `json:"display_order"`
	IsActive     *bool   `json:"is_active"`
}

// UpdateCategory applies a partial update
func UpdateCategory(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := svc.UpdateCategory(c.Request.Context(), ownerID, c.Param("menuId"), c.Param("categoryId"), catalog.CategoryPatch{
		Name:         req.Name,
		Description:  req.Description,
		DisplayOrder: req.DisplayOrder,
		IsActive:     req.IsActive,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category updated", "category": category})
}

// DeleteCategory removes a category and all its items
func DeleteCategory(c *gin.Context) {
	removed, err := svc.DeleteCategory(c.Request.Context(), middleware.GetUserID(c), c.Param("menuId"), c.Param("categoryId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":          "Category deleted",
		"deleted_items":    len(removed),
		"deleted_item_ids": removed,
	})
}
