package handlers

import (
	"net/http"

	"qr-menu-api/catalog"
	"qr-menu-api/middleware"

	"github.com/gin-gonic/gin"
)

type CreateMenuRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	Slug         string `json:"slug"`
	IsPublished  *bool  `json:"is_published"`
	IsActive     *bool  `json:"is_active"`
	DisplayOrder *int   `json:"display_order"`
}

// CreateMenu creates a menu under the caller's restaurant
func CreateMenu(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	var req CreateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	menu, err := svc.CreateMenu(c.Request.Context(), ownerID, catalog.MenuInput{
		Name:         req.Name,
		Description:  req.Description,
		Slug:         req.Slug,
		IsPublished:  req.IsPublished,
		IsActive:     req.IsActive,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Menu created", "menu": menu})
}

// ListMenus returns the caller's menus
func ListMenus(c *gin.Context) {
	menus, err := svc.ListMenus(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(menus), "menus": menus})
}

// GetMenu returns one of the caller's menus
func GetMenu(c *gin.Context) {
	menu, err := svc.GetMenu(c.Request.Context(), middleware.GetUserID(c), c.Param("menuId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"menu": menu})
}

type UpdateMenuRequest struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	Slug         *string `json:"slug"`
	IsPublished  *bool   `json:"is_published"`
	IsActive     *bool   `json:"is_active"`
	DisplayOrder *int    `json:"display_order"`
}

// UpdateMenu applies a partial update, including publish/unpublish
func UpdateMenu(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	var req UpdateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	menu, err := svc.UpdateMenu(c.Request.Context(), ownerID, c.Param("menuId"), catalog.MenuPatch{
		Name:         req.Name,
		Description:  req.Description,
		Slug:         req.Slug,
		IsPublished:  req.IsPublished,
		IsActive:     req.IsActive,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu updated", "menu": menu})
}

// DeleteMenu deletes a menu and everything under it
func DeleteMenu(c *gin.Context) {
	err := svc.DeleteMenu(c.Request.Context(), middleware.GetUserID(c), c.Param("menuId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu deleted"})
}
