package handlers

import (
	"net/http"

	"qr-menu-api/catalog"
	"qr-menu-api/middleware"

	"github.com/gin-gonic/gin"
)

type CreateRestaurantRequest struct {
	Name        string   `json:"name" binding:"required"`
	Cuisine     string   `json:"cuisine"`
	Address     string   `json:"address"`
	Phone       string   `json:"phone"`
	Email       string   `json:"email"`
	Description string   `json:"description"`
	ThemeColor  string   `json:"theme_color"`
	Rating      *float64 `json:"rating"`
}

// CreateRestaurant onboards the caller's restaurant profile
func CreateRestaurant(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	var req CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	restaurant, err := svc.CreateRestaurant(c.Request.Context(), ownerID, catalog.RestaurantInput{
		Name:        req.Name,
		Cuisine:     req.Cuisine,
		Address:     req.Address,
		Phone:       req.Phone,
		Email:       req.Email,
		Description: req.Description,
		ThemeColor:  req.ThemeColor,
		Rating:      req.Rating,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Restaurant created", "restaurant": restaurant})
}

// GetMyRestaurant fetches the restaurant owned by the logged-in user
func GetMyRestaurant(c *gin.Context) {
	restaurant, err := svc.GetRestaurant(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

type UpdateRestaurantRequest struct {
	Name        *string `json:"name"`
	Cuisine     *string `json:"cuisine"`
	Address     *string `json:"address"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	Description *string `json:"description"`
	ThemeColor  *string `json:"theme_color"`
	IsActive    *bool   `json:"is_active"`
}

// UpdateRestaurant applies a partial update to the caller's restaurant
func UpdateRestaurant(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	var req UpdateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	restaurant, err := svc.UpdateRestaurant(c.Request.Context(), ownerID, catalog.RestaurantPatch{
		Name:        req.Name,
		Cuisine:     req.Cuisine,
		Address:     req.Address,
		Phone:       req.Phone,
		Email:       req.Email,
		Description: req.Description,
		ThemeColor:  req.ThemeColor,
		IsActive:    req.IsActive,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Restaurant updated", "restaurant": restaurant})
}

// UploadLogo stores the restaurant logo through the asset collaborator and
// keeps only the returned URL and file id.
func UploadLogo(c *gin.Context) {
	ownerID := middleware.GetUserID(c)

	data, err := c.GetRawData()
	if err != nil || len(data) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image body is required"})
		return
	}
	name := c.Query("filename")
	if name == "" {
		name = "logo"
	}

	url, fileID, err := assets.Upload(name, data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
		return
	}

	restaurant, err := svc.UpdateRestaurant(c.Request.Context(), ownerID, catalog.RestaurantPatch{
		LogoURL:    &url,
		LogoFileID: &fileID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logo uploaded", "restaurant": restaurant})
}
