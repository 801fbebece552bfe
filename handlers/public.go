package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetPublicMenu renders a published menu for an unauthenticated visitor.
// This backs the QR-code URL shape /menu/:menuId.
func GetPublicMenu(c *gin.Context) {
	view, err := svc.PublicMenu(c.Request.Context(), c.Param("menuId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
