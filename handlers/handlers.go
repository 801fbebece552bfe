package handlers

import (
	"errors"
	"net/http"

	"qr-menu-api/billing"
	"qr-menu-api/catalog"
	"qr-menu-api/external"

	"github.com/gin-gonic/gin"
)

var (
	svc     *catalog.Service
	billSvc *billing.Service
	mailer  external.Mailer     = external.LogMailer{}
	assets  external.AssetStore = external.LocalAssetStore{}
)

// Init wires the handler package to its services and collaborators.
// Called once from main, and from tests with throwaway stores.
func Init(s *catalog.Service, b *billing.Service, m external.Mailer, a external.AssetStore) {
	svc = s
	billSvc = b
	if m != nil {
		mailer = m
	}
	if a != nil {
		assets = a
	}
}

// respondError maps catalog error kinds to HTTP statuses. Anything
// unclassified is an internal failure with a generic message.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, catalog.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, catalog.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
	}
}
