package handlers

import (
	"net/http"

	"qr-menu-api/billing"
	"qr-menu-api/config"
	"qr-menu-api/middleware"
	"qr-menu-api/models"

	"github.com/gin-gonic/gin"
)

// GetPlans returns the price table (public)
func GetPlans(c *gin.Context) {
	specs := billing.Plans()
	out := make([]gin.H, 0, len(specs))
	for _, p := range specs {
		out = append(out, gin.H{
			"plan":     p.Plan,
			"amount":   p.Amount,
			"currency": p.Currency,
			"months":   p.Months,
		})
	}
	c.JSON(http.StatusOK, gin.H{"plans": out})
}

type VerifyPaymentRequest struct {
	OrderID   string      `json:"order_id" binding:"required"`
	PaymentID string      `json:"payment_id" binding:"required"`
	Signature string      `json:"signature" binding:"required"`
	PlanType  models.Plan `json:"plan_type" binding:"required"`
}

// VerifyPayment checks the gateway signature and activates the plan
func VerifyPayment(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	var req VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	spec, err := billing.Lookup(req.PlanType)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown plan type"})
		return
	}

	restaurant, err := svc.GetRestaurant(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, err)
		return
	}

	if !billing.VerifySignature(req.OrderID, req.PaymentID, req.Signature, config.PaymentSecret) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Payment signature verification failed"})
		return
	}

	record, err := billSvc.Activate(c.Request.Context(), restaurant.ID, spec, req.OrderID, req.PaymentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Subscription activated",
		"plan":    spec.Plan,
		"payment": record,
	})
}

// GetPaymentHistory lists the caller's payments, newest first
func GetPaymentHistory(c *gin.Context) {
	restaurant, err := svc.GetRestaurant(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	records, err := billSvc.History(c.Request.Context(), restaurant.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(records), "payments": records})
}
