package billing

import (
	"context"
	"time"

	"qr-menu-api/models"

	"gorm.io/gorm"
)

// Service applies verified payments to a restaurant's subscription.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Activate marks the plan active from now and appends a payment-history
// row, in one transaction. Callers verify the gateway signature first.
func (s *Service) Activate(ctx context.Context, restaurantID string, spec PlanSpec, orderID, paymentID string) (*models.PaymentRecord, error) {
	start, end := spec.Period(time.Now())
	record := &models.PaymentRecord{
		RestaurantID: restaurantID,
		OrderID:      orderID,
		PaymentID:    paymentID,
		Plan:         spec.Plan,
		Amount:       spec.Amount,
		Currency:     spec.Currency,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Restaurant{}).Where("id = ?", restaurantID).
			Updates(map[string]interface{}{
				"plan":           spec.Plan,
				"plan_starts_at": start,
				"plan_ends_at":   end,
			}).Error; err != nil {
			return err
		}
		return tx.Create(record).Error
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// History lists the restaurant's payments, newest first.
func (s *Service) History(ctx context.Context, restaurantID string) ([]models.PaymentRecord, error) {
	var records []models.PaymentRecord
	err := s.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("created_at desc").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
