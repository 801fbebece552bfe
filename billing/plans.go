package billing

import (
	"errors"
	"time"

	"qr-menu-api/models"
)

// PlanSpec defines a purchasable subscription tier
type PlanSpec struct {
	Plan     models.Plan
	Amount   int64  // minor currency units
	Currency string
	Months   int
}

// plans is the authoritative price table
var plans = []PlanSpec{
	{Plan: models.PlanProMonthly, Amount: 29900, Currency: "INR", Months: 1},
	{Plan: models.PlanProYearly, Amount: 399900, Currency: "INR", Months: 12},
}

var ErrUnknownPlan = errors.New("unknown plan")

// Lookup resolves a purchasable plan by name. FREE is not purchasable.
func Lookup(plan models.Plan) (PlanSpec, error) {
	for _, p := range plans {
		if p.Plan == plan {
			return p, nil
		}
	}
	return PlanSpec{}, ErrUnknownPlan
}

// Plans returns the full price table for the public info endpoint.
func Plans() []PlanSpec {
	out := make([]PlanSpec, len(plans))
	copy(out, plans)
	return out
}

// Period computes the subscription window starting now.
func (p PlanSpec) Period(now time.Time) (start, end time.Time) {
	return now, now.AddDate(0, p.Months, 0)
}
