package services

import (
	"time"

	"hostel-backend/models"
)

// newTenantWindow is the trailing window behind "now" that counts as new.
const newTenantWindow = 30 * 24 * time.Hour

// trendWeeks is how many week buckets the dashboard trend series carries.
const trendWeeks = 7

// TrendPoint is one week bucket of the dashboard series. Occupancy is
// cumulative to the bucket's end; Revenue covers only that week. The two
// series intentionally use different inclusion rules: occupancy is a running
// headcount, revenue is income per period.
type TrendPoint struct {
	WeekEnd   time.Time `json:"week_end"`
	Label     string    `json:"label"`
	Occupancy int       `json:"occupancy"`
	Revenue   float64   `json:"revenue"`
}

// TotalRevenue sums rent over active tenants, unless a payment feed is
// present, in which case the payment total wins outright (failed payments
// excluded). Pure; nil slices are empty; negative or missing amounts were
// already zeroed at the ingestion boundary.
func TotalRevenue(tenants []models.Tenant, payments []models.Payment) float64 {
	if len(payments) > 0 {
		total := 0.0
		for _, p := range payments {
			if p.Status == models.PaymentFailed {
				continue
			}
			total += p.Amount
		}
		return total
	}

	total := 0.0
	for _, t := range tenants {
		if t.IsActive {
			total += t.RentAmount
		}
	}
	return total
}

// NewTenantCount counts active tenants whose check-in falls inside the
// trailing 30-day window ending at now. Tenants without a check-in date are
// never "new".
func NewTenantCount(tenants []models.Tenant, now time.Time) int {
	cutoff := now.Add(-newTenantWindow)
	n := 0
	for _, t := range tenants {
		if !t.IsActive || t.CheckInDate == nil {
			continue
		}
		if d := *t.CheckInDate; !d.Before(cutoff) && !d.After(now) {
			n++
		}
	}
	return n
}

// WeeklyTrends builds the 7 trailing week buckets ending at now. Occupancy per
// bucket is every active tenant checked in on or before the bucket's end;
// revenue per bucket is the income dated inside that week only. Payments feed
// revenue when present, otherwise tenant rent dated by check-in does.
func WeeklyTrends(tenants []models.Tenant, payments []models.Payment, now time.Time) []TrendPoint {
	points := make([]TrendPoint, 0, trendWeeks)
	for i := trendWeeks - 1; i >= 0; i-- {
		weekEnd := now.AddDate(0, 0, -7*i)
		weekStart := weekEnd.AddDate(0, 0, -7)

		occupancy := 0
		for _, t := range tenants {
			if t.IsActive && t.CheckInDate != nil && !t.CheckInDate.After(weekEnd) {
				occupancy++
			}
		}

		revenue := 0.0
		if len(payments) > 0 {
			for _, p := range payments {
				if p.Status == models.PaymentFailed || p.PaidAt == nil {
					continue
				}
				if p.PaidAt.After(weekStart) && !p.PaidAt.After(weekEnd) {
					revenue += p.Amount
				}
			}
		} else {
			for _, t := range tenants {
				if !t.IsActive || t.CheckInDate == nil {
					continue
				}
				if t.CheckInDate.After(weekStart) && !t.CheckInDate.After(weekEnd) {
					revenue += t.RentAmount
				}
			}
		}

		points = append(points, TrendPoint{
			WeekEnd:   weekEnd,
			Label:     weekEnd.Format("Jan 2"),
			Occupancy: occupancy,
			Revenue:   revenue,
		})
	}
	return points
}
