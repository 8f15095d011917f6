package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"hostel-backend/models"
)

const (
	summaryCacheKey = "dashboard:summary"
	summaryCacheTTL = time.Minute
)

// DashboardSummary is the headline-card payload. ActiveTenants counts every
// active tenant whether or not its room reference matched, which is why it
// can exceed the sum of per-type occupied counts.
type DashboardSummary struct {
	ActiveTenants int     `json:"active_tenants"`
	TotalCapacity int     `json:"total_capacity"`
	OccupancyRate int     `json:"occupancy_rate"`
	TotalRevenue  float64 `json:"total_revenue"`
	NewTenants    int     `json:"new_tenants"`
	ComputedAt    string  `json:"computed_at"`
}

// DashboardService glues snapshots from the database to the pure
// reconciliation and analytics functions, with a short-lived cache in front
// of the summary cards.
type DashboardService struct {
	DB     *gorm.DB
	Cache  SnapshotRepository
	Logger *zap.Logger
	Now    func() time.Time
}

func NewDashboardService(db *gorm.DB, cache SnapshotRepository, logger *zap.Logger) *DashboardService {
	return &DashboardService{DB: db, Cache: cache, Logger: logger, Now: time.Now}
}

// Occupancy returns the full per-type + aggregate reconciliation, always
// freshly computed from current snapshots.
func (s *DashboardService) Occupancy() (OccupancySummary, error) {
	catalog, roster, _, err := s.snapshots(false)
	if err != nil {
		return OccupancySummary{}, err
	}
	return ComputeOccupancy(catalog, roster), nil
}

// Summary serves the headline cards, from cache when fresh.
func (s *DashboardService) Summary(ctx context.Context) (DashboardSummary, error) {
	var cached DashboardSummary
	if err := s.Cache.Load(ctx, summaryCacheKey, &cached); err == nil {
		return cached, nil
	} else if !errors.Is(err, ErrNotCached) {
		s.Logger.Warn("summary cache read failed", zap.Error(err))
	}

	catalog, roster, payments, err := s.snapshots(true)
	if err != nil {
		return DashboardSummary{}, err
	}

	now := s.Now()
	occ := ComputeOccupancy(catalog, roster)
	summary := DashboardSummary{
		ActiveTenants: occ.Aggregate.OccupiedCount,
		TotalCapacity: occ.Aggregate.TotalCapacity,
		OccupancyRate: occ.Aggregate.Clamped().OccupancyRate,
		TotalRevenue:  TotalRevenue(roster, payments),
		NewTenants:    NewTenantCount(roster, now),
		ComputedAt:    now.UTC().Format(time.RFC3339),
	}

	if err := s.Cache.Save(ctx, summaryCacheKey, summary, summaryCacheTTL); err != nil {
		s.Logger.Warn("summary cache write failed", zap.Error(err))
	}
	return summary, nil
}

// Trends returns the 7-week occupancy/revenue series.
func (s *DashboardService) Trends() ([]TrendPoint, error) {
	_, roster, payments, err := s.snapshots(true)
	if err != nil {
		return nil, err
	}
	return WeeklyTrends(roster, payments, s.Now()), nil
}

// InvalidateSummary drops the cached cards after a mutation.
func (s *DashboardService) InvalidateSummary(ctx context.Context) {
	if err := s.Cache.Clear(ctx, summaryCacheKey); err != nil {
		s.Logger.Warn("summary cache clear failed", zap.Error(err))
	}
}

func (s *DashboardService) snapshots(withPayments bool) ([]models.RoomType, []models.Tenant, []models.Payment, error) {
	var catalog []models.RoomType
	if err := s.DB.Find(&catalog).Error; err != nil {
		return nil, nil, nil, fmt.Errorf("load catalog: %w", err)
	}
	var roster []models.Tenant
	if err := s.DB.Find(&roster).Error; err != nil {
		return nil, nil, nil, fmt.Errorf("load roster: %w", err)
	}
	var payments []models.Payment
	if withPayments {
		if err := s.DB.Find(&payments).Error; err != nil {
			return nil, nil, nil, fmt.Errorf("load payments: %w", err)
		}
	}
	return catalog, roster, payments, nil
}
