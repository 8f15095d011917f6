package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hostel-backend/models"
)

// TenantService reads the roster and keeps it in sync with the upstream feed.
type TenantService struct {
	DB     *gorm.DB
	Source TenantSource
	Logger *zap.Logger
}

func NewTenantService(db *gorm.DB, source TenantSource, logger *zap.Logger) *TenantService {
	return &TenantService{DB: db, Source: source, Logger: logger}
}

func (s *TenantService) GetAll(activeOnly bool) ([]models.Tenant, error) {
	var tenants []models.Tenant
	q := s.DB
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	err := q.Find(&tenants).Error
	return tenants, err
}

func (s *TenantService) Create(t models.Tenant) (models.Tenant, error) {
	if t.UUID == "" {
		t.UUID = uuid.NewString()
	}
	if err := s.DB.Create(&t).Error; err != nil {
		return models.Tenant{}, fmt.Errorf("create tenant: %w", err)
	}
	return t, nil
}

// Sync pulls the tenant feed from the configured source, normalizes each raw
// record, and upserts by uuid. Records without a uuid are skipped, not fatal;
// the unmatched-room case is left as-is for the reconciler to classify. When
// a record arrives with no room reference under any alias, the positional
// label fallback is consulted against the current catalog.
func (s *TenantService) Sync(ctx context.Context) (int, error) {
	if s.Source == nil {
		return 0, fmt.Errorf("tenant source not configured")
	}

	rawTenants, err := s.Source.FetchTenants(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch tenants: %w", err)
	}

	var catalog []models.RoomType
	if err := s.DB.Find(&catalog).Error; err != nil {
		return 0, fmt.Errorf("load catalog: %w", err)
	}

	synced := 0
	for _, raw := range rawTenants {
		t := NormalizeTenant(raw)
		if t.UUID == "" {
			s.Logger.Warn("skipping tenant record without uuid")
			continue
		}
		if t.RoomTypeRef == "" {
			t.RoomTypeRef = RoomRefFromPositionalLabel(stringFromMap(raw, "room_label", "room_info"), catalog)
		}

		err := s.DB.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "uuid"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"full_name", "email", "phone", "room_type_ref",
				"rent_amount", "check_in_date", "is_active",
			}),
		}).Create(&t).Error
		if err != nil {
			s.Logger.Warn("tenant upsert failed", zap.String("uuid", t.UUID), zap.Error(err))
			continue
		}
		synced++
	}

	s.Logger.Info("tenant sync complete",
		zap.Int("received", len(rawTenants)),
		zap.Int("synced", synced),
	)
	return synced, nil
}
