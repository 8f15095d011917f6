package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"hostel-backend/models"
)

const settingsCacheKey = "settings:hostel"

// SettingsService owns the singleton hostel profile row. Reads prefer the
// key-value mirror so the dashboard header does not hit MySQL on every
// render; the database row stays the source of truth.
type SettingsService struct {
	DB     *gorm.DB
	Cache  SnapshotRepository
	Logger *zap.Logger
}

func NewSettingsService(db *gorm.DB, cache SnapshotRepository, logger *zap.Logger) *SettingsService {
	return &SettingsService{DB: db, Cache: cache, Logger: logger}
}

func (s *SettingsService) Get(ctx context.Context) (models.HostelSetting, error) {
	var cached models.HostelSetting
	if err := s.Cache.Load(ctx, settingsCacheKey, &cached); err == nil {
		return cached, nil
	}

	var setting models.HostelSetting
	if err := s.DB.First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.HostelSetting{}, nil
		}
		return models.HostelSetting{}, fmt.Errorf("load hostel settings: %w", err)
	}

	if err := s.Cache.Save(ctx, settingsCacheKey, setting, 0); err != nil {
		s.Logger.Warn("settings cache write failed", zap.Error(err))
	}
	return setting, nil
}

func (s *SettingsService) Update(ctx context.Context, payload models.HostelSetting) (models.HostelSetting, error) {
	var setting models.HostelSetting
	err := s.DB.First(&setting).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.HostelSetting{}, fmt.Errorf("load hostel settings: %w", err)
	}

	setting.Name = payload.Name
	setting.Address = payload.Address
	setting.Phone = payload.Phone
	setting.Email = payload.Email
	setting.Website = payload.Website
	setting.Logo = payload.Logo

	if err := s.DB.Save(&setting).Error; err != nil {
		return models.HostelSetting{}, fmt.Errorf("save hostel settings: %w", err)
	}

	if err := s.Cache.Save(ctx, settingsCacheKey, setting, 0); err != nil {
		s.Logger.Warn("settings cache write failed", zap.Error(err))
	}
	return setting, nil
}
