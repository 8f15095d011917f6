package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// TenantSource supplies raw tenant and room-catalog records for syncing. Two
// implementations exist: LiveAPISource against the legacy hostel API and
// StaticSampleSource with fixed demo data. Raw records go through the
// normalization boundary before anything else touches them.
type TenantSource interface {
	FetchTenants(ctx context.Context) ([]map[string]interface{}, error)
	FetchRoomTypes(ctx context.Context) ([]map[string]interface{}, error)
}

// LiveAPISource pulls from the legacy upstream REST API. The upstream wraps
// list payloads in {"data": [...]} but has been observed returning bare
// arrays too, so both shapes are accepted.
type LiveAPISource struct {
	client *resty.Client
	logger *zap.Logger
}

func NewLiveAPISource(baseURL, apiToken string, logger *zap.Logger) *LiveAPISource {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(15 * time.Second).
		SetRetryCount(3).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(5 * time.Second).
		SetHeader("Accept", "application/json")
	if apiToken != "" {
		client.SetAuthToken(apiToken)
	}
	return &LiveAPISource{client: client, logger: logger}
}

func (s *LiveAPISource) FetchTenants(ctx context.Context) ([]map[string]interface{}, error) {
	return s.fetchList(ctx, "/api/tenants")
}

func (s *LiveAPISource) FetchRoomTypes(ctx context.Context) ([]map[string]interface{}, error) {
	return s.fetchList(ctx, "/api/room-types")
}

func (s *LiveAPISource) fetchList(ctx context.Context, path string) ([]map[string]interface{}, error) {
	resp, err := s.client.R().SetContext(ctx).Get(path)
	if err != nil {
		return nil, fmt.Errorf("upstream %s: %w", path, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("upstream %s: status %d", path, resp.StatusCode())
	}

	var wrapped struct {
		Data []map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(resp.Body(), &wrapped); err == nil && wrapped.Data != nil {
		return wrapped.Data, nil
	}

	// Bare-array fallback.
	var bare []map[string]interface{}
	if err := json.Unmarshal(resp.Body(), &bare); err != nil {
		s.logger.Warn("upstream payload in unexpected shape", zap.String("path", path))
		return []map[string]interface{}{}, nil
	}
	return bare, nil
}

// StaticSampleSource serves deterministic demo data so the dashboard works
// without an upstream. Same shape as the live feed, aliases included.
type StaticSampleSource struct{}

func (StaticSampleSource) FetchTenants(context.Context) ([]map[string]interface{}, error) {
	return []map[string]interface{}{
		{
			"uuid": "sample-tenant-1", "full_name": "Ama Mensah",
			"room_uuid": "sample-type-4p", "amount": "450",
			"date_created": "2026-08-12", "is_active": true,
		},
		{
			"uuid": "sample-tenant-2", "full_name": "Kofi Boateng",
			"room": "sample-type-4p", "amount": 450.0,
			"date_created": "2026-07-02", "is_active": true,
		},
		{
			"uuid": "sample-tenant-3", "full_name": "Esi Owusu",
			"roomUuid": "sample-type-2p", "amount": 700,
			"date_created": "2026-08-20", "is_active": true,
		},
	}, nil
}

func (StaticSampleSource) FetchRoomTypes(context.Context) ([]map[string]interface{}, error) {
	return []map[string]interface{}{
		{
			"uuid": "sample-type-2p", "number_in_room": 2, "number_of_rooms": 3,
			"price": 700, "amenities": `["WiFi","Desk"]`,
			"gender": map[string]interface{}{"male": 2, "female": 1},
		},
		{
			"uuid": "sample-type-4p", "number_in_room": 4, "number_of_rooms": 5,
			"price": 450, "amenities": []interface{}{"WiFi", "Laundry"},
		},
	}, nil
}
