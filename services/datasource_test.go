package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLiveAPISourceWrappedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tenants", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"uuid":"t1","room_uuid":"A","amount":"450"}]}`))
	}))
	defer srv.Close()

	source := NewLiveAPISource(srv.URL, "", zap.NewNop())
	raws, err := source.FetchTenants(context.Background())
	require.NoError(t, err)
	require.Len(t, raws, 1)

	tenant := NormalizeTenant(raws[0])
	assert.Equal(t, "t1", tenant.UUID)
	assert.Equal(t, "A", tenant.RoomTypeRef)
	assert.InDelta(t, 450, tenant.RentAmount, 1e-9)
}

func TestLiveAPISourceBareArrayPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"uuid":"rt1","number_in_room":2,"number_of_rooms":3}]`))
	}))
	defer srv.Close()

	source := NewLiveAPISource(srv.URL, "", zap.NewNop())
	raws, err := source.FetchRoomTypes(context.Background())
	require.NoError(t, err)
	require.Len(t, raws, 1)

	rt := NormalizeRoomType(raws[0])
	assert.Equal(t, "rt1", rt.UUID)
	assert.Equal(t, 6, rt.TotalCapacity())
}

func TestLiveAPISourceUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	source := NewLiveAPISource(srv.URL, "", zap.NewNop())
	_, err := source.FetchTenants(context.Background())
	assert.Error(t, err)
}

func TestStaticSampleSourceNormalizesCleanly(t *testing.T) {
	source := StaticSampleSource{}
	ctx := context.Background()

	rawTypes, err := source.FetchRoomTypes(ctx)
	require.NoError(t, err)
	rawTenants, err := source.FetchTenants(ctx)
	require.NoError(t, err)

	types := make(map[string]bool)
	for _, raw := range rawTypes {
		rt := NormalizeRoomType(raw)
		require.NotEmpty(t, rt.UUID)
		assert.Equal(t, rt.RoomCount, rt.MaleRoomCount+rt.FemaleRoomCount)
		types[rt.UUID] = true
	}

	// Every sample tenant resolves to a sample room type through some alias.
	for _, raw := range rawTenants {
		tenant := NormalizeTenant(raw)
		assert.True(t, types[tenant.RoomTypeRef], "tenant %s has ref %s", tenant.UUID, tenant.RoomTypeRef)
		assert.True(t, tenant.IsActive)
		assert.Greater(t, tenant.RentAmount, 0.0)
	}
}
