package services

import (
	"math"

	"hostel-backend/models"
)

// OccupancyResult is the derived occupancy picture for one room type (or for
// the whole hostel when used as an aggregate). OccupiedCount is the raw tenant
// count and may exceed TotalCapacity when the manager under-configured rooms;
// callers that render it should go through Clamped.
type OccupancyResult struct {
	TotalCapacity  int `json:"total_capacity"`
	OccupiedCount  int `json:"occupied_count"`
	AvailableCount int `json:"available_count"`
	OccupancyRate  int `json:"occupancy_rate"`
}

// Clamped returns a copy safe for display: occupancy capped at capacity and
// the rate capped at 100. The raw result is kept for diagnostics.
func (r OccupancyResult) Clamped() OccupancyResult {
	out := r
	if out.TotalCapacity > 0 && out.OccupiedCount > out.TotalCapacity {
		out.OccupiedCount = out.TotalCapacity
	}
	if out.OccupancyRate > 100 {
		out.OccupancyRate = 100
	}
	return out
}

// OverCapacity reports whether more tenants are assigned than beds exist.
func (r OccupancyResult) OverCapacity() bool {
	return r.OccupiedCount > r.TotalCapacity
}

// OccupancySummary is the full reconciliation output: one result per room
// type keyed by its UUID, plus the hostel-wide aggregate. UnmatchedCount is
// the number of active tenants whose room reference matched no catalog entry;
// they are absent from every PerType bucket but included in Aggregate.
type OccupancySummary struct {
	PerType        map[string]OccupancyResult `json:"per_type"`
	Aggregate      OccupancyResult            `json:"aggregate"`
	UnmatchedCount int                        `json:"unmatched_count"`
}

// ComputeOccupancy maps the tenant roster onto the room catalog. Pure: it
// never mutates its inputs and is independent of the order of either slice.
// Nil slices are treated as empty. Only active tenants count.
func ComputeOccupancy(catalog []models.RoomType, roster []models.Tenant) OccupancySummary {
	summary := OccupancySummary{
		PerType: make(map[string]OccupancyResult, len(catalog)),
	}

	counts := make(map[string]int, len(catalog))
	for _, rt := range catalog {
		if rt.UUID == "" {
			continue
		}
		counts[rt.UUID] = 0
	}

	activeTotal := 0
	for _, t := range roster {
		if !t.IsActive {
			continue
		}
		activeTotal++
		if n, ok := counts[t.RoomTypeRef]; ok {
			counts[t.RoomTypeRef] = n + 1
		} else {
			// Unmatched reference: excluded from per-type buckets but still
			// part of the hostel-wide tenant total.
			summary.UnmatchedCount++
		}
	}

	capacityTotal := 0
	for _, rt := range catalog {
		if rt.UUID == "" {
			continue
		}
		capacity := rt.TotalCapacity()
		capacityTotal += capacity
		summary.PerType[rt.UUID] = newOccupancyResult(capacity, counts[rt.UUID])
	}

	summary.Aggregate = newOccupancyResult(capacityTotal, activeTotal)
	return summary
}

func newOccupancyResult(capacity, occupied int) OccupancyResult {
	available := capacity - occupied
	if available < 0 {
		available = 0
	}
	return OccupancyResult{
		TotalCapacity:  capacity,
		OccupiedCount:  occupied,
		AvailableCount: available,
		OccupancyRate:  occupancyRate(occupied, capacity),
	}
}

// occupancyRate rounds half-up to a whole percentage; zero capacity yields 0.
func occupancyRate(occupied, capacity int) int {
	if capacity <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(occupied) / float64(capacity)))
}
