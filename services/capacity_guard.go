package services

import "hostel-backend/models"

// MinimumRoomsRequired is the floor below which the room count of rt cannot be
// edited while tenants remain assigned: ceil(occupied / capacityPerRoom).
// Returns 0 when the type has no id, no per-room capacity, or no tenants.
func MinimumRoomsRequired(rt models.RoomType, roster []models.Tenant) int {
	if rt.UUID == "" || rt.CapacityPerRoom <= 0 {
		return 0
	}
	occupied := countAssigned(rt.UUID, roster)
	if occupied == 0 {
		return 0
	}
	return (occupied + rt.CapacityPerRoom - 1) / rt.CapacityPerRoom
}

// CanReduceRoomCount gates room-count edits at the boundary: a proposed count
// below the floor must be rejected before it reaches the data model.
func CanReduceRoomCount(rt models.RoomType, proposedCount int, roster []models.Tenant) bool {
	return proposedCount >= MinimumRoomsRequired(rt, roster)
}

// HasOccupants reports whether any active tenant is still assigned to rt.
// Deleting an occupied room type orphans those tenants' occupancy, so the
// delete handler refuses unless explicitly forced.
func HasOccupants(rt models.RoomType, roster []models.Tenant) bool {
	return rt.UUID != "" && countAssigned(rt.UUID, roster) > 0
}

func countAssigned(uuid string, roster []models.Tenant) int {
	n := 0
	for _, t := range roster {
		if t.IsActive && t.RoomTypeRef == uuid {
			n++
		}
	}
	return n
}
