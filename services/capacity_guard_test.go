package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hostel-backend/models"
)

func rosterOf(ref string, n int) []models.Tenant {
	roster := make([]models.Tenant, n)
	for i := range roster {
		roster[i] = models.Tenant{RoomTypeRef: ref, IsActive: true}
	}
	return roster
}

func TestMinimumRoomsRequired(t *testing.T) {
	rt := models.RoomType{UUID: "A", CapacityPerRoom: 2, RoomCount: 5}

	assert.Equal(t, 3, MinimumRoomsRequired(rt, rosterOf("A", 5)), "ceil(5/2)")
	assert.Equal(t, 2, MinimumRoomsRequired(rt, rosterOf("A", 4)))
	assert.Equal(t, 1, MinimumRoomsRequired(rt, rosterOf("A", 1)))
	assert.Equal(t, 0, MinimumRoomsRequired(rt, nil))
	assert.Equal(t, 0, MinimumRoomsRequired(rt, rosterOf("B", 10)), "other types don't count")
}

func TestMinimumRoomsRequiredDegenerateTypes(t *testing.T) {
	roster := rosterOf("A", 3)

	assert.Equal(t, 0, MinimumRoomsRequired(models.RoomType{CapacityPerRoom: 2}, roster), "no id")
	assert.Equal(t, 0, MinimumRoomsRequired(models.RoomType{UUID: "A"}, roster), "no capacity")
	assert.Equal(t, 0, MinimumRoomsRequired(models.RoomType{UUID: "A", CapacityPerRoom: -1}, roster))
}

func TestMinimumRoomsIgnoresInactive(t *testing.T) {
	rt := models.RoomType{UUID: "A", CapacityPerRoom: 2}
	roster := append(rosterOf("A", 2), models.Tenant{RoomTypeRef: "A", IsActive: false})
	assert.Equal(t, 1, MinimumRoomsRequired(rt, roster))
}

func TestCanReduceRoomCount(t *testing.T) {
	rt := models.RoomType{UUID: "A", CapacityPerRoom: 2, RoomCount: 5}
	roster := rosterOf("A", 5)

	assert.False(t, CanReduceRoomCount(rt, 2, roster))
	assert.True(t, CanReduceRoomCount(rt, 3, roster))
	assert.True(t, CanReduceRoomCount(rt, 10, roster))
	assert.True(t, CanReduceRoomCount(rt, 0, nil))
}

func TestHasOccupants(t *testing.T) {
	rt := models.RoomType{UUID: "A", CapacityPerRoom: 2}

	assert.True(t, HasOccupants(rt, rosterOf("A", 1)))
	assert.False(t, HasOccupants(rt, rosterOf("B", 3)))
	assert.False(t, HasOccupants(rt, nil))
	assert.False(t, HasOccupants(models.RoomType{}, rosterOf("", 3)), "empty id never matches")
}
