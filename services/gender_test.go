package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hostel-backend/models"
)

func TestReconcileGenderSinglePolicies(t *testing.T) {
	male := ReconcileGender(models.RoomType{
		GenderPolicy: models.GenderMale, RoomCount: 5, MaleRoomCount: 1, FemaleRoomCount: 9,
	}, EditRoomCount)
	assert.Equal(t, 5, male.MaleRoomCount)
	assert.Equal(t, 0, male.FemaleRoomCount)

	female := ReconcileGender(models.RoomType{
		GenderPolicy: models.GenderFemale, RoomCount: 3, MaleRoomCount: 3,
	}, EditMaleCount)
	assert.Equal(t, 0, female.MaleRoomCount)
	assert.Equal(t, 3, female.FemaleRoomCount)
}

func TestReconcileGenderMixedAutoSplit(t *testing.T) {
	cases := []struct {
		rooms, wantMale, wantFemale int
	}{
		{7, 4, 3}, // male rounds up on odd totals
		{6, 3, 3},
		{1, 1, 0},
		{0, 0, 0},
	}
	for _, tc := range cases {
		out := ReconcileGender(models.RoomType{
			GenderPolicy: models.GenderMixed, RoomCount: tc.rooms,
			MaleRoomCount: 99, FemaleRoomCount: 99, // out of sync, forces resplit
		}, EditRoomCount)
		assert.Equal(t, tc.wantMale, out.MaleRoomCount, "rooms=%d", tc.rooms)
		assert.Equal(t, tc.wantFemale, out.FemaleRoomCount, "rooms=%d", tc.rooms)
	}
}

func TestReconcileGenderMixedPreservesValidSplit(t *testing.T) {
	// A split that already sums correctly is not touched on a room-count pass.
	out := ReconcileGender(models.RoomType{
		GenderPolicy: models.GenderMixed, RoomCount: 5, MaleRoomCount: 1, FemaleRoomCount: 4,
	}, EditRoomCount)
	assert.Equal(t, 1, out.MaleRoomCount)
	assert.Equal(t, 4, out.FemaleRoomCount)
}

func TestReconcileGenderMixedDirectEdits(t *testing.T) {
	base := models.RoomType{GenderPolicy: models.GenderMixed, RoomCount: 6}

	edited := base
	edited.MaleRoomCount = 4
	out := ReconcileGender(edited, EditMaleCount)
	assert.Equal(t, 4, out.MaleRoomCount)
	assert.Equal(t, 2, out.FemaleRoomCount)

	// Over-range male count clamps to the room count.
	edited.MaleRoomCount = 10
	out = ReconcileGender(edited, EditMaleCount)
	assert.Equal(t, 6, out.MaleRoomCount)
	assert.Equal(t, 0, out.FemaleRoomCount)

	// Negative female count clamps to zero.
	edited = base
	edited.FemaleRoomCount = -2
	out = ReconcileGender(edited, EditFemaleCount)
	assert.Equal(t, 0, out.FemaleRoomCount)
	assert.Equal(t, 6, out.MaleRoomCount)
}

func TestReconcileGenderZeroRoomsResetsBoth(t *testing.T) {
	out := ReconcileGender(models.RoomType{
		GenderPolicy: models.GenderMixed, RoomCount: 0, MaleRoomCount: 3, FemaleRoomCount: 2,
	}, EditMaleCount)
	assert.Equal(t, 0, out.MaleRoomCount)
	assert.Equal(t, 0, out.FemaleRoomCount)
}

func TestReconcileGenderSumInvariant(t *testing.T) {
	// Whatever garbage goes in, Mixed always comes out with male+female == rooms.
	inputs := []models.RoomType{
		{GenderPolicy: models.GenderMixed, RoomCount: 9, MaleRoomCount: -5, FemaleRoomCount: 100},
		{GenderPolicy: models.GenderMixed, RoomCount: 2},
		{GenderPolicy: models.GenderMixed, RoomCount: 4, MaleRoomCount: 4, FemaleRoomCount: 4},
		{GenderPolicy: "Unknown", RoomCount: 3},
	}
	for _, in := range inputs {
		for _, change := range []GenderEdit{EditRoomCount, EditMaleCount, EditFemaleCount} {
			out := ReconcileGender(in, change)
			assert.Equal(t, out.RoomCount, out.MaleRoomCount+out.FemaleRoomCount)
			assert.GreaterOrEqual(t, out.MaleRoomCount, 0)
			assert.GreaterOrEqual(t, out.FemaleRoomCount, 0)
		}
	}
}

func TestReconcileGenderIdempotent(t *testing.T) {
	inputs := []models.RoomType{
		{GenderPolicy: models.GenderMale, RoomCount: 4, FemaleRoomCount: 2},
		{GenderPolicy: models.GenderFemale, RoomCount: 7},
		{GenderPolicy: models.GenderMixed, RoomCount: 7, MaleRoomCount: 2, FemaleRoomCount: 2},
		{GenderPolicy: models.GenderMixed, RoomCount: 0, MaleRoomCount: 1},
	}
	for _, in := range inputs {
		for _, change := range []GenderEdit{EditRoomCount, EditMaleCount, EditFemaleCount} {
			once := ReconcileGender(in, change)
			twice := ReconcileGender(once, change)
			assert.Equal(t, once, twice)
		}
	}
}

func TestReconcileGenderDoesNotMutateInput(t *testing.T) {
	in := models.RoomType{GenderPolicy: models.GenderMale, RoomCount: 3, FemaleRoomCount: 7}
	_ = ReconcileGender(in, EditRoomCount)
	assert.Equal(t, 7, in.FemaleRoomCount)
}
