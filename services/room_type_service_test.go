package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostel-backend/models"
)

func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestApplyRoomTypeEditRejectsBelowFloor(t *testing.T) {
	existing := models.RoomType{UUID: "A", CapacityPerRoom: 2, RoomCount: 5}
	roster := rosterOf("A", 5) // floor is 3

	_, err := ApplyRoomTypeEdit(existing, RoomTypeEdit{RoomCount: intPtr(2)}, roster)
	assert.ErrorIs(t, err, ErrRoomCountBelowMinimum)

	// A compliant shrink goes through and reconciles the split.
	updated, err := ApplyRoomTypeEdit(existing, RoomTypeEdit{RoomCount: intPtr(3)}, roster)
	require.NoError(t, err)
	assert.Equal(t, 3, updated.RoomCount)
	assert.Equal(t, updated.RoomCount, updated.MaleRoomCount+updated.FemaleRoomCount)
}

func TestApplyRoomTypeEditRejectionChangesNothing(t *testing.T) {
	existing := models.RoomType{UUID: "A", CapacityPerRoom: 2, RoomCount: 5, Price: 100}
	roster := rosterOf("A", 5)

	// The floor violation rejects the whole edit, price change included.
	_, err := ApplyRoomTypeEdit(existing, RoomTypeEdit{
		RoomCount: intPtr(1),
		Price:     floatPtr(999),
	}, roster)
	assert.ErrorIs(t, err, ErrRoomCountBelowMinimum)
}

func TestApplyRoomTypeEditGenderRouting(t *testing.T) {
	existing := models.RoomType{
		UUID: "A", CapacityPerRoom: 2, RoomCount: 6,
		GenderPolicy: models.GenderMixed, MaleRoomCount: 3, FemaleRoomCount: 3,
	}

	out, err := ApplyRoomTypeEdit(existing, RoomTypeEdit{MaleRoomCount: intPtr(5)}, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, out.MaleRoomCount)
	assert.Equal(t, 1, out.FemaleRoomCount)

	out, err = ApplyRoomTypeEdit(existing, RoomTypeEdit{FemaleRoomCount: intPtr(4)}, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, out.MaleRoomCount)
	assert.Equal(t, 4, out.FemaleRoomCount)

	// Switching policy forces the single-gender shape.
	out, err = ApplyRoomTypeEdit(existing, RoomTypeEdit{GenderPolicy: strPtr(models.GenderFemale)}, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, out.MaleRoomCount)
	assert.Equal(t, 6, out.FemaleRoomCount)
}

func TestApplyRoomTypeEditFields(t *testing.T) {
	existing := models.RoomType{UUID: "A", CapacityPerRoom: 2, RoomCount: 2, Price: 100}

	out, err := ApplyRoomTypeEdit(existing, RoomTypeEdit{
		Label:     strPtr("Budget Double"),
		Price:     floatPtr(120),
		Amenities: []string{"WiFi"},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Budget Double", out.Label)
	assert.InDelta(t, 120, out.Price, 1e-9)
	assert.JSONEq(t, `["WiFi"]`, string(out.Amenities))
	assert.Equal(t, 2, out.RoomCount, "untouched fields stay")
}

func TestRoomTypeDisplayLabelFallback(t *testing.T) {
	assert.Equal(t, "4-Person Room", models.RoomType{CapacityPerRoom: 4}.DisplayLabel())
	assert.Equal(t, "Loft", models.RoomType{CapacityPerRoom: 4, Label: "Loft"}.DisplayLabel())
}
