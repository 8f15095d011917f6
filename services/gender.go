package services

import "hostel-backend/models"

// GenderEdit names the field whose change triggered reconciliation. The same
// invalid state corrects differently depending on what the manager touched,
// so the trigger travels with the record.
type GenderEdit int

const (
	// EditRoomCount also covers policy changes and "just make it consistent"
	// passes: the split is recomputed from RoomCount.
	EditRoomCount GenderEdit = iota
	EditMaleCount
	EditFemaleCount
)

// ReconcileGender returns a copy of rt whose gender allocation is internally
// consistent. It never fails and never mutates rt: every invalid combination
// is corrected to the nearest valid one so callers can apply the result
// unconditionally.
func ReconcileGender(rt models.RoomType, changed GenderEdit) models.RoomType {
	out := rt
	if out.RoomCount < 0 {
		out.RoomCount = 0
	}

	switch out.GenderPolicy {
	case models.GenderMale:
		out.MaleRoomCount = out.RoomCount
		out.FemaleRoomCount = 0
		return out
	case models.GenderFemale:
		out.FemaleRoomCount = out.RoomCount
		out.MaleRoomCount = 0
		return out
	}

	// Mixed (and any unrecognized policy, which is treated as Mixed).
	if out.RoomCount == 0 {
		out.MaleRoomCount = 0
		out.FemaleRoomCount = 0
		return out
	}

	switch changed {
	case EditMaleCount:
		out.MaleRoomCount = clampInt(out.MaleRoomCount, 0, out.RoomCount)
		out.FemaleRoomCount = out.RoomCount - out.MaleRoomCount
	case EditFemaleCount:
		out.FemaleRoomCount = clampInt(out.FemaleRoomCount, 0, out.RoomCount)
		out.MaleRoomCount = out.RoomCount - out.FemaleRoomCount
	default:
		if out.MaleRoomCount+out.FemaleRoomCount != out.RoomCount ||
			out.MaleRoomCount < 0 || out.FemaleRoomCount < 0 {
			// Auto-split; male takes the extra room on odd totals.
			out.MaleRoomCount = (out.RoomCount + 1) / 2
			out.FemaleRoomCount = out.RoomCount - out.MaleRoomCount
		}
	}
	return out
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
