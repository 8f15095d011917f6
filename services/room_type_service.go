package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hostel-backend/models"
)

var (
	ErrRoomTypeNotFound      = errors.New("room_type_not_found")
	ErrRoomCountBelowMinimum = errors.New("room_count_below_minimum")
	ErrRoomTypeOccupied      = errors.New("room_type_occupied")
)

// RoomTypeEdit is a partial update to a room type. Nil pointers mean "leave
// the field alone"; which gender field is set decides how the allocation is
// reconciled.
type RoomTypeEdit struct {
	Label           *string  `json:"room_label"`
	CapacityPerRoom *int     `json:"number_in_room"`
	RoomCount       *int     `json:"number_of_rooms"`
	Price           *float64 `json:"price"`
	GenderPolicy    *string  `json:"gender_policy"`
	MaleRoomCount   *int     `json:"male_room_count"`
	FemaleRoomCount *int     `json:"female_room_count"`
	Amenities       []string `json:"amenities"`
}

// ApplyRoomTypeEdit builds the edited room type, enforcing the capacity floor
// and gender reconciliation at the boundary. On ErrRoomCountBelowMinimum the
// edit is rejected whole: callers keep the prior record, nothing is partially
// applied.
func ApplyRoomTypeEdit(existing models.RoomType, edit RoomTypeEdit, roster []models.Tenant) (models.RoomType, error) {
	if edit.RoomCount != nil && !CanReduceRoomCount(existing, *edit.RoomCount, roster) {
		return models.RoomType{}, ErrRoomCountBelowMinimum
	}

	out := existing
	if edit.Label != nil {
		out.Label = *edit.Label
	}
	if edit.CapacityPerRoom != nil {
		out.CapacityPerRoom = *edit.CapacityPerRoom
	}
	if edit.RoomCount != nil {
		out.RoomCount = *edit.RoomCount
	}
	if edit.Price != nil {
		out.Price = *edit.Price
	}
	if edit.GenderPolicy != nil {
		out.GenderPolicy = *edit.GenderPolicy
	}
	if edit.MaleRoomCount != nil {
		out.MaleRoomCount = *edit.MaleRoomCount
	}
	if edit.FemaleRoomCount != nil {
		out.FemaleRoomCount = *edit.FemaleRoomCount
	}
	if edit.Amenities != nil {
		out.Amenities = parseAmenities(toAnySlice(edit.Amenities))
	}

	change := EditRoomCount
	switch {
	case edit.MaleRoomCount != nil:
		change = EditMaleCount
	case edit.FemaleRoomCount != nil:
		change = EditFemaleCount
	}
	return ReconcileGender(out, change), nil
}

func toAnySlice(in []string) []interface{} {
	out := make([]interface{}, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}

// RoomTypeService owns catalog persistence. All edit decisions are made by
// the pure functions above; this layer only loads and stores.
type RoomTypeService struct {
	DB *gorm.DB
}

func NewRoomTypeService(db *gorm.DB) *RoomTypeService {
	return &RoomTypeService{DB: db}
}

func (s *RoomTypeService) GetAll() ([]models.RoomType, error) {
	var types []models.RoomType
	err := s.DB.Find(&types).Error
	return types, err
}

func (s *RoomTypeService) GetByUUID(id string) (models.RoomType, error) {
	var rt models.RoomType
	err := s.DB.Where("uuid = ?", id).First(&rt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return rt, ErrRoomTypeNotFound
	}
	return rt, err
}

// Create inserts a new room type. New types start at zero rooms unless the
// payload says otherwise; the gender split is reconciled before the insert so
// an inconsistent payload can never reach the table.
func (s *RoomTypeService) Create(rt models.RoomType) (models.RoomType, error) {
	if rt.UUID == "" {
		rt.UUID = uuid.NewString()
	}
	if len(rt.Amenities) == 0 {
		rt.Amenities = []byte("[]")
	}
	rt = ReconcileGender(rt, EditRoomCount)
	if err := s.DB.Create(&rt).Error; err != nil {
		return models.RoomType{}, fmt.Errorf("create room type: %w", err)
	}
	return rt, nil
}

// Update applies a partial edit atomically: the whole reconciled record
// replaces the old one, or nothing changes at all.
func (s *RoomTypeService) Update(id string, edit RoomTypeEdit) (models.RoomType, error) {
	existing, err := s.GetByUUID(id)
	if err != nil {
		return models.RoomType{}, err
	}
	roster, err := s.activeRoster()
	if err != nil {
		return models.RoomType{}, err
	}

	updated, err := ApplyRoomTypeEdit(existing, edit, roster)
	if err != nil {
		return models.RoomType{}, err
	}
	if err := s.DB.Save(&updated).Error; err != nil {
		return models.RoomType{}, fmt.Errorf("update room type: %w", err)
	}
	return updated, nil
}

// Delete removes a room type. While active tenants are still assigned it
// refuses unless force is set, so the caller has to acknowledge that those
// tenants' occupancy will be orphaned.
func (s *RoomTypeService) Delete(id string, force bool) error {
	rt, err := s.GetByUUID(id)
	if err != nil {
		return err
	}
	if !force {
		roster, err := s.activeRoster()
		if err != nil {
			return err
		}
		if HasOccupants(rt, roster) {
			return ErrRoomTypeOccupied
		}
	}
	return s.DB.Delete(&rt).Error
}

// MinimumRooms exposes the capacity floor for edit gating in the UI.
func (s *RoomTypeService) MinimumRooms(id string) (int, error) {
	rt, err := s.GetByUUID(id)
	if err != nil {
		return 0, err
	}
	roster, err := s.activeRoster()
	if err != nil {
		return 0, err
	}
	return MinimumRoomsRequired(rt, roster), nil
}

func (s *RoomTypeService) activeRoster() ([]models.Tenant, error) {
	var roster []models.Tenant
	err := s.DB.Where("is_active = ?", true).Find(&roster).Error
	return roster, err
}
