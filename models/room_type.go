package models

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Gender policy values stored in room_types.gender_policy.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderMixed  = "Mixed"
)

// RoomType is one manager-configured category of room within the hostel.
// UUID is the external association key; tenants reference it via RoomTypeRef.
type RoomType struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	UUID string `gorm:"column:uuid;uniqueIndex;size:64" json:"uuid"`

	Label           string  `gorm:"column:room_label;size:255" json:"room_label"`
	CapacityPerRoom int     `gorm:"column:number_in_room" json:"number_in_room"`
	RoomCount       int     `gorm:"column:number_of_rooms" json:"number_of_rooms"`
	Price           float64 `json:"price"`

	GenderPolicy    string `gorm:"column:gender_policy;size:16;default:Mixed" json:"gender_policy"`
	MaleRoomCount   int    `gorm:"column:male_room_count" json:"male_room_count"`
	FemaleRoomCount int    `gorm:"column:female_room_count" json:"female_room_count"`

	// JSON array of free-text labels, e.g. ["WiFi","Laundry"].
	Amenities datatypes.JSON `json:"amenities,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// DisplayLabel falls back to a generated name when the manager left Label empty.
func (rt RoomType) DisplayLabel() string {
	if rt.Label != "" {
		return rt.Label
	}
	return fmt.Sprintf("%d-Person Room", rt.CapacityPerRoom)
}

// TotalCapacity is the configured bed count across all rooms of this type.
func (rt RoomType) TotalCapacity() int {
	if rt.CapacityPerRoom < 0 || rt.RoomCount < 0 {
		return 0
	}
	return rt.CapacityPerRoom * rt.RoomCount
}
