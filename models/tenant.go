package models

import (
	"time"

	"gorm.io/gorm"
)

// Tenant is one occupancy record. The backend (or the upstream sync) owns the
// lifecycle; the reconciliation core only ever reads snapshots of these rows.
type Tenant struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	UUID string `gorm:"column:uuid;uniqueIndex;size:64" json:"uuid"`

	FullName string `gorm:"size:255" json:"full_name"`
	Email    string `gorm:"size:150" json:"email,omitempty"`
	Phone    string `gorm:"size:50" json:"phone,omitempty"`

	// RoomTypeRef holds a RoomType.UUID. May be empty or point at a type that
	// no longer exists; the occupancy computation treats that as unmatched.
	RoomTypeRef string `gorm:"column:room_type_ref;index;size:64" json:"room_uuid"`

	RentAmount  float64    `gorm:"column:rent_amount" json:"amount"`
	CheckInDate *time.Time `gorm:"column:check_in_date" json:"date_created,omitempty"`
	IsActive    bool       `gorm:"column:is_active;default:true" json:"is_active"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
