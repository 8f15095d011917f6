package models

import (
	"time"

	"gorm.io/gorm"
)

// Payment statuses. Only completed payments feed revenue figures.
const (
	PaymentCompleted = "Completed"
	PaymentPending   = "Pending"
	PaymentFailed    = "Failed"
)

type Payment struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	UUID string `gorm:"column:uuid;uniqueIndex;size:64" json:"uuid"`

	// TenantRef holds a Tenant.UUID.
	TenantRef string `gorm:"column:tenant_ref;index;size:64" json:"tenant_uuid"`

	Amount float64    `json:"amount"`
	PaidAt *time.Time `gorm:"column:paid_at" json:"paid_at,omitempty"`
	Method string     `gorm:"size:50" json:"method,omitempty"`
	Status string     `gorm:"size:32;default:Completed" json:"status"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
