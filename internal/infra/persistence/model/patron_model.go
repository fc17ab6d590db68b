package model

import (
	"time"

	"github.com/google/uuid"
)

// PatronModel mirrors the 'patrons' table. OutstandingFineTotal is the
// maintained aggregate of unpaid fines on the patron's closed loans.
type PatronModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name                 string    `gorm:"type:varchar(100);not null"`
	Email                string    `gorm:"type:varchar(255);unique;not null"`
	NotificationToken    string    `gorm:"type:varchar(512)"`
	OutstandingFineTotal int64     `gorm:"not null;default:0"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (PatronModel) TableName() string {
	return "patrons"
}
