// Package model contains the GORM persistence models mirroring the database
// schema. They are exported so the GORM Gen tool can consume them.
package model

import (
	"time"

	"github.com/google/uuid"
)

// BookModel mirrors the 'books' table. PostgreSQL generates UUIDs via
// uuid_generate_v7(). The copy counters are only ever moved by conditional
// single-statement updates, so the 0 <= available <= total invariant is
// enforced at the statement level rather than with a table constraint.
type BookModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ISBN            string    `gorm:"type:varchar(20);unique;not null"`
	Title           string    `gorm:"type:varchar(255);not null"`
	Author          string    `gorm:"type:varchar(255)"`
	TotalCopies     int       `gorm:"not null"`
	AvailableCopies int       `gorm:"not null"`
	IsActive        bool      `gorm:"not null;default:true"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (BookModel) TableName() string {
	return "books"
}
