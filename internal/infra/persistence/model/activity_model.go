package model

import (
	"time"

	"github.com/google/uuid"
)

// MealModel mirrors the 'meals' table. Emission stores the resolved value
// for the whole serving at recording time.
type MealModel struct {
	ID         int64     `gorm:"primary_key;autoIncrement"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	MealTypeID int64     `gorm:"not null"`
	Emission   float64   `gorm:"not null"`
	CreatedAt  time.Time

	MealType *MealTypeModel `gorm:"foreignKey:MealTypeID"`
}

// TableName explicitly sets the table name for GORM.
func (MealModel) TableName() string {
	return "meals"
}

// TransportTripModel mirrors the 'transport_trips' table. Emission stores
// the per-kilometre factor captured at recording time; the effective cost
// of a trip is Emission multiplied by Distance.
type TransportTripModel struct {
	ID              int64     `gorm:"primary_key;autoIncrement"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index"`
	TransportTypeID int64     `gorm:"not null"`
	Distance        float64   `gorm:"not null"`
	Emission        float64   `gorm:"not null"`
	CreatedAt       time.Time

	TransportType *TransportTypeModel `gorm:"foreignKey:TransportTypeID"`
}

// TableName explicitly sets the table name for GORM.
func (TransportTripModel) TableName() string {
	return "transport_trips"
}
