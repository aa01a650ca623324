package model

// MealTypeModel mirrors the 'meal_types' catalog table. Each row holds the
// emission in kgCO2e for one standard serving of the meal type.
type MealTypeModel struct {
	ID             int64   `gorm:"primary_key;autoIncrement"`
	Type           string  `gorm:"type:varchar(100);unique;not null"`
	EmissionFactor float64 `gorm:"column:emission_factor;not null"`
}

// TableName explicitly sets the table name for GORM.
func (MealTypeModel) TableName() string {
	return "meal_types"
}

// TransportTypeModel mirrors the 'transport_types' catalog table. Each row
// holds the emission in kgCO2e per kilometre travelled.
type TransportTypeModel struct {
	ID             int64   `gorm:"primary_key;autoIncrement"`
	Type           string  `gorm:"type:varchar(100);unique;not null"`
	EmissionFactor float64 `gorm:"column:emission_factor;not null"`
}

// TableName explicitly sets the table name for GORM.
func (TransportTypeModel) TableName() string {
	return "transport_types"
}
