package models

import "time"

// MaxZonesPerService is enforced at the validation layer, not by the database.
const MaxZonesPerService = 3

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	TrainerID uint `gorm:"index" json:"trainer_id"`
	Trainer   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"trainer"`

	Title       string  `gorm:"size:150;not null" json:"title"`
	Description string  `gorm:"size:1000" json:"description"`
	Price       float64 `gorm:"not null" json:"price"`

	CategoryID uint     `json:"category_id"`
	Category   Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"category"`

	DurationID uint     `json:"duration_id"`
	Duration   Duration `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"duration"`

	IsVirtual    bool `json:"is_virtual"`
	IsPresential bool `json:"is_presential"`

	Published bool `gorm:"default:true" json:"published"`

	Zones []Zone `gorm:"many2many:service_zones;" json:"zones"`

	// Filled by the listing query, not a stored column.
	AverageRating float64 `gorm:"->;-:migration" json:"average_rating"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
