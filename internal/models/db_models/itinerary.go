package db_models

import (
	"time"

	"tripwise/internal/models/response_models"
)

// Itinerary is the stored record behind a share link. It is written exactly
// once, after the generated plan passes schema validation, and never mutated.
// The numeric id is the primary key; share_id is the only externally exposed
// lookup key.
type Itinerary struct {
	ID           uint                 `gorm:"primaryKey" json:"id"`
	Location     string               `gorm:"not null" json:"location"`
	FromLocation string               `gorm:"column:from_location;not null" json:"fromLocation"`
	StartDate    time.Time            `gorm:"column:start_date;not null" json:"startDate"`
	Duration     int                  `gorm:"not null" json:"duration"`
	Plan         response_models.Plan `gorm:"serializer:json;type:jsonb;not null" json:"plan"`
	CreatedAt    time.Time            `gorm:"column:created_at" json:"createdAt"`
	ShareID      string               `gorm:"column:share_id;not null" json:"shareId"`
}

func (Itinerary) TableName() string {
	return "itineraries"
}
