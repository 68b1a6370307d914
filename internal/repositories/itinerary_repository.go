package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	dbm "tripwise/internal/models/db_models"
	resp "tripwise/internal/models/response_models"
	"tripwise/pkg/utils"
)

// CreateItineraryInput is everything the caller supplies; the repository
// assigns the numeric id and the creation timestamp.
type CreateItineraryInput struct {
	Location     string
	FromLocation string
	StartDate    time.Time
	Duration     int
	Plan         resp.Plan
	ShareID      string
}

type ItineraryRepository interface {
	Create(ctx context.Context, in CreateItineraryInput) (*dbm.Itinerary, error)

	// GetByShareID returns (nil, nil) when no itinerary matches.
	GetByShareID(ctx context.Context, shareID string) (*dbm.Itinerary, error)
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

func (r *itineraryRepository) Create(ctx context.Context, in CreateItineraryInput) (*dbm.Itinerary, error) {
	itinerary := dbm.Itinerary{
		Location:     in.Location,
		FromLocation: in.FromLocation,
		StartDate:    in.StartDate,
		Duration:     in.Duration,
		Plan:         in.Plan,
		ShareID:      in.ShareID,
	}

	if err := r.db.WithContext(ctx).Create(&itinerary).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return &itinerary, nil
}

func (r *itineraryRepository) GetByShareID(ctx context.Context, shareID string) (*dbm.Itinerary, error) {
	var itinerary dbm.Itinerary
	err := r.db.WithContext(ctx).
		Where("share_id = ?", shareID).
		First(&itinerary).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return &itinerary, nil
}
