package repositories

import (
	"context"
	"sync"
	"time"

	dbm "tripwise/internal/models/db_models"
)

// memoryItineraryRepository keeps itineraries in a process-local map. Ids
// are assigned by increment under the lock and never reused; records are
// immutable once inserted, so a lookup can hand out a copy without further
// coordination. Everything is gone when the process exits.
type memoryItineraryRepository struct {
	mu     sync.RWMutex
	items  map[uint]*dbm.Itinerary
	nextID uint
}

func NewMemoryItineraryRepository() ItineraryRepository {
	return &memoryItineraryRepository{
		items:  make(map[uint]*dbm.Itinerary),
		nextID: 1,
	}
}

func (r *memoryItineraryRepository) Create(_ context.Context, in CreateItineraryInput) (*dbm.Itinerary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	itinerary := &dbm.Itinerary{
		ID:           r.nextID,
		Location:     in.Location,
		FromLocation: in.FromLocation,
		StartDate:    in.StartDate,
		Duration:     in.Duration,
		Plan:         in.Plan,
		CreatedAt:    time.Now(),
		ShareID:      in.ShareID,
	}
	r.nextID++
	r.items[itinerary.ID] = itinerary

	out := *itinerary
	return &out, nil
}

// GetByShareID scans all records. Fine at this scale; no share-id index is
// maintained.
func (r *memoryItineraryRepository) GetByShareID(_ context.Context, shareID string) (*dbm.Itinerary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, itinerary := range r.items {
		if itinerary.ShareID == shareID {
			out := *itinerary
			return &out, nil
		}
	}
	return nil, nil
}
