package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	dbm "tripwise/internal/models/db_models"
	"tripwise/internal/models/request_models"
	"tripwise/internal/models/response_models"
	"tripwise/internal/repositories"
	"tripwise/pkg/utils"
)

type ItineraryServiceInterface interface {
	GenerateItinerary(ctx context.Context, req request_models.SearchRequest) (*dbm.Itinerary, error)
	GetItineraryByShareID(ctx context.Context, shareID string) (*dbm.Itinerary, error)
	GetPlaceDetails(ctx context.Context, placeQuery string) (string, error)
}

type ItineraryService struct {
	repo     repositories.ItineraryRepository
	aiClient utils.CompletionClientInterface
}

func NewItineraryService(
	repo repositories.ItineraryRepository,
	aiClient utils.CompletionClientInterface,
) ItineraryServiceInterface {
	return &ItineraryService{
		repo:     repo,
		aiClient: aiClient,
	}
}

// GenerateItinerary runs the whole pipeline: validate, render the prompt,
// call the model, carve the JSON block out of the response, schema-check it,
// then store it under a fresh share id. Any failure aborts the call before
// anything is persisted.
func (s *ItineraryService) GenerateItinerary(ctx context.Context, req request_models.SearchRequest) (*dbm.Itinerary, error) {
	startDate, err := req.Validate()
	if err != nil {
		return nil, err
	}

	prompt := BuildItineraryPrompt(req.FromLocation, req.Location, startDate, req.Duration, req.TransportationMode)

	raw, err := s.aiClient.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	plan, err := parsePlanResponse(raw)
	if err != nil {
		return nil, err
	}

	shareID, err := utils.NewShareID()
	if err != nil {
		return nil, err
	}

	itinerary, err := s.repo.Create(ctx, repositories.CreateItineraryInput{
		Location:     req.Location,
		FromLocation: req.FromLocation,
		StartDate:    startDate,
		Duration:     req.Duration,
		Plan:         *plan,
		ShareID:      shareID,
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Generated itinerary %d for %s (%d days, share id %s)",
		itinerary.ID, itinerary.Location, itinerary.Duration, itinerary.ShareID)
	return itinerary, nil
}

// parsePlanResponse turns raw model output into a validated Plan. A missing
// or unparseable JSON block is an extraction failure; a parseable block with
// the wrong shape is a schema failure.
func parsePlanResponse(raw string) (*response_models.Plan, error) {
	block, err := utils.ExtractJSONBlock(raw)
	if err != nil {
		return nil, err
	}

	var plan response_models.Plan
	if err := json.Unmarshal([]byte(block), &plan); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrExtraction, err)
	}

	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *ItineraryService) GetItineraryByShareID(ctx context.Context, shareID string) (*dbm.Itinerary, error) {
	itinerary, err := s.repo.GetByShareID(ctx, shareID)
	if err != nil {
		return nil, err
	}
	if itinerary == nil {
		return nil, utils.ErrItineraryNotFound
	}
	return itinerary, nil
}

func (s *ItineraryService) GetPlaceDetails(ctx context.Context, placeQuery string) (string, error) {
	if strings.TrimSpace(placeQuery) == "" {
		return "", utils.ErrPlaceQueryRequired
	}

	raw, err := s.aiClient.Generate(ctx, BuildPlaceDetailsPrompt(placeQuery))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(raw), nil
}
