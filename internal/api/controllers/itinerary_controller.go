package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripwise/internal/models/request_models"
	"tripwise/internal/services"
	"tripwise/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

type PlaceDetailsResponse struct {
	Details string `json:"details"`
}

// GenerateItineraryHandler godoc
// @Summary Generate a travel itinerary
// @Description Validate the search parameters, generate a plan with the AI model and store it under a shareable id
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.SearchRequest true "Trip parameters"
// @Success 200 {object} utils.APIResponse{data=db_models.Itinerary}
// @Failure 400 {object} utils.APIResponse
// @Router /api/generate [post]
func (i *ItineraryController) GenerateItineraryHandler(c *gin.Context) {
	var req request_models.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	itinerary, err := i.itineraryService.GenerateItinerary(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary generated successfully")
}

// GetItineraryByShareIdHandler godoc
// @Summary Fetch an itinerary by share id
// @Tags Itinerary
// @Produce json
// @Param shareId path string true "Share ID"
// @Success 200 {object} utils.APIResponse{data=db_models.Itinerary}
// @Failure 404 {object} utils.APIResponse
// @Router /api/itinerary/{shareId} [get]
func (i *ItineraryController) GetItineraryByShareIdHandler(c *gin.Context) {
	shareID := c.Param("shareId")
	if shareID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Share ID is required")
		return
	}

	itinerary, err := i.itineraryService.GetItineraryByShareID(c.Request.Context(), shareID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary fetched successfully")
}

// PlaceDetailsHandler godoc
// @Summary Describe a place
// @Description Ask the AI model for a short free-text description of a place
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.PlaceDetailsRequest true "Place query"
// @Success 200 {object} utils.APIResponse{data=controllers.PlaceDetailsResponse}
// @Failure 400 {object} utils.APIResponse
// @Router /api/place-details [post]
func (i *ItineraryController) PlaceDetailsHandler(c *gin.Context) {
	var req request_models.PlaceDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "placeQuery is required")
		return
	}

	details, err := i.itineraryService.GetPlaceDetails(c.Request.Context(), req.PlaceQuery)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, PlaceDetailsResponse{Details: details}, "Place details fetched successfully")
}
