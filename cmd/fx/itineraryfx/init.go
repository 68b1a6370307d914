package itineraryfx

import (
	"go.uber.org/fx"

	"tripwise/internal/api/controllers"
	"tripwise/internal/repositories"
	"tripwise/internal/services"
	"tripwise/pkg/utils"
)

var Module = fx.Provide(provideItineraryService, provideItineraryController)

func provideItineraryService(
	repo repositories.ItineraryRepository,
	aiClient utils.CompletionClientInterface,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(repo, aiClient)
}

func provideItineraryController(
	itineraryService services.ItineraryServiceInterface,
) *controllers.ItineraryController {
	return controllers.NewItineraryController(itineraryService)
}
