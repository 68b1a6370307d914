package storefx

import (
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"tripwise/internal/infra"
	"tripwise/internal/repositories"
)

var Module = fx.Provide(ProvideItineraryRepository)

// ProvideItineraryRepository selects the store backend. The default is the
// in-memory map, which lives and dies with the process; set
// STORAGE_BACKEND=postgres to keep itineraries across restarts.
func ProvideItineraryRepository() repositories.ItineraryRepository {
	backend := os.Getenv("STORAGE_BACKEND")
	if backend == "" {
		backend = "memory"
	}

	switch strings.ToLower(backend) {
	case "postgres":
		log.Println("Using Postgres itinerary store")
		return repositories.NewItineraryRepository(infra.InitPostgresql())
	case "memory":
		log.Println("Using in-memory itinerary store")
		return repositories.NewMemoryItineraryRepository()
	default:
		log.Fatalf("unsupported storage backend: %s. Use 'memory' or 'postgres'", backend)
		return nil
	}
}
