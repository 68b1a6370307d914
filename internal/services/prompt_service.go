package services

import (
	"fmt"
	"time"
)

// Prompt rendering is deliberately pure: same inputs, byte-identical prompt.
// No I/O happens here; the completion client owns the network.

const itineraryPromptTemplate = `Create a detailed %d-day travel itinerary from %s to %s starting on %s, with %s as the primary mode of transportation. Include:

1. A day-by-day schedule with:
   - Activities and attractions with time slots
   - Location details
   - Estimated costs
   - Booking information when available
   - Transportation details between locations using %s

2. Accommodation suggestions with:
   - Hotel/lodging names
   - Price ranges
   - Availability
   - Booking links if possible

3. Additional information:
   - Total estimated cost (including %s expenses)
   - Best time to visit
   - Travel tips specific to %s travel
   - Estimated travel time between locations using %s

4. Just make plan for the destination not for the start location, ignore the start location its just for user nothing to do for us with it , but ensure to calculate the distance between the start and the destination location , and the prices should be In INDIAN Rupees ₹
Format the response as a structured JSON object. Example structure:
{
  "dailyPlans": [{
    "day": 1,
    "activities": [{
      "time": "9:00 AM",
      "activity": "Visit landmark",
      "location": "Address",
      "estimatedCost": "₹20",
      "bookingInfo": {
        "availability": "Open 9AM-5PM",
        "price": "₹20/person",
        "bookingUrl": "optional-url"
      }
    }]
  }],
  "accommodation": [{
    "name": "Hotel Name",
    "type": "Hotel/Hostel/etc",
    "priceRange": "₹100-150/night",
    "availability": "Available",
    "rating": "4.5/5",
    "bookingUrl": "optional-url"
  }],
  "estimatedTotalCost": "₹500",
  "bestTimeToVisit": "Spring/Summer",
  "travelTips": ["Tip 1", "Tip 2"]
}`

// BuildItineraryPrompt renders the generation instruction for one trip. The
// embedded example object doubles as the schema the model is asked to mimic.
func BuildItineraryPrompt(fromLocation, location string, startDate time.Time, duration int, transportationMode string) string {
	date := startDate.Format("1/2/2006")
	return fmt.Sprintf(itineraryPromptTemplate,
		duration, fromLocation, location, date,
		transportationMode, transportationMode, transportationMode, transportationMode, transportationMode)
}

const placeDetailsPromptTemplate = `Provide a 50-100 word description of %s for a traveler deciding whether to visit. Cover what the place is known for, its general atmosphere, and one practical tip. Respond with plain text only, no markdown and no headings.`

// BuildPlaceDetailsPrompt renders the enrichment prompt for a free-text
// place query.
func BuildPlaceDetailsPrompt(placeQuery string) string {
	return fmt.Sprintf(placeDetailsPromptTemplate, placeQuery)
}
