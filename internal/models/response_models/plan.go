package response_models

import (
	"fmt"

	"tripwise/pkg/utils"
)

// Plan is the generated itinerary. Only dailyPlans is load-bearing: the
// model populates the summary fields unreliably, so everything else is
// optional. The number of days is not checked against the requested
// duration; the model under- and over-generates and the contract tolerates
// both.
type Plan struct {
	DailyPlans         []DailyPlan     `json:"dailyPlans"`
	EstimatedTotalCost string          `json:"estimatedTotalCost,omitempty"`
	BestTimeToVisit    string          `json:"bestTimeToVisit,omitempty"`
	TravelTips         []string        `json:"travelTips,omitempty"`
	Accommodation      []Accommodation `json:"accommodation,omitempty"`
}

type DailyPlan struct {
	Day        int        `json:"day"`
	Activities []Activity `json:"activities"`
}

type Activity struct {
	Time          string       `json:"time"`
	Activity      string       `json:"activity"`
	Location      string       `json:"location,omitempty"`
	EstimatedCost string       `json:"estimatedCost,omitempty"`
	Notes         string       `json:"notes,omitempty"`
	BookingInfo   *BookingInfo `json:"bookingInfo,omitempty"`
}

type BookingInfo struct {
	Availability string `json:"availability,omitempty"`
	Price        string `json:"price,omitempty"`
	BookingURL   string `json:"bookingUrl,omitempty"`
}

type Accommodation struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	PriceRange   string `json:"priceRange,omitempty"`
	Availability string `json:"availability,omitempty"`
	Rating       string `json:"rating,omitempty"`
	BookingURL   string `json:"bookingUrl,omitempty"`
}

// Validate checks the plan shape and collects every violated field into a
// single SchemaError.
func (p *Plan) Validate() error {
	var fields []string

	if len(p.DailyPlans) == 0 {
		fields = append(fields, "dailyPlans must contain at least one day")
	}

	for i, day := range p.DailyPlans {
		if day.Day < 1 {
			fields = append(fields, fmt.Sprintf("dailyPlans[%d].day must be a positive integer", i))
		}
		if len(day.Activities) == 0 {
			fields = append(fields, fmt.Sprintf("dailyPlans[%d].activities must contain at least one activity", i))
		}
		for j, act := range day.Activities {
			if act.Time == "" {
				fields = append(fields, fmt.Sprintf("dailyPlans[%d].activities[%d].time is required", i, j))
			}
			if act.Activity == "" {
				fields = append(fields, fmt.Sprintf("dailyPlans[%d].activities[%d].activity is required", i, j))
			}
		}
	}

	for i, stay := range p.Accommodation {
		if stay.Name == "" {
			fields = append(fields, fmt.Sprintf("accommodation[%d].name is required", i))
		}
	}

	if len(fields) > 0 {
		return &utils.SchemaError{Fields: fields}
	}
	return nil
}
