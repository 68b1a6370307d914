package request_models

import (
	"fmt"
	"strings"
	"time"

	"tripwise/pkg/utils"
)

// SearchRequest mirrors the search form: where the trip starts, where it
// goes, when, for how long, and how the traveler gets there.
type SearchRequest struct {
	Location           string `json:"location"`
	FromLocation       string `json:"fromLocation"`
	StartDate          string `json:"startDate"`
	Duration           int    `json:"duration"`
	TransportationMode string `json:"transportationMode"`
}

const (
	MinDuration = 1
	MaxDuration = 14
)

const DefaultTransportationMode = "car"

var transportationModes = map[string]bool{
	"car":    true,
	"train":  true,
	"bus":    true,
	"flight": true,
	"bike":   true,
}

var startDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

func ParseStartDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range startDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date: %q", value)
}

// Validate checks every constraint and reports all violations together.
// It also normalizes the request: a missing transportation mode becomes the
// default. The parsed start date is returned so callers don't parse twice.
// There is deliberately no "must be in the future" rule; the form may
// restrict that, the contract does not.
func (r *SearchRequest) Validate() (time.Time, error) {
	var fields []string

	if strings.TrimSpace(r.Location) == "" {
		fields = append(fields, "Destination is required")
	}
	if strings.TrimSpace(r.FromLocation) == "" {
		fields = append(fields, "Origin location is required")
	}

	startDate, err := ParseStartDate(r.StartDate)
	if err != nil {
		fields = append(fields, "Start date must be a valid date")
	}

	if r.Duration < MinDuration || r.Duration > MaxDuration {
		fields = append(fields, fmt.Sprintf("Duration must be between %d and %d days", MinDuration, MaxDuration))
	}

	if r.TransportationMode == "" {
		r.TransportationMode = DefaultTransportationMode
	} else if !transportationModes[r.TransportationMode] {
		fields = append(fields, "Transportation mode must be one of: car, train, bus, flight, bike")
	}

	if len(fields) > 0 {
		return time.Time{}, utils.NewValidationError(fields)
	}
	return startDate, nil
}
