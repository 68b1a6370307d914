package utils

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrAIService          = errors.New("ai service call failed")
	ErrExtraction         = errors.New("no JSON block found in model response")
	ErrItineraryNotFound  = errors.New("itinerary not found")
	ErrDatabaseError      = errors.New("database error")
	ErrPlaceQueryRequired = errors.New("placeQuery is required")
)

// ValidationError carries one message per violated request field so the
// caller sees every problem at once, not just the first.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Fields, "; ")
}

func NewValidationError(fields []string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// SchemaError reports which Plan fields failed shape validation after the
// model response was extracted and parsed.
type SchemaError struct {
	Fields []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("generated plan failed schema validation: %s", strings.Join(e.Fields, "; "))
}
