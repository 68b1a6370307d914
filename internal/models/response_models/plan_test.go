package response_models

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"tripwise/pkg/utils"
)

const examplePlanJSON = `{
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

func TestPlanValidateAcceptsExampleShape(t *testing.T) {
	var plan Plan
	if err := json.Unmarshal([]byte(examplePlanJSON), &plan); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if err := plan.Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if len(plan.DailyPlans) != 1 || len(plan.DailyPlans[0].Activities) != 1 {
		t.Fatalf("unexpected plan shape: %+v", plan)
	}
	if plan.DailyPlans[0].Activities[0].BookingInfo == nil {
		t.Error("bookingInfo not parsed")
	}
}

func TestPlanValidateAcceptsSparsePlan(t *testing.T) {
	// Later schema revisions made everything but dailyPlans optional.
	plan := Plan{
		DailyPlans: []DailyPlan{
			{Day: 1, Activities: []Activity{{Time: "9:00 AM", Activity: "Beach walk"}}},
		},
	}
	if err := plan.Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
}

func TestPlanValidateRejectsEmptyPlan(t *testing.T) {
	var plan Plan
	err := plan.Validate()
	if err == nil {
		t.Fatal("expected schema error for empty plan")
	}
	var schemaErr *utils.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("error = %T, want *utils.SchemaError", err)
	}
}

func TestPlanValidateEnumeratesFields(t *testing.T) {
	plan := Plan{
		DailyPlans: []DailyPlan{
			{Day: 0, Activities: []Activity{{Time: "", Activity: ""}}},
			{Day: 2, Activities: nil},
		},
	}
	err := plan.Validate()
	if err == nil {
		t.Fatal("expected schema error")
	}

	var schemaErr *utils.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("error = %T, want *utils.SchemaError", err)
	}
	if len(schemaErr.Fields) != 4 {
		t.Fatalf("expected 4 violations, got %d: %v", len(schemaErr.Fields), schemaErr.Fields)
	}
	for _, want := range []string{
		"dailyPlans[0].day",
		"dailyPlans[0].activities[0].time",
		"dailyPlans[0].activities[0].activity",
		"dailyPlans[1].activities",
	} {
		found := false
		for _, f := range schemaErr.Fields {
			if strings.HasPrefix(f, want) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected a violation for %s, got %v", want, schemaErr.Fields)
		}
	}
}

func TestPlanValidateDoesNotEnforceDayCount(t *testing.T) {
	// duration vs len(dailyPlans) is intentionally unchecked.
	plan := Plan{
		DailyPlans: []DailyPlan{
			{Day: 1, Activities: []Activity{{Time: "9:00 AM", Activity: "A"}}},
			{Day: 2, Activities: []Activity{{Time: "9:00 AM", Activity: "B"}}},
		},
	}
	if err := plan.Validate(); err != nil {
		t.Fatalf("two-day plan should validate regardless of requested duration: %v", err)
	}
}
