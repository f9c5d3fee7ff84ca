package model

import (
	"fmt"
	cartModel "salon/internal/domains/cart/model"
	catalogModel "salon/internal/domains/catalog/model"
	"strings"
)

// Step is a position in the booking wizard. Steps only move one at a time.
type Step int

const (
	StepSelectLocation Step = iota + 1
	StepSelectServices
	StepSelectDateTime
	StepEnterPersonalData
	StepConfirmed
)

var stepNames = map[Step]string{
	StepSelectLocation:    "select_location",
	StepSelectServices:    "select_services",
	StepSelectDateTime:    "select_date_time",
	StepEnterPersonalData: "enter_personal_data",
	StepConfirmed:         "confirmed",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}

	return fmt.Sprintf("step(%d)", int(s))
}

func (s Step) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Step) UnmarshalText(text []byte) error {
	for step, name := range stepNames {
		if name == string(text) {
			*s = step

			return nil
		}
	}

	return fmt.Errorf("unknown step %q", string(text))
}

const (
	FieldLocation = "location"
	FieldServices = "services"
	FieldDate     = "date"
	FieldTime     = "time"
	FieldName     = "name"
	FieldPhone    = "phone"
	FieldEmail    = "email"
	FieldNotes    = "notes"
)

// Loading categories, also used as keys of Snapshot.Errors.
const (
	CategoryLocations = "locations"
	CategoryServices  = "services"
	CategorySlots     = "slots"
)

// Draft is the reservation being assembled. Services holds item keys in selection order.
type Draft struct {
	LocationID int64    `json:"location_id,omitempty"`
	Services   []string `json:"services"`
	Date       string   `json:"date,omitempty"`
	Time       string   `json:"time,omitempty"`
	Name       string   `json:"name,omitempty"`
	Phone      string   `json:"phone,omitempty"`
	Email      string   `json:"email,omitempty"`
	Notes      string   `json:"notes,omitempty"`
}

func (d Draft) Contact() Contact {
	return Contact{
		Name:  strings.TrimSpace(d.Name),
		Phone: strings.TrimSpace(d.Phone),
		Email: strings.TrimSpace(d.Email),
		Notes: d.Notes,
	}
}

// Contact carries the validation rules of the personal data step.
type Contact struct {
	Name  string `json:"name"  validate:"required,max=100"`
	Phone string `json:"phone" validate:"required,phone"`
	Email string `json:"email" validate:"required,email,max=100"`
	Notes string `json:"notes" validate:"max=500"`
}

// Loading reports every in-flight store call separately.
type Loading struct {
	Locations  bool `json:"locations"`
	Services   bool `json:"services"`
	Slots      bool `json:"slots"`
	Submitting bool `json:"submitting"`
}

type Summary struct {
	DurationMinutes int    `json:"duration_minutes"`
	PriceLabel      string `json:"price_label"`
}

func SummaryFrom(totals cartModel.Totals) Summary {
	return Summary{DurationMinutes: totals.DurationMinutes, PriceLabel: totals.PriceLabel}
}

type Confirmation struct {
	BookingID    string   `json:"booking_id"`
	LocationID   int64    `json:"location_id"`
	LocationName string   `json:"location_name"`
	Date         string   `json:"date"`
	Time         string   `json:"time"`
	Services     []string `json:"services"`
	ClientName   string   `json:"client_name"`
	Summary      Summary  `json:"summary"`
}

// Snapshot is a consistent copy of a wizard's state.
type Snapshot struct {
	Step         Step                    `json:"step"`
	Draft        Draft                   `json:"draft"`
	Loading      Loading                 `json:"loading"`
	CanGoNext    bool                    `json:"can_go_next"`
	CanGoBack    bool                    `json:"can_go_back"`
	CanSubmit    bool                    `json:"can_submit"`
	Locations    []catalogModel.Location `json:"locations"`
	Items        []catalogModel.Item     `json:"items"`
	Dates        []string                `json:"dates"`
	TimeSlots    []string                `json:"time_slots"`
	BlockedSlots []string                `json:"blocked_slots"`
	Summary      Summary                 `json:"summary"`
	Errors       map[string]string       `json:"errors,omitempty"`
	FieldErrors  map[string]string       `json:"field_errors,omitempty"`
	Notice       string                  `json:"notice,omitempty"`
	Confirmation *Confirmation           `json:"confirmation,omitempty"`
}
