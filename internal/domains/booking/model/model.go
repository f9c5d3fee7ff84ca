package model

import (
	"salon/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID          = "id"
	FieldLocationID  = "location_id"
	FieldServices    = "services"
	FieldBookingDate = "booking_date"
	FieldBookingTime = "booking_time"
	FieldClientName  = "client_name"
	FieldClientPhone = "client_phone"
	FieldClientEmail = "client_email"
	FieldNotes       = "notes"
)

// Booking is one reserved slot. A location holds at most one booking per date and time;
// the store enforces it with a unique constraint.
type Booking struct {
	ID          string         `db:"id"`
	LocationID  int64          `db:"location_id"`
	Services    pq.StringArray `db:"services"`
	BookingDate string         `db:"booking_date"`
	BookingTime string         `db:"booking_time"`
	ClientName  string         `db:"client_name"`
	ClientPhone string         `db:"client_phone"`
	ClientEmail string         `db:"client_email"`
	Notes       string         `db:"notes"`
	model.Metadata
}
