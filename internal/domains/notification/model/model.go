package model

import (
	"fmt"
	"strings"
)

const (
	EventBookingCreated = "booking.created"
)

// Notice is what the salon staff needs to know about a new booking.
type Notice struct {
	BookingID    string `json:"booking_id"`
	ClientName   string `json:"client_name"`
	ClientEmail  string `json:"client_email"`
	ClientPhone  string `json:"client_phone"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	LocationName string `json:"location_name"`
	Services     string `json:"services"`
	Notes        string `json:"notes"`
}

func (n Notice) Subject() string {
	return fmt.Sprintf("Nueva reserva: %s %s %s", n.Date, n.Time, n.LocationName)
}

func (n Notice) Body() string {
	var body strings.Builder

	fmt.Fprintf(&body, "Reserva %s\n\n", n.BookingID)
	fmt.Fprintf(&body, "Cliente: %s\n", n.ClientName)
	fmt.Fprintf(&body, "Email: %s\n", n.ClientEmail)
	fmt.Fprintf(&body, "Teléfono: %s\n", n.ClientPhone)
	fmt.Fprintf(&body, "Centro: %s\n", n.LocationName)
	fmt.Fprintf(&body, "Fecha: %s %s\n", n.Date, n.Time)
	fmt.Fprintf(&body, "Servicios: %s\n", n.Services)

	if n.Notes != "" {
		fmt.Fprintf(&body, "Notas: %s\n", n.Notes)
	}

	return body.String()
}
