package dto

import (
	"salon/internal/domains/booking/model"
	"salon/shared/constant"
	gDto "salon/shared/dto"
	gModel "salon/shared/model"
	"salon/shared/timezone"
	"strings"

	"github.com/google/uuid"
)

type ReserveRequest struct {
	LocationID  int64    `json:"location_id"  validate:"required,gt=0"`
	Services    []string `json:"services"     validate:"required,min=1,dive,required,max=64"`
	BookingDate string   `json:"booking_date" validate:"required,day"`
	BookingTime string   `json:"booking_time" validate:"required,clock"`
	ClientName  string   `json:"client_name"  validate:"required,max=100"`
	ClientPhone string   `json:"client_phone" validate:"required,phone"`
	ClientEmail string   `json:"client_email" validate:"required,email,max=100"`
	Notes       string   `json:"notes"        validate:"omitempty,max=500"`
}

func (r *ReserveRequest) ToModel(user string) model.Booking {
	now := timezone.Now()

	return model.Booking{
		ID:          uuid.NewString(),
		LocationID:  r.LocationID,
		Services:    append([]string{}, r.Services...),
		BookingDate: r.BookingDate,
		BookingTime: r.BookingTime,
		ClientName:  strings.TrimSpace(r.ClientName),
		ClientPhone: strings.TrimSpace(r.ClientPhone),
		ClientEmail: strings.TrimSpace(r.ClientEmail),
		Notes:       strings.TrimSpace(r.Notes),
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type BookingResponse struct {
	ID          string   `json:"id"`
	LocationID  int64    `json:"location_id"`
	Services    []string `json:"services"`
	BookingDate string   `json:"booking_date"`
	BookingTime string   `json:"booking_time"`
	ClientName  string   `json:"client_name"`
	ClientPhone string   `json:"client_phone"`
	ClientEmail string   `json:"client_email"`
	Notes       string   `json:"notes"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.LocationID = model.LocationID
	r.Services = []string(model.Services)
	r.BookingDate = model.BookingDate
	r.BookingTime = model.BookingTime
	r.ClientName = model.ClientName
	r.ClientPhone = model.ClientPhone
	r.ClientEmail = model.ClientEmail
	r.Notes = model.Notes
	r.Metadata.FromModel(model.Metadata)
}

type BlockedSlotsResponse struct {
	LocationID int64    `json:"location_id"`
	Date       string   `json:"date"`
	Blocked    []string `json:"blocked"`
}

// DisplayDate renders an ISO day as dd/mm/yyyy. Unreadable input is returned unchanged.
func DisplayDate(day string) string {
	parsed, err := timezone.Parse(constant.DayFormat, day)
	if err != nil {
		return day
	}

	return parsed.Format(constant.DisplayFormat)
}
