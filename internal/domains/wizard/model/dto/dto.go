package dto

import (
	catalogDto "salon/internal/domains/catalog/model/dto"
	"salon/internal/domains/wizard/model"
)

type SetFieldRequest struct {
	Field string `json:"field" validate:"required,oneof=location date time name phone email notes"`
	Value string `json:"value" validate:"max=500"`
}

type SelectServicesRequest struct {
	Keys []string `json:"keys" validate:"max=50,dive,required,max=64"`
}

// SessionResponse is the wizard state sent to the browser after every action.
type SessionResponse struct {
	ID           string                        `json:"id"`
	Step         model.Step                    `json:"step"`
	Draft        model.Draft                   `json:"draft"`
	Loading      model.Loading                 `json:"loading"`
	CanGoNext    bool                          `json:"can_go_next"`
	CanGoBack    bool                          `json:"can_go_back"`
	CanSubmit    bool                          `json:"can_submit"`
	Locations    []catalogDto.LocationResponse `json:"locations"`
	Items        []catalogDto.ItemResponse     `json:"items"`
	Dates        []string                      `json:"dates"`
	TimeSlots    []string                      `json:"time_slots"`
	BlockedSlots []string                      `json:"blocked_slots"`
	Summary      model.Summary                 `json:"summary"`
	Errors       map[string]string             `json:"errors,omitempty"`
	FieldErrors  map[string]string             `json:"field_errors,omitempty"`
	Notice       string                        `json:"notice,omitempty"`
	Confirmation *model.Confirmation           `json:"confirmation,omitempty"`
}

func (r *SessionResponse) FromSnapshot(id string, snapshot model.Snapshot) {
	r.ID = id
	r.Step = snapshot.Step
	r.Draft = snapshot.Draft
	r.Loading = snapshot.Loading
	r.CanGoNext = snapshot.CanGoNext
	r.CanGoBack = snapshot.CanGoBack
	r.CanSubmit = snapshot.CanSubmit
	r.Locations = catalogDto.FromLocations(snapshot.Locations)
	r.Items = catalogDto.FromItems(snapshot.Items)
	r.Dates = snapshot.Dates
	r.TimeSlots = snapshot.TimeSlots
	r.BlockedSlots = snapshot.BlockedSlots
	r.Summary = snapshot.Summary
	r.Errors = snapshot.Errors
	r.FieldErrors = snapshot.FieldErrors
	r.Notice = snapshot.Notice
	r.Confirmation = snapshot.Confirmation

	if r.Draft.Services == nil {
		r.Draft.Services = []string{}
	}

	if r.BlockedSlots == nil {
		r.BlockedSlots = []string{}
	}
}
