package booking

import (
	"net/http"
	"salon/infras/otel"
	"salon/internal/domains/booking/model/dto"
	"salon/internal/domains/booking/service"
	"salon/shared"
	"salon/shared/constant"
	"salon/shared/failure"
	"salon/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/locations/{id}/blocked-slots", handler.GetBlockedSlots)
}

// GetBlockedSlots lists the times already taken at a location on a day.
// @Summary Get blocked slots
// @Description Returns the booked times ("HH:MM") for a location and date. The list is advisory, the reservation itself settles races.
// @Tags Booking
// @Produce json
// @Param id path int true "Location ID"
// @Param date query string true "Day (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.BlockedSlotsResponse] "Blocked slots"
// @Failure 400 {object} response.Error
// @Failure 503 {object} response.Error "Slot check unavailable"
// @Router /v1/locations/{id}/blocked-slots [get]
func (handler *Handler) GetBlockedSlots(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBlockedSlots")
	defer scope.End()

	locationID, err := shared.ConvertStringToInt64(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		err = failure.Validation("location_id", "location id must be a number")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	date := r.URL.Query().Get(constant.RequestParamDate)

	blocked, err := handler.service.BlockedSlots(ctx, locationID, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("locationID", locationID).Str("date", date).Msg("failed to get blocked slots")

		response.WithError(w, err)

		return
	}

	if blocked == nil {
		blocked = []string{}
	}

	response.WithJSON(w, http.StatusOK, dto.BlockedSlotsResponse{
		LocationID: locationID,
		Date:       date,
		Blocked:    blocked,
	})
}
