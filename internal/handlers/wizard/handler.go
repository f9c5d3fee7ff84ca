package wizard

import (
	"net/http"
	"salon/infras/otel"
	"salon/internal/domains/wizard/model/dto"
	"salon/internal/domains/wizard/service"
	"salon/shared"
	"salon/shared/constant"
	"salon/shared/validator"
	"salon/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	sessions service.Sessions
	otel     otel.Otel
}

func New(sessions service.Sessions, otel otel.Otel) Handler {
	return Handler{
		sessions: sessions,
		otel:     otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/booking/sessions", func(r chi.Router) {
		r.Post("/", handler.Start)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", handler.Get)
			r.Post("/next", handler.Next)
			r.Post("/back", handler.Back)
			r.Post("/submit", handler.Submit)
			r.Post("/reset", handler.Reset)
			r.Post("/reload", handler.Reload)
			r.Put("/fields", handler.SetField)
			r.Put("/services", handler.SelectServices)
		})
	})
}

// Start opens a booking wizard for the visitor
// @Summary Start booking
// @Description Opens a new wizard at the location step. Reloading the page means starting a new one, the cart is kept.
// @Tags Booking wizard
// @Produce json
// @Success 201 {object} response.Data[dto.SessionResponse] "Wizard state"
// @Failure 401 {object} response.Error
// @Router /v1/booking/sessions [post]
// @Security BearerAuth
func (handler *Handler) Start(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".StartBooking")
	defer scope.End()

	visitorID, err := shared.VisitorID(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	id, coordinator := handler.sessions.Start(ctx, visitorID)

	scope.AddEvent("Booking session started " + id)

	res := dto.SessionResponse{}
	res.FromSnapshot(id, coordinator.Snapshot())

	response.WithJSON(w, http.StatusCreated, res)
}

// Get returns the wizard state
// @Summary Get booking wizard
// @Tags Booking wizard
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Data[dto.SessionResponse] "Wizard state"
// @Failure 404 {object} response.Error
// @Router /v1/booking/sessions/{id} [get]
// @Security BearerAuth
func (handler *Handler) Get(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBooking")
	defer scope.End()

	id, coordinator, ok := handler.session(w, r)
	if !ok {
		return
	}

	handler.respond(w, http.StatusOK, id, coordinator)
}

// Next moves forward when the current step is complete. The state reports why it did not move.
// @Summary Next step
// @Tags Booking wizard
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Data[dto.SessionResponse] "Wizard state"
// @Failure 404 {object} response.Error
// @Router /v1/booking/sessions/{id}/next [post]
// @Security BearerAuth
func (handler *Handler) Next(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".NextStep")
	defer scope.End()

	id, coordinator, ok := handler.session(w, r)
	if !ok {
		return
	}

	scope.SetAttribute("wizard.moved", coordinator.GoNext(ctx))

	handler.respond(w, http.StatusOK, id, coordinator)
}

// Back moves one step back
// @Summary Previous step
// @Tags Booking wizard
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Data[dto.SessionResponse] "Wizard state"
// @Failure 404 {object} response.Error
// @Router /v1/booking/sessions/{id}/back [post]
// @Security BearerAuth
func (handler *Handler) Back(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PreviousStep")
	defer scope.End()

	id, coordinator, ok := handler.session(w, r)
	if !ok {
		return
	}

	scope.SetAttribute("wizard.moved", coordinator.GoBack())

	handler.respond(w, http.StatusOK, id, coordinator)
}

// SetField edits one draft field
// @Summary Set a draft field
// @Description Fields are location, date, time, name, phone, email and notes. Changing the location clears services, date and time; changing the date clears the time.
// @Tags Booking wizard
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.SetFieldRequest true "Field and value"
// @Success 200 {object} response.Data[dto.SessionResponse] "Wizard state"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Submission in progress"
// @Router /v1/booking/sessions/{id}/fields [put]
// @Security BearerAuth
func (handler *Handler) SetField(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetField")
	defer scope.End()

	id, coordinator, ok := handler.session(w, r)
	if !ok {
		return
	}

	req := dto.SetFieldRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := coordinator.SetField(ctx, req.Field, req.Value); err != nil {
		scope.TraceError(err)
		log.Debug().Err(err).Str("field", req.Field).Msg("booking field rejected")

		handler.respondError(w, err, id, coordinator)

		return
	}

	handler.respond(w, http.StatusOK, id, coordinator)
}

// SelectServices replaces the selected items, keeping the given order
// @Summary Select services
// @Tags Booking wizard
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.SelectServicesRequest true "Item keys"
// @Success 200 {object} response.Data[dto.SessionResponse] "Wizard state"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/booking/sessions/{id}/services [put]
// @Security BearerAuth
func (handler *Handler) SelectServices(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SelectServices")
	defer scope.End()

	id, coordinator, ok := handler.session(w, r)
	if !ok {
		return
	}

	req := dto.SelectServicesRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := coordinator.SelectServices(ctx, req.Keys); err != nil {
		scope.TraceError(err)

		handler.respondError(w, err, id, coordinator)

		return
	}

	handler.respond(w, http.StatusOK, id, coordinator)
}

// Submit reserves the slot. On a conflict the wizard is back at the date step with fresh availability.
// @Summary Submit booking
// @Tags Booking wizard
// @Produce json
// @Param id path string true "Session ID"
// @Success 201 {object} response.Data[dto.SessionResponse] "Confirmed booking"
// @Failure 400 {object} response.ErrorWithData[dto.SessionResponse] "Incomplete draft"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.ErrorWithData[dto.SessionResponse] "Slot taken or submission in progress"
// @Router /v1/booking/sessions/{id}/submit [post]
// @Security BearerAuth
func (handler *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitBooking")
	defer scope.End()

	id, coordinator, ok := handler.session(w, r)
	if !ok {
		return
	}

	if err := coordinator.Submit(ctx); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("session", id).Msg("booking submission failed")

		handler.respondError(w, err, id, coordinator)

		return
	}

	scope.AddEvent("Booking confirmed for session " + id)

	handler.respond(w, http.StatusCreated, id, coordinator)
}

// Reset discards the draft and starts again at the location step
// @Summary Reset booking
// @Tags Booking wizard
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Data[dto.SessionResponse] "Wizard state"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Submission in progress"
// @Router /v1/booking/sessions/{id}/reset [post]
// @Security BearerAuth
func (handler *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ResetBooking")
	defer scope.End()

	id, coordinator, ok := handler.session(w, r)
	if !ok {
		return
	}

	if err := coordinator.Reset(); err != nil {
		scope.TraceError(err)

		handler.respondError(w, err, id, coordinator)

		return
	}

	handler.respond(w, http.StatusOK, id, coordinator)
}

// Reload retries loading locations and services after the catalog was unavailable
// @Summary Reload catalog
// @Tags Booking wizard
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Data[dto.SessionResponse] "Wizard state"
// @Failure 404 {object} response.Error
// @Router /v1/booking/sessions/{id}/reload [post]
// @Security BearerAuth
func (handler *Handler) Reload(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReloadCatalog")
	defer scope.End()

	id, coordinator, ok := handler.session(w, r)
	if !ok {
		return
	}

	coordinator.LoadLocations(ctx)
	coordinator.LoadServices(ctx)

	handler.respond(w, http.StatusOK, id, coordinator)
}

// session resolves the wizard named in the path for the calling visitor and answers the
// request itself when there is none.
func (handler *Handler) session(w http.ResponseWriter, r *http.Request) (string, service.Coordinator, bool) {
	visitorID, err := shared.VisitorID(r.Context())
	if err != nil {
		response.WithError(w, err)

		return "", nil, false
	}

	id := chi.URLParam(r, constant.RequestParamID)

	coordinator, err := handler.sessions.Get(visitorID, id)
	if err != nil {
		response.WithError(w, err)

		return "", nil, false
	}

	return id, coordinator, true
}

func (handler *Handler) respond(w http.ResponseWriter, code int, id string, coordinator service.Coordinator) {
	res := dto.SessionResponse{}
	res.FromSnapshot(id, coordinator.Snapshot())

	response.WithJSON(w, code, res)
}

func (handler *Handler) respondError(w http.ResponseWriter, err error, id string, coordinator service.Coordinator) {
	res := dto.SessionResponse{}
	res.FromSnapshot(id, coordinator.Snapshot())

	response.WithErrorAndJSON(w, err, res)
}
