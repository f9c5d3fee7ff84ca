package wizard_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	otelMocks "salon/infras/otel/mocks"
	"salon/internal/domains/wizard/mocks"
	"salon/internal/domains/wizard/model"
	"salon/internal/domains/wizard/model/dto"
	"salon/internal/handlers/wizard"
	"salon/shared/constant"
	"salon/shared/failure"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	visitorID = "visitor-1"
	sessionID = "session-1"
)

type fixture struct {
	sessions    *mocks.MockSessions
	coordinator *mocks.MockCoordinator
	router      http.Handler
}

func setup(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := fixture{
		sessions:    mocks.NewMockSessions(ctrl),
		coordinator: mocks.NewMockCoordinator(ctrl),
	}

	handler := wizard.New(f.sessions, otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), constant.ContextKeyVisitorID, visitorID)))
		})
	})
	handler.Router(router)

	f.router = router

	return f
}

func (f fixture) do(method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))

	return rec
}

func (f fixture) expectSession() {
	f.sessions.EXPECT().Get(visitorID, sessionID).Return(f.coordinator, nil)
}

type envelope struct {
	Data  dto.SessionResponse `json:"data"`
	Error string              `json:"error"`
	Kind  string              `json:"kind"`
	Field string              `json:"field"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestHandler_Start(t *testing.T) {
	f := setup(t)

	f.sessions.EXPECT().Start(gomock.Any(), visitorID).Return(sessionID, f.coordinator)
	f.coordinator.EXPECT().Snapshot().Return(model.Snapshot{Step: model.StepSelectLocation})

	rec := f.do(http.MethodPost, "/booking/sessions", "")
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, sessionID, body.Data.ID)
	assert.Equal(t, model.StepSelectLocation, body.Data.Step)
}

func TestHandler_GetUnknownSession(t *testing.T) {
	f := setup(t)

	f.sessions.EXPECT().Get(visitorID, "nope").Return(nil, failure.NotFound("booking session not found"))

	rec := f.do(http.MethodGet, "/booking/sessions/nope", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_NextAndBack(t *testing.T) {
	f := setup(t)

	f.sessions.EXPECT().Get(visitorID, sessionID).Return(f.coordinator, nil).Times(2)
	f.coordinator.EXPECT().GoNext(gomock.Any()).Return(true)
	f.coordinator.EXPECT().GoBack().Return(true)
	f.coordinator.EXPECT().Snapshot().Return(model.Snapshot{Step: model.StepSelectServices})
	f.coordinator.EXPECT().Snapshot().Return(model.Snapshot{Step: model.StepSelectLocation})

	next := f.do(http.MethodPost, "/booking/sessions/"+sessionID+"/next", "")
	require.Equal(t, http.StatusOK, next.Code)
	assert.Equal(t, model.StepSelectServices, decode(t, next).Data.Step)

	back := f.do(http.MethodPost, "/booking/sessions/"+sessionID+"/back", "")
	require.Equal(t, http.StatusOK, back.Code)
	assert.Equal(t, model.StepSelectLocation, decode(t, back).Data.Step)
}

func TestHandler_SetField(t *testing.T) {
	f := setup(t)

	f.expectSession()
	f.coordinator.EXPECT().SetField(gomock.Any(), model.FieldDate, "2025-06-02").Return(nil)
	f.coordinator.EXPECT().Snapshot().Return(model.Snapshot{
		Step:         model.StepSelectDateTime,
		Draft:        model.Draft{LocationID: 1, Services: []string{"service:5"}, Date: "2025-06-02"},
		BlockedSlots: []string{"10:00"},
	})

	rec := f.do(http.MethodPut, "/booking/sessions/"+sessionID+"/fields", `{"field":"date","value":"2025-06-02"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, "2025-06-02", body.Data.Draft.Date)
	assert.Equal(t, []string{"10:00"}, body.Data.BlockedSlots)
}

func TestHandler_SetFieldRejected(t *testing.T) {
	f := setup(t)

	f.expectSession()
	f.coordinator.EXPECT().SetField(gomock.Any(), model.FieldTime, "07:00").
		Return(failure.Validation(model.FieldTime, "time is not an offered slot"))
	f.coordinator.EXPECT().Snapshot().Return(model.Snapshot{Step: model.StepSelectDateTime})

	rec := f.do(http.MethodPut, "/booking/sessions/"+sessionID+"/fields", `{"field":"time","value":"07:00"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, model.FieldTime, body.Field)
	assert.Equal(t, string(failure.KindValidation), body.Kind)
	assert.Equal(t, sessionID, body.Data.ID)
}

func TestHandler_SetFieldUnknownField(t *testing.T) {
	f := setup(t)

	f.expectSession()

	rec := f.do(http.MethodPut, "/booking/sessions/"+sessionID+"/fields", `{"field":"status","value":"x"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_SelectServices(t *testing.T) {
	f := setup(t)

	f.expectSession()
	f.coordinator.EXPECT().SelectServices(gomock.Any(), []string{"service:5", "package:2"}).Return(nil)
	f.coordinator.EXPECT().Snapshot().Return(model.Snapshot{
		Step:  model.StepSelectServices,
		Draft: model.Draft{LocationID: 1, Services: []string{"service:5", "package:2"}},
	})

	rec := f.do(http.MethodPut, "/booking/sessions/"+sessionID+"/services", `{"keys":["service:5","package:2"]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"service:5", "package:2"}, decode(t, rec).Data.Draft.Services)
}

func TestHandler_Submit(t *testing.T) {
	f := setup(t)

	f.expectSession()
	f.coordinator.EXPECT().Submit(gomock.Any()).Return(nil)
	f.coordinator.EXPECT().Snapshot().Return(model.Snapshot{
		Step:         model.StepConfirmed,
		Confirmation: &model.Confirmation{BookingID: "b-1", Date: "2025-06-02", Time: "10:00"},
	})

	rec := f.do(http.MethodPost, "/booking/sessions/"+sessionID+"/submit", "")
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decode(t, rec)
	require.NotNil(t, body.Data.Confirmation)
	assert.Equal(t, "b-1", body.Data.Confirmation.BookingID)
}

func TestHandler_SubmitConflict(t *testing.T) {
	f := setup(t)

	f.expectSession()
	f.coordinator.EXPECT().Submit(gomock.Any()).Return(failure.SlotConflictError)
	f.coordinator.EXPECT().Snapshot().Return(model.Snapshot{
		Step:         model.StepSelectDateTime,
		Draft:        model.Draft{LocationID: 1, Date: "2025-06-02"},
		BlockedSlots: []string{"10:00"},
		Notice:       "the selected time has just been booked by someone else, please choose another time",
	})

	rec := f.do(http.MethodPost, "/booking/sessions/"+sessionID+"/submit", "")
	require.Equal(t, http.StatusConflict, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, string(failure.KindSlotConflict), body.Kind)
	assert.Equal(t, model.StepSelectDateTime, body.Data.Step)
	assert.Empty(t, body.Data.Draft.Time)
	assert.NotEmpty(t, body.Data.Notice)
}

func TestHandler_ResetInFlight(t *testing.T) {
	f := setup(t)

	f.expectSession()
	f.coordinator.EXPECT().Reset().Return(failure.SubmissionInFlightError)
	f.coordinator.EXPECT().Snapshot().Return(model.Snapshot{Step: model.StepEnterPersonalData, Loading: model.Loading{Submitting: true}})

	rec := f.do(http.MethodPost, "/booking/sessions/"+sessionID+"/reset", "")

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.True(t, decode(t, rec).Data.Loading.Submitting)
}

func TestHandler_Reload(t *testing.T) {
	f := setup(t)

	f.expectSession()
	gomock.InOrder(
		f.coordinator.EXPECT().LoadLocations(gomock.Any()),
		f.coordinator.EXPECT().LoadServices(gomock.Any()),
		f.coordinator.EXPECT().Snapshot().Return(model.Snapshot{Step: model.StepSelectLocation}),
	)

	rec := f.do(http.MethodPost, "/booking/sessions/"+sessionID+"/reload", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}
