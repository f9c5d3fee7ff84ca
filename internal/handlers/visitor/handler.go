package visitor

import (
	"net/http"
	"salon/infras/jwt"
	"salon/infras/otel"
	"salon/shared/constant"
	"salon/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	jwt  jwt.JWT
	otel otel.Otel
}

func New(jwt jwt.JWT, otel otel.Otel) Handler {
	return Handler{
		jwt:  jwt,
		otel: otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Post("/visitors", handler.Issue)
}

// Issue hands out an anonymous visitor identity
// @Summary Issue a visitor token
// @Description Creates a visitor id and a signed token. The token keys the cart and owns booking sessions.
// @Tags Visitor
// @Produce json
// @Success 201 {object} response.Data[jwt.Visitor] "Visitor token"
// @Failure 500 {object} response.Error
// @Router /v1/visitors [post]
func (handler *Handler) Issue(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".IssueVisitor")
	defer scope.End()

	visitor, err := handler.jwt.IssueVisitor()
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to issue visitor token")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Visitor issued " + visitor.VisitorID)

	response.WithJSON(w, http.StatusCreated, visitor)
}
