package middleware

import (
	"context"
	"errors"
	"net/http"
	"salon/infras/jwt"
	"salon/infras/otel"
	"salon/permissions"
	"salon/shared/constant"
	"salon/shared/failure"
	"salon/transport/http/response"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Visitor resolves the visitor token. Public routes pass through, an optional token on them is still read.
type Visitor interface {
	Authenticate(next http.Handler) http.Handler
}

type visitorImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
	permission *permissions.PermissionData
}

func NewVisitorMiddleware(jwtService jwt.JWT, otel otel.Otel, permissions *permissions.PermissionData) Visitor {
	return &visitorImpl{
		jwtService: jwtService,
		otel:       otel,
		permission: permissions,
	}
}

func (m *visitorImpl) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "visitor.middleware")

		path := m.routePattern(request)
		public := path == "" || (m.permission != nil && m.permission.IsPublic(path, request.Method))

		scope.SetAttributes(map[string]any{
			"middleware.type": "visitor",
			"http.path":       path,
			"http.method":     request.Method,
			"http.public":     public,
		})

		authHeader := request.Header.Get(constant.RequestHeaderAuthorization)
		if authHeader == "" && public {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		claims, err := m.claims(authHeader)
		if err != nil {
			scope.TraceError(err)
			scope.End()

			if public {
				next.ServeHTTP(writer, request)

				return
			}

			response.WithError(writer, err)

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyVisitorID, claims.VisitorID)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID)

		scope.End()

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

func (m *visitorImpl) claims(authHeader string) (*jwt.Claims, error) {
	if authHeader == "" {
		return nil, failure.Unauthorized("Missing authorization header") //nolint:wrapcheck
	}

	tokenString, err := jwt.ExtractTokenFromHeader(authHeader)
	if err != nil {
		return nil, failure.Unauthorized("Invalid authorization header format") //nolint:wrapcheck
	}

	claims, err := m.jwtService.ValidateToken(tokenString)
	if err != nil {
		var message string

		switch {
		case errors.Is(err, jwt.ErrExpiredToken):
			message = "Token has expired"
		case errors.Is(err, jwt.ErrInvalidToken):
			message = "Invalid token"
		case errors.Is(err, jwt.ErrInvalidClaim):
			message = "Invalid token claims"
		default:
			message = "Token validation failed"
		}

		return nil, failure.Unauthorized(message) //nolint:wrapcheck
	}

	return claims, nil
}

// routePattern resolves the registered pattern for the request, or "" when nothing matches
// so the router can answer 404 itself.
func (m *visitorImpl) routePattern(request *http.Request) string {
	rctx := chi.RouteContext(request.Context())
	if rctx == nil || rctx.Routes == nil {
		return request.URL.Path
	}

	path := rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path)
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}

	return path
}
