// AngelaMos | 2026
// handler.go

package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/etsy-dashboard-api/internal/core"
	"github.com/carterperez-dev/etsy-dashboard-api/internal/middleware"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: core.NewValidator(),
	}
}

// RegisterRoutes mounts the account endpoints. limiter, when non-nil,
// guards the credential endpoints with a stricter per-IP budget.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	limiter func(http.Handler) http.Handler,
) {
	r.Route("/auth", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			if limiter != nil {
				r.Use(limiter)
			}
			r.Post("/register", h.Register)
			r.Post("/login", h.Login)
		})

		r.Get("/users/{user_id}", h.GetUserInfo)
	})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.UnprocessableEntity(w, core.FormatValidationError(err))
		return
	}

	resp, err := h.service.Register(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailExists) {
			core.JSONError(w, core.DuplicateError("email"))
			return
		}
		core.InternalServerError(w, r, err)
		return
	}

	core.Created(w, resp)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.UnprocessableEntity(w, core.FormatValidationError(err))
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			core.JSONError(
				w,
				core.UnauthorizedError("invalid email or password"),
			)
			return
		}
		core.InternalServerError(w, r, err)
		return
	}

	core.OK(w, resp)
}

func (h *Handler) GetUserInfo(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")

	token := middleware.ExtractToken(r)
	if token == "" {
		core.JSONError(w, core.UnauthorizedError("missing authorization token"))
		return
	}

	resp, err := h.service.GetUserInfo(r.Context(), userID, token)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrTokenExpired),
			errors.Is(err, core.ErrTokenInvalid):
			slog.InfoContext(r.Context(), "token rejected",
				"reason", tokenRejectReason(err),
				"request_id", middleware.GetRequestID(r.Context()),
			)
			core.JSONError(w, core.TokenError(err))
		case errors.Is(err, core.ErrForbidden):
			core.Forbidden(w, "not authorized to view this account")
		case errors.Is(err, core.ErrNotFound):
			core.NotFound(w, "user")
		default:
			core.InternalServerError(w, r, err)
		}
		return
	}

	core.OK(w, resp)
}

func tokenRejectReason(err error) string {
	if errors.Is(err, core.ErrTokenExpired) {
		return "expired"
	}
	return "invalid"
}
