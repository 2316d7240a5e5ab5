// AngelaMos | 2026
// handler.go

package fees

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel/attribute"

	"github.com/carterperez-dev/etsy-dashboard-api/internal/core"
)

type Handler struct {
	validator *validator.Validate
}

func NewHandler() *Handler {
	return &Handler{validator: core.NewValidator()}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/calculate-fees", h.Calculate)
	r.Get("/fees/info", h.Info)
}

func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.UnprocessableEntity(w, core.FormatValidationError(err))
		return
	}

	_, span := core.StartSpan(r.Context(), "fees.Calculate",
		attribute.Bool("offsite_ads", req.OffsiteAds),
	)
	result, err := Calculate(req.toInput())
	span.End()
	if err != nil {
		if errors.Is(err, core.ErrInvalidInput) {
			core.UnprocessableEntity(w, err.Error())
			return
		}
		core.InternalServerError(w, r, err)
		return
	}

	core.OK(w, result)
}

func (h *Handler) Info(w http.ResponseWriter, _ *http.Request) {
	core.OK(w, Info())
}
