package checkout

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/autogirlng/muvment-customer-sub002/internal/session"
	apperrors "github.com/autogirlng/muvment-customer-sub002/pkg/errors"
	httputil "github.com/autogirlng/muvment-customer-sub002/pkg/http"
	"github.com/autogirlng/muvment-customer-sub002/pkg/logger"
)

type Handler struct {
	service  *Service
	sessions *session.Middleware
	log      *logger.Logger
}

func NewHandler(service *Service, sessions *session.Middleware, log *logger.Logger) *Handler {
	return &Handler{
		service:  service,
		sessions: sessions,
		log:      log,
	}
}

func (h *Handler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/checkout/:draftId/calculate", h.sessions.Require(h.Calculate))
	router.POST("/api/v1/checkout/:draftId/booking", h.sessions.Require(h.CreateBooking))
	router.POST("/api/v1/checkout/:draftId/payment", h.sessions.Require(h.InitiatePayment))
	router.POST("/api/v1/checkout/:draftId/payment/confirm", h.sessions.Require(h.ConfirmPayment))
	router.GET("/api/v1/checkout/:draftId", h.sessions.Require(h.Status))
}

func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	s, _ := session.FromContext(r.Context())

	draft, err := h.service.Calculate(r.Context(), s.ID, s.AccessToken, ps.ByName("draftId"))
	if err != nil {
		httputil.WriteErrorOrRedirect(w, r, err)
		return
	}
	httputil.WriteSuccess(w, draft)
}

func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var payload struct {
		CalculationID string `json:"calculationId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httputil.WriteError(w, apperrors.InvalidInput("Invalid request body"))
		return
	}

	s, _ := session.FromContext(r.Context())
	booking, err := h.service.CreateBooking(r.Context(), s.ID, s.AccessToken, ps.ByName("draftId"), payload.CalculationID)
	if err != nil {
		httputil.WriteErrorOrRedirect(w, r, err)
		return
	}
	httputil.WriteCreated(w, booking)
}

func (h *Handler) InitiatePayment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	s, _ := session.FromContext(r.Context())

	payment, err := h.service.InitiatePayment(r.Context(), s.ID, s.AccessToken, ps.ByName("draftId"))
	if err != nil {
		httputil.WriteErrorOrRedirect(w, r, err)
		return
	}
	httputil.WriteSuccess(w, payment)
}

func (h *Handler) ConfirmPayment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	s, _ := session.FromContext(r.Context())

	checkout, err := h.service.ConfirmPayment(r.Context(), s.ID, s.AccessToken, ps.ByName("draftId"))
	if err != nil {
		httputil.WriteErrorOrRedirect(w, r, err)
		return
	}
	httputil.WriteSuccess(w, checkout)
}

func (h *Handler) Status(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	s, _ := session.FromContext(r.Context())

	checkout, err := h.service.Status(r.Context(), s.ID, ps.ByName("draftId"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteSuccess(w, checkout)
}
