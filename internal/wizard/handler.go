package wizard

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"github.com/autogirlng/muvment-customer-sub002/internal/session"
	"github.com/autogirlng/muvment-customer-sub002/pkg/analytics"
	apperrors "github.com/autogirlng/muvment-customer-sub002/pkg/errors"
	httputil "github.com/autogirlng/muvment-customer-sub002/pkg/http"
	"github.com/autogirlng/muvment-customer-sub002/pkg/logger"
	"github.com/autogirlng/muvment-customer-sub002/pkg/model"
)

const searchPagePath = "/vehicles"

type Handler struct {
	controller *Controller
	sessions   *session.Middleware
	events     analytics.Publisher
	log        *logger.Logger
}

func NewHandler(controller *Controller, sessions *session.Middleware, events analytics.Publisher, log *logger.Logger) *Handler {
	return &Handler{
		controller: controller,
		sessions:   sessions,
		events:     events,
		log:        log,
	}
}

func (h *Handler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/wizard/drafts", h.sessions.Require(h.Start))
	router.GET("/api/v1/wizard/restore", h.sessions.Require(h.Restore))
	router.GET("/api/v1/wizard/drafts/:id", h.sessions.Require(h.Get))
	router.DELETE("/api/v1/wizard/drafts/:id", h.sessions.Require(h.Reset))
	router.PUT("/api/v1/wizard/drafts/:id/step", h.sessions.Require(h.GoToStep))
	router.PUT("/api/v1/wizard/drafts/:id/contact", h.sessions.Require(h.SubmitPersonalInfo))
	router.PUT("/api/v1/wizard/drafts/:id/vehicle", h.sessions.Require(h.SetVehicle))
	router.POST("/api/v1/wizard/drafts/:id/segments", h.sessions.Require(h.AddSegment))
	router.PUT("/api/v1/wizard/drafts/:id/segments/:segmentId", h.sessions.Require(h.UpdateSegment))
	router.DELETE("/api/v1/wizard/drafts/:id/segments/:segmentId", h.sessions.Require(h.RemoveSegment))
}

func (h *Handler) Start(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var payload struct {
		VehicleID string `json:"vehicleId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httputil.WriteError(w, apperrors.InvalidInput("Invalid request body"))
		return
	}

	// Landing on the booking flow without a vehicle sends the customer
	// back where they came from.
	if payload.VehicleID == "" {
		target := r.Referer()
		if target == "" {
			target = searchPagePath
		}
		http.Redirect(w, r, target, http.StatusSeeOther)
		return
	}

	s, _ := session.FromContext(r.Context())
	draft, err := h.controller.Start(r.Context(), s.ID, payload.VehicleID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.events.Publish(r.Context(), analytics.Event{
		Name:      analytics.EventBookingStarted,
		SessionID: s.ID,
		Props:     map[string]any{"vehicleId": payload.VehicleID},
	})
	httputil.WriteCreated(w, draft)
}

// Restore hands back the persisted draft when it matches what the client
// last saw; query params carry the client's revision and segment ids.
func (h *Handler) Restore(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s, _ := session.FromContext(r.Context())

	query := r.URL.Query()
	revision, err := strconv.ParseInt(query.Get("revision"), 10, 64)
	if err != nil {
		httputil.WriteError(w, apperrors.InvalidInput("invalid revision parameter"))
		return
	}
	segmentIDs := query["segmentId"]

	draft, err := h.controller.Restore(r.Context(), s.ID, revision, segmentIDs)
	if err != nil {
		httputil.WriteError(w, apperrors.NotFound("booking draft"))
		return
	}
	httputil.WriteSuccess(w, draft)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	s, _ := session.FromContext(r.Context())
	draft, err := h.controller.Get(r.Context(), s.ID, ps.ByName("id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteSuccess(w, draft)
}

func (h *Handler) Reset(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	s, _ := session.FromContext(r.Context())
	if err := h.controller.Reset(r.Context(), s.ID, ps.ByName("id")); err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteNoContent(w)
}

func (h *Handler) GoToStep(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var payload struct {
		Step int `json:"step"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httputil.WriteError(w, apperrors.InvalidInput("Invalid request body"))
		return
	}

	s, _ := session.FromContext(r.Context())
	draft, err := h.controller.GoToStep(r.Context(), s.ID, ps.ByName("id"), payload.Step)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteSuccess(w, draft)
}

func (h *Handler) SubmitPersonalInfo(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var contact model.ContactInfo
	if err := json.NewDecoder(r.Body).Decode(&contact); err != nil {
		httputil.WriteError(w, apperrors.InvalidInput("Invalid request body"))
		return
	}

	s, _ := session.FromContext(r.Context())
	draft, err := h.controller.SubmitPersonalInfo(r.Context(), s.ID, ps.ByName("id"), contact)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteSuccess(w, draft)
}

func (h *Handler) SetVehicle(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var payload struct {
		VehicleID string `json:"vehicleId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httputil.WriteError(w, apperrors.InvalidInput("Invalid request body"))
		return
	}

	s, _ := session.FromContext(r.Context())
	draft, err := h.controller.SetVehicle(r.Context(), s.ID, ps.ByName("id"), payload.VehicleID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteSuccess(w, draft)
}

func (h *Handler) AddSegment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var segment model.TripSegment
	if err := json.NewDecoder(r.Body).Decode(&segment); err != nil {
		httputil.WriteError(w, apperrors.InvalidInput("Invalid request body"))
		return
	}

	s, _ := session.FromContext(r.Context())
	draft, err := h.controller.AddSegment(r.Context(), s.ID, ps.ByName("id"), &segment)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteSuccess(w, draft)
}

func (h *Handler) UpdateSegment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var update model.TripSegmentUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		httputil.WriteError(w, apperrors.InvalidInput("Invalid request body"))
		return
	}

	s, _ := session.FromContext(r.Context())
	draft, err := h.controller.UpdateSegment(r.Context(), s.ID, ps.ByName("id"), ps.ByName("segmentId"), update)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteSuccess(w, draft)
}

func (h *Handler) RemoveSegment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	s, _ := session.FromContext(r.Context())
	draft, err := h.controller.RemoveSegment(r.Context(), s.ID, ps.ByName("id"), ps.ByName("segmentId"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteSuccess(w, draft)
}
