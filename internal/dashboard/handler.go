package dashboard

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/autogirlng/muvment-customer-sub002/internal/session"
	apperrors "github.com/autogirlng/muvment-customer-sub002/pkg/errors"
	httputil "github.com/autogirlng/muvment-customer-sub002/pkg/http"
	"github.com/autogirlng/muvment-customer-sub002/pkg/logger"
	"github.com/autogirlng/muvment-customer-sub002/pkg/model"
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
	router.GET("/api/v1/dashboard/profile", h.sessions.Require(h.Profile))
	router.PUT("/api/v1/dashboard/profile", h.sessions.Require(h.UpdateProfile))
	router.GET("/api/v1/dashboard/favourites", h.sessions.Require(h.Favourites))
	router.POST("/api/v1/dashboard/favourites", h.sessions.Require(h.AddFavourite))
	router.DELETE("/api/v1/dashboard/favourites/:vehicleId", h.sessions.Require(h.RemoveFavourite))
	router.GET("/api/v1/dashboard/bookings", h.sessions.Require(h.Bookings))
}

func (h *Handler) Profile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s, _ := session.FromContext(r.Context())

	user, err := h.service.Profile(r.Context(), s.AccessToken)
	if err != nil {
		httputil.WriteErrorOrRedirect(w, r, err)
		return
	}
	httputil.WriteSuccess(w, user)
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var update model.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		httputil.WriteError(w, apperrors.InvalidInput("Invalid request body"))
		return
	}

	s, _ := session.FromContext(r.Context())
	user, err := h.service.UpdateProfile(r.Context(), &update, s.AccessToken)
	if err != nil {
		httputil.WriteErrorOrRedirect(w, r, err)
		return
	}
	httputil.WriteSuccess(w, user)
}

func (h *Handler) Favourites(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	page, size, err := httputil.ExtractPage(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	s, _ := session.FromContext(r.Context())
	vehicles, meta, err := h.service.Favourites(r.Context(), s.AccessToken, page, size)
	if err != nil {
		httputil.WriteErrorOrRedirect(w, r, err)
		return
	}
	httputil.WritePage(w, vehicles, meta.Page, meta.Size, meta.TotalElements, meta.TotalPages)
}

func (h *Handler) AddFavourite(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var payload struct {
		VehicleID string `json:"vehicleId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httputil.WriteError(w, apperrors.InvalidInput("Invalid request body"))
		return
	}

	s, _ := session.FromContext(r.Context())
	if err := h.service.AddFavourite(r.Context(), payload.VehicleID, s.AccessToken); err != nil {
		httputil.WriteErrorOrRedirect(w, r, err)
		return
	}
	httputil.WriteNoContent(w)
}

func (h *Handler) RemoveFavourite(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	s, _ := session.FromContext(r.Context())

	if err := h.service.RemoveFavourite(r.Context(), ps.ByName("vehicleId"), s.AccessToken); err != nil {
		httputil.WriteErrorOrRedirect(w, r, err)
		return
	}
	httputil.WriteNoContent(w)
}

func (h *Handler) Bookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	page, size, err := httputil.ExtractPage(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	s, _ := session.FromContext(r.Context())
	bookings, meta, err := h.service.Bookings(r.Context(), s.AccessToken, page, size)
	if err != nil {
		httputil.WriteErrorOrRedirect(w, r, err)
		return
	}
	httputil.WritePage(w, bookings, meta.Page, meta.Size, meta.TotalElements, meta.TotalPages)
}
