package geo

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	apperrors "github.com/autogirlng/muvment-customer-sub002/pkg/errors"
	httputil "github.com/autogirlng/muvment-customer-sub002/pkg/http"
	"github.com/autogirlng/muvment-customer-sub002/pkg/logger"
	"github.com/autogirlng/muvment-customer-sub002/pkg/model"
)

type Handler struct {
	service *Service
	log     *logger.Logger
}

func NewHandler(service *Service, log *logger.Logger) *Handler {
	return &Handler{service: service, log: log}
}

func (h *Handler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/geo/search", h.Search)
	router.GET("/api/v1/geo/reverse", h.Reverse)
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	places, err := h.service.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteSuccess(w, places)
}

func (h *Handler) Reverse(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()
	lat, latErr := strconv.ParseFloat(query.Get("lat"), 64)
	lng, lngErr := strconv.ParseFloat(query.Get("lng"), 64)
	if latErr != nil || lngErr != nil {
		httputil.WriteError(w, apperrors.InvalidInput("lat and lng parameters are required"))
		return
	}

	place, err := h.service.Reverse(r.Context(), model.Coordinates{Latitude: lat, Longitude: lng})
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteSuccess(w, place)
}
