package vehicles

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"github.com/autogirlng/muvment-customer-sub002/internal/session"
	"github.com/autogirlng/muvment-customer-sub002/pkg/analytics"
	apperrors "github.com/autogirlng/muvment-customer-sub002/pkg/errors"
	"github.com/autogirlng/muvment-customer-sub002/pkg/gateway"
	httputil "github.com/autogirlng/muvment-customer-sub002/pkg/http"
	"github.com/autogirlng/muvment-customer-sub002/pkg/logger"
	"github.com/autogirlng/muvment-customer-sub002/pkg/model"
)

type Handler struct {
	service  *Service
	sessions *session.Middleware
	events   analytics.Publisher
	log      *logger.Logger
}

func NewHandler(service *Service, sessions *session.Middleware, events analytics.Publisher, log *logger.Logger) *Handler {
	return &Handler{
		service:  service,
		sessions: sessions,
		events:   events,
		log:      log,
	}
}

// Catalogue routes are public; the session is attached opportunistically
// so analytics events can be tied to a signed-in customer.
func (h *Handler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/vehicles", h.sessions.Attach(h.Search))
	router.GET("/api/v1/vehicles/:id", h.sessions.Attach(h.GetDetail))
}

func sessionID(r *http.Request) string {
	if s, ok := session.FromContext(r.Context()); ok {
		return s.ID
	}
	return ""
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	page, size, err := httputil.ExtractPage(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	query := r.URL.Query()
	filter := model.VehicleSearchFilter{
		Type:     query.Get("type"),
		Location: query.Get("location"),
		Page:     page,
		Size:     size,
	}
	if raw := query.Get("minPrice"); raw != "" {
		if filter.MinPrice, err = strconv.ParseInt(raw, 10, 64); err != nil {
			httputil.WriteError(w, apperrors.InvalidInput("invalid minPrice parameter"))
			return
		}
	}
	if raw := query.Get("maxPrice"); raw != "" {
		if filter.MaxPrice, err = strconv.ParseInt(raw, 10, 64); err != nil {
			httputil.WriteError(w, apperrors.InvalidInput("invalid maxPrice parameter"))
			return
		}
	}

	result, err := h.service.Search(r.Context(), filter)
	if err != nil {
		httputil.WriteErrorOrRedirect(w, r, err)
		return
	}

	h.events.Publish(r.Context(), analytics.Event{
		Name:      analytics.EventSearchPerformed,
		SessionID: sessionID(r),
		Props:     map[string]any{"type": filter.Type, "location": filter.Location},
	})

	meta := result.Meta
	if meta == nil {
		meta = &gateway.PageMeta{Page: page, Size: size}
	}
	httputil.WritePage(w, result.Vehicles, meta.Page, meta.Size, meta.TotalElements, meta.TotalPages)
}

func (h *Handler) GetDetail(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	detail, err := h.service.GetDetail(r.Context(), id, r.URL.Query().Get("bookingType"))
	if err != nil {
		httputil.WriteErrorOrRedirect(w, r, err)
		return
	}

	h.events.Publish(r.Context(), analytics.Event{
		Name:      analytics.EventVehicleViewed,
		SessionID: sessionID(r),
		Props:     map[string]any{"vehicleId": id},
	})
	httputil.WriteSuccess(w, detail)
}
