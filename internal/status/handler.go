// Package status serves the health probes and the connectivity page
// customers land on when the booking API is unreachable.
package status

import (
	"context"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/autogirlng/muvment-customer-sub002/pkg/gateway"
	httputil "github.com/autogirlng/muvment-customer-sub002/pkg/http"
	"github.com/autogirlng/muvment-customer-sub002/pkg/logger"
)

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
}

type HealthHandler struct {
	mongoClient *mongo.Client
	log         *logger.Logger
}

func NewHealthHandler(mongoClient *mongo.Client, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		mongoClient: mongoClient,
		log:         log,
	}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	httputil.WriteJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.mongoClient.Ping(ctx, nil); err != nil {
		h.log.Error("Database health check failed",
			"error", err,
			"path", r.URL.Path,
		)
		httputil.WriteJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:   "unavailable",
			Database: "error",
		})
		return
	}

	httputil.WriteJSON(w, http.StatusOK, HealthResponse{
		Status:   "ready",
		Database: "ok",
	})
}

func (h *HealthHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
}

type ConnectivityResponse struct {
	Online     bool   `json:"online"`
	Message    string `json:"message"`
	RetryAfter string `json:"retryAfter,omitempty"`
}

// ConnectivityHandler backs the page offline requests redirect to. It
// reuses the gateway probe, so a recovered upstream flips the page back
// to online within one probe TTL.
type ConnectivityHandler struct {
	gw  *gateway.Client
	log *logger.Logger
}

func NewConnectivityHandler(gw *gateway.Client, log *logger.Logger) *ConnectivityHandler {
	return &ConnectivityHandler{gw: gw, log: log}
}

func (h *ConnectivityHandler) Connectivity(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if h.gw.Online(r.Context()) {
		httputil.WriteJSON(w, http.StatusOK, ConnectivityResponse{
			Online:  true,
			Message: "We are back online. You can continue where you left off.",
		})
		return
	}

	httputil.WriteJSON(w, http.StatusServiceUnavailable, ConnectivityResponse{
		Online:     false,
		Message:    "We are having trouble reaching our booking service. Please try again shortly.",
		RetryAfter: "30s",
	})
}

func (h *ConnectivityHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET(httputil.ConnectivityStatusPath, h.Connectivity)
}
