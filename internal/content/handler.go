package content

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
	router.GET("/api/v1/blog/posts", h.ListPosts)
	router.GET("/api/v1/blog/posts/:slug", h.GetPost)
	router.GET("/api/v1/blog/categories", h.ListCategories)
	router.GET("/api/v1/blog/posts/:slug/comments", h.ListComments)
	router.POST("/api/v1/blog/posts/:slug/comments", h.sessions.Require(h.AddComment))
}

func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	page, size, err := httputil.ExtractPage(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	posts, meta, err := h.service.ListPosts(r.Context(), r.URL.Query().Get("category"), page, size)
	if err != nil {
		httputil.WriteErrorOrRedirect(w, r, err)
		return
	}
	httputil.WritePage(w, posts, meta.Page, meta.Size, meta.TotalElements, meta.TotalPages)
}

func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	detail, err := h.service.GetPost(r.Context(), ps.ByName("slug"))
	if err != nil {
		httputil.WriteErrorOrRedirect(w, r, err)
		return
	}
	httputil.WriteSuccess(w, detail)
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	categories, err := h.service.Categories(r.Context())
	if err != nil {
		httputil.WriteErrorOrRedirect(w, r, err)
		return
	}
	httputil.WriteSuccess(w, categories)
}

func (h *Handler) ListComments(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	comments, err := h.service.Comments(r.Context(), ps.ByName("slug"))
	if err != nil {
		httputil.WriteErrorOrRedirect(w, r, err)
		return
	}
	httputil.WriteSuccess(w, comments)
}

func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var comment model.BlogComment
	if err := json.NewDecoder(r.Body).Decode(&comment); err != nil {
		httputil.WriteError(w, apperrors.InvalidInput("Invalid request body"))
		return
	}

	s, _ := session.FromContext(r.Context())
	if err := h.service.AddComment(r.Context(), ps.ByName("slug"), &comment, s.AccessToken); err != nil {
		httputil.WriteErrorOrRedirect(w, r, err)
		return
	}
	httputil.WriteCreated(w, comment)
}
