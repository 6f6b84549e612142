package session

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/julienschmidt/httprouter"

	apperrors "github.com/autogirlng/muvment-customer-sub002/pkg/errors"
	"github.com/autogirlng/muvment-customer-sub002/pkg/gateway"
	httputil "github.com/autogirlng/muvment-customer-sub002/pkg/http"
	"github.com/autogirlng/muvment-customer-sub002/pkg/logger"
	"github.com/autogirlng/muvment-customer-sub002/pkg/model"
	"github.com/autogirlng/muvment-customer-sub002/pkg/sanitizer"
)

type loginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// AuthHandler exposes login, logout and the current-user endpoint.
type AuthHandler struct {
	mgr      *Manager
	mw       *Middleware
	accounts *gateway.AccountClient
	validate *validator.Validate
	log      *logger.Logger
}

func NewAuthHandler(mgr *Manager, mw *Middleware, accounts *gateway.AccountClient, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		mgr:      mgr,
		mw:       mw,
		accounts: accounts,
		validate: validator.New(),
		log:      log,
	}
}

func (h *AuthHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/auth/login", h.Login)
	router.POST("/api/v1/auth/logout", h.Logout)
	router.GET("/api/v1/auth/me", h.mw.Require(h.Me))
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var payload loginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httputil.WriteError(w, apperrors.InvalidInput("Invalid request body"))
		return
	}
	payload.Email = sanitizer.NormalizeEmail(payload.Email)

	if err := h.validate.Struct(payload); err != nil {
		httputil.WriteError(w, apperrors.Validation("Invalid login details", validationDetails(err)))
		return
	}

	res, err := h.accounts.Login(r.Context(), gateway.LoginRequest{
		Email:    payload.Email,
		Password: payload.Password,
	})
	if err != nil {
		httputil.WriteErrorOrRedirect(w, r, err)
		return
	}
	if res.Err {
		httputil.WriteJSON(w, res.Status, httputil.ErrorResponse{Error: res.Message})
		return
	}

	login, err := h.accounts.DecodeLogin(res)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if login.User != nil && login.User.Blocked() {
		httputil.WriteError(w, apperrors.Forbidden("This account is not active"))
		return
	}

	session, err := h.mgr.Create(r.Context(), w, login.User, model.TokenPair{
		AccessToken:  login.AccessToken,
		RefreshToken: login.RefreshToken,
	})
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, session.User)
}

// Logout is idempotent, a missing session still yields 204.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if s, err := h.mgr.Get(r.Context(), r); err == nil {
		h.mgr.Destroy(r.Context(), s.ID, w)
	} else {
		h.mgr.codec.Clear(w)
	}
	httputil.WriteNoContent(w)
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s, _ := FromContext(r.Context())
	httputil.WriteSuccess(w, s.User)
}

func validationDetails(err error) map[string]any {
	details := make(map[string]any)
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		for _, fe := range fieldErrors {
			details[fe.Field()] = fe.Tag()
		}
	}
	return details
}
