package session

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"

	apperrors "github.com/autogirlng/muvment-customer-sub002/pkg/errors"
	httputil "github.com/autogirlng/muvment-customer-sub002/pkg/http"
	"github.com/autogirlng/muvment-customer-sub002/pkg/logger"
)

type ctxKey struct{}

func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(*Session)
	return s, ok
}

// Middleware resolves the session cookie ahead of the route handlers.
type Middleware struct {
	mgr *Manager
	log *logger.Logger
}

func NewMiddleware(mgr *Manager, log *logger.Logger) *Middleware {
	return &Middleware{mgr: mgr, log: log}
}

// Attach loads the session when a valid cookie is present. Anonymous
// requests pass through untouched; browse and search never need auth.
func (m *Middleware) Attach(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		s, err := m.mgr.Current(r.Context(), w, r)
		if err == nil {
			r = r.WithContext(WithSession(r.Context(), s))
		}
		next(w, r, ps)
	}
}

// Require rejects requests that do not carry a live session.
func (m *Middleware) Require(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		s, err := m.mgr.Current(r.Context(), w, r)
		if err != nil {
			httputil.WriteError(w, apperrors.Unauthorized("Sign in to continue"))
			return
		}
		if s.User != nil && s.User.Blocked() {
			m.mgr.Destroy(r.Context(), s.ID, w)
			httputil.WriteError(w, apperrors.Forbidden("This account is not active"))
			return
		}
		next(w, r.WithContext(WithSession(r.Context(), s)), ps)
	}
}
