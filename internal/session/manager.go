package session

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/autogirlng/muvment-customer-sub002/pkg/errors"
	"github.com/autogirlng/muvment-customer-sub002/pkg/gateway"
	"github.com/autogirlng/muvment-customer-sub002/pkg/logger"
	"github.com/autogirlng/muvment-customer-sub002/pkg/model"
)

// TokenRefresher exchanges a refresh token for a new token pair.
type TokenRefresher interface {
	Refresh(ctx context.Context, refreshToken string) (*gateway.Result, error)
}

// Manager owns the session lifecycle: created on login, rotated when the
// access token nears expiry, destroyed on logout or a detected ban.
type Manager struct {
	repo          Repository
	codec         *CookieCodec
	accounts      TokenRefresher
	ttl           time.Duration
	refreshWindow time.Duration
	log           *logger.Logger
}

func NewManager(repo Repository, codec *CookieCodec, accounts TokenRefresher, ttl, refreshWindow time.Duration, log *logger.Logger) *Manager {
	return &Manager{
		repo:          repo,
		codec:         codec,
		accounts:      accounts,
		ttl:           ttl,
		refreshWindow: refreshWindow,
		log:           log,
	}
}

func (m *Manager) Create(ctx context.Context, w http.ResponseWriter, user *model.User, tokens model.TokenPair) (*Session, error) {
	now := time.Now().UTC()
	session := &Session{
		ID:           uuid.NewString(),
		User:         user,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		CreatedAt:    now,
		ExpiresAt:    now.Add(m.ttl),
	}

	if err := m.repo.Insert(ctx, session); err != nil {
		return nil, apperrors.Internal("Failed to create session", err)
	}

	if err := m.codec.Write(w, session.ID); err != nil {
		return nil, apperrors.Internal("Failed to write session cookie", err)
	}

	m.log.Info("Session created", "session_id", session.ID, "user_id", user.ID)
	return session, nil
}

// Get loads the session referenced by the request cookie. It does not
// rotate tokens; use Current for request handling.
func (m *Manager) Get(ctx context.Context, r *http.Request) (*Session, error) {
	id := m.codec.Read(r)
	if id == "" {
		return nil, ErrNotFound
	}

	session, err := m.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if session.Expired() {
		_ = m.repo.Delete(ctx, id)
		return nil, ErrExpired
	}

	return session, nil
}

// Current loads the session and rotates the token pair when the access
// token is about to expire. A rejected refresh (banned or deactivated
// account) destroys the session.
func (m *Manager) Current(ctx context.Context, w http.ResponseWriter, r *http.Request) (*Session, error) {
	session, err := m.Get(ctx, r)
	if err != nil {
		return nil, err
	}

	if !session.NeedsRefresh(m.refreshWindow) {
		return session, nil
	}

	res, err := m.accounts.Refresh(ctx, session.RefreshToken)
	if err != nil {
		// Offline: serve the session as-is, the actual call will
		// short-circuit at the gateway anyway.
		return session, nil
	}

	if res.Err {
		if res.Status == http.StatusForbidden || res.Status == http.StatusUnauthorized {
			m.log.Warn("Token refresh rejected, destroying session",
				"session_id", session.ID,
				"status", res.Status,
			)
			m.Destroy(ctx, session.ID, w)
			return nil, ErrExpired
		}
		return session, nil
	}

	var tokens model.TokenPair
	if decodeErr := res.Decode(&tokens); decodeErr != nil {
		m.log.Error("Failed to decode refreshed tokens", "error", decodeErr)
		return session, nil
	}

	if updateErr := m.repo.UpdateTokens(ctx, session.ID, tokens.AccessToken, tokens.RefreshToken); updateErr != nil {
		m.log.Error("Failed to persist rotated tokens", "session_id", session.ID, "error", updateErr)
		return session, nil
	}

	session.AccessToken = tokens.AccessToken
	session.RefreshToken = tokens.RefreshToken
	m.log.Debug("Session tokens rotated", "session_id", session.ID)
	return session, nil
}

func (m *Manager) Destroy(ctx context.Context, id string, w http.ResponseWriter) {
	if err := m.repo.Delete(ctx, id); err != nil {
		m.log.Error("Failed to delete session", "session_id", id, "error", err)
	}
	m.codec.Clear(w)
	m.log.Info("Session destroyed", "session_id", id)
}
