package session

import (
	"net/http"
	"time"

	"github.com/autogirlng/muvment-customer-sub002/pkg/sealer"
)

const CookieName = "muvment_session"

// CookieCodec writes and reads the session cookie. The value is the
// session id sealed with AES-GCM, so it is opaque and tamper-evident.
type CookieCodec struct {
	sealer *sealer.Sealer
	ttl    time.Duration
	secure bool
}

func NewCookieCodec(s *sealer.Sealer, ttl time.Duration, secure bool) *CookieCodec {
	return &CookieCodec{sealer: s, ttl: ttl, secure: secure}
}

func (c *CookieCodec) Write(w http.ResponseWriter, sessionID string) error {
	sealed, err := c.sealer.Seal(sessionID)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    sealed,
		Path:     "/",
		Expires:  time.Now().Add(c.ttl),
		MaxAge:   int(c.ttl.Seconds()),
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteStrictMode,
	})
	return nil
}

// Read returns the session id from the request cookie, or "" when the
// cookie is absent or fails authentication.
func (c *CookieCodec) Read(r *http.Request) string {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return ""
	}

	id, err := c.sealer.Open(cookie.Value)
	if err != nil {
		return ""
	}
	return id
}

func (c *CookieCodec) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteStrictMode,
	})
}
