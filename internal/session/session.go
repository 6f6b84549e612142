// Package session keeps the customer's identity between requests: the
// user profile and the access/refresh token pair issued by the remote
// API. The browser holds only a sealed session id in a cookie; the
// session body lives server-side.
package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/autogirlng/muvment-customer-sub002/pkg/model"
)

var (
	ErrNotFound = errors.New("session not found")
	ErrExpired  = errors.New("session expired")
)

type Session struct {
	ID           string      `bson:"_id"`
	User         *model.User `bson:"user"`
	AccessToken  string      `bson:"access_token"`
	RefreshToken string      `bson:"refresh_token"`
	CreatedAt    time.Time   `bson:"created_at"`
	ExpiresAt    time.Time   `bson:"expires_at"`
}

func (s *Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}

// AccessTokenExpiry reads the exp claim from the access token without
// verifying the signature; the remote API is the sole issuer and
// verifier, this side only needs the clock.
func (s *Session) AccessTokenExpiry() (time.Time, error) {
	token, _, err := jwt.NewParser().ParseUnverified(s.AccessToken, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, err
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, errors.New("access token has no expiry claim")
	}

	return exp.Time, nil
}

// NeedsRefresh reports whether the access token expires within window.
// Unparseable tokens answer true so the next request forces a rotation.
func (s *Session) NeedsRefresh(window time.Duration) bool {
	expiry, err := s.AccessTokenExpiry()
	if err != nil {
		return true
	}
	return time.Until(expiry) < window
}
