package session

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieCodec writes and verifies the session cookie. The cookie is an HS256 token whose
// only claims are the session id (jti) and its expiry; the session itself stays in the Store.
type CookieCodec struct {
	Name   string
	secret []byte
	maxAge time.Duration
	now    func() time.Time
}

func NewCookieCodec(name, secret string, maxAge time.Duration) *CookieCodec {
	return &CookieCodec{Name: name, secret: []byte(secret), maxAge: maxAge, now: time.Now}
}

func (c *CookieCodec) token(id string) (string, error) {
	now := c.now()
	claims := jwt.RegisteredClaims{
		ID:        id,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.maxAge)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

func (c *CookieCodec) Cookie(id string) (*http.Cookie, error) {
	value, err := c.token(id)
	if err != nil {
		return nil, err
	}
	return &http.Cookie{
		Name:     c.Name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(c.maxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}, nil
}

// Expired tells the browser to drop the cookie.
func (c *CookieCodec) Expired() *http.Cookie {
	return &http.Cookie{
		Name:     c.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// SessionID returns the session id carried by a cookie value when the token is valid and unexpired.
func (c *CookieCodec) SessionID(value string) (string, bool) {
	if value == "" {
		return "", false
	}
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(value, claims, func(*jwt.Token) (interface{}, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil || !token.Valid || claims.ID == "" {
		return "", false
	}
	return claims.ID, true
}
