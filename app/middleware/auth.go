package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/IanAndy202/Hotel-App/app/session"
)

const (
	sessionKey   = "session"
	sessionIDKey = "sessionID"
	loginPath    = "/login"
)

// SessionMiddleware resolves the session cookie against the store and keeps the
// result on the echo context. Requests without a valid session stay anonymous.
func SessionMiddleware(store session.Store, codec *session.CookieCodec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(codec.Name)
			if err != nil {
				return next(c)
			}
			id, ok := codec.SessionID(cookie.Value)
			if !ok {
				return next(c)
			}

			s, err := store.Get(c.Request().Context(), id)
			if err != nil {
				if !errors.Is(err, session.ErrNotFound) {
					slog.ErrorContext(c.Request().Context(), "failed to load session", "error", err)
				}
				return next(c)
			}

			c.Set(sessionIDKey, id)
			c.Set(sessionKey, s)
			return next(c)
		}
	}
}

// RequireLogin redirects anonymous requests to the login page.
func RequireLogin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := CurrentSession(c); !ok {
				return c.Redirect(http.StatusFound, loginPath)
			}
			return next(c)
		}
	}
}

// RoleAuthMiddleware lets the request through only for the given roles.
// Anyone else goes back to the login page.
func RoleAuthMiddleware(requiredRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s, ok := CurrentSession(c)
			if !ok {
				return c.Redirect(http.StatusFound, loginPath)
			}
			for _, role := range requiredRoles {
				if s.Role == role {
					return next(c)
				}
			}
			return c.Redirect(http.StatusFound, loginPath)
		}
	}
}

func CurrentSession(c echo.Context) (session.Session, bool) {
	s, ok := c.Get(sessionKey).(session.Session)
	return s, ok
}

func CurrentSessionID(c echo.Context) (string, bool) {
	id, ok := c.Get(sessionIDKey).(string)
	return id, ok
}
