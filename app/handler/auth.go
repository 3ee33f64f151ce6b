package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/IanAndy202/Hotel-App/app/entities"
	"github.com/IanAndy202/Hotel-App/app/middleware"
	"github.com/IanAndy202/Hotel-App/app/session"
	"github.com/IanAndy202/Hotel-App/app/usecases"
	"github.com/IanAndy202/Hotel-App/app/views"
)

type AuthHandler struct {
	usecase  usecases.UserUsecase
	sessions session.Store
	cookies  *session.CookieCodec
}

func NewAuthHandler(usecase usecases.UserUsecase, sessions session.Store, cookies *session.CookieCodec) *AuthHandler {
	return &AuthHandler{usecase: usecase, sessions: sessions, cookies: cookies}
}

// GET /login
func (h *AuthHandler) LoginForm(c echo.Context) error {
	return c.Render(http.StatusOK, views.PageLogin, echo.Map{"title": "Login"})
}

// POST /login
func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var loginData entities.Login
	if err := c.Bind(&loginData); err != nil {
		return c.String(http.StatusBadRequest, "Bad Request")
	}

	user, err := h.usecase.Login(ctx, loginData.Username, loginData.Password)
	if err != nil {
		return errorResponse(c, err, "Internal server error")
	}

	// a new id on every login, the old session is dropped
	if oldID, ok := middleware.CurrentSessionID(c); ok {
		if err := h.sessions.Destroy(ctx, oldID); err != nil {
			slog.WarnContext(ctx, "failed to drop previous session", "error", err)
		}
	}
	id := session.NewID()
	if err := h.sessions.Set(ctx, id, session.Session{UserID: user.UserID, Role: user.Role}); err != nil {
		slog.ErrorContext(ctx, "failed to store session", "error", err)
		return c.String(http.StatusInternalServerError, "Internal server error")
	}
	cookie, err := h.cookies.Cookie(id)
	if err != nil {
		return errorResponse(c, err, "Internal server error")
	}
	c.SetCookie(cookie)

	return c.Redirect(http.StatusFound, usecases.RedirectPathForRole(user.Role))
}

// GET /logout
func (h *AuthHandler) Logout(c echo.Context) error {
	if id, ok := middleware.CurrentSessionID(c); ok {
		if err := h.sessions.Destroy(c.Request().Context(), id); err != nil {
			slog.ErrorContext(c.Request().Context(), "failed to destroy session", "error", err)
		}
	}
	c.SetCookie(h.cookies.Expired())
	return c.Redirect(http.StatusFound, "/")
}
