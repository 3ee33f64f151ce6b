package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/IanAndy202/Hotel-App/app/views"
)

type PageHandler struct {
	hotelName string
}

func NewPageHandler(hotelName string) *PageHandler {
	return &PageHandler{hotelName: hotelName}
}

// GET /
func (h *PageHandler) Landing(c echo.Context) error {
	return c.Render(http.StatusOK, views.PageLanding, echo.Map{"title": "Welcome to " + h.hotelName})
}
