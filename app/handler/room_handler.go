package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/IanAndy202/Hotel-App/app/entities"
	"github.com/IanAndy202/Hotel-App/app/usecases"
	"github.com/IanAndy202/Hotel-App/app/views"
)

// RoomHandler serves guest check-in.
type RoomHandler struct {
	roomUsecase  usecases.RoomUsecase
	guestUsecase usecases.GuestUsecase
}

func NewRoomHandler(roomUsecase usecases.RoomUsecase, guestUsecase usecases.GuestUsecase) *RoomHandler {
	return &RoomHandler{roomUsecase: roomUsecase, guestUsecase: guestUsecase}
}

// GET /checkin
func (h *RoomHandler) CheckInForm(c echo.Context) error {
	rooms, err := h.roomUsecase.GetAvailableRooms(c.Request().Context())
	if err != nil {
		return errorResponse(c, err, "Server error")
	}
	return c.Render(http.StatusOK, views.PageCheckIn, echo.Map{
		"title":          "Check-In Guests",
		"availableRooms": rooms,
	})
}

// POST /checkin
func (h *RoomHandler) CheckIn(c echo.Context) error {
	var req entities.CheckInRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "Bad Request")
	}
	if err := c.Validate(&req); err != nil {
		return c.String(http.StatusBadRequest, "Bad Request")
	}

	guest, err := h.guestUsecase.CheckInGuest(c.Request().Context(), req)
	if err != nil {
		return errorResponse(c, err, "Check-In failed")
	}
	slog.InfoContext(c.Request().Context(), "guest checked in", "guestId", guest.GuestID, "roomId", guest.RoomID)

	return c.Redirect(http.StatusFound, "/dashboard")
}
