package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/IanAndy202/Hotel-App/app/usecases"
	"github.com/IanAndy202/Hotel-App/app/views"
)

type DashboardHandler struct {
	roomUsecase      usecases.RoomUsecase
	dashboardUsecase usecases.DashboardUsecase
}

func NewDashboardHandler(roomUsecase usecases.RoomUsecase, dashboardUsecase usecases.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{roomUsecase: roomUsecase, dashboardUsecase: dashboardUsecase}
}

// GET /dashboard
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	ctx := c.Request().Context()

	rooms, err := h.roomUsecase.GetRooms(ctx)
	if err != nil {
		return errorResponse(c, err, "Server error")
	}
	summary, err := h.dashboardUsecase.GetSummary(ctx)
	if err != nil {
		return errorResponse(c, err, "Server error")
	}

	return c.Render(http.StatusOK, views.PageStatusRooms, echo.Map{
		"title":   "Reception Dashboard",
		"rooms":   rooms,
		"summary": summary,
	})
}
