package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/IanAndy202/Hotel-App/app/entities"
	"github.com/IanAndy202/Hotel-App/app/usecases"
	"github.com/IanAndy202/Hotel-App/app/views"
)

const HeaderTaskID = "X-Task-Id"

type CleaningHandler struct {
	cleaningUsecase usecases.CleaningUsecase
	roomUsecase     usecases.RoomUsecase
}

func NewCleaningHandler(cleaningUsecase usecases.CleaningUsecase, roomUsecase usecases.RoomUsecase) *CleaningHandler {
	return &CleaningHandler{cleaningUsecase: cleaningUsecase, roomUsecase: roomUsecase}
}

// GET /cleaning-requests
func (h *CleaningHandler) GetCleaningRequests(c echo.Context) error {
	ctx := c.Request().Context()

	rooms, err := h.roomUsecase.GetRooms(ctx)
	if err != nil {
		return errorResponse(c, err, "Server error")
	}
	tasks, err := h.cleaningUsecase.GetCleaningTasks(ctx)
	if err != nil {
		return errorResponse(c, err, "Server error")
	}

	return c.Render(http.StatusOK, views.PageCleaningRequests, echo.Map{
		"title":            "Cleaning Requests",
		"roomsForCleaning": rooms,
		"cleaningTasks":    tasks,
	})
}

// POST /cleaning-requests
func (h *CleaningHandler) CreateCleaningRequest(c echo.Context) error {
	var req entities.CleaningRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "Bad Request")
	}
	if err := c.Validate(&req); err != nil {
		return c.String(http.StatusBadRequest, "Bad Request")
	}

	task, err := h.cleaningUsecase.AddCleaningTask(c.Request().Context(), req.RoomID, time.Time{})
	if err != nil {
		return errorResponse(c, err, "Error creating cleaning request")
	}

	c.Response().Header().Set(HeaderTaskID, task.TaskID)
	return c.Redirect(http.StatusFound, "/cleaning-requests")
}

// POST /cleaning-requests/:taskId/complete
func (h *CleaningHandler) CompleteCleaningRequest(c echo.Context) error {
	taskID := c.Param("taskId")
	if err := h.cleaningUsecase.CompleteCleaningTask(c.Request().Context(), taskID); err != nil {
		return errorResponse(c, err, "Error updating cleaning task")
	}
	return c.Redirect(http.StatusFound, "/cleaning-requests")
}
