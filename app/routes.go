package app

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/IanAndy202/Hotel-App/app/entities"
	"github.com/IanAndy202/Hotel-App/app/handler"
	"github.com/IanAndy202/Hotel-App/app/middleware"
)

func RegisterRoutes(
	e *echo.Echo,
	pageHandler *handler.PageHandler,
	authHandler *handler.AuthHandler,
	dashboardHandler *handler.DashboardHandler,
	roomHandler *handler.RoomHandler,
	cleaningHandler *handler.CleaningHandler,
	sessionMiddleware echo.MiddlewareFunc,
	metricsHandler http.Handler,
) {
	e.Use(sessionMiddleware)

	// Public routes
	e.GET("/", pageHandler.Landing)
	e.GET("/login", authHandler.LoginForm)
	e.POST("/login", authHandler.Login)
	e.GET("/logout", authHandler.Logout)
	if metricsHandler != nil {
		e.GET("/metrics", echo.WrapHandler(metricsHandler))
	}

	// Receptionist routes, per route: Group.Use on "" would also register a "/*" catch-all
	receptionist := middleware.RoleAuthMiddleware(entities.RoleReceptionist)
	e.GET("/dashboard", dashboardHandler.GetDashboard, receptionist)
	e.GET("/checkin", roomHandler.CheckInForm, receptionist)
	e.POST("/checkin", roomHandler.CheckIn, receptionist)

	// Any logged in user
	cleaning := e.Group("/cleaning-requests", middleware.RequireLogin())
	cleaning.GET("", cleaningHandler.GetCleaningRequests)
	cleaning.POST("", cleaningHandler.CreateCleaningRequest)
	cleaning.POST("/:taskId/complete", cleaningHandler.CompleteCleaningRequest)
}
