package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/meeting-minutes/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	meetingHandler *Meeting
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, meetingHandler *Meeting) *Router {
	return &Router{
		cfg:            cfg,
		meetingHandler: meetingHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupMeetingRoutes(v1)
}

// setupMeetingRoutes configures the meeting minutes routes
func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	g.GET("/meeting-types", rt.meetingHandler.ListMeetingTypes)

	meetings := g.Group("/meetings")
	meetings.GET("", rt.meetingHandler.ListMeetings)
	meetings.POST("", rt.meetingHandler.CreateMeeting)
	// Static segments must register before /:id
	meetings.GET("/next-code", rt.meetingHandler.NextCode)
	meetings.GET("/previous-items", rt.meetingHandler.PreviousItems)
	meetings.GET("/:id", rt.meetingHandler.GetMeeting)
	meetings.POST("/:id/items", rt.meetingHandler.AddItem)

	g.PUT("/action-items/:id/status", rt.meetingHandler.UpdateStatus)
	g.GET("/statuses/:id", rt.meetingHandler.GetItemStatus)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
