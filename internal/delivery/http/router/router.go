// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"chime/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AlarmHandler     *handler.AlarmHandler
	RingHandler      *handler.RingHandler
	StatisticHandler *handler.StatisticHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	alarmHandler     *handler.AlarmHandler
	ringHandler      *handler.RingHandler
	statisticHandler *handler.StatisticHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		alarmHandler:     params.AlarmHandler,
		ringHandler:      params.RingHandler,
		statisticHandler: params.StatisticHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Alarm CRUD and ringing interaction routes
	alarmGroup := e.Group("/alarms")
	{
		alarmGroup.POST("", r.alarmHandler.CreateAlarm)
		alarmGroup.GET("", r.alarmHandler.ListAlarms)
		alarmGroup.GET("/upcoming", r.alarmHandler.UpcomingAlarm)
		alarmGroup.GET("/:id", r.alarmHandler.GetAlarm)
		alarmGroup.PUT("/:id", r.alarmHandler.UpdateAlarm)
		alarmGroup.DELETE("/:id", r.alarmHandler.DeleteAlarm)
		alarmGroup.POST("/:id/dismiss", r.ringHandler.Dismiss)
		alarmGroup.POST("/:id/snooze", r.ringHandler.Snooze)
	}

	// Read-only statistics routes
	statsGroup := e.Group("/statistics")
	{
		statsGroup.GET("", r.statisticHandler.ListStatistics)
		statsGroup.GET("/summary", r.statisticHandler.Summary)
	}
}
