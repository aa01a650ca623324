// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"goeco/internal/delivery/http/middleware"
	"goeco/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	ActivityHandler *handler.ActivityHandler
	InsightHandler  *handler.InsightHandler
	StatusHandler   *handler.StatusHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	activityHandler *handler.ActivityHandler
	insightHandler  *handler.InsightHandler
	statusHandler   *handler.StatusHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		activityHandler: params.ActivityHandler,
		insightHandler:  params.InsightHandler,
		statusHandler:   params.StatusHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Welcome)
	e.GET("/status", r.statusHandler.Status)

	// Account routes
	e.POST("/register", r.userHandler.Register)
	e.POST("/login", r.userHandler.Login)

	// Activity logging routes; the client supplies userId in the body
	e.POST("/meals", r.activityHandler.RecordMeal)
	e.POST("/transport", r.activityHandler.RecordTransport)

	// Read-side routes
	userGroup := e.Group("/user")
	{
		userGroup.GET("/:userId/meal_recommendation", r.insightHandler.MealRecommendation)
		userGroup.GET("/:userId/transport_recommendation", r.insightHandler.TransportRecommendation)

		// The dashboard alone requires a token; the identity in the claims
		// overrides the path parameter.
		userGroup.GET("/:userId/dashboard", r.insightHandler.Dashboard, r.authMiddleware.Authenticate)
	}
}
