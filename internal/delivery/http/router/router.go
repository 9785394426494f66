// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"infostore/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	PostHandler    *handler.PostHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	postHandler    *handler.PostHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		postHandler:    params.PostHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	accountGroup := e.Group("/accounts")
	{
		accountGroup.GET("", r.accountHandler.List)
		accountGroup.POST("/register", r.accountHandler.Register)
		accountGroup.POST("/register-multiple", r.accountHandler.RegisterMultiple)
		accountGroup.PUT("/update", r.accountHandler.Update)
		accountGroup.POST("/delete", r.accountHandler.Delete)
		accountGroup.POST("/login", r.accountHandler.Login)
	}

	postGroup := e.Group("/posts")
	{
		postGroup.GET("", r.postHandler.List)
		postGroup.POST("/create", r.postHandler.Create)
		postGroup.PUT("/update", r.postHandler.Update)
		postGroup.POST("/delete", r.postHandler.Delete)
	}
}
