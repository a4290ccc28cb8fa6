package controller

import (
	"context"
	"net/http"

	"github.com/alimikegami/point-of-sales/ecommerce-service/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthController struct {
	db Pinger
}

func CreateHealthController(e *echo.Group, db Pinger) {
	c := HealthController{
		db: db,
	}
	e.GET("/", c.Root)
	e.GET("/ping", c.Ping)
	e.GET("/health", c.Health)
}

func (c *HealthController) Root(e echo.Context) error {
	return response.WriteMessageResponse(e, http.StatusOK, "E-commerce API is running")
}

func (c *HealthController) Ping(e echo.Context) error {
	return response.WriteSuccessResponse(e, "Hello, World!")
}

func (c *HealthController) Health(e echo.Context) error {
	if err := c.db.Ping(e.Request().Context()); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "Health").Msg("")
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteMessageResponse(e, http.StatusOK, "ok")
}
