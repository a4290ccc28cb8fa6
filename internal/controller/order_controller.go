package controller

import (
	"github.com/alimikegami/point-of-sales/ecommerce-service/internal/dto"
	"github.com/alimikegami/point-of-sales/ecommerce-service/internal/service"
	pkgdto "github.com/alimikegami/point-of-sales/ecommerce-service/pkg/dto"
	"github.com/alimikegami/point-of-sales/ecommerce-service/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type OrderController struct {
	service service.OrderService
}

func CreateOrderController(e *echo.Group, service service.OrderService) {
	c := OrderController{
		service: service,
	}
	e.POST("/orders", c.AddOrder)
	e.GET("/orders/:userId", c.GetOrdersByUser)
}

func (c *OrderController) AddOrder(e echo.Context) error {
	payload := dto.OrderRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "AddOrder").Msg("")
		return response.WriteErrorResponse(e, bindError(err), nil)
	}

	order, err := c.service.AddOrder(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, order)
}

func (c *OrderController) GetOrdersByUser(e echo.Context) error {
	page := pkgdto.Filter{}

	err := echo.QueryParamsBinder(e).
		Int("page", &page.Page).
		Int("pageSize", &page.PageSize).
		BindError()
	if err != nil {
		return response.WriteErrorResponse(e, bindError(err), nil)
	}

	res, err := c.service.GetOrdersByUser(e.Request().Context(), e.Param("userId"), page)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, res)
}
