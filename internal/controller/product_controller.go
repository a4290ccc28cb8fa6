package controller

import (
	"github.com/alimikegami/point-of-sales/ecommerce-service/internal/domain"
	"github.com/alimikegami/point-of-sales/ecommerce-service/internal/dto"
	"github.com/alimikegami/point-of-sales/ecommerce-service/internal/service"
	pkgdto "github.com/alimikegami/point-of-sales/ecommerce-service/pkg/dto"
	"github.com/alimikegami/point-of-sales/ecommerce-service/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type ProductController struct {
	service service.ProductService
}

func CreateProductController(e *echo.Group, service service.ProductService) {
	c := ProductController{
		service: service,
	}
	e.POST("/products", c.AddProduct)
	e.GET("/products", c.GetProducts)
}

func (c *ProductController) AddProduct(e echo.Context) error {
	payload := dto.ProductRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "AddProduct").Msg("")
		return response.WriteErrorResponse(e, bindError(err), nil)
	}

	product, err := c.service.AddProduct(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, product)
}

func (c *ProductController) GetProducts(e echo.Context) error {
	filter := domain.ProductFilter{}
	page := pkgdto.Filter{}

	err := echo.QueryParamsBinder(e).
		String("name", &filter.Name).
		String("size", &filter.Size).
		Int("page", &page.Page).
		Int("pageSize", &page.PageSize).
		BindError()
	if err != nil {
		return response.WriteErrorResponse(e, bindError(err), nil)
	}

	res, err := c.service.GetProducts(e.Request().Context(), filter, page)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, res)
}
