package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"storefront/internal/errors"
	"storefront/internal/model"
	"storefront/internal/service"
)

// ProductHandler handles catalog endpoints.
type ProductHandler struct {
	productService service.ProductService
}

// NewProductHandler creates a new product handler.
func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// UploadProductRequest represents a new product. Image is a data URI or URL.
type UploadProductRequest struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Price       string `json:"price"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// UploadProductResponse represents a stored product.
type UploadProductResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Product *model.Product `json:"product"`
}

// UploadProduct godoc
// @Summary Upload a product
// @Tags products
// @Accept json
// @Produce json
// @Param request body UploadProductRequest true "Product data"
// @Success 201 {object} UploadProductResponse
// @Failure 500 {object} errors.Response
// @Router /uploadProduct [post]
func (h *ProductHandler) UploadProduct(c echo.Context) error {
	var req UploadProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.Response{Message: "Invalid request body"})
	}

	product, err := h.productService.Upload(c.Request().Context(), service.UploadProductInput{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Description: req.Description,
		Image:       req.Image,
	})
	if err != nil {
		logrus.WithError(err).WithField("product", req.Name).Error("product upload failed")
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ServerError())
	}

	return c.JSON(http.StatusCreated, UploadProductResponse{
		Success: true,
		Message: "Upload successfully",
		Product: product,
	})
}

// Products godoc
// @Summary List products
// @Tags products
// @Produce json
// @Success 200 {array} model.Product
// @Failure 500 {object} errors.Response
// @Router /products [get]
func (h *ProductHandler) Products(c echo.Context) error {
	products, err := h.productService.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	if products == nil {
		products = []model.Product{}
	}
	return c.JSON(http.StatusOK, products)
}

// ProductNameList godoc
// @Summary List product ids with their category
// @Tags products
// @Produce json
// @Success 200 {array} model.ProductCategory
// @Failure 500 {object} errors.Response
// @Router /productNameList [get]
func (h *ProductHandler) ProductNameList(c echo.Context) error {
	categories, err := h.productService.ListCategories(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	if categories == nil {
		categories = []model.ProductCategory{}
	}
	return c.JSON(http.StatusOK, categories)
}
