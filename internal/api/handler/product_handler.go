package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sirpyerre/inventario-api/internal/api/metrics"
	"github.com/sirpyerre/inventario-api/internal/core/ports"
)

// ProductHandler handles HTTP requests for inventory items.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// Create registers a new product.
//
// @Summary      Create a product
// @Tags         productos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {object}  productResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /productos [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.service.Create(c.Request().Context(), ports.CreateProductInput{
		Name:          req.Name,
		Price:         req.Price,
		Description:   req.Description,
		ExpiresAt:     req.ExpiresAt,
		PurchasedAt:   req.PurchasedAt,
		Stock:         req.Stock,
		Supplier:      req.Supplier,
		PurchasePrice: req.PurchasePrice,
		ImageURL:      req.ImageURL,
	})
	if err != nil {
		return err
	}

	metrics.ProductsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, productResponse{Product: product})
}

// List returns all products.
//
// @Summary      List products
// @Tags         productos
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  productsResponse
// @Failure      401  {object}  errorResponse
// @Router       /productos [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, productsResponse{Products: products})
}

// Get returns a single product by id.
//
// @Summary      Get a product
// @Tags         productos
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  productResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /productos/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, productResponse{Product: product})
}

// Update applies a partial update to a product.
//
// @Summary      Update a product
// @Tags         productos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Product id"
// @Param        body  body      updateProductRequest  true  "Fields to update"
// @Success      200   {object}  productResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /productos/{id} [patch]
func (h *ProductHandler) Update(c echo.Context) error {
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateProductInput{
		Name:          req.Name,
		Price:         req.Price,
		Description:   req.Description,
		ExpiresAt:     req.ExpiresAt,
		PurchasedAt:   req.PurchasedAt,
		Stock:         req.Stock,
		Supplier:      req.Supplier,
		PurchasePrice: req.PurchasePrice,
		ImageURL:      req.ImageURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, productResponse{Product: product})
}

// Delete removes a product.
//
// @Summary      Delete a product
// @Tags         productos
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /productos/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "product deleted"})
}
