package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/product_catalog/internal/apperrors"
	portssvc "github.com/SscSPs/product_catalog/internal/core/ports/services"
	"github.com/SscSPs/product_catalog/internal/dto"
	"github.com/SscSPs/product_catalog/internal/middleware"
	"github.com/gin-gonic/gin"
)

// productHandler handles HTTP requests related to the catalog.
type productHandler struct {
	productService portssvc.ProductSvcFacade
}

// newProductHandler creates a new productHandler.
func newProductHandler(ps portssvc.ProductSvcFacade) *productHandler {
	return &productHandler{
		productService: ps,
	}
}

// registerProductRoutes registers routes related to products.
func registerProductRoutes(rg *gin.RouterGroup, productService portssvc.ProductSvcFacade) {
	h := newProductHandler(productService)

	products := rg.Group("/products")
	{
		products.GET("", h.listProducts)
		products.POST("", h.createProduct)
		products.GET("/:productID", h.getProduct)
		products.DELETE("/:productID", h.deleteProduct)
	}
}

// listProducts godoc
// @Summary List products
// @Description Filters, sorts and paginates the catalog. Empty or zero parameters are ignored.
// @Tags products
// @Produce  json
// @Param   page          query int    false "Page number (default 1)" minimum(1)
// @Param   limit         query int    false "Page size (default 10)" minimum(1) maximum(100)
// @Param   name          query string false "Case-insensitive substring of the name"
// @Param   minPrice      query number false "Minimum price, inclusive"
// @Param   maxPrice      query number false "Maximum price, inclusive"
// @Param   minExpiration query string false "Earliest expiration (YYYY-MM-DD), inclusive"
// @Param   maxExpiration query string false "Latest expiration (YYYY-MM-DD), inclusive"
// @Param   sortBy        query string false "Sort field" Enums(name, price, expiration)
// @Param   order         query string false "Sort direction" Enums(asc, desc)
// @Success 200 {object} dto.JSONResponse{data=dto.ListProductsResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} dto.ErrorResponse "Failed to list products"
// @Router /products [get]
func (h *productHandler) listProducts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListProductsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid catalog query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			StatusCode: http.StatusBadRequest,
			Message:    "Invalid query parameters",
			Error:      err.Error(),
		})
		return
	}

	resp, err := h.productService.ListProducts(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				StatusCode: http.StatusBadRequest,
				Message:    "Invalid query parameters",
				Error:      err.Error(),
			})
			return
		}
		logger.Error("Failed to list products", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Error:      err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.JSONResponse{Status: http.StatusOK, Data: resp})
}

// createProduct godoc
// @Summary Create a product
// @Description Stores one product and converts its price into every supported currency
// @Tags products
// @Accept  json
// @Produce  json
// @Param   product body dto.CreateProductRequest true "Product details"
// @Success 201 {object} dto.JSONResponse{data=dto.ProductResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 422 {object} dto.ErrorResponse "Could not store product"
// @Router /products [post]
func (h *productHandler) createProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateProduct", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			StatusCode: http.StatusBadRequest,
			Message:    "Invalid request body",
			Error:      err.Error(),
		})
		return
	}

	product := h.productService.CreateProduct(c.Request.Context(), req)
	if product == nil {
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
			StatusCode: http.StatusUnprocessableEntity,
			Message:    "Could not store product",
		})
		return
	}

	logger.Info("Product created", slog.String("product_id", product.ProductID))
	c.JSON(http.StatusCreated, dto.JSONResponse{Status: http.StatusCreated, Data: dto.ToProductResponse(product)})
}

// getProduct godoc
// @Summary Get a product
// @Description Retrieves a product with its exchange rates
// @Tags products
// @Produce  json
// @Param   productID path string true "Product ID"
// @Success 200 {object} dto.JSONResponse{data=dto.ProductResponse}
// @Failure 404 {object} dto.ErrorResponse "Product not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve product"
// @Router /products/{productID} [get]
func (h *productHandler) getProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID := c.Param("productID")

	product, err := h.productService.GetProductByID(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{StatusCode: http.StatusNotFound, Message: "Product not found"})
			return
		}
		logger.Error("Failed to get product", slog.String("product_id", productID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{StatusCode: http.StatusInternalServerError, Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.JSONResponse{Status: http.StatusOK, Data: dto.ToProductResponse(product)})
}

// deleteProduct godoc
// @Summary Delete a product
// @Description Removes a product together with its exchange rates
// @Tags products
// @Param   productID path string true "Product ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "Product not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete product"
// @Router /products/{productID} [delete]
func (h *productHandler) deleteProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID := c.Param("productID")

	if err := h.productService.DeleteProduct(c.Request.Context(), productID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{StatusCode: http.StatusNotFound, Message: "Product not found"})
			return
		}
		logger.Error("Failed to delete product", slog.String("product_id", productID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{StatusCode: http.StatusInternalServerError, Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
