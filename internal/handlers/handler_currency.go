package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/product_catalog/internal/core/ports/services"
	"github.com/SscSPs/product_catalog/internal/dto"
	"github.com/gin-gonic/gin"
)

// currencyHandler exposes the cached conversion table.
type currencyHandler struct {
	currencyLoader portssvc.CurrencyLoaderSvc
}

func newCurrencyHandler(cl portssvc.CurrencyLoaderSvc) *currencyHandler {
	return &currencyHandler{currencyLoader: cl}
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyLoader portssvc.CurrencyLoaderSvc) {
	h := newCurrencyHandler(currencyLoader)
	rg.GET("/currencies", h.listCurrencies)
}

// listCurrencies godoc
// @Summary List supported currencies
// @Description Returns the current conversion table (rates from the canonical currency). Empty when the rate source is unavailable.
// @Tags currencies
// @Produce  json
// @Success 200 {object} dto.JSONResponse{data=[]dto.CurrencyRateResponse}
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	table := h.currencyLoader.LoadCurrencies(c.Request.Context())
	c.JSON(http.StatusOK, dto.JSONResponse{
		Status: http.StatusOK,
		Data:   dto.ToCurrencyRateResponses(table),
	})
}
