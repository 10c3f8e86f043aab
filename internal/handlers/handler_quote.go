package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/currency_calculator/internal/apperrors"
	"github.com/SscSPs/currency_calculator/internal/core/domain"
	portssvc "github.com/SscSPs/currency_calculator/internal/core/ports/services"
	"github.com/SscSPs/currency_calculator/internal/dto"
	"github.com/SscSPs/currency_calculator/internal/middleware"
	"github.com/gin-gonic/gin"
)

type quoteHandler struct {
	currencyService portssvc.CurrencySvc
	quoteService    portssvc.QuoteSvcFacade
}

func newQuoteHandler(cs portssvc.CurrencySvc, qs portssvc.QuoteSvcFacade) *quoteHandler {
	return &quoteHandler{
		currencyService: cs,
		quoteService:    qs,
	}
}

// RegisterQuoteRoutes registers routes related to rates and conversions.
func RegisterQuoteRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvc, quoteService portssvc.QuoteSvcFacade) {
	h := newQuoteHandler(currencyService, quoteService)

	quotes := rg.Group("/quotes")
	{
		quotes.GET("", h.listQuotes)
		quotes.GET("/convert", h.convertQuotes)
	}
}

// listQuotes godoc
// @Summary List latest rates
// @Description Retrieves the latest rates relative to USD, served from cache when fresh
// @Tags quotes
// @Produce  json
// @Success 200 {array} dto.QuoteResponse
// @Failure 502 {object} map[string]string "Rates API and local store both failed"
// @Failure 503 {object} map[string]string "No rates fetched yet"
// @Failure 500 {object} map[string]string "Failed to list quotes"
// @Router /quotes [get]
func (h *quoteHandler) listQuotes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to list quotes")

	quotes, err := h.quoteService.GetQuotes(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list quotes")
		return
	}

	logger.Info("Quotes listed successfully", slog.Int("count", len(quotes)))
	c.JSON(http.StatusOK, dto.ToListQuoteResponse(quotes))
}

// convertQuotes godoc
// @Summary Convert an amount
// @Description Expresses amount of the base currency in every supported currency. A non-numeric amount returns an empty list.
// @Tags quotes
// @Produce  json
// @Param   amount query string false "Amount to convert" example(100)
// @Param   base   query string true  "Base currency code" example(JPY)
// @Success 200 {array} dto.QuoteResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 404 {object} map[string]string "Unknown base currency"
// @Failure 422 {object} map[string]string "No rate for the base currency"
// @Failure 502 {object} map[string]string "Rates API and local store both failed"
// @Failure 503 {object} map[string]string "No data fetched yet"
// @Failure 500 {object} map[string]string "Failed to convert"
// @Router /quotes/convert [get]
func (h *quoteHandler) convertQuotes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ConvertQuotesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Failed to bind query for ConvertQuotes", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	baseID := req.BaseID()
	logger = logger.With(slog.String("base", baseID), slog.String("amount", req.Amount))
	logger.Info("Received request to convert quotes")

	currencies, err := h.currencyService.GetCurrencies(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to convert")
		return
	}
	base, ok := domain.FindCurrency(currencies, baseID)
	if !ok {
		respondError(c, logger, fmt.Errorf("%w: currency %s", apperrors.ErrNotFound, baseID), "Unknown base currency")
		return
	}

	converted, err := h.quoteService.CalculateQuotes(c.Request.Context(), req.Amount, &base)
	if err != nil {
		respondError(c, logger, err, "Failed to convert")
		return
	}

	logger.Info("Quotes converted successfully", slog.Int("count", len(converted)))
	c.JSON(http.StatusOK, dto.ToListQuoteResponse(converted))
}
