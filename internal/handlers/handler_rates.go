package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/weberkan/mevatur-backend/internal/core/ports/services"
	"github.com/weberkan/mevatur-backend/internal/dto"
)

// ratesHandler handles HTTP requests for exchange rates.
type ratesHandler struct {
	ratesService portssvc.RatesSvc
}

func newRatesHandler(rs portssvc.RatesSvc) *ratesHandler {
	return &ratesHandler{ratesService: rs}
}

// registerRatesRoutes registers routes related to exchange rates.
func registerRatesRoutes(rg *gin.RouterGroup, ratesService portssvc.RatesSvc) {
	h := newRatesHandler(ratesService)

	rates := rg.Group("/rates")
	{
		rates.GET("", h.currentRates)
		rates.POST("/refresh", h.refreshRates)
		rates.GET("/history", h.rateHistory)
	}
}

// currentRates godoc
// @Summary Current exchange rates
// @Description Returns the rates currently used for TRY conversions, without touching the providers.
// @Tags rates
// @Produce json
// @Success 200 {object} dto.RatesResponse
// @Security BearerAuth
// @Router /rates [get]
func (h *ratesHandler) currentRates(c *gin.Context) {
	rates := h.ratesService.Current(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToRatesResponse(rates))
}

// refreshRates godoc
// @Summary Force a rate refresh
// @Description Fetches fresh rates from the provider chain. When every source fails the previous rates are kept and 502 is returned.
// @Tags rates
// @Produce json
// @Success 200 {object} dto.RatesResponse
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /rates/refresh [post]
func (h *ratesHandler) refreshRates(c *gin.Context) {
	rates, err := h.ratesService.Refresh(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "No rate source is currently reachable"})
		return
	}
	c.JSON(http.StatusOK, dto.ToRatesResponse(rates))
}

// rateHistory godoc
// @Summary Exchange rate history
// @Description Lists persisted rate snapshots, newest first.
// @Tags rates
// @Produce json
// @Param limit query int false "Maximum snapshots to return (default 100, max 500)"
// @Success 200 {array} dto.RateSnapshotResponse
// @Security BearerAuth
// @Router /rates/history [get]
func (h *ratesHandler) rateHistory(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	snapshots, err := h.ratesService.History(c.Request.Context(), limit)
	if err != nil {
		respondServiceError(c, err, "Failed to list rate history")
		return
	}
	c.JSON(http.StatusOK, dto.ToListRateSnapshotResponse(snapshots))
}
