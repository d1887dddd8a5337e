package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/weberkan/mevatur-backend/internal/core/ports/services"
	"github.com/weberkan/mevatur-backend/internal/dto"
	"github.com/weberkan/mevatur-backend/internal/middleware"
	"github.com/weberkan/mevatur-backend/internal/utils/export"
)

// reportsHandler handles HTTP requests for group reports.
type reportsHandler struct {
	ledgerService portssvc.LedgerSvc
}

func newReportsHandler(ls portssvc.LedgerSvc) *reportsHandler {
	return &reportsHandler{ledgerService: ls}
}

// registerReportsRoutes registers routes related to group reporting.
func registerReportsRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvc) {
	h := newReportsHandler(ledgerService)

	reports := rg.Group("/reports")
	{
		reports.GET("/groups/:groupID", h.groupReport)
		reports.GET("/groups/:groupID/export", h.exportGroupReport)
	}
}

// groupReport godoc
// @Summary Group roster report
// @Description Returns the roster with per-participant balances in both valuations and per-currency totals.
// @Tags reports
// @Produce json
// @Param groupID path string true "Group ID"
// @Success 200 {object} dto.GroupReportResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/groups/{groupID} [get]
func (h *reportsHandler) groupReport(c *gin.Context) {
	report, err := h.ledgerService.GroupReport(c.Request.Context(), c.Param("groupID"))
	if err != nil {
		respondServiceError(c, err, "Failed to build group report")
		return
	}
	c.JSON(http.StatusOK, dto.ToGroupReportResponse(report))
}

// exportGroupReport godoc
// @Summary Export a group roster report
// @Description Streams the group report as an xlsx workbook or CSV file.
// @Tags reports
// @Produce application/octet-stream
// @Param groupID path string true "Group ID"
// @Param format query string false "Export format: xlsx (default) or csv"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/groups/{groupID}/export [get]
func (h *reportsHandler) exportGroupReport(c *gin.Context) {
	report, err := h.ledgerService.GroupReport(c.Request.Context(), c.Param("groupID"))
	if err != nil {
		respondServiceError(c, err, "Failed to build group report")
		return
	}

	format := c.DefaultQuery("format", "xlsx")
	switch format {
	case "xlsx":
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.Group.Name+".xlsx"))
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		err = export.GroupReportXLSX(*report, c.Writer)
	case "csv":
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.Group.Name+".csv"))
		c.Header("Content-Type", "text/csv; charset=utf-8")
		err = export.GroupReportCSV(*report, c.Writer)
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unsupported format, use xlsx or csv"})
		return
	}

	if err != nil {
		// Headers may already be out; log and drop the connection.
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to stream group report export", "error", err.Error())
		c.Abort()
	}
}
