package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/weberkan/mevatur-backend/internal/core/ports/services"
	"github.com/weberkan/mevatur-backend/internal/dto"
	"github.com/weberkan/mevatur-backend/internal/middleware"
	"github.com/weberkan/mevatur-backend/internal/utils/export"
)

// companyHandler handles the admin-only company ledger and its manual
// entries.
type companyHandler struct {
	entryService  portssvc.CompanyEntrySvcFacade
	ledgerService portssvc.LedgerSvc
}

func newCompanyHandler(es portssvc.CompanyEntrySvcFacade, ls portssvc.LedgerSvc) *companyHandler {
	return &companyHandler{entryService: es, ledgerService: ls}
}

// registerCompanyRoutes registers the company module routes. The caller is
// expected to gate rg behind the admin role.
func registerCompanyRoutes(rg *gin.RouterGroup, entryService portssvc.CompanyEntrySvcFacade, ledgerService portssvc.LedgerSvc) {
	h := newCompanyHandler(entryService, ledgerService)

	entries := rg.Group("/company-entries")
	{
		entries.POST("", h.createEntry)
		entries.GET("", h.listEntries)
		entries.GET("/:entryID", h.getEntry)
		entries.PUT("/:entryID", h.updateEntry)
		entries.DELETE("/:entryID", h.deleteEntry)
	}

	company := rg.Group("/company")
	{
		company.GET("/ledger", h.companyLedger)
		company.GET("/ledger/export", h.exportCompanyLedger)
	}
}

// createEntry godoc
// @Summary Record a manual company entry
// @Tags company
// @Accept json
// @Produce json
// @Param entry body dto.CreateCompanyEntryRequest true "Entry details"
// @Success 201 {object} dto.CompanyEntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /company-entries [post]
func (h *companyHandler) createEntry(c *gin.Context) {
	var req dto.CreateCompanyEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := requestingUserID(c)
	if !ok {
		return
	}

	entry, err := h.entryService.CreateCompanyEntry(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to record entry")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCompanyEntryResponse(entry))
}

// listEntries godoc
// @Summary List manual company entries
// @Tags company
// @Produce json
// @Param from query string false "Start date (2006-01-02)"
// @Param to query string false "End date (2006-01-02), inclusive"
// @Success 200 {array} dto.CompanyEntryResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /company-entries [get]
func (h *companyHandler) listEntries(c *gin.Context) {
	from, to, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid date format, expected 2006-01-02"})
		return
	}

	entries, err := h.entryService.ListCompanyEntries(c.Request.Context(), from, to)
	if err != nil {
		respondServiceError(c, err, "Failed to list entries")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCompanyEntryResponse(entries))
}

// getEntry godoc
// @Summary Get a manual company entry
// @Tags company
// @Produce json
// @Param entryID path string true "Entry ID"
// @Success 200 {object} dto.CompanyEntryResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /company-entries/{entryID} [get]
func (h *companyHandler) getEntry(c *gin.Context) {
	entry, err := h.entryService.GetCompanyEntryByID(c.Request.Context(), c.Param("entryID"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToCompanyEntryResponse(entry))
}

// updateEntry godoc
// @Summary Update a manual company entry
// @Description Updates a manual entry. Derived ledger rows are projections and cannot be edited.
// @Tags company
// @Accept json
// @Produce json
// @Param entryID path string true "Entry ID"
// @Param entry body dto.UpdateCompanyEntryRequest true "Fields to update"
// @Success 200 {object} dto.CompanyEntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /company-entries/{entryID} [put]
func (h *companyHandler) updateEntry(c *gin.Context) {
	var req dto.UpdateCompanyEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := requestingUserID(c)
	if !ok {
		return
	}

	entry, err := h.entryService.UpdateCompanyEntry(c.Request.Context(), c.Param("entryID"), req, updaterUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to update entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToCompanyEntryResponse(entry))
}

// deleteEntry godoc
// @Summary Delete a manual company entry
// @Tags company
// @Produce json
// @Param entryID path string true "Entry ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /company-entries/{entryID} [delete]
func (h *companyHandler) deleteEntry(c *gin.Context) {
	if err := h.entryService.DeleteCompanyEntry(c.Request.Context(), c.Param("entryID")); err != nil {
		respondServiceError(c, err, "Failed to delete entry")
		return
	}
	c.Status(http.StatusNoContent)
}

// companyLedger godoc
// @Summary Combined company ledger
// @Description Returns manual entries merged with read-only rows derived from payments and expenses, with per-currency totals and optional monthly or weekly buckets.
// @Tags company
// @Produce json
// @Param from query string false "Start date (2006-01-02)"
// @Param to query string false "End date (2006-01-02), inclusive"
// @Param bucket query string false "Aggregation bucket: monthly or weekly"
// @Success 200 {object} dto.CompanyLedgerResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /company/ledger [get]
func (h *companyHandler) companyLedger(c *gin.Context) {
	from, to, bucket, ok := h.ledgerScope(c)
	if !ok {
		return
	}

	ledger, err := h.ledgerService.CompanyLedger(c.Request.Context(), from, to, bucket)
	if err != nil {
		respondServiceError(c, err, "Failed to build company ledger")
		return
	}
	c.JSON(http.StatusOK, dto.ToCompanyLedgerResponse(ledger))
}

// exportCompanyLedger godoc
// @Summary Export the company ledger
// @Description Streams the combined company ledger as an xlsx workbook or CSV file.
// @Tags company
// @Produce application/octet-stream
// @Param from query string false "Start date (2006-01-02)"
// @Param to query string false "End date (2006-01-02), inclusive"
// @Param format query string false "Export format: xlsx (default) or csv"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /company/ledger/export [get]
func (h *companyHandler) exportCompanyLedger(c *gin.Context) {
	from, to, _, ok := h.ledgerScope(c)
	if !ok {
		return
	}

	ledger, err := h.ledgerService.CompanyLedger(c.Request.Context(), from, to, portssvc.LedgerBucketNone)
	if err != nil {
		respondServiceError(c, err, "Failed to build company ledger")
		return
	}

	format := c.DefaultQuery("format", "xlsx")
	switch format {
	case "xlsx":
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "sirket-defteri.xlsx"))
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		err = export.CompanyLedgerXLSX(*ledger, c.Writer)
	case "csv":
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "sirket-defteri.csv"))
		c.Header("Content-Type", "text/csv; charset=utf-8")
		err = export.CompanyLedgerCSV(*ledger, c.Writer)
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unsupported format, use xlsx or csv"})
		return
	}

	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to stream company ledger export", "error", err.Error())
		c.Abort()
	}
}

// ledgerScope parses the shared from/to/bucket query parameters.
func (h *companyHandler) ledgerScope(c *gin.Context) (from, to *time.Time, bucket string, ok bool) {
	from, to, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid date format, expected 2006-01-02"})
		return nil, nil, "", false
	}

	bucket = c.Query("bucket")
	switch bucket {
	case portssvc.LedgerBucketNone, portssvc.LedgerBucketMonthly, portssvc.LedgerBucketWeekly:
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unsupported bucket, use monthly or weekly"})
		return nil, nil, "", false
	}
	return from, to, bucket, true
}
