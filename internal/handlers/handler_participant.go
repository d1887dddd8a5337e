package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/weberkan/mevatur-backend/internal/core/ports/services"
	"github.com/weberkan/mevatur-backend/internal/dto"
	"github.com/weberkan/mevatur-backend/internal/middleware"
)

// participantHandler handles HTTP requests for participants.
type participantHandler struct {
	participantService portssvc.ParticipantSvcFacade
	paymentService     portssvc.PaymentSvcFacade
	ledgerService      portssvc.LedgerSvc
}

func newParticipantHandler(ps portssvc.ParticipantSvcFacade, pys portssvc.PaymentSvcFacade, ls portssvc.LedgerSvc) *participantHandler {
	return &participantHandler{
		participantService: ps,
		paymentService:     pys,
		ledgerService:      ls,
	}
}

// registerParticipantRoutes registers routes related to participants.
func registerParticipantRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newParticipantHandler(services.Participant, services.Payment, services.Ledger)

	participants := rg.Group("/participants")
	{
		participants.POST("", h.createParticipant)
		participants.GET("/:participantID", h.getParticipant)
		participants.PUT("/:participantID", h.updateParticipant)
		participants.DELETE("/:participantID", h.deleteParticipant)
		participants.GET("/:participantID/payments", h.listParticipantPayments)
		participants.GET("/:participantID/balance", h.getParticipantBalance)
	}
}

// createParticipant godoc
// @Summary Enroll a participant
// @Description Enrolls a participant into a group, rejecting enrollment when the group is at capacity.
// @Tags participants
// @Accept json
// @Produce json
// @Param participant body dto.CreateParticipantRequest true "Participant details"
// @Success 201 {object} dto.ParticipantResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /participants [post]
func (h *participantHandler) createParticipant(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createParticipant", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := requestingUserID(c)
	if !ok {
		return
	}

	participant, err := h.participantService.CreateParticipant(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to enroll participant")
		return
	}
	c.JSON(http.StatusCreated, dto.ToParticipantResponse(participant))
}

// getParticipant godoc
// @Summary Get a participant
// @Tags participants
// @Produce json
// @Param participantID path string true "Participant ID"
// @Success 200 {object} dto.ParticipantResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /participants/{participantID} [get]
func (h *participantHandler) getParticipant(c *gin.Context) {
	participant, err := h.participantService.GetParticipantByID(c.Request.Context(), c.Param("participantID"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve participant")
		return
	}
	c.JSON(http.StatusOK, dto.ToParticipantResponse(participant))
}

// updateParticipant godoc
// @Summary Update a participant
// @Description Updates participant details. An empty roomID unassigns the room.
// @Tags participants
// @Accept json
// @Produce json
// @Param participantID path string true "Participant ID"
// @Param participant body dto.UpdateParticipantRequest true "Fields to update"
// @Success 200 {object} dto.ParticipantResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /participants/{participantID} [put]
func (h *participantHandler) updateParticipant(c *gin.Context) {
	var req dto.UpdateParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := requestingUserID(c)
	if !ok {
		return
	}

	participant, err := h.participantService.UpdateParticipant(c.Request.Context(), c.Param("participantID"), req, updaterUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to update participant")
		return
	}
	c.JSON(http.StatusOK, dto.ToParticipantResponse(participant))
}

// deleteParticipant godoc
// @Summary Delete a participant
// @Description Deletes a participant together with their payments.
// @Tags participants
// @Produce json
// @Param participantID path string true "Participant ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /participants/{participantID} [delete]
func (h *participantHandler) deleteParticipant(c *gin.Context) {
	if err := h.participantService.DeleteParticipant(c.Request.Context(), c.Param("participantID")); err != nil {
		respondServiceError(c, err, "Failed to delete participant")
		return
	}
	c.Status(http.StatusNoContent)
}

// listParticipantPayments godoc
// @Summary List a participant's payments
// @Tags participants
// @Produce json
// @Param participantID path string true "Participant ID"
// @Success 200 {array} dto.PaymentResponse
// @Security BearerAuth
// @Router /participants/{participantID}/payments [get]
func (h *participantHandler) listParticipantPayments(c *gin.Context) {
	payments, err := h.paymentService.ListPaymentsByParticipant(c.Request.Context(), c.Param("participantID"))
	if err != nil {
		respondServiceError(c, err, "Failed to list payments")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPaymentResponse(payments))
}

// getParticipantBalance godoc
// @Summary Get a participant's financial position
// @Description Returns the fee, paid and balance figures in the group's currency (live rates) and in TRY (recorded snapshots).
// @Tags participants
// @Produce json
// @Param participantID path string true "Participant ID"
// @Success 200 {object} dto.ParticipantLedgerResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /participants/{participantID}/balance [get]
func (h *participantHandler) getParticipantBalance(c *gin.Context) {
	balance, err := h.ledgerService.ParticipantBalance(c.Request.Context(), c.Param("participantID"))
	if err != nil {
		respondServiceError(c, err, "Failed to compute balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToParticipantLedgerResponse(balance))
}
