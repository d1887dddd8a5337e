package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/weberkan/mevatur-backend/internal/core/ports/services"
	"github.com/weberkan/mevatur-backend/internal/dto"
	"github.com/weberkan/mevatur-backend/internal/middleware"
)

// groupHandler handles HTTP requests for tour groups.
type groupHandler struct {
	groupService       portssvc.GroupSvcFacade
	participantService portssvc.ParticipantSvcFacade
	roomService        portssvc.RoomSvcFacade
	paymentService     portssvc.PaymentSvcFacade
	expenseService     portssvc.ExpenseSvcFacade
}

func newGroupHandler(
	gs portssvc.GroupSvcFacade,
	ps portssvc.ParticipantSvcFacade,
	rs portssvc.RoomSvcFacade,
	pys portssvc.PaymentSvcFacade,
	es portssvc.ExpenseSvcFacade,
) *groupHandler {
	return &groupHandler{
		groupService:       gs,
		participantService: ps,
		roomService:        rs,
		paymentService:     pys,
		expenseService:     es,
	}
}

// registerGroupRoutes registers routes for groups and their sub-resources.
func registerGroupRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newGroupHandler(services.Group, services.Participant, services.Room, services.Payment, services.Expense)

	groups := rg.Group("/groups")
	{
		groups.POST("", h.createGroup)
		groups.GET("", h.listGroups)
		groups.GET("/:groupID", h.getGroup)
		groups.PUT("/:groupID", h.updateGroup)
		groups.DELETE("/:groupID", h.deleteGroup)
		groups.POST("/:groupID/archive", h.archiveGroup)

		groups.GET("/:groupID/participants", h.listGroupParticipants)
		groups.GET("/:groupID/rooms", h.listGroupRooms)
		groups.GET("/:groupID/payments", h.listGroupPayments)
		groups.GET("/:groupID/expenses", h.listGroupExpenses)
	}
}

// createGroup godoc
// @Summary Create a new group
// @Description Creates a Hac, Umre or Gezi group with its fee schedule.
// @Tags groups
// @Accept json
// @Produce json
// @Param group body dto.CreateGroupRequest true "Group details"
// @Success 201 {object} dto.GroupResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /groups [post]
func (h *groupHandler) createGroup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createGroup", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := requestingUserID(c)
	if !ok {
		return
	}

	group, err := h.groupService.CreateGroup(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to create group")
		return
	}
	c.JSON(http.StatusCreated, dto.ToGroupResponse(group))
}

// listGroups godoc
// @Summary List groups
// @Description Lists all groups. Archived groups are hidden unless includeArchived=true.
// @Tags groups
// @Produce json
// @Param includeArchived query bool false "Include archived groups"
// @Success 200 {array} dto.GroupResponse
// @Security BearerAuth
// @Router /groups [get]
func (h *groupHandler) listGroups(c *gin.Context) {
	includeArchived, _ := strconv.ParseBool(c.DefaultQuery("includeArchived", "false"))

	groups, err := h.groupService.ListGroups(c.Request.Context(), includeArchived)
	if err != nil {
		respondServiceError(c, err, "Failed to list groups")
		return
	}
	c.JSON(http.StatusOK, dto.ToListGroupResponse(groups))
}

// getGroup godoc
// @Summary Get a group
// @Tags groups
// @Produce json
// @Param groupID path string true "Group ID"
// @Success 200 {object} dto.GroupResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /groups/{groupID} [get]
func (h *groupHandler) getGroup(c *gin.Context) {
	group, err := h.groupService.GetGroupByID(c.Request.Context(), c.Param("groupID"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve group")
		return
	}
	c.JSON(http.StatusOK, dto.ToGroupResponse(group))
}

// updateGroup godoc
// @Summary Update a group
// @Tags groups
// @Accept json
// @Produce json
// @Param groupID path string true "Group ID"
// @Param group body dto.UpdateGroupRequest true "Fields to update"
// @Success 200 {object} dto.GroupResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /groups/{groupID} [put]
func (h *groupHandler) updateGroup(c *gin.Context) {
	var req dto.UpdateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := requestingUserID(c)
	if !ok {
		return
	}

	group, err := h.groupService.UpdateGroup(c.Request.Context(), c.Param("groupID"), req, updaterUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to update group")
		return
	}
	c.JSON(http.StatusOK, dto.ToGroupResponse(group))
}

// archiveGroup godoc
// @Summary Archive a group
// @Description Marks a group as archived. Archiving twice is a no-op.
// @Tags groups
// @Produce json
// @Param groupID path string true "Group ID"
// @Success 200 {object} dto.GroupResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /groups/{groupID}/archive [post]
func (h *groupHandler) archiveGroup(c *gin.Context) {
	updaterUserID, ok := requestingUserID(c)
	if !ok {
		return
	}

	group, err := h.groupService.ArchiveGroup(c.Request.Context(), c.Param("groupID"), updaterUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to archive group")
		return
	}
	c.JSON(http.StatusOK, dto.ToGroupResponse(group))
}

// deleteGroup godoc
// @Summary Delete a group
// @Description Deletes a group and cascades to its participants, rooms, payments and expenses.
// @Tags groups
// @Produce json
// @Param groupID path string true "Group ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /groups/{groupID} [delete]
func (h *groupHandler) deleteGroup(c *gin.Context) {
	if err := h.groupService.DeleteGroup(c.Request.Context(), c.Param("groupID")); err != nil {
		respondServiceError(c, err, "Failed to delete group")
		return
	}
	c.Status(http.StatusNoContent)
}

// listGroupParticipants godoc
// @Summary List a group's participants
// @Tags groups
// @Produce json
// @Param groupID path string true "Group ID"
// @Success 200 {array} dto.ParticipantResponse
// @Security BearerAuth
// @Router /groups/{groupID}/participants [get]
func (h *groupHandler) listGroupParticipants(c *gin.Context) {
	participants, err := h.participantService.ListParticipantsByGroup(c.Request.Context(), c.Param("groupID"))
	if err != nil {
		respondServiceError(c, err, "Failed to list participants")
		return
	}
	c.JSON(http.StatusOK, dto.ToListParticipantResponse(participants))
}

// listGroupRooms godoc
// @Summary List a group's rooms
// @Tags groups
// @Produce json
// @Param groupID path string true "Group ID"
// @Success 200 {array} dto.RoomResponse
// @Security BearerAuth
// @Router /groups/{groupID}/rooms [get]
func (h *groupHandler) listGroupRooms(c *gin.Context) {
	rooms, err := h.roomService.ListRoomsByGroup(c.Request.Context(), c.Param("groupID"))
	if err != nil {
		respondServiceError(c, err, "Failed to list rooms")
		return
	}
	c.JSON(http.StatusOK, dto.ToListRoomResponse(rooms))
}

// listGroupPayments godoc
// @Summary List all payments of a group's participants
// @Tags groups
// @Produce json
// @Param groupID path string true "Group ID"
// @Success 200 {array} dto.PaymentResponse
// @Security BearerAuth
// @Router /groups/{groupID}/payments [get]
func (h *groupHandler) listGroupPayments(c *gin.Context) {
	payments, err := h.paymentService.ListPaymentsByGroup(c.Request.Context(), c.Param("groupID"))
	if err != nil {
		respondServiceError(c, err, "Failed to list payments")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPaymentResponse(payments))
}

// listGroupExpenses godoc
// @Summary List a group's expenses
// @Tags groups
// @Produce json
// @Param groupID path string true "Group ID"
// @Success 200 {array} dto.ExpenseResponse
// @Security BearerAuth
// @Router /groups/{groupID}/expenses [get]
func (h *groupHandler) listGroupExpenses(c *gin.Context) {
	expenses, err := h.expenseService.ListExpensesByGroup(c.Request.Context(), c.Param("groupID"))
	if err != nil {
		respondServiceError(c, err, "Failed to list expenses")
		return
	}
	c.JSON(http.StatusOK, dto.ToListExpenseResponse(expenses))
}
