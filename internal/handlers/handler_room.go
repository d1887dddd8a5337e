package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/weberkan/mevatur-backend/internal/core/ports/services"
	"github.com/weberkan/mevatur-backend/internal/dto"
)

// roomHandler handles HTTP requests for rooms.
type roomHandler struct {
	roomService portssvc.RoomSvcFacade
}

func newRoomHandler(rs portssvc.RoomSvcFacade) *roomHandler {
	return &roomHandler{roomService: rs}
}

// registerRoomRoutes registers routes related to rooms.
func registerRoomRoutes(rg *gin.RouterGroup, roomService portssvc.RoomSvcFacade) {
	h := newRoomHandler(roomService)

	rooms := rg.Group("/rooms")
	{
		rooms.POST("", h.createRoom)
		rooms.GET("/:roomID", h.getRoom)
		rooms.PUT("/:roomID", h.updateRoom)
		rooms.DELETE("/:roomID", h.deleteRoom)
	}
}

// createRoom godoc
// @Summary Create a room
// @Tags rooms
// @Accept json
// @Produce json
// @Param room body dto.CreateRoomRequest true "Room details"
// @Success 201 {object} dto.RoomResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /rooms [post]
func (h *roomHandler) createRoom(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := requestingUserID(c)
	if !ok {
		return
	}

	room, err := h.roomService.CreateRoom(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to create room")
		return
	}
	c.JSON(http.StatusCreated, dto.ToRoomResponse(room))
}

// getRoom godoc
// @Summary Get a room
// @Tags rooms
// @Produce json
// @Param roomID path string true "Room ID"
// @Success 200 {object} dto.RoomResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /rooms/{roomID} [get]
func (h *roomHandler) getRoom(c *gin.Context) {
	room, err := h.roomService.GetRoomByID(c.Request.Context(), c.Param("roomID"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve room")
		return
	}
	c.JSON(http.StatusOK, dto.ToRoomResponse(room))
}

// updateRoom godoc
// @Summary Update a room
// @Tags rooms
// @Accept json
// @Produce json
// @Param roomID path string true "Room ID"
// @Param room body dto.UpdateRoomRequest true "Fields to update"
// @Success 200 {object} dto.RoomResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /rooms/{roomID} [put]
func (h *roomHandler) updateRoom(c *gin.Context) {
	var req dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := requestingUserID(c)
	if !ok {
		return
	}

	room, err := h.roomService.UpdateRoom(c.Request.Context(), c.Param("roomID"), req, updaterUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to update room")
		return
	}
	c.JSON(http.StatusOK, dto.ToRoomResponse(room))
}

// deleteRoom godoc
// @Summary Delete a room
// @Description Deletes a room. Participants assigned to it are unassigned but keep their fee tier.
// @Tags rooms
// @Produce json
// @Param roomID path string true "Room ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /rooms/{roomID} [delete]
func (h *roomHandler) deleteRoom(c *gin.Context) {
	if err := h.roomService.DeleteRoom(c.Request.Context(), c.Param("roomID")); err != nil {
		respondServiceError(c, err, "Failed to delete room")
		return
	}
	c.Status(http.StatusNoContent)
}
