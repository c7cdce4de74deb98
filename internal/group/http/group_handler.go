// Package http provides HTTP handlers for group management operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "github.com/allisson/messaging/internal/errors"
	"github.com/allisson/messaging/internal/group/http/dto"
	groupUseCase "github.com/allisson/messaging/internal/group/usecase"
	"github.com/allisson/messaging/internal/httputil"
	customValidation "github.com/allisson/messaging/internal/validation"
)

// GroupHandler handles HTTP requests for group management.
type GroupHandler struct {
	groupUseCase groupUseCase.GroupUseCase
	logger       *slog.Logger
}

// NewGroupHandler creates a new group handler with required dependencies.
func NewGroupHandler(
	groupUseCase groupUseCase.GroupUseCase,
	logger *slog.Logger,
) *GroupHandler {
	return &GroupHandler{
		groupUseCase: groupUseCase,
		logger:       logger,
	}
}

// CreateGroupHandler creates a new group.
// POST /api/v1/groups
// Returns 201 Created with the new group.
func (h *GroupHandler) CreateGroupHandler(c *gin.Context) {
	var req dto.CreateGroupRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	group, err := h.groupUseCase.Create(c.Request.Context(), req.Name)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.GroupEnvelope{
		Group:   dto.ToGroupResponse(group),
		Message: "Group created successfully",
	})
}

// DeleteGroupHandler deletes a group and its membership rows.
// DELETE /api/v1/groups/:groupId
// Returns 200 OK; an unknown group is a 404.
func (h *GroupHandler) DeleteGroupHandler(c *gin.Context) {
	groupID, err := uuid.Parse(c.Param("groupId"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			apperrors.New("invalid groupId format: must be a valid UUID"),
			h.logger)
		return
	}

	if err := h.groupUseCase.Delete(c.Request.Context(), groupID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MessageEnvelope{
		Message: "Group deleted successfully",
	})
}

// AddMemberHandler adds a user to a group.
// POST /api/v1/groups/:groupId/member
// Returns 201 Created with the updated group. An unknown group or user is a
// 404, an existing member is a 400.
func (h *GroupHandler) AddMemberHandler(c *gin.Context) {
	groupID, userID, ok := h.memberParams(c)
	if !ok {
		return
	}

	group, err := h.groupUseCase.AddMember(c.Request.Context(), groupID, userID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.GroupEnvelope{
		Group:   dto.ToGroupResponse(group),
		Message: "Successfully added new member to group",
	})
}

// RemoveMemberHandler removes a user from a group.
// DELETE /api/v1/groups/:groupId/member - Admin only.
// Returns 200 OK with the updated group.
func (h *GroupHandler) RemoveMemberHandler(c *gin.Context) {
	groupID, userID, ok := h.memberParams(c)
	if !ok {
		return
	}

	group, err := h.groupUseCase.RemoveMember(c.Request.Context(), groupID, userID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.GroupEnvelope{
		Group:   dto.ToGroupResponse(group),
		Message: "Successfully removed member from group",
	})
}

// SearchGroupHandler lists groups whose name contains the query.
// GET /api/v1/groups?name=<fragment>
// An empty query returns every group.
func (h *GroupHandler) SearchGroupHandler(c *gin.Context) {
	groups, err := h.groupUseCase.Search(c.Request.Context(), c.Query("name"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.GroupListEnvelope{
		Groups:  dto.ToGroupListResponse(groups),
		Message: "Group(s) found successfully",
	})
}

// memberParams extracts the group id from the path and the user id from the
// request body. It writes the error response itself when either is invalid.
func (h *GroupHandler) memberParams(c *gin.Context) (groupID, userID uuid.UUID, ok bool) {
	groupID, err := uuid.Parse(c.Param("groupId"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			apperrors.New("invalid groupId format: must be a valid UUID"),
			h.logger)
		return uuid.Nil, uuid.Nil, false
	}

	var req dto.MemberRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return uuid.Nil, uuid.Nil, false
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return uuid.Nil, uuid.Nil, false
	}

	userID, err = uuid.Parse(req.UserID)
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			apperrors.New("invalid userId format: must be a valid UUID"),
			h.logger)
		return uuid.Nil, uuid.Nil, false
	}

	return groupID, userID, true
}
