package handlers

import (
	"net/http"

	"gym_frontdesk_backend/internal/models"
	"gym_frontdesk_backend/internal/services"
	"gym_frontdesk_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// MemberHandler holds the member service.
type MemberHandler struct {
	memberService services.MemberService
}

// NewMemberHandler creates a new MemberHandler.
func NewMemberHandler(ms services.MemberService) *MemberHandler {
	return &MemberHandler{memberService: ms}
}

// RegisterMember handles the registration form.
func (h *MemberHandler) RegisterMember(c *gin.Context) {
	var req services.RegisterMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "RegisterMember: Failed to bind JSON")
		respondBindError(c, err)
		return
	}

	member, err := h.memberService.RegisterMember(c.Request.Context(), req)
	if err != nil {
		utils.LogError(err, "RegisterMember: Error from memberService.RegisterMember")
		respondServiceError(c, err, "Failed to register member.")
		return
	}
	c.JSON(http.StatusCreated, member)
}

// ListMembers handles the member directory, optionally filtered by ?search= and ?plan=.
func (h *MemberHandler) ListMembers(c *gin.Context) {
	var filter models.MemberFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		respondBindError(c, err)
		return
	}

	members, err := h.memberService.ListMembers(c.Request.Context(), filter)
	if err != nil {
		utils.LogError(err, "ListMembers: Error from memberService.ListMembers")
		respondServiceError(c, err, "Failed to fetch members.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  members,
		"total": len(members),
	})
}

// GetMember handles fetching a single member by ID.
func (h *MemberHandler) GetMember(c *gin.Context) {
	memberID, ok := parseIDParam(c, "id", "member")
	if !ok {
		return
	}

	member, err := h.memberService.GetMember(c.Request.Context(), memberID)
	if err != nil {
		utils.LogError(err, "GetMember: Error from memberService.GetMember for ID "+utils.Int64ToStr(memberID))
		respondServiceError(c, err, "Failed to fetch member.")
		return
	}
	c.JSON(http.StatusOK, member)
}

// DeleteMember handles deleting a member. The caller must pass ?confirm=true.
func (h *MemberHandler) DeleteMember(c *gin.Context) {
	memberID, ok := parseIDParam(c, "id", "member")
	if !ok {
		return
	}

	if c.Query("confirm") != "true" {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Deletion must be confirmed with ?confirm=true.", nil))
		return
	}

	if err := h.memberService.DeleteMember(c.Request.Context(), memberID); err != nil {
		utils.LogError(err, "DeleteMember: Error from memberService.DeleteMember for ID "+utils.Int64ToStr(memberID))
		respondServiceError(c, err, "Failed to delete member.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Member deleted successfully"})
}
