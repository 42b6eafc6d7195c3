package api

import (
	"errors"
	"net/http"

	reqdto "order-engine/internal/handler/dto/request"
	resdto "order-engine/internal/handler/dto/response"
	"order-engine/internal/handler/middleware"
	"order-engine/internal/pkg/errs"
	"order-engine/internal/usecase"

	"github.com/gin-gonic/gin"
)

type MembershipHandler struct {
	membershipUseCase usecase.MembershipUseCase
}

func NewMembershipHandler(membershipUseCase usecase.MembershipUseCase) *MembershipHandler {
	return &MembershipHandler{membershipUseCase: membershipUseCase}
}

// @Summary Register recurring membership
// @Description Run the whole registration workflow: open a transaction, authorize, confirm
// @Tags memberships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RegisterMembershipRequest true "Registration request"
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 501 {object} map[string]string
// @Router /memberships [post]
func (h *MembershipHandler) Register(c *gin.Context) {
	agentID, ok := middleware.GetAgentID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.RegisterMembershipRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	ord, err := h.membershipUseCase.Register(c.Request.Context(), req.ToParams(agentID))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrAlreadyLocked):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Registration already in progress for this offer",
			})
		default:
			respondError(c, err)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromOrder(ord))
}
