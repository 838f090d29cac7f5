package handler

import (
	"net/http"

	"github.com/ara-kahkejian/DonationTracking/internal/logic"
	"github.com/ara-kahkejian/DonationTracking/internal/model"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ParticipationHandler struct {
	participationLogic *logic.ParticipationLogic
}

func NewParticipationHandler(db *gorm.DB) *ParticipationHandler {
	return &ParticipationHandler{
		participationLogic: logic.NewParticipationLogic(db),
	}
}

// UpdateParticipation 更新参与记录
func (h *ParticipationHandler) UpdateParticipation(c *gin.Context) {
	id, ok := parseId(c)
	if !ok {
		return
	}

	var req UpdateParticipationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	update := logic.ParticipationUpdate{Amount: req.Amount}
	if req.Role != nil {
		role := model.ParticipantRole(*req.Role)
		update.Role = &role
	}

	participation, err := h.participationLogic.UpdateParticipation(id, &update)
	if err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "参与记录更新成功", participation)
}

// DeleteParticipation 删除参与记录
func (h *ParticipationHandler) DeleteParticipation(c *gin.Context) {
	id, ok := parseId(c)
	if !ok {
		return
	}

	if err := h.participationLogic.DeleteParticipation(id); err != nil {
		HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
