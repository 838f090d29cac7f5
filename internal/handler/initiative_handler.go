package handler

import (
	"net/http"

	"github.com/ara-kahkejian/DonationTracking/internal/logic"
	"github.com/ara-kahkejian/DonationTracking/internal/model"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type InitiativeHandler struct {
	initiativeLogic    *logic.InitiativeLogic
	participationLogic *logic.ParticipationLogic
}

func NewInitiativeHandler(db *gorm.DB) *InitiativeHandler {
	return &InitiativeHandler{
		initiativeLogic:    logic.NewInitiativeLogic(db),
		participationLogic: logic.NewParticipationLogic(db),
	}
}

// CreateInitiative 创建活动
func (h *InitiativeHandler) CreateInitiative(c *gin.Context) {
	var req CreateInitiativeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	initiative := model.InitiativeModel{
		Title:         req.Title,
		CategoryId:    req.CategoryId,
		Description:   req.Description,
		StartingDate:  req.StartingDate,
		EndingDate:    req.EndingDate,
		DonationsGoal: req.DonationsGoal,
	}
	if err := h.initiativeLogic.CreateInitiative(&initiative); err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "活动创建成功", initiative)
}

// GetInitiatives 获取活动列表
func (h *InitiativeHandler) GetInitiatives(c *gin.Context) {
	initiatives, err := h.initiativeLogic.GetInitiatives()
	if err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", initiatives)
}

// GetInitiative 获取活动详情
func (h *InitiativeHandler) GetInitiative(c *gin.Context) {
	id, ok := parseId(c)
	if !ok {
		return
	}

	initiative, err := h.initiativeLogic.GetInitiative(id)
	if err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", initiative)
}

// UpdateInitiative 更新活动
func (h *InitiativeHandler) UpdateInitiative(c *gin.Context) {
	id, ok := parseId(c)
	if !ok {
		return
	}

	var req UpdateInitiativeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	initiative, err := h.initiativeLogic.UpdateInitiative(id, &logic.InitiativeUpdate{
		Title:         req.Title,
		CategoryId:    req.CategoryId,
		Description:   req.Description,
		StartingDate:  req.StartingDate,
		EndingDate:    req.EndingDate,
		DonationsGoal: req.DonationsGoal,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "活动更新成功", initiative)
}

// UpdateInitiativeStatus 人工设置活动状态
func (h *InitiativeHandler) UpdateInitiativeStatus(c *gin.Context) {
	id, ok := parseId(c)
	if !ok {
		return
	}

	var req UpdateInitiativeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	initiative, err := h.initiativeLogic.SetStatus(id, model.InitiativeStatus(req.Status))
	if err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "活动状态更新成功", initiative)
}

// GetInitiativeMembers 获取活动参与记录
func (h *InitiativeHandler) GetInitiativeMembers(c *gin.Context) {
	id, ok := parseId(c)
	if !ok {
		return
	}

	participations, err := h.participationLogic.GetInitiativeParticipations(id)
	if err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", participations)
}

// ConnectMember 会员参与活动
func (h *InitiativeHandler) ConnectMember(c *gin.Context) {
	id, ok := parseId(c)
	if !ok {
		return
	}

	var req ConnectMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	participation := model.ParticipationModel{
		MemberId:     req.MemberId,
		InitiativeId: id,
		Role:         model.ParticipantRole(req.Role),
		Amount:       req.Amount,
	}
	if err := h.participationLogic.ConnectMemberToInitiative(&participation); err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "参与记录创建成功", participation)
}
