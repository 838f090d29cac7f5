package handler

import (
	"net/http"

	"github.com/ara-kahkejian/DonationTracking/internal/logic"
	"github.com/ara-kahkejian/DonationTracking/internal/model"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MemberHandler struct {
	memberLogic        *logic.MemberLogic
	participationLogic *logic.ParticipationLogic
}

func NewMemberHandler(db *gorm.DB) *MemberHandler {
	return &MemberHandler{
		memberLogic:        logic.NewMemberLogic(db),
		participationLogic: logic.NewParticipationLogic(db),
	}
}

// CreateMember 注册会员
func (h *MemberHandler) CreateMember(c *gin.Context) {
	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	member := model.MemberModel{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	}
	if err := h.memberLogic.CreateMember(&member); err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "会员注册成功", member)
}

// GetMembers 获取会员列表
func (h *MemberHandler) GetMembers(c *gin.Context) {
	members, err := h.memberLogic.GetMembers()
	if err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", members)
}

// GetMember 获取会员详情
func (h *MemberHandler) GetMember(c *gin.Context) {
	id, ok := parseId(c)
	if !ok {
		return
	}

	member, err := h.memberLogic.GetMember(id)
	if err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", member)
}

// UpdateMember 更新会员信息
func (h *MemberHandler) UpdateMember(c *gin.Context) {
	id, ok := parseId(c)
	if !ok {
		return
	}

	var req UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	member, err := h.memberLogic.UpdateMember(id, &logic.MemberUpdate{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "会员更新成功", member)
}

// GetMemberParticipations 获取会员参与记录
func (h *MemberHandler) GetMemberParticipations(c *gin.Context) {
	id, ok := parseId(c)
	if !ok {
		return
	}

	participations, err := h.participationLogic.GetMemberParticipations(id)
	if err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", participations)
}
