package handler

import (
	"net/http"

	"github.com/ara-kahkejian/DonationTracking/internal/logic"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReportHandler struct {
	reportLogic *logic.ReportLogic
}

func NewReportHandler(db *gorm.DB) *ReportHandler {
	return &ReportHandler{
		reportLogic: logic.NewReportLogic(db),
	}
}

// bindFilters 解析报表过滤条件，空请求体等价于无过滤
func bindFilters(c *gin.Context) (*logic.ReportFilters, bool) {
	var filters logic.ReportFilters
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&filters); err != nil {
			ErrorResponse(c, http.StatusBadRequest, err.Error())
			return nil, false
		}
	}
	return &filters, true
}

// DonationsReport 捐赠报表
func (h *ReportHandler) DonationsReport(c *gin.Context) {
	filters, ok := bindFilters(c)
	if !ok {
		return
	}

	rows, err := h.reportLogic.DonationsReport(filters)
	if err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", rows)
}

// BeneficiariesReport 受益报表
func (h *ReportHandler) BeneficiariesReport(c *gin.Context) {
	filters, ok := bindFilters(c)
	if !ok {
		return
	}

	rows, err := h.reportLogic.BeneficiariesReport(filters)
	if err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", rows)
}

// InitiativesReport 活动报表
func (h *ReportHandler) InitiativesReport(c *gin.Context) {
	filters, ok := bindFilters(c)
	if !ok {
		return
	}

	rows, err := h.reportLogic.InitiativesReport(filters)
	if err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", rows)
}

// MembersActivityReport 会员活动报表
func (h *ReportHandler) MembersActivityReport(c *gin.Context) {
	filters, ok := bindFilters(c)
	if !ok {
		return
	}

	rows, err := h.reportLogic.MembersActivityReport(filters)
	if err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", rows)
}
