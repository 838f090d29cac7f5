package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ara-kahkejian/DonationTracking/internal/model"
	"github.com/gin-gonic/gin"
)

// 通用响应结构
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// SuccessResponse 成功响应
func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse 错误响应
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Message: message,
		Data:    nil,
	})
}

// HandleError 按业务错误映射HTTP状态码
func HandleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrNotFound):
		ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, model.ErrPhoneNumberTaken),
		errors.Is(err, model.ErrCategoryNameTaken):
		ErrorResponse(c, http.StatusConflict, err.Error())
	case errors.Is(err, model.ErrInvalidAmount),
		errors.Is(err, model.ErrInvalidDateRange),
		errors.Is(err, model.ErrInvalidCategory),
		errors.Is(err, model.ErrInvalidRole),
		errors.Is(err, model.ErrInvalidStatus),
		errors.Is(err, model.ErrInvalidTransactionType),
		errors.Is(err, model.ErrInsufficientFunds),
		errors.Is(err, model.ErrInitiativeNotActive),
		errors.Is(err, model.ErrInitiativeRequired):
		ErrorResponse(c, http.StatusBadRequest, err.Error())
	default:
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
	}
}

// parseId 解析路径中的数字ID
func parseId(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的ID")
		return 0, false
	}
	return id, true
}
