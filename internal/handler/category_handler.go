package handler

import (
	"net/http"

	"github.com/ara-kahkejian/DonationTracking/internal/logic"
	"github.com/ara-kahkejian/DonationTracking/internal/model"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CategoryHandler struct {
	categoryLogic *logic.CategoryLogic
}

func NewCategoryHandler(db *gorm.DB) *CategoryHandler {
	return &CategoryHandler{
		categoryLogic: logic.NewCategoryLogic(db),
	}
}

// CreateCategory 创建类别
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	category := model.CategoryModel{Name: req.Name}
	if err := h.categoryLogic.CreateCategory(&category); err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "类别创建成功", category)
}

// GetCategories 获取类别列表
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.categoryLogic.GetCategories()
	if err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", categories)
}
