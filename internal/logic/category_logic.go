package logic

import (
	"errors"
	"fmt"

	"github.com/ara-kahkejian/DonationTracking/internal/model"
	"gorm.io/gorm"
)

// CategoryLogic 类别业务逻辑
type CategoryLogic struct {
	db *gorm.DB
}

// NewCategoryLogic 创建类别业务逻辑
func NewCategoryLogic(db *gorm.DB) *CategoryLogic {
	return &CategoryLogic{db: db}
}

// CreateCategory 创建类别，名称唯一
func (l *CategoryLogic) CreateCategory(category *model.CategoryModel) error {
	if category.Name == "" {
		return errors.New("类别名称不能为空")
	}

	var count int64
	if err := l.db.Model(&model.CategoryModel{}).
		Where("name = ?", category.Name).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return model.ErrCategoryNameTaken
	}

	return l.db.Create(category).Error
}

// GetCategories 获取类别列表
func (l *CategoryLogic) GetCategories() ([]model.CategoryModel, error) {
	var categories []model.CategoryModel
	if err := l.db.Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("获取类别列表失败: %w", err)
	}
	return categories, nil
}

// GetCategory 获取类别详情
func (l *CategoryLogic) GetCategory(id int64) (*model.CategoryModel, error) {
	var category model.CategoryModel
	if err := l.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("类别不存在: %w", model.ErrNotFound)
		}
		return nil, err
	}
	return &category, nil
}
