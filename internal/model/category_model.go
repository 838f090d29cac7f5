package model

import (
	"time"
)

// CategoryModel 公益类别模型
type CategoryModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`

	Name string `json:"name" gorm:"not null;uniqueIndex" binding:"required"`
}

// TableName 自定义表名
func (CategoryModel) TableName() string {
	return "category"
}
