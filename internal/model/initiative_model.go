package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// InitiativeModel 公益活动模型
type InitiativeModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 基本信息
	Title       string `json:"title" gorm:"not null" binding:"required"`
	CategoryId  int64  `json:"category_id" gorm:"not null"`
	Description string `json:"description" gorm:"type:text"`

	// 时间信息
	StartingDate time.Time `json:"starting_date" gorm:"not null"`
	EndingDate   time.Time `json:"ending_date" gorm:"not null"`

	// 募捐目标
	DonationsGoal decimal.Decimal `json:"donations_goal" gorm:"type:decimal(10,2);not null"`

	// 状态，由起止日期推导，日期变更时重新计算
	Status InitiativeStatus `json:"status" gorm:"default:'upcoming'"`
}

// TableName 自定义表名
func (InitiativeModel) TableName() string {
	return "initiative"
}

// InitiativeStatus 活动状态
type InitiativeStatus string

const (
	InitiativeStatusUpcoming InitiativeStatus = "upcoming" // 未开始
	InitiativeStatusActive   InitiativeStatus = "active"   // 进行中
	InitiativeStatusEnded    InitiativeStatus = "ended"    // 已结束
)

// IsValid 检查状态值是否合法
func (s InitiativeStatus) IsValid() bool {
	switch s {
	case InitiativeStatusUpcoming, InitiativeStatusActive, InitiativeStatusEnded:
		return true
	}
	return false
}
