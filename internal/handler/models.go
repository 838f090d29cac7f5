package handler

import (
	"time"

	"github.com/shopspring/decimal"
)

// 请求模型。金额统一用 decimal 接收，字符串或数字均可，进入系统后不再转换。

// CreateMemberRequest 注册会员请求
type CreateMemberRequest struct {
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	Address     string `json:"address"`
}

// UpdateMemberRequest 更新会员请求，未提供的字段不修改
type UpdateMemberRequest struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	PhoneNumber *string `json:"phone_number"`
	Address     *string `json:"address"`
}

// CreateCategoryRequest 创建类别请求
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateInitiativeRequest 创建活动请求
type CreateInitiativeRequest struct {
	Title         string          `json:"title" binding:"required"`
	CategoryId    int64           `json:"category_id" binding:"required"`
	Description   string          `json:"description"`
	StartingDate  time.Time       `json:"starting_date" binding:"required"`
	EndingDate    time.Time       `json:"ending_date" binding:"required"`
	DonationsGoal decimal.Decimal `json:"donations_goal" binding:"required"`
}

// UpdateInitiativeRequest 更新活动请求，未提供的字段不修改
type UpdateInitiativeRequest struct {
	Title         *string          `json:"title"`
	CategoryId    *int64           `json:"category_id"`
	Description   *string          `json:"description"`
	StartingDate  *time.Time       `json:"starting_date"`
	EndingDate    *time.Time       `json:"ending_date"`
	DonationsGoal *decimal.Decimal `json:"donations_goal"`
}

// UpdateInitiativeStatusRequest 人工设置活动状态请求
type UpdateInitiativeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ConnectMemberRequest 会员参与活动请求
type ConnectMemberRequest struct {
	MemberId int64           `json:"member_id" binding:"required"`
	Role     string          `json:"role" binding:"required"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
}

// UpdateParticipationRequest 更新参与记录请求，未提供的字段不修改
type UpdateParticipationRequest struct {
	Role   *string          `json:"role"`
	Amount *decimal.Decimal `json:"amount"`
}

// CreateVaultTransactionRequest 金库流水请求
type CreateVaultTransactionRequest struct {
	Type         string          `json:"type" binding:"required"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	Description  string          `json:"description"`
	InitiativeId *int64          `json:"initiative_id"`
}
