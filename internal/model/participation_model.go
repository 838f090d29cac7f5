package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ParticipationModel 会员参与记录（捐赠人或受益人）
type ParticipationModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	MemberId     int64           `json:"member_id" gorm:"not null;index"`
	InitiativeId int64           `json:"initiative_id" gorm:"not null;index"`
	Role         ParticipantRole `json:"role" gorm:"not null"`
	Amount       decimal.Decimal `json:"amount" gorm:"type:decimal(10,2);not null"`

	ParticipationDate time.Time `json:"participation_date"`
}

// TableName 自定义表名
func (ParticipationModel) TableName() string {
	return "participation"
}

// ParticipantRole 参与角色
type ParticipantRole string

const (
	RoleDonor       ParticipantRole = "donor"       // 捐赠人
	RoleBeneficiary ParticipantRole = "beneficiary" // 受益人
)

// IsValid 检查角色值是否合法
func (r ParticipantRole) IsValid() bool {
	return r == RoleDonor || r == RoleBeneficiary
}
