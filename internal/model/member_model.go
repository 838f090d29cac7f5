package model

import (
	"time"
)

// MemberModel 会员模型
type MemberModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	FirstName   string `json:"first_name" gorm:"not null" binding:"required"`
	LastName    string `json:"last_name" gorm:"not null" binding:"required"`
	PhoneNumber string `json:"phone_number" gorm:"not null;uniqueIndex" binding:"required"`
	Address     string `json:"address"`
}

// TableName 自定义表名
func (MemberModel) TableName() string {
	return "member"
}

// 系统保留的金库会员，在初始化时创建，用于记录金库直接捐赠
const (
	VaultMemberFirstName = "Vault"
	VaultMemberLastName  = "Donation"
	VaultMemberPhone     = "vault-system"
)
