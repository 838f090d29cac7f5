package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// VaultTransactionModel 金库流水记录，只增不改
type VaultTransactionModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`

	Type        VaultTransactionType `json:"type" gorm:"not null"`
	Amount      decimal.Decimal      `json:"amount" gorm:"type:decimal(10,2);not null"`
	Description string               `json:"description"`

	// 仅 donation 类型需要关联活动
	InitiativeId *int64 `json:"initiative_id"`

	TransactionDate time.Time `json:"transaction_date"`
}

// TableName 自定义表名
func (VaultTransactionModel) TableName() string {
	return "vault_transaction"
}

// VaultTransactionType 金库流水类型
type VaultTransactionType string

const (
	TransactionTypeDeposit  VaultTransactionType = "deposit"  // 存入
	TransactionTypeWithdraw VaultTransactionType = "withdraw" // 取出
	TransactionTypeDonation VaultTransactionType = "donation" // 捐赠给活动
	TransactionTypeSurplus  VaultTransactionType = "surplus"  // 结余回收
)

// IsValid 检查流水类型是否合法
func (t VaultTransactionType) IsValid() bool {
	switch t {
	case TransactionTypeDeposit, TransactionTypeWithdraw, TransactionTypeDonation, TransactionTypeSurplus:
		return true
	}
	return false
}

// IsDebit 是否为出账类型（余额减少）
func (t VaultTransactionType) IsDebit() bool {
	return t == TransactionTypeWithdraw || t == TransactionTypeDonation
}

// VaultBalanceModel 金库余额，单行表
type VaultBalanceModel struct {
	Id      int64           `json:"id" gorm:"primaryKey"`
	Balance decimal.Decimal `json:"balance" gorm:"type:decimal(10,2);not null;default:0"`
}

// TableName 自定义表名
func (VaultBalanceModel) TableName() string {
	return "vault_balance"
}
