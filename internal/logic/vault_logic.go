package logic

import (
	"errors"
	"fmt"
	"time"

	"github.com/ara-kahkejian/DonationTracking/internal/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// VaultLogic 金库业务逻辑
type VaultLogic struct {
	db *gorm.DB
}

// NewVaultLogic 创建金库业务逻辑
func NewVaultLogic(db *gorm.DB) *VaultLogic {
	return &VaultLogic{db: db}
}

// GetBalance 获取当前余额，余额行不存在时初始化为0
func (v *VaultLogic) GetBalance() (decimal.Decimal, error) {
	var balance model.VaultBalanceModel
	err := v.db.First(&balance).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		balance = model.VaultBalanceModel{Balance: decimal.Zero}
		if err := v.db.Create(&balance).Error; err != nil {
			return decimal.Zero, fmt.Errorf("初始化金库余额失败: %w", err)
		}
		return balance.Balance, nil
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("获取金库余额失败: %w", err)
	}
	return balance.Balance, nil
}

// GetTransactions 获取全部流水，按交易时间倒序
func (v *VaultLogic) GetTransactions() ([]model.VaultTransactionModel, error) {
	var transactions []model.VaultTransactionModel
	if err := v.db.Order("transaction_date DESC").Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("获取金库流水失败: %w", err)
	}
	return transactions, nil
}

// RecordTransaction 记录一笔金库流水并更新余额。
// 余额检查、流水插入、余额更新和捐赠的参与记录在同一事务内完成，
// 事务内对余额行加锁，避免并发出账绕过余额检查。
func (v *VaultLogic) RecordTransaction(txType model.VaultTransactionType, amount decimal.Decimal, description string, initiativeId *int64) (*model.VaultTransactionModel, error) {
	if !txType.IsValid() {
		return nil, model.ErrInvalidTransactionType
	}
	if !amount.IsPositive() {
		return nil, model.ErrInvalidAmount
	}
	if txType == model.TransactionTypeDonation && initiativeId == nil {
		return nil, model.ErrInitiativeRequired
	}

	record := &model.VaultTransactionModel{
		Type:            txType,
		Amount:          amount,
		Description:     description,
		TransactionDate: time.Now(),
	}
	if txType == model.TransactionTypeDonation {
		record.InitiativeId = initiativeId
	}

	err := v.db.Transaction(func(tx *gorm.DB) error {
		balance, err := lockBalance(tx)
		if err != nil {
			return err
		}

		// 出账不允许透支
		if txType.IsDebit() && amount.GreaterThan(balance.Balance) {
			return model.ErrInsufficientFunds
		}

		// 捐赠只能给进行中的活动
		if txType == model.TransactionTypeDonation {
			var initiative model.InitiativeModel
			if err := tx.First(&initiative, *initiativeId).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("活动不存在: %w", model.ErrNotFound)
				}
				return err
			}
			if initiative.Status != model.InitiativeStatusActive {
				return model.ErrInitiativeNotActive
			}
		}

		if err := tx.Create(record).Error; err != nil {
			return err
		}

		signed := amount
		if txType.IsDebit() {
			signed = amount.Neg()
		}
		newBalance := balance.Balance.Add(signed)
		if err := tx.Model(&model.VaultBalanceModel{}).
			Where("id = ?", balance.Id).
			Update("balance", newBalance).Error; err != nil {
			return err
		}

		// 捐赠同时以金库会员身份记一条捐赠参与，保证活动聚合包含金库捐赠
		if txType == model.TransactionTypeDonation {
			var vaultMember model.MemberModel
			if err := tx.Where("phone_number = ?", model.VaultMemberPhone).
				First(&vaultMember).Error; err != nil {
				return fmt.Errorf("金库会员不存在: %w", err)
			}
			participation := model.ParticipationModel{
				MemberId:          vaultMember.Id,
				InitiativeId:      *initiativeId,
				Role:              model.RoleDonor,
				Amount:            amount,
				ParticipationDate: time.Now(),
			}
			if err := tx.Create(&participation).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}

// lockBalance 在事务内锁定余额行，不存在时创建
func lockBalance(tx *gorm.DB) (*model.VaultBalanceModel, error) {
	q := tx
	// sqlite 没有行锁，事务内写互斥已足够
	if tx.Dialector.Name() == "postgres" {
		q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var balance model.VaultBalanceModel
	err := q.First(&balance).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		balance = model.VaultBalanceModel{Balance: decimal.Zero}
		if err := tx.Create(&balance).Error; err != nil {
			return nil, fmt.Errorf("初始化金库余额失败: %w", err)
		}
		return &balance, nil
	}
	if err != nil {
		return nil, fmt.Errorf("获取金库余额失败: %w", err)
	}
	return &balance, nil
}
