package logic

import (
	"testing"

	"github.com/ara-kahkejian/DonationTracking/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestVaultBalanceStartsAtZero(t *testing.T) {
	db := newTestDB(t)
	vaultLogic := NewVaultLogic(db)

	balance, err := vaultLogic.GetBalance()
	require.NoError(t, err)
	requireDecimalEqual(t, 0, balance)
}

func TestVaultDepositAndWithdraw(t *testing.T) {
	db := newTestDB(t)
	vaultLogic := NewVaultLogic(db)

	_, err := vaultLogic.RecordTransaction(model.TransactionTypeDeposit, decimal.NewFromInt(200), "", nil)
	require.NoError(t, err)

	_, err = vaultLogic.RecordTransaction(model.TransactionTypeWithdraw, decimal.NewFromInt(50), "", nil)
	require.NoError(t, err)

	balance, err := vaultLogic.GetBalance()
	require.NoError(t, err)
	requireDecimalEqual(t, 150, balance)
}

func TestVaultRejectsOverdraw(t *testing.T) {
	db := newTestDB(t)
	vaultLogic := NewVaultLogic(db)

	_, err := vaultLogic.RecordTransaction(model.TransactionTypeWithdraw, decimal.NewFromInt(1), "", nil)
	require.ErrorIs(t, err, model.ErrInsufficientFunds)

	// 失败的交易不留流水
	transactions, err := vaultLogic.GetTransactions()
	require.NoError(t, err)
	require.Empty(t, transactions)
}

func TestVaultRejectsInvalidInput(t *testing.T) {
	db := newTestDB(t)
	vaultLogic := NewVaultLogic(db)

	_, err := vaultLogic.RecordTransaction(model.TransactionTypeDeposit, decimal.NewFromInt(-5), "", nil)
	require.ErrorIs(t, err, model.ErrInvalidAmount)

	_, err = vaultLogic.RecordTransaction(model.TransactionTypeDeposit, decimal.Zero, "", nil)
	require.ErrorIs(t, err, model.ErrInvalidAmount)

	_, err = vaultLogic.RecordTransaction(model.VaultTransactionType("transfer"), decimal.NewFromInt(10), "", nil)
	require.ErrorIs(t, err, model.ErrInvalidTransactionType)

	_, err = vaultLogic.RecordTransaction(model.TransactionTypeDonation, decimal.NewFromInt(10), "", nil)
	require.ErrorIs(t, err, model.ErrInitiativeRequired)
}

func TestVaultDonationFlow(t *testing.T) {
	db := newTestDB(t)
	vaultLogic := NewVaultLogic(db)
	category := createTestCategory(t, db, "Education")
	initiative := createActiveInitiative(t, db, category.Id, "School Supplies")

	_, err := vaultLogic.RecordTransaction(model.TransactionTypeDeposit, decimal.NewFromInt(100), "opening", nil)
	require.NoError(t, err)

	// 超出余额的捐赠被整体拒绝
	_, err = vaultLogic.RecordTransaction(model.TransactionTypeDonation, decimal.NewFromInt(150), "", &initiative.Id)
	require.ErrorIs(t, err, model.ErrInsufficientFunds)

	balance, err := vaultLogic.GetBalance()
	require.NoError(t, err)
	requireDecimalEqual(t, 100, balance)

	record, err := vaultLogic.RecordTransaction(model.TransactionTypeDonation, decimal.NewFromInt(100), "full donation", &initiative.Id)
	require.NoError(t, err)
	require.NotNil(t, record.InitiativeId)
	require.Equal(t, initiative.Id, *record.InitiativeId)

	balance, err = vaultLogic.GetBalance()
	require.NoError(t, err)
	requireDecimalEqual(t, 0, balance)

	// 捐赠以金库会员身份记入活动参与
	var vaultMember model.MemberModel
	require.NoError(t, db.Where("phone_number = ?", model.VaultMemberPhone).First(&vaultMember).Error)

	var participations []model.ParticipationModel
	require.NoError(t, db.Where("member_id = ?", vaultMember.Id).Find(&participations).Error)
	require.Len(t, participations, 1)
	require.Equal(t, model.RoleDonor, participations[0].Role)
	require.Equal(t, initiative.Id, participations[0].InitiativeId)
	requireDecimalEqual(t, 100, participations[0].Amount)
}

func TestVaultDonationRequiresActiveInitiative(t *testing.T) {
	db := newTestDB(t)
	vaultLogic := NewVaultLogic(db)
	category := createTestCategory(t, db, "Health")
	ended := createEndedInitiative(t, db, category.Id, "Past Campaign")

	_, err := vaultLogic.RecordTransaction(model.TransactionTypeDeposit, decimal.NewFromInt(500), "", nil)
	require.NoError(t, err)

	_, err = vaultLogic.RecordTransaction(model.TransactionTypeDonation, decimal.NewFromInt(100), "", &ended.Id)
	require.ErrorIs(t, err, model.ErrInitiativeNotActive)

	missing := int64(9999)
	_, err = vaultLogic.RecordTransaction(model.TransactionTypeDonation, decimal.NewFromInt(100), "", &missing)
	require.ErrorIs(t, err, model.ErrNotFound)

	// 两次失败都不影响余额
	balance, err := vaultLogic.GetBalance()
	require.NoError(t, err)
	requireDecimalEqual(t, 500, balance)
}

func TestVaultTransactionsOrderedByDateDesc(t *testing.T) {
	db := newTestDB(t)
	vaultLogic := NewVaultLogic(db)

	_, err := vaultLogic.RecordTransaction(model.TransactionTypeDeposit, decimal.NewFromInt(10), "first", nil)
	require.NoError(t, err)
	_, err = vaultLogic.RecordTransaction(model.TransactionTypeDeposit, decimal.NewFromInt(20), "second", nil)
	require.NoError(t, err)

	transactions, err := vaultLogic.GetTransactions()
	require.NoError(t, err)
	require.Len(t, transactions, 2)
	require.False(t, transactions[0].TransactionDate.Before(transactions[1].TransactionDate))
}

func TestVaultSurplusCreditsBalance(t *testing.T) {
	db := newTestDB(t)
	vaultLogic := NewVaultLogic(db)

	_, err := vaultLogic.RecordTransaction(model.TransactionTypeSurplus, decimal.NewFromInt(75), "leftover", nil)
	require.NoError(t, err)

	balance, err := vaultLogic.GetBalance()
	require.NoError(t, err)
	requireDecimalEqual(t, 75, balance)
}
