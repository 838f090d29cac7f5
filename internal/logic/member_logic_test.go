package logic

import (
	"testing"
	"time"

	"github.com/ara-kahkejian/DonationTracking/internal/model"
	"github.com/stretchr/testify/require"
)

func TestCreateMemberRejectsDuplicatePhone(t *testing.T) {
	db := newTestDB(t)
	memberLogic := NewMemberLogic(db)

	createTestMember(t, db, "Alice", "200-0001")

	err := memberLogic.CreateMember(&model.MemberModel{
		FirstName:   "Another",
		LastName:    "Alice",
		PhoneNumber: "200-0001",
	})
	require.ErrorIs(t, err, model.ErrPhoneNumberTaken)
}

func TestUpdateMemberPartialFields(t *testing.T) {
	db := newTestDB(t)
	memberLogic := NewMemberLogic(db)

	member := createTestMember(t, db, "Alice", "200-0001")
	other := createTestMember(t, db, "Bob", "200-0002")

	newAddress := "12 Oak Street"
	updated, err := memberLogic.UpdateMember(member.Id, &MemberUpdate{Address: &newAddress})
	require.NoError(t, err)
	require.Equal(t, "12 Oak Street", updated.Address)
	require.Equal(t, "Alice", updated.FirstName)
	require.Equal(t, "200-0001", updated.PhoneNumber)

	// 换成已占用的手机号被拒绝
	_, err = memberLogic.UpdateMember(member.Id, &MemberUpdate{PhoneNumber: &other.PhoneNumber})
	require.ErrorIs(t, err, model.ErrPhoneNumberTaken)

	// 手机号不变的更新不触发唯一性冲突
	_, err = memberLogic.UpdateMember(member.Id, &MemberUpdate{PhoneNumber: &member.PhoneNumber})
	require.NoError(t, err)

	_, err = memberLogic.UpdateMember(9999, &MemberUpdate{Address: &newAddress})
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestGetMemberAggregates(t *testing.T) {
	db := newTestDB(t)
	memberLogic := NewMemberLogic(db)
	category := createTestCategory(t, db, "Education")
	first := createActiveInitiative(t, db, category.Id, "First")
	second := createActiveInitiative(t, db, category.Id, "Second")
	member := createTestMember(t, db, "Alice", "200-0001")

	base := time.Now().Add(-time.Hour)
	addParticipation(t, db, member.Id, first.Id, model.RoleDonor, 50, base)
	addParticipation(t, db, member.Id, second.Id, model.RoleDonor, 30, base.Add(10*time.Minute))
	addParticipation(t, db, member.Id, first.Id, model.RoleBeneficiary, 20, base.Add(20*time.Minute))

	view, err := memberLogic.GetMember(member.Id)
	require.NoError(t, err)
	requireDecimalEqual(t, 80, view.TotalDonations)
	requireDecimalEqual(t, 20, view.TotalBeneficiaries)
	require.Equal(t, string(model.RoleBeneficiary), view.MostRecentRole)
	// 同一活动的两条参与只算一个活动
	require.Equal(t, int64(2), view.InitiativesCount)

	_, err = memberLogic.GetMember(9999)
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestMostRecentRoleTieBreak(t *testing.T) {
	db := newTestDB(t)
	memberLogic := NewMemberLogic(db)
	category := createTestCategory(t, db, "Education")
	initiative := createActiveInitiative(t, db, category.Id, "Ongoing")
	member := createTestMember(t, db, "Alice", "200-0001")

	// 参与时间相同，取后插入的记录
	sameTime := time.Now().Truncate(time.Second)
	addParticipation(t, db, member.Id, initiative.Id, model.RoleDonor, 10, sameTime)
	addParticipation(t, db, member.Id, initiative.Id, model.RoleBeneficiary, 10, sameTime)

	view, err := memberLogic.GetMember(member.Id)
	require.NoError(t, err)
	require.Equal(t, string(model.RoleBeneficiary), view.MostRecentRole)
}

func TestGetMemberWithoutParticipations(t *testing.T) {
	db := newTestDB(t)
	memberLogic := NewMemberLogic(db)
	member := createTestMember(t, db, "Alice", "200-0001")

	view, err := memberLogic.GetMember(member.Id)
	require.NoError(t, err)
	requireDecimalEqual(t, 0, view.TotalDonations)
	requireDecimalEqual(t, 0, view.TotalBeneficiaries)
	require.Empty(t, view.MostRecentRole)
	require.Equal(t, int64(0), view.InitiativesCount)
}

func TestCreateCategoryRejectsDuplicateName(t *testing.T) {
	db := newTestDB(t)
	categoryLogic := NewCategoryLogic(db)

	createTestCategory(t, db, "Education")

	err := categoryLogic.CreateCategory(&model.CategoryModel{Name: "Education"})
	require.ErrorIs(t, err, model.ErrCategoryNameTaken)

	categories, err := categoryLogic.GetCategories()
	require.NoError(t, err)
	require.Len(t, categories, 1)
}
