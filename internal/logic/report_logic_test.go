package logic

import (
	"testing"
	"time"

	"github.com/ara-kahkejian/DonationTracking/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// reportFixture 构造跨两个类别、两个活动的报表测试数据
type reportFixture struct {
	education *model.CategoryModel
	health    *model.CategoryModel
	school    *model.InitiativeModel
	clinic    *model.InitiativeModel
	alice     *model.MemberModel
	bob       *model.MemberModel
	base      time.Time
}

func newReportFixture(t *testing.T, db *gorm.DB) *reportFixture {
	t.Helper()

	f := &reportFixture{
		education: createTestCategory(t, db, "Education"),
		health:    createTestCategory(t, db, "Health"),
		base:      time.Now().Add(-48 * time.Hour),
	}
	f.school = createActiveInitiative(t, db, f.education.Id, "School Supplies")
	f.clinic = createActiveInitiative(t, db, f.health.Id, "Clinic Fund")
	f.alice = createTestMember(t, db, "Alice", "400-0001")
	f.bob = createTestMember(t, db, "Bob", "400-0002")

	addParticipation(t, db, f.alice.Id, f.school.Id, model.RoleDonor, 50, f.base)
	addParticipation(t, db, f.alice.Id, f.clinic.Id, model.RoleDonor, 200, f.base.Add(24*time.Hour))
	addParticipation(t, db, f.bob.Id, f.school.Id, model.RoleDonor, 10, f.base.Add(36*time.Hour))
	addParticipation(t, db, f.bob.Id, f.clinic.Id, model.RoleBeneficiary, 80, f.base.Add(12*time.Hour))

	return f
}

func TestDonationsReportNoFilters(t *testing.T) {
	db := newTestDB(t)
	f := newReportFixture(t, db)
	reportLogic := NewReportLogic(db)

	rows, err := reportLogic.DonationsReport(&ReportFilters{})
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// 受益记录不出现在捐赠报表，结果按参与时间倒序
	require.Equal(t, f.bob.Id, rows[0].MemberId)
	require.Equal(t, f.alice.Id, rows[1].MemberId)
	require.Equal(t, "Clinic Fund", rows[1].InitiativeTitle)
}

func TestDonationsReportFiltersAreConjunctive(t *testing.T) {
	db := newTestDB(t)
	f := newReportFixture(t, db)
	reportLogic := NewReportLogic(db)

	minAmount := decimal.NewFromInt(40)
	rows, err := reportLogic.DonationsReport(&ReportFilters{
		MemberId:  &f.alice.Id,
		MinAmount: &minAmount,
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// 叠加类别条件后只剩一条
	rows, err = reportLogic.DonationsReport(&ReportFilters{
		MemberId:   &f.alice.Id,
		MinAmount:  &minAmount,
		CategoryId: &f.education.Id,
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	requireDecimalEqual(t, 50, rows[0].Amount)
	require.Equal(t, "Education", rows[0].CategoryName)
}

func TestDonationsReportDateWindow(t *testing.T) {
	db := newTestDB(t)
	f := newReportFixture(t, db)
	reportLogic := NewReportLogic(db)

	start := f.base.Add(12 * time.Hour)
	end := f.base.Add(30 * time.Hour)
	rows, err := reportLogic.DonationsReport(&ReportFilters{
		StartDate: &start,
		EndDate:   &end,
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "Clinic Fund", rows[0].InitiativeTitle)
}

func TestBeneficiariesReport(t *testing.T) {
	db := newTestDB(t)
	f := newReportFixture(t, db)
	reportLogic := NewReportLogic(db)

	rows, err := reportLogic.BeneficiariesReport(&ReportFilters{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, f.bob.Id, rows[0].MemberId)
	requireDecimalEqual(t, 80, rows[0].Amount)
	require.Equal(t, "Health", rows[0].CategoryName)

	rows, err = reportLogic.BeneficiariesReport(&ReportFilters{InitiativeId: &f.school.Id})
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestInitiativesReport(t *testing.T) {
	db := newTestDB(t)
	f := newReportFixture(t, db)
	reportLogic := NewReportLogic(db)

	rows, err := reportLogic.InitiativesReport(&ReportFilters{})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	rows, err = reportLogic.InitiativesReport(&ReportFilters{CategoryId: &f.health.Id})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "Clinic Fund", rows[0].Title)
	requireDecimalEqual(t, 200, rows[0].TotalDonations)
	require.Equal(t, int64(1), rows[0].TotalBeneficiaries)

	active := string(model.InitiativeStatusActive)
	rows, err = reportLogic.InitiativesReport(&ReportFilters{Status: &active})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	upcoming := string(model.InitiativeStatusUpcoming)
	rows, err = reportLogic.InitiativesReport(&ReportFilters{Status: &upcoming})
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestInitiativesReportDateContainment(t *testing.T) {
	db := newTestDB(t)
	newReportFixture(t, db)
	reportLogic := NewReportLogic(db)

	// 活动的起止日期需整体落在给定区间内
	start := time.Now().Add(-72 * time.Hour)
	end := time.Now().Add(72 * time.Hour)
	rows, err := reportLogic.InitiativesReport(&ReportFilters{StartDate: &start, EndDate: &end})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	tooLate := time.Now()
	rows, err = reportLogic.InitiativesReport(&ReportFilters{EndDate: &tooLate})
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestMembersActivityReport(t *testing.T) {
	db := newTestDB(t)
	f := newReportFixture(t, db)
	reportLogic := NewReportLogic(db)

	rows, err := reportLogic.MembersActivityReport(&ReportFilters{MemberId: &f.bob.Id})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	requireDecimalEqual(t, 10, rows[0].TotalDonations)
	requireDecimalEqual(t, 80, rows[0].TotalBenefits)
	require.Equal(t, int64(2), rows[0].TotalInitiatives)
	require.Equal(t, int64(1), rows[0].DonationCount)
	require.Equal(t, int64(1), rows[0].BenefitCount)

	// 角色过滤：只有发生过受益参与的会员
	beneficiary := string(model.RoleBeneficiary)
	rows, err = reportLogic.MembersActivityReport(&ReportFilters{Role: &beneficiary})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, f.bob.Id, rows[0].Id)
}
