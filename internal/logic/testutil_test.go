package logic

import (
	"testing"
	"time"

	"github.com/ara-kahkejian/DonationTracking/internal/model"
	"github.com/ara-kahkejian/DonationTracking/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// newTestDB 创建内存数据库并完成迁移和系统数据初始化
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
		NamingStrategy: &schema.NamingStrategy{
			SingularTable: true,
		},
	})
	require.NoError(t, err)

	// 内存库每个连接是独立的数据库，限制为单连接
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, repository.Migrate(db))
	require.NoError(t, repository.Provision(db))

	return db
}

func createTestCategory(t *testing.T, db *gorm.DB, name string) *model.CategoryModel {
	t.Helper()

	category := &model.CategoryModel{Name: name}
	require.NoError(t, NewCategoryLogic(db).CreateCategory(category))
	return category
}

func createTestMember(t *testing.T, db *gorm.DB, firstName, phone string) *model.MemberModel {
	t.Helper()

	member := &model.MemberModel{
		FirstName:   firstName,
		LastName:    "Tester",
		PhoneNumber: phone,
	}
	require.NoError(t, NewMemberLogic(db).CreateMember(member))
	return member
}

// createActiveInitiative 创建一个当前进行中的活动
func createActiveInitiative(t *testing.T, db *gorm.DB, categoryId int64, title string) *model.InitiativeModel {
	t.Helper()

	initiative := &model.InitiativeModel{
		Title:         title,
		CategoryId:    categoryId,
		StartingDate:  time.Now().Add(-24 * time.Hour),
		EndingDate:    time.Now().Add(24 * time.Hour),
		DonationsGoal: decimal.NewFromInt(1000),
	}
	require.NoError(t, NewInitiativeLogic(db).CreateInitiative(initiative))
	require.Equal(t, model.InitiativeStatusActive, initiative.Status)
	return initiative
}

// createEndedInitiative 创建一个已结束的活动
func createEndedInitiative(t *testing.T, db *gorm.DB, categoryId int64, title string) *model.InitiativeModel {
	t.Helper()

	initiative := &model.InitiativeModel{
		Title:         title,
		CategoryId:    categoryId,
		StartingDate:  time.Now().Add(-48 * time.Hour),
		EndingDate:    time.Now().Add(-24 * time.Hour),
		DonationsGoal: decimal.NewFromInt(1000),
	}
	require.NoError(t, NewInitiativeLogic(db).CreateInitiative(initiative))
	require.Equal(t, model.InitiativeStatusEnded, initiative.Status)
	return initiative
}

// addParticipation 直接插入参与记录，用于构造聚合和报表数据
func addParticipation(t *testing.T, db *gorm.DB, memberId, initiativeId int64, role model.ParticipantRole, amount int64, date time.Time) *model.ParticipationModel {
	t.Helper()

	participation := &model.ParticipationModel{
		MemberId:          memberId,
		InitiativeId:      initiativeId,
		Role:              role,
		Amount:            decimal.NewFromInt(amount),
		ParticipationDate: date,
	}
	require.NoError(t, db.Create(participation).Error)
	return participation
}

func requireDecimalEqual(t *testing.T, expected int64, actual decimal.Decimal) {
	t.Helper()
	require.True(t, decimal.NewFromInt(expected).Equal(actual),
		"expected %d, got %s", expected, actual)
}
