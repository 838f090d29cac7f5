package repository

import (
	"fmt"

	"github.com/ara-kahkejian/DonationTracking/internal/config"
	"github.com/ara-kahkejian/DonationTracking/internal/model"
	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

func Init(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent), // 禁用 GORM 的默认日志输出
		NamingStrategy: &schema.NamingStrategy{
			SingularTable: true, // 禁用复数表名
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// 自动迁移
	if err := Migrate(db); err != nil {
		return nil, err
	}

	// 初始化系统数据
	if err := Provision(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate 自动迁移所有表
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.MemberModel{},
		&model.CategoryModel{},
		&model.InitiativeModel{},
		&model.ParticipationModel{},
		&model.VaultTransactionModel{},
		&model.VaultBalanceModel{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// Provision 初始化系统保留数据：金库会员和余额行。
// 金库会员在启动时创建而不是首次捐赠时创建，避免并发首次捐赠时重复创建。
func Provision(db *gorm.DB) error {
	vaultMember := model.MemberModel{
		FirstName:   model.VaultMemberFirstName,
		LastName:    model.VaultMemberLastName,
		PhoneNumber: model.VaultMemberPhone,
	}
	if err := db.Where(model.MemberModel{PhoneNumber: model.VaultMemberPhone}).
		FirstOrCreate(&vaultMember).Error; err != nil {
		return fmt.Errorf("failed to provision vault member: %w", err)
	}

	var count int64
	if err := db.Model(&model.VaultBalanceModel{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check vault balance: %w", err)
	}
	if count == 0 {
		if err := db.Create(&model.VaultBalanceModel{Balance: decimal.Zero}).Error; err != nil {
			return fmt.Errorf("failed to provision vault balance: %w", err)
		}
	}

	return nil
}
