package logic

import (
	"errors"
	"fmt"
	"time"

	"github.com/ara-kahkejian/DonationTracking/internal/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InitiativeLogic 活动业务逻辑
type InitiativeLogic struct {
	db *gorm.DB
}

// NewInitiativeLogic 创建活动业务逻辑
func NewInitiativeLogic(db *gorm.DB) *InitiativeLogic {
	return &InitiativeLogic{db: db}
}

// ComputeStatus 按时间推导活动状态。创建和日期变更时必须用同一规则重算。
func ComputeStatus(startingDate, endingDate, now time.Time) model.InitiativeStatus {
	switch {
	case now.Before(startingDate):
		return model.InitiativeStatusUpcoming
	case now.After(endingDate):
		return model.InitiativeStatusEnded
	default:
		return model.InitiativeStatusActive
	}
}

// InitiativeUpdate 活动部分更新字段，nil 表示不修改
type InitiativeUpdate struct {
	Title         *string
	CategoryId    *int64
	Description   *string
	StartingDate  *time.Time
	EndingDate    *time.Time
	DonationsGoal *decimal.Decimal
}

// CreateInitiative 创建活动
func (l *InitiativeLogic) CreateInitiative(initiative *model.InitiativeModel) error {
	// 验证活动数据
	if initiative.Title == "" {
		return errors.New("活动标题不能为空")
	}
	if !initiative.DonationsGoal.IsPositive() {
		return model.ErrInvalidAmount
	}
	if !initiative.EndingDate.After(initiative.StartingDate) {
		return model.ErrInvalidDateRange
	}

	// 检查类别是否存在
	var category model.CategoryModel
	if err := l.db.First(&category, initiative.CategoryId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.ErrInvalidCategory
		}
		return err
	}

	// 初始状态由起止日期推导
	initiative.Status = ComputeStatus(initiative.StartingDate, initiative.EndingDate, time.Now())

	return l.db.Create(initiative).Error
}

// UpdateInitiative 部分更新活动。日期变更时用合并后的起止日期校验并重算状态。
func (l *InitiativeLogic) UpdateInitiative(id int64, update *InitiativeUpdate) (*model.InitiativeModel, error) {
	var initiative model.InitiativeModel
	if err := l.db.First(&initiative, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("活动不存在: %w", model.ErrNotFound)
		}
		return nil, err
	}

	if update.CategoryId != nil {
		var category model.CategoryModel
		if err := l.db.First(&category, *update.CategoryId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, model.ErrInvalidCategory
			}
			return nil, err
		}
		initiative.CategoryId = *update.CategoryId
	}
	if update.Title != nil {
		if *update.Title == "" {
			return nil, errors.New("活动标题不能为空")
		}
		initiative.Title = *update.Title
	}
	if update.Description != nil {
		initiative.Description = *update.Description
	}
	if update.DonationsGoal != nil {
		if !update.DonationsGoal.IsPositive() {
			return nil, model.ErrInvalidAmount
		}
		initiative.DonationsGoal = *update.DonationsGoal
	}

	datesChanged := update.StartingDate != nil || update.EndingDate != nil
	if update.StartingDate != nil {
		initiative.StartingDate = *update.StartingDate
	}
	if update.EndingDate != nil {
		initiative.EndingDate = *update.EndingDate
	}
	if datesChanged {
		if !initiative.EndingDate.After(initiative.StartingDate) {
			return nil, model.ErrInvalidDateRange
		}
		initiative.Status = ComputeStatus(initiative.StartingDate, initiative.EndingDate, time.Now())
	}

	if err := l.db.Save(&initiative).Error; err != nil {
		return nil, err
	}

	return &initiative, nil
}

// SetStatus 人工覆盖活动状态，不校验日期
func (l *InitiativeLogic) SetStatus(id int64, status model.InitiativeStatus) (*model.InitiativeModel, error) {
	if !status.IsValid() {
		return nil, model.ErrInvalidStatus
	}

	var initiative model.InitiativeModel
	if err := l.db.First(&initiative, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("活动不存在: %w", model.ErrNotFound)
		}
		return nil, err
	}

	if err := l.db.Model(&initiative).Update("status", status).Error; err != nil {
		return nil, err
	}
	initiative.Status = status

	return &initiative, nil
}

// initiativeViewQuery 活动视图查询，聚合每次现算
const initiativeViewQuery = `
	SELECT
		i.id,
		i.created_at,
		i.title,
		i.category_id,
		c.name AS category_name,
		i.description,
		i.starting_date,
		i.ending_date,
		i.donations_goal,
		i.status,
		(SELECT COUNT(*)
		 FROM participation p
		 WHERE p.initiative_id = i.id AND p.role = 'donor') AS total_donors,
		COALESCE((SELECT SUM(p.amount)
		 FROM participation p
		 WHERE p.initiative_id = i.id AND p.role = 'donor'), 0) AS total_donations,
		(SELECT COUNT(*)
		 FROM participation p
		 WHERE p.initiative_id = i.id AND p.role = 'beneficiary') AS total_beneficiaries,
		COALESCE((SELECT SUM(p.amount)
		 FROM participation p
		 WHERE p.initiative_id = i.id AND p.role = 'beneficiary'), 0) AS total_beneficiaries_amount
	FROM initiative i
	JOIN category c ON i.category_id = c.id`

// GetInitiatives 获取活动列表（含聚合）
func (l *InitiativeLogic) GetInitiatives() ([]model.InitiativeView, error) {
	var views []model.InitiativeView
	if err := l.db.Raw(initiativeViewQuery).Scan(&views).Error; err != nil {
		return nil, fmt.Errorf("获取活动列表失败: %w", err)
	}
	return views, nil
}

// GetInitiative 获取活动详情（含聚合）
func (l *InitiativeLogic) GetInitiative(id int64) (*model.InitiativeView, error) {
	var views []model.InitiativeView
	if err := l.db.Raw(initiativeViewQuery+" WHERE i.id = ?", id).Scan(&views).Error; err != nil {
		return nil, fmt.Errorf("获取活动详情失败: %w", err)
	}
	if len(views) == 0 {
		return nil, fmt.Errorf("活动不存在: %w", model.ErrNotFound)
	}
	return &views[0], nil
}
