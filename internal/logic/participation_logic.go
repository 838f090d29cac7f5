package logic

import (
	"errors"
	"fmt"
	"time"

	"github.com/ara-kahkejian/DonationTracking/internal/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ParticipationLogic 参与记录业务逻辑
type ParticipationLogic struct {
	db *gorm.DB
}

// NewParticipationLogic 创建参与记录业务逻辑
func NewParticipationLogic(db *gorm.DB) *ParticipationLogic {
	return &ParticipationLogic{db: db}
}

// ParticipationUpdate 参与记录部分更新字段，nil 表示不修改。
// 参与时间不允许更新。
type ParticipationUpdate struct {
	Role   *model.ParticipantRole
	Amount *decimal.Decimal
}

// ConnectMemberToInitiative 把会员以指定角色和金额关联到活动，活动必须进行中
func (l *ParticipationLogic) ConnectMemberToInitiative(participation *model.ParticipationModel) error {
	if !participation.Role.IsValid() {
		return model.ErrInvalidRole
	}
	if !participation.Amount.IsPositive() {
		return model.ErrInvalidAmount
	}

	var member model.MemberModel
	if err := l.db.First(&member, participation.MemberId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("会员不存在: %w", model.ErrNotFound)
		}
		return err
	}

	var initiative model.InitiativeModel
	if err := l.db.First(&initiative, participation.InitiativeId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("活动不存在: %w", model.ErrNotFound)
		}
		return err
	}
	if initiative.Status != model.InitiativeStatusActive {
		return model.ErrInitiativeNotActive
	}

	if participation.ParticipationDate.IsZero() {
		participation.ParticipationDate = time.Now()
	}

	return l.db.Create(participation).Error
}

// GetInitiativeParticipations 获取活动的参与记录，附带会员信息
func (l *ParticipationLogic) GetInitiativeParticipations(initiativeId int64) ([]model.ParticipationView, error) {
	var views []model.ParticipationView
	err := l.db.Table("participation p").
		Select(`p.id, p.member_id, p.initiative_id, m.first_name, m.last_name,
			m.phone_number, m.address, p.role, p.amount, p.participation_date`).
		Joins("JOIN member m ON p.member_id = m.id").
		Where("p.initiative_id = ?", initiativeId).
		Scan(&views).Error
	if err != nil {
		return nil, fmt.Errorf("获取活动参与记录失败: %w", err)
	}
	return views, nil
}

// GetMemberParticipations 获取会员的参与记录，附带活动和类别信息
func (l *ParticipationLogic) GetMemberParticipations(memberId int64) ([]model.ParticipationView, error) {
	var views []model.ParticipationView
	err := l.db.Table("participation p").
		Select(`p.id, p.member_id, p.initiative_id, m.first_name, m.last_name,
			m.phone_number, m.address, p.role, p.amount, p.participation_date,
			i.title AS initiative_title, c.name AS category_name`).
		Joins("JOIN member m ON p.member_id = m.id").
		Joins("JOIN initiative i ON p.initiative_id = i.id").
		Joins("JOIN category c ON i.category_id = c.id").
		Where("p.member_id = ?", memberId).
		Scan(&views).Error
	if err != nil {
		return nil, fmt.Errorf("获取会员参与记录失败: %w", err)
	}
	return views, nil
}

// UpdateParticipation 部分更新参与记录的角色和金额
func (l *ParticipationLogic) UpdateParticipation(id int64, update *ParticipationUpdate) (*model.ParticipationModel, error) {
	var participation model.ParticipationModel
	if err := l.db.First(&participation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("参与记录不存在: %w", model.ErrNotFound)
		}
		return nil, err
	}

	if update.Role != nil {
		if !update.Role.IsValid() {
			return nil, model.ErrInvalidRole
		}
		participation.Role = *update.Role
	}
	if update.Amount != nil {
		if !update.Amount.IsPositive() {
			return nil, model.ErrInvalidAmount
		}
		participation.Amount = *update.Amount
	}

	if err := l.db.Save(&participation).Error; err != nil {
		return nil, err
	}

	return &participation, nil
}

// DeleteParticipation 删除参与记录
func (l *ParticipationLogic) DeleteParticipation(id int64) error {
	result := l.db.Delete(&model.ParticipationModel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("参与记录不存在: %w", model.ErrNotFound)
	}
	return nil
}
