package logic

import (
	"errors"
	"fmt"

	"github.com/ara-kahkejian/DonationTracking/internal/model"
	"gorm.io/gorm"
)

// MemberLogic 会员业务逻辑
type MemberLogic struct {
	db *gorm.DB
}

// NewMemberLogic 创建会员业务逻辑
func NewMemberLogic(db *gorm.DB) *MemberLogic {
	return &MemberLogic{db: db}
}

// MemberUpdate 会员部分更新字段，nil 表示不修改
type MemberUpdate struct {
	FirstName   *string
	LastName    *string
	PhoneNumber *string
	Address     *string
}

// CreateMember 注册会员，手机号唯一
func (l *MemberLogic) CreateMember(member *model.MemberModel) error {
	if member.FirstName == "" || member.LastName == "" {
		return errors.New("会员姓名不能为空")
	}
	if member.PhoneNumber == "" {
		return errors.New("手机号不能为空")
	}

	var count int64
	if err := l.db.Model(&model.MemberModel{}).
		Where("phone_number = ?", member.PhoneNumber).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return model.ErrPhoneNumberTaken
	}

	return l.db.Create(member).Error
}

// UpdateMember 部分更新会员信息，手机号变更时重新检查唯一性
func (l *MemberLogic) UpdateMember(id int64, update *MemberUpdate) (*model.MemberModel, error) {
	var member model.MemberModel
	if err := l.db.First(&member, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("会员不存在: %w", model.ErrNotFound)
		}
		return nil, err
	}

	if update.PhoneNumber != nil && *update.PhoneNumber != member.PhoneNumber {
		var count int64
		if err := l.db.Model(&model.MemberModel{}).
			Where("phone_number = ? AND id <> ?", *update.PhoneNumber, id).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, model.ErrPhoneNumberTaken
		}
		member.PhoneNumber = *update.PhoneNumber
	}
	if update.FirstName != nil {
		member.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		member.LastName = *update.LastName
	}
	if update.Address != nil {
		member.Address = *update.Address
	}

	if err := l.db.Save(&member).Error; err != nil {
		return nil, err
	}

	return &member, nil
}

// memberViewQuery 会员视图查询，聚合每次现算。
// 最近角色按参与时间倒序取第一条，时间相同时取 id 较大的一条。
const memberViewQuery = `
	SELECT
		m.id,
		m.created_at,
		m.first_name,
		m.last_name,
		m.phone_number,
		m.address,
		COALESCE((SELECT SUM(p.amount)
		 FROM participation p
		 WHERE p.member_id = m.id AND p.role = 'donor'), 0) AS total_donations,
		COALESCE((SELECT SUM(p.amount)
		 FROM participation p
		 WHERE p.member_id = m.id AND p.role = 'beneficiary'), 0) AS total_beneficiaries,
		(SELECT p.role
		 FROM participation p
		 WHERE p.member_id = m.id
		 ORDER BY p.participation_date DESC, p.id DESC
		 LIMIT 1) AS most_recent_role,
		(SELECT COUNT(DISTINCT p.initiative_id)
		 FROM participation p
		 WHERE p.member_id = m.id) AS initiatives_count
	FROM member m`

// GetMembers 获取会员列表（含聚合）
func (l *MemberLogic) GetMembers() ([]model.MemberView, error) {
	var views []model.MemberView
	if err := l.db.Raw(memberViewQuery).Scan(&views).Error; err != nil {
		return nil, fmt.Errorf("获取会员列表失败: %w", err)
	}
	return views, nil
}

// GetMember 获取会员详情（含聚合）
func (l *MemberLogic) GetMember(id int64) (*model.MemberView, error) {
	var views []model.MemberView
	if err := l.db.Raw(memberViewQuery+" WHERE m.id = ?", id).Scan(&views).Error; err != nil {
		return nil, fmt.Errorf("获取会员详情失败: %w", err)
	}
	if len(views) == 0 {
		return nil, fmt.Errorf("会员不存在: %w", model.ErrNotFound)
	}
	return &views[0], nil
}
