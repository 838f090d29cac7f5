package logic

import (
	"fmt"
	"time"

	"github.com/ara-kahkejian/DonationTracking/internal/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ReportFilters 报表过滤条件，nil 字段不参与过滤，给定的条件之间为与关系
type ReportFilters struct {
	StartDate    *time.Time       `json:"start_date"`
	EndDate      *time.Time       `json:"end_date"`
	InitiativeId *int64           `json:"initiative_id"`
	CategoryId   *int64           `json:"category_id"`
	MemberId     *int64           `json:"member_id"`
	MinAmount    *decimal.Decimal `json:"min_amount"`
	MaxAmount    *decimal.Decimal `json:"max_amount"`
	Role         *string          `json:"role"`
	Status       *string          `json:"status"`
}

// ReportLogic 报表业务逻辑，纯读取，不做分页
type ReportLogic struct {
	db *gorm.DB
}

// NewReportLogic 创建报表业务逻辑
func NewReportLogic(db *gorm.DB) *ReportLogic {
	return &ReportLogic{db: db}
}

// DonationsReport 捐赠报表：捐赠参与记录连会员/活动/类别，按参与时间倒序
func (r *ReportLogic) DonationsReport(filters *ReportFilters) ([]model.DonationReportRow, error) {
	q := r.participationQuery(model.RoleDonor, filters).
		Select(`p.id, p.member_id, m.first_name, m.last_name, m.phone_number,
			p.initiative_id, i.title AS initiative_title, c.name AS category_name,
			p.amount, p.participation_date`)

	var rows []model.DonationReportRow
	if err := q.Order("p.participation_date DESC").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("获取捐赠报表失败: %w", err)
	}
	return rows, nil
}

// BeneficiariesReport 受益报表：与捐赠报表同形，角色为受益人
func (r *ReportLogic) BeneficiariesReport(filters *ReportFilters) ([]model.BeneficiaryReportRow, error) {
	q := r.participationQuery(model.RoleBeneficiary, filters).
		Select(`p.id, p.member_id, m.first_name, m.last_name, m.phone_number, m.address,
			p.initiative_id, i.title AS initiative_title, c.name AS category_name,
			p.amount, p.participation_date`)

	var rows []model.BeneficiaryReportRow
	if err := q.Order("p.participation_date DESC").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("获取受益报表失败: %w", err)
	}
	return rows, nil
}

// participationQuery 参与记录报表的公共查询，逐个叠加给定的过滤条件
func (r *ReportLogic) participationQuery(role model.ParticipantRole, filters *ReportFilters) *gorm.DB {
	q := r.db.Table("participation p").
		Joins("JOIN member m ON p.member_id = m.id").
		Joins("JOIN initiative i ON p.initiative_id = i.id").
		Joins("JOIN category c ON i.category_id = c.id").
		Where("p.role = ?", role)

	if filters.StartDate != nil {
		q = q.Where("p.participation_date >= ?", *filters.StartDate)
	}
	if filters.EndDate != nil {
		q = q.Where("p.participation_date <= ?", *filters.EndDate)
	}
	if filters.InitiativeId != nil {
		q = q.Where("p.initiative_id = ?", *filters.InitiativeId)
	}
	if filters.CategoryId != nil {
		q = q.Where("i.category_id = ?", *filters.CategoryId)
	}
	if filters.MemberId != nil {
		q = q.Where("p.member_id = ?", *filters.MemberId)
	}
	if filters.MinAmount != nil {
		q = q.Where("p.amount >= ?", *filters.MinAmount)
	}
	if filters.MaxAmount != nil {
		q = q.Where("p.amount <= ?", *filters.MaxAmount)
	}

	return q
}

// InitiativesReport 活动报表：活动连类别并附聚合，日期过滤为起止日期包含于给定区间
func (r *ReportLogic) InitiativesReport(filters *ReportFilters) ([]model.InitiativeView, error) {
	q := r.db.Table("initiative i").
		Joins("JOIN category c ON i.category_id = c.id").
		Select(`i.id, i.created_at, i.title, i.category_id, c.name AS category_name,
			i.description, i.starting_date, i.ending_date, i.donations_goal, i.status,
			(SELECT COUNT(*) FROM participation p
			 WHERE p.initiative_id = i.id AND p.role = 'donor') AS total_donors,
			COALESCE((SELECT SUM(p.amount) FROM participation p
			 WHERE p.initiative_id = i.id AND p.role = 'donor'), 0) AS total_donations,
			(SELECT COUNT(*) FROM participation p
			 WHERE p.initiative_id = i.id AND p.role = 'beneficiary') AS total_beneficiaries,
			COALESCE((SELECT SUM(p.amount) FROM participation p
			 WHERE p.initiative_id = i.id AND p.role = 'beneficiary'), 0) AS total_beneficiaries_amount`)

	if filters.StartDate != nil {
		q = q.Where("i.starting_date >= ?", *filters.StartDate)
	}
	if filters.EndDate != nil {
		q = q.Where("i.ending_date <= ?", *filters.EndDate)
	}
	if filters.InitiativeId != nil {
		q = q.Where("i.id = ?", *filters.InitiativeId)
	}
	if filters.CategoryId != nil {
		q = q.Where("i.category_id = ?", *filters.CategoryId)
	}
	if filters.Status != nil {
		q = q.Where("i.status = ?", *filters.Status)
	}

	var rows []model.InitiativeView
	if err := q.Order("i.created_at DESC").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("获取活动报表失败: %w", err)
	}
	return rows, nil
}

// MembersActivityReport 会员活动报表：会员附参与聚合，角色过滤为存在该角色的参与
func (r *ReportLogic) MembersActivityReport(filters *ReportFilters) ([]model.MemberActivityReportRow, error) {
	q := r.db.Table("member m").
		Select(`m.id, m.created_at, m.first_name, m.last_name, m.phone_number, m.address,
			COALESCE((SELECT SUM(p.amount) FROM participation p
			 WHERE p.member_id = m.id AND p.role = 'donor'), 0) AS total_donations,
			COALESCE((SELECT SUM(p.amount) FROM participation p
			 WHERE p.member_id = m.id AND p.role = 'beneficiary'), 0) AS total_benefits,
			(SELECT COUNT(DISTINCT p.initiative_id) FROM participation p
			 WHERE p.member_id = m.id) AS total_initiatives,
			(SELECT COUNT(*) FROM participation p
			 WHERE p.member_id = m.id AND p.role = 'donor') AS donation_count,
			(SELECT COUNT(*) FROM participation p
			 WHERE p.member_id = m.id AND p.role = 'beneficiary') AS benefit_count`)

	if filters.MemberId != nil {
		q = q.Where("m.id = ?", *filters.MemberId)
	}
	if filters.Role != nil {
		q = q.Where("EXISTS (SELECT 1 FROM participation p WHERE p.member_id = m.id AND p.role = ?)",
			*filters.Role)
	}
	if filters.StartDate != nil {
		q = q.Where("m.created_at >= ?", *filters.StartDate)
	}
	if filters.EndDate != nil {
		q = q.Where("m.created_at <= ?", *filters.EndDate)
	}

	var rows []model.MemberActivityReportRow
	if err := q.Order("m.created_at DESC").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("获取会员活动报表失败: %w", err)
	}
	return rows, nil
}
