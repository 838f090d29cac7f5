package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 视图结构，聚合值每次读取时现算，不落库

// MemberView 会员视图，附带参与聚合
type MemberView struct {
	Id          int64     `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	PhoneNumber string    `json:"phone_number"`
	Address     string    `json:"address"`

	TotalDonations     decimal.Decimal `json:"total_donations"`     // 捐赠总额
	TotalBeneficiaries decimal.Decimal `json:"total_beneficiaries"` // 受益总额
	MostRecentRole     string          `json:"most_recent_role"`    // 最近一次参与的角色
	InitiativesCount   int64           `json:"initiatives_count"`   // 参与过的活动数（去重）
}

// InitiativeView 活动视图，附带类别名称和参与聚合
type InitiativeView struct {
	Id            int64            `json:"id"`
	CreatedAt     time.Time        `json:"created_at"`
	Title         string           `json:"title"`
	CategoryId    int64            `json:"category_id"`
	CategoryName  string           `json:"category_name"`
	Description   string           `json:"description"`
	StartingDate  time.Time        `json:"starting_date"`
	EndingDate    time.Time        `json:"ending_date"`
	DonationsGoal decimal.Decimal  `json:"donations_goal"`
	Status        InitiativeStatus `json:"status"`

	TotalDonors              int64           `json:"total_donors"`
	TotalDonations           decimal.Decimal `json:"total_donations"`
	TotalBeneficiaries       int64           `json:"total_beneficiaries"`
	TotalBeneficiariesAmount decimal.Decimal `json:"total_beneficiaries_amount"`
}

// ParticipationView 参与记录视图，附带会员和活动信息
type ParticipationView struct {
	Id                int64           `json:"id"`
	MemberId          int64           `json:"member_id"`
	InitiativeId      int64           `json:"initiative_id"`
	FirstName         string          `json:"first_name"`
	LastName          string          `json:"last_name"`
	PhoneNumber       string          `json:"phone_number"`
	Address           string          `json:"address"`
	Role              ParticipantRole `json:"role"`
	Amount            decimal.Decimal `json:"amount"`
	ParticipationDate time.Time       `json:"participation_date"`
	InitiativeTitle   string          `json:"initiative_title,omitempty"`
	CategoryName      string          `json:"category_name,omitempty"`
}

// DonationReportRow 捐赠报表行
type DonationReportRow struct {
	Id                int64           `json:"donation_id"`
	MemberId          int64           `json:"member_id"`
	FirstName         string          `json:"first_name"`
	LastName          string          `json:"last_name"`
	PhoneNumber       string          `json:"phone_number"`
	InitiativeId      int64           `json:"initiative_id"`
	InitiativeTitle   string          `json:"initiative_title"`
	CategoryName      string          `json:"category_name"`
	Amount            decimal.Decimal `json:"amount"`
	ParticipationDate time.Time       `json:"participation_date"`
}

// BeneficiaryReportRow 受益报表行
type BeneficiaryReportRow struct {
	Id                int64           `json:"beneficiary_record_id"`
	MemberId          int64           `json:"member_id"`
	FirstName         string          `json:"first_name"`
	LastName          string          `json:"last_name"`
	PhoneNumber       string          `json:"phone_number"`
	Address           string          `json:"address"`
	InitiativeId      int64           `json:"initiative_id"`
	InitiativeTitle   string          `json:"initiative_title"`
	CategoryName      string          `json:"category_name"`
	Amount            decimal.Decimal `json:"amount"`
	ParticipationDate time.Time       `json:"participation_date"`
}

// MemberActivityReportRow 会员活动报表行
type MemberActivityReportRow struct {
	Id          int64     `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	PhoneNumber string    `json:"phone_number"`
	Address     string    `json:"address"`

	TotalDonations   decimal.Decimal `json:"total_donations"`
	TotalBenefits    decimal.Decimal `json:"total_benefits"`
	TotalInitiatives int64           `json:"total_initiatives"`
	DonationCount    int64           `json:"donation_count"`
	BenefitCount     int64           `json:"benefit_count"`
}
