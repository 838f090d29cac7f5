package model

import "errors"

// 业务错误哨兵，logic 层返回，handler 层用 errors.Is 映射为 HTTP 状态码
var (
	ErrNotFound = errors.New("记录不存在")

	ErrInvalidAmount          = errors.New("金额必须大于0")
	ErrInvalidDateRange       = errors.New("结束日期必须晚于开始日期")
	ErrInvalidCategory        = errors.New("类别不存在")
	ErrInvalidRole            = errors.New("无效的参与角色")
	ErrInvalidStatus          = errors.New("无效的活动状态")
	ErrInvalidTransactionType = errors.New("无效的流水类型")

	ErrInsufficientFunds   = errors.New("金库余额不足")
	ErrInitiativeNotActive = errors.New("活动不在进行中")
	ErrInitiativeRequired  = errors.New("捐赠必须指定活动")
	ErrPhoneNumberTaken    = errors.New("该手机号已被注册")
	ErrCategoryNameTaken   = errors.New("该类别名称已存在")
)
