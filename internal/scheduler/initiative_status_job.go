package scheduler

import (
	"time"

	"github.com/ara-kahkejian/DonationTracking/internal/config"
	"github.com/ara-kahkejian/DonationTracking/internal/logger"
	"github.com/ara-kahkejian/DonationTracking/internal/logic"
	"github.com/ara-kahkejian/DonationTracking/internal/model"
	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm"
)

// InitiativeStatusJob 活动状态更新任务。
// 状态由起止日期推导，时间推移会使库里的状态过期，定期用同一推导规则刷新。
type InitiativeStatusJob struct {
	db     *gorm.DB
	config *config.Config
}

// NewInitiativeStatusJob 创建活动状态更新任务
func NewInitiativeStatusJob(db *gorm.DB, cfg *config.Config) *InitiativeStatusJob {
	return &InitiativeStatusJob{
		db:     db,
		config: cfg,
	}
}

// GetName 获取任务名称
func (j *InitiativeStatusJob) GetName() string {
	return "initiative_status_updater"
}

// GetSchedule 获取调度配置
func (j *InitiativeStatusJob) GetSchedule() gocron.JobDefinition {
	return gocron.DurationJob(time.Duration(j.config.Task.Interval) * time.Second)
}

// Execute 执行任务
func (j *InitiativeStatusJob) Execute() {
	now := time.Now()

	var initiatives []model.InitiativeModel
	if err := j.db.Find(&initiatives).Error; err != nil {
		logger.Error("Failed to fetch initiatives: %v", err)
		return
	}

	updatedCount := 0

	for _, initiative := range initiatives {
		expected := logic.ComputeStatus(initiative.StartingDate, initiative.EndingDate, now)
		if initiative.Status == expected {
			continue
		}

		if err := j.db.Model(&initiative).Update("status", expected).Error; err != nil {
			logger.Error("Failed to update initiative %d status: %v", initiative.Id, err)
			continue
		}

		logger.Info("Updated initiative %d status from %s to %s",
			initiative.Id, initiative.Status, expected)
		updatedCount++
	}

	if updatedCount > 0 {
		logger.Info("Initiative status update completed. Updated %d initiatives", updatedCount)
	}
}
