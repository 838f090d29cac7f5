package main

import (
	"github.com/ara-kahkejian/DonationTracking/internal/config"
	"github.com/ara-kahkejian/DonationTracking/internal/logger"
	"github.com/ara-kahkejian/DonationTracking/internal/repository"
	"github.com/ara-kahkejian/DonationTracking/internal/router"
	"github.com/ara-kahkejian/DonationTracking/internal/scheduler"
	"github.com/gin-gonic/gin"
)

func main() {
	// 加载配置
	cfg := config.Load()

	// 初始化日志
	level := logger.ParseLogLevel(cfg.Log.Level)
	if cfg.Log.Output == "file" {
		l, err := logger.NewWithFileRotation(level, cfg.Log.File)
		if err != nil {
			logger.Fatal("Failed to initialize file logger: %v", err)
		}
		logger.SetDefaultLogger(l)
	} else {
		logger.SetLevel(level)
	}
	defer logger.Sync()

	// 初始化数据库
	db, err := repository.Init(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to initialize database: %v", err)
	}

	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 初始化路由
	r := router.Setup(db, cfg)

	// 启动定时任务
	manager := scheduler.Start(db, cfg)
	defer manager.Stop()

	// 启动服务器
	logger.Info("Server starting on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("Failed to start server: %v", err)
	}
}
