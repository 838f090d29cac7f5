package router

import (
	"github.com/ara-kahkejian/DonationTracking/internal/config"
	"github.com/ara-kahkejian/DonationTracking/internal/handler"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	// 中间件
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "donation-tracking",
		})
	})

	// API版本组
	v1 := r.Group("/api/v1")
	{
		// 会员相关路由
		memberHandler := handler.NewMemberHandler(db)
		members := v1.Group("/members")
		{
			members.POST("", memberHandler.CreateMember)
			members.GET("", memberHandler.GetMembers)
			members.GET("/:id", memberHandler.GetMember)
			members.PUT("/:id", memberHandler.UpdateMember)
			members.GET("/:id/participations", memberHandler.GetMemberParticipations)
		}

		// 类别相关路由
		categoryHandler := handler.NewCategoryHandler(db)
		categories := v1.Group("/categories")
		{
			categories.POST("", categoryHandler.CreateCategory)
			categories.GET("", categoryHandler.GetCategories)
		}

		// 活动相关路由
		initiativeHandler := handler.NewInitiativeHandler(db)
		initiatives := v1.Group("/initiatives")
		{
			initiatives.POST("", initiativeHandler.CreateInitiative)
			initiatives.GET("", initiativeHandler.GetInitiatives)
			initiatives.GET("/:id", initiativeHandler.GetInitiative)
			initiatives.PUT("/:id", initiativeHandler.UpdateInitiative)
			initiatives.PUT("/:id/status", initiativeHandler.UpdateInitiativeStatus)
			initiatives.GET("/:id/members", initiativeHandler.GetInitiativeMembers)
			initiatives.POST("/:id/members", initiativeHandler.ConnectMember)
		}

		// 参与记录相关路由
		participationHandler := handler.NewParticipationHandler(db)
		participations := v1.Group("/participations")
		{
			participations.PUT("/:id", participationHandler.UpdateParticipation)
			participations.DELETE("/:id", participationHandler.DeleteParticipation)
		}

		// 金库相关路由
		vaultHandler := handler.NewVaultHandler(db)
		vault := v1.Group("/vault")
		{
			vault.GET("/balance", vaultHandler.GetBalance)
			vault.GET("/transactions", vaultHandler.GetTransactions)
			vault.POST("/transactions", vaultHandler.CreateTransaction)
		}

		// 报表相关路由
		reportHandler := handler.NewReportHandler(db)
		reports := v1.Group("/reports")
		{
			reports.POST("/donations", reportHandler.DonationsReport)
			reports.POST("/beneficiaries", reportHandler.BeneficiariesReport)
			reports.POST("/initiatives", reportHandler.InitiativesReport)
			reports.POST("/members", reportHandler.MembersActivityReport)
		}
	}

	return r
}

// CORS中间件
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
