package routes

import (
	"github.com/gofiber/fiber/v2"

	"furniture_distribution/handlers"
	"furniture_distribution/middleware"
)

// SetupReconciliationRoutes 设置对账单相关的路由
// 对账单按租户隔离，挂在分销层级路由组下
func SetupReconciliationRoutes(app *fiber.App) {
	// 对账单路由组，需要员工身份验证
	reconciliation := app.Group("/api/hierarchy/:tenant/reconciliation", middleware.StaffAuthMiddleware())

	// 导出路由必须放在:id路由前面，避免被参数路由拦截
	reconciliation.Get("/export", handlers.ExportReconciliations) // 导出对账单

	reconciliation.Get("/", handlers.GetAllReconciliations)          // 获取对账单列表
	reconciliation.Get("/:id/items", handlers.GetReconciliationItems) // 获取对账单明细
	reconciliation.Post("/:id/approve", handlers.ApproveReconciliation) // 审核对账单
}
