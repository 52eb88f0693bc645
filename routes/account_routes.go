package routes

import (
	"github.com/gofiber/fiber/v2"

	"furniture_distribution/handlers"
	"furniture_distribution/middleware"
)

// RegisterAccountRoutes 设置组织账号相关路由
// 组织账号目录为只读外部协作方，这里只提供供绑定选择的查询接口
func RegisterAccountRoutes(api fiber.Router) {
	accounts := api.Group("/accounts", middleware.StaffAuthMiddleware())
	accounts.Get("/", handlers.GetOrgAccounts) // 获取可供绑定的组织账号列表
}
