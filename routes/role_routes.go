package routes

import (
	"github.com/gofiber/fiber/v2"

	"furniture_distribution/handlers"
	"furniture_distribution/middleware"
)

// RegisterRoleRoutes 设置分销角色相关路由
func RegisterRoleRoutes(api fiber.Router) {
	// 角色目录路由，需要员工身份验证
	roles := api.Group("/roles", middleware.StaffAuthMiddleware())
	roles.Post("/", handlers.CreateRole)                   // 创建角色
	roles.Get("/", handlers.GetAllRoles)                   // 获取所有角色
	roles.Get("/:id", handlers.GetRoleByID)                // 获取单个角色
	roles.Put("/:id", handlers.UpdateRole)                 // 更新角色
	roles.Delete("/:id", handlers.DeleteRole)              // 删除角色
	roles.Post("/:id/activate", handlers.ActivateRole)     // 启用角色
	roles.Post("/:id/deactivate", handlers.DeactivateRole) // 停用角色
}
