package routes

import (
	"github.com/gofiber/fiber/v2"

	"furniture_distribution/handlers"
	"furniture_distribution/middleware"
)

// SetupAuthRoutes 设置认证相关路由
// 该函数负责注册所有与认证相关的API路由，包括登录、登出、刷新令牌等功能
// 认证系统采用JWT（JSON Web Token）机制，支持多设备登录和会话管理
func SetupAuthRoutes(app *fiber.App) {
	// 创建认证相关的路由组，所有认证相关的路由都将以/api/auth为前缀
	auth := app.Group("/api/auth")

	// 登录路由 - 处理员工的登录请求
	// POST /api/auth/login
	// 请求体需包含用户名和密码，成功返回JWT令牌和过期时间
	// 不需要认证中间件，因为用户尚未登录
	auth.Post("/login", handlers.StaffLogin)

	// 登出路由 - 处理员工的登出请求
	// POST /api/auth/logout
	// 使当前会话的令牌失效
	// 需要认证中间件确保用户已登录
	auth.Post("/logout", middleware.StaffAuthMiddleware(), handlers.StaffLogout)

	// 刷新令牌路由 - 用于刷新JWT令牌，延长登录有效期
	// POST /api/auth/refresh
	// 使用当前令牌获取新令牌，避免用户频繁登录
	// 不需要认证中间件，因为令牌可能已过期，但仍可用于刷新
	auth.Post("/refresh", handlers.RefreshToken)
}
