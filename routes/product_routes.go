package routes

import (
	"github.com/gofiber/fiber/v2"

	"furniture_distribution/handlers"
	"furniture_distribution/middleware"
)

// RegisterProductRoutes 设置产品目录相关路由
// 产品目录为只读外部协作方快照，只提供查询接口
func RegisterProductRoutes(api fiber.Router) {
	products := api.Group("/products", middleware.StaffAuthMiddleware())
	products.Get("/", handlers.GetAllProducts)    // 获取产品列表，支持按分类筛选
	products.Get("/:id", handlers.GetProductByID) // 获取单个产品
}
