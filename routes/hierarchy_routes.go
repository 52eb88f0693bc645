package routes

import (
	"github.com/gofiber/fiber/v2"

	"furniture_distribution/handlers"
	"furniture_distribution/middleware"
)

// SetupHierarchyRoutes 设置分销层级相关的路由
// 每个租户一棵分销树，所有节点操作都在租户范围内
func SetupHierarchyRoutes(app *fiber.App) {
	// 分销层级路由组，需要员工身份验证
	hierarchy := app.Group("/api/hierarchy/:tenant", middleware.StaffAuthMiddleware())

	// 分销树读取
	hierarchy.Get("/", handlers.GetHierarchy)            // 获取整棵分销树
	hierarchy.Get("/nodes/:nodeId", handlers.GetNode)    // 获取单个节点

	// 分销树变更
	hierarchy.Patch("/nodes/:nodeId", handlers.UpdateNode)              // 部分字段更新节点
	hierarchy.Post("/nodes/:parentId/children", handlers.AddChildNode)  // 新增下级节点
	hierarchy.Delete("/nodes/:nodeId", handlers.RemoveNode)             // 删除节点及其子树

	// 账号绑定
	hierarchy.Post("/nodes/:nodeId/accounts", handlers.BindAccount)                 // 绑定账号
	hierarchy.Delete("/nodes/:nodeId/accounts/:accountId", handlers.UnbindAccount)  // 解绑账号

	// 佣金预览
	hierarchy.Get("/nodes/:nodeId/products/:productId/price", handlers.ResolveNodePrice) // 结算价与佣金预览
}
