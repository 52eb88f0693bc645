package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"furniture_distribution/models"
	"furniture_distribution/store"
)

// treeManager 分销树管理器
// 每个租户一棵树，通过InitHierarchy在应用启动时注入
var treeManager *store.Manager

// validate 请求参数校验器
var validate = validator.New()

// InitHierarchy 注入分销树管理器
// 在应用初始化阶段调用一次
func InitHierarchy(m *store.Manager) {
	treeManager = m
}

// getStore 按租户ID获取分销树存储
func getStore(c *fiber.Ctx) (*store.NodeStore, error) {
	tenantID := c.Params("tenant")
	if tenantID == "" {
		tenantID = "default"
	}
	return treeManager.GetStore(tenantID)
}

// storeError 将存储层错误映射为HTTP响应
// 节点不存在404，根节点保护409，字段校验400，其余500
func storeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, store.ErrNodeNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "分销节点不存在",
		})
	case errors.Is(err, store.ErrRootProtected):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "根节点不允许删除",
		})
	case errors.Is(err, store.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "折扣比例和佣金比例必须在0到100之间",
		})
	default:
		log.Errorf("分销树操作失败: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "操作失败: " + err.Error(),
		})
	}
}

// GetHierarchy 获取整棵分销树
// 返回当前快照和版本号，供前端组织架构图渲染
func GetHierarchy(c *fiber.Ctx) error {
	s, err := getStore(c)
	if err != nil {
		return storeError(c, err)
	}

	root, version := s.Snapshot()
	return c.JSON(fiber.Map{
		"data":    root,
		"version": version,
	})
}

// GetNode 获取单个分销节点
// 从根节点开始深度优先查找
func GetNode(c *fiber.Ctx) error {
	s, err := getStore(c)
	if err != nil {
		return storeError(c, err)
	}

	node, err := s.Get(c.Params("nodeId"))
	if err != nil {
		return storeError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": node,
	})
}

// UpdateNode 部分字段更新分销节点
// 只更新请求体中出现的字段，比例字段越界时拒绝且状态不变
func UpdateNode(c *fiber.Ctx) error {
	// 解析请求体
	var req models.UpdateNodeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "参数解析失败: " + err.Error(),
		})
	}

	s, err := getStore(c)
	if err != nil {
		return storeError(c, err)
	}

	node, err := s.Update(c.Params("nodeId"), &req)
	if err != nil {
		return storeError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "节点更新成功",
		"data":    node,
	})
}

// AddChildNode 在指定节点下新增下级节点
// 新节点ID自动生成，作为叶子追加到父节点末尾，父节点自动展开
// 支持Idempotency-Key请求头：客户端重试时返回首次创建的节点
func AddChildNode(c *fiber.Ctx) error {
	// 解析请求体
	var req models.CreateNodeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "参数解析失败: " + err.Error(),
		})
	}

	// 校验必填字段和比例区间
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "参数校验失败: " + err.Error(),
		})
	}

	s, err := getStore(c)
	if err != nil {
		return storeError(c, err)
	}

	idemKey := c.Get("Idempotency-Key")
	node, err := s.AddChild(c.Params("parentId"), &req, idemKey)
	if err != nil {
		return storeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "节点创建成功",
		"data":    node,
	})
}

// RemoveNode 删除分销节点及其整个子树
// 删除不可恢复，要求调用方显式传confirm=true确认
// 根节点受保护，删除根节点返回409
func RemoveNode(c *fiber.Ctx) error {
	// 删除为不可撤销操作，必须显式确认
	if c.Query("confirm") != "true" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "删除节点将同时删除其所有下级，请携带confirm=true确认",
		})
	}

	s, err := getStore(c)
	if err != nil {
		return storeError(c, err)
	}

	if err := s.Remove(c.Params("nodeId")); err != nil {
		return storeError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "节点删除成功",
	})
}
