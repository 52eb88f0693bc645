package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"furniture_distribution/database"
	"furniture_distribution/models"
	"furniture_distribution/store"
)

// GetAllProducts 获取产品目录列表
// 产品目录为只读外部协作方快照，支持按分类、名称、编码筛选
func GetAllProducts(c *fiber.Ctx) error {
	// 解析查询参数
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	name := c.Query("name")
	code := c.Query("code")
	categoryID, _ := strconv.Atoi(c.Query("category_id", "0"))
	status := c.Query("status")

	// 验证分页参数
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	// 构建查询
	query := database.GetDB().Model(&models.Product{})

	// 应用过滤条件
	if name != "" {
		query = query.Where("name LIKE ?", "%"+name+"%")
	}
	if code != "" {
		query = query.Where("code = ?", code)
	}
	if categoryID > 0 {
		query = query.Where("category_id = ?", categoryID)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	// 查询总数
	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Warnf("查询产品总数失败: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "查询产品失败",
		})
	}

	// 分页查询
	var products []models.Product
	if err := query.Offset((page - 1) * limit).Limit(limit).Find(&products).Error; err != nil {
		log.Warnf("查询产品列表失败: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "查询产品失败",
		})
	}

	return c.JSON(fiber.Map{
		"data":  products,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// GetProductByID 根据ID获取产品
func GetProductByID(c *fiber.Ctx) error {
	// 获取路径参数中的ID
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "无效的ID参数",
		})
	}

	// 查询产品
	var product models.Product
	if err := database.GetDB().First(&product, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "产品不存在",
			})
		}
		log.Warnf("查询产品失败: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "查询产品失败",
		})
	}

	return c.JSON(fiber.Map{
		"data": product,
	})
}

// ResolveNodePrice 计算节点对某产品的结算价和佣金预览
// 按节点自身的折扣比例和佣金比例计算，四舍五入到整数元
// 预览值用于配置核对，实际结算由外部结算流程生成对账单
func ResolveNodePrice(c *fiber.Ctx) error {
	// 查找分销节点
	s, err := getStore(c)
	if err != nil {
		return storeError(c, err)
	}

	node, err := s.Get(c.Params("nodeId"))
	if err != nil {
		return storeError(c, err)
	}

	// 查询产品目录
	productID, err := strconv.Atoi(c.Params("productId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "无效的产品ID",
		})
	}

	var product models.Product
	if err := database.GetDB().First(&product, productID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "产品不存在",
			})
		}
		log.Warnf("查询产品失败: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "查询产品失败",
		})
	}

	// 计算结算价和佣金
	result := store.Resolve(node, &product)

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"node_id":            node.ID,
			"product_id":         product.ID,
			"product_name":       product.Name,
			"base_price":         product.BasePrice,
			"discount_percent":   node.DiscountPercent,
			"commission_percent": node.CommissionPercent,
			"settlement_price":   result.SettlementPrice,
			"commission_amount":  result.CommissionAmount,
		},
	})
}
