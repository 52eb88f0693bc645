package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"furniture_distribution/database"
	"furniture_distribution/models"
)

// GetOrgAccounts 获取可供绑定的组织账号列表
// 组织账号目录为只读外部协作方，这里只做筛选查询
func GetOrgAccounts(c *fiber.Ctx) error {
	// 解析查询参数
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	name := c.Query("name")
	role := c.Query("role")
	status := c.Query("status")

	// 验证分页参数
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	// 构建查询
	query := database.GetDB().Model(&models.OrgAccount{})

	// 应用过滤条件
	if name != "" {
		query = query.Where("name LIKE ?", "%"+name+"%")
	}
	if role != "" {
		query = query.Where("role = ?", role)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	// 查询总数
	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Warnf("查询组织账号总数失败: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "查询组织账号失败",
		})
	}

	// 分页查询
	var accounts []models.OrgAccount
	if err := query.Offset((page - 1) * limit).Limit(limit).Find(&accounts).Error; err != nil {
		log.Warnf("查询组织账号失败: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "查询组织账号失败",
		})
	}

	return c.JSON(fiber.Map{
		"data":  accounts,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// BindAccount 将组织账号绑定到分销节点
// 绑定时从组织账号目录复制快照存入节点，同一节点内按账号ID幂等
// 同一账号允许绑定到多个节点，不做跨节点去重
func BindAccount(c *fiber.Ctx) error {
	// 解析请求体
	var req models.BindAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "参数解析失败: " + err.Error(),
		})
	}

	// 校验必填字段
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "参数校验失败: " + err.Error(),
		})
	}

	// 查询组织账号目录
	var account models.OrgAccount
	if err := database.GetDB().First(&account, req.AccountID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "组织账号不存在",
			})
		}
		log.Warnf("查询组织账号失败: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "查询组织账号失败",
		})
	}

	s, err := getStore(c)
	if err != nil {
		return storeError(c, err)
	}

	node, err := s.Bind(c.Params("nodeId"), account.Snapshot())
	if err != nil {
		return storeError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "账号绑定成功",
		"data":    node,
	})
}

// UnbindAccount 解除分销节点与账号的绑定
// 只影响指定节点，该账号在其他节点下的绑定关系保持不变
func UnbindAccount(c *fiber.Ctx) error {
	accountID, err := strconv.Atoi(c.Params("accountId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "无效的账号ID",
		})
	}

	s, err := getStore(c)
	if err != nil {
		return storeError(c, err)
	}

	node, err := s.Unbind(c.Params("nodeId"), uint(accountID))
	if err != nil {
		return storeError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "账号解绑成功",
		"data":    node,
	})
}
