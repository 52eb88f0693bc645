package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"furniture_distribution/database"
	"furniture_distribution/models"
)

// CreateRole 创建分销角色
// 接收角色的基本信息，创建新的角色定义并保存到数据库
// 建议折扣和建议佣金仅作为前端参考值，不会写入任何分销节点
func CreateRole(c *fiber.Ctx) error {
	// 解析请求体中的角色数据
	var req models.CreateRoleRequest
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

	// 验证角色名称是否已存在
	var existingRole models.RoleDefinition
	result := database.GetDB().Where("name = ?", req.Name).First(&existingRole)
	if result.Error == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "角色名称已存在",
		})
	} else if result.Error != gorm.ErrRecordNotFound {
		// 如果发生其他错误，返回服务器错误
		log.Warnf("查询角色失败: %v", result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "查询角色失败",
		})
	}

	role := models.RoleDefinition{
		Name:            req.Name,
		MinDiscount:     req.MinDiscount,
		CommissionRatio: req.CommissionRatio,
		Status:          "active",
	}

	// 保存角色到数据库
	if err := database.GetDB().Create(&role).Error; err != nil {
		log.Warnf("创建角色失败: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "创建角色失败: " + err.Error(),
		})
	}

	// 返回成功响应和创建的角色数据
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "角色创建成功",
		"data":    role,
	})
}

// GetRoleByID 根据ID获取角色
// 返回指定ID的角色详细信息
func GetRoleByID(c *fiber.Ctx) error {
	// 获取路径参数中的ID
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "无效的ID参数",
		})
	}

	// 查询角色
	var role models.RoleDefinition
	if err := database.GetDB().First(&role, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "角色不存在",
			})
		}
		log.Warnf("查询角色失败: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "查询角色失败",
		})
	}

	// 返回角色数据
	return c.JSON(fiber.Map{
		"data": role,
	})
}

// GetAllRoles 获取所有角色
// 支持分页和筛选，返回角色列表
func GetAllRoles(c *fiber.Ctx) error {
	// 解析查询参数
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	name := c.Query("name")
	status := c.Query("status")

	// 验证分页参数
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	// 构建查询
	query := database.GetDB().Model(&models.RoleDefinition{})

	// 应用过滤条件
	if name != "" {
		query = query.Where("name LIKE ?", "%"+name+"%")
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	// 查询总数
	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Warnf("查询角色总数失败: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "查询角色失败",
		})
	}

	// 分页查询
	var roles []models.RoleDefinition
	if err := query.Offset((page - 1) * limit).Limit(limit).Find(&roles).Error; err != nil {
		log.Warnf("查询角色列表失败: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "查询角色失败",
		})
	}

	return c.JSON(fiber.Map{
		"data":  roles,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// UpdateRole 更新角色
// 更新角色的名称和建议比例，建议值只影响前端展示
func UpdateRole(c *fiber.Ctx) error {
	// 获取路径参数中的ID
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "无效的ID参数",
		})
	}

	// 查询角色
	var role models.RoleDefinition
	if err := database.GetDB().First(&role, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "角色不存在",
			})
		}
		log.Warnf("查询角色失败: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "查询角色失败",
		})
	}

	// 解析请求体
	var req models.CreateRoleRequest
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

	// 更新字段
	role.Name = req.Name
	role.MinDiscount = req.MinDiscount
	role.CommissionRatio = req.CommissionRatio

	if err := database.GetDB().Save(&role).Error; err != nil {
		log.Warnf("更新角色失败: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "更新角色失败: " + err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "角色更新成功",
		"data":    role,
	})
}

// DeleteRole 删除角色
// 角色目录与分销树相互独立，删除角色不影响任何节点的比例
func DeleteRole(c *fiber.Ctx) error {
	// 获取路径参数中的ID
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "无效的ID参数",
		})
	}

	// 查询角色
	var role models.RoleDefinition
	if err := database.GetDB().First(&role, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "角色不存在",
			})
		}
		log.Warnf("查询角色失败: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "查询角色失败",
		})
	}

	if err := database.GetDB().Delete(&role).Error; err != nil {
		log.Warnf("删除角色失败: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "删除角色失败: " + err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "角色删除成功",
	})
}

// ActivateRole 启用角色
func ActivateRole(c *fiber.Ctx) error {
	return setRoleStatus(c, true)
}

// DeactivateRole 停用角色
func DeactivateRole(c *fiber.Ctx) error {
	return setRoleStatus(c, false)
}

// setRoleStatus 设置角色启用状态
func setRoleStatus(c *fiber.Ctx, enable bool) error {
	// 获取路径参数中的ID
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "无效的ID参数",
		})
	}

	// 查询角色
	var role models.RoleDefinition
	if err := database.GetDB().First(&role, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "角色不存在",
			})
		}
		log.Warnf("查询角色失败: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "查询角色失败",
		})
	}

	if enable {
		role.Enable()
	} else {
		role.Disable()
	}

	if err := database.GetDB().Save(&role).Error; err != nil {
		log.Warnf("更新角色状态失败: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "更新角色状态失败: " + err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "角色状态更新成功",
		"data":    role,
	})
}
