package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"furniture_distribution/database"
	"furniture_distribution/models"
	"furniture_distribution/utils"
)

// StaffLogin 后台员工登录
// 验证用户名密码，成功后签发JWT令牌并存储到数据库
// 登录失败次数受限制器约束，连续失败会锁定账号一段时间
func StaffLogin(c *fiber.Ctx) error {
	// 解析请求体
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "参数解析失败: " + err.Error(),
		})
	}

	// 校验必填字段
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "用户名和密码不能为空",
		})
	}

	// 检查账号是否被锁定
	// 防止暴力破解：连续失败达到上限后锁定一段时间
	if locked, remainingMinutes := utils.DefaultLoginLimiter.IsLocked(req.Username); locked {
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"error": "登录失败次数过多，账号已锁定",
			"retry_after_minutes": remainingMinutes,
		})
	}

	// 查询员工信息
	var staff models.Staff
	if err := database.GetDB().Where("username = ? AND status = ?", req.Username, "active").First(&staff).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			// 用户不存在也计入失败次数，避免用户名枚举
			utils.DefaultLoginLimiter.RecordFailedLogin(req.Username)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "用户名或密码错误",
			})
		}
		log.Warnf("查询员工失败: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "登录失败，请稍后重试",
		})
	}

	// 验证密码
	if !staff.CheckPassword(req.Password) {
		isLocked, minutes := utils.DefaultLoginLimiter.RecordFailedLogin(req.Username)
		if isLocked {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "登录失败次数过多，账号已锁定",
				"retry_after_minutes": minutes,
			})
		}
		remaining := utils.DefaultLoginLimiter.GetRemainingAttempts(req.Username)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":              "用户名或密码错误",
			"remaining_attempts": remaining,
		})
	}

	// 登录成功，重置失败计数
	utils.DefaultLoginLimiter.ResetAttempts(req.Username)

	// 生成JWT令牌，设置24小时的有效期
	token, err := utils.GenerateToken(staff.ID, staff.Username, 24*time.Hour)
	if err != nil {
		log.Warnf("生成令牌失败: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "登录失败，请稍后重试",
		})
	}

	expireTime := time.Now().Add(24 * time.Hour)

	// 存储令牌到数据库
	// 记录令牌信息，包括关联的员工、设备信息和过期时间
	staffToken := models.StaffToken{
		StaffID:   staff.ID,
		Token:     token,
		UserAgent: c.Get("User-Agent"),
		IP:        c.IP(),
		ExpiredAt: expireTime,
	}
	if err := database.GetDB().Create(&staffToken).Error; err != nil {
		log.Warnf("存储令牌失败: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "登录失败，请稍后重试",
		})
	}

	// 更新最后登录时间
	now := time.Now()
	if err := database.GetDB().Model(&staff).Update("last_login_at", &now).Error; err != nil {
		log.Warnf("更新最后登录时间失败: %v", err)
		// 不返回错误，继续处理
	}

	return c.JSON(fiber.Map{
		"message":    "登录成功",
		"token":      token,
		"expired_at": expireTime,
		"staff": fiber.Map{
			"id":       staff.ID,
			"username": staff.Username,
			"name":     staff.Name,
		},
	})
}

// StaffLogout 后台员工登出
// 使当前会话的令牌失效
func StaffLogout(c *fiber.Ctx) error {
	// 从请求头获取令牌
	authHeader := c.Get("Authorization")
	if authHeader == "" || len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "未提供有效的认证令牌",
		})
	}

	tokenString := authHeader[7:]

	// 删除数据库中的令牌记录，使其立即失效
	if err := database.GetDB().Where("token = ?", tokenString).Delete(&models.StaffToken{}).Error; err != nil {
		log.Warnf("删除令牌失败: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "登出失败，请稍后重试",
		})
	}

	return c.JSON(fiber.Map{
		"message": "登出成功",
	})
}

// RefreshToken 刷新认证令牌
// 该处理函数用于延长用户会话，通过验证现有令牌并签发新令牌
// 处理流程:
//  1. 从请求头提取当前令牌
//  2. 验证令牌的有效性和存在性
//  3. 检查令牌是否过期
//  4. 验证关联员工的状态
//  5. 生成新令牌并存储到数据库
//  6. 删除旧令牌
func RefreshToken(c *fiber.Ctx) error {
	// 从请求头获取令牌
	// 验证Authorization头是否存在且格式正确（Bearer格式）
	authHeader := c.Get("Authorization")
	if authHeader == "" || len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "未提供有效的认证令牌",
		})
	}

	tokenString := authHeader[7:]

	// 解析令牌
	// 使用JWT工具验证令牌签名并提取声明信息
	claims, err := utils.ParseToken(tokenString)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "无效的认证令牌",
		})
	}

	// 检查令牌是否存在于数据库
	// 确保令牌未被撤销且仍然有效
	var token models.StaffToken
	if err := database.GetDB().Where("token = ?", tokenString).First(&token).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "认证令牌不存在",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "验证认证令牌失败",
		})
	}

	// 检查令牌是否已过期
	// 即使JWT本身未过期，也需检查数据库中的过期时间
	if time.Now().After(token.ExpiredAt) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "认证令牌已过期",
		})
	}

	// 查询员工信息
	// 验证员工是否存在且状态为在职
	var staff models.Staff
	if err := database.GetDB().Where("id = ? AND status = ?", claims.StaffID, "active").First(&staff).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "员工不存在或已被禁用",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "验证员工身份失败",
		})
	}

	// 懒惰删除：清理该员工的过期令牌
	// 提高系统性能并减少数据库中的无效记录
	if err := database.GetDB().Where("staff_id = ? AND expired_at < ?", staff.ID, time.Now()).Delete(&models.StaffToken{}).Error; err != nil {
		log.Warnf("删除过期令牌失败: %v", err)
		// 不返回错误，继续处理
	}

	// 生成新的JWT令牌
	// 设置24小时的有效期
	newToken, err := utils.GenerateToken(staff.ID, staff.Username, 24*time.Hour)
	if err != nil {
		log.Warnf("生成令牌失败: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "刷新令牌失败，请稍后重试",
		})
	}

	// 计算过期时间
	expireTime := time.Now().Add(24 * time.Hour)

	// 删除旧令牌
	// 确保旧令牌不能再被使用，防止令牌重放攻击
	if err := database.GetDB().Delete(&token).Error; err != nil {
		log.Warnf("删除旧令牌失败: %v", err)
		// 不返回错误，继续处理
	}

	// 存储新令牌到数据库
	newStaffToken := models.StaffToken{
		StaffID:   staff.ID,
		Token:     newToken,
		UserAgent: token.UserAgent, // 保持原有的用户代理信息
		IP:        c.IP(),          // 更新IP地址
		ExpiredAt: expireTime,
	}
	if err := database.GetDB().Create(&newStaffToken).Error; err != nil {
		log.Warnf("存储新令牌失败: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "刷新令牌失败，请稍后重试",
		})
	}

	return c.JSON(fiber.Map{
		"message":    "令牌刷新成功",
		"token":      newToken,
		"expired_at": expireTime,
	})
}
