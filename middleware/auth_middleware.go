package middleware

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"furniture_distribution/database"
	"furniture_distribution/models"
	"furniture_distribution/utils"
)

// StaffAuthMiddleware 验证后台员工身份的中间件
// 该中间件负责处理所有需要员工身份验证的路由请求
// 通过Authorization头的Bearer令牌进行JWT认证
//
// 认证成功后，会将员工信息存储在请求上下文中，供后续处理函数使用
// 认证失败则会返回相应的错误信息和状态码
func StaffAuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 从请求头获取Authorization
		// 检查是否提供了Bearer令牌
		authHeader := c.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "未提供有效的认证令牌",
			})
		}

		// 从Authorization头中提取令牌
		// 去掉"Bearer "前缀，获取实际的JWT令牌字符串
		tokenString := authHeader[7:]

		// 解析令牌
		// 验证JWT令牌的签名并提取声明信息
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
			log.Warnf("验证认证令牌失败: %v", err)
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
			log.Warnf("验证员工身份失败: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "验证员工身份失败",
			})
		}

		// 将员工信息存储在上下文中，供后续处理函数使用
		// 这些信息可以通过c.Locals()在后续处理函数中获取
		c.Locals("staff_id", staff.ID)
		c.Locals("staff_name", staff.Name)

		// 继续处理请求
		// 认证成功，允许请求继续传递到下一个处理函数
		return c.Next()
	}
}
