package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Staff 后台员工模型
// 用于存储分销后台操作人员的基本信息和登录账号
type Staff struct {
	ID          uint       `json:"id" gorm:"primaryKey"`                 // 主键ID
	Username    string     `json:"username" gorm:"size:50;uniqueIndex"`  // 用户名，登录用，唯一
	Password    string     `json:"-" gorm:"size:100"`                    // 密码，不返回给前端
	Name        string     `json:"name" gorm:"size:50"`                  // 姓名
	Phone       string     `json:"phone" gorm:"size:20"`                 // 电话
	Status      string     `json:"status" gorm:"size:20;default:active"` // 状态：active在职, inactive离职
	LastLoginAt *time.Time `json:"last_login_at"`                        // 最后登录时间
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`     // 创建时间
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`     // 更新时间
}

// TableName 返回表名
func (Staff) TableName() string {
	return "staffs"
}

// SetPassword 设置加密密码
func (s *Staff) SetPassword(plainPassword string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(plainPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	s.Password = string(hashedPassword)
	return nil
}

// CheckPassword 验证密码
func (s *Staff) CheckPassword(plainPassword string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(s.Password), []byte(plainPassword))
	return err == nil
}

// StaffToken 员工登录令牌模型
// 该模型用于存储员工的JWT认证令牌及相关会话信息
// 支持多设备登录，每个设备会创建独立的令牌记录
type StaffToken struct {
	ID        uint      `json:"id" gorm:"primaryKey"`             // 主键ID
	StaffID   uint      `json:"staff_id" gorm:"index"`            // 关联的员工ID，添加索引以提高查询性能
	Token     string    `json:"token" gorm:"size:500;index"`      // JWT令牌字符串，添加索引以提高查询性能
	UserAgent string    `json:"user_agent" gorm:"size:255"`       // 用户代理信息，用于识别登录设备
	IP        string    `json:"ip" gorm:"size:50"`                // 登录IP地址，用于安全审计
	ExpiredAt time.Time `json:"expired_at" gorm:"index"`          // 令牌过期时间
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"` // 记录创建时间，自动设置
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"` // 记录更新时间，自动更新
}

// TableName 返回表名
func (StaffToken) TableName() string {
	return "staff_tokens"
}

// LoginRequest 登录请求参数
type LoginRequest struct {
	Username string `json:"username" validate:"required"` // 用户名，必填
	Password string `json:"password" validate:"required"` // 密码，必填
}
