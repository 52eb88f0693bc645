// Package models 定义了应用程序的数据模型
package models

import (
	"time"
)

// RoleDefinition 分销角色定义模型
// 角色目录是独立于分销树的平铺参考数据，提供建议折扣和建议佣金比例
// 建议值仅在前端作为参考展示，不会写入分销节点字段，节点比例与角色互不同步
type RoleDefinition struct {
	ID              uint      `json:"id" gorm:"primaryKey"`                       // 主键ID
	Name            string    `json:"name" gorm:"size:50;not null"`               // 角色名称，如"省级代理"、"设计师"等
	MinDiscount     float64   `json:"min_discount"`                               // 建议最低折扣比例（0-100），仅供参考
	CommissionRatio float64   `json:"commission_ratio"`                           // 建议佣金比例（0-100），仅供参考
	Status          string    `json:"status" gorm:"size:20;default:active"`       // 状态：active活跃, inactive非活跃
	CreatedAt       time.Time `json:"created_at" gorm:"autoCreateTime"`           // 创建时间
	UpdatedAt       time.Time `json:"updated_at" gorm:"autoUpdateTime"`           // 更新时间
}

// TableName 返回表名
func (RoleDefinition) TableName() string {
	return "role_definitions"
}

// Enable 启用角色
func (r *RoleDefinition) Enable() {
	r.Status = "active"
}

// Disable 停用角色
func (r *RoleDefinition) Disable() {
	r.Status = "inactive"
}

// IsEnabled 检查角色是否启用
// 返回：
//   - bool: true表示角色已启用，false表示角色已停用
func (r *RoleDefinition) IsEnabled() bool {
	return r.Status == "active"
}

// RoleQuery 角色查询参数
// 用于接收前端传来的查询条件，进行角色的筛选查询
type RoleQuery struct {
	Name     string `json:"name" query:"name"`           // 角色名称，用于按名称筛选
	Status   string `json:"status" query:"status"`       // 状态，用于按状态筛选
	Page     int    `json:"page" query:"page"`           // 页码，用于分页查询
	Limit    int    `json:"limit" query:"limit"`         // 每页数量，用于分页查询
}

// CreateRoleRequest 创建角色的请求参数
type CreateRoleRequest struct {
	Name            string  `json:"name" validate:"required"`                   // 角色名称，必填
	MinDiscount     float64 `json:"min_discount" validate:"min=0,max=100"`      // 建议最低折扣比例
	CommissionRatio float64 `json:"commission_ratio" validate:"min=0,max=100"`  // 建议佣金比例
}
