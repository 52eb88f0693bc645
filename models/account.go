package models

import (
	"time"
)

// OrgAccount 组织员工账号模型
// 组织账号目录是本服务的外部协作方，这里只保存只读快照
// 绑定节点时从该目录复制账号信息生成LinkedAccount快照
type OrgAccount struct {
	ID        uint      `json:"id" gorm:"primaryKey"`                 // 主键ID
	Name      string    `json:"name" gorm:"size:50;not null"`         // 姓名
	Phone     string    `json:"phone" gorm:"size:20"`                 // 电话
	Role      string    `json:"role" gorm:"size:50"`                  // 角色名称，仅用于展示
	Status    string    `json:"status" gorm:"size:20;default:active"` // 状态：active在职, inactive离职
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`     // 创建时间
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`     // 更新时间
}

// TableName 返回表名
func (OrgAccount) TableName() string {
	return "org_accounts"
}

// Snapshot 生成绑定快照
// 绑定到节点时复制目录中的账号信息，之后不与目录同步
// 返回：
//   - LinkedAccount: 账号快照
func (a *OrgAccount) Snapshot() LinkedAccount {
	return LinkedAccount{
		AccountID: a.ID,
		Name:      a.Name,
		Phone:     a.Phone,
		Role:      a.Role,
	}
}

// OrgAccountQuery 组织账号查询参数
type OrgAccountQuery struct {
	Name   string `json:"name" query:"name"`     // 姓名，用于按姓名筛选
	Role   string `json:"role" query:"role"`     // 角色，用于按角色筛选
	Status string `json:"status" query:"status"` // 状态，用于按状态筛选
	Page   int    `json:"page" query:"page"`     // 页码，用于分页查询
	Limit  int    `json:"limit" query:"limit"`   // 每页数量，用于分页查询
}

// BindAccountRequest 绑定账号的请求参数
type BindAccountRequest struct {
	AccountID uint `json:"account_id" validate:"required"` // 要绑定的组织账号ID，必填
}
