// Package models 定义了应用程序的数据模型
// 包含所有与数据库表对应的结构体定义和相关方法
package models

import (
	"time"
)

// 分销节点状态常量
const (
	NodeStatusNormal    = "normal"    // 正常
	NodeStatusSuspended = "suspended" // 暂停合作
)

// LinkedAccount 节点绑定账号快照
// 记录绑定到分销节点的员工账号信息，绑定时从组织账号目录复制，
// 之后不与目录保持同步（非实时关联）
type LinkedAccount struct {
	AccountID uint   `json:"account_id"` // 账号ID，对应组织账号目录中的ID
	Name      string `json:"name"`       // 姓名
	Phone     string `json:"phone"`      // 电话
	Role      string `json:"role"`       // 角色名称，仅用于展示
}

// DistributionNode 分销节点模型
// 分销层级树中的一个节点，代表一个分销机构、分部或个人分销员/设计师
// 节点的折扣比例和佣金比例相互独立，也不从上级、下级或角色定义继承
type DistributionNode struct {
	ID                 string              `json:"id"`                                           // 节点ID，UUID，创建后不变
	Name               string              `json:"name"`                                         // 节点名称
	Phone              string              `json:"phone"`                                        // 联系电话
	Role               string              `json:"role"`                                         // 角色名称，仅用于展示，不参与权限控制
	DiscountPercent    float64             `json:"discount_percent" validate:"min=0,max=100"`    // 最低销售折扣比例，0-100
	CommissionPercent  float64             `json:"commission_percent" validate:"min=0,max=100"`  // 佣金比例，0-100，与折扣比例互相独立
	AuthorizedCount    int                 `json:"authorized_count"`                             // 下级授权数量，展示用缓存计数
	ProductCount       int                 `json:"product_count"`                                // 已授权产品数量，展示用缓存计数
	Status             string              `json:"status"`                                       // 状态：normal正常, suspended暂停
	SelectedProductIDs []uint              `json:"selected_product_ids"`                         // 该节点可销售的产品ID集合
	LinkedAccounts     []LinkedAccount     `json:"linked_accounts"`                              // 绑定的员工账号列表，同一账号允许出现在多个节点下
	Children           []*DistributionNode `json:"children"`                                     // 下级节点列表，节点由且仅由一个上级持有
	IsExpanded         bool                `json:"is_expanded"`                                  // 前端展开状态，非业务数据
}

// Clone 浅克隆节点
// 复制节点本身及其切片字段，Children中的指针保持共享
// 写时复制机制依赖该方法：变更路径上的节点逐个克隆，未变更的子树直接复用
func (n *DistributionNode) Clone() *DistributionNode {
	clone := *n

	if n.SelectedProductIDs != nil {
		clone.SelectedProductIDs = make([]uint, len(n.SelectedProductIDs))
		copy(clone.SelectedProductIDs, n.SelectedProductIDs)
	}
	if n.LinkedAccounts != nil {
		clone.LinkedAccounts = make([]LinkedAccount, len(n.LinkedAccounts))
		copy(clone.LinkedAccounts, n.LinkedAccounts)
	}
	if n.Children != nil {
		clone.Children = make([]*DistributionNode, len(n.Children))
		copy(clone.Children, n.Children)
	}

	return &clone
}

// HasLinkedAccount 检查节点是否已绑定指定账号
// 参数：
//   - accountID: 要检查的账号ID
//
// 返回：
//   - bool: true表示该账号已绑定到本节点
func (n *DistributionNode) HasLinkedAccount(accountID uint) bool {
	for _, a := range n.LinkedAccounts {
		if a.AccountID == accountID {
			return true
		}
	}
	return false
}

// Hierarchy 分销层级持久化快照模型
// 每个租户一棵分销树，整棵树序列化为JSON后落库
// 内存中的NodeStore是读写主体，该表仅作为持久化协作方
type Hierarchy struct {
	ID        uint      `json:"id" gorm:"primaryKey"`                        // 主键ID
	TenantID  string    `json:"tenant_id" gorm:"size:64;uniqueIndex"`        // 租户ID，每个租户对应一棵分销树
	RootID    string    `json:"root_id" gorm:"size:64"`                      // 根节点ID，根节点不可删除
	TreeJSON  string    `json:"-" gorm:"column:tree_json;type:longtext"`     // 整棵树的JSON快照
	Version   int64     `json:"version"`                                     // 快照版本号，每次变更递增
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`            // 创建时间
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`            // 更新时间
}

// TableName 返回表名
func (Hierarchy) TableName() string {
	return "hierarchies"
}

// CreateNodeRequest 创建分销节点的请求参数
// 用于接收前端传来的新增下级节点的数据
type CreateNodeRequest struct {
	Name              string  `json:"name" validate:"required"`                    // 节点名称，必填
	Phone             string  `json:"phone"`                                       // 联系电话
	Role              string  `json:"role"`                                        // 角色名称，展示用
	DiscountPercent   float64 `json:"discount_percent" validate:"min=0,max=100"`   // 最低销售折扣比例
	CommissionPercent float64 `json:"commission_percent" validate:"min=0,max=100"` // 佣金比例
}

// UpdateNodeRequest 更新分销节点的请求参数
// 所有字段均为指针，nil表示不修改该字段，实现部分字段更新
type UpdateNodeRequest struct {
	Name               *string  `json:"name"`                 // 节点名称
	Phone              *string  `json:"phone"`                // 联系电话
	Role               *string  `json:"role"`                 // 角色名称
	DiscountPercent    *float64 `json:"discount_percent"`     // 最低销售折扣比例，0-100
	CommissionPercent  *float64 `json:"commission_percent"`   // 佣金比例，0-100
	Status             *string  `json:"status"`               // 状态：normal, suspended
	SelectedProductIDs *[]uint  `json:"selected_product_ids"` // 可销售产品ID集合，整体替换
	IsExpanded         *bool    `json:"is_expanded"`          // 前端展开状态
}
