package models

import (
	"errors"
	"time"
)

// 对账单状态常量
const (
	ReconciliationStatusPending  = "pending"  // 待审核
	ReconciliationStatusApproved = "approved" // 已审核，终态
)

// ErrInvalidTransition 对账单状态流转非法
// 对账单只允许pending到approved的单向流转，approved为终态
var ErrInvalidTransition = errors.New("对账单状态不允许该流转")

// ReconciliationRecord 对账单模型
// 订单结算时由外部结算流程生成的佣金拆分快照，按订单汇总
// 除状态流转外创建后不可修改，节点比例后续变化不影响已生成的对账单
type ReconciliationRecord struct {
	ID           uint                 `json:"id" gorm:"primaryKey"`                       // 主键ID
	TenantID     string               `json:"tenant_id" gorm:"size:64;index"`             // 租户ID，对应所属分销树
	OrderNo      string               `json:"order_no" gorm:"size:64;uniqueIndex"`        // 订单号
	NodeID       string               `json:"node_id" gorm:"size:64;index"`               // 结算节点ID
	OrgName      string               `json:"org_name" gorm:"size:100"`                   // 分销机构名称
	DesignerName string               `json:"designer_name" gorm:"size:50"`               // 设计师姓名
	Amount       float64              `json:"amount"`                                     // 订单佣金总额
	Status       string               `json:"status" gorm:"size:20;default:pending"`      // 状态：pending待审核, approved已审核
	Date         time.Time            `json:"date"`                                       // 结算日期
	Items        []ReconciliationItem `json:"items" gorm:"foreignKey:RecordID"`           // 按产品明细拆分
	ApprovedAt   *time.Time           `json:"approved_at"`                                // 审核通过时间
	CreatedAt    time.Time            `json:"created_at" gorm:"autoCreateTime"`           // 创建时间
	UpdatedAt    time.Time            `json:"updated_at" gorm:"autoUpdateTime"`           // 更新时间
}

// TableName 返回表名
func (ReconciliationRecord) TableName() string {
	return "reconciliation_records"
}

// ReconciliationItem 对账单产品明细
// 记录单个产品的结算价和佣金计算过程，生成时根据当时的节点比例预先算好
// 是时间点快照，后续不会根据节点当前比例重算
type ReconciliationItem struct {
	ID             uint    `json:"id" gorm:"primaryKey"`          // 主键ID
	RecordID       uint    `json:"record_id" gorm:"index"`        // 所属对账单ID
	Name           string  `json:"name" gorm:"size:100"`          // 产品名称
	Price          float64 `json:"price"`                         // 目录价
	Discount       float64 `json:"discount"`                      // 实际适用折扣比例（0-100）
	Settlement     float64 `json:"settlement"`                    // 结算价 = 目录价 × 折扣比例
	CommissionRate float64 `json:"commission_rate"`               // 佣金比例（0-100）
	CommissionAmt  float64 `json:"commission_amt"`                // 佣金金额 = 结算价对应的佣金拆分
}

// TableName 返回表名
func (ReconciliationItem) TableName() string {
	return "reconciliation_items"
}

// Approve 审核通过对账单
// pending到approved的单向流转，approved为终态
// 对已审核的对账单重复审核是幂等操作，不报错也不改变状态
// 返回：
//   - bool: true表示本次调用发生了状态变化
//   - error: 状态非法时返回ErrInvalidTransition
func (r *ReconciliationRecord) Approve() (bool, error) {
	switch r.Status {
	case ReconciliationStatusApproved:
		// 幂等：已审核的重复审核不视为错误
		return false, nil
	case ReconciliationStatusPending:
		now := time.Now()
		r.Status = ReconciliationStatusApproved
		r.ApprovedAt = &now
		return true, nil
	default:
		return false, ErrInvalidTransition
	}
}

// ReconciliationQuery 对账单查询参数
type ReconciliationQuery struct {
	OrderNo string `json:"order_no" query:"order_no"` // 订单号，用于按订单号筛选
	Status  string `json:"status" query:"status"`     // 状态，用于按状态筛选
	Page    int    `json:"page" query:"page"`         // 页码，用于分页查询
	Limit   int    `json:"limit" query:"limit"`       // 每页数量，用于分页查询
}
