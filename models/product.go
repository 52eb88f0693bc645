package models

import (
	"time"
)

// Package models 定义了应用程序的数据模型

// Product 家具产品目录模型
// 产品目录是本服务的外部协作方，这里只保存定价和分类等只读快照
// 节点授权和佣金计算只消费该表，不会写入
type Product struct {
	ID         uint      `json:"id" gorm:"primaryKey"`                 // 主键ID
	Name       string    `json:"name" gorm:"size:100;not null"`        // 产品名称，如"意式极简真皮沙发"
	Code       string    `json:"code" gorm:"size:50;uniqueIndex"`      // 产品编码
	BasePrice  float64   `json:"base_price"`                           // 目录基准价，单位为元
	CategoryID uint      `json:"category_id" gorm:"index"`             // 分类ID
	Category   string    `json:"category" gorm:"size:50"`              // 分类名称，如"沙发"、"餐桌"
	Status     string    `json:"status" gorm:"size:20;default:active"` // 状态：active在售, inactive下架
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`     // 创建时间
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`     // 更新时间
}

// TableName 返回表名
func (Product) TableName() string {
	return "products"
}

// ProductQuery 产品查询参数
// 用于接收前端传来的查询条件，进行产品的筛选查询
type ProductQuery struct {
	Name       string `json:"name" query:"name"`               // 产品名称，用于按名称筛选
	Code       string `json:"code" query:"code"`               // 产品编码，用于按编码筛选
	CategoryID uint   `json:"category_id" query:"category_id"` // 分类ID，用于按分类筛选
	Status     string `json:"status" query:"status"`           // 状态，用于按状态筛选
	Page       int    `json:"page" query:"page"`               // 页码，用于分页查询
	Limit      int    `json:"limit" query:"limit"`             // 每页数量，用于分页查询
}
