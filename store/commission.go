package store

import (
	"math"

	"furniture_distribution/models"
)

// CommissionResult 佣金计算结果
// 节点对某产品的预览结算价与佣金，单位为元
type CommissionResult struct {
	SettlementPrice  float64 `json:"settlement_price"`  // 结算价 = 目录价 × 折扣比例
	CommissionAmount float64 `json:"commission_amount"` // 佣金金额 = 目录价 × 佣金比例
}

// Resolve 计算节点对某产品的结算价和佣金
// 结算价和佣金均基于产品目录价与节点自身的比例计算，节点比例
// 与上级、下级、角色定义互不相关
// 舍入规则：四舍五入到整数元，恰好半数时远离零舍入（math.Round）
// 对账单合计依赖该舍入口径，调整前需评估历史数据
// 该函数纯函数无副作用，相同输入恒返回相同结果
func Resolve(node *models.DistributionNode, product *models.Product) CommissionResult {
	return CommissionResult{
		SettlementPrice:  math.Round(product.BasePrice * node.DiscountPercent / 100),
		CommissionAmount: math.Round(product.BasePrice * node.CommissionPercent / 100),
	}
}
