package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"furniture_distribution/models"
)

func TestResolveSofa(t *testing.T) {
	node := &models.DistributionNode{
		ID:                "node",
		Name:              "华南分部",
		DiscountPercent:   60,
		CommissionPercent: 40,
	}
	product := &models.Product{
		Name:      "意式极简真皮沙发",
		BasePrice: 29880,
	}

	result := Resolve(node, product)

	// 29880 × 60% = 17928，29880 × 40% = 11952
	assert.Equal(t, 17928.0, result.SettlementPrice)
	assert.Equal(t, 11952.0, result.CommissionAmount)
}

func TestResolveRoundsHalfAwayFromZero(t *testing.T) {
	node := &models.DistributionNode{
		DiscountPercent:   50,
		CommissionPercent: 50,
	}
	// 101 × 50% = 50.5，恰好半数时远离零舍入到51
	product := &models.Product{BasePrice: 101}

	result := Resolve(node, product)
	assert.Equal(t, 51.0, result.SettlementPrice)
	assert.Equal(t, 51.0, result.CommissionAmount)
}

func TestResolveZeroCommission(t *testing.T) {
	// 总部节点：折扣100%，佣金0%
	node := &models.DistributionNode{
		DiscountPercent:   100,
		CommissionPercent: 0,
	}
	product := &models.Product{BasePrice: 29880}

	result := Resolve(node, product)
	assert.Equal(t, 29880.0, result.SettlementPrice)
	assert.Equal(t, 0.0, result.CommissionAmount)
}

func TestResolveDeterministic(t *testing.T) {
	node := &models.DistributionNode{
		DiscountPercent:   65,
		CommissionPercent: 30,
	}
	product := &models.Product{BasePrice: 6980}

	// 纯函数：相同输入恒返回相同结果
	first := Resolve(node, product)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, Resolve(node, product))
	}
}
