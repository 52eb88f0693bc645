package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"furniture_distribution/models"
	"furniture_distribution/utils"
)

// Manager 多租户分销树管理器
// 按租户ID懒加载NodeStore：首次访问时从持久化协作方恢复快照，
// 不存在时创建只含根节点的新树。每棵树生命周期与服务进程一致
type Manager struct {
	mu      sync.Mutex
	stores  map[string]*NodeStore
	persist Persistence
}

// NewManager 创建分销树管理器
// 参数：
//   - persist: 持久化协作方，可为nil（纯内存模式，测试用）
func NewManager(persist Persistence) *Manager {
	return &Manager{
		stores:  make(map[string]*NodeStore),
		persist: persist,
	}
}

// GetStore 按租户ID获取分销树存储
// 首次访问时从持久化快照恢复；没有快照时创建带默认根节点的新树，
// 根节点代表总部，受保护不可删除
func (m *Manager) GetStore(tenantID string) (*NodeStore, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.stores[tenantID]; ok {
		return s, nil
	}

	root, version, err := m.loadOrCreate(tenantID)
	if err != nil {
		return nil, err
	}

	s := NewNodeStore(tenantID, root, version, m.persist)
	m.stores[tenantID] = s
	return s, nil
}

// loadOrCreate 恢复或初始化租户的分销树
func (m *Manager) loadOrCreate(tenantID string) (*models.DistributionNode, int64, error) {
	if m.persist != nil {
		h, err := m.persist.LoadTree(tenantID)
		if err != nil {
			return nil, 0, fmt.Errorf("加载分销树失败: %w", err)
		}
		if h != nil {
			var root models.DistributionNode
			if err := json.Unmarshal([]byte(h.TreeJSON), &root); err != nil {
				return nil, 0, fmt.Errorf("解析分销树快照失败: %w", err)
			}
			return &root, h.Version, nil
		}
	}

	// 新租户：创建只含根节点的树，根节点代表总部
	root := &models.DistributionNode{
		ID:                 utils.GenerateNodeID(),
		Name:               "总部",
		Role:               "总部",
		DiscountPercent:    100,
		CommissionPercent:  0,
		Status:             models.NodeStatusNormal,
		SelectedProductIDs: []uint{},
		LinkedAccounts:     []models.LinkedAccount{},
		Children:           []*models.DistributionNode{},
		IsExpanded:         true,
	}
	return root, 0, nil
}
