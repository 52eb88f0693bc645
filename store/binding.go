package store

import (
	"furniture_distribution/models"
)

// Bind 将账号快照绑定到指定节点
// 同一节点内按账号ID幂等：重复绑定不会产生重复记录，也不报错
// 不做跨节点去重，同一账号允许绑定到多个节点（产品规则）
// 返回：
//   - *models.DistributionNode: 绑定后的节点
//   - error: 节点不存在返回ErrNodeNotFound
func (s *NodeStore) Bind(nodeID string, account models.LinkedAccount) (*models.DistributionNode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var bound *models.DistributionNode
	changed := false
	newRoot, ok := rewrite(s.root, nodeID, func(old *models.DistributionNode) *models.DistributionNode {
		if old.HasLinkedAccount(account.AccountID) {
			// 幂等：已绑定的账号直接返回原节点
			bound = old
			return old
		}
		node := old.Clone()
		node.LinkedAccounts = append(node.LinkedAccounts, account)
		bound = node
		changed = true
		return node
	})
	if !ok {
		return nil, ErrNodeNotFound
	}

	if changed {
		s.commit(newRoot)
	}
	return bound, nil
}

// Unbind 解除节点与账号的绑定
// 只影响指定节点，该账号在其他节点下的绑定关系不受影响
// 返回：
//   - *models.DistributionNode: 解绑后的节点
//   - error: 节点不存在返回ErrNodeNotFound
func (s *NodeStore) Unbind(nodeID string, accountID uint) (*models.DistributionNode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var unbound *models.DistributionNode
	changed := false
	newRoot, ok := rewrite(s.root, nodeID, func(old *models.DistributionNode) *models.DistributionNode {
		if !old.HasLinkedAccount(accountID) {
			unbound = old
			return old
		}
		node := old.Clone()
		accounts := node.LinkedAccounts[:0:0]
		for _, a := range node.LinkedAccounts {
			if a.AccountID != accountID {
				accounts = append(accounts, a)
			}
		}
		node.LinkedAccounts = accounts
		unbound = node
		changed = true
		return node
	})
	if !ok {
		return nil, ErrNodeNotFound
	}

	if changed {
		s.commit(newRoot)
	}
	return unbound, nil
}
