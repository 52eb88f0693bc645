package store

import (
	"encoding/json"
	"sync"

	log "github.com/sirupsen/logrus"

	"furniture_distribution/models"
	"furniture_distribution/utils"
)

// Persistence 分销树持久化协作方接口
// 存储技术由外部决定，内存树是读写主体，落库为写透快照
type Persistence interface {
	// LoadTree 按租户ID加载树快照，不存在时返回(nil, nil)
	LoadTree(tenantID string) (*models.Hierarchy, error)
	// SaveTree 保存树快照
	SaveTree(h *models.Hierarchy) error
}

// NodeStore 单棵分销树的内存存储
// 互斥锁串行化同一棵树上的所有变更，读操作基于请求开始时取得的
// 不可变快照，可与写并发执行
type NodeStore struct {
	mu       sync.Mutex
	tenantID string
	root     *models.DistributionNode
	version  int64
	applied  map[string]string // 幂等键 -> 已创建节点ID，用于客户端重试
	persist  Persistence
}

// NewNodeStore 创建分销树存储
// 参数：
//   - tenantID: 租户ID
//   - root: 根节点，根节点受保护不可删除
//   - version: 初始版本号
//   - persist: 持久化协作方，可为nil（纯内存模式，测试用）
func NewNodeStore(tenantID string, root *models.DistributionNode, version int64, persist Persistence) *NodeStore {
	return &NodeStore{
		tenantID: tenantID,
		root:     root,
		version:  version,
		applied:  make(map[string]string),
		persist:  persist,
	}
}

// TenantID 返回租户ID
func (s *NodeStore) TenantID() string {
	return s.tenantID
}

// Snapshot 返回当前树快照和版本号
// 快照为不可变结构，调用方只读，不得修改其中任何节点
func (s *NodeStore) Snapshot() (*models.DistributionNode, int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.root, s.version
}

// Get 按ID查找节点
// 从根节点开始深度优先搜索
// 返回：
//   - *models.DistributionNode: 命中的节点（只读）
//   - error: 未找到时返回ErrNodeNotFound
func (s *NodeStore) Get(id string) (*models.DistributionNode, error) {
	root, _ := s.Snapshot()
	if node := findNode(root, id); node != nil {
		return node, nil
	}
	return nil, ErrNodeNotFound
}

// Update 部分字段更新节点
// 只替换请求中出现的字段，比例字段越界时整个操作被拒绝，状态不变
// 产品授权集合整体替换并同步刷新展示计数
// 返回：
//   - *models.DistributionNode: 更新后的节点
//   - error: 节点不存在返回ErrNodeNotFound，校验失败返回ErrValidation
func (s *NodeStore) Update(id string, req *models.UpdateNodeRequest) (*models.DistributionNode, error) {
	// 先校验再变更，保证拒绝时状态不被触碰
	if req.DiscountPercent != nil && !percentValid(*req.DiscountPercent) {
		return nil, ErrValidation
	}
	if req.CommissionPercent != nil && !percentValid(*req.CommissionPercent) {
		return nil, ErrValidation
	}
	if req.Status != nil && *req.Status != models.NodeStatusNormal && *req.Status != models.NodeStatusSuspended {
		return nil, ErrValidation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var updated *models.DistributionNode
	newRoot, ok := rewrite(s.root, id, func(old *models.DistributionNode) *models.DistributionNode {
		node := old.Clone()
		if req.Name != nil {
			node.Name = *req.Name
		}
		if req.Phone != nil {
			node.Phone = *req.Phone
		}
		if req.Role != nil {
			node.Role = *req.Role
		}
		if req.DiscountPercent != nil {
			node.DiscountPercent = *req.DiscountPercent
		}
		if req.CommissionPercent != nil {
			node.CommissionPercent = *req.CommissionPercent
		}
		if req.Status != nil {
			node.Status = *req.Status
		}
		if req.SelectedProductIDs != nil {
			node.SelectedProductIDs = append([]uint(nil), (*req.SelectedProductIDs)...)
			node.ProductCount = len(node.SelectedProductIDs)
		}
		if req.IsExpanded != nil {
			node.IsExpanded = *req.IsExpanded
		}
		updated = node
		return node
	})
	if !ok {
		return nil, ErrNodeNotFound
	}

	s.commit(newRoot)
	return updated, nil
}

// AddChild 在指定节点下新增下级节点
// 新节点始终作为叶子追加到父节点的children末尾，ID自动生成
// 作为副作用将父节点置为展开状态，保证新节点在前端可见
// 幂等键非空且已处理过时，直接返回当时创建的节点，不重复插入
// 返回：
//   - *models.DistributionNode: 新建的节点
//   - error: 父节点不存在返回ErrNodeNotFound，校验失败返回ErrValidation
func (s *NodeStore) AddChild(parentID string, req *models.CreateNodeRequest, idemKey string) (*models.DistributionNode, error) {
	if !percentValid(req.DiscountPercent) || !percentValid(req.CommissionPercent) {
		return nil, ErrValidation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// 幂等重放：返回原来创建的节点
	if idemKey != "" {
		if nodeID, ok := s.applied[idemKey]; ok {
			if node := findNode(s.root, nodeID); node != nil {
				return node, nil
			}
		}
	}

	child := &models.DistributionNode{
		ID:                 utils.GenerateNodeID(),
		Name:               req.Name,
		Phone:              req.Phone,
		Role:               req.Role,
		DiscountPercent:    req.DiscountPercent,
		CommissionPercent:  req.CommissionPercent,
		Status:             models.NodeStatusNormal,
		SelectedProductIDs: []uint{},
		LinkedAccounts:     []models.LinkedAccount{},
		Children:           []*models.DistributionNode{},
	}

	newRoot, ok := rewrite(s.root, parentID, func(old *models.DistributionNode) *models.DistributionNode {
		parent := old.Clone()
		parent.Children = append(parent.Children, child)
		parent.AuthorizedCount = len(parent.Children)
		parent.IsExpanded = true
		return parent
	})
	if !ok {
		return nil, ErrNodeNotFound
	}

	if idemKey != "" {
		s.applied[idemKey] = child.ID
	}

	s.commit(newRoot)
	return child, nil
}

// Remove 删除节点及其整个子树
// 根节点受保护，删除根节点返回ErrRootProtected且树保持原样
// 其余节点上绑定的账号不做跨节点清理，同一账号在其他节点下的
// 绑定关系保持不变
// 返回：
//   - error: 目标为根节点返回ErrRootProtected，不存在返回ErrNodeNotFound
func (s *NodeStore) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == s.root.ID {
		return ErrRootProtected
	}

	newRoot, ok := rewrite(s.root, id, func(old *models.DistributionNode) *models.DistributionNode {
		// 返回nil表示从父节点children中摘除整个子树
		return nil
	})
	if !ok {
		return ErrNodeNotFound
	}

	s.commit(newRoot)
	return nil
}

// commit 提交新的树快照并写透持久化
// 调用方必须已持有s.mu
// 持久化失败只记录告警：内存状态已是新版本，外部重试由协作方负责
func (s *NodeStore) commit(newRoot *models.DistributionNode) {
	s.root = newRoot
	s.version++

	if s.persist == nil {
		return
	}

	treeJSON, err := json.Marshal(newRoot)
	if err != nil {
		log.Warnf("序列化分销树失败: tenant=%s, err=%v", s.tenantID, err)
		return
	}
	h := &models.Hierarchy{
		TenantID: s.tenantID,
		RootID:   newRoot.ID,
		TreeJSON: string(treeJSON),
		Version:  s.version,
	}
	if err := s.persist.SaveTree(h); err != nil {
		log.Warnf("保存分销树快照失败: tenant=%s, version=%d, err=%v", s.tenantID, s.version, err)
		// 不返回错误，继续处理
	}
}

// findNode 深度优先搜索节点
func findNode(n *models.DistributionNode, id string) *models.DistributionNode {
	if n == nil {
		return nil
	}
	if n.ID == id {
		return n
	}
	for _, child := range n.Children {
		if found := findNode(child, id); found != nil {
			return found
		}
	}
	return nil
}

// rewrite 写时复制地重写目标节点
// 自根向下查找id，命中后用fn生成替换节点（返回nil表示删除该子树），
// 命中路径上的祖先逐个克隆重建children，未涉及的子树原样共享
// 返回：
//   - *models.DistributionNode: 新的根节点（未命中时为原根节点）
//   - bool: 是否命中目标节点
func rewrite(n *models.DistributionNode, id string, fn func(*models.DistributionNode) *models.DistributionNode) (*models.DistributionNode, bool) {
	if n.ID == id {
		return fn(n), true
	}
	for i, child := range n.Children {
		newChild, ok := rewrite(child, id, fn)
		if !ok {
			continue
		}
		clone := n.Clone()
		if newChild == nil {
			// 摘除子树并同步刷新父节点的授权计数
			clone.Children = append(clone.Children[:i], clone.Children[i+1:]...)
			clone.AuthorizedCount = len(clone.Children)
		} else {
			clone.Children[i] = newChild
		}
		return clone, true
	}
	return n, false
}

// percentValid 检查比例字段是否在允许区间内
func percentValid(v float64) bool {
	return v >= 0 && v <= 100
}
