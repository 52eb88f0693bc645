package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"furniture_distribution/models"
)

// newTestStore 构造测试用分销树：
//
//	总部(root)
//	├── 华东分部(branch) —— 55/45
//	│   └── 设计师小王(leaf) —— 70/20
//	└── 华南分部(branch2) —— 60/40
//
// 纯内存模式，不挂持久化协作方
func newTestStore() *NodeStore {
	leaf := &models.DistributionNode{
		ID:                "leaf",
		Name:              "设计师小王",
		Role:              "设计师",
		DiscountPercent:   70,
		CommissionPercent: 20,
		Status:            models.NodeStatusNormal,
	}
	branch := &models.DistributionNode{
		ID:                "branch",
		Name:              "华东分部",
		Role:              "省级代理",
		DiscountPercent:   55,
		CommissionPercent: 45,
		AuthorizedCount:   1,
		Status:            models.NodeStatusNormal,
		Children:          []*models.DistributionNode{leaf},
	}
	branch2 := &models.DistributionNode{
		ID:                "branch2",
		Name:              "华南分部",
		Role:              "市级代理",
		DiscountPercent:   60,
		CommissionPercent: 40,
		Status:            models.NodeStatusNormal,
	}
	root := &models.DistributionNode{
		ID:                "root",
		Name:              "总部",
		Role:              "总部",
		DiscountPercent:   100,
		CommissionPercent: 0,
		AuthorizedCount:   2,
		Status:            models.NodeStatusNormal,
		Children:          []*models.DistributionNode{branch, branch2},
	}
	return NewNodeStore("default", root, 1, nil)
}

func TestGetNode(t *testing.T) {
	s := newTestStore()

	node, err := s.Get("leaf")
	require.NoError(t, err)
	assert.Equal(t, "设计师小王", node.Name)

	// 未知ID返回ErrNodeNotFound
	_, err = s.Get("no-such-node")
	assert.ErrorIs(t, err, ErrNodeNotFound)
}

func TestUpdatePartialFields(t *testing.T) {
	s := newTestStore()

	name := "华东总代"
	discount := 58.0
	node, err := s.Update("branch", &models.UpdateNodeRequest{
		Name:            &name,
		DiscountPercent: &discount,
	})
	require.NoError(t, err)

	// 请求中出现的字段被替换
	assert.Equal(t, "华东总代", node.Name)
	assert.Equal(t, 58.0, node.DiscountPercent)
	// 未出现的字段保持原值
	assert.Equal(t, 45.0, node.CommissionPercent)
	assert.Equal(t, "省级代理", node.Role)
	// 子树不受影响
	assert.Len(t, node.Children, 1)
	assert.Equal(t, "leaf", node.Children[0].ID)
}

func TestUpdateProductSelectionRefreshesCount(t *testing.T) {
	s := newTestStore()

	ids := []uint{3, 7, 11}
	node, err := s.Update("branch2", &models.UpdateNodeRequest{
		SelectedProductIDs: &ids,
	})
	require.NoError(t, err)

	// 产品集合整体替换并同步刷新展示计数
	assert.Equal(t, []uint{3, 7, 11}, node.SelectedProductIDs)
	assert.Equal(t, 3, node.ProductCount)
}

func TestUpdateMissingNode(t *testing.T) {
	s := newTestStore()

	name := "不存在"
	_, err := s.Update("no-such-node", &models.UpdateNodeRequest{Name: &name})
	assert.ErrorIs(t, err, ErrNodeNotFound)
}

func TestUpdateInvalidPercentLeavesTreeUnchanged(t *testing.T) {
	s := newTestStore()
	rootBefore, versionBefore := s.Snapshot()

	bad := 150.0
	_, err := s.Update("branch", &models.UpdateNodeRequest{DiscountPercent: &bad})
	assert.ErrorIs(t, err, ErrValidation)

	negative := -1.0
	_, err = s.Update("branch", &models.UpdateNodeRequest{CommissionPercent: &negative})
	assert.ErrorIs(t, err, ErrValidation)

	status := "deleted"
	_, err = s.Update("branch", &models.UpdateNodeRequest{Status: &status})
	assert.ErrorIs(t, err, ErrValidation)

	// 拒绝的操作不触碰树：根节点指针与版本号均未变化
	rootAfter, versionAfter := s.Snapshot()
	assert.Same(t, rootBefore, rootAfter)
	assert.Equal(t, versionBefore, versionAfter)
}

func TestAddChild(t *testing.T) {
	s := newTestStore()

	child, err := s.AddChild("branch2", &models.CreateNodeRequest{
		Name:              "佛山经销商",
		Role:              "经销商",
		DiscountPercent:   65,
		CommissionPercent: 30,
	}, "")
	require.NoError(t, err)

	// 新节点ID自动生成且初始为叶子
	assert.NotEmpty(t, child.ID)
	assert.Equal(t, models.NodeStatusNormal, child.Status)
	assert.Empty(t, child.Children)

	// 新节点可以按ID查回
	got, err := s.Get(child.ID)
	require.NoError(t, err)
	assert.Equal(t, "佛山经销商", got.Name)

	// 父节点被置为展开状态并刷新授权计数
	parent, err := s.Get("branch2")
	require.NoError(t, err)
	assert.True(t, parent.IsExpanded)
	assert.Equal(t, 1, parent.AuthorizedCount)
	require.Len(t, parent.Children, 1)
	assert.Equal(t, child.ID, parent.Children[0].ID)
}

func TestAddChildGeneratesUniqueIDs(t *testing.T) {
	s := newTestStore()

	a, err := s.AddChild("root", &models.CreateNodeRequest{Name: "分部甲"}, "")
	require.NoError(t, err)
	b, err := s.AddChild("root", &models.CreateNodeRequest{Name: "分部乙"}, "")
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestAddChildMissingParent(t *testing.T) {
	s := newTestStore()

	_, err := s.AddChild("no-such-node", &models.CreateNodeRequest{Name: "孤儿节点"}, "")
	assert.ErrorIs(t, err, ErrNodeNotFound)
}

func TestAddChildIdempotencyReplay(t *testing.T) {
	s := newTestStore()

	req := &models.CreateNodeRequest{
		Name:              "东莞经销商",
		Role:              "经销商",
		DiscountPercent:   65,
		CommissionPercent: 30,
	}

	first, err := s.AddChild("branch2", req, "retry-key-1")
	require.NoError(t, err)

	// 同一幂等键重放返回当时创建的节点，不重复插入
	second, err := s.AddChild("branch2", req, "retry-key-1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	parent, err := s.Get("branch2")
	require.NoError(t, err)
	assert.Len(t, parent.Children, 1)

	// 不同幂等键是新的创建
	third, err := s.AddChild("branch2", req, "retry-key-2")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, third.ID)
}

func TestRemoveRootProtected(t *testing.T) {
	s := newTestStore()
	rootBefore, versionBefore := s.Snapshot()

	err := s.Remove("root")
	assert.ErrorIs(t, err, ErrRootProtected)

	// 树保持原样
	rootAfter, versionAfter := s.Snapshot()
	assert.Same(t, rootBefore, rootAfter)
	assert.Equal(t, versionBefore, versionAfter)
}

func TestRemovePurgesSubtree(t *testing.T) {
	s := newTestStore()

	// 删除branch连带删除其下的leaf
	require.NoError(t, s.Remove("branch"))

	_, err := s.Get("branch")
	assert.ErrorIs(t, err, ErrNodeNotFound)
	_, err = s.Get("leaf")
	assert.ErrorIs(t, err, ErrNodeNotFound)

	// 父节点的授权计数同步刷新，兄弟节点不受影响
	root, _ := s.Snapshot()
	assert.Equal(t, 1, root.AuthorizedCount)
	require.Len(t, root.Children, 1)
	assert.Equal(t, "branch2", root.Children[0].ID)
}

func TestRemoveLeaf(t *testing.T) {
	s := newTestStore()

	require.NoError(t, s.Remove("leaf"))

	branch, err := s.Get("branch")
	require.NoError(t, err)
	assert.Empty(t, branch.Children)
	assert.Equal(t, 0, branch.AuthorizedCount)
}

func TestRemoveMissingNode(t *testing.T) {
	s := newTestStore()

	err := s.Remove("no-such-node")
	assert.ErrorIs(t, err, ErrNodeNotFound)
}

func TestSnapshotUnaffectedByLaterWrites(t *testing.T) {
	s := newTestStore()

	oldRoot, oldVersion := s.Snapshot()
	oldBranch := findNode(oldRoot, "branch")
	require.NotNil(t, oldBranch)

	name := "改名后的分部"
	_, err := s.Update("branch", &models.UpdateNodeRequest{Name: &name})
	require.NoError(t, err)
	require.NoError(t, s.Remove("branch2"))

	// 写时复制：旧快照完整保留变更前的结构和字段
	assert.Equal(t, "华东分部", oldBranch.Name)
	assert.Len(t, oldRoot.Children, 2)

	// 新快照反映全部变更，版本号单调递增
	newRoot, newVersion := s.Snapshot()
	assert.Greater(t, newVersion, oldVersion)
	assert.Equal(t, "改名后的分部", findNode(newRoot, "branch").Name)
	assert.Nil(t, findNode(newRoot, "branch2"))

	// 未变更的子树在新旧快照间直接共享
	assert.Same(t, findNode(oldRoot, "leaf"), findNode(newRoot, "leaf"))
}

func TestManagerCreatesDefaultTree(t *testing.T) {
	m := NewManager(nil)

	s, err := m.GetStore("tenant-a")
	require.NoError(t, err)

	// 新租户得到只含根节点的树，根节点代表总部
	root, version := s.Snapshot()
	assert.Equal(t, "总部", root.Name)
	assert.Equal(t, 100.0, root.DiscountPercent)
	assert.Equal(t, 0.0, root.CommissionPercent)
	assert.Empty(t, root.Children)
	assert.Equal(t, int64(0), version)

	// 同一租户重复获取返回同一实例
	again, err := m.GetStore("tenant-a")
	require.NoError(t, err)
	assert.Same(t, s, again)

	// 不同租户互不干扰
	other, err := m.GetStore("tenant-b")
	require.NoError(t, err)
	assert.NotSame(t, s, other)
}
