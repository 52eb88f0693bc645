package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"furniture_distribution/models"
)

func testAccount() models.LinkedAccount {
	return models.LinkedAccount{
		AccountID: 42,
		Name:      "李晓",
		Phone:     "13800001234",
		Role:      "设计师",
	}
}

func TestBindAccount(t *testing.T) {
	s := newTestStore()

	node, err := s.Bind("branch", testAccount())
	require.NoError(t, err)

	require.Len(t, node.LinkedAccounts, 1)
	assert.Equal(t, uint(42), node.LinkedAccounts[0].AccountID)
	assert.Equal(t, "李晓", node.LinkedAccounts[0].Name)

	// 树快照同步更新
	got, err := s.Get("branch")
	require.NoError(t, err)
	assert.True(t, got.HasLinkedAccount(42))
}

func TestBindIdempotentPerNode(t *testing.T) {
	s := newTestStore()

	_, err := s.Bind("branch", testAccount())
	require.NoError(t, err)
	_, versionAfterFirst := s.Snapshot()

	// 同一节点重复绑定同一账号：不报错，不产生重复记录，不产生新版本
	node, err := s.Bind("branch", testAccount())
	require.NoError(t, err)
	assert.Len(t, node.LinkedAccounts, 1)

	_, versionAfterSecond := s.Snapshot()
	assert.Equal(t, versionAfterFirst, versionAfterSecond)
}

func TestBindSameAccountToMultipleNodes(t *testing.T) {
	s := newTestStore()

	// 不做跨节点去重：同一账号允许绑定到多个节点
	_, err := s.Bind("branch", testAccount())
	require.NoError(t, err)
	_, err = s.Bind("branch2", testAccount())
	require.NoError(t, err)

	a, err := s.Get("branch")
	require.NoError(t, err)
	b, err := s.Get("branch2")
	require.NoError(t, err)
	assert.True(t, a.HasLinkedAccount(42))
	assert.True(t, b.HasLinkedAccount(42))
}

func TestBindMissingNode(t *testing.T) {
	s := newTestStore()

	_, err := s.Bind("no-such-node", testAccount())
	assert.ErrorIs(t, err, ErrNodeNotFound)
}

func TestUnbindOnlyAffectsTargetNode(t *testing.T) {
	s := newTestStore()

	_, err := s.Bind("branch", testAccount())
	require.NoError(t, err)
	_, err = s.Bind("branch2", testAccount())
	require.NoError(t, err)

	node, err := s.Unbind("branch", 42)
	require.NoError(t, err)
	assert.False(t, node.HasLinkedAccount(42))

	// 该账号在其他节点下的绑定关系不受影响
	other, err := s.Get("branch2")
	require.NoError(t, err)
	assert.True(t, other.HasLinkedAccount(42))
}

func TestUnbindNotBoundAccount(t *testing.T) {
	s := newTestStore()
	_, versionBefore := s.Snapshot()

	// 解绑未绑定的账号：不报错，不产生新版本
	node, err := s.Unbind("branch", 999)
	require.NoError(t, err)
	assert.Empty(t, node.LinkedAccounts)

	_, versionAfter := s.Snapshot()
	assert.Equal(t, versionBefore, versionAfter)
}

func TestUnbindMissingNode(t *testing.T) {
	s := newTestStore()

	_, err := s.Unbind("no-such-node", 42)
	assert.ErrorIs(t, err, ErrNodeNotFound)
}
