// Package store 实现分销层级树的内存存储
// 每个租户一棵分销树，所有变更采用写时复制：变更路径上的节点逐个克隆，
// 未涉及的子树在新旧快照间共享，旧快照对持有者保持有效
package store

import (
	"errors"
)

// 存储层错误定义
// 所有错误均为可恢复错误：操作要么完整成功，要么在触碰任何状态前被拒绝
var (
	// ErrNodeNotFound 分销节点不存在
	ErrNodeNotFound = errors.New("分销节点不存在")

	// ErrRootProtected 根节点受保护，不允许删除
	ErrRootProtected = errors.New("根节点不允许删除")

	// ErrValidation 字段校验失败，比例字段必须在0到100之间
	ErrValidation = errors.New("折扣比例和佣金比例必须在0到100之间")
)
