package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApprovePendingRecord(t *testing.T) {
	record := &ReconciliationRecord{
		OrderNo: "DD20250815001",
		Status:  ReconciliationStatusPending,
	}

	changed, err := record.Approve()
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, ReconciliationStatusApproved, record.Status)
	require.NotNil(t, record.ApprovedAt)
	assert.WithinDuration(t, time.Now(), *record.ApprovedAt, time.Second)
}

func TestApproveIsIdempotent(t *testing.T) {
	record := &ReconciliationRecord{
		OrderNo: "DD20250815001",
		Status:  ReconciliationStatusPending,
	}

	_, err := record.Approve()
	require.NoError(t, err)
	firstApprovedAt := record.ApprovedAt

	// approved是终态：重复审核不报错，不改变状态和审核时间
	changed, err := record.Approve()
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, ReconciliationStatusApproved, record.Status)
	assert.Same(t, firstApprovedAt, record.ApprovedAt)
}

func TestApproveInvalidStatus(t *testing.T) {
	record := &ReconciliationRecord{
		OrderNo: "DD20250815002",
		Status:  "cancelled",
	}

	changed, err := record.Approve()
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.False(t, changed)
	// 状态保持原样
	assert.Equal(t, "cancelled", record.Status)
	assert.Nil(t, record.ApprovedAt)
}
