package database

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"furniture_distribution/models"
)

// HierarchyStore 分销树快照的GORM持久化实现
// 实现store.Persistence接口，按租户ID读写hierarchies表
type HierarchyStore struct {
	db *gorm.DB
}

// NewHierarchyStore 创建分销树快照存储
// 参数:
//   - db: 数据库连接，nil时使用全局连接
func NewHierarchyStore(db *gorm.DB) *HierarchyStore {
	if db == nil {
		db = GetDB()
	}
	return &HierarchyStore{db: db}
}

// LoadTree 按租户ID加载树快照
// 返回：
//   - *models.Hierarchy: 快照记录，租户不存在时为nil
//   - error: 查询失败时返回错误
func (s *HierarchyStore) LoadTree(tenantID string) (*models.Hierarchy, error) {
	var h models.Hierarchy
	if err := s.db.Where("tenant_id = ?", tenantID).First(&h).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &h, nil
}

// SaveTree 保存树快照
// 按租户ID做upsert：不存在则插入，存在则覆盖快照和版本号
func (s *HierarchyStore) SaveTree(h *models.Hierarchy) error {
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "tenant_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"root_id", "tree_json", "version", "updated_at"}),
	}).Create(h).Error
}
