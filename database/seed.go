package database

import (
	"time"

	log "github.com/sirupsen/logrus"

	"furniture_distribution/models"
)

// Seed 初始化基础数据
// 各表为空时写入默认数据：后台管理账号、角色目录、产品目录快照、
// 组织账号快照和示例对账单。已有数据时跳过，重复启动安全
func Seed() {
	seedStaff()
	seedRoles()
	seedProducts()
	seedOrgAccounts()
	seedReconciliation()
}

// seedStaff 初始化默认管理账号
func seedStaff() {
	var count int64
	DB.Model(&models.Staff{}).Count(&count)
	if count > 0 {
		return
	}

	admin := models.Staff{
		Username: "admin",
		Name:     "系统管理员",
		Status:   "active",
	}
	if err := admin.SetPassword("admin123"); err != nil {
		log.Warnf("生成默认管理员密码失败: %v", err)
		return
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Warnf("初始化默认管理员失败: %v", err)
		return
	}
	log.Info("已初始化默认管理员账号 admin（请尽快修改密码）")
}

// seedRoles 初始化角色目录
// 建议比例仅供前端展示参考，不会写入分销节点
func seedRoles() {
	var count int64
	DB.Model(&models.RoleDefinition{}).Count(&count)
	if count > 0 {
		return
	}

	roles := []models.RoleDefinition{
		{Name: "省级代理", MinDiscount: 55, CommissionRatio: 45, Status: "active"},
		{Name: "市级代理", MinDiscount: 60, CommissionRatio: 40, Status: "active"},
		{Name: "经销商", MinDiscount: 65, CommissionRatio: 30, Status: "active"},
		{Name: "设计师", MinDiscount: 70, CommissionRatio: 20, Status: "active"},
	}
	if err := DB.Create(&roles).Error; err != nil {
		log.Warnf("初始化角色目录失败: %v", err)
		return
	}
	log.Infof("已初始化角色目录，共%d条", len(roles))
}

// seedProducts 初始化产品目录快照
// 产品目录实际归属于商品中心，这里只保存本服务消费的只读快照
func seedProducts() {
	var count int64
	DB.Model(&models.Product{}).Count(&count)
	if count > 0 {
		return
	}

	products := []models.Product{
		{Name: "意式极简真皮沙发", Code: "SF-29880", BasePrice: 29880, CategoryID: 1, Category: "沙发", Status: "active"},
		{Name: "北欧实木餐桌", Code: "CZ-12600", BasePrice: 12600, CategoryID: 2, Category: "餐桌", Status: "active"},
		{Name: "轻奢岩板茶几", Code: "CJ-6980", BasePrice: 6980, CategoryID: 3, Category: "茶几", Status: "active"},
		{Name: "现代布艺床", Code: "CH-15800", BasePrice: 15800, CategoryID: 4, Category: "床", Status: "active"},
		{Name: "胡桃木电视柜", Code: "DS-8900", BasePrice: 8900, CategoryID: 5, Category: "柜类", Status: "active"},
	}
	if err := DB.Create(&products).Error; err != nil {
		log.Warnf("初始化产品目录失败: %v", err)
		return
	}
	log.Infof("已初始化产品目录，共%d条", len(products))
}

// seedOrgAccounts 初始化组织账号快照
func seedOrgAccounts() {
	var count int64
	DB.Model(&models.OrgAccount{}).Count(&count)
	if count > 0 {
		return
	}

	accounts := []models.OrgAccount{
		{Name: "张伟", Phone: "13800000001", Role: "市级代理", Status: "active"},
		{Name: "李娜", Phone: "13800000002", Role: "经销商", Status: "active"},
		{Name: "王强", Phone: "13800000003", Role: "设计师", Status: "active"},
		{Name: "刘芳", Phone: "13800000004", Role: "设计师", Status: "active"},
	}
	if err := DB.Create(&accounts).Error; err != nil {
		log.Warnf("初始化组织账号失败: %v", err)
		return
	}
	log.Infof("已初始化组织账号，共%d条", len(accounts))
}

// seedReconciliation 初始化示例对账单
// 对账单由外部结算流程生成，这里的示例数据用于联调和演示
// 明细的结算价与佣金在生成时按当时比例算好，之后不再重算
func seedReconciliation() {
	var count int64
	DB.Model(&models.ReconciliationRecord{}).Count(&count)
	if count > 0 {
		return
	}

	records := []models.ReconciliationRecord{
		{
			TenantID:     "default",
			OrderNo:      "DD202608150001",
			OrgName:      "华东分销中心",
			DesignerName: "王强",
			Amount:       11952,
			Status:       models.ReconciliationStatusPending,
			Date:         time.Date(2026, 8, 15, 0, 0, 0, 0, time.Local),
			Items: []models.ReconciliationItem{
				// 29880 × 60% = 17928，29880 × 40% = 11952
				{Name: "意式极简真皮沙发", Price: 29880, Discount: 60, Settlement: 17928, CommissionRate: 40, CommissionAmt: 11952},
			},
		},
		{
			TenantID:     "default",
			OrderNo:      "DD202608150002",
			OrgName:      "华南分销中心",
			DesignerName: "刘芳",
			Amount:       5874,
			Status:       models.ReconciliationStatusPending,
			Date:         time.Date(2026, 8, 18, 0, 0, 0, 0, time.Local),
			Items: []models.ReconciliationItem{
				{Name: "北欧实木餐桌", Price: 12600, Discount: 65, Settlement: 8190, CommissionRate: 30, CommissionAmt: 3780},
				{Name: "轻奢岩板茶几", Price: 6980, Discount: 65, Settlement: 4537, CommissionRate: 30, CommissionAmt: 2094},
			},
		},
	}
	if err := DB.Create(&records).Error; err != nil {
		log.Warnf("初始化示例对账单失败: %v", err)
		return
	}
	log.Infof("已初始化示例对账单，共%d条", len(records))
}
