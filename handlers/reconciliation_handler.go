package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"furniture_distribution/database"
	"furniture_distribution/models"
)

// tenantParam 从路径参数获取租户ID
func tenantParam(c *fiber.Ctx) string {
	tenantID := c.Params("tenant")
	if tenantID == "" {
		tenantID = "default"
	}
	return tenantID
}

// GetAllReconciliations 获取对账单列表
// 支持按状态、订单号筛选和分页，明细默认不展开
func GetAllReconciliations(c *fiber.Ctx) error {
	// 解析查询参数
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	status := c.Query("status")
	orderNo := c.Query("order_no")

	// 验证分页参数
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	// 状态筛选值校验
	if status != "" && status != models.ReconciliationStatusPending && status != models.ReconciliationStatusApproved {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "无效的状态筛选值",
		})
	}

	// 构建查询
	query := database.GetDB().Model(&models.ReconciliationRecord{}).Where("tenant_id = ?", tenantParam(c))

	// 应用过滤条件
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if orderNo != "" {
		query = query.Where("order_no LIKE ?", "%"+orderNo+"%")
	}

	// 查询总数
	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Warnf("查询对账单总数失败: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "查询对账单失败",
		})
	}

	// 分页查询，按结算日期倒序
	var records []models.ReconciliationRecord
	if err := query.Order("date DESC").Offset((page - 1) * limit).Limit(limit).Find(&records).Error; err != nil {
		log.Warnf("查询对账单列表失败: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "查询对账单失败",
		})
	}

	return c.JSON(fiber.Map{
		"data":  records,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// GetReconciliationItems 获取对账单的产品明细
// 明细在对账单生成时按当时的节点比例预先算好，是时间点快照，
// 这里只返回存储值，不会按节点当前比例重算
func GetReconciliationItems(c *fiber.Ctx) error {
	// 获取路径参数中的ID
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "无效的ID参数",
		})
	}

	// 查询对账单归属
	var record models.ReconciliationRecord
	if err := database.GetDB().Where("id = ? AND tenant_id = ?", id, tenantParam(c)).First(&record).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "对账单不存在",
			})
		}
		log.Warnf("查询对账单失败: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "查询对账单失败",
		})
	}

	// 查询明细
	var items []models.ReconciliationItem
	if err := database.GetDB().Where("record_id = ?", record.ID).Find(&items).Error; err != nil {
		log.Warnf("查询对账单明细失败: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "查询对账单明细失败",
		})
	}

	return c.JSON(fiber.Map{
		"data": items,
	})
}

// ApproveReconciliation 审核通过对账单
// pending到approved的单向流转，approved为终态，没有回退路径
// 对已审核的对账单重复审核是幂等操作，返回成功且状态不变
func ApproveReconciliation(c *fiber.Ctx) error {
	// 获取路径参数中的ID
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "无效的ID参数",
		})
	}

	// 查询对账单
	var record models.ReconciliationRecord
	if err := database.GetDB().Where("id = ? AND tenant_id = ?", id, tenantParam(c)).First(&record).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "对账单不存在",
			})
		}
		log.Warnf("查询对账单失败: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "查询对账单失败",
		})
	}

	// 执行状态流转
	changed, err := record.Approve()
	if err != nil {
		if errors.Is(err, models.ErrInvalidTransition) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "对账单状态不允许审核",
			})
		}
		log.Warnf("审核对账单失败: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "审核对账单失败",
		})
	}

	// 幂等：已审核的重复审核直接返回成功，不写库
	if changed {
		if err := database.GetDB().Model(&record).Updates(map[string]interface{}{
			"status":      record.Status,
			"approved_at": record.ApprovedAt,
		}).Error; err != nil {
			log.Warnf("保存对账单状态失败: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "保存对账单状态失败",
			})
		}
	}

	return c.JSON(fiber.Map{
		"message": "对账单审核成功",
		"data":    record,
	})
}

// ExportReconciliations 导出对账单
// 将对账单及产品明细平铺为表格导出，支持csv、xlsx和json格式
// 默认为csv，筛选条件与列表接口一致
func ExportReconciliations(c *fiber.Ctx) error {
	// 获取导出格式
	format := c.Query("format", "csv")
	status := c.Query("status")

	// 构建查询，预加载明细
	query := database.GetDB().Where("tenant_id = ?", tenantParam(c)).Preload("Items")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	// 执行查询
	var records []models.ReconciliationRecord
	if err := query.Order("date DESC").Find(&records).Error; err != nil {
		log.Warnf("查询对账单失败: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "查询对账单失败",
		})
	}

	// 根据格式导出
	switch format {
	case "json":
		return c.JSON(fiber.Map{
			"message": "导出成功",
			"data":    records,
		})
	case "xlsx":
		return exportReconciliationXLSX(c, records)
	default:
		return exportReconciliationCSV(c, records)
	}
}

// 对账单导出表头，对账单字段在前，明细字段在后
var reconciliationExportHeader = []string{
	"对账单ID", "订单号", "分销机构", "设计师", "佣金总额", "状态", "结算日期",
	"产品名称", "目录价", "折扣比例(%)", "结算价", "佣金比例(%)", "佣金金额",
}

// exportRow 将一条明细平铺为一行导出数据
func exportRow(record *models.ReconciliationRecord, item *models.ReconciliationItem) []interface{} {
	return []interface{}{
		record.ID,
		record.OrderNo,
		record.OrgName,
		record.DesignerName,
		record.Amount,
		record.Status,
		record.Date.Format("2006-01-02"),
		item.Name,
		item.Price,
		item.Discount,
		item.Settlement,
		item.CommissionRate,
		item.CommissionAmt,
	}
}

// exportReconciliationCSV 导出CSV格式
func exportReconciliationCSV(c *fiber.Ctx, records []models.ReconciliationRecord) error {
	// 设置响应头
	c.Set("Content-Disposition", "attachment; filename=reconciliations.csv")
	c.Set("Content-Type", "text/csv; charset=utf-8")

	// 构建CSV内容
	var csvContent strings.Builder
	// 添加CSV头
	csvContent.WriteString(strings.Join(reconciliationExportHeader, ","))
	csvContent.WriteString("\n")

	// 添加数据行，每条明细一行
	for i := range records {
		for j := range records[i].Items {
			row := exportRow(&records[i], &records[i].Items[j])
			cells := make([]string, len(row))
			for k, v := range row {
				cells[k] = fmt.Sprintf("%v", v)
			}
			csvContent.WriteString(strings.Join(cells, ","))
			csvContent.WriteString("\n")
		}
	}

	return c.SendString(csvContent.String())
}

// exportReconciliationXLSX 导出XLSX格式
func exportReconciliationXLSX(c *fiber.Ctx, records []models.ReconciliationRecord) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Warnf("关闭Excel文件失败: %v", err)
		}
	}()

	const sheet = "对账单"
	// 默认工作表重命名为对账单
	f.SetSheetName("Sheet1", sheet)

	// 写表头
	for i, h := range reconciliationExportHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	// 写数据行，每条明细一行
	rowIdx := 2
	for i := range records {
		for j := range records[i].Items {
			row := exportRow(&records[i], &records[i].Items[j])
			for k, v := range row {
				cell, _ := excelize.CoordinatesToCellName(k+1, rowIdx)
				f.SetCellValue(sheet, cell, v)
			}
			rowIdx++
		}
	}

	// 输出文件
	buf, err := f.WriteToBuffer()
	if err != nil {
		log.Warnf("生成Excel文件失败: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "生成Excel文件失败",
		})
	}

	c.Set("Content-Disposition", "attachment; filename=reconciliations.xlsx")
	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return c.Send(buf.Bytes())
}
