package report

import (
	"context"
	"fmt"
	"math"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mohamedn-hafez/CapcityControl/models/portal"
)

// 工作表与表头常量
const (
	sheetNameSiteOverview = "Site Overview"
	sheetNameZoneDetail   = "Zone Detail"

	defaultOutputPattern = "capacity_report_%s.xlsx"
)

var (
	siteOverviewHeaders = []string{
		"Region", "Site Code", "Site Name", "Status",
		"Total Capacity", "Occupied", "Available", "Utilization (%)", "Risk",
	}
	zoneDetailHeaders = []string{
		"Site Code", "Floor", "Zone Code", "Zone Name",
		"Capacity", "Occupied", "Available", "Utilization (%)", "Risk",
	}
)

// CapacityReportGenerator 月度容量报表生成器
type CapacityReportGenerator struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewCapacityReportGenerator 创建报表生成器
func NewCapacityReportGenerator(db *gorm.DB, logger *zap.Logger) *CapacityReportGenerator {
	return &CapacityReportGenerator{db: db, logger: logger}
}

// Run 查询指定月份的容量事实并生成Excel报表, 返回输出文件路径.
func (g *CapacityReportGenerator) Run(ctx context.Context, yearMonth, outputPath string) (string, error) {
	var sites []portal.Site
	err := g.db.WithContext(ctx).
		Preload("Region").
		Preload("Floors").
		Preload("Floors.Zones").
		Preload("Floors.Zones.ZoneCapacities", "year_month = ?", yearMonth).
		Preload("Floors.Zones.ProjectAssignments", "year_month = ?", yearMonth).
		Preload("Floors.ClosurePlans", "status = ?", portal.ClosurePlanStatusPlanned).
		Order("code asc").
		Find(&sites).Error
	if err != nil {
		return "", fmt.Errorf("failed to query sites: %w", err)
	}

	siteRows, zoneRows := buildReportRows(sites, yearMonth)
	g.logger.Info("capacity report rows built",
		zap.String("yearMonth", yearMonth),
		zap.Int("sites", len(siteRows)),
		zap.Int("zones", len(zoneRows)))

	f, err := buildWorkbook(siteRows, zoneRows)
	if err != nil {
		return "", fmt.Errorf("failed to build workbook: %w", err)
	}

	if outputPath == "" {
		outputPath = fmt.Sprintf(defaultOutputPattern, yearMonth)
	}
	if err := f.SaveAs(outputPath); err != nil {
		return "", fmt.Errorf("failed to save workbook: %w", err)
	}
	return outputPath, nil
}

// rawUtilization 计算未舍入的占用率百分比, 容量为零恒为 0.
// 风险分级用原始值, 报表列才做舍入.
func rawUtilization(occupied, capacity int) float64 {
	if capacity <= 0 {
		return 0
	}
	return float64(occupied) / float64(capacity) * 100.0
}

// roundUtilization 占用率保留一位小数
func roundUtilization(occupied, capacity int) float64 {
	return math.Round(rawUtilization(occupied, capacity)*10) / 10
}

func riskLabel(utilization float64, closed bool) string {
	switch {
	case closed:
		return RiskClosed
	case utilization > OverflowThreshold:
		return RiskOverflow
	case utilization >= RiskThreshold:
		return RiskRisk
	case utilization >= WarningThreshold:
		return RiskWarning
	default:
		return RiskOK
	}
}

// buildReportRows 把预加载好的站点树展开成站点概览行与分区明细行.
// 已关闭楼层(存在生效关闭计划且关闭月<=报表月)不计入站点容量, 但在明细表中保留并标记CLOSED.
func buildReportRows(sites []portal.Site, yearMonth string) ([]SiteReportRow, []ZoneReportRow) {
	siteRows := make([]SiteReportRow, 0, len(sites))
	var zoneRows []ZoneReportRow

	for i := range sites {
		site := &sites[i]
		regionName := ""
		if site.Region != nil {
			regionName = site.Region.Name
		}

		totalCapacity := 0
		totalOccupied := 0
		for j := range site.Floors {
			floor := &site.Floors[j]
			closed := false
			for _, plan := range floor.ClosurePlans {
				if plan.YearMonth <= yearMonth {
					closed = true
					break
				}
			}

			for k := range floor.Zones {
				zone := &floor.Zones[k]
				capacity := 0
				for _, zc := range zone.ZoneCapacities {
					if zc.YearMonth == yearMonth {
						capacity = zc.Capacity
						break
					}
				}
				occupied := 0
				for _, pa := range zone.ProjectAssignments {
					if pa.YearMonth == yearMonth {
						occupied += pa.Seats
					}
				}

				row := ZoneReportRow{
					SiteCode:  site.Code,
					FloorCode: floor.Code,
					ZoneCode:  zone.Code,
					ZoneName:  zone.Name,
					Capacity:  capacity,
					Closed:    closed,
				}
				if closed {
					row.Risk = RiskClosed
				} else {
					row.Occupied = occupied
					available := capacity - occupied
					if available < 0 {
						available = 0
					}
					row.Available = available
					row.Utilization = roundUtilization(occupied, capacity)
					row.Risk = riskLabel(rawUtilization(occupied, capacity), false)

					totalCapacity += capacity
					totalOccupied += occupied
				}
				zoneRows = append(zoneRows, row)
			}
		}

		available := totalCapacity - totalOccupied
		if available < 0 {
			available = 0
		}
		siteRows = append(siteRows, SiteReportRow{
			RegionName:    regionName,
			SiteCode:      site.Code,
			SiteName:      site.Name,
			Status:        site.Status,
			TotalCapacity: totalCapacity,
			Occupied:      totalOccupied,
			Available:     available,
			Utilization:   roundUtilization(totalOccupied, totalCapacity),
			Risk:          riskLabel(rawUtilization(totalOccupied, totalCapacity), site.Status == portal.SiteStatusClosed),
		})
	}
	return siteRows, zoneRows
}

// buildWorkbook 生成双工作表的Excel文件, 利用率单元格按风险等级着色.
func buildWorkbook(siteRows []SiteReportRow, zoneRows []ZoneReportRow) (*excelize.File, error) {
	f := excelize.NewFile()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, err
	}

	// 每种风险等级一个填充样式
	riskStyles := make(map[CapacityStyleType]int, len(styleFillColors))
	for styleType, color := range styleFillColors {
		styleID, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
		})
		if err != nil {
			return nil, err
		}
		riskStyles[styleType] = styleID
	}

	if err := writeSiteOverviewSheet(f, siteRows, headerStyle, riskStyles); err != nil {
		return nil, err
	}
	if err := writeZoneDetailSheet(f, zoneRows, headerStyle, riskStyles); err != nil {
		return nil, err
	}

	// 删除默认工作表并把概览设为活动页
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	index, err := f.GetSheetIndex(sheetNameSiteOverview)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	return f, nil
}

func writeSiteOverviewSheet(f *excelize.File, rows []SiteReportRow, headerStyle int, riskStyles map[CapacityStyleType]int) error {
	if _, err := f.NewSheet(sheetNameSiteOverview); err != nil {
		return err
	}
	if err := writeHeaderRow(f, sheetNameSiteOverview, siteOverviewHeaders, headerStyle); err != nil {
		return err
	}

	for i, row := range rows {
		rowNum := i + 2
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return err
		}
		values := []interface{}{
			row.RegionName, row.SiteCode, row.SiteName, row.Status,
			row.TotalCapacity, row.Occupied, row.Available, row.Utilization, row.Risk,
		}
		if err := f.SetSheetRow(sheetNameSiteOverview, cell, &values); err != nil {
			return err
		}
		styleType := styleForRisk(row.Risk)
		if err := applyRiskStyle(f, sheetNameSiteOverview, rowNum, 8, 9, riskStyles[styleType]); err != nil {
			return err
		}
	}
	return setColumnWidths(f, sheetNameSiteOverview, len(siteOverviewHeaders))
}

func writeZoneDetailSheet(f *excelize.File, rows []ZoneReportRow, headerStyle int, riskStyles map[CapacityStyleType]int) error {
	if _, err := f.NewSheet(sheetNameZoneDetail); err != nil {
		return err
	}
	if err := writeHeaderRow(f, sheetNameZoneDetail, zoneDetailHeaders, headerStyle); err != nil {
		return err
	}

	for i, row := range rows {
		rowNum := i + 2
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return err
		}
		values := []interface{}{
			row.SiteCode, row.FloorCode, row.ZoneCode, row.ZoneName,
			row.Capacity, row.Occupied, row.Available, row.Utilization, row.Risk,
		}
		if err := f.SetSheetRow(sheetNameZoneDetail, cell, &values); err != nil {
			return err
		}
		styleType := styleForRisk(row.Risk)
		if err := applyRiskStyle(f, sheetNameZoneDetail, rowNum, 8, 9, riskStyles[styleType]); err != nil {
			return err
		}
	}
	return setColumnWidths(f, sheetNameZoneDetail, len(zoneDetailHeaders))
}

func writeHeaderRow(f *excelize.File, sheet string, headers []string, headerStyle int) error {
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return err
		}
	}
	return nil
}

// applyRiskStyle 给利用率和风险列上色
func applyRiskStyle(f *excelize.File, sheet string, rowNum, startCol, endCol, styleID int) error {
	startCell, err := excelize.CoordinatesToCellName(startCol, rowNum)
	if err != nil {
		return err
	}
	endCell, err := excelize.CoordinatesToCellName(endCol, rowNum)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, startCell, endCell, styleID)
}

func setColumnWidths(f *excelize.File, sheet string, columnCount int) error {
	endCol, err := excelize.ColumnNumberToName(columnCount)
	if err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", endCol, 16)
}
