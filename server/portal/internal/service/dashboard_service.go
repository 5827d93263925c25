package service

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mohamedn-hafez/CapcityControl/models/portal"
)

var shortMonthNames = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// DashboardService 仪表盘服务
type DashboardService struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewDashboardService 创建仪表盘服务实例
func NewDashboardService(db *gorm.DB, logger *zap.Logger) *DashboardService {
	return &DashboardService{db: db, logger: logger}
}

// GetDashboard 生成目标月份的全站容量快照.
// 已关闭楼层(存在 PLANNED 且 yearMonth ≤ 目标月份的计划)的容量/占用/可用全部记零,
// 风险状态为 CLOSED; 其余楼层按占用率分级.
func (s *DashboardService) GetDashboard(ctx context.Context, yearMonth string) (*DashboardResponse, error) {
	if yearMonth == EmptyString {
		return nil, NewBadRequestError(ErrYearMonthRequired)
	}
	year, month, err := splitYearMonth(yearMonth)
	if err != nil {
		return nil, NewBadRequestError(err.Error())
	}

	var sites []portal.Site
	if err := s.db.WithContext(ctx).
		Preload("Region").
		Preload("Floors").
		Preload("Floors.Zones").
		Preload("Floors.Zones.ZoneCapacities", "year_month = ?", yearMonth).
		Preload("Floors.Zones.ProjectAssignments", "year_month = ?", yearMonth).
		Preload("Floors.ClosurePlans", "status = ?", portal.ClosurePlanStatusPlanned).
		Order("name asc").
		Find(&sites).Error; err != nil {
		return nil, err
	}

	var closures []portal.ClosurePlan
	if err := s.db.WithContext(ctx).
		Preload("Floor").
		Preload("Floor.Site").
		Preload("Floor.Zones").
		Where("year_month = ?", yearMonth).
		Find(&closures).Error; err != nil {
		return nil, err
	}

	dashboardSites := make([]DashboardSite, 0, len(sites))
	totalCapacity := 0
	totalOccupied := 0

	for i := range sites {
		site := &sites[i]
		siteCapacity := 0
		siteOccupied := 0
		floors := make([]DashboardFloor, 0, len(site.Floors))

		for j := range site.Floors {
			floor := &site.Floors[j]
			isClosed := false
			closureDate := EmptyString
			for _, cp := range floor.ClosurePlans {
				if cp.YearMonth <= yearMonth {
					isClosed = true
					closureDate = cp.ClosureDate.String()
					break
				}
			}

			floorCapacity := 0
			floorOccupied := 0
			zones := make([]DashboardZone, 0, len(floor.Zones))

			for k := range floor.Zones {
				zone := &floor.Zones[k]
				zoneCapacity := zoneCapacityForMonth(zone, yearMonth)

				zoneOccupied := 0
				zoneAvailable := 0
				if !isClosed {
					zoneOccupied = zoneOccupiedForMonth(zone, yearMonth)
					zoneAvailable = zoneCapacity - zoneOccupied
					if zoneAvailable < 0 {
						zoneAvailable = 0
					}
					floorCapacity += zoneCapacity
					floorOccupied += zoneOccupied
				}

				zones = append(zones, DashboardZone{
					ZoneID:             zone.ID,
					ZoneCode:           zone.Code,
					ZoneName:           zone.Name,
					SiteFloorZoneCode:  zone.SiteFloorZoneCode,
					Capacity:           zoneCapacity,
					Occupied:           zoneOccupied,
					Available:          zoneAvailable,
					UtilizationPercent: Utilization(zoneOccupied, zoneCapacity),
					RiskStatus:         RiskStatus(RawUtilization(zoneOccupied, zoneCapacity), isClosed),
					IsClosing:          isClosed,
					ClosureDate:        closureDate,
				})
			}

			siteCapacity += floorCapacity
			siteOccupied += floorOccupied

			rawFloorUtilization := RawUtilization(floorOccupied, floorCapacity)
			floors = append(floors, DashboardFloor{
				FloorID:            floor.ID,
				FloorCode:          floor.Code,
				FloorName:          floor.Name,
				TotalCapacity:      floorCapacity,
				TotalOccupied:      floorOccupied,
				TotalAvailable:     floorCapacity - floorOccupied,
				UtilizationPercent: RoundUtilization(rawFloorUtilization),
				RiskStatus:         RiskStatus(rawFloorUtilization, isClosed),
				IsClosing:          isClosed,
				Zones:              zones,
			})
		}

		totalCapacity += siteCapacity
		totalOccupied += siteOccupied

		rawSiteUtilization := RawUtilization(siteOccupied, siteCapacity)
		ds := DashboardSite{
			SiteID:             site.ID,
			SiteCode:           site.Code,
			SiteName:           site.Name,
			Status:             site.Status,
			TotalCapacity:      siteCapacity,
			TotalOccupied:      siteOccupied,
			TotalAvailable:     siteCapacity - siteOccupied,
			UtilizationPercent: RoundUtilization(rawSiteUtilization),
			RiskStatus:         RiskStatus(rawSiteUtilization, false),
			Floors:             floors,
		}
		if site.Region != nil {
			ds.RegionCode = site.Region.Code
			ds.RegionName = site.Region.Name
		}
		dashboardSites = append(dashboardSites, ds)
	}

	closureItems := make([]DashboardClosure, 0, len(closures))
	for i := range closures {
		cp := &closures[i]
		item := DashboardClosure{
			ID:            cp.ID,
			FloorID:       cp.FloorID,
			ClosureDate:   cp.ClosureDate.String(),
			YearMonth:     cp.YearMonth,
			SeatsAffected: cp.SeatsAffected,
			Status:        cp.Status,
		}
		if cp.Floor != nil {
			item.FloorName = cp.Floor.Name
			names := make([]string, 0, len(cp.Floor.Zones))
			for _, z := range cp.Floor.Zones {
				names = append(names, z.Name)
			}
			item.ZoneName = strings.Join(names, ", ")
			if cp.Floor.Site != nil {
				item.SiteName = cp.Floor.Site.Name
			}
		}
		closureItems = append(closureItems, item)
	}

	s.logger.Debug("Dashboard snapshot built",
		zap.String("yearMonth", yearMonth),
		zap.Int("sites", len(dashboardSites)),
		zap.Int("closures", len(closureItems)))

	return &DashboardResponse{
		YearMonth:         yearMonth,
		Year:              year,
		Month:             month,
		MonthName:         shortMonthNames[month-1],
		Sites:             dashboardSites,
		TotalCapacity:     totalCapacity,
		TotalOccupied:     totalOccupied,
		TotalAvailable:    totalCapacity - totalOccupied,
		ClosuresThisMonth: closureItems,
	}, nil
}
