package service

import (
	"sort"

	"github.com/mohamedn-hafez/CapcityControl/models/portal"
)

// zoneCapacityForMonth 取分区在目标月份的容量记录, 缺失按 0 计.
func zoneCapacityForMonth(zone *portal.Zone, yearMonth string) int {
	for _, zc := range zone.ZoneCapacities {
		if zc.YearMonth == yearMonth {
			return zc.Capacity
		}
	}
	return 0
}

// zoneOccupiedForMonth 汇总分区在目标月份的占用座位.
func zoneOccupiedForMonth(zone *portal.Zone, yearMonth string) int {
	occupied := 0
	for _, pa := range zone.ProjectAssignments {
		if pa.YearMonth == yearMonth {
			occupied += pa.Seats
		}
	}
	return occupied
}

// floorClosedByMonth 楼层存在 PLANNED 且 yearMonth ≤ 目标月份的关闭计划时视为已关闭.
func floorClosedByMonth(floor *portal.Floor, yearMonth string) bool {
	for _, cp := range floor.ClosurePlans {
		if cp.Status == portal.ClosurePlanStatusPlanned && cp.YearMonth <= yearMonth {
			return true
		}
	}
	return false
}

// ComputeSiteCapacities 计算候选站点在目标月份的容量汇总与楼层明细.
// 已关闭楼层不贡献任何容量; 没有容量记录的分区容量按 0 计, 但其占用照常累计.
// 结果按可用容量降序, 同容量按站点编码升序.
func ComputeSiteCapacities(sites []portal.Site, yearMonth string) []SiteCapacity {
	result := make([]SiteCapacity, 0, len(sites))

	for i := range sites {
		site := &sites[i]
		totalCapacity := 0
		totalOccupied := 0
		floorBreakdown := make([]FloorCapacity, 0, len(site.Floors))

		for j := range site.Floors {
			floor := &site.Floors[j]
			if floorClosedByMonth(floor, yearMonth) {
				continue
			}

			floorCapacity := 0
			floorOccupied := 0
			zones := make([]ZoneAvailability, 0, len(floor.Zones))

			for k := range floor.Zones {
				zone := &floor.Zones[k]
				capacity := zoneCapacityForMonth(zone, yearMonth)
				occupied := zoneOccupiedForMonth(zone, yearMonth)
				available := capacity - occupied
				if available < 0 {
					available = 0
				}

				totalCapacity += capacity
				totalOccupied += occupied
				floorCapacity += capacity
				floorOccupied += occupied

				if available > 0 {
					zones = append(zones, ZoneAvailability{
						ZoneID:    zone.ID,
						ZoneName:  zone.Name,
						Capacity:  capacity,
						Occupied:  occupied,
						Available: available,
					})
				}
			}

			if len(zones) > 0 {
				sort.SliceStable(zones, func(a, b int) bool {
					return zones[a].Available > zones[b].Available
				})
				floorBreakdown = append(floorBreakdown, FloorCapacity{
					FloorID:        floor.ID,
					FloorName:      floor.Name,
					Zones:          zones,
					TotalCapacity:  floorCapacity,
					TotalOccupied:  floorOccupied,
					TotalAvailable: floorCapacity - floorOccupied,
				})
			}
		}

		sort.SliceStable(floorBreakdown, func(a, b int) bool {
			return floorBreakdown[a].TotalAvailable > floorBreakdown[b].TotalAvailable
		})

		available := totalCapacity - totalOccupied
		if available < 0 {
			available = 0
		}

		sc := SiteCapacity{
			SiteID:             site.ID,
			SiteName:           site.Name,
			SiteCode:           site.Code,
			RegionID:           site.RegionID,
			TotalCapacity:      totalCapacity,
			TotalOccupied:      totalOccupied,
			AvailableCapacity:  available,
			CurrentUtilization: Utilization(totalOccupied, totalCapacity),
			FloorBreakdown:     floorBreakdown,
		}
		if site.Region != nil {
			sc.RegionCode = site.Region.Code
			sc.RegionName = site.Region.Name
		}
		if site.OpeningDate != nil {
			sc.OpeningDate = site.OpeningDate.String()
		}
		result = append(result, sc)
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].AvailableCapacity != result[j].AvailableCapacity {
			return result[i].AvailableCapacity > result[j].AvailableCapacity
		}
		return result[i].SiteCode < result[j].SiteCode
	})
	return result
}

// ComputeRegionAvailable 汇总区域候选站点在目标月份的可用容量.
// 与站点汇总不同, 这里按分区逐个取 max(0, capacity-occupied) 后求和,
// 超占分区不会抵消其他分区的可用座位.
func ComputeRegionAvailable(sites []portal.Site, yearMonth string) int {
	total := 0
	for i := range sites {
		site := &sites[i]
		for j := range site.Floors {
			floor := &site.Floors[j]
			if floorClosedByMonth(floor, yearMonth) {
				continue
			}
			for k := range floor.Zones {
				zone := &floor.Zones[k]
				available := zoneCapacityForMonth(zone, yearMonth) - zoneOccupiedForMonth(zone, yearMonth)
				if available > 0 {
					total += available
				}
			}
		}
	}
	return total
}
