package service

import (
	"sort"

	"github.com/mohamedn-hafez/CapcityControl/pkg/utils"
)

// PlaceBusinessUnits 两阶段贪心安置.
// 第一阶段按座位总数降序逐个业务单元, 在可用容量降序的站点序列上
// 首次适配整体安置; 放不下的业务单元进入第二阶段, 其项目按座位数降序
// 逐个首次适配. 项目永不拆分, 放不下的项目记入未安置列表.
// 不变量: TotalAllocated + TotalUnseated == 各业务单元座位总和.
func PlaceBusinessUnits(siteCaps []SiteCapacity, buGroups []BusinessUnitGroup) PlacementResult {
	remaining := make(map[string]int, len(siteCaps))
	allocations := make(map[string]SiteAllocation, len(siteCaps))
	for _, site := range siteCaps {
		remaining[site.SiteID] = site.AvailableCapacity
		allocations[site.SiteID] = SiteAllocation{
			Projects:      []string{},
			BusinessUnits: []string{},
		}
	}

	allocatedProjects := make([]string, 0)
	unseatedProjects := make([]UnseatedProject, 0)

	sortedBUs := make([]BusinessUnitGroup, len(buGroups))
	copy(sortedBUs, buGroups)
	sort.SliceStable(sortedBUs, func(i, j int) bool {
		return sortedBUs[i].TotalSeats > sortedBUs[j].TotalSeats
	})

	for _, bu := range sortedBUs {
		buAllocated := false

		// 第一阶段: 整体安置
		for _, site := range siteCaps {
			if remaining[site.SiteID] < bu.TotalSeats {
				continue
			}
			remaining[site.SiteID] -= bu.TotalSeats
			alloc := allocations[site.SiteID]
			alloc.Seats += bu.TotalSeats
			alloc.BusinessUnits = append(alloc.BusinessUnits, bu.BusinessUnit)
			for _, proj := range bu.Projects {
				alloc.Projects = append(alloc.Projects, proj.ProjectCode)
				allocatedProjects = append(allocatedProjects, proj.ProjectCode)
			}
			allocations[site.SiteID] = alloc
			buAllocated = true
			break
		}
		if buAllocated {
			continue
		}

		// 第二阶段: 业务单元整体放不下, 项目按座位数降序逐个安置
		buProjects := make([]BusinessUnitProject, len(bu.Projects))
		copy(buProjects, bu.Projects)
		sort.SliceStable(buProjects, func(i, j int) bool {
			return buProjects[i].Seats > buProjects[j].Seats
		})

		for _, project := range buProjects {
			projectAllocated := false
			for _, site := range siteCaps {
				if remaining[site.SiteID] < project.Seats {
					continue
				}
				remaining[site.SiteID] -= project.Seats
				alloc := allocations[site.SiteID]
				alloc.Seats += project.Seats
				alloc.Projects = append(alloc.Projects, project.ProjectCode)
				if !utils.StringInSlice(bu.BusinessUnit, alloc.BusinessUnits) {
					alloc.BusinessUnits = append(alloc.BusinessUnits, bu.BusinessUnit)
				}
				allocations[site.SiteID] = alloc
				allocatedProjects = append(allocatedProjects, project.ProjectCode)
				projectAllocated = true
				break
			}
			if !projectAllocated {
				unseatedProjects = append(unseatedProjects, UnseatedProject{
					ProjectCode:  project.ProjectCode,
					Seats:        project.Seats,
					BusinessUnit: bu.BusinessUnit,
				})
			}
		}
	}

	totalAllocated := 0
	for _, alloc := range allocations {
		totalAllocated += alloc.Seats
	}
	totalUnseated := 0
	for _, p := range unseatedProjects {
		totalUnseated += p.Seats
	}

	return PlacementResult{
		SiteAllocations:   allocations,
		AllocatedProjects: allocatedProjects,
		UnseatedProjects:  unseatedProjects,
		TotalAllocated:    totalAllocated,
		TotalUnseated:     totalUnseated,
	}
}
