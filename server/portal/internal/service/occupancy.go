package service

import (
	"sort"

	"github.com/mohamedn-hafez/CapcityControl/models/portal"
)

// BuildOccupancyBreakdown 汇总关闭楼层所有分区在目标月份的项目占用.
// 仅保留 seats > 0 的记录, 结果按座位数降序, 同座位数按项目编码升序保证幂等.
func BuildOccupancyBreakdown(zones []portal.Zone, yearMonth string) []OccupancyEntry {
	entries := make([]OccupancyEntry, 0)
	for _, zone := range zones {
		for _, pa := range zone.ProjectAssignments {
			if pa.YearMonth != yearMonth || pa.Seats <= 0 {
				continue
			}
			entry := OccupancyEntry{Seats: pa.Seats}
			if pa.Project != nil {
				entry.ProjectCode = pa.Project.Code
				if pa.Project.Client != nil {
					entry.ClientCode = pa.Project.Client.Code
				}
			}
			if pa.Queue != nil {
				entry.BusinessUnit = pa.Queue.Name
				entry.BusinessUnitCode = pa.Queue.Code
			}
			entries = append(entries, entry)
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Seats != entries[j].Seats {
			return entries[i].Seats > entries[j].Seats
		}
		return entries[i].ProjectCode < entries[j].ProjectCode
	})
	return entries
}

// GroupByBusinessUnit 将扁平占用明细按 业务单元 → 客户 → 项目 层级分组.
// 各层均按座位数降序; 业务单元整体顺序同样按座位总数降序, 同数按名称升序.
func GroupByBusinessUnit(entries []OccupancyEntry) []BusinessUnitGroup {
	index := make(map[string]*BusinessUnitGroup)
	order := make([]string, 0)

	for _, item := range entries {
		bu, ok := index[item.BusinessUnit]
		if !ok {
			bu = &BusinessUnitGroup{BusinessUnit: item.BusinessUnit}
			index[item.BusinessUnit] = bu
			order = append(order, item.BusinessUnit)
		}
		bu.TotalSeats += item.Seats

		var clientEntry *ClientGroup
		for i := range bu.Clients {
			if bu.Clients[i].Client == item.ClientCode {
				clientEntry = &bu.Clients[i]
				break
			}
		}
		if clientEntry == nil {
			bu.Clients = append(bu.Clients, ClientGroup{Client: item.ClientCode})
			clientEntry = &bu.Clients[len(bu.Clients)-1]
		}
		clientEntry.TotalSeats += item.Seats
		clientEntry.Projects = append(clientEntry.Projects, ProjectSeats{
			ProjectCode: item.ProjectCode,
			Seats:       item.Seats,
		})

		// 扁平项目列表, 安置引擎与旧前端都依赖它
		bu.Projects = append(bu.Projects, BusinessUnitProject{
			ProjectCode: item.ProjectCode,
			Client:      item.ClientCode,
			Seats:       item.Seats,
		})
	}

	groups := make([]BusinessUnitGroup, 0, len(order))
	for _, name := range order {
		bu := index[name]
		sort.SliceStable(bu.Clients, func(i, j int) bool {
			return bu.Clients[i].TotalSeats > bu.Clients[j].TotalSeats
		})
		for i := range bu.Clients {
			projects := bu.Clients[i].Projects
			sort.SliceStable(projects, func(a, b int) bool {
				return projects[a].Seats > projects[b].Seats
			})
		}
		groups = append(groups, *bu)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].TotalSeats != groups[j].TotalSeats {
			return groups[i].TotalSeats > groups[j].TotalSeats
		}
		return groups[i].BusinessUnit < groups[j].BusinessUnit
	})
	return groups
}
