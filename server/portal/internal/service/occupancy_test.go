package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mohamedn-hafez/CapcityControl/models/portal"
)

func makeAssignment(projectCode, clientCode, queueName, queueCode, yearMonth string, seats int) portal.ProjectAssignment {
	return portal.ProjectAssignment{
		YearMonth: yearMonth,
		Seats:     seats,
		Project: &portal.Project{
			Code:   projectCode,
			Client: &portal.Client{Code: clientCode},
		},
		Queue: &portal.Queue{Name: queueName, Code: queueCode},
	}
}

func TestBuildOccupancyBreakdown_FiltersAndSorts(t *testing.T) {
	zones := []portal.Zone{
		{
			ID: "zone_A",
			ProjectAssignments: []portal.ProjectAssignment{
				makeAssignment("P_SMALL", "C1", "Voice", "VOICE", "2025-11", 20),
				makeAssignment("P_OTHER_MONTH", "C1", "Voice", "VOICE", "2025-12", 99),
				makeAssignment("P_EMPTY", "C1", "Voice", "VOICE", "2025-11", 0),
			},
		},
		{
			ID: "zone_B",
			ProjectAssignments: []portal.ProjectAssignment{
				makeAssignment("P_BIG", "C2", "Chat", "CHAT", "2025-11", 50),
				makeAssignment("P_TIE", "C2", "Chat", "CHAT", "2025-11", 20),
			},
		},
	}

	entries := BuildOccupancyBreakdown(zones, "2025-11")

	assert.Len(t, entries, 3)
	assert.Equal(t, "P_BIG", entries[0].ProjectCode)
	// 同座位数按项目编码升序
	assert.Equal(t, "P_SMALL", entries[1].ProjectCode)
	assert.Equal(t, "P_TIE", entries[2].ProjectCode)
	assert.Equal(t, "Chat", entries[0].BusinessUnit)
	assert.Equal(t, "CHAT", entries[0].BusinessUnitCode)
	assert.Equal(t, "C2", entries[0].ClientCode)
}

func TestBuildOccupancyBreakdown_NilRelations(t *testing.T) {
	zones := []portal.Zone{
		{
			ID: "zone_A",
			ProjectAssignments: []portal.ProjectAssignment{
				{YearMonth: "2025-11", Seats: 10},
			},
		},
	}

	entries := BuildOccupancyBreakdown(zones, "2025-11")

	assert.Len(t, entries, 1)
	assert.Equal(t, 10, entries[0].Seats)
	assert.Empty(t, entries[0].ProjectCode)
	assert.Empty(t, entries[0].BusinessUnit)
}

func TestGroupByBusinessUnit_Hierarchy(t *testing.T) {
	entries := []OccupancyEntry{
		{ProjectCode: "V1", ClientCode: "C1", BusinessUnit: "Voice", Seats: 40},
		{ProjectCode: "V2", ClientCode: "C1", BusinessUnit: "Voice", Seats: 10},
		{ProjectCode: "V3", ClientCode: "C2", BusinessUnit: "Voice", Seats: 30},
		{ProjectCode: "H1", ClientCode: "C1", BusinessUnit: "Chat", Seats: 25},
	}

	groups := GroupByBusinessUnit(entries)

	assert.Len(t, groups, 2)

	voice := groups[0]
	assert.Equal(t, "Voice", voice.BusinessUnit)
	assert.Equal(t, 80, voice.TotalSeats)
	assert.Len(t, voice.Clients, 2)
	// 客户按座位数降序: C1(50) > C2(30)
	assert.Equal(t, "C1", voice.Clients[0].Client)
	assert.Equal(t, 50, voice.Clients[0].TotalSeats)
	assert.Equal(t, "C2", voice.Clients[1].Client)
	// C1 项目按座位数降序
	assert.Equal(t, "V1", voice.Clients[0].Projects[0].ProjectCode)
	assert.Equal(t, "V2", voice.Clients[0].Projects[1].ProjectCode)
	// 扁平项目列表保留全部项目
	assert.Len(t, voice.Projects, 3)

	chat := groups[1]
	assert.Equal(t, "Chat", chat.BusinessUnit)
	assert.Equal(t, 25, chat.TotalSeats)
}

func TestGroupByBusinessUnit_TieBrokenByName(t *testing.T) {
	entries := []OccupancyEntry{
		{ProjectCode: "B1", ClientCode: "C1", BusinessUnit: "Zulu", Seats: 30},
		{ProjectCode: "A1", ClientCode: "C1", BusinessUnit: "Alpha", Seats: 30},
	}

	groups := GroupByBusinessUnit(entries)

	assert.Equal(t, "Alpha", groups[0].BusinessUnit)
	assert.Equal(t, "Zulu", groups[1].BusinessUnit)
}

func TestGroupByBusinessUnit_Empty(t *testing.T) {
	assert.Empty(t, GroupByBusinessUnit(nil))
}
