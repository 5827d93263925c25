package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/mohamedn-hafez/CapcityControl/models/portal"
)

// Seed data constants
const (
	regionRiyadh  = "reg_RIYADH"
	regionEastern = "reg_EASTERN"
	regionUAE     = "reg_UAE"
	regionEurope  = "reg_EUROPE"

	siteHUR    = "site_HUR"
	siteMP1    = "site_MP1"
	siteRHQ    = "site_RHQ"
	siteDammam = "site_DMM"

	clientAlpha = "client_ALPHA"
	clientBeta  = "client_BETA"
	clientGamma = "client_GAMMA"

	queueVoice = "queue_VOICE"
	queueChat  = "queue_CHAT"
	queueBack  = "queue_BACK"
)

// SeedIfEmpty 在区域表为空时写入演示数据, 已有数据时跳过.
func SeedIfEmpty(db *gorm.DB) error {
	var count int64
	if err := db.Model(&portal.Region{}).Count(&count).Error; err != nil {
		return fmt.Errorf("检查区域表失败: %v", err)
	}
	if count > 0 {
		log.Printf("区域表已有 %d 条数据，跳过初始化", count)
		return nil
	}
	return ClearAndSeedDatabase(db)
}

// ClearAndSeedDatabase 清空容量平台数据表并写入一致的演示数据.
func ClearAndSeedDatabase(db *gorm.DB) error {
	log.Println("开始清空并初始化演示数据...")

	// 按外键依赖逆序清空
	tablesToClear := []string{
		"allocation",
		"closure_plan",
		"project_assignment",
		"zone_capacity",
		"project",
		"queue",
		"client",
		"zone",
		"floor",
		"site",
		"region",
	}
	for _, table := range tablesToClear {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			return fmt.Errorf("清空表 %s 失败: %v", table, err)
		}
	}

	regions := []portal.Region{
		{ID: regionRiyadh, Code: "RIYADH", Name: "Riyadh", Country: "Saudi Arabia"},
		{ID: regionEastern, Code: "EASTERN", Name: "Eastern Province", Country: "Saudi Arabia"},
		{ID: regionUAE, Code: "UAE", Name: "United Arab Emirates", Country: "UAE"},
		{ID: regionEurope, Code: "EUROPE", Name: "Europe", Country: "Poland"},
	}
	if err := db.Create(&regions).Error; err != nil {
		return fmt.Errorf("创建区域失败: %v", err)
	}

	sites := []portal.Site{
		{ID: siteHUR, Code: "HUR", Name: "HUR", RegionID: regionRiyadh, Status: portal.SiteStatusActive},
		{ID: siteMP1, Code: "MP1", Name: "MP1", RegionID: regionRiyadh, Status: portal.SiteStatusActive},
		{ID: siteRHQ, Code: "RHQ", Name: "RHQ", RegionID: regionRiyadh, Status: portal.SiteStatusActive},
		{ID: siteDammam, Code: "DMM", Name: "Dammam", RegionID: regionEastern, Status: portal.SiteStatusActive},
	}
	if err := db.Create(&sites).Error; err != nil {
		return fmt.Errorf("创建站点失败: %v", err)
	}

	floors := []portal.Floor{
		{ID: "floor_HURF1", Code: "F1", Name: "HUR Floor 1", SiteID: siteHUR},
		{ID: "floor_HURF2", Code: "F2", Name: "HUR Floor 2", SiteID: siteHUR},
		{ID: "floor_MP1F1", Code: "F1", Name: "MP1 Floor 1", SiteID: siteMP1},
		{ID: "floor_RHQF1", Code: "F1", Name: "RHQ Floor 1", SiteID: siteRHQ},
		{ID: "floor_DMMF1", Code: "F1", Name: "Dammam Floor 1", SiteID: siteDammam},
	}
	if err := db.Create(&floors).Error; err != nil {
		return fmt.Errorf("创建楼层失败: %v", err)
	}

	zones := []portal.Zone{
		{ID: "zone_HUR-F1-A", Code: "A", Name: "Zone A", SiteFloorZoneCode: "HUR-F1-A", FloorID: "floor_HURF1"},
		{ID: "zone_HUR-F1-B", Code: "B", Name: "Zone B", SiteFloorZoneCode: "HUR-F1-B", FloorID: "floor_HURF1"},
		{ID: "zone_HUR-F2-A", Code: "A", Name: "Zone A", SiteFloorZoneCode: "HUR-F2-A", FloorID: "floor_HURF2"},
		{ID: "zone_MP1-F1-A", Code: "A", Name: "Zone A", SiteFloorZoneCode: "MP1-F1-A", FloorID: "floor_MP1F1"},
		{ID: "zone_MP1-F1-B", Code: "B", Name: "Zone B", SiteFloorZoneCode: "MP1-F1-B", FloorID: "floor_MP1F1"},
		{ID: "zone_RHQ-F1-A", Code: "A", Name: "Zone A", SiteFloorZoneCode: "RHQ-F1-A", FloorID: "floor_RHQF1"},
		{ID: "zone_DMM-F1-A", Code: "A", Name: "Zone A", SiteFloorZoneCode: "DMM-F1-A", FloorID: "floor_DMMF1"},
	}
	if err := db.Create(&zones).Error; err != nil {
		return fmt.Errorf("创建区块失败: %v", err)
	}

	clients := []portal.Client{
		{ID: clientAlpha, Code: "ALPHA", Name: "Alpha Telecom"},
		{ID: clientBeta, Code: "BETA", Name: "Beta Bank"},
		{ID: clientGamma, Code: "GAMMA", Name: "Gamma Retail"},
	}
	if err := db.Create(&clients).Error; err != nil {
		return fmt.Errorf("创建客户失败: %v", err)
	}

	projects := []portal.Project{
		{ID: "proj_ALPHA-CARE", Code: "ALPHA-CARE", Name: "Alpha Customer Care", ClientID: clientAlpha},
		{ID: "proj_ALPHA-SALES", Code: "ALPHA-SALES", Name: "Alpha Telesales", ClientID: clientAlpha},
		{ID: "proj_BETA-SUP", Code: "BETA-SUP", Name: "Beta Support", ClientID: clientBeta},
		{ID: "proj_GAMMA-ORD", Code: "GAMMA-ORD", Name: "Gamma Order Desk", ClientID: clientGamma},
	}
	if err := db.Create(&projects).Error; err != nil {
		return fmt.Errorf("创建项目失败: %v", err)
	}

	queues := []portal.Queue{
		{ID: queueVoice, Code: "VOICE", Name: "Voice"},
		{ID: queueChat, Code: "CHAT", Name: "Chat"},
		{ID: queueBack, Code: "BACK", Name: "Back Office"},
	}
	if err := db.Create(&queues).Error; err != nil {
		return fmt.Errorf("创建队列失败: %v", err)
	}

	// 同一套容量/占用在连续几个月内重复, 方便推荐月份扫描有数据可走
	months := []string{"2025-09", "2025-10", "2025-11", "2025-12"}
	for _, month := range months {
		capacities := []portal.ZoneCapacity{
			{ZoneID: "zone_HUR-F1-A", YearMonth: month, Capacity: 120},
			{ZoneID: "zone_HUR-F1-B", YearMonth: month, Capacity: 80},
			{ZoneID: "zone_HUR-F2-A", YearMonth: month, Capacity: 100},
			{ZoneID: "zone_MP1-F1-A", YearMonth: month, Capacity: 150},
			{ZoneID: "zone_MP1-F1-B", YearMonth: month, Capacity: 90},
			{ZoneID: "zone_RHQ-F1-A", YearMonth: month, Capacity: 200},
			{ZoneID: "zone_DMM-F1-A", YearMonth: month, Capacity: 60},
		}
		if err := db.Create(&capacities).Error; err != nil {
			return fmt.Errorf("创建区块容量失败: %v", err)
		}

		assignments := []portal.ProjectAssignment{
			{ZoneID: "zone_HUR-F1-A", ProjectID: "proj_ALPHA-CARE", QueueID: queueVoice, YearMonth: month, Seats: 70},
			{ZoneID: "zone_HUR-F1-A", ProjectID: "proj_ALPHA-SALES", QueueID: queueChat, YearMonth: month, Seats: 30},
			{ZoneID: "zone_HUR-F1-B", ProjectID: "proj_BETA-SUP", QueueID: queueVoice, YearMonth: month, Seats: 50},
			{ZoneID: "zone_HUR-F2-A", ProjectID: "proj_GAMMA-ORD", QueueID: queueBack, YearMonth: month, Seats: 40},
			{ZoneID: "zone_MP1-F1-A", ProjectID: "proj_BETA-SUP", QueueID: queueChat, YearMonth: month, Seats: 60},
			{ZoneID: "zone_RHQ-F1-A", ProjectID: "proj_ALPHA-CARE", QueueID: queueVoice, YearMonth: month, Seats: 80},
		}
		if err := db.Create(&assignments).Error; err != nil {
			return fmt.Errorf("创建项目占用失败: %v", err)
		}
	}

	closureDate, _ := time.Parse(time.DateOnly, "2025-11-15")
	closure := portal.ClosurePlan{
		ID:            "cp_HURF2",
		FloorID:       "floor_HURF2",
		ClosureDate:   portal.PortalTime(closureDate),
		YearMonth:     "2025-11",
		SeatsAffected: 40,
		Status:        portal.ClosurePlanStatusPlanned,
	}
	if err := db.Create(&closure).Error; err != nil {
		return fmt.Errorf("创建关闭计划失败: %v", err)
	}

	log.Println("演示数据初始化完成")
	return nil
}
