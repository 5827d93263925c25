package service

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mohamedn-hafez/CapcityControl/models/portal"
)

var _ = Describe("DashboardService", func() {
	var (
		ctx     context.Context
		db      *gorm.DB
		service *DashboardService
	)

	BeforeEach(func() {
		ctx = context.Background()
		db = newTestDB()
		seedRelocationFixture(db)
		// 给关闭楼层的分区补一条容量记录, 验证容量照常展示但占用记零
		mustCreate(db, &portal.ZoneCapacity{ZoneID: "zone_SRCF1A", YearMonth: "2025-11", Capacity: 80})
		service = NewDashboardService(db, zap.NewNop())
	})

	findSite := func(resp *DashboardResponse, id string) *DashboardSite {
		for i := range resp.Sites {
			if resp.Sites[i].SiteID == id {
				return &resp.Sites[i]
			}
		}
		return nil
	}

	It("zeroes out closed floors but keeps their zone capacity visible", func() {
		resp, err := service.GetDashboard(ctx, "2025-11")
		Expect(err).NotTo(HaveOccurred())

		src := findSite(resp, "site_SRC")
		Expect(src).NotTo(BeNil())
		Expect(src.Floors).To(HaveLen(1))

		floor := src.Floors[0]
		Expect(floor.IsClosing).To(BeTrue())
		Expect(floor.RiskStatus).To(Equal(RiskStatusClosed))
		Expect(floor.TotalCapacity).To(BeZero())
		Expect(floor.TotalOccupied).To(BeZero())

		Expect(floor.Zones).To(HaveLen(1))
		zone := floor.Zones[0]
		Expect(zone.IsClosing).To(BeTrue())
		Expect(zone.Capacity).To(Equal(80))
		Expect(zone.Occupied).To(BeZero())
		Expect(zone.Available).To(BeZero())
		Expect(zone.RiskStatus).To(Equal(RiskStatusClosed))
		Expect(zone.ClosureDate).To(Equal("2025-11-15"))

		// 站点合计不含已关闭楼层
		Expect(src.TotalCapacity).To(BeZero())
	})

	It("aggregates open sites and the grand total", func() {
		resp, err := service.GetDashboard(ctx, "2025-11")
		Expect(err).NotTo(HaveOccurred())

		t1 := findSite(resp, "site_T1")
		Expect(t1).NotTo(BeNil())
		Expect(t1.TotalCapacity).To(Equal(100))
		Expect(t1.TotalOccupied).To(Equal(10))
		Expect(t1.TotalAvailable).To(Equal(90))
		Expect(t1.UtilizationPercent).To(Equal(10.0))
		Expect(t1.RiskStatus).To(Equal(RiskStatusOK))

		Expect(resp.TotalCapacity).To(Equal(150))
		Expect(resp.TotalOccupied).To(Equal(20))
		Expect(resp.TotalAvailable).To(Equal(130))
		Expect(resp.Year).To(Equal(2025))
		Expect(resp.Month).To(Equal(11))
		Expect(resp.MonthName).To(Equal("Nov"))
	})

	It("keeps boundary zones on the right side of the risk thresholds", func() {
		// 9496/10000 展示为 95.0 但原始值 94.96, 分级必须还是 WARNING;
		// 10002/10000 展示为 100.0 但原始值 100.02, 分级必须是 OVERFLOW
		Expect(db.Model(&portal.ZoneCapacity{}).
			Where("zone_id = ? AND year_month = ?", "zone_T1A", "2025-11").
			Update("capacity", 10000).Error).NotTo(HaveOccurred())
		Expect(db.Model(&portal.ProjectAssignment{}).
			Where("zone_id = ?", "zone_T1A").
			Update("seats", 9496).Error).NotTo(HaveOccurred())
		Expect(db.Model(&portal.ZoneCapacity{}).
			Where("zone_id = ? AND year_month = ?", "zone_T2A", "2025-11").
			Update("capacity", 10000).Error).NotTo(HaveOccurred())
		Expect(db.Model(&portal.ProjectAssignment{}).
			Where("zone_id = ?", "zone_T2A").
			Update("seats", 10002).Error).NotTo(HaveOccurred())

		resp, err := service.GetDashboard(ctx, "2025-11")
		Expect(err).NotTo(HaveOccurred())

		t1 := findSite(resp, "site_T1")
		Expect(t1.Floors[0].Zones[0].UtilizationPercent).To(Equal(95.0))
		Expect(t1.Floors[0].Zones[0].RiskStatus).To(Equal(RiskStatusWarning))

		t2 := findSite(resp, "site_T2")
		Expect(t2.Floors[0].Zones[0].UtilizationPercent).To(Equal(100.0))
		Expect(t2.Floors[0].Zones[0].RiskStatus).To(Equal(RiskStatusOverflow))
	})

	It("lists closures scheduled for the requested month", func() {
		resp, err := service.GetDashboard(ctx, "2025-11")
		Expect(err).NotTo(HaveOccurred())

		Expect(resp.ClosuresThisMonth).To(HaveLen(1))
		closure := resp.ClosuresThisMonth[0]
		Expect(closure.ID).To(Equal("cp_SRCF1"))
		Expect(closure.SiteName).To(Equal("Source Site"))
		Expect(closure.FloorName).To(Equal("Floor 1"))
		Expect(closure.ZoneName).To(Equal("Zone A"))
		Expect(closure.SeatsAffected).To(Equal(70))
	})

	It("shows the floor as open in months before the closure", func() {
		mustCreate(db, &portal.ZoneCapacity{ZoneID: "zone_SRCF1A", YearMonth: "2025-10", Capacity: 80})
		mustCreate(db, &portal.ProjectAssignment{ZoneID: "zone_SRCF1A", ProjectID: "proj_P1", QueueID: "queue_VOICE", YearMonth: "2025-10", Seats: 40})

		resp, err := service.GetDashboard(ctx, "2025-10")
		Expect(err).NotTo(HaveOccurred())

		src := findSite(resp, "site_SRC")
		Expect(src.Floors[0].IsClosing).To(BeFalse())
		Expect(src.Floors[0].TotalCapacity).To(Equal(80))
		Expect(src.Floors[0].TotalOccupied).To(Equal(40))
		Expect(resp.ClosuresThisMonth).To(BeEmpty())
	})

	It("validates the month parameter", func() {
		_, err := service.GetDashboard(ctx, "")
		Expect(IsBadRequest(err)).To(BeTrue())

		_, err = service.GetDashboard(ctx, "2025-00")
		Expect(IsBadRequest(err)).To(BeTrue())
	})
})
