package service

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mohamedn-hafez/CapcityControl/models/portal"
)

// seedRelocationFixture 造一个最小的搬迁场景:
// 源站点 SRC 的 F1 楼层计划在 2025-11 关闭, 其下 70 座(P1=40, P2=30, 同属 Voice);
// 同区域有两个候选站点, T1 可用 90 座, T2 可用 40 座.
func seedRelocationFixture(db *gorm.DB) {
	mustCreate(db, &portal.Region{ID: "reg_R", Code: "R", Name: "Region R"})
	mustCreate(db, &portal.Queue{ID: "queue_VOICE", Code: "VOICE", Name: "Voice"})
	mustCreate(db, &portal.Client{ID: "client_C1", Code: "C1", Name: "Client One"})
	mustCreate(db, &portal.Project{ID: "proj_P1", Code: "P1", ClientID: "client_C1"})
	mustCreate(db, &portal.Project{ID: "proj_P2", Code: "P2", ClientID: "client_C1"})
	mustCreate(db, &portal.Project{ID: "proj_OCC", Code: "OCC", ClientID: "client_C1"})

	mustCreate(db, &portal.Site{ID: "site_SRC", Code: "SRC", Name: "Source Site", RegionID: "reg_R", Status: portal.SiteStatusActive})
	mustCreate(db, &portal.Floor{ID: "floor_SRCF1", Code: "F1", Name: "Floor 1", SiteID: "site_SRC"})
	mustCreate(db, &portal.Zone{ID: "zone_SRCF1A", Code: "A", Name: "Zone A", SiteFloorZoneCode: "SRCF1A", FloorID: "floor_SRCF1"})
	mustCreate(db, &portal.ProjectAssignment{ZoneID: "zone_SRCF1A", ProjectID: "proj_P1", QueueID: "queue_VOICE", YearMonth: "2025-11", Seats: 40})
	mustCreate(db, &portal.ProjectAssignment{ZoneID: "zone_SRCF1A", ProjectID: "proj_P2", QueueID: "queue_VOICE", YearMonth: "2025-11", Seats: 30})

	closureDate := portal.PortalTime(time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC))
	mustCreate(db, &portal.ClosurePlan{
		ID:            "cp_SRCF1",
		FloorID:       "floor_SRCF1",
		ClosureDate:   closureDate,
		YearMonth:     "2025-11",
		SeatsAffected: 70,
		Status:        portal.ClosurePlanStatusPlanned,
	})

	mustCreate(db, &portal.Site{ID: "site_T1", Code: "T1", Name: "Target One", RegionID: "reg_R", Status: portal.SiteStatusActive})
	mustCreate(db, &portal.Floor{ID: "floor_T1F1", Code: "F1", Name: "T1 Floor 1", SiteID: "site_T1"})
	mustCreate(db, &portal.Zone{ID: "zone_T1A", Code: "A", Name: "T1 Zone A", SiteFloorZoneCode: "T1F1A", FloorID: "floor_T1F1"})
	mustCreate(db, &portal.ZoneCapacity{ZoneID: "zone_T1A", YearMonth: "2025-11", Capacity: 100})
	mustCreate(db, &portal.ZoneCapacity{ZoneID: "zone_T1A", YearMonth: "2025-12", Capacity: 100})
	mustCreate(db, &portal.ProjectAssignment{ZoneID: "zone_T1A", ProjectID: "proj_OCC", QueueID: "queue_VOICE", YearMonth: "2025-11", Seats: 10})

	mustCreate(db, &portal.Site{ID: "site_T2", Code: "T2", Name: "Target Two", RegionID: "reg_R", Status: portal.SiteStatusActive})
	mustCreate(db, &portal.Floor{ID: "floor_T2F1", Code: "F1", Name: "T2 Floor 1", SiteID: "site_T2"})
	mustCreate(db, &portal.Zone{ID: "zone_T2A", Code: "A", Name: "T2 Zone A", SiteFloorZoneCode: "T2F1A", FloorID: "floor_T2F1"})
	mustCreate(db, &portal.ZoneCapacity{ZoneID: "zone_T2A", YearMonth: "2025-11", Capacity: 50})
	mustCreate(db, &portal.ZoneCapacity{ZoneID: "zone_T2A", YearMonth: "2025-12", Capacity: 50})
	mustCreate(db, &portal.ProjectAssignment{ZoneID: "zone_T2A", ProjectID: "proj_OCC", QueueID: "queue_VOICE", YearMonth: "2025-11", Seats: 10})
}

var _ = Describe("AllocationService", func() {
	var (
		ctx     context.Context
		db      *gorm.DB
		service *AllocationService
	)

	BeforeEach(func() {
		ctx = context.Background()
		db = newTestDB()
		seedRelocationFixture(db)
		service = NewAllocationService(db, nil, zap.NewNop())
	})

	Describe("GetAllocationRecommendation", func() {
		It("places the whole business unit on the site with most capacity", func() {
			resp, err := service.GetAllocationRecommendation(ctx, "cp_SRCF1")
			Expect(err).NotTo(HaveOccurred())

			Expect(resp.ClosurePlan.ID).To(Equal("cp_SRCF1"))
			Expect(resp.ClosurePlan.SiteName).To(Equal("Source Site"))
			Expect(resp.ClosurePlan.FloorName).To(Equal("Floor 1"))
			Expect(resp.ClosurePlan.ClosureDate).To(Equal("2025-11-15"))
			Expect(resp.ClosurePlan.RegionCode).To(Equal("R"))

			Expect(resp.OccupancyBreakdown).To(HaveLen(2))
			Expect(resp.OccupancyBreakdown[0].ProjectCode).To(Equal("P1"))
			Expect(resp.OccupancyBreakdown[0].Seats).To(Equal(40))
			Expect(resp.OccupancyBreakdown[1].ProjectCode).To(Equal("P2"))

			Expect(resp.ByBusinessUnit).To(HaveLen(1))
			Expect(resp.ByBusinessUnit[0].BusinessUnit).To(Equal("Voice"))
			Expect(resp.ByBusinessUnit[0].TotalSeats).To(Equal(70))

			Expect(resp.Recommendations).To(HaveLen(2))
			first := resp.Recommendations[0]
			Expect(first.TargetSiteID).To(Equal("site_T1"))
			Expect(first.AvailableCapacity).To(Equal(90))
			Expect(first.RecommendedAllocation).To(Equal(70))
			Expect(first.AllocatedProjects).To(Equal([]string{"P1", "P2"}))
			Expect(first.AllocatedBusinessUnits).To(Equal([]string{"Voice"}))
			Expect(first.NewUtilization).To(Equal(80.0))
			Expect(first.RiskStatus).To(Equal(RiskStatusOK))

			second := resp.Recommendations[1]
			Expect(second.TargetSiteID).To(Equal("site_T2"))
			Expect(second.RecommendedAllocation).To(Equal(0))

			Expect(resp.TotalAllocated).To(Equal(70))
			Expect(resp.UnseatedStaff).To(Equal(0))
			Expect(resp.UnseatedProjects).To(BeEmpty())
		})

		It("classifies risk on the raw utilization, not the rounded one", func() {
			// T1 容量放大到 10000, 已占 9426; 安置 70 人后原始占用率是 94.96,
			// 展示值四舍五入成 95.0, 但分级仍应是 WARNING 而不是 RISK
			Expect(db.Model(&portal.ZoneCapacity{}).
				Where("zone_id = ? AND year_month = ?", "zone_T1A", "2025-11").
				Update("capacity", 10000).Error).NotTo(HaveOccurred())
			Expect(db.Model(&portal.ProjectAssignment{}).
				Where("zone_id = ?", "zone_T1A").
				Update("seats", 9426).Error).NotTo(HaveOccurred())

			resp, err := service.GetAllocationRecommendation(ctx, "cp_SRCF1")
			Expect(err).NotTo(HaveOccurred())

			first := resp.Recommendations[0]
			Expect(first.TargetSiteID).To(Equal("site_T1"))
			Expect(first.RecommendedAllocation).To(Equal(70))
			Expect(first.NewUtilization).To(Equal(95.0))
			Expect(first.RiskStatus).To(Equal(RiskStatusWarning))
		})

		It("recommends a stable closure month when capacity holds through December", func() {
			resp, err := service.GetAllocationRecommendation(ctx, "cp_SRCF1")
			Expect(err).NotTo(HaveOccurred())

			rec := resp.DateRecommendation
			Expect(rec).NotTo(BeNil())
			Expect(rec.HasCapacity).To(BeTrue())
			Expect(rec.CapacityAvailable).To(Equal(130))
			Expect(rec.StableThrough).To(HaveValue(Equal("2025-12")))
			Expect(rec.Reason).To(Equal("Capacity available and stable through year-end"))
		})

		It("excludes floors already closed by the target month", func() {
			// T1 的楼层也计划在 2025-11 关闭, 候选容量只剩 T2
			mustCreate(db, &portal.ClosurePlan{
				ID:            "cp_T1F1",
				FloorID:       "floor_T1F1",
				ClosureDate:   portal.PortalTime(time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)),
				YearMonth:     "2025-11",
				SeatsAffected: 0,
				Status:        portal.ClosurePlanStatusPlanned,
			})

			resp, err := service.GetAllocationRecommendation(ctx, "cp_SRCF1")
			Expect(err).NotTo(HaveOccurred())

			Expect(resp.Recommendations).To(HaveLen(1))
			Expect(resp.Recommendations[0].TargetSiteID).To(Equal("site_T2"))
			// 70 座整体放不下, 退化为按项目安置: P1=40 正好占满, P2=30 落空
			Expect(resp.Recommendations[0].AllocatedProjects).To(Equal([]string{"P1"}))
			Expect(resp.TotalAllocated).To(Equal(40))
			Expect(resp.UnseatedStaff).To(Equal(30))
			Expect(resp.UnseatedProjects).To(HaveLen(1))
			Expect(resp.UnseatedProjects[0].ProjectCode).To(Equal("P2"))
		})

		It("returns a bad request error for an empty id", func() {
			_, err := service.GetAllocationRecommendation(ctx, "")
			Expect(IsBadRequest(err)).To(BeTrue())
		})

		It("returns a not found error for an unknown plan", func() {
			_, err := service.GetAllocationRecommendation(ctx, "cp_MISSING")
			Expect(IsNotFound(err)).To(BeTrue())
		})
	})

	Describe("SaveAllocations", func() {
		It("replaces previous allocations on re-save", func() {
			req := &SaveAllocationsRequest{
				ClosurePlanID: "cp_SRCF1",
				Allocations: []AllocationInput{
					{TargetZoneID: "zone_T1A", AllocatedSeats: 40},
					{TargetZoneID: "zone_T2A", AllocatedSeats: 30, IsManual: true},
				},
			}
			Expect(service.SaveAllocations(ctx, req)).To(Succeed())

			var count int64
			Expect(db.Model(&portal.Allocation{}).Where("closure_plan_id = ?", "cp_SRCF1").Count(&count).Error).NotTo(HaveOccurred())
			Expect(count).To(Equal(int64(2)))

			req.Allocations = req.Allocations[:1]
			Expect(service.SaveAllocations(ctx, req)).To(Succeed())

			Expect(db.Model(&portal.Allocation{}).Where("closure_plan_id = ?", "cp_SRCF1").Count(&count).Error).NotTo(HaveOccurred())
			Expect(count).To(Equal(int64(1)))

			var row portal.Allocation
			Expect(db.First(&row, "closure_plan_id = ?", "cp_SRCF1").Error).NotTo(HaveOccurred())
			Expect(row.TargetZoneID).To(Equal("zone_T1A"))
			Expect(row.AllocatedSeats).To(Equal(40))
		})

		It("rejects an unknown closure plan", func() {
			err := service.SaveAllocations(ctx, &SaveAllocationsRequest{ClosurePlanID: "cp_MISSING"})
			Expect(IsNotFound(err)).To(BeTrue())
		})

		It("rejects an empty request", func() {
			Expect(IsBadRequest(service.SaveAllocations(ctx, nil))).To(BeTrue())
			Expect(IsBadRequest(service.SaveAllocations(ctx, &SaveAllocationsRequest{}))).To(BeTrue())
		})
	})
})
