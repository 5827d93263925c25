package service

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mohamedn-hafez/CapcityControl/models/portal"
)

var _ = Describe("ClosureService", func() {
	var (
		ctx     context.Context
		db      *gorm.DB
		service *ClosureService
	)

	BeforeEach(func() {
		ctx = context.Background()
		db = newTestDB()
		seedRelocationFixture(db)
		service = NewClosureService(db, zap.NewNop())
	})

	Describe("CreateClosure", func() {
		It("derives the closure month and affected seats from the floor", func() {
			// 先清掉既有计划, 否则同楼层的自然主键会冲突
			Expect(db.Delete(&portal.ClosurePlan{}, "id = ?", "cp_SRCF1").Error).NotTo(HaveOccurred())

			plan, err := service.CreateClosure(ctx, &CreateClosureRequest{
				FloorID:     "floor_SRCF1",
				ClosureDate: "2025-11-20",
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(plan.ID).To(Equal("cp_SRCF1"))
			Expect(plan.YearMonth).To(Equal("2025-11"))
			// 未显式给出时按楼层当月占用推导: 40 + 30
			Expect(plan.SeatsAffected).To(Equal(70))
			Expect(plan.Status).To(Equal(portal.ClosurePlanStatusPlanned))
		})

		It("keeps an explicitly provided seat count", func() {
			plan, err := service.CreateClosure(ctx, &CreateClosureRequest{
				FloorID:       "floor_T1F1",
				ClosureDate:   "2025-12-01",
				SeatsAffected: 25,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(plan.ID).To(Equal("cp_T1F1"))
			Expect(plan.YearMonth).To(Equal("2025-12"))
			Expect(plan.SeatsAffected).To(Equal(25))
		})

		It("rejects a malformed date", func() {
			_, err := service.CreateClosure(ctx, &CreateClosureRequest{
				FloorID:     "floor_SRCF1",
				ClosureDate: "20-11-2025",
			})
			Expect(IsBadRequest(err)).To(BeTrue())
		})

		It("rejects an unknown floor", func() {
			_, err := service.CreateClosure(ctx, &CreateClosureRequest{
				FloorID:     "floor_NOPE",
				ClosureDate: "2025-11-20",
			})
			Expect(IsNotFound(err)).To(BeTrue())
		})
	})

	Describe("ListClosures", func() {
		It("returns plans with allocation totals", func() {
			mustCreate(db, &portal.Allocation{ClosurePlanID: "cp_SRCF1", TargetZoneID: "zone_T1A", AllocatedSeats: 40})
			mustCreate(db, &portal.Allocation{ClosurePlanID: "cp_SRCF1", TargetZoneID: "zone_T2A", AllocatedSeats: 20})

			items, err := service.ListClosures(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(items).To(HaveLen(1))

			item := items[0]
			Expect(item.ID).To(Equal("cp_SRCF1"))
			Expect(item.SiteName).To(Equal("Source Site"))
			Expect(item.FloorName).To(Equal("Floor 1"))
			Expect(item.ZoneCount).To(Equal(1))
			Expect(item.TotalAllocated).To(Equal(60))
			Expect(item.UnseatedStaff).To(Equal(10))
			Expect(item.Allocations).To(HaveLen(2))
			names := []string{item.Allocations[0].TargetSiteName, item.Allocations[1].TargetSiteName}
			Expect(names).To(ConsistOf("Target One", "Target Two"))
		})
	})

	Describe("DeleteClosure", func() {
		It("removes the plan and its allocations", func() {
			mustCreate(db, &portal.Allocation{ClosurePlanID: "cp_SRCF1", TargetZoneID: "zone_T1A", AllocatedSeats: 40})

			Expect(service.DeleteClosure(ctx, "cp_SRCF1")).To(Succeed())

			var planCount, allocCount int64
			Expect(db.Model(&portal.ClosurePlan{}).Count(&planCount).Error).NotTo(HaveOccurred())
			Expect(db.Model(&portal.Allocation{}).Count(&allocCount).Error).NotTo(HaveOccurred())
			Expect(planCount).To(BeZero())
			Expect(allocCount).To(BeZero())
		})

		It("returns not found for an unknown id", func() {
			Expect(IsNotFound(service.DeleteClosure(ctx, "cp_MISSING"))).To(BeTrue())
		})

		It("rejects an empty id", func() {
			Expect(IsBadRequest(service.DeleteClosure(ctx, ""))).To(BeTrue())
		})
	})
})
