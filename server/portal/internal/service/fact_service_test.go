package service

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mohamedn-hafez/CapcityControl/models/portal"
)

var _ = Describe("FactService", func() {
	var (
		ctx     context.Context
		db      *gorm.DB
		service *FactService
	)

	boolPtr := func(v bool) *bool { return &v }

	BeforeEach(func() {
		ctx = context.Background()
		db = newTestDB()
		seedRelocationFixture(db)
		service = NewFactService(db, nil, zap.NewNop())
	})

	Describe("UpsertZoneCapacity", func() {
		It("updates in place on the same zone and month", func() {
			_, err := service.UpsertZoneCapacity(ctx, &ZoneCapacityRequest{
				ZoneID: "zone_T1A", YearMonth: "2025-11", Capacity: 120,
			})
			Expect(err).NotTo(HaveOccurred())

			var count int64
			Expect(db.Model(&portal.ZoneCapacity{}).
				Where("zone_id = ? AND year_month = ?", "zone_T1A", "2025-11").
				Count(&count).Error).NotTo(HaveOccurred())
			Expect(count).To(Equal(int64(1)))

			var row portal.ZoneCapacity
			Expect(db.First(&row, "zone_id = ? AND year_month = ?", "zone_T1A", "2025-11").Error).NotTo(HaveOccurred())
			Expect(row.Capacity).To(Equal(120))
		})
	})

	Describe("UpsertProjectAssignment", func() {
		It("updates seats on the same natural key", func() {
			_, err := service.UpsertProjectAssignment(ctx, &ProjectAssignmentRequest{
				ZoneID: "zone_SRCF1A", ProjectID: "proj_P1", QueueID: "queue_VOICE",
				YearMonth: "2025-11", Seats: 55,
			})
			Expect(err).NotTo(HaveOccurred())

			var count int64
			Expect(db.Model(&portal.ProjectAssignment{}).
				Where("zone_id = ? AND project_id = ? AND year_month = ?", "zone_SRCF1A", "proj_P1", "2025-11").
				Count(&count).Error).NotTo(HaveOccurred())
			Expect(count).To(Equal(int64(1)))

			var row portal.ProjectAssignment
			Expect(db.First(&row, "zone_id = ? AND project_id = ? AND year_month = ?",
				"zone_SRCF1A", "proj_P1", "2025-11").Error).NotTo(HaveOccurred())
			Expect(row.Seats).To(Equal(55))
		})
	})

	Describe("ListZoneCapacities", func() {
		It("filters by month when given", func() {
			capacities, err := service.ListZoneCapacities(ctx, "2025-11")
			Expect(err).NotTo(HaveOccurred())
			Expect(capacities).To(HaveLen(2))
			for _, c := range capacities {
				Expect(c.YearMonth).To(Equal("2025-11"))
				Expect(c.Zone).NotTo(BeNil())
			}

			all, err := service.ListZoneCapacities(ctx, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(HaveLen(4))
		})
	})

	Describe("ListProjectAssignments", func() {
		It("pages through the month with defaults applied", func() {
			page := &PaginationRequest{}
			resp, err := service.ListProjectAssignments(ctx, "2025-11", page)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Total).To(Equal(int64(4)))
			Expect(resp.Page).To(Equal(DefaultPage))
			Expect(resp.Size).To(Equal(DefaultSize))
			Expect(resp.Data).To(HaveLen(4))
			Expect(resp.Data[0].Project).NotTo(BeNil())
		})

		It("returns the requested slice", func() {
			resp, err := service.ListProjectAssignments(ctx, "2025-11", &PaginationRequest{Page: 2, Size: 3})
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Total).To(Equal(int64(4)))
			Expect(resp.Data).To(HaveLen(1))
		})

		It("lists all months when none given", func() {
			_, err := service.UpsertProjectAssignment(ctx, &ProjectAssignmentRequest{
				ZoneID: "zone_T1A", ProjectID: "proj_OCC", QueueID: "queue_VOICE",
				YearMonth: "2025-12", Seats: 10,
			})
			Expect(err).NotTo(HaveOccurred())

			resp, err := service.ListProjectAssignments(ctx, "", &PaginationRequest{Size: MaxSize})
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Total).To(Equal(int64(5)))
		})
	})

	Describe("CopyMonthData", func() {
		It("copies capacities and assignments to the target month", func() {
			resp, err := service.CopyMonthData(ctx, &CopyMonthDataRequest{
				SourceMonth: "2025-11",
				TargetMonth: "2026-01",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.CapacitiesCopied).To(Equal(2))
			Expect(resp.AssignmentsCopied).To(Equal(4))

			var count int64
			Expect(db.Model(&portal.ZoneCapacity{}).Where("year_month = ?", "2026-01").Count(&count).Error).NotTo(HaveOccurred())
			Expect(count).To(Equal(int64(2)))

			// 再跑一次应当幂等, 不产生重复行
			_, err = service.CopyMonthData(ctx, &CopyMonthDataRequest{
				SourceMonth: "2025-11",
				TargetMonth: "2026-01",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(db.Model(&portal.ZoneCapacity{}).Where("year_month = ?", "2026-01").Count(&count).Error).NotTo(HaveOccurred())
			Expect(count).To(Equal(int64(2)))
		})

		It("honors the copy switches", func() {
			resp, err := service.CopyMonthData(ctx, &CopyMonthDataRequest{
				SourceMonth:     "2025-11",
				TargetMonth:     "2026-02",
				CopyAssignments: boolPtr(false),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.CapacitiesCopied).To(Equal(2))
			Expect(resp.AssignmentsCopied).To(BeZero())

			var count int64
			Expect(db.Model(&portal.ProjectAssignment{}).Where("year_month = ?", "2026-02").Count(&count).Error).NotTo(HaveOccurred())
			Expect(count).To(BeZero())
		})

		It("requires both months", func() {
			_, err := service.CopyMonthData(ctx, &CopyMonthDataRequest{SourceMonth: "2025-11"})
			Expect(IsBadRequest(err)).To(BeTrue())
		})
	})

	Describe("DeleteZoneCapacity", func() {
		It("returns not found for an unknown id", func() {
			Expect(IsNotFound(service.DeleteZoneCapacity(ctx, 99999))).To(BeTrue())
		})

		It("deletes an existing row", func() {
			var row portal.ZoneCapacity
			Expect(db.First(&row, "zone_id = ? AND year_month = ?", "zone_T2A", "2025-12").Error).NotTo(HaveOccurred())
			Expect(service.DeleteZoneCapacity(ctx, row.ID)).To(Succeed())
			Expect(IsNotFound(service.DeleteZoneCapacity(ctx, row.ID))).To(BeTrue())
		})
	})
})
