package service

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mohamedn-hafez/CapcityControl/models/portal"
)

var _ = Describe("CatalogService", func() {
	var (
		ctx     context.Context
		db      *gorm.DB
		service *CatalogService
	)

	BeforeEach(func() {
		ctx = context.Background()
		db = newTestDB()
		service = NewCatalogService(db, zap.NewNop())
	})

	It("creates the catalog hierarchy with derived ids", func() {
		region, err := service.CreateRegion(ctx, &RegionRequest{Code: "RIYADH", Name: "Riyadh", Country: "Saudi Arabia"})
		Expect(err).NotTo(HaveOccurred())
		Expect(region.ID).To(Equal("reg_RIYADH"))

		site, err := service.CreateSite(ctx, &SiteRequest{
			Code:        "HUR",
			Name:        "Hurghada",
			RegionID:    region.ID,
			OpeningDate: "2023-05-01",
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(site.ID).To(Equal("site_HUR"))
		Expect(site.Status).To(Equal(portal.SiteStatusActive))
		Expect(site.OpeningDate).NotTo(BeNil())
		Expect(site.OpeningDate.String()).To(Equal("2023-05-01"))

		floor, err := service.CreateFloor(ctx, &FloorRequest{Code: "F2", Name: "Second Floor", SiteID: site.ID})
		Expect(err).NotTo(HaveOccurred())
		// 楼层主键由站点编码与楼层编码拼接
		Expect(floor.ID).To(Equal("floor_HURF2"))

		zone, err := service.CreateZone(ctx, &ZoneRequest{
			Code: "A", Name: "Zone A", SiteFloorZoneCode: "HURF2A", FloorID: floor.ID,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(zone.ID).To(Equal("zone_HURF2A"))

		client, err := service.CreateClient(ctx, &ClientRequest{Code: "ALPHA", Name: "Alpha Corp"})
		Expect(err).NotTo(HaveOccurred())
		Expect(client.ID).To(Equal("client_ALPHA"))

		project, err := service.CreateProject(ctx, &ProjectRequest{Code: "CARE", ClientID: client.ID})
		Expect(err).NotTo(HaveOccurred())
		Expect(project.ID).To(Equal("proj_CARE"))

		queue, err := service.CreateQueue(ctx, &QueueRequest{Code: "VOICE", Name: "Voice"})
		Expect(err).NotTo(HaveOccurred())
		Expect(queue.ID).To(Equal("queue_VOICE"))
	})

	It("rejects a floor for an unknown site", func() {
		_, err := service.CreateFloor(ctx, &FloorRequest{Code: "F1", Name: "Floor", SiteID: "site_NOPE"})
		Expect(IsNotFound(err)).To(BeTrue())
	})

	It("rejects a malformed opening date", func() {
		mustCreate(db, &portal.Region{ID: "reg_R", Code: "R", Name: "R"})
		_, err := service.CreateSite(ctx, &SiteRequest{
			Code: "X", Name: "X", RegionID: "reg_R", OpeningDate: "01/05/2023",
		})
		Expect(IsBadRequest(err)).To(BeTrue())
	})

	It("updates and deletes a region", func() {
		region, err := service.CreateRegion(ctx, &RegionRequest{Code: "R", Name: "Old"})
		Expect(err).NotTo(HaveOccurred())

		updated, err := service.UpdateRegion(ctx, region.ID, &RegionRequest{Code: "R", Name: "New", Country: "Egypt"})
		Expect(err).NotTo(HaveOccurred())
		Expect(updated.Name).To(Equal("New"))
		Expect(updated.Country).To(Equal("Egypt"))

		Expect(service.DeleteRegion(ctx, region.ID)).To(Succeed())
		Expect(IsNotFound(service.DeleteRegion(ctx, region.ID))).To(BeTrue())
	})

	It("returns sites with their floor and zone tree", func() {
		seedRelocationFixture(db)

		sites, err := service.ListSitesWithTree(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(sites).To(HaveLen(3))

		// 按名称升序: Source Site, Target One, Target Two
		Expect(sites[0].Name).To(Equal("Source Site"))
		Expect(sites[0].Floors).To(HaveLen(1))
		Expect(sites[0].Floors[0].Zones).To(HaveLen(1))
		Expect(sites[0].Region).NotTo(BeNil())
	})
})
