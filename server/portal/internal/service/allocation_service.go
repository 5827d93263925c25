package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mohamedn-hafez/CapcityControl/models/portal"
	"github.com/mohamedn-hafez/CapcityControl/pkg/redis"
)

// RedisHandlerInterface 定义 AllocationService 所需的 Redis 方法
type RedisHandlerInterface interface {
	Get(key string) (string, error)
	SetWithExpireTime(key string, value string, expiry time.Duration) error
	Delete(keys ...string)
	AcquireLock(key string, value string, expiry time.Duration) (isSuccess bool, err error)
	ScanKeys(pattern string) ([]string, error)
}

// AllocationService 搬迁安置服务
type AllocationService struct {
	db           *gorm.DB
	redisHandler RedisHandlerInterface
	logger       *zap.Logger
}

// NewAllocationService 创建搬迁安置服务实例.
// redisHandler 可以为 nil, 此时容量汇总不走缓存, 保存分配不加分布式锁.
func NewAllocationService(db *gorm.DB, redisHandler RedisHandlerInterface, logger *zap.Logger) *AllocationService {
	return &AllocationService{
		db:           db,
		redisHandler: redisHandler,
		logger:       logger,
	}
}

// loadCandidateSites 加载同区域内除源站点外的 ACTIVE 站点,
// 连带目标月份的容量记录/项目占用与 PLANNED 关闭计划.
func (s *AllocationService) loadCandidateSites(ctx context.Context, regionID, sourceSiteID, yearMonth string) ([]portal.Site, error) {
	var sites []portal.Site
	err := s.db.WithContext(ctx).
		Where("status = ? AND id <> ? AND region_id = ?", portal.SiteStatusActive, sourceSiteID, regionID).
		Preload("Region").
		Preload("Floors").
		Preload("Floors.Zones").
		Preload("Floors.Zones.ZoneCapacities", "year_month = ?", yearMonth).
		Preload("Floors.Zones.ProjectAssignments", "year_month = ?", yearMonth).
		Preload("Floors.ClosurePlans", "status = ? AND year_month <= ?", portal.ClosurePlanStatusPlanned, yearMonth).
		Find(&sites).Error
	if err != nil {
		return nil, err
	}
	return sites, nil
}

// regionCapacityForMonth 计算区域某月可用容量, 命中缓存时直接返回.
func (s *AllocationService) regionCapacityForMonth(ctx context.Context, regionID, sourceSiteID, yearMonth string) (int, error) {
	cacheKey := redis.RegionCapacityKey(regionID, sourceSiteID, yearMonth)
	if s.redisHandler != nil {
		if cached, err := s.redisHandler.Get(cacheKey); err == nil {
			if total, convErr := strconv.Atoi(cached); convErr == nil {
				s.logger.Debug(LogMsgCapacityCacheHit,
					zap.String("regionId", regionID),
					zap.String("yearMonth", yearMonth))
				return total, nil
			}
		}
	}

	sites, err := s.loadCandidateSites(ctx, regionID, sourceSiteID, yearMonth)
	if err != nil {
		return 0, err
	}
	total := ComputeRegionAvailable(sites, yearMonth)

	if s.redisHandler != nil {
		_ = s.redisHandler.SetWithExpireTime(cacheKey, strconv.Itoa(total), 10*time.Minute)
	}
	return total, nil
}

// InvalidateRegionCapacity 清除区域容量缓存, 事实表写入后调用.
func (s *AllocationService) InvalidateRegionCapacity(regionID string) {
	if s.redisHandler == nil {
		return
	}
	keys, err := s.redisHandler.ScanKeys(redis.RegionCapacityPattern(regionID))
	if err != nil || len(keys) == 0 {
		return
	}
	s.redisHandler.Delete(keys...)
	s.logger.Info(LogMsgCapacityCacheInvalid, zap.String("regionId", regionID), zap.Int("keys", len(keys)))
}

// GetAllocationRecommendation 为关闭计划生成完整的安置推荐.
func (s *AllocationService) GetAllocationRecommendation(ctx context.Context, closurePlanID string) (*AllocationRecommendationResponse, error) {
	if closurePlanID == EmptyString {
		return nil, NewBadRequestError(ErrClosurePlanRequired)
	}

	s.logger.Info(LogMsgRecommendationStart, zap.String("closurePlanId", closurePlanID))

	var plan portal.ClosurePlan
	err := s.db.WithContext(ctx).
		Preload("Floor").
		Preload("Floor.Site").
		Preload("Floor.Site.Region").
		Preload("Floor.Zones").
		Preload("Floor.Zones.ProjectAssignments").
		Preload("Floor.Zones.ProjectAssignments.Project").
		Preload("Floor.Zones.ProjectAssignments.Project.Client").
		Preload("Floor.Zones.ProjectAssignments.Queue").
		First(&plan, "id = ?", closurePlanID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError(ResourceClosurePlan, closurePlanID)
		}
		return nil, err
	}
	if plan.Floor == nil || plan.Floor.Site == nil {
		return nil, NewNotFoundError(ResourceFloor, plan.FloorID)
	}

	sourceSite := plan.Floor.Site
	sourceRegionID := sourceSite.RegionID

	occupancy := BuildOccupancyBreakdown(plan.Floor.Zones, plan.YearMonth)
	buGroups := GroupByBusinessUnit(occupancy)

	sites, err := s.loadCandidateSites(ctx, sourceRegionID, sourceSite.ID, plan.YearMonth)
	if err != nil {
		return nil, err
	}
	siteCaps := ComputeSiteCapacities(sites, plan.YearMonth)

	placement := PlaceBusinessUnits(siteCaps, buGroups)

	capacityFor := func(ctx context.Context, yearMonth string) (int, error) {
		return s.regionCapacityForMonth(ctx, sourceRegionID, sourceSite.ID, yearMonth)
	}
	dateRec, err := FindStableClosureMonth(ctx, plan.SeatsAffected, plan.YearMonth, capacityFor)
	if err != nil {
		return nil, err
	}

	recommendations := make([]SiteRecommendation, 0, len(siteCaps))
	for _, site := range siteCaps {
		if site.AvailableCapacity <= 0 {
			continue
		}
		alloc := placement.SiteAllocations[site.SiteID]
		rawUtilization := RawUtilization(site.TotalOccupied+alloc.Seats, site.TotalCapacity)
		recommendations = append(recommendations, SiteRecommendation{
			TargetSiteID:           site.SiteID,
			TargetSiteName:         site.SiteName,
			TargetSiteCode:         site.SiteCode,
			TargetRegion:           site.RegionName,
			AvailableCapacity:      site.AvailableCapacity,
			RecommendedAllocation:  alloc.Seats,
			AllocatedProjects:      alloc.Projects,
			AllocatedBusinessUnits: alloc.BusinessUnits,
			NewUtilization:         RoundUtilization(rawUtilization),
			RiskStatus:             RiskStatus(rawUtilization, false),
			IsEditable:             true,
			FloorBreakdown:         site.FloorBreakdown,
		})
	}

	zoneNames := make([]string, 0, len(plan.Floor.Zones))
	for _, z := range plan.Floor.Zones {
		zoneNames = append(zoneNames, z.Name)
	}

	resp := &AllocationRecommendationResponse{
		ClosurePlan: ClosurePlanHeader{
			ID:            plan.ID,
			SiteName:      sourceSite.Name,
			FloorName:     plan.Floor.Name,
			ZoneNames:     strings.Join(zoneNames, ", "),
			ClosureDate:   plan.ClosureDate.String(),
			SeatsAffected: plan.SeatsAffected,
			RegionCode:    sourceSite.Region.Code,
			RegionName:    sourceSite.Region.Name,
		},
		OccupancyBreakdown: occupancy,
		ByBusinessUnit:     buGroups,
		Recommendations:    recommendations,
		AllocatedProjects:  placement.AllocatedProjects,
		UnseatedProjects:   placement.UnseatedProjects,
		TotalAllocated:     placement.TotalAllocated,
		UnseatedStaff:      placement.TotalUnseated,
		DateRecommendation: dateRec,
	}

	s.logger.Info(LogMsgRecommendationDone,
		zap.String("closurePlanId", closurePlanID),
		zap.Int("totalAllocated", placement.TotalAllocated),
		zap.Int("unseated", placement.TotalUnseated))
	return resp, nil
}

// SaveAllocations 持久化选定的分配方案, 先删后插保证幂等.
func (s *AllocationService) SaveAllocations(ctx context.Context, req *SaveAllocationsRequest) error {
	if req == nil || req.ClosurePlanID == EmptyString {
		return NewBadRequestError(ErrClosurePlanRequired)
	}

	var plan portal.ClosurePlan
	if err := s.db.WithContext(ctx).First(&plan, "id = ?", req.ClosurePlanID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewNotFoundError(ResourceClosurePlan, req.ClosurePlanID)
		}
		return err
	}

	if s.redisHandler != nil {
		lockKey := redis.ClosurePlanLockKey(plan.FloorID, plan.YearMonth)
		ok, err := s.redisHandler.AcquireLock(lockKey, req.ClosurePlanID, redis.LockClosurePlanTTLSeconds*time.Second)
		if err == nil && !ok {
			return NewBadRequestError(fmt.Sprintf("closure plan %s is being saved by another request", req.ClosurePlanID))
		}
		if err == nil {
			defer s.redisHandler.Delete(lockKey)
		}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("closure_plan_id = ?", req.ClosurePlanID).Delete(&portal.Allocation{}).Error; err != nil {
			return err
		}
		for _, input := range req.Allocations {
			row := portal.Allocation{
				ClosurePlanID:  req.ClosurePlanID,
				TargetZoneID:   input.TargetZoneID,
				AllocatedSeats: input.AllocatedSeats,
				IsManual:       input.IsManual,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info(LogMsgAllocationsSaved,
		zap.String("closurePlanId", req.ClosurePlanID),
		zap.Int("rows", len(req.Allocations)))
	return nil
}
