package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mohamedn-hafez/CapcityControl/models/portal"
)

// ClosureService 关闭计划服务
type ClosureService struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewClosureService 创建关闭计划服务实例
func NewClosureService(db *gorm.DB, logger *zap.Logger) *ClosureService {
	return &ClosureService{db: db, logger: logger}
}

// ListClosures 列出全部关闭计划, 按关闭日期升序, 连带已保存的安置汇总.
func (s *ClosureService) ListClosures(ctx context.Context) ([]ClosureItem, error) {
	var plans []portal.ClosurePlan
	err := s.db.WithContext(ctx).
		Preload("Floor").
		Preload("Floor.Site").
		Preload("Floor.Site.Region").
		Preload("Floor.Zones").
		Preload("Allocations").
		Preload("Allocations.TargetZone").
		Preload("Allocations.TargetZone.Floor").
		Preload("Allocations.TargetZone.Floor.Site").
		Order("closure_date asc").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}

	items := make([]ClosureItem, 0, len(plans))
	for i := range plans {
		cp := &plans[i]
		item := ClosureItem{
			ID:            cp.ID,
			FloorID:       cp.FloorID,
			ClosureDate:   cp.ClosureDate.String(),
			YearMonth:     cp.YearMonth,
			SeatsAffected: cp.SeatsAffected,
			Status:        cp.Status,
			Allocations:   make([]ClosureAllocationItem, 0, len(cp.Allocations)),
		}
		if cp.Floor != nil {
			item.FloorName = cp.Floor.Name
			item.ZoneCount = len(cp.Floor.Zones)
			names := make([]string, 0, len(cp.Floor.Zones))
			for _, z := range cp.Floor.Zones {
				names = append(names, z.Name)
			}
			item.ZoneNames = strings.Join(names, ", ")
			if cp.Floor.Site != nil {
				item.SiteID = cp.Floor.Site.ID
				item.SiteName = cp.Floor.Site.Name
				item.SiteCode = cp.Floor.Site.Code
				if cp.Floor.Site.Region != nil {
					item.RegionCode = cp.Floor.Site.Region.Code
					item.RegionName = cp.Floor.Site.Region.Name
				}
			}
		}
		for _, a := range cp.Allocations {
			allocItem := ClosureAllocationItem{
				ID:             a.ID,
				TargetZoneID:   a.TargetZoneID,
				AllocatedSeats: a.AllocatedSeats,
				IsManual:       a.IsManual,
			}
			if a.TargetZone != nil && a.TargetZone.Floor != nil && a.TargetZone.Floor.Site != nil {
				allocItem.TargetSiteID = a.TargetZone.Floor.Site.ID
				allocItem.TargetSiteName = a.TargetZone.Floor.Site.Name
			}
			item.TotalAllocated += a.AllocatedSeats
			item.Allocations = append(item.Allocations, allocItem)
		}
		item.UnseatedStaff = cp.SeatsAffected - item.TotalAllocated
		items = append(items, item)
	}
	return items, nil
}

// CreateClosure 创建关闭计划. 关闭月份由关闭日期导出;
// 未给出受影响座位数时按楼层当月项目占用合计推导.
func (s *ClosureService) CreateClosure(ctx context.Context, req *CreateClosureRequest) (*portal.ClosurePlan, error) {
	if req == nil || req.FloorID == EmptyString || req.ClosureDate == EmptyString {
		return nil, NewBadRequestError(ErrFloorDateRequired)
	}

	closureDate, err := time.Parse(time.DateOnly, req.ClosureDate)
	if err != nil {
		return nil, NewBadRequestError(fmt.Sprintf("invalid closureDate: %s", req.ClosureDate))
	}
	yearMonth := closureDate.Format("2006-01")

	var floor portal.Floor
	err = s.db.WithContext(ctx).
		Preload("Site").
		Preload("Zones").
		Preload("Zones.ProjectAssignments", "year_month = ?", yearMonth).
		First(&floor, "id = ?", req.FloorID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError(ResourceFloor, req.FloorID)
		}
		return nil, err
	}
	if floor.Site == nil {
		return nil, NewNotFoundError(ResourceSite, floor.SiteID)
	}

	seats := req.SeatsAffected
	if seats == 0 {
		for _, zone := range floor.Zones {
			for _, pa := range zone.ProjectAssignments {
				seats += pa.Seats
			}
		}
	}

	plan := portal.ClosurePlan{
		ID:            fmt.Sprintf("cp_%s%s", floor.Site.Code, floor.Code),
		FloorID:       req.FloorID,
		ClosureDate:   portal.PortalTime(closureDate),
		YearMonth:     yearMonth,
		SeatsAffected: seats,
		Status:        portal.ClosurePlanStatusPlanned,
	}
	if err := s.db.WithContext(ctx).Create(&plan).Error; err != nil {
		return nil, err
	}

	s.logger.Info("Closure plan created",
		zap.String("closurePlanId", plan.ID),
		zap.String("floorId", plan.FloorID),
		zap.String("yearMonth", plan.YearMonth),
		zap.Int("seatsAffected", plan.SeatsAffected))
	return &plan, nil
}

// DeleteClosure 删除关闭计划及其安置记录.
func (s *ClosureService) DeleteClosure(ctx context.Context, id string) error {
	if id == EmptyString {
		return NewBadRequestError("id required")
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("closure_plan_id = ?", id).Delete(&portal.Allocation{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&portal.ClosurePlan{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return NewNotFoundError(ResourceClosurePlan, id)
		}
		return nil
	})
}
