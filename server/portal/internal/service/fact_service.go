package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mohamedn-hafez/CapcityControl/models/portal"
	"github.com/mohamedn-hafez/CapcityControl/pkg/redis"
)

// FactRedisInterface 定义 FactService 所需的 Redis 方法
type FactRedisInterface interface {
	ScanKeys(pattern string) ([]string, error)
	Delete(keys ...string)
	Pub(channel string, message string) error
}

// FactService 事实表服务, 维护分区月度容量与项目座位分配.
// 写入后清除相关区域的容量缓存并广播变更.
type FactService struct {
	db           *gorm.DB
	redisHandler FactRedisInterface
	logger       *zap.Logger
}

// NewFactService 创建事实表服务实例. redisHandler 可以为 nil.
func NewFactService(db *gorm.DB, redisHandler FactRedisInterface, logger *zap.Logger) *FactService {
	return &FactService{db: db, redisHandler: redisHandler, logger: logger}
}

// regionOfZone 由分区回溯所属区域ID, 用于缓存失效.
func (s *FactService) regionOfZone(ctx context.Context, zoneID string) (string, error) {
	var zone portal.Zone
	err := s.db.WithContext(ctx).
		Preload("Floor").
		Preload("Floor.Site").
		First(&zone, "id = ?", zoneID).Error
	if err != nil {
		return EmptyString, err
	}
	if zone.Floor == nil || zone.Floor.Site == nil {
		return EmptyString, nil
	}
	return zone.Floor.Site.RegionID, nil
}

// notifyCapacityChange 清除区域容量缓存并广播变更消息.
func (s *FactService) notifyCapacityChange(ctx context.Context, zoneID, yearMonth string) {
	if s.redisHandler == nil {
		return
	}
	regionID, err := s.regionOfZone(ctx, zoneID)
	if err != nil || regionID == EmptyString {
		return
	}
	if keys, err := s.redisHandler.ScanKeys(redis.RegionCapacityPattern(regionID)); err == nil && len(keys) > 0 {
		s.redisHandler.Delete(keys...)
	}
	_ = s.redisHandler.Pub(redis.ChannelCapacityUpdates, fmt.Sprintf("%s:%s", regionID, yearMonth))
}

// ListZoneCapacities 按月列出容量记录(月份可空表示全部), 连带分区/楼层/站点.
func (s *FactService) ListZoneCapacities(ctx context.Context, yearMonth string) ([]portal.ZoneCapacity, error) {
	query := s.db.WithContext(ctx).
		Preload("Zone").
		Preload("Zone.Floor").
		Preload("Zone.Floor.Site").
		Order("year_month asc, zone_id asc")
	if yearMonth != EmptyString {
		query = query.Where("year_month = ?", yearMonth)
	}
	var capacities []portal.ZoneCapacity
	err := query.Find(&capacities).Error
	return capacities, err
}

// UpsertZoneCapacity 写入分区月度容量, 冲突时按自然键更新.
func (s *FactService) UpsertZoneCapacity(ctx context.Context, req *ZoneCapacityRequest) (*portal.ZoneCapacity, error) {
	row := portal.ZoneCapacity{
		ZoneID:    req.ZoneID,
		YearMonth: req.YearMonth,
		Capacity:  req.Capacity,
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "zone_id"}, {Name: "year_month"}},
		DoUpdates: clause.AssignmentColumns([]string{"capacity", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return nil, err
	}
	s.notifyCapacityChange(ctx, req.ZoneID, req.YearMonth)
	return &row, nil
}

// DeleteZoneCapacity 删除容量记录.
func (s *FactService) DeleteZoneCapacity(ctx context.Context, id int64) error {
	result := s.db.WithContext(ctx).Delete(&portal.ZoneCapacity{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return NewNotFoundError(ResourceZoneCapacity, fmt.Sprintf("%d", id))
	}
	return nil
}

// ListProjectAssignments 按月分页列出分配记录(月份可空表示全部), 连带项目/客户/业务单元.
func (s *FactService) ListProjectAssignments(ctx context.Context, yearMonth string, page *PaginationRequest) (*PaginationResponseWithData[portal.ProjectAssignment], error) {
	page.AdjustPagination()

	base := s.db.WithContext(ctx).Model(&portal.ProjectAssignment{})
	if yearMonth != EmptyString {
		base = base.Where("year_month = ?", yearMonth)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	var assignments []portal.ProjectAssignment
	err := base.Session(&gorm.Session{}).
		Preload("Zone").
		Preload("Zone.Floor").
		Preload("Zone.Floor.Site").
		Preload("Project").
		Preload("Project.Client").
		Preload("Queue").
		Order("year_month asc, zone_id asc").
		Offset(page.GetOffset()).
		Limit(page.Size).
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return ToPaginationResponseWithData(page, total, assignments), nil
}

// UpsertProjectAssignment 写入项目座位分配, 冲突时按自然键更新.
func (s *FactService) UpsertProjectAssignment(ctx context.Context, req *ProjectAssignmentRequest) (*portal.ProjectAssignment, error) {
	row := portal.ProjectAssignment{
		ZoneID:    req.ZoneID,
		ProjectID: req.ProjectID,
		QueueID:   req.QueueID,
		YearMonth: req.YearMonth,
		Seats:     req.Seats,
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "zone_id"}, {Name: "project_id"}, {Name: "year_month"}},
		DoUpdates: clause.AssignmentColumns([]string{"seats", "queue_id", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return nil, err
	}
	s.notifyCapacityChange(ctx, req.ZoneID, req.YearMonth)
	return &row, nil
}

// DeleteProjectAssignment 删除分配记录.
func (s *FactService) DeleteProjectAssignment(ctx context.Context, id int64) error {
	result := s.db.WithContext(ctx).Delete(&portal.ProjectAssignment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return NewNotFoundError(ResourceProjectAssignment, fmt.Sprintf("%d", id))
	}
	return nil
}

// CopyMonthData 把源月份的容量/分配事实整体复制到目标月份, 逐条幂等写入.
func (s *FactService) CopyMonthData(ctx context.Context, req *CopyMonthDataRequest) (*CopyMonthDataResponse, error) {
	if req == nil || req.SourceMonth == EmptyString || req.TargetMonth == EmptyString {
		return nil, NewBadRequestError(ErrMonthPairRequired)
	}

	copyCapacity := req.CopyCapacity == nil || *req.CopyCapacity
	copyAssignments := req.CopyAssignments == nil || *req.CopyAssignments

	resp := &CopyMonthDataResponse{
		SourceMonth: req.SourceMonth,
		TargetMonth: req.TargetMonth,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if copyCapacity {
			var sourceCapacities []portal.ZoneCapacity
			if err := tx.Where("year_month = ?", req.SourceMonth).Find(&sourceCapacities).Error; err != nil {
				return err
			}
			for _, cap := range sourceCapacities {
				row := portal.ZoneCapacity{
					ZoneID:    cap.ZoneID,
					YearMonth: req.TargetMonth,
					Capacity:  cap.Capacity,
				}
				if err := tx.Clauses(clause.OnConflict{
					Columns:   []clause.Column{{Name: "zone_id"}, {Name: "year_month"}},
					DoUpdates: clause.AssignmentColumns([]string{"capacity", "updated_at"}),
				}).Create(&row).Error; err != nil {
					return err
				}
				resp.CapacitiesCopied++
			}
		}

		if copyAssignments {
			var sourceAssignments []portal.ProjectAssignment
			if err := tx.Where("year_month = ?", req.SourceMonth).Find(&sourceAssignments).Error; err != nil {
				return err
			}
			for _, assign := range sourceAssignments {
				row := portal.ProjectAssignment{
					ZoneID:    assign.ZoneID,
					ProjectID: assign.ProjectID,
					QueueID:   assign.QueueID,
					YearMonth: req.TargetMonth,
					Seats:     assign.Seats,
				}
				if err := tx.Clauses(clause.OnConflict{
					Columns:   []clause.Column{{Name: "zone_id"}, {Name: "project_id"}, {Name: "year_month"}},
					DoUpdates: clause.AssignmentColumns([]string{"seats", "queue_id", "updated_at"}),
				}).Create(&row).Error; err != nil {
					return err
				}
				resp.AssignmentsCopied++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.redisHandler != nil {
		_ = s.redisHandler.Pub(redis.ChannelCapacityUpdates, fmt.Sprintf("copy:%s:%s", req.SourceMonth, req.TargetMonth))
	}

	s.logger.Info(LogMsgCopyMonthDone,
		zap.String("sourceMonth", req.SourceMonth),
		zap.String("targetMonth", req.TargetMonth),
		zap.Int("capacities", resp.CapacitiesCopied),
		zap.Int("assignments", resp.AssignmentsCopied))
	return resp, nil
}
