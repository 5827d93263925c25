package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mohamedn-hafez/CapcityControl/models/portal"
)

// CatalogService 维表目录服务, 提供区域/站点/楼层/分区/客户/项目/业务单元的增删改查.
// 自然主键在创建时按编码生成, 与种子数据保持同一套命名.
type CatalogService struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewCatalogService 创建维表目录服务实例
func NewCatalogService(db *gorm.DB, logger *zap.Logger) *CatalogService {
	return &CatalogService{db: db, logger: logger}
}

func parseOptionalDate(value string) (*portal.PortalTime, error) {
	if value == EmptyString {
		return nil, nil
	}
	parsed, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return nil, NewBadRequestError(fmt.Sprintf("invalid date: %s", value))
	}
	pt := portal.PortalTime(parsed)
	return &pt, nil
}

func (s *CatalogService) deleteByID(ctx context.Context, model interface{}, resource, id string) error {
	if id == EmptyString {
		return NewBadRequestError("id required")
	}
	result := s.db.WithContext(ctx).Delete(model, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return NewNotFoundError(resource, id)
	}
	return nil
}

// ListRegions 区域列表, 按名称升序.
func (s *CatalogService) ListRegions(ctx context.Context) ([]portal.Region, error) {
	var regions []portal.Region
	err := s.db.WithContext(ctx).Order("name asc").Find(&regions).Error
	return regions, err
}

// CreateRegion 创建区域.
func (s *CatalogService) CreateRegion(ctx context.Context, req *RegionRequest) (*portal.Region, error) {
	region := portal.Region{
		ID:      fmt.Sprintf("reg_%s", req.Code),
		Code:    req.Code,
		Name:    req.Name,
		Country: req.Country,
	}
	if err := s.db.WithContext(ctx).Create(&region).Error; err != nil {
		return nil, err
	}
	return &region, nil
}

// UpdateRegion 更新区域.
func (s *CatalogService) UpdateRegion(ctx context.Context, id string, req *RegionRequest) (*portal.Region, error) {
	var region portal.Region
	if err := s.db.WithContext(ctx).First(&region, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError(ResourceRegion, id)
		}
		return nil, err
	}
	region.Code = req.Code
	region.Name = req.Name
	region.Country = req.Country
	if err := s.db.WithContext(ctx).Save(&region).Error; err != nil {
		return nil, err
	}
	return &region, nil
}

// DeleteRegion 删除区域.
func (s *CatalogService) DeleteRegion(ctx context.Context, id string) error {
	return s.deleteByID(ctx, &portal.Region{}, ResourceRegion, id)
}

// ListSites 站点列表(含区域), 按名称升序.
func (s *CatalogService) ListSites(ctx context.Context) ([]portal.Site, error) {
	var sites []portal.Site
	err := s.db.WithContext(ctx).Preload("Region").Order("name asc").Find(&sites).Error
	return sites, err
}

// ListSitesWithTree 站点列表, 连带楼层与分区树, 按名称升序.
func (s *CatalogService) ListSitesWithTree(ctx context.Context) ([]portal.Site, error) {
	var sites []portal.Site
	err := s.db.WithContext(ctx).
		Preload("Region").
		Preload("Floors").
		Preload("Floors.Zones").
		Order("name asc").
		Find(&sites).Error
	return sites, err
}

// CreateSite 创建站点.
func (s *CatalogService) CreateSite(ctx context.Context, req *SiteRequest) (*portal.Site, error) {
	opening, err := parseOptionalDate(req.OpeningDate)
	if err != nil {
		return nil, err
	}
	closing, err := parseOptionalDate(req.ClosingDate)
	if err != nil {
		return nil, err
	}
	status := req.Status
	if status == EmptyString {
		status = portal.SiteStatusActive
	}
	site := portal.Site{
		ID:          fmt.Sprintf("site_%s", req.Code),
		Code:        req.Code,
		Name:        req.Name,
		RegionID:    req.RegionID,
		Status:      status,
		OpeningDate: opening,
		ClosingDate: closing,
	}
	if err := s.db.WithContext(ctx).Create(&site).Error; err != nil {
		return nil, err
	}
	return &site, nil
}

// UpdateSite 更新站点.
func (s *CatalogService) UpdateSite(ctx context.Context, id string, req *SiteRequest) (*portal.Site, error) {
	var site portal.Site
	if err := s.db.WithContext(ctx).First(&site, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError(ResourceSite, id)
		}
		return nil, err
	}
	opening, err := parseOptionalDate(req.OpeningDate)
	if err != nil {
		return nil, err
	}
	closing, err := parseOptionalDate(req.ClosingDate)
	if err != nil {
		return nil, err
	}
	site.Code = req.Code
	site.Name = req.Name
	site.RegionID = req.RegionID
	if req.Status != EmptyString {
		site.Status = req.Status
	}
	site.OpeningDate = opening
	site.ClosingDate = closing
	if err := s.db.WithContext(ctx).Save(&site).Error; err != nil {
		return nil, err
	}
	return &site, nil
}

// DeleteSite 删除站点.
func (s *CatalogService) DeleteSite(ctx context.Context, id string) error {
	return s.deleteByID(ctx, &portal.Site{}, ResourceSite, id)
}

// ListFloors 楼层列表(含站点), 按站点/名称升序.
func (s *CatalogService) ListFloors(ctx context.Context) ([]portal.Floor, error) {
	var floors []portal.Floor
	err := s.db.WithContext(ctx).Preload("Site").Order("site_id asc, name asc").Find(&floors).Error
	return floors, err
}

// CreateFloor 创建楼层, 主键由站点编码与楼层编码拼接.
func (s *CatalogService) CreateFloor(ctx context.Context, req *FloorRequest) (*portal.Floor, error) {
	var site portal.Site
	if err := s.db.WithContext(ctx).First(&site, "id = ?", req.SiteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError(ResourceSite, req.SiteID)
		}
		return nil, err
	}
	floor := portal.Floor{
		ID:     fmt.Sprintf("floor_%s%s", site.Code, req.Code),
		Code:   req.Code,
		Name:   req.Name,
		SiteID: req.SiteID,
	}
	if err := s.db.WithContext(ctx).Create(&floor).Error; err != nil {
		return nil, err
	}
	return &floor, nil
}

// UpdateFloor 更新楼层.
func (s *CatalogService) UpdateFloor(ctx context.Context, id string, req *FloorRequest) (*portal.Floor, error) {
	var floor portal.Floor
	if err := s.db.WithContext(ctx).First(&floor, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError(ResourceFloor, id)
		}
		return nil, err
	}
	floor.Code = req.Code
	floor.Name = req.Name
	floor.SiteID = req.SiteID
	if err := s.db.WithContext(ctx).Save(&floor).Error; err != nil {
		return nil, err
	}
	return &floor, nil
}

// DeleteFloor 删除楼层.
func (s *CatalogService) DeleteFloor(ctx context.Context, id string) error {
	return s.deleteByID(ctx, &portal.Floor{}, ResourceFloor, id)
}

// ListZones 分区列表(含楼层与站点), 按组合编码升序.
func (s *CatalogService) ListZones(ctx context.Context) ([]portal.Zone, error) {
	var zones []portal.Zone
	err := s.db.WithContext(ctx).
		Preload("Floor").
		Preload("Floor.Site").
		Order("site_floor_zone_code asc").
		Find(&zones).Error
	return zones, err
}

// CreateZone 创建分区, 主键由组合编码生成.
func (s *CatalogService) CreateZone(ctx context.Context, req *ZoneRequest) (*portal.Zone, error) {
	zone := portal.Zone{
		ID:                fmt.Sprintf("zone_%s", req.SiteFloorZoneCode),
		Code:              req.Code,
		Name:              req.Name,
		SiteFloorZoneCode: req.SiteFloorZoneCode,
		FloorID:           req.FloorID,
	}
	if err := s.db.WithContext(ctx).Create(&zone).Error; err != nil {
		return nil, err
	}
	return &zone, nil
}

// UpdateZone 更新分区.
func (s *CatalogService) UpdateZone(ctx context.Context, id string, req *ZoneRequest) (*portal.Zone, error) {
	var zone portal.Zone
	if err := s.db.WithContext(ctx).First(&zone, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError(ResourceZone, id)
		}
		return nil, err
	}
	zone.Code = req.Code
	zone.Name = req.Name
	zone.SiteFloorZoneCode = req.SiteFloorZoneCode
	zone.FloorID = req.FloorID
	if err := s.db.WithContext(ctx).Save(&zone).Error; err != nil {
		return nil, err
	}
	return &zone, nil
}

// DeleteZone 删除分区.
func (s *CatalogService) DeleteZone(ctx context.Context, id string) error {
	return s.deleteByID(ctx, &portal.Zone{}, ResourceZone, id)
}

// ListClients 客户列表, 按编码升序.
func (s *CatalogService) ListClients(ctx context.Context) ([]portal.Client, error) {
	var clients []portal.Client
	err := s.db.WithContext(ctx).Order("code asc").Find(&clients).Error
	return clients, err
}

// CreateClient 创建客户.
func (s *CatalogService) CreateClient(ctx context.Context, req *ClientRequest) (*portal.Client, error) {
	client := portal.Client{
		ID:   fmt.Sprintf("client_%s", req.Code),
		Code: req.Code,
		Name: req.Name,
	}
	if err := s.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// UpdateClient 更新客户.
func (s *CatalogService) UpdateClient(ctx context.Context, id string, req *ClientRequest) (*portal.Client, error) {
	var client portal.Client
	if err := s.db.WithContext(ctx).First(&client, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError(ResourceClient, id)
		}
		return nil, err
	}
	client.Code = req.Code
	client.Name = req.Name
	if err := s.db.WithContext(ctx).Save(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// DeleteClient 删除客户.
func (s *CatalogService) DeleteClient(ctx context.Context, id string) error {
	return s.deleteByID(ctx, &portal.Client{}, ResourceClient, id)
}

// ListProjects 项目列表(含客户), 按编码升序.
func (s *CatalogService) ListProjects(ctx context.Context) ([]portal.Project, error) {
	var projects []portal.Project
	err := s.db.WithContext(ctx).Preload("Client").Order("code asc").Find(&projects).Error
	return projects, err
}

// CreateProject 创建项目.
func (s *CatalogService) CreateProject(ctx context.Context, req *ProjectRequest) (*portal.Project, error) {
	project := portal.Project{
		ID:       fmt.Sprintf("proj_%s", req.Code),
		Code:     req.Code,
		Name:     req.Name,
		ClientID: req.ClientID,
	}
	if err := s.db.WithContext(ctx).Create(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// UpdateProject 更新项目.
func (s *CatalogService) UpdateProject(ctx context.Context, id string, req *ProjectRequest) (*portal.Project, error) {
	var project portal.Project
	if err := s.db.WithContext(ctx).First(&project, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError(ResourceProject, id)
		}
		return nil, err
	}
	project.Code = req.Code
	project.Name = req.Name
	project.ClientID = req.ClientID
	if err := s.db.WithContext(ctx).Save(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// DeleteProject 删除项目.
func (s *CatalogService) DeleteProject(ctx context.Context, id string) error {
	return s.deleteByID(ctx, &portal.Project{}, ResourceProject, id)
}

// ListQueues 业务单元列表, 按编码升序.
func (s *CatalogService) ListQueues(ctx context.Context) ([]portal.Queue, error) {
	var queues []portal.Queue
	err := s.db.WithContext(ctx).Order("code asc").Find(&queues).Error
	return queues, err
}

// CreateQueue 创建业务单元.
func (s *CatalogService) CreateQueue(ctx context.Context, req *QueueRequest) (*portal.Queue, error) {
	queue := portal.Queue{
		ID:   fmt.Sprintf("queue_%s", req.Code),
		Code: req.Code,
		Name: req.Name,
	}
	if err := s.db.WithContext(ctx).Create(&queue).Error; err != nil {
		return nil, err
	}
	return &queue, nil
}

// UpdateQueue 更新业务单元.
func (s *CatalogService) UpdateQueue(ctx context.Context, id string, req *QueueRequest) (*portal.Queue, error) {
	var queue portal.Queue
	if err := s.db.WithContext(ctx).First(&queue, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError(ResourceQueue, id)
		}
		return nil, err
	}
	queue.Code = req.Code
	queue.Name = req.Name
	if err := s.db.WithContext(ctx).Save(&queue).Error; err != nil {
		return nil, err
	}
	return &queue, nil
}

// DeleteQueue 删除业务单元.
func (s *CatalogService) DeleteQueue(ctx context.Context, id string) error {
	return s.deleteByID(ctx, &portal.Queue{}, ResourceQueue, id)
}
