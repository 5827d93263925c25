package routers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mohamedn-hafez/CapcityControl/pkg/middleware/render"
	"github.com/mohamedn-hafez/CapcityControl/server/portal/internal/service"
)

// AdminHandler 维表管理处理器, 覆盖区域/站点/楼层/分区/客户/项目/业务单元的维护接口.
type AdminHandler struct {
	service *service.CatalogService
}

// NewAdminHandler 创建维表管理处理器
func NewAdminHandler(db *gorm.DB, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		service: service.NewCatalogService(db, logger),
	}
}

// RegisterRoutes 注册路由
func (h *AdminHandler) RegisterRoutes(api *gin.RouterGroup) {
	// 站点树是前端选择器用的公共接口
	api.GET(RouteGroupSites, h.ListSiteTree)

	admin := api.Group(RouteGroupAdmin)

	regions := admin.Group(SubRouteRegions)
	{
		regions.GET("", h.ListRegions)
		regions.POST("", h.CreateRegion)
		regions.PUT(RouteParamID, h.UpdateRegion)
		regions.DELETE(RouteParamID, h.DeleteRegion)
	}

	sites := admin.Group(SubRouteSites)
	{
		sites.GET("", h.ListSites)
		sites.POST("", h.CreateSite)
		sites.PUT(RouteParamID, h.UpdateSite)
		sites.DELETE(RouteParamID, h.DeleteSite)
	}

	floors := admin.Group(SubRouteFloors)
	{
		floors.GET("", h.ListFloors)
		floors.POST("", h.CreateFloor)
		floors.PUT(RouteParamID, h.UpdateFloor)
		floors.DELETE(RouteParamID, h.DeleteFloor)
	}

	zones := admin.Group(SubRouteZones)
	{
		zones.GET("", h.ListZones)
		zones.POST("", h.CreateZone)
		zones.PUT(RouteParamID, h.UpdateZone)
		zones.DELETE(RouteParamID, h.DeleteZone)
	}

	clients := admin.Group(SubRouteClients)
	{
		clients.GET("", h.ListClients)
		clients.POST("", h.CreateClient)
		clients.PUT(RouteParamID, h.UpdateClient)
		clients.DELETE(RouteParamID, h.DeleteClient)
	}

	projects := admin.Group(SubRouteProjects)
	{
		projects.GET("", h.ListProjects)
		projects.POST("", h.CreateProject)
		projects.PUT(RouteParamID, h.UpdateProject)
		projects.DELETE(RouteParamID, h.DeleteProject)
	}

	queues := admin.Group(SubRouteQueues)
	{
		queues.GET("", h.ListQueues)
		queues.POST("", h.CreateQueue)
		queues.PUT(RouteParamID, h.UpdateQueue)
		queues.DELETE(RouteParamID, h.DeleteQueue)
	}
}

// ListSiteTree 获取站点树(站点-楼层-分区)
func (h *AdminHandler) ListSiteTree(c *gin.Context) {
	sites, err := h.service.ListSitesWithTree(c.Request.Context())
	if err != nil {
		renderServiceError(c, err)
		return
	}
	render.Success(c, sites)
}

// ListRegions 获取区域列表
func (h *AdminHandler) ListRegions(c *gin.Context) {
	regions, err := h.service.ListRegions(c.Request.Context())
	if err != nil {
		renderServiceError(c, err)
		return
	}
	render.Success(c, regions)
}

// CreateRegion 创建区域
func (h *AdminHandler) CreateRegion(c *gin.Context) {
	var req service.RegionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		render.BadRequest(c, MsgInvalidRequestBody+err.Error())
		return
	}
	region, err := h.service.CreateRegion(c.Request.Context(), &req)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	render.Success(c, region)
}

// UpdateRegion 更新区域
func (h *AdminHandler) UpdateRegion(c *gin.Context) {
	var req service.RegionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		render.BadRequest(c, MsgInvalidRequestBody+err.Error())
		return
	}
	region, err := h.service.UpdateRegion(c.Request.Context(), c.Param(ParamID), &req)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	render.Success(c, region)
}

// DeleteRegion 删除区域
func (h *AdminHandler) DeleteRegion(c *gin.Context) {
	if err := h.service.DeleteRegion(c.Request.Context(), c.Param(ParamID)); err != nil {
		renderServiceError(c, err)
		return
	}
	render.SuccessWithMessage(c, "删除成功", nil)
}

// ListSites 获取站点列表
func (h *AdminHandler) ListSites(c *gin.Context) {
	sites, err := h.service.ListSites(c.Request.Context())
	if err != nil {
		renderServiceError(c, err)
		return
	}
	render.Success(c, sites)
}

// CreateSite 创建站点
func (h *AdminHandler) CreateSite(c *gin.Context) {
	var req service.SiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		render.BadRequest(c, MsgInvalidRequestBody+err.Error())
		return
	}
	site, err := h.service.CreateSite(c.Request.Context(), &req)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	render.Success(c, site)
}

// UpdateSite 更新站点
func (h *AdminHandler) UpdateSite(c *gin.Context) {
	var req service.SiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		render.BadRequest(c, MsgInvalidRequestBody+err.Error())
		return
	}
	site, err := h.service.UpdateSite(c.Request.Context(), c.Param(ParamID), &req)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	render.Success(c, site)
}

// DeleteSite 删除站点
func (h *AdminHandler) DeleteSite(c *gin.Context) {
	if err := h.service.DeleteSite(c.Request.Context(), c.Param(ParamID)); err != nil {
		renderServiceError(c, err)
		return
	}
	render.SuccessWithMessage(c, "删除成功", nil)
}

// ListFloors 获取楼层列表
func (h *AdminHandler) ListFloors(c *gin.Context) {
	floors, err := h.service.ListFloors(c.Request.Context())
	if err != nil {
		renderServiceError(c, err)
		return
	}
	render.Success(c, floors)
}

// CreateFloor 创建楼层
func (h *AdminHandler) CreateFloor(c *gin.Context) {
	var req service.FloorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		render.BadRequest(c, MsgInvalidRequestBody+err.Error())
		return
	}
	floor, err := h.service.CreateFloor(c.Request.Context(), &req)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	render.Success(c, floor)
}

// UpdateFloor 更新楼层
func (h *AdminHandler) UpdateFloor(c *gin.Context) {
	var req service.FloorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		render.BadRequest(c, MsgInvalidRequestBody+err.Error())
		return
	}
	floor, err := h.service.UpdateFloor(c.Request.Context(), c.Param(ParamID), &req)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	render.Success(c, floor)
}

// DeleteFloor 删除楼层
func (h *AdminHandler) DeleteFloor(c *gin.Context) {
	if err := h.service.DeleteFloor(c.Request.Context(), c.Param(ParamID)); err != nil {
		renderServiceError(c, err)
		return
	}
	render.SuccessWithMessage(c, "删除成功", nil)
}

// ListZones 获取分区列表
func (h *AdminHandler) ListZones(c *gin.Context) {
	zones, err := h.service.ListZones(c.Request.Context())
	if err != nil {
		renderServiceError(c, err)
		return
	}
	render.Success(c, zones)
}

// CreateZone 创建分区
func (h *AdminHandler) CreateZone(c *gin.Context) {
	var req service.ZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		render.BadRequest(c, MsgInvalidRequestBody+err.Error())
		return
	}
	zone, err := h.service.CreateZone(c.Request.Context(), &req)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	render.Success(c, zone)
}

// UpdateZone 更新分区
func (h *AdminHandler) UpdateZone(c *gin.Context) {
	var req service.ZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		render.BadRequest(c, MsgInvalidRequestBody+err.Error())
		return
	}
	zone, err := h.service.UpdateZone(c.Request.Context(), c.Param(ParamID), &req)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	render.Success(c, zone)
}

// DeleteZone 删除分区
func (h *AdminHandler) DeleteZone(c *gin.Context) {
	if err := h.service.DeleteZone(c.Request.Context(), c.Param(ParamID)); err != nil {
		renderServiceError(c, err)
		return
	}
	render.SuccessWithMessage(c, "删除成功", nil)
}

// ListClients 获取客户列表
func (h *AdminHandler) ListClients(c *gin.Context) {
	clients, err := h.service.ListClients(c.Request.Context())
	if err != nil {
		renderServiceError(c, err)
		return
	}
	render.Success(c, clients)
}

// CreateClient 创建客户
func (h *AdminHandler) CreateClient(c *gin.Context) {
	var req service.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		render.BadRequest(c, MsgInvalidRequestBody+err.Error())
		return
	}
	client, err := h.service.CreateClient(c.Request.Context(), &req)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	render.Success(c, client)
}

// UpdateClient 更新客户
func (h *AdminHandler) UpdateClient(c *gin.Context) {
	var req service.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		render.BadRequest(c, MsgInvalidRequestBody+err.Error())
		return
	}
	client, err := h.service.UpdateClient(c.Request.Context(), c.Param(ParamID), &req)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	render.Success(c, client)
}

// DeleteClient 删除客户
func (h *AdminHandler) DeleteClient(c *gin.Context) {
	if err := h.service.DeleteClient(c.Request.Context(), c.Param(ParamID)); err != nil {
		renderServiceError(c, err)
		return
	}
	render.SuccessWithMessage(c, "删除成功", nil)
}

// ListProjects 获取项目列表
func (h *AdminHandler) ListProjects(c *gin.Context) {
	projects, err := h.service.ListProjects(c.Request.Context())
	if err != nil {
		renderServiceError(c, err)
		return
	}
	render.Success(c, projects)
}

// CreateProject 创建项目
func (h *AdminHandler) CreateProject(c *gin.Context) {
	var req service.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		render.BadRequest(c, MsgInvalidRequestBody+err.Error())
		return
	}
	project, err := h.service.CreateProject(c.Request.Context(), &req)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	render.Success(c, project)
}

// UpdateProject 更新项目
func (h *AdminHandler) UpdateProject(c *gin.Context) {
	var req service.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		render.BadRequest(c, MsgInvalidRequestBody+err.Error())
		return
	}
	project, err := h.service.UpdateProject(c.Request.Context(), c.Param(ParamID), &req)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	render.Success(c, project)
}

// DeleteProject 删除项目
func (h *AdminHandler) DeleteProject(c *gin.Context) {
	if err := h.service.DeleteProject(c.Request.Context(), c.Param(ParamID)); err != nil {
		renderServiceError(c, err)
		return
	}
	render.SuccessWithMessage(c, "删除成功", nil)
}

// ListQueues 获取业务单元列表
func (h *AdminHandler) ListQueues(c *gin.Context) {
	queues, err := h.service.ListQueues(c.Request.Context())
	if err != nil {
		renderServiceError(c, err)
		return
	}
	render.Success(c, queues)
}

// CreateQueue 创建业务单元
func (h *AdminHandler) CreateQueue(c *gin.Context) {
	var req service.QueueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		render.BadRequest(c, MsgInvalidRequestBody+err.Error())
		return
	}
	queue, err := h.service.CreateQueue(c.Request.Context(), &req)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	render.Success(c, queue)
}

// UpdateQueue 更新业务单元
func (h *AdminHandler) UpdateQueue(c *gin.Context) {
	var req service.QueueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		render.BadRequest(c, MsgInvalidRequestBody+err.Error())
		return
	}
	queue, err := h.service.UpdateQueue(c.Request.Context(), c.Param(ParamID), &req)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	render.Success(c, queue)
}

// DeleteQueue 删除业务单元
func (h *AdminHandler) DeleteQueue(c *gin.Context) {
	if err := h.service.DeleteQueue(c.Request.Context(), c.Param(ParamID)); err != nil {
		renderServiceError(c, err)
		return
	}
	render.SuccessWithMessage(c, "删除成功", nil)
}
