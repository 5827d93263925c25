package routers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mohamedn-hafez/CapcityControl/pkg/middleware/render"
	"github.com/mohamedn-hafez/CapcityControl/pkg/redis"
	"github.com/mohamedn-hafez/CapcityControl/server/portal/internal/service"
)

// FactHandler 事实表处理器, 维护月度容量与项目座位分配.
type FactHandler struct {
	service *service.FactService
}

// NewFactHandler 创建事实表处理器
func NewFactHandler(db *gorm.DB, logger *zap.Logger) *FactHandler {
	redisHandler := redis.NewRedisHandler(RedisDefault)
	var rh service.FactRedisInterface
	if redisHandler != nil {
		rh = redisHandler
	}
	return &FactHandler{
		service: service.NewFactService(db, rh, logger),
	}
}

// RegisterRoutes 注册路由
func (h *FactHandler) RegisterRoutes(api *gin.RouterGroup) {
	admin := api.Group(RouteGroupAdmin)

	capacity := admin.Group(SubRouteZoneCapacity)
	{
		capacity.GET("", h.ListZoneCapacities)
		capacity.POST("", h.UpsertZoneCapacity)
		capacity.DELETE(RouteParamID, h.DeleteZoneCapacity)
	}

	assignments := admin.Group(SubRouteProjectAssignments)
	{
		assignments.GET("", h.ListProjectAssignments)
		assignments.POST("", h.UpsertProjectAssignment)
		assignments.DELETE(RouteParamID, h.DeleteProjectAssignment)
	}

	admin.POST(SubRouteCopyMonthData, h.CopyMonthData)
}

// ListZoneCapacities 获取分区月度容量列表
// @Summary 获取分区月度容量列表
// @Tags 事实表
// @Produce json
// @Param yearMonth query string false "月份, YYYY-MM"
// @Success 200 {object} render.Response
// @Router /fe-v1/admin/zone-capacity [get]
func (h *FactHandler) ListZoneCapacities(c *gin.Context) {
	capacities, err := h.service.ListZoneCapacities(c.Request.Context(), c.Query(ParamYearMonth))
	if err != nil {
		renderServiceError(c, err)
		return
	}
	render.Success(c, capacities)
}

// UpsertZoneCapacity 写入分区月度容量
// @Summary 写入分区月度容量
// @Description 按 (zoneId, yearMonth) 幂等更新
// @Tags 事实表
// @Accept json
// @Produce json
// @Param request body service.ZoneCapacityRequest true "容量记录"
// @Success 200 {object} render.Response
// @Router /fe-v1/admin/zone-capacity [post]
func (h *FactHandler) UpsertZoneCapacity(c *gin.Context) {
	var req service.ZoneCapacityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		render.BadRequest(c, MsgInvalidRequestBody+err.Error())
		return
	}
	row, err := h.service.UpsertZoneCapacity(c.Request.Context(), &req)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	render.Success(c, row)
}

// DeleteZoneCapacity 删除分区月度容量
func (h *FactHandler) DeleteZoneCapacity(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param(ParamID), 10, 64)
	if err != nil {
		render.BadRequest(c, MsgInvalidIDFormat)
		return
	}
	if err := h.service.DeleteZoneCapacity(c.Request.Context(), id); err != nil {
		renderServiceError(c, err)
		return
	}
	render.SuccessWithMessage(c, "删除成功", nil)
}

// ListProjectAssignments 获取项目座位分配分页列表
// @Summary 获取项目座位分配分页列表
// @Tags 事实表
// @Produce json
// @Param yearMonth query string false "月份, YYYY-MM"
// @Param page query int false "页码"
// @Param size query int false "每页数量"
// @Success 200 {object} render.Response
// @Router /fe-v1/admin/project-assignments [get]
func (h *FactHandler) ListProjectAssignments(c *gin.Context) {
	var page service.PaginationRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		render.BadRequest(c, MsgInvalidRequestBody+err.Error())
		return
	}
	assignments, err := h.service.ListProjectAssignments(c.Request.Context(), c.Query(ParamYearMonth), &page)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	render.Success(c, assignments)
}

// UpsertProjectAssignment 写入项目座位分配
// @Summary 写入项目座位分配
// @Description 按 (zoneId, projectId, yearMonth) 幂等更新
// @Tags 事实表
// @Accept json
// @Produce json
// @Param request body service.ProjectAssignmentRequest true "分配记录"
// @Success 200 {object} render.Response
// @Router /fe-v1/admin/project-assignments [post]
func (h *FactHandler) UpsertProjectAssignment(c *gin.Context) {
	var req service.ProjectAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		render.BadRequest(c, MsgInvalidRequestBody+err.Error())
		return
	}
	row, err := h.service.UpsertProjectAssignment(c.Request.Context(), &req)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	render.Success(c, row)
}

// DeleteProjectAssignment 删除项目座位分配
func (h *FactHandler) DeleteProjectAssignment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param(ParamID), 10, 64)
	if err != nil {
		render.BadRequest(c, MsgInvalidIDFormat)
		return
	}
	if err := h.service.DeleteProjectAssignment(c.Request.Context(), id); err != nil {
		renderServiceError(c, err)
		return
	}
	render.SuccessWithMessage(c, "删除成功", nil)
}

// CopyMonthData 按月复制事实数据
// @Summary 按月复制事实数据
// @Description 把源月份的容量与分配事实复制到目标月份并返回复制条数
// @Tags 事实表
// @Accept json
// @Produce json
// @Param request body service.CopyMonthDataRequest true "复制参数"
// @Success 200 {object} render.Response
// @Router /fe-v1/admin/copy-month-data [post]
func (h *FactHandler) CopyMonthData(c *gin.Context) {
	var req service.CopyMonthDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		render.BadRequest(c, MsgInvalidRequestBody+err.Error())
		return
	}
	resp, err := h.service.CopyMonthData(c.Request.Context(), &req)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	render.Success(c, resp)
}
