package routers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mohamedn-hafez/CapcityControl/pkg/middleware/render"
	"github.com/mohamedn-hafez/CapcityControl/pkg/redis"
	"github.com/mohamedn-hafez/CapcityControl/server/portal/internal/service"
)

// AllocationHandler 搬迁安置处理器
type AllocationHandler struct {
	service *service.AllocationService
}

// NewAllocationHandler 创建搬迁安置处理器
func NewAllocationHandler(db *gorm.DB, logger *zap.Logger) *AllocationHandler {
	redisHandler := redis.NewRedisHandler(RedisDefault)
	var rh service.RedisHandlerInterface
	if redisHandler != nil {
		rh = redisHandler
	}
	return &AllocationHandler{
		service: service.NewAllocationService(db, rh, logger),
	}
}

// RegisterRoutes 注册路由
func (h *AllocationHandler) RegisterRoutes(api *gin.RouterGroup) {
	allocGroup := api.Group(RouteGroupAllocations)
	{
		allocGroup.GET("", h.GetRecommendation)
		allocGroup.POST("", h.SaveAllocations)
	}
}

// GetRecommendation 获取关闭计划的安置推荐
// @Summary 获取安置推荐
// @Description 为指定关闭计划计算占用分解、候选站点容量、自动安置方案和稳定关闭月推荐
// @Tags 搬迁安置
// @Accept json
// @Produce json
// @Param closurePlanId query string true "关闭计划ID"
// @Success 200 {object} render.Response
// @Router /fe-v1/allocations [get]
func (h *AllocationHandler) GetRecommendation(c *gin.Context) {
	closurePlanID := c.Query(ParamClosurePlanID)
	result, err := h.service.GetAllocationRecommendation(c.Request.Context(), closurePlanID)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	render.Success(c, result)
}

// SaveAllocations 保存选定的安置方案
// @Summary 保存安置方案
// @Description 持久化关闭计划的最终分配, 重复保存会整体覆盖
// @Tags 搬迁安置
// @Accept json
// @Produce json
// @Param request body service.SaveAllocationsRequest true "分配明细"
// @Success 200 {object} render.Response
// @Router /fe-v1/allocations [post]
func (h *AllocationHandler) SaveAllocations(c *gin.Context) {
	var req service.SaveAllocationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		render.BadRequest(c, MsgInvalidRequestBody+err.Error())
		return
	}
	if err := h.service.SaveAllocations(c.Request.Context(), &req); err != nil {
		renderServiceError(c, err)
		return
	}
	render.SuccessWithMessage(c, "保存成功", nil)
}
