package routers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mohamedn-hafez/CapcityControl/pkg/middleware/render"
	"github.com/mohamedn-hafez/CapcityControl/server/portal/internal/service"
)

// ClosureHandler 关闭计划处理器
type ClosureHandler struct {
	service *service.ClosureService
}

// NewClosureHandler 创建关闭计划处理器
func NewClosureHandler(db *gorm.DB, logger *zap.Logger) *ClosureHandler {
	return &ClosureHandler{
		service: service.NewClosureService(db, logger),
	}
}

// RegisterRoutes 注册路由
func (h *ClosureHandler) RegisterRoutes(api *gin.RouterGroup) {
	closureGroup := api.Group(RouteGroupClosures)
	{
		closureGroup.GET("", h.ListClosures)
		closureGroup.POST("", h.CreateClosure)
		closureGroup.DELETE("", h.DeleteClosure)
	}
}

// ListClosures 获取关闭计划列表
// @Summary 获取关闭计划列表
// @Description 按关闭日期升序返回全部关闭计划及已保存安置汇总
// @Tags 关闭计划
// @Produce json
// @Success 200 {object} render.Response
// @Router /fe-v1/closures [get]
func (h *ClosureHandler) ListClosures(c *gin.Context) {
	items, err := h.service.ListClosures(c.Request.Context())
	if err != nil {
		renderServiceError(c, err)
		return
	}
	render.Success(c, items)
}

// CreateClosure 创建关闭计划
// @Summary 创建关闭计划
// @Description 为楼层创建关闭计划, 关闭月份从关闭日期导出, 受影响座位数缺省按当月占用推导
// @Tags 关闭计划
// @Accept json
// @Produce json
// @Param request body service.CreateClosureRequest true "关闭计划数据"
// @Success 200 {object} render.Response
// @Router /fe-v1/closures [post]
func (h *ClosureHandler) CreateClosure(c *gin.Context) {
	var req service.CreateClosureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		render.BadRequest(c, MsgInvalidRequestBody+err.Error())
		return
	}
	plan, err := h.service.CreateClosure(c.Request.Context(), &req)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	render.Success(c, plan)
}

// DeleteClosure 删除关闭计划
// @Summary 删除关闭计划
// @Tags 关闭计划
// @Produce json
// @Param id query string true "关闭计划ID"
// @Success 200 {object} render.Response
// @Router /fe-v1/closures [delete]
func (h *ClosureHandler) DeleteClosure(c *gin.Context) {
	id := c.Query(ParamID)
	if err := h.service.DeleteClosure(c.Request.Context(), id); err != nil {
		renderServiceError(c, err)
		return
	}
	render.SuccessWithMessage(c, "删除成功", nil)
}
