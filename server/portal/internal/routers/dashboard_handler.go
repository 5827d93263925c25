package routers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mohamedn-hafez/CapcityControl/pkg/middleware/render"
	"github.com/mohamedn-hafez/CapcityControl/server/portal/internal/service"
)

// DashboardHandler 仪表盘处理器
type DashboardHandler struct {
	service *service.DashboardService
}

// NewDashboardHandler 创建仪表盘处理器
func NewDashboardHandler(db *gorm.DB, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service.NewDashboardService(db, logger),
	}
}

// RegisterRoutes 注册路由
func (h *DashboardHandler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET(RouteGroupDashboard, h.GetDashboard)
}

// GetDashboard 获取月度容量快照
// @Summary 获取月度容量快照
// @Description 按月返回全部站点/楼层/分区的容量、占用与风险状态, 已关闭楼层记零
// @Tags 仪表盘
// @Accept json
// @Produce json
// @Param yearMonth query string true "月份, YYYY-MM"
// @Success 200 {object} render.Response
// @Router /fe-v1/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	yearMonth := c.Query(ParamYearMonth)
	result, err := h.service.GetDashboard(c.Request.Context(), yearMonth)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	render.Success(c, result)
}
