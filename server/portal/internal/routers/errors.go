package routers

import (
	"github.com/gin-gonic/gin"

	"github.com/mohamedn-hafez/CapcityControl/pkg/middleware/render"
	"github.com/mohamedn-hafez/CapcityControl/server/portal/internal/service"
)

// renderServiceError 把服务层错误映射为统一的HTTP响应.
func renderServiceError(c *gin.Context, err error) {
	switch {
	case service.IsNotFound(err):
		render.NotFound(c, err.Error())
	case service.IsBadRequest(err):
		render.BadRequest(c, err.Error())
	default:
		render.InternalError(c, err.Error())
	}
}
