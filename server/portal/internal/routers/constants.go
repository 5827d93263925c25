package routers

// HTTP 路由路径常量
const (
	// 基础路由组
	RouteGroupDashboard   = "/dashboard"
	RouteGroupClosures    = "/closures"
	RouteGroupAllocations = "/allocations"
	RouteGroupSites       = "/sites"
	RouteGroupAdmin       = "/admin"

	// 管理子路由
	SubRouteRegions            = "/regions"
	SubRouteSites              = "/sites"
	SubRouteFloors             = "/floors"
	SubRouteZones              = "/zones"
	SubRouteClients            = "/clients"
	SubRouteProjects           = "/projects"
	SubRouteQueues             = "/queues"
	SubRouteZoneCapacity       = "/zone-capacity"
	SubRouteProjectAssignments = "/project-assignments"
	SubRouteCopyMonthData      = "/copy-month-data"

	// 路由参数路径
	RouteParamID = "/:id"
)

// HTTP 参数名常量
const (
	ParamID            = "id"
	ParamYearMonth     = "yearMonth"
	ParamClosurePlanID = "closurePlanId"
)

// 数据库和缓存相关常量
const (
	RedisDefault = "default"
)

// 通用错误消息常量
const (
	MsgInvalidRequestBody = "无效的请求体: "
	MsgInvalidIDFormat    = "invalid id format"
)
