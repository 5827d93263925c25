package service

// 通用常量
const (
	// 空字符串常量
	EmptyString = ""

	// 分页相关常量
	DefaultPage = 1
	DefaultSize = 10
	MaxSize     = 100
)

// 资源类型
const (
	ResourceRegion            = "Region"
	ResourceSite              = "Site"
	ResourceFloor             = "Floor"
	ResourceZone              = "Zone"
	ResourceClient            = "Client"
	ResourceProject           = "Project"
	ResourceQueue             = "Queue"
	ResourceZoneCapacity      = "Zone capacity"
	ResourceProjectAssignment = "Project assignment"
	ResourceClosurePlan       = "Closure plan"
	ResourceAllocation        = "Allocation"
)

// 风险状态常量
const (
	RiskStatusOK       = "OK"
	RiskStatusWarning  = "WARNING"
	RiskStatusRisk     = "RISK"
	RiskStatusOverflow = "OVERFLOW"
	RiskStatusClosed   = "CLOSED"
)

// 风险阈值(占用率百分比)
const (
	RiskThresholdWarning  = 85.0
	RiskThresholdRisk     = 95.0
	RiskThresholdOverflow = 100.0
)

// 错误信息模板
const (
	ErrRecordNotFoundMsg   = "%s not found: %s"
	ErrYearMonthRequired   = "yearMonth required"
	ErrClosurePlanRequired = "closurePlanId required"
	ErrFloorDateRequired   = "floorId and closureDate required"
	ErrMonthPairRequired   = "sourceMonth and targetMonth required"
)

// 日志信息
const (
	LogMsgRecommendationStart  = "Building allocation recommendation"
	LogMsgRecommendationDone   = "Allocation recommendation built"
	LogMsgStableMonthScan      = "Scanning months for stable capacity"
	LogMsgAllocationsSaved     = "Allocations saved"
	LogMsgCapacityCacheHit     = "Region capacity cache hit"
	LogMsgCapacityCacheInvalid = "Region capacity cache invalidated"
	LogMsgCopyMonthDone        = "Month data copied"
)
