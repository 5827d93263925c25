package service

// OccupancyEntry 关闭楼层上的单条项目占用记录
type OccupancyEntry struct {
	ProjectCode      string `json:"projectCode"`      // 项目编码
	ClientCode       string `json:"clientCode"`       // 客户编码
	BusinessUnit     string `json:"businessUnit"`     // 业务单元名称
	BusinessUnitCode string `json:"businessUnitCode"` // 业务单元编码
	Seats            int    `json:"seats"`            // 占用座位数
}

// ProjectSeats 客户分组内的项目座位数
type ProjectSeats struct {
	ProjectCode string `json:"projectCode"` // 项目编码
	Seats       int    `json:"seats"`       // 座位数
}

// ClientGroup 业务单元内按客户聚合的分组
type ClientGroup struct {
	Client     string         `json:"client"`     // 客户编码
	TotalSeats int            `json:"totalSeats"` // 客户座位总数
	Projects   []ProjectSeats `json:"projects"`   // 客户项目(按座位数降序)
}

// BusinessUnitProject 业务单元的扁平项目列表项
type BusinessUnitProject struct {
	ProjectCode string `json:"projectCode"` // 项目编码
	Client      string `json:"client"`      // 所属客户编码
	Seats       int    `json:"seats"`       // 座位数
}

// BusinessUnitGroup 按业务单元聚合的占用分组
type BusinessUnitGroup struct {
	BusinessUnit string                `json:"businessUnit"` // 业务单元名称
	TotalSeats   int                   `json:"totalSeats"`   // 业务单元座位总数
	Clients      []ClientGroup         `json:"clients"`      // 客户分组(按座位数降序)
	Projects     []BusinessUnitProject `json:"projects"`     // 扁平项目列表, 兼容旧前端
}

// ZoneAvailability 候选站点楼层内可用分区明细
type ZoneAvailability struct {
	ZoneID    string `json:"zoneId"`    // 分区ID
	ZoneName  string `json:"zoneName"`  // 分区名称
	Capacity  int    `json:"capacity"`  // 月度容量
	Occupied  int    `json:"occupied"`  // 已占用座位
	Available int    `json:"available"` // 可用座位
}

// FloorCapacity 候选站点的楼层容量明细
type FloorCapacity struct {
	FloorID        string             `json:"floorId"`        // 楼层ID
	FloorName      string             `json:"floorName"`      // 楼层名称
	Zones          []ZoneAvailability `json:"zones"`          // 可用分区(available>0, 按可用降序)
	TotalCapacity  int                `json:"totalCapacity"`  // 楼层容量合计
	TotalOccupied  int                `json:"totalOccupied"`  // 楼层占用合计
	TotalAvailable int                `json:"totalAvailable"` // 楼层可用合计
}

// SiteCapacity 候选站点容量汇总
type SiteCapacity struct {
	SiteID             string          `json:"siteId"`             // 站点ID
	SiteName           string          `json:"siteName"`           // 站点名称
	SiteCode           string          `json:"siteCode"`           // 站点编码
	RegionID           string          `json:"regionId"`           // 区域ID
	RegionCode         string          `json:"regionCode"`         // 区域编码
	RegionName         string          `json:"regionName"`         // 区域名称
	OpeningDate        string          `json:"openingDate,omitempty"` // 开业日期
	TotalCapacity      int             `json:"totalCapacity"`      // 容量合计
	TotalOccupied      int             `json:"totalOccupied"`      // 占用合计
	AvailableCapacity  int             `json:"availableCapacity"`  // 可用容量(非负)
	CurrentUtilization float64         `json:"currentUtilization"` // 当前占用率(一位小数)
	FloorBreakdown     []FloorCapacity `json:"floorBreakdown"`     // 楼层明细(按可用降序)
}

// SiteAllocation 安置引擎写入单个站点的结果
type SiteAllocation struct {
	Seats         int      `json:"seats"`         // 分配座位合计
	Projects      []string `json:"projects"`      // 分配到该站点的项目编码
	BusinessUnits []string `json:"businessUnits"` // 涉及的业务单元名称
}

// UnseatedProject 未能安置的项目
type UnseatedProject struct {
	ProjectCode  string `json:"projectCode"`  // 项目编码
	Seats        int    `json:"seats"`        // 座位数
	BusinessUnit string `json:"businessUnit"` // 所属业务单元
}

// PlacementResult 安置引擎的完整输出
type PlacementResult struct {
	SiteAllocations   map[string]SiteAllocation // 站点ID -> 分配结果
	AllocatedProjects []string                  // 已安置项目编码(按安置顺序)
	UnseatedProjects  []UnseatedProject         // 未安置项目
	TotalAllocated    int                       // 已安置座位合计
	TotalUnseated     int                       // 未安置座位合计
}

// SiteRecommendation 面向前端的单站点安置建议
type SiteRecommendation struct {
	TargetSiteID            string          `json:"targetSiteId"`            // 目标站点ID
	TargetSiteName          string          `json:"targetSiteName"`          // 目标站点名称
	TargetSiteCode          string          `json:"targetSiteCode"`          // 目标站点编码
	TargetRegion            string          `json:"targetRegion"`            // 目标区域名称
	AvailableCapacity       int             `json:"availableCapacity"`       // 可用容量
	RecommendedAllocation   int             `json:"recommendedAllocation"`   // 建议分配座位
	AllocatedProjects       []string        `json:"allocatedProjects"`       // 分配的项目编码
	AllocatedBusinessUnits  []string        `json:"allocatedBusinessUnits"`  // 涉及的业务单元
	NewUtilization          float64         `json:"newUtilization"`          // 接收后的占用率
	RiskStatus              string          `json:"riskStatus"`              // 接收后的风险状态
	IsEditable              bool            `json:"isEditable"`              // 前端可手工调整
	FloorBreakdown          []FloorCapacity `json:"floorBreakdown"`          // 楼层明细
}

// DateRecommendation 稳定关闭月推荐
type DateRecommendation struct {
	HasCapacity           bool    `json:"hasCapacity"`           // 目标月是否已有足够容量
	SuggestedClosureMonth *string `json:"suggestedClosureMonth"` // 建议关闭月份(YYYY-MM), 无建议为 null
	SuggestedMonthName    string  `json:"suggestedMonthName"`    // 建议月份名称, 如 "March 2026"
	CapacityAvailable     int     `json:"capacityAvailable"`     // 该月可用容量
	StableThrough         *string `json:"stableThrough"`         // 容量稳定截止月份, 无稳定区间为 null
	Reason                string  `json:"reason"`                // 推荐说明
}

// ClosurePlanHeader 推荐结果中的关闭计划摘要
type ClosurePlanHeader struct {
	ID            string `json:"id"`            // 关闭计划ID
	SiteName      string `json:"siteName"`      // 站点名称
	FloorName     string `json:"floorName"`     // 楼层名称
	ZoneNames     string `json:"zoneNames"`     // 楼层分区名称(逗号分隔)
	ClosureDate   string `json:"closureDate"`   // 关闭日期(YYYY-MM-DD)
	SeatsAffected int    `json:"seatsAffected"` // 受影响座位数
	RegionCode    string `json:"regionCode"`    // 区域编码
	RegionName    string `json:"regionName"`    // 区域名称
}

// AllocationRecommendationResponse 安置推荐的完整响应
type AllocationRecommendationResponse struct {
	ClosurePlan        ClosurePlanHeader    `json:"closurePlan"`        // 关闭计划摘要
	OccupancyBreakdown []OccupancyEntry     `json:"occupancyBreakdown"` // 扁平占用明细(座位降序)
	ByBusinessUnit     []BusinessUnitGroup  `json:"byBusinessUnit"`     // 业务单元分组
	Recommendations    []SiteRecommendation `json:"recommendations"`    // 站点安置建议
	AllocatedProjects  []string             `json:"allocatedProjects"`  // 已安置项目编码
	UnseatedProjects   []UnseatedProject    `json:"unseatedProjects"`   // 未安置项目
	TotalAllocated     int                  `json:"totalAllocated"`     // 已安置座位合计
	UnseatedStaff      int                  `json:"unseatedStaff"`      // 未安置座位合计
	DateRecommendation *DateRecommendation  `json:"dateRecommendation"` // 稳定关闭月推荐
}

// AllocationInput 保存分配时的单条输入
type AllocationInput struct {
	TargetZoneID   string `json:"targetZoneId" binding:"required"`   // 目标分区ID
	AllocatedSeats int    `json:"allocatedSeats" binding:"required"` // 分配座位数
	IsManual       bool   `json:"isManual"`                          // 是否手工调整
}

// SaveAllocationsRequest 保存分配请求
type SaveAllocationsRequest struct {
	ClosurePlanID string            `json:"closurePlanId" binding:"required"` // 关闭计划ID
	Allocations   []AllocationInput `json:"allocations" binding:"required"`   // 分配明细
}
