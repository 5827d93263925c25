package service

// ClosureAllocationItem 关闭计划下已保存的安置明细
type ClosureAllocationItem struct {
	ID             int64  `json:"id"`             // 记录ID
	TargetSiteID   string `json:"targetSiteId"`   // 目标站点ID
	TargetSiteName string `json:"targetSiteName"` // 目标站点名称
	TargetZoneID   string `json:"targetZoneId"`   // 目标分区ID
	AllocatedSeats int    `json:"allocatedSeats"` // 安置座位数
	IsManual       bool   `json:"isManual"`       // 是否人工调整
}

// ClosureItem 关闭计划列表项
type ClosureItem struct {
	ID             string                  `json:"id"`             // 关闭计划ID
	FloorID        string                  `json:"floorId"`        // 楼层ID
	SiteID         string                  `json:"siteId"`         // 站点ID
	SiteName       string                  `json:"siteName"`       // 站点名称
	SiteCode       string                  `json:"siteCode"`       // 站点编码
	FloorName      string                  `json:"floorName"`      // 楼层名称
	ZoneNames      string                  `json:"zoneNames"`      // 楼层分区名称(逗号分隔)
	ZoneCount      int                     `json:"zoneCount"`      // 分区数量
	RegionCode     string                  `json:"regionCode"`     // 区域编码
	RegionName     string                  `json:"regionName"`     // 区域名称
	ClosureDate    string                  `json:"closureDate"`    // 关闭日期(YYYY-MM-DD)
	YearMonth      string                  `json:"yearMonth"`      // 关闭月份
	SeatsAffected  int                     `json:"seatsAffected"`  // 受影响座位数
	Status         string                  `json:"status"`         // 计划状态
	Allocations    []ClosureAllocationItem `json:"allocations"`    // 已保存安置
	TotalAllocated int                     `json:"totalAllocated"` // 已安置座位合计
	UnseatedStaff  int                     `json:"unseatedStaff"`  // 未安置座位合计
}

// CreateClosureRequest 创建关闭计划请求
type CreateClosureRequest struct {
	FloorID       string `json:"floorId" binding:"required"`     // 关闭楼层ID
	ClosureDate   string `json:"closureDate" binding:"required"` // 关闭日期(YYYY-MM-DD)
	SeatsAffected int    `json:"seatsAffected"`                  // 受影响座位数, 缺省时按楼层当月占用推导
}
