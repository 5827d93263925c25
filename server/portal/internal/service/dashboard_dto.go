package service

// DashboardZone 仪表盘分区明细
type DashboardZone struct {
	ZoneID             string  `json:"zoneId"`             // 分区ID
	ZoneCode           string  `json:"zoneCode"`           // 分区编码
	ZoneName           string  `json:"zoneName"`           // 分区名称
	SiteFloorZoneCode  string  `json:"siteFloorZoneCode"`  // 站点-楼层-分区组合编码
	Capacity           int     `json:"capacity"`           // 月度容量
	Occupied           int     `json:"occupied"`           // 已占用座位
	Available          int     `json:"available"`          // 可用座位
	UtilizationPercent float64 `json:"utilizationPercent"` // 占用率
	RiskStatus         string  `json:"riskStatus"`         // 风险状态
	IsClosing          bool    `json:"isClosing"`          // 所在楼层是否已关闭
	ClosureDate        string  `json:"closureDate,omitempty"` // 楼层关闭日期
}

// DashboardFloor 仪表盘楼层明细
type DashboardFloor struct {
	FloorID            string          `json:"floorId"`            // 楼层ID
	FloorCode          string          `json:"floorCode"`          // 楼层编码
	FloorName          string          `json:"floorName"`          // 楼层名称
	TotalCapacity      int             `json:"totalCapacity"`      // 容量合计
	TotalOccupied      int             `json:"totalOccupied"`      // 占用合计
	TotalAvailable     int             `json:"totalAvailable"`     // 可用合计
	UtilizationPercent float64         `json:"utilizationPercent"` // 占用率
	RiskStatus         string          `json:"riskStatus"`         // 风险状态
	IsClosing          bool            `json:"isClosing"`          // 是否已关闭
	Zones              []DashboardZone `json:"zones"`              // 分区明细
}

// DashboardSite 仪表盘站点明细
type DashboardSite struct {
	SiteID             string           `json:"siteId"`             // 站点ID
	SiteCode           string           `json:"siteCode"`           // 站点编码
	SiteName           string           `json:"siteName"`           // 站点名称
	RegionCode         string           `json:"regionCode"`         // 区域编码
	RegionName         string           `json:"regionName"`         // 区域名称
	Status             string           `json:"status"`             // 站点状态
	TotalCapacity      int              `json:"totalCapacity"`      // 容量合计
	TotalOccupied      int              `json:"totalOccupied"`      // 占用合计
	TotalAvailable     int              `json:"totalAvailable"`     // 可用合计
	UtilizationPercent float64          `json:"utilizationPercent"` // 占用率
	RiskStatus         string           `json:"riskStatus"`         // 风险状态
	Floors             []DashboardFloor `json:"floors"`             // 楼层明细
}

// DashboardClosure 仪表盘当月关闭计划
type DashboardClosure struct {
	ID            string `json:"id"`            // 关闭计划ID
	FloorID       string `json:"floorId"`       // 楼层ID
	SiteName      string `json:"siteName"`      // 站点名称
	FloorName     string `json:"floorName"`     // 楼层名称
	ZoneName      string `json:"zoneName"`      // 楼层分区名称(逗号分隔)
	ClosureDate   string `json:"closureDate"`   // 关闭日期
	YearMonth     string `json:"yearMonth"`     // 关闭月份
	SeatsAffected int    `json:"seatsAffected"` // 受影响座位数
	Status        string `json:"status"`        // 计划状态
}

// DashboardResponse 仪表盘月度快照
type DashboardResponse struct {
	YearMonth         string             `json:"yearMonth"`         // 快照月份
	Year              int                `json:"year"`              // 年
	Month             int                `json:"month"`             // 月
	MonthName         string             `json:"monthName"`         // 月份缩写
	Sites             []DashboardSite    `json:"sites"`             // 站点明细
	TotalCapacity     int                `json:"totalCapacity"`     // 全局容量合计
	TotalOccupied     int                `json:"totalOccupied"`     // 全局占用合计
	TotalAvailable    int                `json:"totalAvailable"`    // 全局可用合计
	ClosuresThisMonth []DashboardClosure `json:"closuresThisMonth"` // 当月关闭计划
}
