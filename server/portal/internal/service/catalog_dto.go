package service

// RegionRequest 区域创建/更新请求
type RegionRequest struct {
	Code    string `json:"code" binding:"required"` // 区域编码
	Name    string `json:"name" binding:"required"` // 区域名称
	Country string `json:"country"`                 // 所在国家
}

// SiteRequest 站点创建/更新请求
type SiteRequest struct {
	Code        string `json:"code" binding:"required"`     // 站点编码
	Name        string `json:"name" binding:"required"`     // 站点名称
	RegionID    string `json:"regionId" binding:"required"` // 所属区域ID
	Status      string `json:"status"`                      // 状态, 缺省 ACTIVE
	OpeningDate string `json:"openingDate"`                 // 开业日期(YYYY-MM-DD, 可空)
	ClosingDate string `json:"closingDate"`                 // 关闭日期(YYYY-MM-DD, 可空)
}

// FloorRequest 楼层创建/更新请求
type FloorRequest struct {
	Code   string `json:"code" binding:"required"`   // 楼层编码
	Name   string `json:"name" binding:"required"`   // 楼层名称
	SiteID string `json:"siteId" binding:"required"` // 所属站点ID
}

// ZoneRequest 分区创建/更新请求
type ZoneRequest struct {
	Code              string `json:"code" binding:"required"`              // 分区编码
	Name              string `json:"name" binding:"required"`              // 分区名称
	SiteFloorZoneCode string `json:"siteFloorZoneCode" binding:"required"` // 站点-楼层-分区组合编码
	FloorID           string `json:"floorId" binding:"required"`           // 所属楼层ID
}

// ClientRequest 客户创建/更新请求
type ClientRequest struct {
	Code string `json:"code" binding:"required"` // 客户编码
	Name string `json:"name"`                    // 客户名称(可空)
}

// ProjectRequest 项目创建/更新请求
type ProjectRequest struct {
	Code     string `json:"code" binding:"required"`     // 项目编码
	Name     string `json:"name"`                        // 项目名称(可空)
	ClientID string `json:"clientId" binding:"required"` // 所属客户ID
}

// QueueRequest 业务单元创建/更新请求
type QueueRequest struct {
	Code string `json:"code" binding:"required"` // 业务单元编码
	Name string `json:"name" binding:"required"` // 业务单元名称
}
