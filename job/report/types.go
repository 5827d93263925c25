package report

// 风险等级标签, 与门户端接口返回的风险字段取值一致
const (
	RiskClosed   = "CLOSED"
	RiskOverflow = "OVERFLOW"
	RiskRisk     = "RISK"
	RiskWarning  = "WARNING"
	RiskOK       = "OK"
)

// SiteReportRow 站点概览行, 只统计未关闭楼层的容量与占用
type SiteReportRow struct {
	RegionName    string
	SiteCode      string
	SiteName      string
	Status        string
	TotalCapacity int
	Occupied      int
	Available     int
	Utilization   float64
	Risk          string
}

// ZoneReportRow 分区明细行
type ZoneReportRow struct {
	SiteCode    string
	FloorCode   string
	ZoneCode    string
	ZoneName    string
	Capacity    int
	Occupied    int
	Available   int
	Utilization float64
	Risk        string
	Closed      bool
}
