package report

// CapacityStyleType 表示利用率单元格样式类型
type CapacityStyleType string

const (
	// StyleOverflow 表示超卖(红色)
	StyleOverflow CapacityStyleType = "overflow"
	// StyleRisk 表示高风险(橙红色)
	StyleRisk CapacityStyleType = "risk"
	// StyleWarning 表示警告级别(黄色)
	StyleWarning CapacityStyleType = "warning"
	// StyleNormal 表示正常级别(绿色)
	StyleNormal CapacityStyleType = "normal"
	// StyleClosed 表示楼层已关闭(灰色)
	StyleClosed CapacityStyleType = "closed"
)

// 利用率阈值常量定义, 与门户端的风险分级保持一致
const (
	WarningThreshold  = 85.0
	RiskThreshold     = 95.0
	OverflowThreshold = 100.0
)

// styleForRisk 根据风险标签返回样式类型, 保证着色与分级出自同一判定
func styleForRisk(risk string) CapacityStyleType {
	switch risk {
	case RiskClosed:
		return StyleClosed
	case RiskOverflow:
		return StyleOverflow
	case RiskRisk:
		return StyleRisk
	case RiskWarning:
		return StyleWarning
	default:
		return StyleNormal
	}
}

// 样式填充色, ARGB
var styleFillColors = map[CapacityStyleType]string{
	StyleOverflow: "FFC7CE",
	StyleRisk:     "FFA07A",
	StyleWarning:  "FFEB9C",
	StyleNormal:   "C6EFCE",
	StyleClosed:   "D9D9D9",
}
