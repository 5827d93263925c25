package service

import "math"

// RiskStatus 根据占用率计算风险状态. 已关闭楼层/分区恒为 CLOSED;
// 占用率严格大于 100 为 OVERFLOW, [95,100] 为 RISK, [85,95) 为 WARNING, 其余为 OK.
func RiskStatus(utilization float64, isClosed bool) string {
	if isClosed {
		return RiskStatusClosed
	}
	if utilization > RiskThresholdOverflow {
		return RiskStatusOverflow
	}
	if utilization >= RiskThresholdRisk {
		return RiskStatusRisk
	}
	if utilization >= RiskThresholdWarning {
		return RiskStatusWarning
	}
	return RiskStatusOK
}

// RawUtilization 计算未舍入的占用率百分比. 容量为零时返回 0.
// 风险分级必须基于该原始值, 舍入只用于展示字段.
func RawUtilization(occupied, capacity int) float64 {
	if capacity <= 0 {
		return 0
	}
	return float64(occupied) / float64(capacity) * 100
}

// Utilization 计算占用率百分比并保留一位小数. 容量为零时返回 0.
func Utilization(occupied, capacity int) float64 {
	return RoundUtilization(RawUtilization(occupied, capacity))
}

// RoundUtilization 占用率按一位小数四舍五入.
func RoundUtilization(utilization float64) float64 {
	return math.Round(utilization*10) / 10
}
