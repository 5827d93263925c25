package redis

import "fmt"

// 容量平台使用的redis键统一在此定义, 避免各服务各自拼接.
const (
	// KeyPrefix 所有键的统一前缀.
	KeyPrefix = "capacity"

	// ChannelCapacityUpdates 容量数据变更的发布订阅通道.
	ChannelCapacityUpdates = "capacity:updates"

	// LockClosurePlanTTLSeconds 关闭计划保存锁的过期秒数.
	LockClosurePlanTTLSeconds = 30
)

// RegionCapacityKey 区域某月容量汇总的缓存键. 排除的源站点参与键名,
// 不同关闭计划的汇总互不串扰.
func RegionCapacityKey(regionID string, excludeSiteID string, yearMonth string) string {
	return fmt.Sprintf("%s:region:%s:%s:%s", KeyPrefix, regionID, excludeSiteID, yearMonth)
}

// RegionCapacityPattern 区域容量缓存键的匹配模式, 用于批量失效.
func RegionCapacityPattern(regionID string) string {
	return fmt.Sprintf("%s:region:%s:*", KeyPrefix, regionID)
}

// ClosurePlanLockKey 关闭计划保存的分布式锁键.
func ClosurePlanLockKey(floorID string, yearMonth string) string {
	return fmt.Sprintf("%s:lock:closure:%s:%s", KeyPrefix, floorID, yearMonth)
}
