package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// RegionCapacityFunc 返回区域在指定月份(YYYY-MM)的可用容量合计.
// 生产环境绑定数据库查询(可带缓存), 测试中用内存表替代.
type RegionCapacityFunc func(ctx context.Context, yearMonth string) (int, error)

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

func splitYearMonth(yearMonth string) (int, int, error) {
	parts := strings.SplitN(yearMonth, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid yearMonth: %s", yearMonth)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid yearMonth: %s", yearMonth)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("invalid yearMonth: %s", yearMonth)
	}
	return year, month, nil
}

func formatYearMonth(year, month int) string {
	return fmt.Sprintf("%d-%02d", year, month)
}

func stringPtr(s string) *string {
	return &s
}

// FindStableClosureMonth 在当前自然年内寻找容量稳定的关闭月份.
// 目标月容量足够时只报告稳定区间; 不足时向后扫描, 仅当某月容量
// 足够且一直稳定到 12 月才给出建议, 否则提示无稳定月份. 永不跨年.
// 容量查询失败时错误原样上抛.
func FindStableClosureMonth(ctx context.Context, seatsNeeded int, startYearMonth string, capacityFor RegionCapacityFunc) (*DateRecommendation, error) {
	startYear, startMonth, err := splitYearMonth(startYearMonth)
	if err != nil {
		return nil, NewBadRequestError(err.Error())
	}

	currentCapacity, err := capacityFor(ctx, startYearMonth)
	if err != nil {
		return nil, err
	}

	if currentCapacity >= seatsNeeded {
		// 目标月已有容量, 检查能否稳定到年底
		stableThrough := startYearMonth
		isStableThroughDecember := true

		for month := startMonth + 1; month <= 12; month++ {
			yearMonth := formatYearMonth(startYear, month)
			monthCapacity, err := capacityFor(ctx, yearMonth)
			if err != nil {
				return nil, err
			}
			if monthCapacity >= seatsNeeded {
				stableThrough = yearMonth
			} else {
				isStableThroughDecember = false
				break
			}
		}

		rec := &DateRecommendation{
			HasCapacity:       true,
			CapacityAvailable: currentCapacity,
		}
		if isStableThroughDecember {
			rec.StableThrough = stringPtr(formatYearMonth(startYear, 12))
			rec.Reason = "Capacity available and stable through year-end"
		} else {
			_, stableMonth, _ := splitYearMonth(stableThrough)
			rec.StableThrough = stringPtr(stableThrough)
			rec.Reason = fmt.Sprintf("Capacity available but may need reallocation after %s", monthNames[stableMonth-1])
		}
		return rec, nil
	}

	// 目标月容量不足, 向后扫描同年剩余月份
	for month := startMonth + 1; month <= 12; month++ {
		yearMonth := formatYearMonth(startYear, month)
		monthCapacity, err := capacityFor(ctx, yearMonth)
		if err != nil {
			return nil, err
		}
		if monthCapacity < seatsNeeded {
			continue
		}

		isStableThroughDecember := true
		for futureMonth := month + 1; futureMonth <= 12; futureMonth++ {
			futureCapacity, err := capacityFor(ctx, formatYearMonth(startYear, futureMonth))
			if err != nil {
				return nil, err
			}
			if futureCapacity < seatsNeeded {
				isStableThroughDecember = false
				break
			}
		}

		// 只有稳定到 12 月的月份才值得建议
		if isStableThroughDecember {
			return &DateRecommendation{
				HasCapacity:           false,
				SuggestedClosureMonth: stringPtr(yearMonth),
				SuggestedMonthName:    fmt.Sprintf("%s %d", monthNames[month-1], startYear),
				CapacityAvailable:     monthCapacity,
				StableThrough:         stringPtr(formatYearMonth(startYear, 12)),
				Reason: fmt.Sprintf("No capacity in %s. Recommend closing in %s (stable through December)",
					monthNames[startMonth-1], monthNames[month-1]),
			}, nil
		}
	}

	return &DateRecommendation{
		HasCapacity: false,
		Reason:      "No month with stable capacity through December found. Consider adding new capacity or phased closure.",
	}, nil
}
