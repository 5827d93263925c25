package service

// ZoneCapacityRequest 分区月度容量写入请求, 按 (zoneId, yearMonth) 幂等更新
type ZoneCapacityRequest struct {
	ZoneID    string `json:"zoneId" binding:"required"`    // 分区ID
	YearMonth string `json:"yearMonth" binding:"required"` // 月份, "YYYY-MM"
	Capacity  int    `json:"capacity"`                     // 总座位容量
}

// ProjectAssignmentRequest 项目座位分配写入请求, 按 (zoneId, projectId, yearMonth) 幂等更新
type ProjectAssignmentRequest struct {
	ZoneID    string `json:"zoneId" binding:"required"`    // 分区ID
	ProjectID string `json:"projectId" binding:"required"` // 项目ID
	QueueID   string `json:"queueId" binding:"required"`   // 业务单元ID
	YearMonth string `json:"yearMonth" binding:"required"` // 月份, "YYYY-MM"
	Seats     int    `json:"seats"`                        // 占用座位数
}

// CopyMonthDataRequest 按月复制事实数据请求
type CopyMonthDataRequest struct {
	SourceMonth     string `json:"sourceMonth" binding:"required"` // 源月份
	TargetMonth     string `json:"targetMonth" binding:"required"` // 目标月份
	CopyCapacity    *bool  `json:"copyCapacity"`                   // 是否复制容量, 缺省 true
	CopyAssignments *bool  `json:"copyAssignments"`                // 是否复制项目占用, 缺省 true
}

// CopyMonthDataResponse 按月复制事实数据结果
type CopyMonthDataResponse struct {
	SourceMonth       string `json:"sourceMonth"`       // 源月份
	TargetMonth       string `json:"targetMonth"`       // 目标月份
	CapacitiesCopied  int    `json:"capacitiesCopied"`  // 复制的容量记录数
	AssignmentsCopied int    `json:"assignmentsCopied"` // 复制的分配记录数
}
