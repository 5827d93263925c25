package portal

// ProjectAssignment 分区月度项目座位分配事实表, (zone_id, project_id, year_month) 唯一.
// 一个分区在某月的占用座位数 = 该分区当月所有分配记录的座位数之和.
type ProjectAssignment struct {
	BaseModel
	ZoneID    string `gorm:"column:zone_id;type:varchar(50);not null;uniqueIndex:uk_zone_project_month" json:"zoneId"`       // 分区ID
	ProjectID string `gorm:"column:project_id;type:varchar(50);not null;uniqueIndex:uk_zone_project_month" json:"projectId"` // 项目ID
	QueueID   string `gorm:"column:queue_id;type:varchar(50);not null;index" json:"queueId"`                                 // 业务单元ID
	YearMonth string `gorm:"column:year_month;type:varchar(7);not null;uniqueIndex:uk_zone_project_month" json:"yearMonth"`  // 月份, "YYYY-MM"
	Seats     int    `gorm:"column:seats;type:int;not null;default:0" json:"seats"`                                          // 占用座位数

	Zone    *Zone    `gorm:"foreignKey:ZoneID" json:"zone,omitempty"`       // 所属分区
	Project *Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"` // 项目
	Queue   *Queue   `gorm:"foreignKey:QueueID" json:"queue,omitempty"`     // 业务单元
}

// TableName 指定表名
func (ProjectAssignment) TableName() string {
	return "project_assignment"
}
