package portal

// ZoneCapacity 分区月度容量事实表, (zone_id, year_month) 唯一.
type ZoneCapacity struct {
	BaseModel
	ZoneID    string `gorm:"column:zone_id;type:varchar(50);not null;uniqueIndex:uk_zone_month" json:"zoneId"`    // 分区ID
	YearMonth string `gorm:"column:year_month;type:varchar(7);not null;uniqueIndex:uk_zone_month" json:"yearMonth"` // 月份, "YYYY-MM"
	Capacity  int    `gorm:"column:capacity;type:int;not null;default:0" json:"capacity"`                         // 总座位容量

	Zone *Zone `gorm:"foreignKey:ZoneID" json:"zone,omitempty"` // 所属分区
}

// TableName 指定表名
func (ZoneCapacity) TableName() string {
	return "zone_capacity"
}
