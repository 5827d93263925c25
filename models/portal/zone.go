package portal

// Zone 分区, 最小的物理座位单元, 属于唯一一个楼层.
type Zone struct {
	ID                string     `gorm:"column:id;type:varchar(50);primaryKey" json:"id"`                // 自然主键, 形如 zone_<siteFloorZoneCode>
	Code              string     `gorm:"column:code;type:varchar(20);not null" json:"code"`              // 分区编码
	Name              string     `gorm:"column:name;type:varchar(255);not null" json:"name"`             // 分区名称
	SiteFloorZoneCode string     `gorm:"column:site_floor_zone_code;type:varchar(50);uniqueIndex" json:"siteFloorZoneCode"` // 站点-楼层-分区组合编码
	FloorID           string     `gorm:"column:floor_id;type:varchar(50);index;not null" json:"floorId"` // 所属楼层ID
	CreatedAt         PortalTime `gorm:"column:created_at;type:datetime" json:"createdAt"`
	UpdatedAt         PortalTime `gorm:"column:updated_at;type:datetime" json:"updatedAt"`

	Floor              *Floor              `gorm:"foreignKey:FloorID" json:"floor,omitempty"`             // 所属楼层
	ZoneCapacities     []ZoneCapacity      `gorm:"foreignKey:ZoneID" json:"zoneCapacities,omitempty"`     // 月度容量记录
	ProjectAssignments []ProjectAssignment `gorm:"foreignKey:ZoneID" json:"projectAssignments,omitempty"` // 月度项目座位分配
}

// TableName 指定表名
func (Zone) TableName() string {
	return "zone"
}
