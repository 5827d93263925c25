package portal

// Allocation 已确认的安置记录, 由调用方在采纳推荐后写入, 引擎本身只读.
type Allocation struct {
	BaseModel
	ClosurePlanID string `gorm:"column:closure_plan_id;type:varchar(50);index;not null" json:"closurePlanId"` // 关闭计划ID
	TargetZoneID  string `gorm:"column:target_zone_id;type:varchar(50);index;not null" json:"targetZoneId"`   // 目标分区ID
	AllocatedSeats int   `gorm:"column:allocated_seats;type:int;not null;default:0" json:"allocatedSeats"`    // 安置座位数
	IsManual      bool   `gorm:"column:is_manual;not null;default:false" json:"isManual"`                     // 是否人工调整

	TargetZone *Zone `gorm:"foreignKey:TargetZoneID" json:"targetZone,omitempty"` // 目标分区
}

// TableName 指定表名
func (Allocation) TableName() string {
	return "allocation"
}
