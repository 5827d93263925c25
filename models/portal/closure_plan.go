package portal

// 关闭计划状态常量. 引擎只把 PLANNED 视为生效/排他状态.
const (
	ClosurePlanStatusPlanned   = "PLANNED"
	ClosurePlanStatusCompleted = "COMPLETED"
	ClosurePlanStatusCancelled = "CANCELLED"
)

// ClosurePlan 楼层关闭计划. 关闭月(含)之后该楼层不再贡献任何容量与占用.
type ClosurePlan struct {
	ID            string     `gorm:"column:id;type:varchar(50);primaryKey" json:"id"`                 // 自然主键, 形如 cp_<siteCode><floorCode>
	FloorID       string     `gorm:"column:floor_id;type:varchar(50);index;not null" json:"floorId"`  // 关闭楼层ID
	ClosureDate   PortalTime `gorm:"column:closure_date;type:datetime;not null" json:"closureDate"`   // 关闭日期
	YearMonth     string     `gorm:"column:year_month;type:varchar(7);not null;index" json:"yearMonth"` // 关闭月份, 由关闭日期导出
	SeatsAffected int        `gorm:"column:seats_affected;type:int;not null;default:0" json:"seatsAffected"` // 受影响座位数
	Status        string     `gorm:"column:status;type:varchar(20);not null;default:PLANNED" json:"status"`  // PLANNED/COMPLETED/CANCELLED
	CreatedAt     PortalTime `gorm:"column:created_at;type:datetime" json:"createdAt"`
	UpdatedAt     PortalTime `gorm:"column:updated_at;type:datetime" json:"updatedAt"`

	Floor       *Floor       `gorm:"foreignKey:FloorID" json:"floor,omitempty"`             // 关闭楼层
	Allocations []Allocation `gorm:"foreignKey:ClosurePlanID" json:"allocations,omitempty"` // 已保存的安置方案
}

// TableName 指定表名
func (ClosurePlan) TableName() string {
	return "closure_plan"
}
