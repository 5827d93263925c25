package portal

// 站点状态常量. 只有 ACTIVE 站点可以作为搬迁分配的目标.
const (
	SiteStatusActive  = "ACTIVE"
	SiteStatusClosing = "CLOSING"
	SiteStatusPlanned = "PLANNED"
	SiteStatusClosed  = "CLOSED"
)

// Site 站点信息, 属于唯一一个区域.
type Site struct {
	ID          string      `gorm:"column:id;type:varchar(50);primaryKey" json:"id"`               // 自然主键, 形如 site_<code>
	Code        string      `gorm:"column:code;type:varchar(20);uniqueIndex;not null" json:"code"` // 站点编码
	Name        string      `gorm:"column:name;type:varchar(255);not null" json:"name"`            // 站点名称
	RegionID    string      `gorm:"column:region_id;type:varchar(50);index;not null" json:"regionId"` // 所属区域ID
	Status      string      `gorm:"column:status;type:varchar(20);not null;default:ACTIVE" json:"status"` // ACTIVE/CLOSING/PLANNED/CLOSED
	OpeningDate *PortalTime `gorm:"column:opening_date;type:datetime" json:"openingDate"`          // 开业日期(可空)
	ClosingDate *PortalTime `gorm:"column:closing_date;type:datetime" json:"closingDate"`          // 关闭日期(可空)
	CreatedAt   PortalTime  `gorm:"column:created_at;type:datetime" json:"createdAt"`
	UpdatedAt   PortalTime  `gorm:"column:updated_at;type:datetime" json:"updatedAt"`

	Region *Region `gorm:"foreignKey:RegionID" json:"region,omitempty"` // 所属区域
	Floors []Floor `gorm:"foreignKey:SiteID" json:"floors,omitempty"`   // 站点楼层
}

// TableName 指定表名
func (Site) TableName() string {
	return "site"
}
