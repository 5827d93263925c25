package portal

// Floor 楼层, 关闭计划以楼层为粒度: 楼层关闭时其下所有分区一并腾空.
type Floor struct {
	ID        string     `gorm:"column:id;type:varchar(50);primaryKey" json:"id"`              // 自然主键, 形如 floor_<siteCode><floorCode>
	Code      string     `gorm:"column:code;type:varchar(20);not null" json:"code"`            // 楼层编码
	Name      string     `gorm:"column:name;type:varchar(255);not null" json:"name"`           // 楼层名称
	SiteID    string     `gorm:"column:site_id;type:varchar(50);index;not null" json:"siteId"` // 所属站点ID
	CreatedAt PortalTime `gorm:"column:created_at;type:datetime" json:"createdAt"`
	UpdatedAt PortalTime `gorm:"column:updated_at;type:datetime" json:"updatedAt"`

	Site         *Site         `gorm:"foreignKey:SiteID" json:"site,omitempty"`          // 所属站点
	Zones        []Zone        `gorm:"foreignKey:FloorID" json:"zones,omitempty"`        // 楼层分区
	ClosurePlans []ClosurePlan `gorm:"foreignKey:FloorID" json:"closurePlans,omitempty"` // 楼层关闭计划
}

// TableName 指定表名
func (Floor) TableName() string {
	return "floor"
}
