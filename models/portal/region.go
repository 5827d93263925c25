package portal

// Region 区域信息, 站点按区域划分, 搬迁分配不允许跨区域.
type Region struct {
	ID        string     `gorm:"column:id;type:varchar(50);primaryKey" json:"id"`            // 自然主键, 形如 reg_<code>
	Code      string     `gorm:"column:code;type:varchar(20);uniqueIndex;not null" json:"code"` // 区域编码
	Name      string     `gorm:"column:name;type:varchar(255);not null" json:"name"`         // 区域名称
	Country   string     `gorm:"column:country;type:varchar(100)" json:"country"`             // 所在国家
	CreatedAt PortalTime `gorm:"column:created_at;type:datetime" json:"createdAt"`
	UpdatedAt PortalTime `gorm:"column:updated_at;type:datetime" json:"updatedAt"`

	Sites []Site `gorm:"foreignKey:RegionID" json:"sites,omitempty"` // 区域内站点
}

// TableName 指定表名
func (Region) TableName() string {
	return "region"
}
