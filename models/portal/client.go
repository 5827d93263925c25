package portal

// Client 客户, 项目的归属方, 仅用于分组与展示.
type Client struct {
	ID        string     `gorm:"column:id;type:varchar(50);primaryKey" json:"id"`               // 自然主键, 形如 client_<code>
	Code      string     `gorm:"column:code;type:varchar(20);uniqueIndex;not null" json:"code"` // 客户编码
	Name      string     `gorm:"column:name;type:varchar(255)" json:"name"`                     // 客户名称(可空)
	CreatedAt PortalTime `gorm:"column:created_at;type:datetime" json:"createdAt"`
	UpdatedAt PortalTime `gorm:"column:updated_at;type:datetime" json:"updatedAt"`

	Projects []Project `gorm:"foreignKey:ClientID" json:"projects,omitempty"` // 客户项目
}

// TableName 指定表名
func (Client) TableName() string {
	return "client"
}

// Project 项目, 搬迁分配的最小不可拆分单元: 同一项目的座位不会被拆到两个目标站点.
type Project struct {
	ID        string     `gorm:"column:id;type:varchar(50);primaryKey" json:"id"`               // 自然主键, 形如 proj_<code>
	Code      string     `gorm:"column:code;type:varchar(20);uniqueIndex;not null" json:"code"` // 项目编码
	Name      string     `gorm:"column:name;type:varchar(255)" json:"name"`                     // 项目名称(可空)
	ClientID  string     `gorm:"column:client_id;type:varchar(50);index;not null" json:"clientId"` // 所属客户ID
	CreatedAt PortalTime `gorm:"column:created_at;type:datetime" json:"createdAt"`
	UpdatedAt PortalTime `gorm:"column:updated_at;type:datetime" json:"updatedAt"`

	Client *Client `gorm:"foreignKey:ClientID" json:"client,omitempty"` // 所属客户
}

// TableName 指定表名
func (Project) TableName() string {
	return "project"
}
