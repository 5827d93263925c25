package portal

// Queue 业务单元(queue), 项目的组织分组, 搬迁时优先整体安置.
type Queue struct {
	ID        string     `gorm:"column:id;type:varchar(50);primaryKey" json:"id"`               // 自然主键, 形如 queue_<code>
	Code      string     `gorm:"column:code;type:varchar(20);uniqueIndex;not null" json:"code"` // 业务单元编码
	Name      string     `gorm:"column:name;type:varchar(255);not null" json:"name"`            // 业务单元名称
	CreatedAt PortalTime `gorm:"column:created_at;type:datetime" json:"createdAt"`
	UpdatedAt PortalTime `gorm:"column:updated_at;type:datetime" json:"updatedAt"`
}

// TableName 指定表名
func (Queue) TableName() string {
	return "queue"
}
