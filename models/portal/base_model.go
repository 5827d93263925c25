/*
Package portal 提供座位容量管理平台的数据模型定义.
*/
package portal

// BaseModel 事实表基础模型.
type BaseModel struct {
	ID        int64      `gorm:"primaryKey;autoIncrement" json:"id"`               // 主键ID
	CreatedAt PortalTime `gorm:"column:created_at;type:datetime" json:"createdAt"` // 创建时间
	UpdatedAt PortalTime `gorm:"column:updated_at;type:datetime" json:"updatedAt"` // 更新时间
}
