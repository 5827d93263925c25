package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mohamedn-hafez/CapcityControl/models/portal"
)

// InitDB 初始化数据库连接
func InitDB() (*gorm.DB, error) {
	// 配置 GORM 日志
	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second, // 慢 SQL 阈值
			IgnoreRecordNotFoundError: true,        // 忽略记录未找到错误
			Colorful:                  true,        // 彩色输出
			LogLevel:                  logger.Warn,
		},
	)

	db, err := gorm.Open(sqlite.Open("capacity.db"), &gorm.Config{
		Logger:      gormLogger,
		PrepareStmt: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %v", err)
	}

	// 获取底层 SQL DB 并设置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := AutoMigrate(db); err != nil {
		return nil, err
	}

	if err := SeedIfEmpty(db); err != nil {
		return nil, fmt.Errorf("failed to seed database: %v", err)
	}
	return db, nil
}

// AutoMigrate 自动迁移所有容量平台数据表
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&portal.Region{},
		&portal.Site{},
		&portal.Floor{},
		&portal.Zone{},
		&portal.Client{},
		&portal.Project{},
		&portal.Queue{},
		&portal.ZoneCapacity{},
		&portal.ProjectAssignment{},
		&portal.ClosurePlan{},
		&portal.Allocation{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %v", err)
	}
	return nil
}
