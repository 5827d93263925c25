package migrations

import (
	"database/sql"

	"github.com/pressly/goose"
)

func init() {
	goose.AddMigration(upAddQueueIDToProjectAssignment, downAddQueueIDToProjectAssignment)
}

// 给项目座位分配表加业务单元ID列. 业务单元由写入方随分配记录一起提供,
// 存量行没有可回填的来源, 保持空串, 由后续 upsert 覆盖.
func upAddQueueIDToProjectAssignment(tx *sql.Tx) error {
	// 1. 添加 queue_id 列
	_, err := tx.Exec(`
		ALTER TABLE project_assignment
		ADD COLUMN queue_id VARCHAR(50) NOT NULL DEFAULT ''
		COMMENT '业务单元ID' AFTER project_id;
	`)
	if err != nil {
		return err
	}

	// 2. 建索引
	_, err = tx.Exec(`
		CREATE INDEX idx_project_assignment_queue_id ON project_assignment (queue_id);
	`)
	return err
}

// 回滚更改
func downAddQueueIDToProjectAssignment(tx *sql.Tx) error {
	_, err := tx.Exec(`
		DROP INDEX idx_project_assignment_queue_id ON project_assignment;
	`)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
		ALTER TABLE project_assignment
		DROP COLUMN queue_id;
	`)
	return err
}
