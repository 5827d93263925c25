package main

import (
	"fmt"

	"github.com/pressly/goose"
	"github.com/spf13/cobra"

	_ "github.com/mohamedn-hafez/CapcityControl/migrations"
)

var migrationsDir string

// migrate 命令
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations",
	Long:  `Apply pending goose migrations to the MySQL database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := initDB(mysqlDSN)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return fmt.Errorf("failed to get sql.DB: %w", err)
		}
		if err := goose.SetDialect("mysql"); err != nil {
			return err
		}
		return goose.Up(sqlDB, migrationsDir)
	},
}

// migrate down 命令, 回滚最近一次迁移
var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the most recent migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := initDB(mysqlDSN)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return fmt.Errorf("failed to get sql.DB: %w", err)
		}
		if err := goose.SetDialect("mysql"); err != nil {
			return err
		}
		return goose.Down(sqlDB, migrationsDir)
	},
}

func init() {
	migrateCmd.PersistentFlags().StringVar(&migrationsDir, "dir", "migrations", "Directory holding the migration files")
	migrateCmd.AddCommand(migrateDownCmd)
	rootCmd.AddCommand(migrateCmd)
}
