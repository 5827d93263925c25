package main

import (
	"fmt"
	"log"
	"os"

	"github.com/jinzhu/now"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mohamedn-hafez/CapcityControl/job/report"
)

var (
	rootCmd = &cobra.Command{
		Use:   "job",
		Short: "Capacity job runner",
		Long:  `Capacity job runner is a CLI tool for running offline jobs such as monthly capacity report generation.`,
	}

	// 全局标志
	mysqlDSN string
)

func init() {
	// 全局标志
	rootCmd.PersistentFlags().StringVar(&mysqlDSN, "mysql-dsn", "", "MySQL connection string (default: root:root@tcp(127.0.0.1:3306)/capacity?charset=utf8mb4&parseTime=True&loc=Local)")

	// 添加子命令
	rootCmd.AddCommand(reportCmd)
}

// report 命令
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run report generation jobs",
	Long:  `Run report generation jobs that export capacity data to files.`,
}

// capacity-report 命令
var (
	reportYearMonth string
	reportOutput    string

	capacityReportCmd = &cobra.Command{
		Use:   "capacity-report",
		Short: "Generate monthly capacity report",
		Long:  `Generate the monthly site capacity Excel report with per-zone occupancy and risk levels.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// 初始化数据库连接
			db, err := initDB(mysqlDSN)
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}

			logger, err := zap.NewProduction()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer logger.Sync() //nolint:errcheck

			// 未指定月份时默认当前自然月
			yearMonth := reportYearMonth
			if yearMonth == "" {
				yearMonth = now.BeginningOfMonth().Format("2006-01")
			}

			generator := report.NewCapacityReportGenerator(db, logger)
			path, err := generator.Run(cmd.Context(), yearMonth, reportOutput)
			if err != nil {
				return fmt.Errorf("failed to generate capacity report: %w", err)
			}

			logger.Info("capacity report written", zap.String("yearMonth", yearMonth), zap.String("path", path))
			return nil
		},
	}
)

func init() {
	// 将capacity-report命令添加到report命令下
	reportCmd.AddCommand(capacityReportCmd)

	// 添加capacity-report命令的标志
	capacityReportCmd.Flags().StringVar(&reportYearMonth, "year-month", "", "Report month in YYYY-MM format (default: current month)")
	capacityReportCmd.Flags().StringVar(&reportOutput, "output", "", "Output file path (default: capacity_report_<year-month>.xlsx)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
