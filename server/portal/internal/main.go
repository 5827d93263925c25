package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mohamedn-hafez/CapcityControl/pkg/redis"
	"github.com/mohamedn-hafez/CapcityControl/server/portal/internal/database"
	"github.com/mohamedn-hafez/CapcityControl/server/portal/internal/routers"
)

// @title           CapacityControl API
// @version         1.0
// @description     座位容量与搬迁安置平台 API 文档

// @host      localhost:8080
// @BasePath  /fe-v1

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// 初始化数据库连接(自动迁移 + 空库时写入演示数据)
	db, err := database.InitDB()
	if err != nil {
		log.Fatalf("failed to init database: %v", err)
	}

	// redis 可选, 连接失败只记一条日志, 相关服务自行降级
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		if err := redis.Init(routers.RedisDefault, addr, os.Getenv("REDIS_PASSWORD")); err != nil {
			logger.Warn("redis unavailable, capacity cache disabled", zap.Error(err))
		}
	}

	// 初始化路由处理器
	dashboardHandler := routers.NewDashboardHandler(db, logger)
	closureHandler := routers.NewClosureHandler(db, logger)
	allocationHandler := routers.NewAllocationHandler(db, logger)
	adminHandler := routers.NewAdminHandler(db, logger)
	factHandler := routers.NewFactHandler(db, logger)

	// 创建 Gin 引擎
	r := gin.Default()

	// 配置 CORS 中间件
	configureCORS(r)

	// 注册路由
	api := r.Group("/fe-v1")
	dashboardHandler.RegisterRoutes(api)
	closureHandler.RegisterRoutes(api)
	allocationHandler.RegisterRoutes(api)
	adminHandler.RegisterRoutes(api)
	factHandler.RegisterRoutes(api)

	// 启动服务器
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	log.Printf("Starting server on %s", addr)
	if err := r.Run(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to run server: %v", err)
	}
}

func configureCORS(r *gin.Engine) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
