package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bazaar-go-admin/config"
	"bazaar-go-admin/db"
	"bazaar-go-admin/middleware"
	"bazaar-go-admin/mongodb"
	"bazaar-go-admin/pkg/cache"
	pkgconfig "bazaar-go-admin/pkg/config"
	"bazaar-go-admin/pkg/monitoring"
	"bazaar-go-admin/redis"
	"bazaar-go-admin/router"
	"bazaar-go-admin/services"
	"bazaar-go-admin/services/public_service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// 构建时注入的变量
var (
	Version            = "dev"
	BuildTime          = "unknown"
	GitCommit          = "unknown"
	DefaultServiceName = "bazaar-go-admin"
	DefaultRouterMode  = "all"
	DefaultPort        = "8801"
)

// getEnv 获取环境变量，如果不存在则返回默认值
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	// 处理命令行参数
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "-version", "--version", "-v":
			fmt.Printf("Bazaar Go Admin\n")
			fmt.Printf("Version: %s\n", Version)
			fmt.Printf("Build Time: %s\n", BuildTime)
			fmt.Printf("Git Commit: %s\n", GitCommit)
			return
		case "-help", "--help", "-h":
			fmt.Printf("Bazaar Go Admin - 多商家集市管理系统\n\n")
			fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
			fmt.Printf("Options:\n")
			fmt.Printf("  -version, -v     显示版本信息\n")
			fmt.Printf("  -help, -h        显示帮助信息\n\n")
			fmt.Printf("Environment Variables:\n")
			fmt.Printf("  SERVICE_NAME     服务名称 (默认: %s)\n", DefaultServiceName)
			fmt.Printf("  ROUTER_MODE      路由模式 (默认: %s)\n", DefaultRouterMode)
			fmt.Printf("  PORT             服务端口 (默认: %s)\n", DefaultPort)
			fmt.Printf("\nAvailable Router Modes:\n")
			fmt.Printf("  all      - 所有路由 (默认)\n")
			fmt.Printf("  admin    - 管理后台路由\n")
			fmt.Printf("  app      - 买家端路由\n")
			return
		}
	}

	serviceName := getEnv("SERVICE_NAME", DefaultServiceName)
	routerMode := getEnv("ROUTER_MODE", DefaultRouterMode)
	port := getEnv("PORT", DefaultPort)

	log.Printf("启动 %s (模式: %s, 端口: %s)...", serviceName, routerMode, port)

	// 初始化 Redis 客户端
	redisConfig := config.LoadConfig()
	redis.InitRedis(redisConfig)

	// 初始化配置
	if err := pkgconfig.InitConfig(); err != nil {
		log.Fatalf("配置初始化失败: %v", err)
	}

	// 初始化数据库
	db.Init()

	// 初始化 MongoDB 客户端
	mongodb.InitMongoDB()

	// 初始化缓存
	cache.InitCache(redis.GetClient())

	// 初始化审计事件队列
	services.InitAuditService()

	// 设置Gin模式
	gin.SetMode(gin.ReleaseMode)
	app := gin.New()

	// 添加全局中间件
	app.Use(middleware.Recovery())
	app.Use(middleware.SecureHeaders())
	app.Use(middleware.Performance())
	app.Use(middleware.RequestLogger("logs"))
	app.Use(middleware.Cors())

	// 根据服务类型设置不同的限流
	switch routerMode {
	case "admin":
		app.Use(middleware.RateLimit(500)) // 管理后台较低限制
	case "app":
		app.Use(middleware.RateLimit(2000)) // 买家端较高限制
	default:
		app.Use(middleware.RateLimit(1000)) // 默认限制
	}

	// 添加 Prometheus 监控中间件
	app.Use(monitoring.PrometheusMiddleware())

	// 添加监控指标端点
	app.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 健康检查端点
	app.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service":       serviceName,
			"mode":          routerMode,
			"status":        "healthy",
			"timestamp":     time.Now(),
			"redis":         redis.IsConnected(),
			"ws_clients":    public_service.Hub.ClientCount(),
			"audit_enabled": services.GlobalAudit != nil,
		})
	})

	// 根据模式初始化不同的路由
	switch routerMode {
	case "admin":
		log.Printf("初始化管理后台路由...")
		router.Init(app)
		router.InitAdmin(app)
	case "app":
		log.Printf("初始化买家端路由...")
		router.Init(app)
		router.InitApp(app)
	default:
		log.Printf("初始化所有路由...")
		router.Init(app)
		router.InitApp(app)
		router.InitAdmin(app)
	}

	// 创建HTTP服务器
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      app,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 启动服务器
	go func() {
		log.Printf("服务器启动在端口 :%s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("服务启动失败: %v", err)
		}
	}()

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Printf("正在关闭服务器...")

	// 设置关闭超时
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// 关闭HTTP服务器
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("服务器强制关闭: %v", err)
	}

	// 关闭审计事件队列
	if services.GlobalAudit != nil {
		services.GlobalAudit.Close()
	}

	// 关闭Redis连接
	redis.CloseRedis()

	log.Printf("服务器已安全关闭")
}
