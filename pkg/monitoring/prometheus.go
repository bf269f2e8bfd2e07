package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus 指标定义
var (
	// HTTP 请求相关指标
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP请求总数",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP请求耗时分布",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// 数据库相关指标
	dbConnectionsInUse = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_in_use",
			Help: "当前使用中的数据库连接数",
		},
	)

	// 仪表盘摘要相关指标
	summaryRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_summary_requests_total",
			Help: "仪表盘摘要请求总数",
		},
		[]string{"scope", "cache"},
	)

	summaryAggregateDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dashboard_aggregate_duration_seconds",
			Help:    "仪表盘聚合计算耗时分布",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 2.5, 5.0},
		},
	)

	snapshotRecordsFetched = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dashboard_snapshot_records",
			Help: "最近一次快照拉取的记录条数",
		},
		[]string{"collection"},
	)

	// 业务相关指标
	userLogins = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "user_logins_total",
			Help: "用户登录总数",
		},
	)

	ordersCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_created_total",
			Help: "创建订单总数",
		},
	)

	auditEventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "audit_events_published_total",
			Help: "审计事件投递总数",
		},
		[]string{"status"},
	)
)

// PrometheusMiddleware Gin中间件，用于收集HTTP指标
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		// 处理请求
		c.Next()

		// 记录指标
		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())

		httpRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			statusCode,
		).Inc()

		httpRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

// 业务指标记录函数
func RecordUserLogin() {
	userLogins.Inc()
}

func RecordOrderCreated() {
	ordersCreated.Inc()
}

func RecordSummaryRequest(scope string, cacheHit bool) {
	cache := "miss"
	if cacheHit {
		cache = "hit"
	}
	summaryRequestsTotal.WithLabelValues(scope, cache).Inc()
}

func RecordAggregateDuration(duration time.Duration) {
	summaryAggregateDuration.Observe(duration.Seconds())
}

func RecordSnapshotSize(collection string, count int) {
	snapshotRecordsFetched.WithLabelValues(collection).Set(float64(count))
}

func RecordAuditEvent(status string) {
	auditEventsPublished.WithLabelValues(status).Inc()
}

func UpdateDBConnections(inUse int) {
	dbConnectionsInUse.Set(float64(inUse))
}
