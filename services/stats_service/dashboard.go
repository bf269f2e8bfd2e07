package stats_service

import (
	"context"
	"fmt"
	"time"

	"bazaar-go-admin/inout"
	"bazaar-go-admin/pkg/cache"
	"bazaar-go-admin/pkg/monitoring"
)

// summaryCacheTTL 摘要缓存时长，与缓存键的纪元粒度保持一致
const summaryCacheTTL = 60 * time.Second

// DashboardService 仪表盘编排：解析快照、聚合、缓存
type DashboardService struct {
	store RecordStore
	cache *cache.CacheManager
}

func NewDashboardService(store RecordStore, cacheManager *cache.CacheManager) *DashboardService {
	return &DashboardService{
		store: store,
		cache: cacheManager,
	}
}

// summaryCacheKey 缓存键按 (可见域, 60秒纪元) 组合
// 纪元保证缓存不会跨窗口边界生效，可见域保证商家之间互不串读
func summaryCacheKey(scope Scope, now time.Time) string {
	epoch := now.Unix() / int64(summaryCacheTTL.Seconds())
	return fmt.Sprintf("dashboard:summary:%s:%d", scope.CacheKey(), epoch)
}

// GetSummary 计算指定可见域下的仪表盘摘要
// 快照拉取失败直接上抛，不降级为部分结果，引擎内部也不做重试
func (s *DashboardService) GetSummary(ctx context.Context, scope Scope) (*inout.AdminSummary, error) {
	now := time.Now()
	cacheKey := summaryCacheKey(scope, now)

	if s.cache != nil {
		var cached inout.AdminSummary
		if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
			monitoring.RecordSummaryRequest(scope.CacheKey(), true)
			return &cached, nil
		}
	}

	snap, err := FetchSnapshot(ctx, s.store)
	if err != nil {
		return nil, fmt.Errorf("获取记录快照失败: %w", err)
	}
	monitoring.RecordSnapshotSize("orders", len(snap.Orders))
	monitoring.RecordSnapshotSize("products", len(snap.Products))
	monitoring.RecordSnapshotSize("vendors", len(snap.Vendors))

	aggStart := time.Now()
	summary := Aggregate(snap, scope, now)
	monitoring.RecordAggregateDuration(time.Since(aggStart))
	monitoring.RecordSummaryRequest(scope.CacheKey(), false)

	if s.cache != nil {
		s.cache.Set(ctx, cacheKey, summary, summaryCacheTTL)
	}
	return summary, nil
}
