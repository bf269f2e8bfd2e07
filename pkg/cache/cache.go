package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// CacheManager 两级缓存：本地内存优先，Redis 兜底
// 仪表盘摘要等短 TTL 结果走这里，键内必须自带可见域信息
type CacheManager struct {
	redis *redis.Client

	mu    sync.RWMutex
	local map[string]localEntry
}

type localEntry struct {
	data      []byte
	expiresAt time.Time
}

// NewCacheManager 创建缓存管理器，redisClient 可为 nil（仅本地缓存）
func NewCacheManager(redisClient *redis.Client) *CacheManager {
	cm := &CacheManager{
		redis: redisClient,
		local: make(map[string]localEntry),
	}
	go cm.evictLoop()
	return cm
}

// Get 读取缓存并反序列化到 dest，未命中返回错误
func (cm *CacheManager) Get(ctx context.Context, key string, dest interface{}) error {
	if data, ok := cm.getLocal(key); ok {
		return json.Unmarshal(data, dest)
	}

	if cm.redis != nil {
		data, err := cm.redis.Get(ctx, key).Bytes()
		if err == nil {
			cm.setLocal(key, data, time.Minute)
			return json.Unmarshal(data, dest)
		}
	}

	return fmt.Errorf("cache miss: %s", key)
}

// Set 写入本地与 Redis，Redis 写入异步进行不阻塞请求
func (cm *CacheManager) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	cm.setLocal(key, data, ttl)

	if cm.redis != nil {
		go func() {
			writeCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			cm.redis.Set(writeCtx, key, data, ttl)
		}()
	}
	return nil
}

// Delete 删除本地与 Redis 中的键
func (cm *CacheManager) Delete(ctx context.Context, key string) {
	cm.mu.Lock()
	delete(cm.local, key)
	cm.mu.Unlock()

	if cm.redis != nil {
		cm.redis.Del(ctx, key)
	}
}

func (cm *CacheManager) getLocal(key string) ([]byte, bool) {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	entry, ok := cm.local[key]
	if !ok || time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.data, true
}

func (cm *CacheManager) setLocal(key string, data []byte, ttl time.Duration) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.local[key] = localEntry{data: data, expiresAt: time.Now().Add(ttl)}
}

// evictLoop 定期清理过期的本地条目
func (cm *CacheManager) evictLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		cm.mu.Lock()
		for key, entry := range cm.local {
			if now.After(entry.expiresAt) {
				delete(cm.local, key)
			}
		}
		cm.mu.Unlock()
	}
}

// GlobalCache 全局缓存实例
var GlobalCache *CacheManager

// InitCache 初始化全局缓存
func InitCache(redisClient *redis.Client) {
	GlobalCache = NewCacheManager(redisClient)
}
