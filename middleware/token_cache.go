package middleware

import (
	"fmt"
	"os"
	"sync"
	"time"

	jwtLib "github.com/golang-jwt/jwt/v5"
)

// WebSocket握手的令牌缓存，避免高频连接反复做签名校验
var (
	tokenCache = make(map[string]tokenCacheEntry)
	cacheMutex = &sync.RWMutex{}
)

type tokenCacheEntry struct {
	UserID    int
	Role      string
	ExpiresAt time.Time
}

// ParseAdminTokenCached 解析JWT令牌并返回用户ID与角色，带缓存
func ParseAdminTokenCached(tokenString string) (int, string, error) {
	if tokenString == "" {
		return 0, "", fmt.Errorf("token不能为空")
	}
	if len(tokenString) > 7 && tokenString[:7] == "Bearer " {
		tokenString = tokenString[7:]
	}

	// 检查缓存
	cacheMutex.RLock()
	entry, found := tokenCache[tokenString]
	cacheMutex.RUnlock()

	if found && time.Now().Before(entry.ExpiresAt) {
		return entry.UserID, entry.Role, nil
	}

	signingKey := os.Getenv("JWT_SIGNING_KEY")
	if signingKey == "" {
		signingKey = "default-secret-key"
	}

	// 解析令牌
	token, err := jwtLib.Parse(tokenString, func(token *jwtLib.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwtLib.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(signingKey), nil
	})
	if err != nil {
		return 0, "", fmt.Errorf("无效令牌: %w", err)
	}

	claims, ok := token.Claims.(jwtLib.MapClaims)
	if !ok || !token.Valid {
		return 0, "", fmt.Errorf("无效令牌")
	}

	uid, ok := claims["uid"].(float64)
	if !ok {
		return 0, "", fmt.Errorf("令牌中无法找到用户ID")
	}
	role, _ := claims["role"].(string)

	// 缓存结果，过期时间不超过令牌自身的exp
	expiresAt := time.Now().Add(30 * time.Minute)
	if exp, ok := claims["exp"].(float64); ok {
		expTime := time.Unix(int64(exp), 0)
		if expTime.Before(expiresAt) {
			expiresAt = expTime
		}
	}

	cacheMutex.Lock()
	tokenCache[tokenString] = tokenCacheEntry{
		UserID:    int(uid),
		Role:      role,
		ExpiresAt: expiresAt,
	}
	cacheMutex.Unlock()

	return int(uid), role, nil
}

// 定期清理过期缓存项
func init() {
	go func() {
		for {
			time.Sleep(15 * time.Minute)
			cleanExpiredTokens()
		}
	}()
}

func cleanExpiredTokens() {
	now := time.Now()
	cacheMutex.Lock()
	defer cacheMutex.Unlock()

	for token, entry := range tokenCache {
		if now.After(entry.ExpiresAt) {
			delete(tokenCache, token)
		}
	}
}
