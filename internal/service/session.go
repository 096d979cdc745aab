package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"dealerhub/internal/cache"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionTTL 為 session 的有效期間
const SessionTTL = 24 * time.Hour

// sessionKeyPrefix 為 Redis 中 session 紀錄的前綴
const sessionKeyPrefix = "session:"

// ErrSessionNotFound 表示 Redis 中沒有對應的 session 紀錄（已登出或過期）
var ErrSessionNotFound = errors.New("session not found")

// SessionClaims 定義 session token 的 JWT 負載內容
// RegisteredClaims.ID (jti) 即為 Redis session 紀錄的鍵
type SessionClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// StartSession 建立 Redis session 紀錄並簽發對應的 session token
// 成功回傳可放入 cookie 的 token 字串
func StartSession(ctx context.Context, cch cache.Cache, username string, ttl time.Duration) (string, error) {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		return "", fmt.Errorf("SESSION_SECRET not set")
	}

	sessionID := uuid.NewString()
	if err := cch.Set(ctx, sessionKeyPrefix+sessionID, username, ttl).Err(); err != nil {
		return "", fmt.Errorf("StartSession: %w", err)
	}

	now := time.Now()
	claims := SessionClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifySessionToken 驗證並解析 session token
func VerifySessionToken(tokenString string) (*SessionClaims, error) {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("SESSION_SECRET not set")
	}

	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// SessionUser 驗證 token 並確認 Redis 中的 session 仍然有效
// 回傳 session 所屬的使用者名稱
func SessionUser(ctx context.Context, cch cache.Cache, tokenString string) (string, error) {
	claims, err := VerifySessionToken(tokenString)
	if err != nil {
		return "", err
	}

	username, err := cch.Get(ctx, sessionKeyPrefix+claims.ID).Result()
	if err != nil {
		return "", ErrSessionNotFound
	}
	// token 竄改時簽章驗證就會擋下，這裡再比對一次負載與紀錄
	if username != claims.Username {
		return "", ErrSessionNotFound
	}
	return username, nil
}

// EndSession 刪除 token 對應的 Redis session 紀錄
// token 無效時不視為錯誤，登出永遠成功
func EndSession(ctx context.Context, cch cache.Cache, tokenString string) {
	claims, err := VerifySessionToken(tokenString)
	if err != nil {
		return
	}
	_ = cch.Del(ctx, sessionKeyPrefix+claims.ID).Err()
}
