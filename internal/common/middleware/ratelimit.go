package middleware

import (
	"context"
	"sync"
	"time"
)

// RateLimiter 限流器接口，网关和 gRPC 拦截器共用。
type RateLimiter interface {
	Allow(ctx context.Context) bool
}

// TokenBucket 令牌桶限流器。
// 懒惰补充：每次 Allow 时按距上次补充的时间折算新令牌，无后台 goroutine。
type TokenBucket struct {
	mu         sync.Mutex
	capacity   float64
	tokens     float64
	refillRate float64 // 每秒补充的令牌数
	lastRefill time.Time
}

// NewTokenBucket 创建令牌桶，初始为满。
func NewTokenBucket(capacity, refillRate int64) *TokenBucket {
	return &TokenBucket{
		capacity:   float64(capacity),
		tokens:     float64(capacity),
		refillRate: float64(refillRate),
		lastRefill: time.Now(),
	}
}

// Allow 取走一个令牌；桶空时拒绝。
func (tb *TokenBucket) Allow(ctx context.Context) bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	tb.tokens += now.Sub(tb.lastRefill).Seconds() * tb.refillRate
	if tb.tokens > tb.capacity {
		tb.tokens = tb.capacity
	}
	tb.lastRefill = now

	if tb.tokens < 1 {
		return false
	}
	tb.tokens--
	return true
}

// SlidingWindow 滑动窗口限流器：窗口内最多 maxRequests 次请求。
type SlidingWindow struct {
	mu          sync.Mutex
	requests    []time.Time
	window      time.Duration
	maxRequests int
}

// NewSlidingWindow 创建滑动窗口限流器。
func NewSlidingWindow(window time.Duration, maxRequests int) *SlidingWindow {
	return &SlidingWindow{
		window:      window,
		maxRequests: maxRequests,
	}
}

// Allow 记录并判断本次请求是否在窗口余量内。
func (sw *SlidingWindow) Allow(ctx context.Context) bool {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	windowStart := time.Now().Add(-sw.window)

	// 原地裁掉窗口外的旧请求（requests 按时间有序）
	i := 0
	for i < len(sw.requests) && !sw.requests[i].After(windowStart) {
		i++
	}
	sw.requests = sw.requests[i:]

	if len(sw.requests) >= sw.maxRequests {
		return false
	}
	sw.requests = append(sw.requests, time.Now())
	return true
}
