package middleware

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrCircuitOpen 熔断器处于打开状态，请求被直接拒绝。
var ErrCircuitOpen = errors.New("circuit breaker is open")

// ErrTooManyProbes 半开状态下探测请求已达上限。
var ErrTooManyProbes = errors.New("circuit breaker half-open limit reached")

// CircuitBreakerState 熔断器状态。
type CircuitBreakerState int

const (
	StateClosed   CircuitBreakerState = iota // 正常放行
	StateOpen                                // 熔断中
	StateHalfOpen                            // 恢复探测中
)

func (s CircuitBreakerState) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// CircuitBreaker 按连续失败次数熔断的简单熔断器。
// 打开 resetTimeout 后转半开，放行少量探测请求；探测成功即关闭，失败重新打开。
type CircuitBreaker struct {
	mu            sync.RWMutex
	name          string
	maxFailures   int
	resetTimeout  time.Duration
	halfOpenMax   int
	failures      int
	halfOpenCount int
	state         CircuitBreakerState
	lastFailTime  time.Time
}

// NewCircuitBreaker 创建熔断器。
func NewCircuitBreaker(name string, maxFailures int, resetTimeout time.Duration) *CircuitBreaker {
	return &CircuitBreaker{
		name:         name,
		maxFailures:  maxFailures,
		resetTimeout: resetTimeout,
		halfOpenMax:  3,
		state:        StateClosed,
	}
}

// Call 在熔断器保护下执行 fn。
func (cb *CircuitBreaker) Call(ctx context.Context, fn func() error) error {
	if err := cb.beforeCall(); err != nil {
		return err
	}
	err := fn()
	cb.afterCall(err)
	return err
}

func (cb *CircuitBreaker) beforeCall() error {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == StateOpen {
		if time.Since(cb.lastFailTime) < cb.resetTimeout {
			return ErrCircuitOpen
		}
		cb.state = StateHalfOpen
		cb.halfOpenCount = 0
	}
	if cb.state == StateHalfOpen {
		if cb.halfOpenCount >= cb.halfOpenMax {
			return ErrTooManyProbes
		}
		cb.halfOpenCount++
	}
	return nil
}

func (cb *CircuitBreaker) afterCall(err error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if err == nil {
		if cb.state == StateHalfOpen {
			cb.state = StateClosed
			cb.halfOpenCount = 0
		}
		cb.failures = 0
		return
	}

	cb.failures++
	cb.lastFailTime = time.Now()
	switch {
	case cb.state == StateHalfOpen:
		cb.state = StateOpen
		cb.halfOpenCount = 0
	case cb.failures >= cb.maxFailures:
		cb.state = StateOpen
	}
}

// GetState 读取当前状态。
func (cb *CircuitBreaker) GetState() CircuitBreakerState {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state
}
