package middleware

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestTokenBucketExhaustion(t *testing.T) {
	tb := NewTokenBucket(2, 0) // 不补充，便于断言
	ctx := context.Background()

	if !tb.Allow(ctx) || !tb.Allow(ctx) {
		t.Fatalf("expected first two requests to pass")
	}
	if tb.Allow(ctx) {
		t.Fatalf("expected third request to be rejected")
	}
}

func TestSlidingWindowLimit(t *testing.T) {
	sw := NewSlidingWindow(time.Minute, 3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if !sw.Allow(ctx) {
			t.Fatalf("request %d rejected under limit", i)
		}
	}
	if sw.Allow(ctx) {
		t.Fatalf("expected rejection over window limit")
	}
}

func TestCircuitBreakerOpensAndRecovers(t *testing.T) {
	cb := NewCircuitBreaker("test", 2, 10*time.Millisecond)
	ctx := context.Background()
	boom := errors.New("boom")
	fail := func() error { return boom }
	okFn := func() error { return nil }

	// 连续失败到阈值：打开
	_ = cb.Call(ctx, fail)
	_ = cb.Call(ctx, fail)
	if cb.GetState() != StateOpen {
		t.Fatalf("expected open after %d failures, got %s", 2, cb.GetState())
	}
	if err := cb.Call(ctx, okFn); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected ErrCircuitOpen, got %v", err)
	}

	// 超时后半开，探测成功即关闭
	time.Sleep(20 * time.Millisecond)
	if err := cb.Call(ctx, okFn); err != nil {
		t.Fatalf("expected probe to pass, got %v", err)
	}
	if cb.GetState() != StateClosed {
		t.Fatalf("expected closed after probe, got %s", cb.GetState())
	}
}

func TestCircuitBreakerReopensOnProbeFailure(t *testing.T) {
	cb := NewCircuitBreaker("test", 1, 10*time.Millisecond)
	ctx := context.Background()
	boom := errors.New("boom")

	_ = cb.Call(ctx, func() error { return boom })
	if cb.GetState() != StateOpen {
		t.Fatalf("expected open, got %s", cb.GetState())
	}

	time.Sleep(20 * time.Millisecond)
	_ = cb.Call(ctx, func() error { return boom })
	if cb.GetState() != StateOpen {
		t.Fatalf("expected reopen after failed probe, got %s", cb.GetState())
	}
}
