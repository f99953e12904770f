package permit

import (
	"testing"
	"time"
)

func TestCanTransitionAndApply(t *testing.T) {
	if !CanTransition(StatusActive, StatusRevoked) {
		t.Fatalf("expected active -> revoked allowed")
	}
	if !CanTransition(StatusActive, StatusExpired) {
		t.Fatalf("expected active -> expired allowed")
	}
	if CanTransition(StatusRevoked, StatusActive) {
		t.Fatalf("expected revoked -> active not allowed")
	}
	if CanTransition(StatusExpired, StatusRevoked) {
		t.Fatalf("expected expired -> revoked not allowed")
	}

	p := &Permit{Status: StatusActive}
	now := time.Now()
	if err := ApplyTransition(p, StatusRevoked, now); err != nil {
		t.Fatalf("ApplyTransition: %v", err)
	}
	if p.Status != StatusRevoked {
		t.Fatalf("expected status revoked, got %s", p.Status)
	}
	if p.RevokedAt == nil || !p.RevokedAt.Equal(now) {
		t.Fatalf("expected revoked_at set to now")
	}

	if err := ApplyTransition(p, StatusExpired, now); err == nil {
		t.Fatalf("expected transition out of terminal state to fail")
	}
}

func TestDisplayStatus(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	// 长期有效
	p := &Permit{Status: StatusActive}
	if got := DisplayStatus(p, now); got != StatusActive {
		t.Fatalf("expected active, got %s", got)
	}

	// 存储仍是 active，但已超期：展示为 expired，存储状态不动
	p = &Permit{Status: StatusActive, ExpiresAt: &past}
	if got := DisplayStatus(p, now); got != StatusExpired {
		t.Fatalf("expected expired display, got %s", got)
	}
	if p.Status != StatusActive {
		t.Fatalf("DisplayStatus must not mutate stored status")
	}
	// 幂等
	if got := DisplayStatus(p, now); got != StatusExpired {
		t.Fatalf("expected expired on repeat, got %s", got)
	}

	// revoked 优先于到期判断
	p = &Permit{Status: StatusRevoked, ExpiresAt: &future}
	if got := DisplayStatus(p, now); got != StatusRevoked {
		t.Fatalf("expected revoked, got %s", got)
	}

	// 到期时刻本身算过期（expires_at <= now）
	p = &Permit{Status: StatusActive, ExpiresAt: &now}
	if got := DisplayStatus(p, now); got != StatusExpired {
		t.Fatalf("expected expired at boundary, got %s", got)
	}
}

func TestParseStatusLegacy(t *testing.T) {
	if st, ok := ParseStatus("VOID"); !ok || st != StatusRevoked {
		t.Fatalf("expected legacy VOID to map to revoked, got %s ok=%v", st, ok)
	}
	if st, ok := ParseStatus("ACTIVE"); !ok || st != StatusActive {
		t.Fatalf("expected ACTIVE to parse, got %s ok=%v", st, ok)
	}
	if _, ok := ParseStatus("bogus"); ok {
		t.Fatalf("expected bogus status to fail")
	}
}
