package permit

import (
	"context"
	"testing"
	"time"
)

// 场景 A：per_unit × 2，无硬上限，允许加办 -> 上限不设，发两张后仍可发。
func TestCapacityPerUnitUnbounded(t *testing.T) {
	svc, gdb := newTestService(t)
	a := seedAssociation(t, gdb, assocOpts{perCount: 2, allowAdditional: true})
	u := seedUnit(t, gdb, a.ID, 1)
	now := time.Now()

	mustIssue(t, svc, IssueInput{UnitID: u.ID, Type: TypeResident}, now)
	mustIssue(t, svc, IssueInput{UnitID: u.ID, Type: TypeResident}, now)

	snap, err := svc.Availability(context.Background(), u.ID, now)
	if err != nil {
		t.Fatalf("Availability: %v", err)
	}
	if snap.Current.Resident != 2 {
		t.Fatalf("expected resident count 2, got %d", snap.Current.Resident)
	}
	if snap.Caps.Baseline != 2 {
		t.Fatalf("expected baseline 2, got %d", snap.Caps.Baseline)
	}
	if snap.Caps.MaxResident != nil {
		t.Fatalf("expected unbounded resident cap, got %d", *snap.Caps.MaxResident)
	}
	if !snap.Availability.CanIssueResident {
		t.Fatalf("expected can_issue_resident true (unbounded)")
	}
}

// 不允许加办时，基数即上限。
func TestCapacityBaselineIsCapWithoutAdditional(t *testing.T) {
	svc, gdb := newTestService(t)
	a := seedAssociation(t, gdb, assocOpts{perCount: 1, allowAdditional: false})
	u := seedUnit(t, gdb, a.ID, 1)
	now := time.Now()

	mustIssue(t, svc, IssueInput{UnitID: u.ID, Type: TypeResident}, now)

	snap, err := svc.Availability(context.Background(), u.ID, now)
	if err != nil {
		t.Fatalf("Availability: %v", err)
	}
	if snap.Caps.MaxResident == nil || *snap.Caps.MaxResident != 1 {
		t.Fatalf("expected resident cap 1, got %#v", snap.Caps.MaxResident)
	}
	if snap.Availability.CanIssueResident {
		t.Fatalf("expected can_issue_resident false at baseline")
	}
}

func TestCapacityPerBedroomBaseline(t *testing.T) {
	svc, gdb := newTestService(t)
	a := seedAssociation(t, gdb, assocOpts{
		method:   "per_bedroom",
		perCount: 2,
	})
	u := seedUnit(t, gdb, a.ID, 3)
	now := time.Now()

	snap, err := svc.Availability(context.Background(), u.ID, now)
	if err != nil {
		t.Fatalf("Availability: %v", err)
	}
	if snap.Caps.Baseline != 6 {
		t.Fatalf("expected baseline 2x3=6, got %d", snap.Caps.Baseline)
	}
}

func TestCapacityVisitorPolicies(t *testing.T) {
	now := time.Now()

	// disabled：一张也不能发
	svc, gdb := newTestService(t)
	a := seedAssociation(t, gdb, assocOpts{visitorPolicy: "disabled"})
	u := seedUnit(t, gdb, a.ID, 1)
	snap, err := svc.Availability(context.Background(), u.ID, now)
	if err != nil {
		t.Fatalf("Availability: %v", err)
	}
	if snap.Caps.MaxVisitor == nil || *snap.Caps.MaxVisitor != 0 {
		t.Fatalf("expected visitor cap 0, got %#v", snap.Caps.MaxVisitor)
	}
	if snap.Availability.CanIssueVisitor {
		t.Fatalf("expected can_issue_visitor false when disabled")
	}

	// unlimited：不设上限
	svc2, gdb2 := newTestService(t)
	a2 := seedAssociation(t, gdb2, assocOpts{visitorPolicy: "unlimited"})
	u2 := seedUnit(t, gdb2, a2.ID, 1)
	snap2, err := svc2.Availability(context.Background(), u2.ID, now)
	if err != nil {
		t.Fatalf("Availability: %v", err)
	}
	if snap2.Caps.MaxVisitor != nil {
		t.Fatalf("expected unbounded visitor cap, got %d", *snap2.Caps.MaxVisitor)
	}
	if !snap2.Availability.CanIssueVisitor {
		t.Fatalf("expected can_issue_visitor true when unlimited")
	}

	// limited=1：发一张后封顶
	svc3, gdb3 := newTestService(t)
	a3 := seedAssociation(t, gdb3, assocOpts{visitorPolicy: "limited", maxVisitor: 1})
	u3 := seedUnit(t, gdb3, a3.ID, 1)
	mustIssue(t, svc3, IssueInput{UnitID: u3.ID, Type: TypeVisitor}, now)
	snap3, err := svc3.Availability(context.Background(), u3.ID, now)
	if err != nil {
		t.Fatalf("Availability: %v", err)
	}
	if snap3.Current.Visitor != 1 {
		t.Fatalf("expected visitor count 1, got %d", snap3.Current.Visitor)
	}
	if snap3.Availability.CanIssueVisitor {
		t.Fatalf("expected can_issue_visitor false at cap")
	}
}

// 只有展示状态为 active 的许可占额：吊销、标记过期、自然超期都不算。
func TestCapacityExcludesDeadPermits(t *testing.T) {
	svc, gdb := newTestService(t)
	a := seedAssociation(t, gdb, assocOpts{perCount: 5, allowAdditional: false})
	u := seedUnit(t, gdb, a.ID, 1)
	ctx := context.Background()
	now := time.Now()
	past := now.Add(-time.Hour)

	p1 := mustIssue(t, svc, IssueInput{UnitID: u.ID, Type: TypeResident}, now)
	p2 := mustIssue(t, svc, IssueInput{UnitID: u.ID, Type: TypeResident}, now)
	// 第三张带着已过去的到期时间（存储仍是 active）
	issuedAt := now.Add(-2 * time.Hour)
	mustIssue(t, svc, IssueInput{UnitID: u.ID, Type: TypeResident, IssuedAt: &issuedAt, ExpiresAt: &past}, now)
	// temporary 永远不占住户额度
	mustIssue(t, svc, IssueInput{UnitID: u.ID, Type: TypeTemporary}, now)

	if res, err := svc.Revoke(ctx, p1.ID, "moved out", now); err != nil || !res.Success {
		t.Fatalf("Revoke: err=%v res=%+v", err, res)
	}
	if res, err := svc.MarkExpired(ctx, p2.ID, now); err != nil || !res.Success {
		t.Fatalf("MarkExpired: err=%v res=%+v", err, res)
	}

	snap, err := svc.Availability(ctx, u.ID, now)
	if err != nil {
		t.Fatalf("Availability: %v", err)
	}
	if snap.Current.Resident != 0 {
		t.Fatalf("expected resident count 0, got %d", snap.Current.Resident)
	}
}
