package permit

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

// 场景 B：硬上限 2，第三张住户证被拒，且不落库。
func TestIssueCapExceeded(t *testing.T) {
	svc, gdb := newTestService(t)
	max := 2
	a := seedAssociation(t, gdb, assocOpts{perCount: 2, maxPerUnit: &max, allowAdditional: true})
	u := seedUnit(t, gdb, a.ID, 1)
	ctx := context.Background()
	now := time.Now()

	mustIssue(t, svc, IssueInput{UnitID: u.ID, Type: TypeResident}, now)
	mustIssue(t, svc, IssueInput{UnitID: u.ID, Type: TypeResident}, now)

	res, err := svc.Issue(ctx, IssueInput{UnitID: u.ID, Type: TypeResident}, now)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if res.Success {
		t.Fatalf("expected denial at cap")
	}
	if res.Code != CodeCapExceeded {
		t.Fatalf("expected CAP_EXCEEDED, got %s", res.Code)
	}
	if res.Details == nil || res.Details.Active != 2 || res.Details.Max != 2 || res.Details.PermitType != "resident" {
		t.Fatalf("details mismatch: %+v", res.Details)
	}
	if res.Caps == nil || res.Caps.Baseline != 2 {
		t.Fatalf("caps mismatch: %+v", res.Caps)
	}

	permits, _, err := svc.List(ctx, ListFilter{UnitID: u.ID})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(permits) != 2 {
		t.Fatalf("expected 2 permits after denial, got %d", len(permits))
	}
}

// additional 与 resident 同池：占额和受限一致。
func TestIssueAdditionalCountsTowardResident(t *testing.T) {
	svc, gdb := newTestService(t)
	max := 1
	a := seedAssociation(t, gdb, assocOpts{perCount: 1, maxPerUnit: &max, allowAdditional: true})
	u := seedUnit(t, gdb, a.ID, 1)
	now := time.Now()

	mustIssue(t, svc, IssueInput{UnitID: u.ID, Type: TypeAdditional}, now)

	res, err := svc.Issue(context.Background(), IssueInput{UnitID: u.ID, Type: TypeResident}, now)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if res.Success || res.Code != CodeCapExceeded {
		t.Fatalf("expected CAP_EXCEEDED, got %+v", res)
	}
}

// 场景 C：访客上限 1，带合法能力令牌 override 后第二张也能发。
func TestIssueOverride(t *testing.T) {
	svc, gdb := newTestService(t)
	a := seedAssociation(t, gdb, assocOpts{visitorPolicy: "limited", maxVisitor: 1})
	u := seedUnit(t, gdb, a.ID, 1)
	ctx := context.Background()
	now := time.Now()

	mustIssue(t, svc, IssueInput{UnitID: u.ID, Type: TypeVisitor}, now)

	// 不带令牌请求 override：引擎拒绝，不信裸布尔
	res, err := svc.Issue(ctx, IssueInput{UnitID: u.ID, Type: TypeVisitor, OverrideLimits: true}, now)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if res.Success || res.Code != CodeAuthorization {
		t.Fatalf("expected AUTHORIZATION, got %+v", res)
	}

	// 令牌 scope 不对：同样拒绝
	res, err = svc.Issue(ctx, IssueInput{
		UnitID: u.ID, Type: TypeVisitor,
		OverrideLimits: true,
		OverrideToken:  overrideToken(t, []string{"permits:read"}),
	}, now)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if res.Success || res.Code != CodeAuthorization {
		t.Fatalf("expected AUTHORIZATION for wrong scope, got %+v", res)
	}

	// 合法令牌：越过配额发证
	res, err = svc.Issue(ctx, IssueInput{
		UnitID: u.ID, Type: TypeVisitor,
		OverrideLimits: true,
		OverrideToken:  overrideToken(t, []string{"permits:override"}),
	}, now)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if !res.Success {
		t.Fatalf("expected override to succeed, got %+v", res)
	}
	if res.Permit.CreatedBy != "mgr-1" {
		t.Fatalf("expected created_by from token subject, got %q", res.Permit.CreatedBy)
	}

	snap, err := svc.Availability(ctx, u.ID, now)
	if err != nil {
		t.Fatalf("Availability: %v", err)
	}
	if snap.Current.Visitor != 2 {
		t.Fatalf("expected visitor count 2 after override, got %d", snap.Current.Visitor)
	}
}

func TestIssueValidation(t *testing.T) {
	svc, gdb := newTestService(t)
	a := seedAssociation(t, gdb, assocOpts{perCount: 2})
	u := seedUnit(t, gdb, a.ID, 1)
	other := seedUnit(t, gdb, a.ID, 1)
	ctx := context.Background()
	now := time.Now()

	// 未知类型
	res, _ := svc.Issue(ctx, IssueInput{UnitID: u.ID, Type: "guest"}, now)
	if res.Success || res.Code != CodeValidation {
		t.Fatalf("expected VALIDATION for unknown type, got %+v", res)
	}

	// 户不存在
	res, _ = svc.Issue(ctx, IssueInput{UnitID: "no-such-unit", Type: TypeResident}, now)
	if res.Success || res.Code != CodeNotFound {
		t.Fatalf("expected NOT_FOUND for missing unit, got %+v", res)
	}

	// 车辆不存在
	res, _ = svc.Issue(ctx, IssueInput{UnitID: u.ID, Type: TypeResident, VehicleID: "no-such-vehicle"}, now)
	if res.Success || res.Code != CodeNotFound {
		t.Fatalf("expected NOT_FOUND for missing vehicle, got %+v", res)
	}

	// 车辆挂在别的户下
	v := seedVehicle(t, gdb, other.ID, "AB-123", "active")
	res, _ = svc.Issue(ctx, IssueInput{UnitID: u.ID, Type: TypeResident, VehicleID: v.ID}, now)
	if res.Success || res.Code != CodeValidation {
		t.Fatalf("expected VALIDATION for foreign vehicle, got %+v", res)
	}

	// 已归档车辆
	archived := seedVehicle(t, gdb, u.ID, "CD-456", "archived")
	res, _ = svc.Issue(ctx, IssueInput{UnitID: u.ID, Type: TypeResident, VehicleID: archived.ID}, now)
	if res.Success || res.Code != CodeValidation {
		t.Fatalf("expected VALIDATION for archived vehicle, got %+v", res)
	}

	// 到期早于签发
	past := now.Add(-time.Hour)
	res, _ = svc.Issue(ctx, IssueInput{UnitID: u.ID, Type: TypeResident, ExpiresAt: &past}, now)
	if res.Success || res.Code != CodeValidation {
		t.Fatalf("expected VALIDATION for expires before issued, got %+v", res)
	}

	// 证号在小区内重复
	mustIssue(t, svc, IssueInput{UnitID: u.ID, Type: TypeResident, PermitNumber: "P-001"}, now)
	res, _ = svc.Issue(ctx, IssueInput{UnitID: u.ID, Type: TypeVisitor, PermitNumber: "P-001"}, now)
	if res.Success || res.Code != CodeValidation {
		t.Fatalf("expected VALIDATION for duplicate permit number, got %+v", res)
	}
}

// 大小写变体不得绕过配额：类型在入口归一化，之后检查和入库都用归一化值。
func TestIssueCanonicalizesType(t *testing.T) {
	svc, gdb := newTestService(t)
	max := 1
	a := seedAssociation(t, gdb, assocOpts{perCount: 1, maxPerUnit: &max, allowAdditional: true})
	u := seedUnit(t, gdb, a.ID, 1)
	ctx := context.Background()
	now := time.Now()

	mustIssue(t, svc, IssueInput{UnitID: u.ID, Type: TypeResident}, now)

	// 配额已满：大写类型同样要被拦下
	res, err := svc.Issue(ctx, IssueInput{UnitID: u.ID, Type: "RESIDENT"}, now)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if res.Success || res.Code != CodeCapExceeded {
		t.Fatalf("expected CAP_EXCEEDED for uppercase type at cap, got %+v", res)
	}

	// 放行的变体要以小写入库，后续快照才统计得到
	p, err := svc.Issue(ctx, IssueInput{UnitID: u.ID, Type: "Visitor"}, now)
	if err != nil || !p.Success {
		t.Fatalf("Issue visitor: err=%v res=%+v", err, p)
	}
	if p.Permit.Type != TypeVisitor {
		t.Fatalf("expected stored type %q, got %q", TypeVisitor, p.Permit.Type)
	}
	snap, err := svc.Availability(ctx, u.ID, now)
	if err != nil {
		t.Fatalf("Availability: %v", err)
	}
	if snap.Current.Visitor != 1 {
		t.Fatalf("expected visitor count 1, got %d", snap.Current.Visitor)
	}
}

func TestAvailabilityRequiresUnitID(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Availability(context.Background(), "   ", time.Now())
	if !errors.Is(err, ErrUnitIDRequired) {
		t.Fatalf("expected ErrUnitIDRequired, got %v", err)
	}
}

func TestRevoke(t *testing.T) {
	svc, gdb := newTestService(t)
	a := seedAssociation(t, gdb, assocOpts{perCount: 5})
	u := seedUnit(t, gdb, a.ID, 1)
	ctx := context.Background()
	now := time.Now()
	future := now.Add(24 * time.Hour)

	// 带未来到期时间的证：吊销后展示状态必须是 revoked，不受 expires_at 影响
	p := mustIssue(t, svc, IssueInput{UnitID: u.ID, Type: TypeResident, ExpiresAt: &future}, now)

	res, err := svc.Revoke(ctx, p.ID, "lease terminated ", now)
	if err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	if !res.Success {
		t.Fatalf("expected revoke ok, got %+v", res)
	}
	if res.Permit.RevokedReason != "lease terminated " {
		t.Fatalf("expected reason stored verbatim, got %q", res.Permit.RevokedReason)
	}
	if got := DisplayStatus(res.Permit, now); got != StatusRevoked {
		t.Fatalf("expected display revoked, got %s", got)
	}

	// 空原因
	p2 := mustIssue(t, svc, IssueInput{UnitID: u.ID, Type: TypeResident}, now)
	res, _ = svc.Revoke(ctx, p2.ID, "   ", now)
	if res.Success || res.Code != CodeValidation {
		t.Fatalf("expected VALIDATION for empty reason, got %+v", res)
	}

	// 重复吊销：终态上不允许再流转
	res, _ = svc.Revoke(ctx, p.ID, "again", now)
	if res.Success || res.Code != CodeConflict {
		t.Fatalf("expected CONFLICT on double revoke, got %+v", res)
	}

	// 自然超期（展示为 expired）的证也不能吊销
	past := now.Add(-time.Hour)
	issuedAt := now.Add(-2 * time.Hour)
	p3 := mustIssue(t, svc, IssueInput{UnitID: u.ID, Type: TypeResident, IssuedAt: &issuedAt, ExpiresAt: &past}, now)
	res, _ = svc.Revoke(ctx, p3.ID, "too late", now)
	if res.Success || res.Code != CodeConflict {
		t.Fatalf("expected CONFLICT on lapsed permit, got %+v", res)
	}

	// 不存在的证
	res, _ = svc.Revoke(ctx, "no-such-permit", "x", now)
	if res.Success || res.Code != CodeNotFound {
		t.Fatalf("expected NOT_FOUND, got %+v", res)
	}
}

func TestMarkExpired(t *testing.T) {
	svc, gdb := newTestService(t)
	a := seedAssociation(t, gdb, assocOpts{perCount: 5})
	u := seedUnit(t, gdb, a.ID, 1)
	ctx := context.Background()
	now := time.Now()
	future := now.Add(24 * time.Hour)

	// 到期时间还没到也可以强制标记过期
	p := mustIssue(t, svc, IssueInput{UnitID: u.ID, Type: TypeResident, ExpiresAt: &future}, now)
	res, err := svc.MarkExpired(ctx, p.ID, now)
	if err != nil {
		t.Fatalf("MarkExpired: %v", err)
	}
	if !res.Success || res.Permit.Status != StatusExpired {
		t.Fatalf("expected stored expired, got %+v", res)
	}

	// 终态上再标记：冲突
	res, _ = svc.MarkExpired(ctx, p.ID, now)
	if res.Success || res.Code != CodeConflict {
		t.Fatalf("expected CONFLICT, got %+v", res)
	}
}

func TestSetExpiration(t *testing.T) {
	svc, gdb := newTestService(t)
	a := seedAssociation(t, gdb, assocOpts{perCount: 5})
	u := seedUnit(t, gdb, a.ID, 1)
	ctx := context.Background()
	now := time.Now()

	p := mustIssue(t, svc, IssueInput{UnitID: u.ID, Type: TypeResident}, now)

	// 设置到期时间
	future := now.Add(48 * time.Hour)
	res, err := svc.SetExpiration(ctx, p.ID, &future)
	if err != nil {
		t.Fatalf("SetExpiration: %v", err)
	}
	if !res.Success || res.Permit.ExpiresAt == nil || !res.Permit.ExpiresAt.Equal(future) {
		t.Fatalf("expected expires_at set, got %+v", res.Permit)
	}

	// 清除（长期有效），没有自动过期
	res, err = svc.SetExpiration(ctx, p.ID, nil)
	if err != nil {
		t.Fatalf("SetExpiration clear: %v", err)
	}
	if !res.Success || res.Permit.ExpiresAt != nil {
		t.Fatalf("expected expires_at cleared, got %+v", res.Permit)
	}

	// 早于签发时间
	past := p.IssuedAt.Add(-time.Hour)
	res, _ = svc.SetExpiration(ctx, p.ID, &past)
	if res.Success || res.Code != CodeValidation {
		t.Fatalf("expected VALIDATION, got %+v", res)
	}

	// 非 active 不允许改
	if res, err := svc.Revoke(ctx, p.ID, "done", now); err != nil || !res.Success {
		t.Fatalf("Revoke: err=%v res=%+v", err, res)
	}
	res, _ = svc.SetExpiration(ctx, p.ID, &future)
	if res.Success || res.Code != CodeConflict {
		t.Fatalf("expected CONFLICT on revoked permit, got %+v", res)
	}
}

func TestReplace(t *testing.T) {
	svc, gdb := newTestService(t)
	max := 1
	a := seedAssociation(t, gdb, assocOpts{perCount: 1, maxPerUnit: &max, allowAdditional: true})
	u := seedUnit(t, gdb, a.ID, 1)
	oldV := seedVehicle(t, gdb, u.ID, "OLD-1", "active")
	newV := seedVehicle(t, gdb, u.ID, "NEW-1", "active")
	ctx := context.Background()
	now := time.Now()
	future := now.Add(30 * 24 * time.Hour)

	// 配额已满（1/1）：换证是 1 换 1，不重审配额，必须能成功
	old := mustIssue(t, svc, IssueInput{UnitID: u.ID, Type: TypeResident, VehicleID: oldV.ID, ExpiresAt: &future}, now)

	res, err := svc.Replace(ctx, ReplaceInput{PermitID: old.ID, NewVehicleID: newV.ID, Notes: "new car"}, now)
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if !res.Success {
		t.Fatalf("expected replace ok, got %+v", res)
	}
	repl := res.Permit
	if repl.VehicleID != newV.ID || repl.UnitID != u.ID || repl.Type != TypeResident {
		t.Fatalf("replacement fields mismatch: %+v", repl)
	}
	if repl.ExpiresAt == nil || !repl.ExpiresAt.Equal(future) {
		t.Fatalf("expected expiry carried over, got %+v", repl.ExpiresAt)
	}

	oldLoaded, err := svc.Get(ctx, old.ID)
	if err != nil {
		t.Fatalf("Get old: %v", err)
	}
	if got := DisplayStatus(oldLoaded, now); got != StatusRevoked {
		t.Fatalf("expected old permit revoked, got %s", got)
	}
	if !strings.Contains(oldLoaded.RevokedReason, repl.ID) {
		t.Fatalf("expected revoke reason to reference replacement, got %q", oldLoaded.RevokedReason)
	}

	// 恰好还是一张 active 住户证
	snap, err := svc.Availability(ctx, u.ID, now)
	if err != nil {
		t.Fatalf("Availability: %v", err)
	}
	if snap.Current.Resident != 1 {
		t.Fatalf("expected resident count 1 after swap, got %d", snap.Current.Resident)
	}

	// 终态证不能再换
	res, _ = svc.Replace(ctx, ReplaceInput{PermitID: old.ID, NewVehicleID: newV.ID}, now)
	if res.Success || res.Code != CodeConflict {
		t.Fatalf("expected CONFLICT, got %+v", res)
	}

	// 新车辆必须同户且未归档
	foreign := seedUnit(t, gdb, a.ID, 1)
	foreignV := seedVehicle(t, gdb, foreign.ID, "FF-9", "active")
	res, _ = svc.Replace(ctx, ReplaceInput{PermitID: repl.ID, NewVehicleID: foreignV.ID}, now)
	if res.Success || res.Code != CodeValidation {
		t.Fatalf("expected VALIDATION for foreign vehicle, got %+v", res)
	}
}

// 补发失败时事务整体回滚：旧证不能留在已吊销状态。
func TestReplaceRollsBackWhenReissueFails(t *testing.T) {
	svc, gdb := newTestService(t)
	a := seedAssociation(t, gdb, assocOpts{perCount: 2})
	u := seedUnit(t, gdb, a.ID, 1)
	oldV := seedVehicle(t, gdb, u.ID, "OLD-2", "active")
	newV := seedVehicle(t, gdb, u.ID, "NEW-2", "active")
	ctx := context.Background()
	now := time.Now()

	old := mustIssue(t, svc, IssueInput{UnitID: u.ID, Type: TypeResident, VehicleID: oldV.ID}, now)

	// 让挂到新车辆的 INSERT 必然失败，旧证的吊销已在同一事务里写入
	trigger := fmt.Sprintf(`CREATE TRIGGER reject_reissue BEFORE INSERT ON permits
		WHEN NEW.vehicle_id = '%s'
		BEGIN SELECT RAISE(ABORT, 'reissue rejected'); END`, newV.ID)
	if err := gdb.Exec(trigger).Error; err != nil {
		t.Fatalf("create trigger: %v", err)
	}

	if _, err := svc.Replace(ctx, ReplaceInput{PermitID: old.ID, NewVehicleID: newV.ID}, now); err == nil {
		t.Fatalf("expected replace to fail")
	}

	got, err := svc.Get(ctx, old.ID)
	if err != nil {
		t.Fatalf("Get old: %v", err)
	}
	if got.Status != StatusActive {
		t.Fatalf("expected old permit still active after rollback, got %s", got.Status)
	}
	if got.RevokedAt != nil || got.RevokedReason != "" {
		t.Fatalf("expected no revoke markers after rollback, got %+v", got)
	}

	_, total, err := svc.List(ctx, ListFilter{UnitID: u.ID})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected single permit after rollback, got %d", total)
	}
}
