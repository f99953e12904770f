package permit

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/PermitDrive/PermitDrive/internal/association"
	"github.com/PermitDrive/PermitDrive/internal/unit"
	"github.com/PermitDrive/PermitDrive/internal/vehicle"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service 封装许可生命周期的核心用例（不依赖 gRPC / HTTP），便于复用和测试。
// 发证 / 吊销 / 过期 / 换证都走这里；容量快照由 Calculator 现算。
type Service struct {
	db           *gorm.DB
	permits      *Repo
	units        *unit.Repo
	associations *association.Repo
	vehicles     *vehicle.Repo
	calc         *Calculator
	override     *OverrideVerifier
	locks        *unitLocks
}

func NewService(db *gorm.DB, override *OverrideVerifier) *Service {
	permits := NewRepo(db)
	units := unit.NewRepo(db)
	associations := association.NewRepo(db)
	return &Service{
		db:           db,
		permits:      permits,
		units:        units,
		associations: associations,
		vehicles:     vehicle.NewRepo(db),
		calc:         NewCalculator(permits, units, associations),
		override:     override,
		locks:        newUnitLocks(),
	}
}

// IssueInput 发证入参。
type IssueInput struct {
	UnitID       string
	Type         Type
	PermitNumber string
	VehicleID    string
	IssuedAt     *time.Time // 空则取当前时间
	ExpiresAt    *time.Time // 空则长期有效
	Notes        string
	CreatedBy    string

	// OverrideLimits 请求越过配额；只有 OverrideToken 验签通过才生效。
	OverrideLimits bool
	OverrideToken  string
}

// ReplaceInput 换证入参。
type ReplaceInput struct {
	PermitID     string
	NewVehicleID string
	Notes        string
	CreatedBy    string
}

// ErrUnitIDRequired 缺少 unit_id 入参。
// 接入层据此返回 VALIDATION，而不是当作内部错误。
var ErrUnitIDRequired = errors.New("unit_id required")

// Availability 计算一户的容量快照（纯读，无副作用）。
func (s *Service) Availability(ctx context.Context, unitID string, now time.Time) (*Snapshot, error) {
	if s == nil || s.calc == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	unitID = strings.TrimSpace(unitID)
	if unitID == "" {
		return nil, ErrUnitIDRequired
	}
	return s.calc.Snapshot(ctx, unitID, now)
}

// Issue 发证：校验 -> 容量快照 -> 占额检查（或 override）-> 落库。
// 同一户的发证按 unit_id 串行，避免并发下配额被瞬时击穿。
func (s *Service) Issue(ctx context.Context, in IssueInput, now time.Time) (Result, error) {
	if s == nil || s.permits == nil {
		return Result{}, fmt.Errorf("service not initialized")
	}

	unitID := strings.TrimSpace(in.UnitID)
	if unitID == "" {
		return fail(CodeValidation, "unit_id required"), nil
	}
	// 归一化后的类型一路用到底：大小写变体不允许漏过配额检查或入库
	typ, typeOK := ParseType(string(in.Type))
	if !typeOK {
		return fail(CodeValidation, fmt.Sprintf("unknown permit type %q", in.Type)), nil
	}

	issuedAt := now
	if in.IssuedAt != nil {
		issuedAt = *in.IssuedAt
	}
	if in.ExpiresAt != nil && in.ExpiresAt.Before(issuedAt) {
		return fail(CodeValidation, "expires_at before issued_at"), nil
	}

	u, err := s.units.FindByID(ctx, unitID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fail(CodeNotFound, "unit not found"), nil
		}
		return Result{}, err
	}

	vehicleID := strings.TrimSpace(in.VehicleID)
	if vehicleID != "" {
		v, verr := s.vehicles.FindByID(ctx, vehicleID)
		if verr != nil {
			if errors.Is(verr, gorm.ErrRecordNotFound) {
				return fail(CodeNotFound, "vehicle not found"), nil
			}
			return Result{}, verr
		}
		if v.UnitID != unitID {
			return fail(CodeValidation, "vehicle does not belong to unit"), nil
		}
		if !v.IsActive() {
			return fail(CodeValidation, "vehicle is archived"), nil
		}
	}

	number := strings.TrimSpace(in.PermitNumber)
	if number != "" {
		taken, terr := s.permits.NumberTaken(ctx, u.AssociationID, number, "")
		if terr != nil {
			return Result{}, terr
		}
		if taken {
			return fail(CodeValidation, fmt.Sprintf("permit_number %s already in use", number)), nil
		}
	}

	// override 需要引擎自己验签的能力令牌，不信任裸布尔
	createdBy := strings.TrimSpace(in.CreatedBy)
	override := false
	if in.OverrideLimits {
		subject, oerr := s.override.Verify(in.OverrideToken)
		if oerr != nil {
			return fail(CodeAuthorization, oerr.Error()), nil
		}
		override = true
		if createdBy == "" {
			createdBy = subject
		}
	}

	// 串行化同一户的 读快照->判余量->写 窗口
	lock := s.locks.get(unitID)
	lock.Lock()
	defer lock.Unlock()

	snap, err := s.calc.Snapshot(ctx, unitID, now)
	if err != nil {
		return Result{}, err
	}

	if !override {
		switch {
		case typ.CountsTowardResident():
			if !snap.Availability.CanIssueResident {
				return capExceeded("resident permit cap reached", snap.Caps,
					snap.Current.Resident, *snap.Caps.MaxResident, "resident"), nil
			}
		case typ == TypeVisitor:
			if !snap.Availability.CanIssueVisitor {
				return capExceeded("visitor permit cap reached", snap.Caps,
					snap.Current.Visitor, *snap.Caps.MaxVisitor, "visitor"), nil
			}
		}
	}

	p := &Permit{
		ID:            uuid.NewString(),
		AssociationID: u.AssociationID,
		UnitID:        unitID,
		VehicleID:     vehicleID,
		Type:          typ,
		PermitNumber:  number,
		Status:        StatusActive,
		IssuedAt:      issuedAt,
		ExpiresAt:     in.ExpiresAt,
		Notes:         strings.TrimSpace(in.Notes),
		CreatedBy:     createdBy,
	}
	if err := s.permits.Create(ctx, p); err != nil {
		return Result{}, err
	}
	return ok(p), nil
}

// Revoke 吊销：终态流转，必须给出原因。
// 只有展示状态仍为 active 的许可可以吊销；对终态许可吊销返回 CONFLICT。
func (s *Service) Revoke(ctx context.Context, permitID, reason string, now time.Time) (Result, error) {
	if s == nil || s.permits == nil {
		return Result{}, fmt.Errorf("service not initialized")
	}
	if strings.TrimSpace(reason) == "" {
		return fail(CodeValidation, "revoke reason required"), nil
	}

	p, res, err := s.loadPermit(ctx, permitID)
	if err != nil || !res.Success {
		return res, err
	}

	if DisplayStatus(p, now) != StatusActive {
		return fail(CodeConflict, fmt.Sprintf("permit is %s, cannot revoke", DisplayStatus(p, now))), nil
	}

	if err := ApplyTransition(p, StatusRevoked, now); err != nil {
		return fail(CodeConflict, err.Error()), nil
	}
	p.RevokedReason = reason // 原样保存，不做裁剪

	if err := s.permits.Update(ctx, p); err != nil {
		return Result{}, err
	}
	return ok(p), nil
}

// MarkExpired 管理员显式标记过期：无条件 active -> expired，
// 不关心 expires_at 是否真的已过。非 active 返回 CONFLICT。
func (s *Service) MarkExpired(ctx context.Context, permitID string, now time.Time) (Result, error) {
	if s == nil || s.permits == nil {
		return Result{}, fmt.Errorf("service not initialized")
	}

	p, res, err := s.loadPermit(ctx, permitID)
	if err != nil || !res.Success {
		return res, err
	}

	if p.Status != StatusActive {
		return fail(CodeConflict, fmt.Sprintf("permit is %s, cannot mark expired", p.Status)), nil
	}
	if err := ApplyTransition(p, StatusExpired, now); err != nil {
		return fail(CodeConflict, err.Error()), nil
	}
	if err := s.permits.Update(ctx, p); err != nil {
		return Result{}, err
	}
	return ok(p), nil
}

// SetExpiration 调整到期时间；expiresAt 为 nil 表示清除（长期有效）。
// 仅持久化状态为 active 时允许。
func (s *Service) SetExpiration(ctx context.Context, permitID string, expiresAt *time.Time) (Result, error) {
	if s == nil || s.permits == nil {
		return Result{}, fmt.Errorf("service not initialized")
	}

	p, res, err := s.loadPermit(ctx, permitID)
	if err != nil || !res.Success {
		return res, err
	}

	if p.Status != StatusActive {
		return fail(CodeConflict, fmt.Sprintf("permit is %s, cannot change expiration", p.Status)), nil
	}
	if expiresAt != nil && expiresAt.Before(p.IssuedAt) {
		return fail(CodeValidation, "expires_at before issued_at"), nil
	}

	p.ExpiresAt = expiresAt
	if err := s.permits.Update(ctx, p); err != nil {
		return Result{}, err
	}
	return ok(p), nil
}

// Replace 换证：吊销旧证 + 为新车辆补发一张同类型许可。
// 1 换 1 的替换不重审配额；两步放在一个事务里，补发失败整体回滚，
// 不会留下“旧证已吊销、新证没发出”的中间状态。
func (s *Service) Replace(ctx context.Context, in ReplaceInput, now time.Time) (Result, error) {
	if s == nil || s.db == nil {
		return Result{}, fmt.Errorf("service not initialized")
	}

	old, res, err := s.loadPermit(ctx, in.PermitID)
	if err != nil || !res.Success {
		return res, err
	}
	if DisplayStatus(old, now) != StatusActive {
		return fail(CodeConflict, fmt.Sprintf("permit is %s, cannot replace", DisplayStatus(old, now))), nil
	}

	newVehicleID := strings.TrimSpace(in.NewVehicleID)
	if newVehicleID == "" {
		return fail(CodeValidation, "new_vehicle_id required"), nil
	}
	v, verr := s.vehicles.FindByID(ctx, newVehicleID)
	if verr != nil {
		if errors.Is(verr, gorm.ErrRecordNotFound) {
			return fail(CodeNotFound, "vehicle not found"), nil
		}
		return Result{}, verr
	}
	if v.UnitID != old.UnitID {
		return fail(CodeValidation, "vehicle does not belong to unit"), nil
	}
	if !v.IsActive() {
		return fail(CodeValidation, "vehicle is archived"), nil
	}

	replacement := &Permit{
		ID:            uuid.NewString(),
		AssociationID: old.AssociationID,
		UnitID:        old.UnitID,
		VehicleID:     newVehicleID,
		Type:          old.Type,
		Status:        StatusActive,
		IssuedAt:      now,
		ExpiresAt:     old.ExpiresAt, // 保留原有效期：换证不是续期
		Notes:         strings.TrimSpace(in.Notes),
		CreatedBy:     strings.TrimSpace(in.CreatedBy),
	}

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ApplyTransition(old, StatusRevoked, now); err != nil {
			return err
		}
		old.RevokedReason = fmt.Sprintf("replaced by permit %s", replacement.ID)
		if err := NewRepo(tx).Update(ctx, old); err != nil {
			return err
		}
		return NewRepo(tx).Create(ctx, replacement)
	})
	if txErr != nil {
		return Result{}, fmt.Errorf("replace permit %s: %w", old.ID, txErr)
	}
	return ok(replacement), nil
}

// Get 读取单张许可。
func (s *Service) Get(ctx context.Context, permitID string) (*Permit, error) {
	if s == nil || s.permits == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	permitID = strings.TrimSpace(permitID)
	if permitID == "" {
		return nil, fmt.Errorf("permit_id required")
	}
	return s.permits.GetByID(ctx, permitID)
}

// ListFilter 列表查询条件。
type ListFilter struct {
	UnitID string
	Status Status
	Type   Type
	Offset int
	Limit  int
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]Permit, int64, error) {
	if s == nil || s.permits == nil {
		return nil, 0, fmt.Errorf("service not initialized")
	}
	return s.permits.List(ctx, strings.TrimSpace(f.UnitID), f.Status, f.Type, f.Offset, f.Limit)
}

// loadPermit 统一的许可加载 + NOT_FOUND 归一。
func (s *Service) loadPermit(ctx context.Context, permitID string) (*Permit, Result, error) {
	permitID = strings.TrimSpace(permitID)
	if permitID == "" {
		return nil, fail(CodeValidation, "permit_id required"), nil
	}
	p, err := s.permits.GetByID(ctx, permitID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fail(CodeNotFound, "permit not found"), nil
		}
		return nil, Result{}, err
	}
	return p, Result{Success: true}, nil
}
