package permit

import (
	"context"
	"fmt"
	"time"

	"github.com/PermitDrive/PermitDrive/internal/association"
	"github.com/PermitDrive/PermitDrive/internal/unit"
)

// Counts 当前占额的许可数（按展示状态为 active 统计）。
type Counts struct {
	Resident int `json:"resident"`
	Visitor  int `json:"visitor"`
}

// Caps 配额上限。指针为 nil 表示不设上限。
type Caps struct {
	MaxResident *int `json:"max_resident"`
	MaxVisitor  *int `json:"max_visitor"`
	Baseline    int  `json:"baseline_resident"` // 基数：倍率 ×（户 / 卧室数）
}

// Availability 是否还能发新证。
type Availability struct {
	CanIssueResident bool `json:"can_issue_resident"`
	CanIssueVisitor  bool `json:"can_issue_visitor"`
}

// Snapshot 某一户在某一时刻的容量快照。
// 每次从许可记录现算，不依赖任何物化计数器。
type Snapshot struct {
	Current      Counts
	Caps         Caps
	Availability Availability
	Unit         *unit.Unit
	Association  *association.Association
}

// Calculator 容量快照计算器：纯读路径，无副作用。
type Calculator struct {
	permits      *Repo
	units        *unit.Repo
	associations *association.Repo
}

func NewCalculator(permits *Repo, units *unit.Repo, associations *association.Repo) *Calculator {
	return &Calculator{permits: permits, units: units, associations: associations}
}

// Snapshot 计算一户的容量快照。
// 步骤：户 -> 小区规则 -> 基数/上限 -> 扫描该户全部许可计数 -> 可发性。
func (c *Calculator) Snapshot(ctx context.Context, unitID string, now time.Time) (*Snapshot, error) {
	if c == nil || c.permits == nil || c.units == nil || c.associations == nil {
		return nil, fmt.Errorf("calculator not initialized")
	}

	u, err := c.units.FindByID(ctx, unitID)
	if err != nil {
		return nil, err
	}
	a, err := c.associations.FindByID(ctx, u.AssociationID)
	if err != nil {
		return nil, fmt.Errorf("load association %s: %w", u.AssociationID, err)
	}

	caps := capsFor(a, u)

	permits, err := c.permits.ListByUnit(ctx, unitID)
	if err != nil {
		return nil, err
	}

	var current Counts
	for i := range permits {
		p := &permits[i]
		if !CountsLive(p, now) {
			continue
		}
		switch {
		case p.Type.CountsTowardResident():
			current.Resident++
		case p.Type == TypeVisitor:
			current.Visitor++
		}
	}

	return &Snapshot{
		Current: current,
		Caps:    caps,
		Availability: Availability{
			CanIssueResident: underCap(current.Resident, caps.MaxResident),
			CanIssueVisitor:  underCap(current.Visitor, caps.MaxVisitor),
		},
		Unit:        u,
		Association: a,
	}, nil
}

// capsFor 从小区规则推导一户的上限。
func capsFor(a *association.Association, u *unit.Unit) Caps {
	multiplier := 1
	if a.AllocationMethod == association.AllocationPerBedroom {
		multiplier = u.Bedrooms
		if multiplier < 1 {
			multiplier = 1
		}
	}
	baseline := a.PermitsPerCount * multiplier

	// 不允许加办时，基数即上限；允许加办时，上限为硬上限（可能不设）。
	var maxResident *int
	if a.AllowAdditionalPermits {
		maxResident = a.MaxPermitsPerUnit
	} else {
		b := baseline
		maxResident = &b
	}

	var maxVisitor *int
	switch a.VisitorPolicy {
	case association.VisitorDisabled:
		zero := 0
		maxVisitor = &zero
	case association.VisitorLimited:
		m := a.MaxVisitorPermits
		maxVisitor = &m
	default: // unlimited
		maxVisitor = nil
	}

	return Caps{MaxResident: maxResident, MaxVisitor: maxVisitor, Baseline: baseline}
}

func underCap(current int, max *int) bool {
	if max == nil {
		return true
	}
	return current < *max
}
