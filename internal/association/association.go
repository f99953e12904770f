package association

import (
	"strings"
	"time"
)

// AllocationMethod 小区车位配额的分配口径。
type AllocationMethod string

const (
	AllocationPerUnit    AllocationMethod = "per_unit"    // 按户固定
	AllocationPerBedroom AllocationMethod = "per_bedroom" // 按卧室数
)

// VisitorPolicy 访客许可策略（显式三态，避免 NULL/0 歧义）。
type VisitorPolicy string

const (
	VisitorUnlimited VisitorPolicy = "unlimited" // 不限数量
	VisitorLimited   VisitorPolicy = "limited"   // 上限为 MaxVisitorPermits
	VisitorDisabled  VisitorPolicy = "disabled"  // 禁止访客许可
)

// Association 是 associations 表的 GORM 模型（业委会/小区）。
// 许可容量规则挂在这里：分配口径、基数倍率、硬上限、访客策略、是否允许加办。
type Association struct {
	ID   string `gorm:"primaryKey;size:36"`
	Name string `gorm:"size:128;not null"`

	AllocationMethod  AllocationMethod `gorm:"type:varchar(16);not null;default:'per_unit'"`
	PermitsPerCount   int              `gorm:"not null;default:1"` // 每户/每卧室的基数
	MaxPermitsPerUnit *int             // 硬上限，NULL = 不限

	VisitorPolicy     VisitorPolicy `gorm:"type:varchar(16);not null;default:'limited'"`
	MaxVisitorPermits int           `gorm:"not null;default:0"` // 仅 limited 生效

	AllowAdditionalPermits bool `gorm:"not null;default:false"` // 是否允许超基数加办

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// ParseAllocationMethod 解析分配口径；空值回落到 per_unit。
func ParseAllocationMethod(s string) AllocationMethod {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(AllocationPerBedroom):
		return AllocationPerBedroom
	default:
		return AllocationPerUnit
	}
}

// ParseVisitorPolicy 解析访客策略。
// 兼容旧数据：空串按 unlimited（历史 NULL），"0" 按 disabled。
func ParseVisitorPolicy(s string) VisitorPolicy {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(VisitorLimited):
		return VisitorLimited
	case string(VisitorDisabled), "0":
		return VisitorDisabled
	default:
		return VisitorUnlimited
	}
}
