package permit

import (
	"strings"
	"time"
)

// Status 许可持久化状态（存储为字符串）。
// expired / revoked 为终态；超期未处理的 active 许可只在展示层表现为过期。
type Status string

const (
	StatusActive  Status = "active"  // 生效中
	StatusExpired Status = "expired" // 已过期（管理员显式标记）
	StatusRevoked Status = "revoked" // 已吊销（含换证）
)

// Type 许可类型。
// resident / additional 计入住户配额；visitor 计入访客配额；temporary 不占额。
type Type string

const (
	TypeResident   Type = "resident"
	TypeVisitor    Type = "visitor"
	TypeTemporary  Type = "temporary"
	TypeAdditional Type = "additional"
)

// Permit 是 permits 表的 GORM 模型。
// 记录只增不删：所有生命周期变化都是软状态流转，便于审计。
type Permit struct {
	ID            string `gorm:"primaryKey;size:36"`
	AssociationID string `gorm:"index;size:36;not null"`
	UnitID        string `gorm:"index;size:36;not null"`
	VehicleID     string `gorm:"index;size:36"` // 可选：挂到某辆登记车辆
	Type          Type   `gorm:"type:varchar(16);index;not null"`
	PermitNumber  string `gorm:"size:32"` // 可选：实体证号，非空时同小区内唯一
	Status        Status `gorm:"type:varchar(16);index;not null"`

	IssuedAt  time.Time  `gorm:"not null"`
	ExpiresAt *time.Time // NULL = 长期有效

	RevokedAt     *time.Time
	RevokedReason string `gorm:"size:255"`

	Notes     string `gorm:"size:255"`
	CreatedBy string `gorm:"size:36"` // 操作人（由上游鉴权层解析）

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// CountsTowardResident 是否计入住户配额。
func (t Type) CountsTowardResident() bool {
	return t == TypeResident || t == TypeAdditional
}

// ParseStatus 解析状态字符串。
// 兼容旧系统词表：大写形式与遗留 "void" 一律归一到新枚举（void -> revoked）。
func ParseStatus(s string) (Status, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(StatusActive):
		return StatusActive, true
	case string(StatusExpired):
		return StatusExpired, true
	case string(StatusRevoked), "void":
		return StatusRevoked, true
	default:
		return "", false
	}
}

// ParseType 解析类型字符串（大小写不敏感）。
func ParseType(s string) (Type, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(TypeResident):
		return TypeResident, true
	case string(TypeVisitor):
		return TypeVisitor, true
	case string(TypeTemporary):
		return TypeTemporary, true
	case string(TypeAdditional):
		return TypeAdditional, true
	default:
		return "", false
	}
}
