package permit

import (
	"fmt"
	"time"
)

// AllowTransition 定义许可状态机的允许流转关系。
var AllowTransition = map[Status][]Status{
	StatusActive: {StatusExpired, StatusRevoked},
	// 终态：expired / revoked 不允许再流转
	StatusExpired: {},
	StatusRevoked: {},
}

// CanTransition 判断 from -> to 是否是一个允许的状态流转。
func CanTransition(from, to Status) bool {
	if from == to {
		return true
	}
	allowed, ok := AllowTransition[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// ApplyTransition 对许可应用状态变更，并维护关键时间字段。
func ApplyTransition(p *Permit, to Status, now time.Time) error {
	if p == nil {
		return fmt.Errorf("permit is nil")
	}
	from := p.Status
	if from == to {
		return nil
	}
	if !CanTransition(from, to) {
		return fmt.Errorf("invalid permit status transition: %s -> %s", from, to)
	}

	p.Status = to

	if to == StatusRevoked && p.RevokedAt == nil {
		t := now
		p.RevokedAt = &t
	}
	return nil
}

// DisplayStatus 计算展示状态：持久化状态 + 到期时间的叠加。
// 纯函数：不修改入参，同样输入永远得到同样输出。
// 存储层不做后台扫描，active 且已超期的许可仅在这里表现为 expired。
func DisplayStatus(p *Permit, now time.Time) Status {
	if p == nil {
		return ""
	}
	switch p.Status {
	case StatusRevoked:
		return StatusRevoked
	case StatusExpired:
		return StatusExpired
	}
	if p.ExpiresAt != nil && !p.ExpiresAt.After(now) {
		return StatusExpired
	}
	return StatusActive
}

// CountsLive 是否计入实时容量：展示状态为 active 才占额。
func CountsLive(p *Permit, now time.Time) bool {
	return DisplayStatus(p, now) == StatusActive
}
