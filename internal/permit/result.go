package permit

// Code 业务失败的机器可读分类。
// 预期内的业务失败（配额、校验、状态冲突）作为结构化结果返回，
// 不作为 error 抛出；记录库不可用等意外失败仍走 error 通道。
type Code string

const (
	CodeValidation    Code = "VALIDATION"
	CodeCapExceeded   Code = "CAP_EXCEEDED"
	CodeAuthorization Code = "AUTHORIZATION"
	CodeNotFound      Code = "NOT_FOUND"
	CodeConflict      Code = "CONFLICT"
)

// CapacityDetails 配额拒绝的明细，供调用方渲染并决定是否带 override 重试。
type CapacityDetails struct {
	Active     int    `json:"active"`
	Max        int    `json:"max"`
	PermitType string `json:"permitType"` // resident / visitor
}

// Result 单次操作的业务结果。
type Result struct {
	Success bool             `json:"success"`
	Code    Code             `json:"code,omitempty"`
	Message string           `json:"message,omitempty"`
	Details *CapacityDetails `json:"details,omitempty"`
	Caps    *Caps            `json:"caps,omitempty"`
	Permit  *Permit          `json:"permit,omitempty"`
}

func ok(p *Permit) Result {
	return Result{Success: true, Permit: p}
}

func fail(code Code, msg string) Result {
	return Result{Success: false, Code: code, Message: msg}
}

func capExceeded(msg string, caps Caps, active, max int, permitType string) Result {
	c := caps
	return Result{
		Success: false,
		Code:    CodeCapExceeded,
		Message: msg,
		Caps:    &c,
		Details: &CapacityDetails{Active: active, Max: max, PermitType: permitType},
	}
}
