package permit

import (
	"fmt"
	"strings"
	"time"

	"github.com/PermitDrive/PermitDrive/internal/common/config"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultOverrideScope 允许越过配额发证的能力 scope。
const DefaultOverrideScope = "permits:override"

// OverrideVerifier 在引擎内部校验 override 能力令牌。
// 旧实现只信调用方传来的布尔标志，越权判断完全依赖上游；
// 这里改为引擎自己验签：没有带 scope 的有效令牌，override 不生效。
type OverrideVerifier struct {
	secret   string
	issuer   string
	audience string
	scope    string
}

func NewOverrideVerifier(cfg config.AuthConfig) *OverrideVerifier {
	scope := strings.TrimSpace(cfg.OverrideScope)
	if scope == "" {
		scope = DefaultOverrideScope
	}
	return &OverrideVerifier{
		secret:   cfg.JWTSecret,
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		scope:    scope,
	}
}

// Verify 校验令牌并返回操作人 subject。
func (v *OverrideVerifier) Verify(tokenStr string) (string, error) {
	if v == nil || strings.TrimSpace(v.secret) == "" {
		return "", fmt.Errorf("override verification not configured")
	}
	tokenStr = strings.TrimSpace(tokenStr)
	if tokenStr == "" {
		return "", fmt.Errorf("override token is empty")
	}

	claims := struct {
		Scopes []string `json:"scopes"`
		jwt.RegisteredClaims
	}{}

	parsed, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
		}
		return []byte(v.secret), nil
	}, jwt.WithLeeway(30*time.Second))
	if err != nil || parsed == nil || !parsed.Valid {
		return "", fmt.Errorf("invalid override token")
	}

	if v.issuer != "" && claims.Issuer != v.issuer {
		return "", fmt.Errorf("invalid override token issuer")
	}
	if v.audience != "" && !audienceContains(claims.Audience, v.audience) {
		return "", fmt.Errorf("invalid override token audience")
	}

	for _, s := range claims.Scopes {
		if strings.TrimSpace(s) == v.scope {
			return claims.Subject, nil
		}
	}
	return "", fmt.Errorf("override token missing scope %s", v.scope)
}

func audienceContains(aud jwt.ClaimStrings, want string) bool {
	want = strings.TrimSpace(want)
	if want == "" || len(aud) == 0 {
		return false
	}
	for _, v := range aud {
		if strings.TrimSpace(v) == want {
			return true
		}
	}
	return false
}
