package auth

import (
	"fmt"
	"time"

	"github.com/PermitDrive/PermitDrive/internal/common/config"
	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	Roles  []string `json:"roles"`
	Scopes []string `json:"scopes"` // 细粒度能力，如 permits:override
	jwt.RegisteredClaims
}

// GenerateAccessToken 生成 HS256 JWT access token。
// scopes 用于承载能力令牌（发证引擎会在 override 时校验 permits:override）。
func GenerateAccessToken(cfg config.AuthConfig, subject string, roles, scopes []string, ttl time.Duration) (token string, expiresAt time.Time, err error) {
	if subject == "" {
		return "", time.Time{}, fmt.Errorf("subject is empty")
	}
	if cfg.JWTSecret == "" {
		return "", time.Time{}, fmt.Errorf("jwt_secret is empty")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	now := time.Now()
	expiresAt = now.Add(ttl)

	c := Claims{
		Roles:  roles,
		Scopes: scopes,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    cfg.Issuer,
			Audience:  audience(cfg.Audience),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now.Add(-time.Minute)),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	signed, err := t.SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func audience(aud string) jwt.ClaimStrings {
	if aud == "" {
		return nil
	}
	return jwt.ClaimStrings{aud}
}
