package server

import (
	"context"
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"github.com/PermitDrive/PermitDrive/internal/common/auth"
	"github.com/PermitDrive/PermitDrive/internal/common/config"
	"github.com/PermitDrive/PermitDrive/internal/common/logger"
	"github.com/golang-jwt/jwt/v5"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

// UnaryChain 将多个 unary interceptor 串起来（按传入顺序执行）。
func UnaryChain(interceptors ...grpc.UnaryServerInterceptor) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		h := handler
		for i := len(interceptors) - 1; i >= 0; i-- {
			ic := interceptors[i]
			if ic == nil {
				continue
			}
			next := h
			h = func(currentCtx context.Context, currentReq any) (any, error) {
				return ic(currentCtx, currentReq, info, next)
			}
		}
		return h(ctx, req)
	}
}

// UnaryRecoveryInterceptor 防止 panic 直接把进程打崩，并记录栈信息。
func UnaryRecoveryInterceptor(log logger.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			if r := recover(); r != nil {
				if log != nil {
					log.Errorf("panic in grpc method=%s err=%v stack=%s", info.FullMethod, r, string(debug.Stack()))
				}
				err = status.Error(codes.Internal, "internal error")
			}
		}()
		return handler(ctx, req)
	}
}

// UnaryAccessLogInterceptor 记录每个 gRPC 请求的耗时/状态码/对端地址。
func UnaryAccessLogInterceptor(log logger.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		if log != nil {
			fields := map[string]interface{}{
				"method": info.FullMethod,
				"cost":   time.Since(start).String(),
				"code":   status.Code(err).String(),
			}
			if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
				fields["peer"] = p.Addr.String()
			}
			if err != nil {
				fields["error"] = err.Error()
				log.WithFields(fields).Warn("grpc request failed")
			} else {
				log.WithFields(fields).Info("grpc request ok")
			}
		}

		return resp, err
	}
}

// UnaryTracingInterceptor 基于 OpenTracing 的 server interceptor：
// 从 metadata 里提取上游 span context，创建 server span 并注入 ctx，
// 业务侧可用 opentracing.StartSpanFromContext 继续挂子 span。
func UnaryTracingInterceptor(serviceName string) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		tracer := opentracing.GlobalTracer()

		var parent opentracing.SpanContext
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if sc, err := tracer.Extract(opentracing.TextMap, metadataTextMapCarrier(md)); err == nil {
				parent = sc
			}
		}

		operation := strings.TrimPrefix(info.FullMethod, "/")
		var span opentracing.Span
		if parent != nil {
			span = tracer.StartSpan(operation, ext.RPCServerOption(parent))
		} else {
			span = tracer.StartSpan(operation)
		}
		defer span.Finish()

		ext.SpanKindRPCServer.Set(span)
		ext.Component.Set(span, "grpc")
		if serviceName != "" {
			span.SetTag("service", serviceName)
		}

		return handler(opentracing.ContextWithSpan(ctx, span), req)
	}
}

type authContextKey struct{}

// AuthInfo 从 JWT 中解析出的调用方信息（放入 ctx，供业务侧使用）。
type AuthInfo struct {
	Subject string   // 用户 ID
	Roles   []string // 角色列表（RBAC）
	Scopes  []string // 能力范围（如 permits:override）
}

// AuthFromContext 从 ctx 中取出鉴权信息。
func AuthFromContext(ctx context.Context) (AuthInfo, bool) {
	v := ctx.Value(authContextKey{})
	if v == nil {
		return AuthInfo{}, false
	}
	ai, ok := v.(AuthInfo)
	return ai, ok
}

// UnaryJWTAuthInterceptor JWT 鉴权：
// - 从 metadata 中读取 `authorization: Bearer <token>`
// - 校验 HS256 签名与标准字段（exp/nbf 由 jwt/v5 默认校验，iss/aud 按配置校验）
// - 将解析结果写入 ctx
func UnaryJWTAuthInterceptor(cfg config.AuthConfig, log logger.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if !cfg.Enabled {
			return handler(ctx, req)
		}
		if isPublicMethod(cfg.PublicMethods, info.FullMethod) {
			return handler(ctx, req)
		}
		if strings.TrimSpace(cfg.JWTSecret) == "" {
			if log != nil {
				log.Warn("auth enabled but jwt_secret is empty")
			}
			return nil, status.Error(codes.Unauthenticated, "auth not configured")
		}

		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "missing metadata")
		}

		raw := ""
		if vs := md.Get("authorization"); len(vs) > 0 {
			raw = vs[0]
		}
		tokenStr := strings.TrimSpace(raw)
		if strings.HasPrefix(strings.ToLower(tokenStr), "bearer ") {
			tokenStr = strings.TrimSpace(tokenStr[len("bearer "):])
		}
		if tokenStr == "" {
			return nil, status.Error(codes.Unauthenticated, "missing authorization")
		}

		opts := []jwt.ParserOption{
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithLeeway(30 * time.Second),
		}
		if cfg.Issuer != "" {
			opts = append(opts, jwt.WithIssuer(cfg.Issuer))
		}
		if cfg.Audience != "" {
			opts = append(opts, jwt.WithAudience(cfg.Audience))
		}

		claims := &auth.Claims{}
		parsed, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
			return []byte(cfg.JWTSecret), nil
		}, opts...)
		if err != nil || parsed == nil || !parsed.Valid {
			return nil, status.Error(codes.Unauthenticated, "invalid token")
		}

		ctx = context.WithValue(ctx, authContextKey{}, AuthInfo{
			Subject: claims.Subject,
			Roles:   claims.Roles,
			Scopes:  claims.Scopes,
		})
		return handler(ctx, req)
	}
}

// UnaryRBACInterceptor 基于 method->roles 的简单 RBAC：
// - 若 cfg.RBAC[info.FullMethod] 存在且非空，则要求 token roles 与之有交集
// - 若该方法未配置要求角色，则默认放行（只鉴权，不限权）
func UnaryRBACInterceptor(cfg config.AuthConfig) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if !cfg.Enabled {
			return handler(ctx, req)
		}
		if isPublicMethod(cfg.PublicMethods, info.FullMethod) {
			return handler(ctx, req)
		}

		required := cfg.RBAC[info.FullMethod]
		if len(required) == 0 {
			return handler(ctx, req)
		}

		ai, ok := AuthFromContext(ctx)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "missing auth context")
		}
		if !hasAnyRole(ai.Roles, required) {
			return nil, status.Error(codes.PermissionDenied,
				fmt.Sprintf("method %s requires one of roles %v", info.FullMethod, required))
		}
		return handler(ctx, req)
	}
}

func hasAnyRole(got, required []string) bool {
	set := make(map[string]struct{}, len(got))
	for _, r := range got {
		if r = strings.TrimSpace(strings.ToLower(r)); r != "" {
			set[r] = struct{}{}
		}
	}
	for _, r := range required {
		if r = strings.TrimSpace(strings.ToLower(r)); r == "" {
			continue
		} else if _, ok := set[r]; ok {
			return true
		}
	}
	return false
}

func isPublicMethod(public []string, method string) bool {
	if method == "" {
		return false
	}
	for _, m := range public {
		if strings.TrimSpace(m) == method {
			return true
		}
	}
	return false
}

// metadataTextMapCarrier 让 gRPC metadata 适配 OpenTracing 的 TextMap。
type metadataTextMapCarrier metadata.MD

func (c metadataTextMapCarrier) ForeachKey(handler func(key, val string) error) error {
	for k, vs := range metadata.MD(c) {
		for _, v := range vs {
			if err := handler(k, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c metadataTextMapCarrier) Set(key, val string) {
	metadata.MD(c).Set(key, val)
}
