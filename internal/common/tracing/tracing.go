package tracing

import (
	"fmt"
	"io"

	"github.com/opentracing/opentracing-go"
	"github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
)

type noopCloser struct{}

func (noopCloser) Close() error { return nil }

// InitTracer 初始化 Jaeger tracer 并设置为全局 tracer。
//
// endpoint 为空表示本环境不接 Jaeger（本地调试、单测），返回 NoopTracer；
// sampler 取 (0,1) 时按概率采样，其余值按 const 采样（0 全关 / 1 全开）。
func InitTracer(serviceName, endpoint string, sampler float64) (opentracing.Tracer, io.Closer, error) {
	if endpoint == "" {
		tracer := opentracing.NoopTracer{}
		opentracing.SetGlobalTracer(tracer)
		return tracer, noopCloser{}, nil
	}

	samplerType := jaeger.SamplerTypeConst
	if sampler > 0 && sampler < 1 {
		samplerType = jaeger.SamplerTypeProbabilistic
	}

	cfg := &jaegercfg.Configuration{
		ServiceName: serviceName,
		Sampler: &jaegercfg.SamplerConfig{
			Type:  samplerType,
			Param: sampler,
		},
		Reporter: &jaegercfg.ReporterConfig{
			LocalAgentHostPort: endpoint,
		},
	}

	tracer, closer, err := cfg.NewTracer(jaegercfg.Logger(jaeger.StdLogger))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init jaeger tracer: %w", err)
	}

	opentracing.SetGlobalTracer(tracer)
	return tracer, closer, nil
}
