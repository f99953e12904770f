package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"sync"
	"time"

	permitpb "github.com/PermitDrive/PermitDrive/internal/api/proto/permit"
	"github.com/PermitDrive/PermitDrive/internal/common/config"
	"github.com/PermitDrive/PermitDrive/internal/common/discovery"
	"github.com/PermitDrive/PermitDrive/internal/common/logger"
	"github.com/PermitDrive/PermitDrive/internal/common/middleware"
	"github.com/hashicorp/consul/api"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// HTTP 入口：目前只暴露容量查询（管理端轮询最频繁的读路径），
// 写操作仍直接走 permit-service 的 gRPC。
// 对后端的调用有令牌桶限流 + 熔断保护。

var (
	configPath = flag.String("config", "configs/api-gateway.json", "配置文件路径")
)

type gateway struct {
	cfg     *config.Config
	log     logger.Logger
	consul  *api.Client
	limiter middleware.RateLimiter
	breaker *middleware.CircuitBreaker

	mu   sync.Mutex
	conn *grpc.ClientConn
}

// permitConn 懒加载到 permit-service 的连接（通过 Consul 找一个健康实例）。
func (g *gateway) permitConn() (*grpc.ClientConn, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.conn != nil {
		return g.conn, nil
	}

	services, _, err := g.consul.Health().Service(g.cfg.Gateway.PermitService, "", true, nil)
	if err != nil {
		return nil, fmt.Errorf("consul lookup: %w", err)
	}
	if len(services) == 0 {
		return nil, fmt.Errorf("no healthy %s instance", g.cfg.Gateway.PermitService)
	}
	svc := services[0].Service
	addr := fmt.Sprintf("%s:%d", svc.Address, svc.Port)

	conn, err := grpc.Dial(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}
	g.conn = conn
	return conn, nil
}

func (g *gateway) handleAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if !g.limiter.Allow(ctx) {
		http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
		return
	}

	unitID := r.URL.Query().Get("unit_id")
	if unitID == "" {
		http.Error(w, "unit_id required", http.StatusBadRequest)
		return
	}

	var resp *permitpb.GetAvailabilityResponse
	err := g.breaker.Call(ctx, func() error {
		conn, err := g.permitConn()
		if err != nil {
			return err
		}
		client := permitpb.NewPermitServiceClient(conn)
		out, err := client.GetAvailability(ctx, &permitpb.GetAvailabilityRequest{UnitId: unitID})
		if err != nil {
			return err
		}
		resp = out
		return nil
	})
	if err != nil {
		g.log.Warnf("availability upstream failed: %v", err)
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(resp)
}

func main() {
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	log, err := logger.NewLogger(cfg.Log.Driver, cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.Path)
	if err != nil {
		panic(fmt.Sprintf("failed to init logger: %v", err))
	}

	consulClient, err := discovery.NewConsulClient(cfg.Consul.Host, cfg.Consul.Port)
	if err != nil {
		log.Fatalf("failed to connect to Consul: %v", err)
	}

	g := &gateway{
		cfg:     cfg,
		log:     log,
		consul:  consulClient,
		limiter: middleware.NewTokenBucket(cfg.Gateway.RateCapacity, cfg.Gateway.RateRefill),
		breaker: middleware.NewCircuitBreaker(
			cfg.Gateway.PermitService,
			cfg.Gateway.BreakerMaxFail,
			time.Duration(cfg.Gateway.BreakerResetMS)*time.Millisecond,
		),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/v1/availability", g.handleAvailability)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Infof("api-gateway listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("api-gateway exited with error: %v", err)
	}
}
