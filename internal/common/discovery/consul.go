package discovery

import (
	"fmt"
	"time"

	"github.com/hashicorp/consul/api"
	"google.golang.org/grpc/resolver"
)

const consulScheme = "consul"

// ConsulResolver 基于 Consul 健康检查结果的 gRPC 解析器。
// 每个下游服务一个实例，watch 循环用阻塞查询跟踪健康实例列表。
type ConsulResolver struct {
	client  *api.Client
	cc      resolver.ClientConn
	service string
	stop    chan struct{}
}

// NewConsulResolver 创建并注册解析器。
func NewConsulResolver(client *api.Client, service string, cc resolver.ClientConn) *ConsulResolver {
	r := &ConsulResolver{
		client:  client,
		cc:      cc,
		service: service,
		stop:    make(chan struct{}),
	}
	resolver.Register(r)
	return r
}

func (r *ConsulResolver) Build(target resolver.Target, cc resolver.ClientConn, opts resolver.BuildOptions) (resolver.Resolver, error) {
	go r.watch(cc)
	return r, nil
}

func (r *ConsulResolver) Scheme() string { return consulScheme }

func (r *ConsulResolver) ResolveNow(resolver.ResolveNowOptions) {}

func (r *ConsulResolver) Close() {
	select {
	case <-r.stop:
	default:
		close(r.stop)
	}
}

func (r *ConsulResolver) watch(cc resolver.ClientConn) {
	var lastIndex uint64
	for {
		select {
		case <-r.stop:
			return
		default:
		}

		services, meta, err := r.client.Health().Service(r.service, "", true, &api.QueryOptions{
			WaitIndex: lastIndex,
			WaitTime:  30 * time.Second,
		})
		if err != nil {
			time.Sleep(2 * time.Second)
			continue
		}
		lastIndex = meta.LastIndex

		addrs := make([]resolver.Address, 0, len(services))
		for _, svc := range services {
			addrs = append(addrs, resolver.Address{
				Addr: fmt.Sprintf("%s:%d", svc.Service.Address, svc.Service.Port),
			})
		}
		if len(addrs) > 0 {
			cc.UpdateState(resolver.State{Addresses: addrs})
		}
	}
}

// ServiceRegistry 把本实例注册到 Consul，带 gRPC 健康检查。
type ServiceRegistry struct {
	client    *api.Client
	serviceID string
	service   string
	address   string
	port      int
	tags      []string
	meta      map[string]string
}

// NewServiceRegistry 创建服务注册器。
// meta 可为 nil；注册时附带在服务实例上，供网关路由参考。
func NewServiceRegistry(client *api.Client, serviceID, service, address string, port int, tags []string, meta map[string]string) *ServiceRegistry {
	return &ServiceRegistry{
		client:    client,
		serviceID: serviceID,
		service:   service,
		address:   address,
		port:      port,
		tags:      tags,
		meta:      meta,
	}
}

// Register 注册服务实例。
func (r *ServiceRegistry) Register() error {
	registration := &api.AgentServiceRegistration{
		ID:      r.serviceID,
		Name:    r.service,
		Tags:    r.tags,
		Meta:    r.meta,
		Address: r.address,
		Port:    r.port,
		Check: &api.AgentServiceCheck{
			GRPC:                           fmt.Sprintf("%s:%d", r.address, r.port),
			Interval:                       "10s",
			Timeout:                        "5s",
			DeregisterCriticalServiceAfter: "30s",
		},
	}
	return r.client.Agent().ServiceRegister(registration)
}

// Deregister 注销服务实例。
func (r *ServiceRegistry) Deregister() error {
	return r.client.Agent().ServiceDeregister(r.serviceID)
}

// NewConsulClient 创建 Consul 客户端。
func NewConsulClient(host string, port int) (*api.Client, error) {
	config := api.DefaultConfig()
	config.Address = fmt.Sprintf("%s:%d", host, port)
	return api.NewClient(config)
}
