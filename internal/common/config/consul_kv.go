package config

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/hashicorp/consul/api"
)

// loadConsulKV 从 Consul KV 读取 JSON 配置并覆盖到 cfg 上。
//
// uri 形如 consul://127.0.0.1:8500/permitdrive/permit-service/config；
// value 必须是与 Config 结构一致的 JSON。环境变量覆盖由 LoadConfig 统一做，
// 这里只负责读取和解析。
func loadConsulKV(uri string, cfg *Config) error {
	u, err := url.Parse(uri)
	if err != nil || u.Scheme != "consul" || u.Host == "" {
		return fmt.Errorf("invalid consul config uri %q", uri)
	}
	key := u.Path
	if len(key) > 0 && key[0] == '/' {
		key = key[1:]
	}
	if key == "" {
		return fmt.Errorf("consul config uri %q missing kv key", uri)
	}

	c, err := api.NewClient(&api.Config{Address: u.Host})
	if err != nil {
		return fmt.Errorf("failed to create consul client: %w", err)
	}

	pair, _, err := c.KV().Get(key, nil)
	if err != nil {
		return fmt.Errorf("failed to get consul kv key=%s: %w", key, err)
	}
	if pair == nil || len(pair.Value) == 0 {
		return fmt.Errorf("consul kv key=%s is empty or not found", key)
	}

	if err := json.Unmarshal(pair.Value, cfg); err != nil {
		return fmt.Errorf("failed to unmarshal consul kv json key=%s: %w", key, err)
	}
	return nil
}
