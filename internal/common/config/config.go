package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

// Config 应用配置
type Config struct {
	Server   ServerConfig   `json:"server"`
	Database DatabaseConfig `json:"database"`
	Consul   ConsulConfig   `json:"consul"`
	Jaeger   JaegerConfig   `json:"jaeger"`
	Log      LogConfig      `json:"log"`
	Auth     AuthConfig     `json:"auth"`
	Gateway  GatewayConfig  `json:"gateway"`
}

// ServerConfig 服务配置
type ServerConfig struct {
	Name     string `json:"name"`      // 服务名称
	Host     string `json:"host"`      // 服务地址
	GRPCPort int    `json:"grpc_port"` // gRPC端口
	HTTPPort int    `json:"http_port"` // HTTP端口（metrics / gateway）
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Driver   string `json:"driver"`   // 数据库驱动
	Host     string `json:"host"`     // 数据库地址
	Port     int    `json:"port"`     // 数据库端口
	User     string `json:"user"`     // 用户名
	Password string `json:"password"` // 密码
	Database string `json:"database"` // 数据库名
	MaxIdle  int    `json:"max_idle"` // 最大空闲连接
	MaxOpen  int    `json:"max_open"` // 最大打开连接
}

// ConsulConfig Consul配置
type ConsulConfig struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

// JaegerConfig Jaeger配置
type JaegerConfig struct {
	Endpoint string  `json:"endpoint"`
	Sampler  float64 `json:"sampler"` // 采样率 0.0-1.0
}

// LogConfig 日志配置
type LogConfig struct {
	Driver string `json:"driver"` // logrus, zap
	Level  string `json:"level"`  // debug, info, warn, error
	Format string `json:"format"` // json, text
	Output string `json:"output"` // stdout, file
	Path   string `json:"path"`   // 日志文件路径
}

// AuthConfig 鉴权配置。
// JWTSecret 同时用于接入层鉴权和发证引擎内部的 override 能力校验。
type AuthConfig struct {
	Enabled       bool                `json:"enabled"`
	JWTSecret     string              `json:"jwt_secret" envconfig:"JWT_SECRET"`
	Issuer        string              `json:"issuer"`
	Audience      string              `json:"audience"`
	PublicMethods []string            `json:"public_methods" envconfig:"-"`
	RBAC          map[string][]string `json:"rbac" envconfig:"-"` // full method -> roles
	OverrideScope string              `json:"override_scope"`     // 默认 permits:override
}

// GatewayConfig 网关配置（仅 api-gateway 使用）。
type GatewayConfig struct {
	PermitService  string `json:"permit_service"`   // Consul 服务名
	RateCapacity   int64  `json:"rate_capacity"`    // 令牌桶容量
	RateRefill     int64  `json:"rate_refill"`      // 每秒补充令牌数
	BreakerMaxFail int    `json:"breaker_max_fail"` // 熔断阈值
	BreakerResetMS int    `json:"breaker_reset_ms"` // 熔断重置时间（毫秒）
}

var (
	globalConfig *Config
	configOnce   sync.Once
)

// LoadConfig 加载配置：文件（JSON）或 Consul KV -> 环境变量覆盖（PERMITDRIVE_ 前缀）。
// configPath 以 consul:// 开头时从 Consul KV 读取（见 loadConsulKV），否则按本地文件处理。
func LoadConfig(configPath string) (*Config, error) {
	var err error
	configOnce.Do(func() {
		globalConfig = defaultConfig()
		if strings.HasPrefix(configPath, "consul://") {
			if kvErr := loadConsulKV(configPath, globalConfig); kvErr != nil {
				err = kvErr
				return
			}
		} else if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
			// 配置文件不存在时退回默认配置
			logrus.Warnf("Config file not found: %s, using default config", configPath)
		} else {
			data, readErr := os.ReadFile(configPath)
			if readErr != nil {
				err = fmt.Errorf("failed to read config file: %w", readErr)
				return
			}
			if unmarshalErr := json.Unmarshal(data, globalConfig); unmarshalErr != nil {
				err = fmt.Errorf("failed to parse config file: %w", unmarshalErr)
				return
			}
		}

		// 环境变量覆盖（如 PERMITDRIVE_AUTH_JWT_SECRET）
		if envErr := envconfig.Process("permitdrive", globalConfig); envErr != nil {
			err = fmt.Errorf("failed to apply env overrides: %w", envErr)
			return
		}
	})

	if err != nil {
		return nil, err
	}

	return globalConfig, nil
}

// GetConfig 获取全局配置
func GetConfig() *Config {
	if globalConfig == nil {
		return defaultConfig()
	}
	return globalConfig
}

// defaultConfig 默认配置（开发环境）
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Name:     "default-service",
			Host:     "0.0.0.0",
			GRPCPort: 50051,
			HTTPPort: 8080,
		},
		Database: DatabaseConfig{
			Driver:   "mysql",
			Host:     "localhost",
			Port:     3306,
			User:     "root",
			Password: "root",
			Database: "permitdrive",
			MaxIdle:  10,
			MaxOpen:  100,
		},
		Consul: ConsulConfig{
			Host: "localhost",
			Port: 8500,
		},
		Jaeger: JaegerConfig{
			Endpoint: "http://localhost:14268/api/traces",
			Sampler:  1.0,
		},
		Log: LogConfig{
			Driver: "logrus",
			Level:  "debug",
			Format: "text",
			Output: "stdout",
			Path:   "logs/app.log",
		},
		Auth: AuthConfig{
			Enabled:       false,
			Issuer:        "permitdrive",
			Audience:      "permitdrive",
			OverrideScope: "permits:override",
		},
		Gateway: GatewayConfig{
			PermitService:  "permit-service",
			RateCapacity:   100,
			RateRefill:     50,
			BreakerMaxFail: 5,
			BreakerResetMS: 10_000,
		},
	}
}
