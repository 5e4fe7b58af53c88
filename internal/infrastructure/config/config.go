package config

import (
	"errors"
	"fmt"
	"net"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	// DriverMySQL 生产环境数据库驱动
	DriverMySQL = "mysql"
	// DriverSQLite 本地开发/测试数据库驱动
	DriverSQLite = "sqlite"

	configFileName = "config"
	configFileType = "yaml"
)

// Config 应用配置
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Discovery DiscoveryConfig `mapstructure:"discovery"`
	MCP       MCPConfig       `mapstructure:"mcp"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	HTTPPort string `mapstructure:"port"` // 固定端口，同时用于单例锁
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Driver   string `mapstructure:"driver"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Name     string `mapstructure:"name"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	// Path SQLite 数据库文件路径，留空表示 <数据目录>/listkeeper.db
	Path string `mapstructure:"path"`

	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// Address 返回 host:port 形式的 MySQL 地址
// DB_HOST 已经带端口时原样返回
func (c *DatabaseConfig) Address() string {
	if _, _, err := net.SplitHostPort(c.Host); err == nil {
		return c.Host
	}
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// SQLitePath 返回 SQLite 文件路径
func (c *DatabaseConfig) SQLitePath() string {
	if c.Path != "" {
		return c.Path
	}
	return filepath.Join(GetDataDir(), "listkeeper.db")
}

// DiscoveryConfig mDNS 服务广播配置
type DiscoveryConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Instance string `mapstructure:"instance"`
}

// MCPConfig MCP 端点配置
type MCPConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// envBindings 配置键与环境变量的对应关系
var envBindings = map[string]string{
	"server.port":                "PORT",
	"database.driver":            "DB_DRIVER",
	"database.host":              "DB_HOST",
	"database.port":              "DB_PORT",
	"database.name":              "DB_NAME",
	"database.user":              "DB_USER",
	"database.password":          "DB_PASSWORD",
	"database.path":              "DB_PATH",
	"database.max_open_conns":    "DB_MAX_OPEN_CONNS",
	"database.max_idle_conns":    "DB_MAX_IDLE_CONNS",
	"database.conn_max_lifetime": "DB_CONN_MAX_LIFETIME",
	"discovery.enabled":          "MDNS_ENABLED",
	"discovery.instance":         "MDNS_INSTANCE",
	"mcp.enabled":                "MCP_ENABLED",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", ":3360")
	v.SetDefault("database.driver", DriverMySQL)
	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.name", "todo")
	v.SetDefault("database.user", "root")
	v.SetDefault("database.password", "")
	v.SetDefault("database.path", "")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", 5*time.Minute)
	v.SetDefault("discovery.enabled", false)
	v.SetDefault("discovery.instance", "listkeeper")
	v.SetDefault("mcp.enabled", true)
}

// NewConfig 从环境变量和数据目录下的 config.yaml 加载配置
func NewConfig() (*Config, error) {
	return Load("")
}

// Load 加载配置
// 优先级：环境变量 > 配置文件 > 默认值
// path 为空时在数据目录查找 config.yaml，文件不存在不视为错误
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind env %s: %w", env, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(GetDataDir())
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	c.Database.Driver = strings.ToLower(strings.TrimSpace(c.Database.Driver))
	switch c.Database.Driver {
	case DriverMySQL, DriverSQLite:
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}

	if c.Server.HTTPPort == "" {
		return errors.New("server port is required")
	}
	if !strings.Contains(c.Server.HTTPPort, ":") {
		c.Server.HTTPPort = ":" + c.Server.HTTPPort
	}

	return nil
}

// NewDatabaseConfig 创建数据库配置
func NewDatabaseConfig(cfg *Config) *DatabaseConfig {
	return &cfg.Database
}

// NewServerConfig 创建服务器配置
func NewServerConfig(cfg *Config) *ServerConfig {
	return &cfg.Server
}

// NewDiscoveryConfig 创建服务广播配置
func NewDiscoveryConfig(cfg *Config) *DiscoveryConfig {
	return &cfg.Discovery
}

// NewMCPConfig 创建 MCP 配置
func NewMCPConfig(cfg *Config) *MCPConfig {
	return &cfg.MCP
}
