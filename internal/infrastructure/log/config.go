package log

import (
	"strings"

	"github.com/spf13/viper"
)

// Config 日志配置
type Config struct {
	// Level 日志级别：debug, info, warn, error
	Level string `mapstructure:"level"`

	// Format 日志格式：console, json
	Format string `mapstructure:"format"`

	// Output 输出目标：stdout, stderr, discard, file:/path/to/log
	Output string `mapstructure:"output"`

	// AddSource 是否添加源文件信息
	AddSource bool `mapstructure:"add_source"`
}

// logEnv 配置键 -> 环境变量
var logEnv = map[string]string{
	"level":      "LOG_LEVEL",
	"format":     "LOG_FORMAT",
	"output":     "LOG_OUTPUT",
	"add_source": "LOG_ADD_SOURCE",
	"env":        "APP_ENV",
}

// NewConfigFromEnv 从环境变量读取日志配置
// APP_ENV=development 时强制 debug 级别并附带源文件位置
func NewConfigFromEnv() *Config {
	v := viper.New()
	v.SetDefault("level", "info")
	v.SetDefault("format", "console")
	v.SetDefault("output", "stdout")
	v.SetDefault("add_source", false)
	v.SetDefault("env", "production")
	for key, env := range logEnv {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{
		Level:     v.GetString("level"),
		Format:    v.GetString("format"),
		Output:    v.GetString("output"),
		AddSource: v.GetBool("add_source"),
	}

	if strings.EqualFold(v.GetString("env"), "development") {
		cfg.Level = "debug"
		cfg.AddSource = true
	}

	return cfg
}
