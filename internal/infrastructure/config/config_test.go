package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateEnv 清空相关环境变量并指向空数据目录
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, env := range envBindings {
		t.Setenv(env, "")
		os.Unsetenv(env)
	}
	ResetDataDir()
	t.Setenv(EnvDataDir, t.TempDir())
	t.Cleanup(ResetDataDir)
}

func TestNewConfig_Defaults(t *testing.T) {
	isolateEnv(t)

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, ":3360", cfg.Server.HTTPPort)
	assert.Equal(t, DriverMySQL, cfg.Database.Driver)
	assert.Equal(t, "127.0.0.1:3306", cfg.Database.Address())
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.Equal(t, 5*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.False(t, cfg.Discovery.Enabled)
	assert.True(t, cfg.MCP.Enabled)
	assert.Equal(t, filepath.Join(GetDataDir(), "listkeeper.db"), cfg.Database.SQLitePath())
}

func TestNewConfig_EnvOverride(t *testing.T) {
	isolateEnv(t)
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("DB_NAME", "lists")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("PORT", "8080")
	t.Setenv("MDNS_ENABLED", "true")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "db.internal:3307", cfg.Database.Address())
	assert.Equal(t, "lists", cfg.Database.Name)
	assert.Equal(t, "app", cfg.Database.User)
	assert.Equal(t, "secret", cfg.Database.Password)
	assert.Equal(t, ":8080", cfg.Server.HTTPPort, "端口缺少冒号时自动补齐")
	assert.True(t, cfg.Discovery.Enabled)
}

func TestDatabaseConfig_AddressWithPort(t *testing.T) {
	cfg := &DatabaseConfig{Host: "10.0.0.5:3310", Port: 3306}
	assert.Equal(t, "10.0.0.5:3310", cfg.Address())
}

func TestLoad_ConfigFile(t *testing.T) {
	isolateEnv(t)

	path := filepath.Join(t.TempDir(), "listkeeper.yaml")
	content := `
server:
  port: ":4000"
database:
  driver: SQLite
  path: /tmp/lists.db
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":4000", cfg.Server.HTTPPort)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "/tmp/lists.db", cfg.Database.SQLitePath())

	// 环境变量优先于配置文件
	t.Setenv("DB_DRIVER", "mysql")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, DriverMySQL, cfg.Database.Driver)
}

func TestLoad_DataDirConfigFile(t *testing.T) {
	isolateEnv(t)
	require.NoError(t, os.WriteFile(filepath.Join(GetDataDir(), "config.yaml"), []byte("database:\n  name: fromfile\n"), 0o644))

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, "fromfile", cfg.Database.Name)
}

func TestLoad_Errors(t *testing.T) {
	isolateEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err, "显式指定的配置文件不存在应报错")

	t.Setenv("DB_DRIVER", "postgres")
	_, err = NewConfig()
	assert.ErrorContains(t, err, "unsupported database driver")
}
