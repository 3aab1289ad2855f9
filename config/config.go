// Package config 加载启动器配置：默认值 + 可选 YAML 文件
package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"gosolid/data/db"
	"gosolid/errors"
	"gosolid/validation"
)

// 传真线路
const (
	TransportSync  = "sync"
	TransportRedis = "redis"
	TransportNATS  = "nats"
)

// 关系存储
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

// Config 启动器配置
type Config struct {
	LogLevel      string              `yaml:"log_level"`
	Fax           FaxConfig           `yaml:"fax"`
	Relationships RelationshipsConfig `yaml:"relationships"`
}

type FaxConfig struct {
	// Enabled 为 true 时 ISP 演示追加一次传真
	Enabled        bool        `yaml:"enabled"`
	Transport      string      `yaml:"transport"`
	// RedialAttempts 线路忙时的总拨号次数（含首次）
	RedialAttempts int         `yaml:"redial_attempts"`
	Redis          RedisConfig `yaml:"redis"`
	NATS           NATSConfig  `yaml:"nats"`
}

type RedisConfig struct {
	Addr         string `yaml:"addr"`
	Username     string `yaml:"username"`
	Password     string `yaml:"password"`
	DB           int    `yaml:"db"`
	StreamPrefix string `yaml:"stream_prefix"`
	MaxLen       int64  `yaml:"max_len"`
}

type NATSConfig struct {
	URL           string `yaml:"url"`
	Stream        string `yaml:"stream"`
	SubjectPrefix string `yaml:"subject_prefix"`
}

type RelationshipsConfig struct {
	Store string `yaml:"store"`
	DSN   string `yaml:"dsn"`
}

// Default 返回默认配置：同步传真线路，内存关系存储
func Default() Config {
	return Config{
		LogLevel: "info",
		Fax: FaxConfig{
			Transport:      TransportSync,
			RedialAttempts: 3,
			Redis:          RedisConfig{Addr: "localhost:6379"},
			NATS:           NATSConfig{URL: "nats://127.0.0.1:4222"},
		},
		Relationships: RelationshipsConfig{
			Store: StoreMemory,
			DSN:   db.MemoryDSN,
		},
	}
}

// Load 读取 path 覆盖默认值；path 为空时只返回默认值
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.WrapError(err, errors.ErrCodeConfig, "read config "+path)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, errors.WrapError(err, errors.ErrCodeConfig, "parse config "+path)
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Normalize 枚举字段统一为小写并去除空白，空 DSN 回落到内存库
func (c *Config) Normalize() {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.Fax.Transport = strings.ToLower(strings.TrimSpace(c.Fax.Transport))
	c.Relationships.Store = strings.ToLower(strings.TrimSpace(c.Relationships.Store))
	if c.Relationships.DSN == "" {
		c.Relationships.DSN = db.MemoryDSN
	}
}

// Validate 校验枚举字段以及所选线路的连接参数
func (c Config) Validate() error {
	return validation.ValidateAll(
		func() error {
			return validation.ValidateEnum(c.LogLevel, "log_level", []string{"debug", "info", "warn", "warning", "error"})
		},
		func() error {
			return validation.ValidateEnum(c.Fax.Transport, "fax.transport", []string{TransportSync, TransportRedis, TransportNATS})
		},
		func() error {
			return validation.ValidateEnum(c.Relationships.Store, "relationships.store", []string{StoreMemory, StoreSQLite})
		},
		func() error { return validation.ValidatePositive(c.Fax.RedialAttempts, "fax.redial_attempts") },
		func() error {
			if c.Fax.Transport != TransportRedis {
				return nil
			}
			return validation.ValidateRequired(c.Fax.Redis.Addr, "fax.redis.addr")
		},
		func() error {
			if c.Fax.Transport != TransportNATS {
				return nil
			}
			return validation.ValidateRequired(c.Fax.NATS.URL, "fax.nats.url")
		},
	)
}

// DBConfig 关系存储对应的数据库配置
func (c Config) DBConfig() db.DBConfig {
	return db.DBConfig{Driver: "sqlite", Database: c.Relationships.DSN}
}
