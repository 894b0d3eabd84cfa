package config

import (
	"strings"

	"newpunch-journalist/internal/model"
)

// AppConfig holds application-level settings.
type AppConfig struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"` // text or json
}

// RedisConfig holds redis connection settings.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// FacepunchConfig controls the forum listing source.
type FacepunchConfig struct {
	Host      string `mapstructure:"host"`
	MaxPages  int    `mapstructure:"max_pages"`
	Timeout   string `mapstructure:"timeout"` // duration string, e.g., "10s"
	UserAgent string `mapstructure:"user_agent"`
}

// CategoryConfig binds a category to its listing path and table.
type CategoryConfig struct {
	ListingPath string `mapstructure:"listing_path"` // must contain {pageNum}
	Table       string `mapstructure:"table"`
}

// CategoriesConfig holds one entry per fixed category.
type CategoriesConfig struct {
	Sensationalist CategoryConfig `mapstructure:"sensationalist"`
	Polidicks      CategoryConfig `mapstructure:"polidicks"`
}

// StorageConfig controls the table store.
type StorageConfig struct {
	KeyPrefix string `mapstructure:"key_prefix"`
	BatchSize int    `mapstructure:"batch_size"`
}

// RefreshConfig controls the scheduled refresh.
type RefreshConfig struct {
	Schedule     string `mapstructure:"schedule"` // cron spec, e.g., "@every 10m"
	RunAtStartup bool   `mapstructure:"run_at_startup"`
	Timeout      string `mapstructure:"timeout"`
}

// ServerConfig controls the HTTP surface.
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// VoiceConfig controls the voice adapter.
type VoiceConfig struct {
	// QueryURL points the adapter at a remote query endpoint. Empty means the
	// query service is invoked in-process.
	QueryURL string `mapstructure:"query_url"`
	Timeout  string `mapstructure:"timeout"`
}

// Config is the top-level configuration structure.
type Config struct {
	App        AppConfig        `mapstructure:"app"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Facepunch  FacepunchConfig  `mapstructure:"facepunch"`
	Categories CategoriesConfig `mapstructure:"categories"`
	Storage    StorageConfig    `mapstructure:"storage"`
	Refresh    RefreshConfig    `mapstructure:"refresh"`
	Server     ServerConfig     `mapstructure:"server"`
	Voice      VoiceConfig      `mapstructure:"voice"`
}

// FillDefaults applies default values if not provided.
func (c *Config) FillDefaults() {
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	if c.App.LogFormat == "" {
		c.App.LogFormat = "text"
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = "127.0.0.1:6379"
	}
	if c.Facepunch.Host == "" {
		c.Facepunch.Host = "https://forum.facepunch.com"
	}
	c.Facepunch.Host = strings.TrimRight(c.Facepunch.Host, "/")
	if c.Facepunch.MaxPages <= 0 {
		c.Facepunch.MaxPages = 3
	}
	if c.Facepunch.Timeout == "" {
		c.Facepunch.Timeout = "10s"
	}
	if c.Facepunch.UserAgent == "" {
		c.Facepunch.UserAgent = "newpunch-journalist/1.0"
	}
	if c.Categories.Sensationalist.ListingPath == "" {
		c.Categories.Sensationalist.ListingPath = "/f/sh/p/{pageNum}"
	}
	if c.Categories.Sensationalist.Table == "" {
		c.Categories.Sensationalist.Table = "sensationalist"
	}
	if c.Categories.Polidicks.ListingPath == "" {
		c.Categories.Polidicks.ListingPath = "/f/pd/p/{pageNum}"
	}
	if c.Categories.Polidicks.Table == "" {
		c.Categories.Polidicks.Table = "polidicks"
	}
	if c.Storage.KeyPrefix == "" {
		c.Storage.KeyPrefix = "newpunch"
	}
	if c.Storage.BatchSize <= 0 {
		c.Storage.BatchSize = 25
	}
	if c.Refresh.Schedule == "" {
		c.Refresh.Schedule = "@every 10m"
	}
	if c.Refresh.Timeout == "" {
		c.Refresh.Timeout = "2m"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Voice.Timeout == "" {
		c.Voice.Timeout = "5s"
	}
}

// Category returns the settings bound to cat.
func (c Config) Category(cat model.Category) CategoryConfig {
	if cat == model.Polidicks {
		return c.Categories.Polidicks
	}
	return c.Categories.Sensationalist
}

// Tables maps every category to its table name.
func (c Config) Tables() map[model.Category]string {
	out := make(map[model.Category]string, len(model.Categories))
	for _, cat := range model.Categories {
		out[cat] = c.Category(cat).Table
	}
	return out
}
