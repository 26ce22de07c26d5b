// Package config loads the backend configuration from a config file and
// environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/ryanuber/go-glob"
	"github.com/saku-app/backend/internal/reconcile"
	"github.com/spf13/viper"
)

// CategoryConfig is a spending category that is seeded into the database
// at startup.
type CategoryConfig struct {
	Key  string `mapstructure:"key"`
	Name string `mapstructure:"name"`
	Icon string `mapstructure:"icon"`
}

// SheetsConfig configures the Google Sheets transaction import.
type SheetsConfig struct {
	SpreadsheetID   string `mapstructure:"spreadsheet_id"`
	Range           string `mapstructure:"range"`
	CredentialsFile string `mapstructure:"credentials_file"`
}

type Config struct {
	Port         int    `mapstructure:"port"`
	DatabaseFile string `mapstructure:"database_file"`
	LogFormat    string `mapstructure:"log_format"`
	GinMode      string `mapstructure:"gin_mode"`
	EnablePprof  bool   `mapstructure:"enable_pprof"`

	// Serves Prometheus metrics on /metrics when set.
	EnableMetrics bool `mapstructure:"enable_metrics"`

	// CORS origins that are allowed to use the API, separated by spaces.
	CORSAllowOrigins string `mapstructure:"cors_allow_origins"`

	// Accounts matching one of these glob patterns keep decimals when
	// their balance is reconciled. All other accounts use whole numbers.
	DecimalAccounts []string `mapstructure:"decimal_accounts"`

	Categories []CategoryConfig `mapstructure:"categories"`
	Sheets     SheetsConfig     `mapstructure:"sheets"`
}

// Load reads the configuration. Every key can be overridden with a
// SAKU_ prefixed environment variable, e.g. SAKU_PORT.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("port", 8080)
	v.SetDefault("database_file", "data/saku.db")
	v.SetDefault("log_format", "")
	v.SetDefault("gin_mode", "release")
	v.SetDefault("enable_pprof", false)
	v.SetDefault("enable_metrics", false)
	v.SetDefault("cors_allow_origins", "")
	v.SetDefault("decimal_accounts", []string{})
	v.SetDefault("sheets.range", "Transactions!A:D")
	v.SetDefault("categories", defaultCategories)

	v.SetEnvPrefix("saku")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	return &cfg, nil
}

// KindFor returns the reconciliation kind for an account name.
func (c *Config) KindFor(accountName string) reconcile.AccountKind {
	for _, pattern := range c.DecimalAccounts {
		if glob.Glob(pattern, accountName) {
			return reconcile.KindDecimal
		}
	}

	return reconcile.KindInteger
}

var defaultCategories = []map[string]string{
	{"key": "DINING OUT", "name": "Dining out", "icon": "🍜"},
	{"key": "FOOD", "name": "Food", "icon": "🍚"},
	{"key": "FRUITS", "name": "Fruits", "icon": "🍉"},
	{"key": "GROCERIES", "name": "Groceries", "icon": "🛒"},
	{"key": "GRAB CREDIT", "name": "Grab credit", "icon": "🛵"},
}
