package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Service         ServiceConfig        `mapstructure:"service"`
	Databases       DatabasesConfig      `mapstructure:"databases"`
	ExternalClients ExternalClientConfig `mapstructure:"externalClients"`
	Portfolio       PortfolioConfig      `mapstructure:"portfolio"`
	AWS             AWSConfig            `mapstructure:"aws"`
}

type ServiceType string

const (
	API    ServiceType = "API"
	WORKER ServiceType = "WORKER"
)

type ServiceConfig struct {
	Type     ServiceType `mapstructure:"type"`
	Port     string      `mapstructure:"port"`
	LogLevel string      `mapstructure:"logLevel"`
}

type DatabasesConfig struct {
	SQL   SQLConfig   `mapstructure:"sql"`
	Redis RedisConfig `mapstructure:"redis"`
}

type SQLConfig struct {
	Host             string `mapstructure:"host"`
	Port             string `mapstructure:"port"`
	Username         string `mapstructure:"username"`
	Password         string `mapstructure:"password"`
	Driver           string `mapstructure:"driver"`
	Database         string `mapstructure:"database"`
	ConnectionString string `mapstructure:"connection_string"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Database int    `mapstructure:"database"`
}

type ExternalClientConfig struct {
	Quotes QuotesConfig `mapstructure:"quotes"`
	FX     FXConfig     `mapstructure:"fx"`
}

type QuotesConfig struct {
	BaseURL         string `mapstructure:"baseUrl"`
	CacheTTLSeconds int    `mapstructure:"cacheTtlSeconds"`
}

type FXConfig struct {
	BaseURL         string `mapstructure:"baseUrl"`
	CacheTTLSeconds int    `mapstructure:"cacheTtlSeconds"`
}

type PortfolioConfig struct {
	// BaseCurrency is the single currency every monetary figure is converted into.
	BaseCurrency string `mapstructure:"baseCurrency"`
	// ClassificationRulesFile optionally extends the built-in face-value
	// classification patterns with a CSV of (pattern, kind) rows.
	ClassificationRulesFile string `mapstructure:"classificationRulesFile"`
	RecomputeCron           string `mapstructure:"recomputeCron"`
	MarketRefreshCron       string `mapstructure:"marketRefreshCron"`
	// RunLockKey is the advisory lock key guarding single-run-at-a-time.
	RunLockKey int64 `mapstructure:"runLockKey"`
}

type AWSConfig struct {
	Region string `mapstructure:"region"`
	// DBSecretID, when set, overrides databases.sql.password with the value
	// stored in Secrets Manager.
	DBSecretID string `mapstructure:"dbSecretId"`
}

func LoadConfig(path string) (*Config, error) {
	var cfg Config

	viper.AddConfigPath(path)
	viper.SetConfigName("appsettings")
	viper.SetConfigType("yaml")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}
	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Portfolio.BaseCurrency == "" {
		cfg.Portfolio.BaseCurrency = "USD"
	}
	if cfg.Portfolio.RunLockKey == 0 {
		cfg.Portfolio.RunLockKey = defaultRunLockKey
	}
	return &cfg, nil
}

// Arbitrary but fixed: every deployment sharing a database must agree on it.
const defaultRunLockKey int64 = 7735402417
