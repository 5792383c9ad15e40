// Package config loads service settings from config.yaml, with environment
// variables overriding any key (POSTGRES_MASTER_HOST sets postgres.master.host).
package config

import (
	"os"
	"strings"
	"time"

	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultMaxRequestBodySize = "100KB"

	defaultDispatchWorkers    = 4
	defaultDispatchBatchSize  = 100
	defaultDispatchActionName = "Zagrożenie"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		AutoMigrate bool   `json:"autoMigrate" yaml:"autoMigrate"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Dispatch configuration for the notification fan-out engine
	Dispatch *DispatchConfig `json:"dispatch" yaml:"dispatch"`

	// PubSub configuration for evacuation event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Worker configuration for the re-evaluation worker
	Worker *WorkerConfig `json:"worker" yaml:"worker"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`

	// Queries slower than this are logged at warn level; zero keeps the default
	SlowQuery time.Duration `json:"slowQuery" yaml:"slowQuery"`
}

// DispatchConfig defines tuning for alert fan-out
type DispatchConfig struct {
	// Number of goroutines building alert messages for one dispatch
	Workers int `json:"workers" yaml:"workers"`

	// Rows per INSERT statement when persisting a notification batch
	BatchSize int `json:"batchSize" yaml:"batchSize"`

	// Default action name used when a declaration omits it
	DefaultActionName string `json:"defaultActionName" yaml:"defaultActionName"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Upper bound for one publish call; zero keeps the default
	PublishTimeout time.Duration `json:"publishTimeout" yaml:"publishTimeout"`
}

// WorkerConfig defines the re-evaluation worker configuration
type WorkerConfig struct {
	// Port of the worker HTTP server; falls back to http.port when zero
	Port int `json:"port" yaml:"port"`

	// Timeout for a single re-evaluation triggered by a push message
	RedispatchTimeout time.Duration `json:"redispatchTimeout" yaml:"redispatchTimeout"`
}

// New reads config.yaml from ./config, ../config or ../../config and fills defaults.
func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	cfg.Dispatch = withDispatchDefaults(cfg.Dispatch)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = replicasFromEnv(os.LookupEnv)
	}

	return cfg, nil
}

// withDispatchDefaults fills unset dispatch tuning values.
func withDispatchDefaults(cfg *DispatchConfig) *DispatchConfig {
	if cfg == nil {
		cfg = &DispatchConfig{}
	}
	if cfg.Workers <= 0 {
		cfg.Workers = defaultDispatchWorkers
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultDispatchBatchSize
	}
	if strings.TrimSpace(cfg.DefaultActionName) == "" {
		cfg.DefaultActionName = defaultDispatchActionName
	}

	return cfg
}
