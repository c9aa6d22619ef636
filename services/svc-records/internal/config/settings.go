package config

import (
	"time"

	"github.com/architeacher/filtersort/services/svc-records/internal/domain/model"
)

var (
	ServiceVersion string
	CommitSHA      string
)

const (
	Development = 1 << iota
	Staging
	Production
)

type (
	ServiceConfig struct {
		App        App        `json:"app"`
		HTTPServer HTTPServer `json:"http_server"`
		Database   Database   `json:"database"`
		Secrets    Secrets    `json:"secrets"`
		Filtering  Filtering  `json:"filtering"`
		Sorting    Sorting    `json:"sorting"`
		Registry   Registry   `json:"registry"`
		Records    Records    `json:"records"`
		Logging    Logging    `json:"logging"`
		Telemetry  Telemetry  `json:"telemetry"`
	}

	App struct {
		ServiceName    string      `envconfig:"APP_SERVICE_NAME" default:"svc-records" json:"service_name"`
		ServiceVersion string      `envconfig:"APP_SERVICE_VERSION" default:"dev" json:"service_version"`
		CommitSHA      string      `envconfig:"APP_COMMIT_SHA" default:"" json:"commit_sha,omitempty"`
		Env            Environment `json:"environment"`
	}

	Environment struct {
		Name string `envconfig:"APP_ENVIRONMENT" default:"development" json:"env"`
	}

	HTTPServer struct {
		Host            string        `envconfig:"HTTP_SERVER_HOST" default:"0.0.0.0" json:"host"`
		Port            uint          `envconfig:"HTTP_SERVER_PORT" default:"8080" json:"port"`
		ReadTimeout     time.Duration `envconfig:"HTTP_SERVER_READ_TIMEOUT" default:"10s" json:"read_timeout"`
		WriteTimeout    time.Duration `envconfig:"HTTP_SERVER_WRITE_TIMEOUT" default:"30s" json:"write_timeout"`
		ShutdownTimeout time.Duration `envconfig:"HTTP_SERVER_SHUTDOWN_TIMEOUT" default:"30s" json:"shutdown_timeout"`
		RateLimit       RateLimit     `json:"rate_limit"`
		Compression     Compression   `json:"compression"`
	}

	RateLimit struct {
		Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"false" json:"enabled"`
		RequestsPerSecond int  `envconfig:"RATE_LIMIT_REQUESTS_PER_SECOND" default:"50" json:"requests_per_second"`
		Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"100" json:"burst"`
		MaxKeys           int  `envconfig:"RATE_LIMIT_MAX_KEYS" default:"65536" json:"max_keys"`
	}

	Compression struct {
		Enabled bool `envconfig:"COMPRESSION_ENABLED" default:"true" json:"enabled"`
		MinSize int  `envconfig:"COMPRESSION_MIN_SIZE" default:"1024" json:"min_size"`
	}

	Database struct {
		Host            string        `envconfig:"POSTGRES_HOST" default:"postgres" json:"host"`
		Port            uint          `envconfig:"POSTGRES_PORT" default:"5432" json:"port"`
		Database        string        `envconfig:"POSTGRES_DATABASE" default:"records" json:"database"`
		Schema          string        `envconfig:"POSTGRES_SCHEMA" default:"public" json:"schema"`
		Username        string        `envconfig:"POSTGRES_USERNAME" default:"postgres" json:"username"`
		Password        string        `envconfig:"POSTGRES_PASSWORD" default:"" json:"password,omitempty"`
		SSLMode         string        `envconfig:"POSTGRES_SSL_MODE" default:"disable" json:"ssl_mode"`
		MaxConnections  int           `envconfig:"POSTGRES_MAX_CONNECTIONS" default:"25" json:"max_connections"`
		MinConnections  int           `envconfig:"POSTGRES_MIN_CONNECTIONS" default:"5" json:"min_connections"`
		ConnectTimeout  time.Duration `envconfig:"POSTGRES_CONNECT_TIMEOUT" default:"10s" json:"connect_timeout"`
		ConnectRetries  uint          `envconfig:"POSTGRES_CONNECT_RETRIES" default:"5" json:"connect_retries"`
		MaxConnLifetime time.Duration `envconfig:"POSTGRES_MAX_CONN_LIFETIME" default:"1h" json:"max_conn_lifetime"`
		MaxConnIdleTime time.Duration `envconfig:"POSTGRES_MAX_CONN_IDLE_TIME" default:"30m" json:"max_conn_idle_time"`
		Breaker         Breaker       `json:"breaker"`
	}

	Breaker struct {
		Enabled          bool          `envconfig:"POSTGRES_BREAKER_ENABLED" default:"true" json:"enabled"`
		FailureThreshold uint          `envconfig:"POSTGRES_BREAKER_FAILURE_THRESHOLD" default:"5" json:"failure_threshold"`
		MaxRequests      uint          `envconfig:"POSTGRES_BREAKER_MAX_REQUESTS" default:"1" json:"max_requests"`
		Interval         time.Duration `envconfig:"POSTGRES_BREAKER_INTERVAL" default:"1m" json:"interval"`
		Timeout          time.Duration `envconfig:"POSTGRES_BREAKER_TIMEOUT" default:"30s" json:"timeout"`
	}

	// Secrets overlays database credentials from a Vault KV v2 secret stored
	// at apps/data/<MountPath>.
	Secrets struct {
		Enabled       bool          `envconfig:"VAULT_ENABLED" default:"false" json:"enabled"`
		Address       string        `envconfig:"VAULT_ADDRESS" default:"http://vault:8200" json:"address"`
		Token         string        `envconfig:"VAULT_TOKEN" default:"" json:"-"`
		RoleID        string        `envconfig:"VAULT_ROLE_ID" default:"" json:"-"`
		SecretID      string        `envconfig:"VAULT_SECRET_ID" default:"" json:"-"`
		AuthMethod    string        `envconfig:"VAULT_AUTH_METHOD" default:"token" json:"auth_method"`
		MountPath     string        `envconfig:"VAULT_MOUNT_PATH" default:"svc-records" json:"mount_path"`
		Namespace     string        `envconfig:"VAULT_NAMESPACE" default:"" json:"namespace,omitempty"`
		Timeout       time.Duration `envconfig:"VAULT_TIMEOUT" default:"30s" json:"timeout"`
		MaxRetries    uint          `envconfig:"VAULT_MAX_RETRIES" default:"3" json:"max_retries"`
		TLSSkipVerify bool          `envconfig:"VAULT_TLS_SKIP_VERIFY" default:"false" json:"tls_skip_verify"`
	}

	Filtering struct {
		OperatorSuffix        string `envconfig:"FILTER_OPERATOR_SUFFIX" default:"_op" json:"operator_suffix"`
		UnknownOperatorPolicy string `envconfig:"FILTER_UNKNOWN_OPERATOR_POLICY" default:"reject" json:"unknown_operator_policy"`
	}

	Sorting struct {
		DirectionSuffix string `envconfig:"SORT_DIRECTION_SUFFIX" default:"_sort" json:"direction_suffix"`
		Mode            string `envconfig:"SORT_MODE" default:"multi" json:"mode"`
		FieldParam      string `envconfig:"SORT_FIELD_PARAM" default:"sort" json:"field_param"`
		OrderParam      string `envconfig:"SORT_ORDER_PARAM" default:"order" json:"order_param"`
		DefaultField    string `envconfig:"SORT_DEFAULT_FIELD" default:"id" json:"default_field"`
	}

	Registry struct {
		EntitiesFile string `envconfig:"ENTITIES_FILE" default:"config/entities.yaml" json:"entities_file"`
	}

	Records struct {
		MaxRows uint64 `envconfig:"RECORDS_MAX_ROWS" default:"1000" json:"max_rows"`
	}

	Logging struct {
		Level     string    `envconfig:"LOG_LEVEL" default:"info" json:"level"`
		Format    string    `envconfig:"LOG_FORMAT" default:"json" json:"format"`
		AccessLog AccessLog `json:"access_log"`
	}

	AccessLog struct {
		Enabled            bool `envconfig:"ACCESS_LOG_ENABLED" default:"true" json:"enabled"`
		IncludeQueryParams bool `envconfig:"ACCESS_LOG_INCLUDE_QUERY_PARAMS" default:"true" json:"include_query_params"`
		LogHealthChecks    bool `envconfig:"ACCESS_LOG_HEALTH_CHECKS" default:"false" json:"log_health_checks"`
	}

	Telemetry struct {
		OTLPEndpoint   string  `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:"" json:"otlp_endpoint"`
		ServiceName    string  `envconfig:"OTEL_SERVICE_NAME" default:"svc-records" json:"service_name"`
		ServiceVersion string  `envconfig:"OTEL_SERVICE_VERSION" default:"1.0.0" json:"service_version"`
		Metrics        Metrics `json:"metrics"`
		Traces         Traces  `json:"traces"`
	}

	Metrics struct {
		Enabled bool `envconfig:"METRICS_ENABLED" default:"false" json:"enabled"`
	}

	Traces struct {
		Enabled      bool    `envconfig:"TRACES_ENABLED" default:"false" json:"enabled"`
		SamplerRatio float64 `envconfig:"TRACES_SAMPLER_RATIO" default:"1.0" json:"sampler_ratio"`
	}
)

func (c *ServiceConfig) GetEnvironment() int {
	switch c.App.Env.Name {
	case "production", "prod":
		return Production
	case "staging", "stg":
		return Staging
	default:
		return Development
	}
}

func (c *ServiceConfig) IsProduction() bool {
	return c.GetEnvironment() == Production
}

func (f Filtering) Policy() model.OperatorPolicy {
	return model.ParseOperatorPolicy(f.UnknownOperatorPolicy)
}

func (s Sorting) SortMode() model.SortMode {
	return model.ParseSortMode(s.Mode)
}
