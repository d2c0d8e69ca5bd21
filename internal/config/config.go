package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const DefaultModelName = "mistralai/Mistral-7B-Instruct-v0.1"

// ErrMissingAPIKey is returned by LoadConfig when HUGGINGFACE_API_KEY is not set.
var ErrMissingAPIKey = errors.New("HUGGINGFACE_API_KEY is required")

type Config struct {
	Env       string
	Server    ServerConfig
	Logger    LoggerConfig
	LLM       LLMConfig
	Redis     RedisConfig
	Cache     CacheConfig
	Telemetry TelemetryConfig
	Swagger   SwaggerConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	BodyLimit    int
}

type LoggerConfig struct {
	Level string
	Env   string
}

// LLMConfig holds the inference endpoint settings. Timeout of zero means the
// upstream call is not bounded by the service.
type LLMConfig struct {
	APIKey    string
	ModelName string
	BaseURL   string
	Timeout   time.Duration
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type CacheConfig struct {
	TTL time.Duration
}

type TelemetryConfig struct {
	ServiceName      string
	MetricsEnabled   bool
	TraceEndpointURL string
}

type SwaggerConfig struct {
	Enabled bool
}

// LoadConfig reads settings from the environment, an optional .env file and an
// optional config.yaml. envFile, when non-empty, must exist.
func LoadConfig(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	env := v.GetString("env")
	config := &Config{
		Env: env,
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
			BodyLimit:    v.GetInt("server.body_limit"),
		},
		Logger: LoggerConfig{
			Level: v.GetString("log.level"),
			Env:   env,
		},
		LLM: LLMConfig{
			APIKey:    v.GetString("huggingface.api_key"),
			ModelName: v.GetString("model.name"),
			BaseURL:   v.GetString("huggingface.url"),
			Timeout:   v.GetDuration("llm.timeout"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Cache: CacheConfig{
			TTL: v.GetDuration("cache.ttl"),
		},
		Telemetry: TelemetryConfig{
			ServiceName:      v.GetString("service.name"),
			MetricsEnabled:   v.GetBool("metrics.enabled"),
			TraceEndpointURL: v.GetString("trace.endpoint_url"),
		},
		Swagger: SwaggerConfig{
			Enabled: v.GetBool("swagger.enabled"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "development")
	v.SetDefault("log.level", "info")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 0)
	v.SetDefault("server.body_limit", 10*1024*1024)
	v.SetDefault("model.name", DefaultModelName)
	v.SetDefault("llm.timeout", 0)
	v.SetDefault("redis.db", 0)
	v.SetDefault("cache.ttl", time.Hour)
	v.SetDefault("service.name", "quizly")
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("swagger.enabled", true)
}

// Validate reports settings without which the service cannot run.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.LLM.APIKey) == "" {
		return ErrMissingAPIKey
	}
	if c.LLM.ModelName == "" {
		c.LLM.ModelName = DefaultModelName
	}
	return nil
}

// CacheEnabled reports whether generated quizzes are cached in Redis.
func (c *Config) CacheEnabled() bool {
	return c.Redis.Address != "" && c.Cache.TTL > 0
}
