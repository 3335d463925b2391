package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"

	"github.com/meeplelab/ludoteca-service/internal/service/catalog"
	"github.com/meeplelab/ludoteca-service/pkg/auth"
	"github.com/meeplelab/ludoteca-service/pkg/kafka"
	"github.com/meeplelab/ludoteca-service/pkg/logger"
	"github.com/meeplelab/ludoteca-service/pkg/postgres"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"HTTP_HOST"`
	Port         string        `yaml:"port" envconfig:"HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ"`
	WriteTimeout time.Duration
}

type Redis struct {
	Addr     string        `yaml:"addr" envconfig:"REDIS_ADDR"`
	Password string        `yaml:"password" envconfig:"REDIS_PASSWORD"`
	TenantTTL time.Duration `yaml:"tenantTTL" envconfig:"REDIS_TENANT_TTL" default:"5m"`
}

type Reservation struct {
	TTL   time.Duration `yaml:"ttl" envconfig:"RESERVATION_TTL" default:"30m"`
	Grace time.Duration `yaml:"grace" envconfig:"RESERVATION_GRACE" default:"1m"`
}

type Config struct {
	Server      HTTPServer `yaml:"server"`
	Database    postgres.Config
	Redis       Redis
	Kafka       kafka.Config
	Auth        auth.Config
	Catalog     catalog.Config
	Reservation Reservation
	Log         logger.Log `yaml:"log"`
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg Config) {
	cfg.Auth.JWTKey = "***"
	cfg.Database.Password = "***"
	cfg.Redis.Password = "***"
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}

type Option func(*Config)

func WithLogLevel(level zapcore.Level) Option {
	return func(c *Config) {
		c.Log.LogLevel = level
	}
}

func WithWriteTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.Server.WriteTimeout = timeout
	}
}
