package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/Astemirdum/hotel-reservation/pkg/kafka"
	"github.com/Astemirdum/hotel-reservation/pkg/logger"
	"github.com/Astemirdum/hotel-reservation/pkg/postgres"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type HTTPServer struct {
	Host         string        `envconfig:"RESERVATION_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `envconfig:"RESERVATION_HTTP_PORT" default:"8070"`
	ReadTimeout  time.Duration `envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration `envconfig:"HTTP_WRITE" default:"10s"`
}

type Config struct {
	Server   HTTPServer
	Database postgres.DB
	Kafka    kafka.Config
	Log      logger.Log
	Storage  string `envconfig:"STORAGE_DRIVER" default:"postgres"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment. Options are applied on top.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		if err := envconfig.Process("", &config); err != nil {
			log.Fatal("NewConfig ", err)
		}
		for _, op := range ops {
			op(&config)
		}
		if config.Storage != StoragePostgres && config.Storage != StorageMemory {
			log.Fatalf("NewConfig unknown storage driver %q", config.Storage)
		}
		cfg = &config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg *Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
