package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/bookden/rental-service/internal/model"
	"github.com/bookden/rental-service/pkg/kafka"
	"github.com/bookden/rental-service/pkg/logger"
	"github.com/bookden/rental-service/pkg/postgres"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"RENTAL_HTTP_HOST"`
	Port         string        `yaml:"port" envconfig:"RENTAL_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"30s"`
	WriteTimeout time.Duration
}

type Auth struct {
	JWTKey string `envconfig:"JWT_KEY" json:"-"`
}

type Token struct {
	Secret string `envconfig:"ID_TOKEN_SECRET" json:"-"`
}

type Rental struct {
	DurationDays    int `envconfig:"RENTAL_DURATION_DAYS" default:"7"`
	ExtensionDays   int `envconfig:"RENTAL_EXTENSION_DAYS" default:"7"`
	MaxCopies       int `envconfig:"RENTAL_MAX_COPIES" default:"3"`
	PageSize        int `envconfig:"REPORT_PAGE_SIZE" default:"10"`
	ExpiryAlertDays int `envconfig:"EXPIRY_ALERT_DAYS" default:"5"`
}

type Renewal struct {
	Interval time.Duration `envconfig:"RENEWAL_INTERVAL" default:"24h"`
}

type Config struct {
	Server   HTTPServer `yaml:"server"`
	Database postgres.Config
	Kafka    kafka.Config
	Auth     Auth
	Token    Token
	Rental   Rental
	Renewal  Renewal
	Log      logger.Log `yaml:"log"`
}

// Policy freezes the rental constants into the immutable structure
// the services are constructed with.
func (c *Config) Policy() model.Policy {
	return model.Policy{
		RentalDurationDays:    c.Rental.DurationDays,
		ExtensionDurationDays: c.Rental.ExtensionDays,
		MaxAllowedCopies:      c.Rental.MaxCopies,
		PageSize:              c.Rental.PageSize,
		ExpiryAlertDays:       c.Rental.ExpiryAlertDays,
	}
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		if err := envconfig.Process("", &config); err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return &cfg
}

func printConfig(cfg Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
