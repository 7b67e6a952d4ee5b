package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type HTTPServer struct {
	Addr string `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080"`
}

// RedisConnect is optional: when Host is empty the checkout rate limiter and
// the redis health check are disabled and the terminal runs fully in-memory.
type RedisConnect struct {
	Host     string `yaml:"REDIS_HOST" env:"REDIS_HOST" env-default:""`
	Username string `yaml:"REDIS_USER" env:"REDIS_USER" env-default:""`
	Password string `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD" env-default:""`
	DB       int    `yaml:"REDIS_DB" env:"REDIS_DB" env-default:"0"`
}

func (r *RedisConnect) Enabled() bool {
	return r.Host != ""
}

func (r *RedisConnect) GetDSN() string {
	return fmt.Sprintf("redis://%s:%s@%s/%d", r.Username, r.Password, r.Host, r.DB)
}

type RateConfig struct {
	MaxAttempts int64         `yaml:"MAX_ATTEMPTS" env:"MAX_ATTEMPTS" env-default:"30"`
	WindowSize  time.Duration `yaml:"WINDOW_SIZE" env:"WINDOW_SIZE" env-default:"60s"`
}

// SeedProduct is one catalog entry loaded at session start.
type SeedProduct struct {
	Name     string  `yaml:"name"`
	Category string  `yaml:"category"`
	Price    float64 `yaml:"price"`
	Stock    int64   `yaml:"stock"`
}

type Catalog struct {
	Seed []SeedProduct `yaml:"seed"`
}

type Telemetry struct {
	OTLPEndpoint string `yaml:"OTLP_ENDPOINT" env:"OTLP_ENDPOINT" env-default:""`
}

type Config struct {
	Env          string `yaml:"env" env:"ENV" env-required:"true"`
	HTTPServer   `yaml:"http_server"`
	RedisConnect RedisConnect `yaml:"redis"`
	RateConfig   RateConfig   `yaml:"rateConfig"`
	Catalog      Catalog      `yaml:"catalog"`
	Telemetry    Telemetry    `yaml:"telemetry"`
}

// DefaultSeed matches the catalog the terminal originally shipped with. Used
// when the config file does not provide its own seed list.
func DefaultSeed() []SeedProduct {
	return []SeedProduct{
		{Name: "Espresso", Category: "Coffee", Price: 2.50, Stock: 50},
		{Name: "Cappuccino", Category: "Coffee", Price: 3.50, Stock: 40},
		{Name: "Latte", Category: "Coffee", Price: 3.00, Stock: 45},
		{Name: "Blueberry Muffin", Category: "Bakery", Price: 2.00, Stock: 30},
		{Name: "Bagel", Category: "Bakery", Price: 1.75, Stock: 25},
	}
}

func MustLoad() *Config {

	var configPath string

	configPath = os.Getenv("CONFIG_PATH")

	if configPath == "" {

		flags := flag.String("config", "", "gets the config flag value")

		flag.Parse()

		configPath = *flags

		if configPath == "" {
			log.Fatal("Config path is not set")
		}

	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	err := cleanenv.ReadConfig(configPath, &cfg)

	if err != nil {
		log.Fatalf("can not read config file: %s", err.Error())
	}

	if len(cfg.Catalog.Seed) == 0 {
		cfg.Catalog.Seed = DefaultSeed()
	}

	return &cfg

}
