package config

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServicePort         string
	MetricsPort         string
	Environment         string
	LogLevel            string
	HealthCheckInterval time.Duration
	MongoDBConfig       MongoDBConfig
	RedisConfig         RedisConfig
	KafkaConfig         KafkaConfig
	TracingConfig       TracingConfig
}

type MongoDBConfig struct {
	URL    string
	DBName string
}

type RedisConfig struct {
	Addr       string
	Password   string
	ProductTTL time.Duration
}

type KafkaConfig struct {
	BrokerAddress string
	BrokerTopic   string
}

type TracingConfig struct {
	CollectorHost string
	ServiceName   string
}

var ErrMissingMongoDBURL = errors.New("MONGODB_URL is missing from environment")

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		ServicePort:         getEnv("SERVICE_PORT", getEnv("PORT", "8000")),
		MetricsPort:         getEnv("METRICS_PORT", "9090"),
		Environment:         getEnv("APP_ENV", "production"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		HealthCheckInterval: getEnvDuration("HEALTHCHECK_INTERVAL", 30*time.Second),
		MongoDBConfig: MongoDBConfig{
			URL:    os.Getenv("MONGODB_URL"),
			DBName: getEnv("DB_NAME", "ecommerce"),
		},
		RedisConfig: RedisConfig{
			Addr:       os.Getenv("REDIS_ADDR"),
			Password:   os.Getenv("REDIS_PASSWORD"),
			ProductTTL: getEnvDuration("PRODUCT_CACHE_TTL", 10*time.Minute),
		},
		KafkaConfig: KafkaConfig{
			BrokerAddress: os.Getenv("BROKER_ADDRESS"),
			BrokerTopic:   getEnv("BROKER_TOPIC", "ecommerce-events"),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
			ServiceName:   getEnv("SERVICE_NAME", "ecommerce-service"),
		},
	}

	return &conf
}

func (c *Config) Validate() error {
	if c.MongoDBConfig.URL == "" {
		return ErrMissingMongoDBURL
	}

	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}

	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}

	return d
}
