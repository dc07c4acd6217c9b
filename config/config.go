package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	BlogSourceCollection = "collection"
	BlogSourceStatic     = "static"
)

type Config struct {
	ServicePort   string
	MetricsPort   string
	Environment   string
	LogLevel      string
	MongoDBConfig MongoDBConfig
	KafkaConfig   KafkaConfig
	TracingConfig TracingConfig
	CatalogConfig CatalogConfig
}

type MongoDBConfig struct {
	URI        string
	DBHost     string
	DBPort     string
	DBUsername string
	DBPassword string
	DBName     string
}

type KafkaConfig struct {
	BrokerAddress   string
	BrokerTopic     string
	BrokerPartition int
	MaxRetries      int
	RetryBackoff    time.Duration
}

type TracingConfig struct {
	CollectorHost string
}

type CatalogConfig struct {
	ToysPageLimit int
	MaxPageLimit  int
	CategoryLimit int
	BlogSource    string
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		ServicePort: getEnv("SERVICE_PORT", getEnv("PORT", "4040")),
		MetricsPort: os.Getenv("METRICS_PORT"),
		Environment: getEnv("ENVIRONMENT", "production"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		MongoDBConfig: MongoDBConfig{
			URI:        os.Getenv("MONGODB_URI"),
			DBHost:     getEnv("DB_HOST", "localhost"),
			DBPort:     getEnv("DB_PORT", "27017"),
			DBUsername: os.Getenv("DB_USERNAME"),
			DBPassword: os.Getenv("DB_PASSWORD"),
			DBName:     getEnv("DB_NAME", "toyTownDB"),
		},
		KafkaConfig: KafkaConfig{
			BrokerAddress:   os.Getenv("BROKER_ADDRESS"),
			BrokerTopic:     getEnv("BROKER_TOPIC", "toy-events"),
			BrokerPartition: getEnvInt("BROKER_PARTITION", 0),
			MaxRetries:      getEnvInt("BROKER_MAX_RETRIES", 3),
			RetryBackoff:    getEnvDuration("BROKER_RETRY_BACKOFF", time.Second),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
		CatalogConfig: CatalogConfig{
			ToysPageLimit: getEnvInt("TOYS_PAGE_LIMIT", 20),
			MaxPageLimit:  getEnvInt("MAX_PAGE_LIMIT", 100),
			CategoryLimit: getEnvInt("CATEGORY_LIMIT", 3),
			BlogSource:    getEnv("BLOG_SOURCE", BlogSourceCollection),
		},
	}

	return &conf
}

// ConnectionURI returns MONGODB_URI when set, otherwise a mongodb:// URI built
// from host, port and the optional credentials.
func (c MongoDBConfig) ConnectionURI() string {
	if c.URI != "" {
		return c.URI
	}

	if c.DBUsername == "" {
		return fmt.Sprintf("mongodb://%s:%s", c.DBHost, c.DBPort)
	}

	return fmt.Sprintf("mongodb://%s@%s:%s", url.UserPassword(c.DBUsername, c.DBPassword).String(), c.DBHost, c.DBPort)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}
