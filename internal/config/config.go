package config

import (
	"flag"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env           string     `yaml:"env" env:"ENV" env-default:"production"`
	HTTPServer    HTTPServer `yaml:"http_server"`
	Postgres      Postgres   `yaml:"postgres"`
	MinIO         MinIO      `yaml:"minio"`
	Kafka         Kafka      `yaml:"kafka"`
	Transcode     Upstream   `yaml:"transcode"`
	Transcription Upstream   `yaml:"transcription"`
	Synthesis     Upstream   `yaml:"synthesis"`
	Identity      Upstream   `yaml:"identity"`
}

type HTTPServer struct {
	Address string `yaml:"address" env:"HTTP_ADDRESS" env-default:":8081"`
}

type Postgres struct {
	DSN      string `yaml:"dsn" env:"DATABASE_URL" env-required:"true"`
	MaxConns int    `yaml:"max_conns" env-default:"25"`
}

type MinIO struct {
	Endpoint        string `yaml:"endpoint" env:"MINIO_ENDPOINT" env-required:"true"`
	AccessKeyID     string `yaml:"access_key_id" env:"MINIO_ACCESS_KEY" env-required:"true"`
	SecretAccessKey string `yaml:"secret_access_key" env:"MINIO_SECRET_KEY" env-required:"true"`
	UseSSL          bool   `yaml:"use_ssl" env:"MINIO_USE_SSL" env-default:"false"`
	Bucket          string `yaml:"bucket" env:"MINIO_BUCKET" env-default:"clipforge-artifacts"`
	PublicBaseURL   string `yaml:"public_base_url" env:"MINIO_PUBLIC_BASE_URL" env-required:"true"`
}

type Kafka struct {
	Brokers         []string `yaml:"brokers" env:"KAFKA_BROKERS" env-default:"localhost:9092"`
	Topic           string   `yaml:"topic" env:"KAFKA_TOPIC" env-default:"media.ingested"`
	PublishInterval int      `yaml:"publish_interval_seconds" env-default:"5"`
	BatchSize       int      `yaml:"batch_size" env-default:"100"`
}

// Upstream configures one external HTTP service. Credentials live here and
// are injected into the client at construction; nothing reads them from
// ambient process state later.
type Upstream struct {
	BaseURL string `yaml:"base_url" env-required:"true"`
	APIKey  string `yaml:"api_key"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {
		flagPath := flag.String("config", "", "Path to config file")
		flag.Parse()
		configPath = *flagPath

		if configPath == "" {
			log.Fatal("config path must be provided")
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist at path: %s", configPath)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config: %s", err)
	}

	return &cfg
}
