package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type DealConfig struct {
	Env           string `yaml:"env" env:"DEAL_ENV" env-default:"local"`
	GRPCServer    `yaml:"grpc_server"`
	MetricsServer `yaml:"metrics_server"`
	DealDB        `yaml:"deal_db"`
	LogConfig     `yaml:"log_config"`
	KafkaService  `yaml:"kafka-service"`
	Votes         `yaml:"votes"`
}

type GRPCServer struct {
	Host            string        `yaml:"host" env:"GRPC_HOST" env-default:"0.0.0.0"`
	Port            string        `yaml:"port" env:"GRPC_PORT" env-default:"50051"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"10s"`
}

type MetricsServer struct {
	Host string `yaml:"host" env:"METRICS_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"METRICS_PORT" env-default:"9090"`
}

type DealDB struct {
	Dsn             string        `yaml:"dsn" env:"DEAL_DB_DSN" env-required:"true"`
	MigrationsPath  string        `yaml:"migrations_path" env:"DEAL_MIGRATIONS_PATH" env-default:"migrations"`
	MaxOpenConns    int           `yaml:"max_open_conns" env-default:"20"`
	MaxIdleConns    int           `yaml:"max_idle_conns" env-default:"5"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env-default:"30m"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	LogFormat string `yaml:"log_format" env:"LOG_FORMAT" env-default:"json"`
	LogOutput string `yaml:"log_output" env:"LOG_OUTPUT" env-default:"stdout"`
}

type KafkaService struct {
	Host          string `yaml:"host" env:"KAFKA_HOST" env-default:"localhost"`
	Port          string `yaml:"port" env:"KAFKA_PORT" env-default:"9092"`
	OrderTopic    string `yaml:"order_topic" env-default:"order-events"`
	VoteTopic     string `yaml:"vote_topic" env-default:"vote-events"`
	SubjectTopic  string `yaml:"subject_topic" env-default:"subject-events"`
	ConsumerGroup string `yaml:"consumer_group" env-default:"deal-service"`
	Enabled       bool   `yaml:"enabled" env:"KAFKA_ENABLED" env-default:"true"`
}

type Votes struct {
	// RepeatPolicy is what a repeated identical vote does: toggle or keep.
	RepeatPolicy string `yaml:"repeat_policy" env:"VOTE_REPEAT_POLICY" env-default:"toggle"`
}

func MustLoad() *DealConfig {

	// Processing env config variable and file
	configPath := os.Getenv("DEAL_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("DEAL_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return cfg
}

// Load reads the YAML file at path and applies env overrides.
func Load(path string) (*DealConfig, error) {
	var cfg DealConfig
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
