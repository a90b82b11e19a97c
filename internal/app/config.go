package app

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"tapCalc/internal/api/http"
	"tapCalc/internal/infrastructure/click"
	"tapCalc/internal/infrastructure/kafka"
	"tapCalc/internal/infrastructure/mongo"
	"tapCalc/internal/infrastructure/pg"
	"tapCalc/internal/infrastructure/redis"
)

const AppName = "TAPCALC"

// Значения TAPCALC_STORAGE: где хранится история вычислений.
const (
	StoragePG    = "pg"
	StorageMongo = "mongo"
)

// Config — конфиг приложения. Заполняется через envconfig с префиксом TAPCALC.
type Config struct {
	LogLevel   string            `envconfig:"LOG_LEVEL" default:"info"`
	Storage    string            `envconfig:"STORAGE" default:"pg"`
	Server     http.ServerConfig `envconfig:"SERVER"`
	DB         pg.Config         `envconfig:"DB"`
	Mongo      mongo.Config      `envconfig:"MONGO"`
	Redis      redis.Config      `envconfig:"REDIS"`
	Kafka      kafka.Config      `envconfig:"KAFKA"`
	ClickHouse click.Config      `envconfig:"CLICKHOUSE"`
}

// LoadCfg загружает конфиг: подтягивает .env (godotenv), затем заполняет структуру из окружения (envconfig).
func LoadCfg() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("config: .env не найден, используем окружение: %v", err)
	}

	var cfg Config
	if err := envconfig.Process(AppName, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
