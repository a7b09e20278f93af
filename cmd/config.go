package main

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type config struct {
	App       appConfig
	Postgres  postgresConfig
	Redis     redisConfig
	Kafka     kafkaConfig
	Exchanger exchangerConfig
	JWT       jwtConfig
	Ledger    ledgerConfig
}

type appConfig struct {
	Host     string `env:"APP_HOST" env-default:"localhost"`
	Port     string `env:"APP_PORT" env-default:"8080"`
	LogLevel string `env:"APP_LOG_LEVEL" env-default:"info"`
}

type postgresConfig struct {
	Host           string `env:"POSTGRES_HOST" env-default:"localhost"`
	Port           int    `env:"POSTGRES_PORT" env-default:"5432"`
	User           string `env:"POSTGRES_USER" env-default:"user"`
	Password       string `env:"POSTGRES_PASSWORD" env-default:"password"`
	DB             string `env:"POSTGRES_DB" env-default:"database"`
	MaxOpenConns   int    `env:"POSTGRES_MAX_OPEN_CONNS" env-default:"16"`
	MaxIdleConns   int    `env:"POSTGRES_MAX_IDLE_CONNS" env-default:"8"`
	MigrationsPath string `env:"MIGRATIONS_PATH" env-default:"migrations"`
}

func (c postgresConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable", c.User, c.Password, c.Host, c.Port, c.DB)
}

type redisConfig struct {
	Host               string `env:"REDIS_HOST" env-default:"localhost"`
	Port               int    `env:"REDIS_PORT" env-default:"6379"`
	DB                 int    `env:"REDIS_DB" env-default:"0"`
	Password           string `env:"REDIS_PASSWORD" env-default:""`
	PoolSize           int    `env:"REDIS_POOL_SIZE" env-default:"10"`
	MinIdleConns       int    `env:"REDIS_MIN_IDLE_CONNS" env-default:"2"`
	QuotationExpSecond int    `env:"REDIS_QUOTATION_EXP_SECOND" env-default:"30"`
	WalletExpSecond    int    `env:"REDIS_WALLET_ACCOUNT_EXP_SECOND" env-default:"86400"`
}

type kafkaConfig struct {
	Brokers        []string `env:"KAFKA_BROKERS" env-separator:"," env-default:"localhost:9092"`
	OperationTopic string   `env:"KAFKA_OPERATION_TOPIC" env-default:"ledger.operations"`
	UserLimitTopic string   `env:"KAFKA_USER_LIMIT_TOPIC" env-default:"ledger.user-limits"`
}

type exchangerConfig struct {
	Enabled  bool   `env:"GW_EXCHANGER_ENABLED" env-default:"true"`
	Host     string `env:"GW_EXCHANGER_HOST" env-default:"localhost"`
	Port     string `env:"GW_EXCHANGER_PORT" env-default:"50051"`
	Priority int    `env:"GW_EXCHANGER_PRIORITY" env-default:"100"`
}

type jwtConfig struct {
	SecretKey string `env:"JWT_SECRET_KEY" env-default:"my_super_secret_key"`
}

type ledgerConfig struct {
	SettlementCurrency string `env:"LEDGER_SETTLEMENT_CURRENCY" env-default:"BRL"`
	PendingTTLSecond   int    `env:"LEDGER_PENDING_TTL_SECOND" env-default:"300"`
	CacheMaxAgeSecond  int    `env:"LEDGER_CACHE_MAX_AGE_SECOND" env-default:"60"`
	Timezone           string `env:"LEDGER_TIMEZONE" env-default:"UTC"`
}

func (c ledgerConfig) PendingTTL() time.Duration {
	return time.Duration(c.PendingTTLSecond) * time.Second
}

func (c ledgerConfig) CacheMaxAge() time.Duration {
	return time.Duration(c.CacheMaxAgeSecond) * time.Second
}

// parseConfig loads the env file at path, if any, and binds the environment to a config.
// Variables already set in the environment win over the file.
func parseConfig(path string) (*config, error) {
	_ = godotenv.Load(path)

	var cfg config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
