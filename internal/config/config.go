package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	Scribe       Scribe       `mapstructure:",squash"`
	Analytics    Analytics    `mapstructure:",squash"`
	CacheCleanup CacheCleanup `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Auth struct {
	SecretKey string `mapstructure:"auth_secret_key"`
}

// Scribe configura o serviço de redação de insights (gerador de texto)
type Scribe struct {
	URL            string `mapstructure:"scribe_url"`
	AccessToken    string `mapstructure:"scribe_access_token"`
	TimeoutSeconds int    `mapstructure:"scribe_timeout_seconds"`
	MaxRetries     int    `mapstructure:"scribe_max_retries"`
}

// Analytics configura o motor de métricas
type Analytics struct {
	CacheTTLHours        int `mapstructure:"analytics_cache_ttl_hours"`
	TopItemsLimit        int `mapstructure:"analytics_top_items_limit"`
	MaxConcurrentFetches int `mapstructure:"analytics_max_concurrent_fetches"`
}

// CacheCleanup configura o agendador de limpeza de cache e retenção de snapshots
type CacheCleanup struct {
	CronSchedule          string `mapstructure:"cache_cleanup_cron"`
	Enabled               bool   `mapstructure:"cache_cleanup_enabled"`
	CacheRetentionDays    int    `mapstructure:"cache_cleanup_retention_days"`
	SnapshotRetentionDays int    `mapstructure:"snapshot_retention_days"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/contentpulse")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET_KEY", "your_secret_key")

	viper.SetDefault("SCRIBE_URL", "http://localhost:8090/v1")
	viper.SetDefault("SCRIBE_ACCESS_TOKEN", "your_access_token")
	viper.SetDefault("SCRIBE_TIMEOUT_SECONDS", 30)
	viper.SetDefault("SCRIBE_MAX_RETRIES", 1) // uma repetição após falha de transporte

	viper.SetDefault("ANALYTICS_CACHE_TTL_HOURS", 24)       // janela de frescor do cache
	viper.SetDefault("ANALYTICS_TOP_ITEMS_LIMIT", 10)       // top N do ranking
	viper.SetDefault("ANALYTICS_MAX_CONCURRENT_FETCHES", 5) // leituras paralelas por requisição

	viper.SetDefault("CACHE_CLEANUP_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("CACHE_CLEANUP_ENABLED", false)
	viper.SetDefault("CACHE_CLEANUP_RETENTION_DAYS", 7)
	viper.SetDefault("SNAPSHOT_RETENTION_DAYS", 730)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile tenta carregar o .env das localizações conhecidas
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
