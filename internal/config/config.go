package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	MercadoLivre    MercadoLivre    `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
	MarketplaceSync MarketplaceSync `mapstructure:",squash"`
	Webhook         Webhook         `mapstructure:",squash"`
	Redis           Redis           `mapstructure:",squash"`
	RabbitMQ        RabbitMQ        `mapstructure:",squash"`
	SecretKey       string          `mapstructure:"secret_key"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN                    string `mapstructure:"-"`
	Driver                 string `mapstructure:"database_driver"`
	Password               string `mapstructure:"database_password"`
	URL                    string `mapstructure:"database_url"`
	User                   string `mapstructure:"database_user"`
	MaxOpenConns           int    `mapstructure:"database_max_open_conns"`
	MaxIdleConns           int    `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetimeMinutes int    `mapstructure:"database_conn_max_lifetime_minutes"`
}

func (d Database) ConnMaxLifetime() time.Duration {
	return time.Duration(d.ConnMaxLifetimeMinutes) * time.Minute
}

type MercadoLivre struct {
	BaseURL            string `mapstructure:"ml_base_url"`
	ClientID           string `mapstructure:"ml_client_id"`
	ClientSecret       string `mapstructure:"ml_client_secret"`
	RequestsPerSecond  int    `mapstructure:"ml_requests_per_second"`
	HTTPTimeoutSeconds int    `mapstructure:"ml_http_timeout_seconds"`
}

type App struct {
	LogLevel    string `mapstructure:"log_level"`
	Environment string `mapstructure:"environment"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type MarketplaceSync struct {
	CronSchedule             string `mapstructure:"sync_cron_schedule"`
	Enabled                  bool   `mapstructure:"sync_enabled"`
	MaxConcurrentJobs        int    `mapstructure:"sync_max_concurrent_jobs"`
	RunTimeoutSeconds        int    `mapstructure:"sync_run_timeout_seconds"`
	TokenRefreshSkewMinutes  int    `mapstructure:"sync_token_refresh_skew_minutes"`
	ItemPageSize             int    `mapstructure:"sync_item_page_size"`
	MaxItems                 int    `mapstructure:"sync_max_items"`
	OrderPageSize            int    `mapstructure:"sync_order_page_size"`
	MaxOrders                int    `mapstructure:"sync_max_orders"`
	MaxOrderPages            int    `mapstructure:"sync_max_order_pages"`
	LookbackDays             int    `mapstructure:"sync_lookback_days"`
	ItemRequestDelayMillis   int    `mapstructure:"sync_item_request_delay_ms"`
	AdItemRequestDelayMillis int    `mapstructure:"sync_ad_item_delay_ms"`
	MaxAdItems               int    `mapstructure:"sync_max_ad_items"`
}

// Lookback retorna a janela de sincronização como duração
func (m MarketplaceSync) Lookback() time.Duration {
	return time.Duration(m.LookbackDays) * 24 * time.Hour
}

func (m MarketplaceSync) TokenRefreshSkew() time.Duration {
	return time.Duration(m.TokenRefreshSkewMinutes) * time.Minute
}

func (m MarketplaceSync) RunTimeout() time.Duration {
	return time.Duration(m.RunTimeoutSeconds) * time.Second
}

func (m MarketplaceSync) ItemRequestDelay() time.Duration {
	return time.Duration(m.ItemRequestDelayMillis) * time.Millisecond
}

func (m MarketplaceSync) AdItemRequestDelay() time.Duration {
	return time.Duration(m.AdItemRequestDelayMillis) * time.Millisecond
}

type Webhook struct {
	Workers               int `mapstructure:"webhook_workers"`
	QueueSize             int `mapstructure:"webhook_queue_size"`
	ProcessTimeoutSeconds int `mapstructure:"webhook_process_timeout_seconds"`
}

type Redis struct {
	URL            string `mapstructure:"redis_url"`
	LockTTLSeconds int    `mapstructure:"redis_lock_ttl_seconds"`
}

func (r Redis) LockTTL() time.Duration {
	return time.Duration(r.LockTTLSeconds) * time.Second
}

type RabbitMQ struct {
	URL        string `mapstructure:"rabbitmq_url"`
	Exchange   string `mapstructure:"rabbitmq_exchange"`
	RoutingKey string `mapstructure:"rabbitmq_routing_key"`
	QueueName  string `mapstructure:"rabbitmq_queue"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ENVIRONMENT", "local")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/marketplace?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 20)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME_MINUTES", 30)

	viper.SetDefault("ML_BASE_URL", "https://api.mercadolibre.com")
	viper.SetDefault("ML_CLIENT_ID", "")
	viper.SetDefault("ML_CLIENT_SECRET", "")
	viper.SetDefault("ML_REQUESTS_PER_SECOND", 10)
	viper.SetDefault("ML_HTTP_TIMEOUT_SECONDS", 30)

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	// Defaults para sincronização do marketplace
	viper.SetDefault("SYNC_CRON_SCHEDULE", "0 */2 * * *")      // A cada 2 horas
	viper.SetDefault("SYNC_ENABLED", false)                    // Habilitar sincronização agendada
	viper.SetDefault("SYNC_MAX_CONCURRENT_JOBS", 3)            // 3 contas em paralelo
	viper.SetDefault("SYNC_RUN_TIMEOUT_SECONDS", 600)          // 10 minutos por conta
	viper.SetDefault("SYNC_TOKEN_REFRESH_SKEW_MINUTES", 60)    // Renova 1h antes de expirar
	viper.SetDefault("SYNC_ITEM_PAGE_SIZE", 50)                // Itens por página
	viper.SetDefault("SYNC_MAX_ITEMS", 500)                    // Limite total de itens
	viper.SetDefault("SYNC_ORDER_PAGE_SIZE", 50)               // Pedidos por página
	viper.SetDefault("SYNC_MAX_ORDERS", 1000)                  // Limite total de pedidos
	viper.SetDefault("SYNC_MAX_ORDER_PAGES", 10)               // Limite de páginas de pedidos
	viper.SetDefault("SYNC_LOOKBACK_DAYS", 30)                 // Janela de 30 dias
	viper.SetDefault("SYNC_ITEM_REQUEST_DELAY_MS", 200)        // Intervalo entre detalhes de itens
	viper.SetDefault("SYNC_AD_ITEM_DELAY_MS", 200)             // Intervalo entre status de anúncios
	viper.SetDefault("SYNC_MAX_AD_ITEMS", 50)                  // Itens consultados na API de ads

	viper.SetDefault("WEBHOOK_WORKERS", 4)
	viper.SetDefault("WEBHOOK_QUEUE_SIZE", 256)
	viper.SetDefault("WEBHOOK_PROCESS_TIMEOUT_SECONDS", 60)

	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("REDIS_LOCK_TTL_SECONDS", 900)

	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("RABBITMQ_EXCHANGE", "marketplace.sync")
	viper.SetDefault("RABBITMQ_ROUTING_KEY", "sync.completed")
	viper.SetDefault("RABBITMQ_QUEUE", "marketplace.sync.completed")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	config.Database.DSN = BuildDSN(config.Database)

	if config.MercadoLivre.ClientID == "" || config.MercadoLivre.ClientSecret == "" {
		logrus.Warn("ML_CLIENT_ID/ML_CLIENT_SECRET não configurados: renovação de tokens irá falhar")
	}

	return config, nil
}

func BuildDSN(db Database) string {
	return fmt.Sprintf(
		"%s://%s:%s@%s",
		db.Driver,
		db.User,
		db.Password,
		db.URL,
	)
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
