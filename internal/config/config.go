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
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	Amazon           Amazon           `mapstructure:",squash"`
	Auth             Auth             `mapstructure:",squash"`
	OptimizationSync OptimizationSync `mapstructure:",squash"`
	ReportPoll       ReportPoll       `mapstructure:",squash"`
	Bid              Bid              `mapstructure:",squash"`
	Budget           Budget           `mapstructure:",squash"`
	SecretKey        string           `mapstructure:"secret_key"`
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

// Amazon concentra as credenciais da aplicação na Amazon Ads API.
// Tokens de acesso são por conta e vivem na tabela accounts, não aqui.
type Amazon struct {
	ClientID                  string `mapstructure:"amazon_client_id"`
	ClientSecret              string `mapstructure:"amazon_client_secret"`
	TokenURL                  string `mapstructure:"amazon_token_url"`
	DefaultRegion             string `mapstructure:"amazon_default_region"`
	TokenRefreshMarginMinutes int    `mapstructure:"amazon_token_refresh_margin_minutes"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type OptimizationSync struct {
	CronSchedule     string `mapstructure:"optimization_sync_cron"`
	Timezone         string `mapstructure:"optimization_sync_timezone"`
	Enabled          bool   `mapstructure:"optimization_sync_enabled"`
	MinIntervalHours int    `mapstructure:"optimization_sync_min_interval_hours"`
}

type ReportPoll struct {
	MaxAttempts     int `mapstructure:"report_poll_max_attempts"`
	IntervalSeconds int `mapstructure:"report_poll_interval_seconds"`
}

type Bid struct {
	Min float64 `mapstructure:"bid_min"`
	Max float64 `mapstructure:"bid_max"`
}

type Budget struct {
	Min float64 `mapstructure:"budget_min"`
	Max float64 `mapstructure:"budget_max"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/robotads?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AMAZON_CLIENT_ID", "your_client_id")
	viper.SetDefault("AMAZON_CLIENT_SECRET", "your_client_secret")
	viper.SetDefault("AMAZON_TOKEN_URL", "https://api.amazon.com/auth/o2/token")
	viper.SetDefault("AMAZON_DEFAULT_REGION", "na")
	viper.SetDefault("AMAZON_TOKEN_REFRESH_MARGIN_MINUTES", 5)

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	// Defaults do ciclo de otimização
	viper.SetDefault("OPTIMIZATION_SYNC_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("OPTIMIZATION_SYNC_TIMEZONE", "UTC")
	viper.SetDefault("OPTIMIZATION_SYNC_ENABLED", false)
	viper.SetDefault("OPTIMIZATION_SYNC_MIN_INTERVAL_HOURS", 24) // Não reotimizar a mesma conta dentro de 24h

	// Polling da geração de relatórios de performance
	viper.SetDefault("REPORT_POLL_MAX_ATTEMPTS", 10)
	viper.SetDefault("REPORT_POLL_INTERVAL_SECONDS", 2)

	// Limites aplicados a qualquer lance calculado pelo executor
	viper.SetDefault("BID_MIN", 0.02)
	viper.SetDefault("BID_MAX", 1000.00)

	// Limites do orçamento diário de campanha (mínimo da Amazon é US$ 1,00)
	viper.SetDefault("BUDGET_MIN", 1.00)
	viper.SetDefault("BUDGET_MAX", 1000000.00)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Info("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
