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

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	App      App      `mapstructure:",squash"`
	Server   Server   `mapstructure:",squash"`
	Database Database `mapstructure:",squash"`
	Data     Data     `mapstructure:",squash"`
	Cors     Cors     `mapstructure:",squash"`
	Metrics  Metrics  `mapstructure:",squash"`
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
	Path     string `mapstructure:"database_path"` // Usado apenas com o driver sqlite
}

type Data struct {
	Dir           string `mapstructure:"data_dir"`
	LoadOnStartup bool   `mapstructure:"data_load_on_startup"`
	ReloadCron    string `mapstructure:"data_reload_cron"`
	ReloadEnabled bool   `mapstructure:"data_reload_enabled"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// Metrics concentra os limiares usados pelo motor de métricas
type Metrics struct {
	StaleDealThresholdDays   int     `mapstructure:"stale_deal_threshold_days"`
	UrgentStaleDealDays      int     `mapstructure:"urgent_stale_deal_days"`
	LowActivityThresholdDays int     `mapstructure:"low_activity_threshold_days"`
	LowActivityMinCount      int     `mapstructure:"low_activity_min_count"`
	UnderperformingPercent   float64 `mapstructure:"underperforming_percent"`
	CriticalPercent          float64 `mapstructure:"critical_percent"`
	RiskItemsLimit           int     `mapstructure:"risk_items_limit"`
	RecommendationsLimit     int     `mapstructure:"recommendations_limit"`
	CoachingLimit            int     `mapstructure:"coaching_limit"`
	EngagementLimit          int     `mapstructure:"engagement_limit"`
	EngagementMaxActivity    int     `mapstructure:"engagement_max_activity"`
	RevenueTrendMonths       int     `mapstructure:"revenue_trend_months"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 4000)

	viper.SetDefault("DATABASE_DRIVER", DriverPostgres)
	viper.SetDefault("DATABASE_URL", "localhost:5432/revenue?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_PATH", "data.db")

	viper.SetDefault("DATA_DIR", "data")
	viper.SetDefault("DATA_LOAD_ON_STARTUP", true)
	viper.SetDefault("DATA_RELOAD_CRON", "0 */6 * * *") // A cada 6 horas
	viper.SetDefault("DATA_RELOAD_ENABLED", false)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.SetDefault("STALE_DEAL_THRESHOLD_DAYS", 30)
	viper.SetDefault("URGENT_STALE_DEAL_DAYS", 45)
	viper.SetDefault("LOW_ACTIVITY_THRESHOLD_DAYS", 30)
	viper.SetDefault("LOW_ACTIVITY_MIN_COUNT", 3)
	viper.SetDefault("UNDERPERFORMING_PERCENT", 80)
	viper.SetDefault("CRITICAL_PERCENT", 50)
	viper.SetDefault("RISK_ITEMS_LIMIT", 5)
	viper.SetDefault("RECOMMENDATIONS_LIMIT", 5)
	viper.SetDefault("COACHING_LIMIT", 2)
	viper.SetDefault("ENGAGEMENT_LIMIT", 1)
	viper.SetDefault("ENGAGEMENT_MAX_ACTIVITY", 2)
	viper.SetDefault("REVENUE_TREND_MONTHS", 6)

	viper.SetDefault("LOG_LEVEL", "debug")
}

// DefaultMetrics retorna os limiares padrão, útil para testes e para quem não usa o viper
func DefaultMetrics() Metrics {
	return Metrics{
		StaleDealThresholdDays:   30,
		UrgentStaleDealDays:      45,
		LowActivityThresholdDays: 30,
		LowActivityMinCount:      3,
		UnderperformingPercent:   80,
		CriticalPercent:          50,
		RiskItemsLimit:           5,
		RecommendationsLimit:     5,
		CoachingLimit:            2,
		EngagementLimit:          1,
		EngagementMaxActivity:    2,
		RevenueTrendMonths:       6,
	}
}

func NewConfig() (*Config, error) {
	loadEnvFile()

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
		mapstructure.StringToSliceHookFunc(","),
	))
	if err != nil {
		return nil, err
	}

	if err := config.Database.resolveDSN(); err != nil {
		return nil, err
	}

	return config, nil
}

func (d *Database) resolveDSN() error {
	switch d.Driver {
	case DriverPostgres:
		d.DSN = fmt.Sprintf("%s://%s:%s@%s", d.Driver, d.User, d.Password, d.URL)
	case DriverSQLite:
		d.DSN = d.Path
	default:
		return fmt.Errorf("driver de banco de dados não suportado: %s", d.Driver)
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
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
