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
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Meta           Meta           `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	ExtractionSync ExtractionSync `mapstructure:",squash"`
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

type Meta struct {
	BaseURL           string  `mapstructure:"meta_base_url"`
	URL               string  `mapstructure:"-"`
	Version           string  `mapstructure:"meta_version"`
	MaxRetries        int     `mapstructure:"meta_max_retries"`
	RetryBaseDelayMs  int     `mapstructure:"meta_retry_base_delay_ms"`
	RequestsPerSecond float64 `mapstructure:"meta_requests_per_second"`
	PageSize          int     `mapstructure:"meta_page_size"`
	TimeoutSeconds    int     `mapstructure:"meta_timeout_seconds"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type ExtractionSync struct {
	CronSchedule        string `mapstructure:"extraction_sync_cron"`
	RequestDelaySeconds int    `mapstructure:"extraction_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"extraction_sync_max_concurrent_jobs"`
	SkipIfSyncedWithinH int    `mapstructure:"extraction_sync_skip_if_synced_within_hours"`
	Enabled             bool   `mapstructure:"extraction_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/extractor")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_MAX_RETRIES", 3)            // Tentativas extras após a primeira falha
	viper.SetDefault("META_RETRY_BASE_DELAY_MS", 2000) // Base do backoff linear em rate limit
	viper.SetDefault("META_REQUESTS_PER_SECOND", 2.0)  // Espaçamento entre requisições
	viper.SetDefault("META_PAGE_SIZE", 500)            // Registros por página
	viper.SetDefault("META_TIMEOUT_SECONDS", 60)       // Timeout por requisição HTTP

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	// Defaults para sincronização de extrações em lote
	viper.SetDefault("EXTRACTION_SYNC_CRON", "0 3 * * *")               // Todos os dias às 3h da manhã
	viper.SetDefault("EXTRACTION_SYNC_REQUEST_DELAY_SECONDS", 2)        // 2 segundos entre conexões
	viper.SetDefault("EXTRACTION_SYNC_MAX_CONCURRENT_JOBS", 3)          // 3 jobs concorrentes
	viper.SetDefault("EXTRACTION_SYNC_SKIP_IF_SYNCED_WITHIN_HOURS", 12) // Pular conexões sincronizadas há menos de 12h
	viper.SetDefault("EXTRACTION_SYNC_ENABLED", false)                  // Habilitar sincronização em lote

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

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

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
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
