package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App    App    `mapstructure:",squash"`
	GA4    GA4    `mapstructure:",squash"`
	Output Output `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type GA4 struct {
	BaseURL string `mapstructure:"ga4_base_url"`
	// PropertyID e CredentialsJSON são obrigatórios e não possuem default:
	// a validação acontece em NewConfig, antes de qualquer chamada de rede.
	PropertyID      string `mapstructure:"-"`
	CredentialsJSON string `mapstructure:"-"`
	LookbackDays    int    `mapstructure:"ga4_lookback_days"`
}

type Output struct {
	Path string `mapstructure:"output_path"`
}

func SetDefaults() {
	viper.SetDefault("GA4_BASE_URL", "https://analyticsdata.googleapis.com/v1beta")
	viper.SetDefault("GA4_LOOKBACK_DAYS", 30)

	viper.SetDefault("OUTPUT_PATH", filepath.Join("backoffice", "metrics.json"))

	viper.SetDefault("LOG_LEVEL", "info")
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
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	propertyID, err := requireEnv("ga4_property_id")
	if err != nil {
		return nil, err
	}

	credentials, err := requireEnv("gcp_sa_key_json")
	if err != nil {
		return nil, err
	}

	config.GA4.PropertyID = propertyID
	config.GA4.CredentialsJSON = credentials

	return config, nil
}

// requireEnv lê uma variável obrigatória via viper (env ou .env) e falha
// com o nome da variável quando ausente ou em branco.
func requireEnv(key string) (string, error) {
	value := strings.TrimSpace(viper.GetString(key))
	if value == "" {
		return "", errors.Errorf("variável de ambiente obrigatória ausente: %s", strings.ToUpper(key))
	}
	return value, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
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
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
