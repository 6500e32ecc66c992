package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/vfg2006/grape-extractor/pkg/utils"
)

// Valores aceitos para date_type. Vazio equivale a fixo, que usa
// date_start/date_end; incremental usa a janela relativa a ontem.
const (
	DateTypeIncremental = "incremental"
	DateTypeFixed       = "fixed"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Grape      Grape      `mapstructure:",squash"`
	Output     Output     `mapstructure:",squash"`
	Sync       Sync       `mapstructure:",squash"`
	Extraction Extraction `mapstructure:"parameters"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Grape struct {
	BaseURL        string `mapstructure:"grape_base_url"`
	TimeoutSeconds int    `mapstructure:"grape_timeout_seconds"`
}

type Output struct {
	Path string `mapstructure:"output_path"`
}

type Sync struct {
	CronSchedule string `mapstructure:"extraction_sync_cron"`
	Enabled      bool   `mapstructure:"extraction_sync_enabled"`
}

// Extraction reflete o bloco "parameters" do arquivo de configuração,
// no formato usado pelo orquestrador que agenda o extrator. A chave
// "#password" mantém a convenção de campo cifrado da plataforma.
type Extraction struct {
	DateType   string   `mapstructure:"date_type"`
	Increment  int      `mapstructure:"increment"`
	DateStart  string   `mapstructure:"date_start"`
	DateEnd    string   `mapstructure:"date_end"`
	Username   string   `mapstructure:"username"`
	Password   string   `mapstructure:"#password"`
	Categories []string `mapstructure:"categories"`
}

func (e Extraction) Incremental() bool {
	return e.DateType == DateTypeIncremental
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("GRAPE_BASE_URL", "https://adx.grapemedia.cz/api")
	viper.SetDefault("GRAPE_TIMEOUT_SECONDS", 30)

	viper.SetDefault("OUTPUT_PATH", "/data/out/tables/grape.csv")

	// Defaults para o modo agendado
	viper.SetDefault("EXTRACTION_SYNC_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("EXTRACTION_SYNC_ENABLED", false)    // Por padrão o extrator roda uma vez e encerra

	viper.SetDefault("PARAMETERS.CATEGORIES", []string{})
}

// NewConfig carrega a configuração a partir do arquivo JSON indicado,
// com variáveis de ambiente por cima e defaults por baixo.
func NewConfig(path string) (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv // ONLY LOCAL
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigFile(path)
	viper.SetConfigType("json")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// JSON malformado é um problema diferente de arquivo inacessível
		var parseErr viper.ConfigParseError
		if errors.As(err, &parseErr) {
			return nil, NewConfigError(ErrConfigFileInvalid, path, err.Error())
		}

		return nil, NewConfigError(ErrConfigFileUnreadable, path, err.Error())
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, NewConfigError(ErrConfigFileInvalid, path, err.Error())
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate garante as chaves obrigatórias antes de qualquer chamada de rede.
func (c *Config) Validate() error {
	params := c.Extraction

	if params.Username == "" {
		return ErrMissingUsername
	}

	if params.Password == "" {
		return ErrMissingPassword
	}

	switch params.DateType {
	case DateTypeIncremental, DateTypeFixed, "":
	default:
		return NewConfigError(ErrInvalidDateType, "parameters.date_type",
			fmt.Sprintf("valor configurado: %q", params.DateType))
	}

	if params.Incremental() {
		if params.Increment < 1 {
			return NewConfigError(ErrInvalidIncrement, "parameters.increment",
				fmt.Sprintf("valor configurado: %d", params.Increment))
		}
		return nil
	}

	// Modo fixo: as duas datas precisam existir e ser interpretáveis
	if params.DateStart == "" || params.DateEnd == "" {
		return ErrMissingDateBounds
	}

	if _, err := utils.ParseDate(params.DateStart); err != nil {
		return NewConfigError(ErrInvalidDateBound, "parameters.date_start", err.Error())
	}

	if _, err := utils.ParseDate(params.DateEnd); err != nil {
		return NewConfigError(ErrInvalidDateBound, "parameters.date_end", err.Error())
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("Nenhum arquivo .env carregado: ", err)
		return
	}

	logrus.Info("Arquivo .env carregado com sucesso")
}
