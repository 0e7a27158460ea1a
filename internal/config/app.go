package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type HTTPServer struct {
	Port string `mapstructure:"port"`
}

type HTTPClient struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

type DbServer struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Pass     string `mapstructure:"pass"`
	Name     string `mapstructure:"name"`
	MaxConns int32  `mapstructure:"max_conns"`
}

func (config *DbServer) GetConnectionStr() string {
	return fmt.Sprintf(
		"user=%s password=%s host=%s port=%s dbname=%s sslmode=disable",
		config.User, config.Pass, config.Host, config.Port, config.Name,
	)
}

// Enabled reports whether a database was configured at all. The refresh
// history is optional and the service runs fine without it.
func (config *DbServer) Enabled() bool {
	return config.Host != ""
}

type Binance struct {
	BaseURL   string `mapstructure:"base_url"`
	APIKey    string `mapstructure:"api_key"`
	APISecret string `mapstructure:"api_secret"`
}

type CoinGecko struct {
	BaseURL string `mapstructure:"base_url"`
}

type Jupiter struct {
	BaseURL string `mapstructure:"base_url"`
}

type Snapshot struct {
	Path string `mapstructure:"path"`
}

type Refresh struct {
	TopN              int    `mapstructure:"top_n"`
	PageSize          int    `mapstructure:"page_size"`
	QuoteAsset        string `mapstructure:"quote_asset"`
	CallsPerMinute    int    `mapstructure:"calls_per_minute"`
	AutoIntervalSec   int    `mapstructure:"auto_interval_sec"`
	HistoryQueryLimit int    `mapstructure:"history_query_limit"`
}

type Logging struct {
	Level string `mapstructure:"level"`
}

type AppConfig struct {
	HTTPServer HTTPServer `mapstructure:"http_server"`
	HTTPClient HTTPClient `mapstructure:"http_client"`
	DbServer   DbServer   `mapstructure:"db_server"`
	Binance    Binance    `mapstructure:"binance"`
	CoinGecko  CoinGecko  `mapstructure:"coingecko"`
	Jupiter    Jupiter    `mapstructure:"jupiter"`
	Snapshot   Snapshot   `mapstructure:"snapshot"`
	Refresh    Refresh    `mapstructure:"refresh"`
	Logging    Logging    `mapstructure:"logging"`
}

func Init() (*AppConfig, error) {
	var cfg AppConfig

	// .env is optional; public endpoints need no credentials.
	_ = godotenv.Load()

	viper.SetConfigFile("config.yaml")
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	viper.SetDefault("http_server.port", "8000")
	viper.SetDefault("http_client.timeout_seconds", 10)
	viper.SetDefault("db_server.max_conns", 10)
	viper.SetDefault("binance.base_url", "https://api.binance.com")
	viper.SetDefault("coingecko.base_url", "https://api.coingecko.com/api/v3")
	viper.SetDefault("jupiter.base_url", "https://lite-api.jup.ag")
	viper.SetDefault("snapshot.path", "top_3000_cryptos_tradability.json")
	viper.SetDefault("refresh.top_n", 3000)
	viper.SetDefault("refresh.page_size", 250)
	viper.SetDefault("refresh.quote_asset", "USDC")
	viper.SetDefault("refresh.calls_per_minute", 10)
	viper.SetDefault("refresh.auto_interval_sec", 0)
	viper.SetDefault("refresh.history_query_limit", 50)
	viper.SetDefault("logging.level", "info")

	// db server env vars
	_ = viper.BindEnv("db_server.host", "DB_HOST")
	_ = viper.BindEnv("db_server.port", "DB_PORT")
	_ = viper.BindEnv("db_server.user", "DB_USER")
	_ = viper.BindEnv("db_server.pass", "DB_PASS")
	_ = viper.BindEnv("db_server.name", "DB_NAME")
	_ = viper.BindEnv("db_server.max_conns", "DB_MAX_CONNS")

	// exchange credentials are optional
	_ = viper.BindEnv("binance.api_key", "BINANCE_API_KEY")
	_ = viper.BindEnv("binance.api_secret", "BINANCE_API_SECRET")

	// http client env vars
	_ = viper.BindEnv("http_client.timeout_seconds", "HTTP_CLIENT_TIMEOUT_SECONDS")

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return &cfg, nil
}
