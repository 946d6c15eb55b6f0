package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	OpenAI         OpenAI         `mapstructure:",squash"`
	Analysis       Analysis       `mapstructure:",squash"`
	SummaryRefresh SummaryRefresh `mapstructure:",squash"`
	OOSScan        OOSScan        `mapstructure:",squash"`
	SecretKey      string         `mapstructure:"secret_key"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN          string `mapstructure:"-"`
	Driver       string `mapstructure:"database_driver"`
	Password     string `mapstructure:"database_password"`
	URL          string `mapstructure:"database_url"`
	User         string `mapstructure:"database_user"`
	MaxOpenConns int    `mapstructure:"database_max_open_conns"`
	MaxIdleConns int    `mapstructure:"database_max_idle_conns"`
}

type OpenAI struct {
	BaseURL        string  `mapstructure:"openai_base_url"`
	APIKey         string  `mapstructure:"openai_api_key"`
	Model          string  `mapstructure:"openai_model"`
	MaxTokens      int     `mapstructure:"openai_max_tokens"`
	Temperature    float64 `mapstructure:"openai_temperature"`
	TimeoutSeconds int     `mapstructure:"openai_timeout_seconds"`
	Enabled        bool    `mapstructure:"openai_enabled"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Analysis carries the classifier and query-shaping defaults. Brand aliases
// map lowercase tokens found in questions to catalog brand names; masked
// brands are matched against the brand_mask column rather than brand.
type Analysis struct {
	DefaultYearFrom int               `mapstructure:"analysis_default_year_from"`
	DefaultYearTo   int               `mapstructure:"analysis_default_year_to"`
	WindowDays      int               `mapstructure:"analysis_window_days"`
	AliasSpec       string            `mapstructure:"brand_aliases"`
	MaskedSpec      string            `mapstructure:"masked_brands"`
	BrandAliases    map[string]string `mapstructure:"-"`
	MaskedBrands    map[string]bool   `mapstructure:"-"`
}

type SummaryRefresh struct {
	CronSchedule string `mapstructure:"summary_refresh_cron"`
	Enabled      bool   `mapstructure:"summary_refresh_enabled"`
}

type OOSScan struct {
	CronSchedule       string  `mapstructure:"oos_scan_cron"`
	Enabled            bool    `mapstructure:"oos_scan_enabled"`
	DaysThreshold      int     `mapstructure:"oos_scan_days_threshold"`
	MinHistoricalSales float64 `mapstructure:"oos_scan_min_historical_sales"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sales?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)

	viper.SetDefault("OPENAI_BASE_URL", "https://api.openai.com/v1")
	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o")
	viper.SetDefault("OPENAI_MAX_TOKENS", 1000)
	viper.SetDefault("OPENAI_TEMPERATURE", 0.0)
	viper.SetDefault("OPENAI_TIMEOUT_SECONDS", 60)
	viper.SetDefault("OPENAI_ENABLED", true)

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	// Classifier defaults: the year pair assumed when a question names no
	// year, and the recent window for OOS style questions.
	viper.SetDefault("ANALYSIS_DEFAULT_YEAR_FROM", 2024)
	viper.SetDefault("ANALYSIS_DEFAULT_YEAR_TO", 2025)
	viper.SetDefault("ANALYSIS_WINDOW_DAYS", 30)
	viper.SetDefault("BRAND_ALIASES", "abbott:DUP,duphalac:DUP,duphaston:DUP,bayer:BAYER")
	viper.SetDefault("MASKED_BRANDS", "BAYER")

	viper.SetDefault("SUMMARY_REFRESH_CRON", "0 2 * * *") // every day at 2am
	viper.SetDefault("SUMMARY_REFRESH_ENABLED", false)

	viper.SetDefault("OOS_SCAN_CRON", "0 6 * * *") // every day at 6am
	viper.SetDefault("OOS_SCAN_ENABLED", false)
	viper.SetDefault("OOS_SCAN_DAYS_THRESHOLD", 30)
	viper.SetDefault("OOS_SCAN_MIN_HISTORICAL_SALES", 10000)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("using variables loaded by godotenv (viper could not read .env):", err)
	} else {
		logrus.Info(".env file read by viper")
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

	config.Analysis.BrandAliases = parseAliasSpec(config.Analysis.AliasSpec)
	config.Analysis.MaskedBrands = parseMaskedSpec(config.Analysis.MaskedSpec)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// parseAliasSpec turns "abbott:DUP,bayer:BAYER" into a lookup map. Malformed
// entries are skipped.
func parseAliasSpec(spec string) map[string]string {
	aliases := make(map[string]string)
	for _, pair := range strings.Split(spec, ",") {
		parts := strings.SplitN(strings.TrimSpace(pair), ":", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			continue
		}
		aliases[strings.ToLower(parts[0])] = parts[1]
	}
	return aliases
}

func parseMaskedSpec(spec string) map[string]bool {
	masked := make(map[string]bool)
	for _, name := range strings.Split(spec, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		masked[strings.ToUpper(name)] = true
	}
	return masked
}

// loadEnvFile loads a .env file via godotenv, trying a few locations so the
// binary works from the repo root and from cmd/ subdirectories.
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not determine working directory:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info(".env loaded from:", location)
			return
		}
	}

	logrus.Warn("no .env file found in known locations")
}
