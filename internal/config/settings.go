package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	PoolSize int    `mapstructure:"pool_size"`
}

func (d DBConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.Username, d.Password, d.Host, d.Port, d.Name)
}

type RedisConfig struct {
	Addr string `mapstructure:"addr"`
	Pass string `mapstructure:"pass"`
}

// AssistantConfig selects and configures the LLM provider used for
// classification and per-category extraction.
type AssistantConfig struct {
	Provider     string   `mapstructure:"provider"` // openai | gemini | ollama
	OpenAIAPIKey string   `mapstructure:"open_ai_api_key"`
	GeminiAPIKey string   `mapstructure:"gemini_api_key"`
	Model        string   `mapstructure:"model"`
	OllamaURLs   []string `mapstructure:"ollama_urls"`
	CacheTTLMins int64    `mapstructure:"cache_ttl_mins"`
}

type GoogleConfig struct {
	CredentialsFile     string `mapstructure:"credentials_file"`
	CalendarID          string `mapstructure:"calendar_id"`
	DriveFolder         string `mapstructure:"drive_folder"`
	DeleteAfterDownload bool   `mapstructure:"delete_after_download"`
}

type AudioConfig struct {
	RawDir       string `mapstructure:"raw_dir"`
	ProcessedDir string `mapstructure:"processed_dir"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type Settings struct {
	DB        DBConfig        `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Assistant AssistantConfig `mapstructure:"assistant"`
	Google    GoogleConfig    `mapstructure:"google"`
	Audio     AudioConfig     `mapstructure:"audio"`
	Server    ServerConfig    `mapstructure:"server"`
	Env       string          `mapstructure:"env"`
	Debug     bool            `mapstructure:"debug"`
}

func Load() (*Settings, error) {
	viper.SetConfigName("config_" + genEnv())
	viper.AddConfigPath(".")
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var settings Settings
	if err := viper.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &settings, nil
}

func genEnv() string {
	env := viper.GetString("ENV")
	if env == "" {
		return "dev"
	}
	return env
}
