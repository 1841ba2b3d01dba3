package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// 資料來源類型
const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

type Config struct {
	Server ServerConfig
	Data   DataConfig
	DB     DBConfig
	CORS   CORSConfig
}

type ServerConfig struct {
	Host string
	Port int
	Mode string
}

// Address 回傳 gin 監聽用的 host:port
func (s ServerConfig) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

type DataConfig struct {
	Source string
	Path   string
}

type DBConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     int
	Migrate  bool
}

type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
	AllowMethods []string `mapstructure:"allow_methods"`
	AllowHeaders []string `mapstructure:"allow_headers"`
	MaxAge       int      `mapstructure:"max_age"`
}

// Load 讀取 config.yaml、環境變數 (MARKS_ 前綴) 與預設值。
// 找不到設定檔時直接使用預設值；設定檔存在但格式錯誤則回傳錯誤。
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./pkg/config")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix("marks")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.mode", "release")

	v.SetDefault("data.source", SourceFile)
	v.SetDefault("data.path", "q-vercel-python.json")

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.name", "marks")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.migrate", false)

	v.SetDefault("cors.allow_origins", []string{"*"})
	v.SetDefault("cors.allow_methods", []string{"GET"})
	v.SetDefault("cors.allow_headers", []string{"*"})
	v.SetDefault("cors.max_age", 600)
}

func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("unknown server mode: %q", c.Server.Mode)
	}

	switch c.Data.Source {
	case SourceFile:
		if c.Data.Path == "" {
			return errors.New("data.path is required when data.source is file")
		}
	case SourcePostgres:
	default:
		return fmt.Errorf("unknown data source: %q", c.Data.Source)
	}

	if len(c.CORS.AllowOrigins) == 0 {
		return errors.New("cors.allow_origins must not be empty")
	}

	return nil
}
