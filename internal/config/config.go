package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// FileName is the optional config file looked up in the config directory.
const FileName = "tactics.cfg.json"

// EnvPrefix prefixes every environment override, e.g. TACTICS_DB_PATH.
const EnvPrefix = "TACTICS"

type DB struct {
	Path string `json:"path" mapstructure:"path"`
}

// Limits bound what a single client or the whole server may use.
type Limits struct {
	ConnsPerIP    int `json:"connsPerIP" mapstructure:"connsPerIP"`
	MsgsPerSecond int `json:"msgsPerSecond" mapstructure:"msgsPerSecond"`
	MaxRooms      int `json:"maxRooms" mapstructure:"maxRooms"`
}

type Config struct {
	Port           string   `json:"port" mapstructure:"port"`
	StaticDir      string   `json:"staticDir" mapstructure:"staticDir"`
	AllowedOrigins []string `json:"allowedOrigins" mapstructure:"allowedOrigins"`
	LogLevel       string   `json:"logLevel" mapstructure:"logLevel"`
	LogFile        string   `json:"logFile" mapstructure:"logFile"`
	FrameRate      int      `json:"frameRate" mapstructure:"frameRate"`
	DB             DB       `json:"db" mapstructure:"db"`
	Limits         Limits   `json:"limits" mapstructure:"limits"`
}

// Load reads configuration from the JSON file in configDir, if there is
// one, then applies environment overrides on top of the defaults. PORT is
// honoured as well as TACTICS_PORT.
func Load(configDir string) (Config, error) {
	v := viper.New()

	v.SetDefault("port", "8080")
	v.SetDefault("staticDir", "./web")
	v.SetDefault("allowedOrigins", []string{})
	v.SetDefault("logLevel", "info")
	v.SetDefault("logFile", "")
	v.SetDefault("frameRate", 60)

	v.SetDefault("db.path", "tactics.db")

	v.SetDefault("limits.connsPerIP", 4)
	v.SetDefault("limits.msgsPerSecond", 240)
	v.SetDefault("limits.maxRooms", 100)

	v.SetConfigName(FileName)
	v.AddConfigPath(configDir)
	v.SetConfigType("json")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("port", EnvPrefix+"_PORT", "PORT"); err != nil {
		return Config{}, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}
	return cfg, nil
}
