package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	ServerPort  string
	ModelPath   string
	DBPath      string
	LogLevel    string
	MaxFileSize int64
}

// Load reads configuration from taxbridge.yaml (working directory, optional)
// with TAXBRIDGE_* environment overrides.
func Load() *Config {
	v := viper.New()
	v.SetConfigName("taxbridge")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetDefault("server.port", "8080")
	v.SetDefault("model.path", "models/classifier.gob")
	v.SetDefault("db.path", "data/taxbridge.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("upload.max_file_size", int64(32<<20))

	v.SetEnvPrefix("taxbridge")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Missing config file is fine; defaults and env cover everything.
	_ = v.ReadInConfig()

	return &Config{
		ServerPort:  v.GetString("server.port"),
		ModelPath:   v.GetString("model.path"),
		DBPath:      v.GetString("db.path"),
		LogLevel:    v.GetString("log.level"),
		MaxFileSize: v.GetInt64("upload.max_file_size"),
	}
}
