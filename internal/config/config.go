// Package config loads the aggregator's configuration from a YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds everything the binaries need to run the pipeline.
type Config struct {
	NewsAPI struct {
		APIKey  string `yaml:"api_key" env:"NEWSAPI_KEY"`
		BaseURL string `yaml:"base_url"`
	} `yaml:"newsapi"`

	Guardian struct {
		APIKey  string `yaml:"api_key" env:"GUARDIAN_KEY"`
		BaseURL string `yaml:"base_url"`
	} `yaml:"guardian"`

	NYTimes struct {
		APIKey  string `yaml:"api_key" env:"NYTIMES_KEY"`
		BaseURL string `yaml:"base_url"`
	} `yaml:"nytimes"`

	DBPath string `yaml:"db_path" env:"NEWS_DB"`

	API struct {
		Port      string `yaml:"port" env:"API_PORT"`
		JWTSecret string `yaml:"jwt_secret" env:"JWT_SECRET"`
	} `yaml:"api"`
}

// Default returns the configuration used when no file or overrides exist.
// API keys have no defaults and must come from the file or the environment.
func Default() *Config {
	cfg := &Config{}
	cfg.NewsAPI.BaseURL = "https://newsapi.org/v2"
	cfg.Guardian.BaseURL = "https://content.guardianapis.com"
	cfg.NYTimes.BaseURL = "https://api.nytimes.com/svc"
	cfg.DBPath = "data/news.db"
	cfg.API.Port = "8080"
	return cfg
}

// Load builds the configuration: defaults, then the YAML file at path (if it
// exists), then environment variable overrides from `env` struct tags.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// defaults + env only
		case err != nil:
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		default:
			expanded := os.ExpandEnv(string(data))
			if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
				return nil, fmt.Errorf("parse config file %s: %w", path, err)
			}
		}
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

// applyEnvOverrides sets struct fields from environment variables named by
// their `env` tags, recursing into nested structs.
func applyEnvOverrides(v any) {
	val := reflect.ValueOf(v)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return
	}

	t := val.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldVal := val.Field(i)

		if fieldVal.Kind() == reflect.Struct {
			if fieldVal.CanAddr() {
				applyEnvOverrides(fieldVal.Addr().Interface())
			}
			continue
		}

		envTag := field.Tag.Get("env")
		if envTag == "" {
			continue
		}
		envVal, ok := os.LookupEnv(envTag)
		if !ok || !fieldVal.CanSet() {
			continue
		}

		switch fieldVal.Kind() {
		case reflect.String:
			fieldVal.SetString(envVal)
		case reflect.Int, reflect.Int64:
			var n int64
			if _, err := fmt.Sscanf(envVal, "%d", &n); err == nil {
				fieldVal.SetInt(n)
			}
		case reflect.Bool:
			fieldVal.SetBool(strings.EqualFold(envVal, "true") || envVal == "1")
		}
	}
}
