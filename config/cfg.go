package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/jekabolt/sales-digest/internal/analytics/ga4"
	gerr "github.com/jekabolt/sales-digest/internal/errors"
	"github.com/jekabolt/sales-digest/internal/line"
	"github.com/jekabolt/sales-digest/internal/report"
	"github.com/jekabolt/sales-digest/internal/shopify"
	"github.com/jekabolt/sales-digest/log"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config represents the global configuration for the digest job.
type Config struct {
	Logger  log.Config     `mapstructure:"logger"`
	Shopify shopify.Config `mapstructure:"shopify"`
	GA4     ga4.Config     `mapstructure:"ga4"`
	Line    line.Config    `mapstructure:"line"`
	Report  report.Config  `mapstructure:"report"`
}

// LoadConfig loads the configuration from a .env file, a config file and
// environment variables. Environment variables take precedence over config
// file values. Flat variable names such as SHOPIFY_SHOP_NAME, GA4_KEY_JSON
// and LINE_USER_ID are bound explicitly.
func LoadConfig(cfgFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read .env file: %v", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "__"))

	setDefaults(v)
	bindEnvVars(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %v", err)
			}
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/config/sales-digest")
		v.AddConfigPath("/etc/sales-digest")
		// Try to read config, but don't fail if it doesn't exist
		_ = v.ReadInConfig()
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config into struct: %v", err)
	}
	return &config, nil
}

// Validate reports the first missing required value. It must pass before
// any client is created.
func (c *Config) Validate() error {
	sections := []struct {
		name string
		cfg  any
	}{
		{"shopify", &c.Shopify},
		{"ga4", &c.GA4},
		{"line", &c.Line},
	}
	for _, s := range sections {
		if _, err := govalidator.ValidateStruct(s.cfg); err != nil {
			return fmt.Errorf("%w: %s: %v", gerr.ErrMissingConfig, s.name, err)
		}
	}
	if len(line.ParseRecipients(c.Line.Recipients)) == 0 {
		return fmt.Errorf("%w: line: recipients list is empty", gerr.ErrMissingConfig)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("shopify.api_version", shopify.DefaultAPIVersion)
	v.SetDefault("report.title", report.DefaultTitle)
	v.SetDefault("logger.level", 0)
	v.SetDefault("logger.add_source", false)
}

// bindEnvVars binds environment variables to config keys
func bindEnvVars(v *viper.Viper) {
	// Logger
	v.BindEnv("logger.level", "LOG_LEVEL")
	v.BindEnv("logger.add_source", "LOG_ADD_SOURCE")

	// Shopify
	v.BindEnv("shopify.shop_name", "SHOPIFY_SHOP_NAME")
	v.BindEnv("shopify.access_token", "SHOPIFY_ACCESS_TOKEN")
	v.BindEnv("shopify.api_version", "SHOPIFY_API_VERSION")
	v.BindEnv("shopify.base_url", "SHOPIFY_BASE_URL")
	v.BindEnv("shopify.http_timeout", "SHOPIFY_HTTP_TIMEOUT", "HTTP_TIMEOUT")

	// GA4
	v.BindEnv("ga4.property_id", "GA_PROPERTY_ID")
	v.BindEnv("ga4.credentials_json", "GA4_KEY_JSON")

	// LINE
	v.BindEnv("line.channel_token", "LINE_CHANNEL_TOKEN")
	v.BindEnv("line.recipients", "LINE_USER_ID")
	v.BindEnv("line.push_url", "LINE_PUSH_URL")
	v.BindEnv("line.http_timeout", "LINE_HTTP_TIMEOUT", "HTTP_TIMEOUT")

	// Report
	v.BindEnv("report.title", "REPORT_TITLE")
}
