package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid configuration")

const (
	// DefaultEnvFile is read when no config file is given, like a dotenv
	// file next to the invocation.
	DefaultEnvFile = ".env"

	DefaultTimeout = 30 * time.Second
)

// Config is everything the dispatcher needs to reach the API.
type Config struct {
	APIURL  string        `mapstructure:"api_url" validate:"required,url"`
	Token   string        `mapstructure:"token"`
	Timeout time.Duration `mapstructure:"timeout" validate:"gte=0"`
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(fields, ", "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

type ConfigParser struct {
	v *viper.Viper
}

func NewConfigParser() *ConfigParser {
	v := viper.New()
	v.SetDefault("api_url", "")
	v.SetDefault("token", "")
	v.SetDefault("timeout", DefaultTimeout.String())

	// errors are impossible with a key and a name
	_ = v.BindEnv("api_url", "API_URL")
	_ = v.BindEnv("token", "ACCOUNTPAGE_TOKEN")
	_ = v.BindEnv("timeout", "ACCOUNTPAGE_TIMEOUT")

	return &ConfigParser{v: v}
}

// Viper exposes the underlying instance so command flags can be bound to
// the same keys.
func (c *ConfigParser) Viper() *viper.Viper {
	return c.v
}

// Parse reads configPath (yaml, json or dotenv by extension), or
// DefaultEnvFile when configPath is empty and the file exists, and merges
// it below the environment and any bound flags.
func (c *ConfigParser) Parse(configPath string) (*Config, error) {
	switch {
	case configPath != "":
		c.v.SetConfigFile(configPath)
		if err := c.v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w: failed to read %s: %v", ErrInvalidConfig, configPath, err)
		}
	default:
		if _, err := os.Stat(DefaultEnvFile); err == nil {
			c.v.SetConfigFile(DefaultEnvFile)
			c.v.SetConfigType("env")
			if err := c.v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("%w: failed to read %s: %v", ErrInvalidConfig, DefaultEnvFile, err)
			}
		}
	}

	var cfg Config
	err := c.v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.StringToTimeDurationHookFunc()))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	cfg.APIURL = strings.TrimSpace(cfg.APIURL)
	cfg.Token = strings.TrimSpace(cfg.Token)

	return &cfg, nil
}
