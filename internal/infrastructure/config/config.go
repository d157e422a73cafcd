package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "github.com/discourse/discourse-local-site-contacts/internal/shared/config"
)

type Config struct {
	Server        sharedConfig.ServerConfig        `mapstructure:"server"`
	Database      sharedConfig.DatabaseConfig      `mapstructure:"database"`
	Logger        sharedConfig.LoggerConfig        `mapstructure:"logger"`
	Auth          sharedConfig.AuthConfig          `mapstructure:"auth"`
	LocalContacts sharedConfig.LocalContactsConfig `mapstructure:"local_contacts"`
}

// DefaultJWTSecret is the placeholder used when auth.jwt.secret is not configured
const DefaultJWTSecret = "change-me-in-production"

// ErrInsecureJWTSecret means admin tokens would be signed with a guessable secret
var ErrInsecureJWTSecret = errors.New("auth.jwt.secret is empty or still the default")

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load loads configuration from file and environment variables.
// A missing config file is not an error; defaults and env still apply.
// configPath, when set, points at an explicit config file.
func Load(env, configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath("../configs")
		v.AddConfigPath("../../configs")
	}

	// LOCALCONTACTS_DATABASE_DRIVER, LOCALCONTACTS_LOCAL_CONTACTS_ENABLED, ...
	v.SetEnvPrefix("LOCALCONTACTS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		v.Set("server.mode", env)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// CheckJWTSecret returns ErrInsecureJWTSecret when the secret is empty or
// the built-in placeholder
func (c *Config) CheckJWTSecret() error {
	if c.Auth.JWT.Secret == "" || c.Auth.JWT.Secret == DefaultJWTSecret {
		return ErrInsecureJWTSecret
	}
	return nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")

	// Database defaults
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.username", "root")
	v.SetDefault("database.password", "password")
	v.SetDefault("database.database", "localcontacts.db")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("database.conn_max_lifetime", 60)

	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	// Auth defaults
	v.SetDefault("auth.jwt.secret", DefaultJWTSecret)
	v.SetDefault("auth.jwt.access_exp_minutes", 60)

	// Local contacts defaults
	v.SetDefault("local_contacts.enabled", false)
	v.SetDefault("local_contacts.contacts", "[]")
	v.SetDefault("local_contacts.site_contact_username", "system")
	v.SetDefault("local_contacts.default_locale", "en")
}
