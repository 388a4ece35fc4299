package settings

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const envPrefix = "HASHIDS"

// Defaults applied before the config file and environment are read.
const (
	DefaultServerMode      = "release"
	DefaultServerHost      = "0.0.0.0"
	DefaultServerPort      = 8080
	DefaultReadTimeout     = 5
	DefaultWriteTimeout    = 5
	DefaultShutdownTimeout = 5
	DefaultBatchLimit      = 8
	DefaultLogLevel        = "info"
	DefaultLogMaxBackups   = 3
	DefaultLogMaxAge       = 28
	DefaultLogMaxSize      = 100
)

var ErrNegativeMinLength = errors.New("min_length must not be negative")

// Load reads the configuration at path (any format viper understands).
// An empty path loads defaults and environment variables only.
// Environment variables use the HASHIDS prefix, e.g. HASHIDS_HASHIDS_SALT.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.mode", DefaultServerMode)
	v.SetDefault("server.host", DefaultServerHost)
	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("server.read_timeout", DefaultReadTimeout)
	v.SetDefault("server.write_timeout", DefaultWriteTimeout)
	v.SetDefault("server.shutdown_timeout", DefaultShutdownTimeout)
	v.SetDefault("server.batch_limit", DefaultBatchLimit)

	v.SetDefault("logger.log_level", DefaultLogLevel)
	v.SetDefault("logger.file_log_name", "")
	v.SetDefault("logger.max_backups", DefaultLogMaxBackups)
	v.SetDefault("logger.max_age", DefaultLogMaxAge)
	v.SetDefault("logger.max_size", DefaultLogMaxSize)
	v.SetDefault("logger.compress", false)

	v.SetDefault("hashids.salt", "")
	v.SetDefault("hashids.min_length", 0)

	// no defaults: the codec picks its own alphabet and separators when
	// these are unset, but the environment may still provide them
	_ = v.BindEnv("hashids.alphabet")
	_ = v.BindEnv("hashids.separators")
}

// Validate checks the codec sections. Alphabet content is validated by the
// codec constructor itself.
func (c *Config) Validate() error {
	if err := c.Hashids.Validate(); err != nil {
		return errors.Wrap(err, "hashids")
	}
	for name, ns := range c.Namespaces {
		if err := ns.Validate(); err != nil {
			return errors.Wrapf(err, "namespaces.%s", name)
		}
	}
	return nil
}

// Validate checks the fields that are independent of alphabet derivation.
func (h Hashids) Validate() error {
	if h.MinLength < 0 {
		return ErrNegativeMinLength
	}
	return nil
}
