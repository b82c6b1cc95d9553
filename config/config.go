package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Default generation parameters, also the documented CLI defaults.
const (
	DefaultOutDir    = "./exports"
	DefaultCustomers = 20000
	DefaultDays      = 120
	DefaultSeed      = 42
)

// Config ...
type Config struct {
	Generator GeneratorConfig `mapstructure:"generator"`
	Log       LogConfig       `mapstructure:"log"`
}

// GeneratorConfig holds the parameters of one generation run.
type GeneratorConfig struct {
	OutDir    string `mapstructure:"out"`
	Customers int    `mapstructure:"customers"`
	Days      int    `mapstructure:"days"`
	Seed      int64  `mapstructure:"seed"`
}

// Validate rejects impossible run parameters before generation starts.
func (c GeneratorConfig) Validate() error {
	if c.Customers <= 0 {
		return fmt.Errorf("config: customers must be positive, got %d", c.Customers)
	}
	if c.Days <= 0 {
		return fmt.Errorf("config: days must be positive, got %d", c.Days)
	}
	return nil
}

var vip = newViper()

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("DATAGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("generator.out", DefaultOutDir)
	v.SetDefault("generator.customers", DefaultCustomers)
	v.SetDefault("generator.days", DefaultDays)
	v.SetDefault("generator.seed", DefaultSeed)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.dev", false)
	return v
}

// BindFlags wires the generate command flags into the config keys, so
// the precedence is flag > env > config file > default.
func BindFlags(flags *pflag.FlagSet) {
	mustBind("generator.out", flags.Lookup("out"))
	mustBind("generator.customers", flags.Lookup("customers"))
	mustBind("generator.days", flags.Lookup("days"))
	mustBind("generator.seed", flags.Lookup("seed"))
}

func mustBind(key string, flag *pflag.Flag) {
	if flag == nil {
		panic("config: missing flag for " + key)
	}
	if err := vip.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}

// Load reads the optional config file, environment and bound flags.
func Load() Config {
	if err := vip.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			panic(err)
		}
	}

	var conf Config
	if err := vip.Unmarshal(&conf); err != nil {
		panic(err)
	}
	return conf
}
