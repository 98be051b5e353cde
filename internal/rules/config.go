package rules

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config is the on-disk rule configuration consumed by the CLI.
type Config struct {
	DefaultClearance int         `mapstructure:"default_clearance"`
	MaxClearance     int         `mapstructure:"max_clearance"`
	Classes          []Class     `mapstructure:"classes"`
	Nets             []NetAssign `mapstructure:"nets"`
}

// NetAssign maps a net code to a net class.
type NetAssign struct {
	Net   int    `mapstructure:"net"`
	Class string `mapstructure:"class"`
}

// DefaultConfig returns the configuration used when no rule file is given.
func DefaultConfig() Config {
	return Config{
		DefaultClearance: 100000,
		MaxClearance:     800000,
	}
}

// LoadConfig reads a rule configuration file (YAML, TOML or JSON,
// recognised by extension). An empty path returns the defaults; a file
// that cannot be read is an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("default_clearance", cfg.DefaultClearance)
	v.SetDefault("max_clearance", cfg.MaxClearance)

	if err := v.ReadInConfig(); err != nil {
		return cfg, errors.Wrapf(err, "reading rule config %q", path)
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing rule config %q", path)
	}
	return cfg, nil
}

// Resolver builds the net-class resolver described by the configuration.
func (c Config) Resolver() *NetClassResolver {
	r := NewNetClassResolver(c.DefaultClearance)
	for _, class := range c.Classes {
		r.AddClass(class)
	}
	for _, assign := range c.Nets {
		r.AssignNet(assign.Net, assign.Class)
	}
	return r
}
