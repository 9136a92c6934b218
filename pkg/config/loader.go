package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option adjusts how environment variables are read by Parse.
type Option func(*env.Options)

// WithPrefix prepends prefix to every env tag, so `env:"LANG"` reads
// PREFIX_LANG when prefix is "PREFIX_".
func WithPrefix(prefix string) Option {
	return func(o *env.Options) { o.Prefix = prefix }
}

// WithEnvironment reads from vars instead of the process environment.
func WithEnvironment(vars map[string]string) Option {
	return func(o *env.Options) {
		if vars != nil {
			o.Environment = vars
		}
	}
}

// Parse fills v from environment variables using its `env` struct tags.
// It does not touch the cache.
func Parse[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	var o env.Options
	for _, opt := range opts {
		opt(&o)
	}

	if err := env.ParseWithOptions(v, o); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

type configCache struct {
	mu     sync.Mutex
	values map[reflect.Type]any
}

var (
	cache = &configCache{values: make(map[reflect.Type]any)}

	defaultEnvLoaded sync.Once
)

// Load parses T once per process and serves later calls from a cache.
// The first call also loads ./.env when it exists. Failed parses are not
// cached, so a later call can succeed once the environment is fixed.
//
//	type Config struct {
//		Lang string `env:"STRVALID_LANG" envDefault:"en"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](v *T, opts ...Option) error {
	defaultEnvLoaded.Do(func() {
		// A missing .env file is fine.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	key := reflect.TypeFor[T]()

	cache.mu.Lock()
	defer cache.mu.Unlock()

	if cached, ok := cache.values[key]; ok {
		*v = cached.(T)
		return nil
	}

	var parsed T
	if err := Parse(&parsed, opts...); err != nil {
		return err
	}
	cache.values[key] = parsed
	*v = parsed
	return nil
}

// MustLoad is like Load but panics on error.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// LoadEnv loads the given .env files into the process environment, or ./.env
// when no path is given. Variables already set are not overwritten, and the
// first file that sets a variable wins.
func LoadEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// ResetCache drops every cached configuration.
func ResetCache() {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	clear(cache.values)
}
