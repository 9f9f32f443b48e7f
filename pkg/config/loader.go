package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	mu        sync.Mutex
	cache     = make(map[reflect.Type]any)
	dotenvRan bool
)

// LoadEnv reads the given .env files into the process environment without
// overriding variables that are already set. With no files it reads ".env"
// from the working directory and ignores a missing file.
func LoadEnv(files ...string) error {
	mu.Lock()
	defer mu.Unlock()

	dotenvRan = true
	if len(files) == 0 {
		_ = godotenv.Load()
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv is LoadEnv that panics on error.
func MustLoadEnv(files ...string) {
	if err := LoadEnv(files...); err != nil {
		panic(err)
	}
}

// Load parses environment variables into v using its env struct tags.
// Each configuration type is parsed once; later calls for the same type are
// served from the cache. The default .env file is read before the first
// parse unless LoadEnv was already called.
//
//	type Config struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	typ := reflect.TypeFor[T]()
	if typ.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %s", ErrInvalidConfigType, typ)
	}

	mu.Lock()
	defer mu.Unlock()

	if !dotenvRan {
		dotenvRan = true
		_ = godotenv.Load()
	}

	if cached, ok := cache[typ]; ok {
		*v = cached.(T)
		return nil
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	cache[typ] = parsed
	*v = parsed
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// ResetCache drops every cached configuration so the next Load re-reads the
// environment.
func ResetCache() {
	mu.Lock()
	defer mu.Unlock()
	clear(cache)
}
