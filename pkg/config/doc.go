// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for struct parsing. Each package declares its
// own Config struct with env and envDefault tags; the service entry point
// loads them with Load, which parses every struct type once and caches the
// result:
//
//	var httpCfg httpserver.Config
//	config.MustLoad(&httpCfg)
//
// Call LoadEnv first to read specific .env files. Variables already present
// in the environment win over values from files. ResetCache clears the cache,
// which tests use after changing the environment.
package config
