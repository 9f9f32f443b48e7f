// Command mailvalid serves the email validation API.
//
// Configuration is read from the environment, after loading .env when
// present. Postgres (PG_CONN_URL) and Redis (REDIS_URL) are optional: without
// them users are kept in memory and rate limits are per process.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	goredis "github.com/redis/go-redis/v9"

	"github.com/mailvalid/mailvalid/internal/api"
	"github.com/mailvalid/mailvalid/internal/user"
	"github.com/mailvalid/mailvalid/locales"
	"github.com/mailvalid/mailvalid/pkg/clientip"
	"github.com/mailvalid/mailvalid/pkg/config"
	"github.com/mailvalid/mailvalid/pkg/emailsyntax"
	"github.com/mailvalid/mailvalid/pkg/httpserver"
	"github.com/mailvalid/mailvalid/pkg/i18n"
	"github.com/mailvalid/mailvalid/pkg/logger"
	"github.com/mailvalid/mailvalid/pkg/metrics"
	"github.com/mailvalid/mailvalid/pkg/pg"
	"github.com/mailvalid/mailvalid/pkg/ratelimiter"
	"github.com/mailvalid/mailvalid/pkg/redis"
	"github.com/mailvalid/mailvalid/pkg/requestid"
)

// appConfig holds the settings that belong to no single package.
type appConfig struct {
	LocalesDir      string   `env:"LOCALES_DIR"`
	DefaultLocale   string   `env:"DEFAULT_LOCALE" envDefault:"en"`
	ClientIPHeaders []string `env:"CLIENT_IP_HEADERS" envSeparator:","`
	RFC5321Limits   bool     `env:"EMAIL_RFC5321_LIMITS" envDefault:"false"`
	MaxBodySize     int64    `env:"MAX_BODY_SIZE" envDefault:"65536"`
	MetricsEnabled  bool     `env:"METRICS_ENABLED" envDefault:"true"`
}

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var (
		logCfg   logger.Config
		httpCfg  httpserver.Config
		pgCfg    pg.Config
		redisCfg redis.Config
		limitCfg ratelimiter.Config
		corsCfg  api.CORSConfig
		appCfg   appConfig
	)
	for _, load := range []func() error{
		func() error { return config.Load(&logCfg) },
		func() error { return config.Load(&httpCfg) },
		func() error { return config.Load(&pgCfg) },
		func() error { return config.Load(&redisCfg) },
		func() error { return config.Load(&limitCfg) },
		func() error { return config.Load(&corsCfg) },
		func() error { return config.Load(&appCfg) },
	} {
		if err := load(); err != nil {
			return err
		}
	}

	log := logger.New(
		logger.WithConfig(logCfg),
		logger.WithContextExtractors(requestid.LogExtractor(), i18n.LogExtractor()),
	)
	logger.SetAsDefault(log)

	tr, err := newTranslator(ctx, appCfg, log)
	if err != nil {
		return fmt.Errorf("load translations: %w", err)
	}

	var (
		hooks   []httpserver.Option
		apiOpts = []api.Option{
			api.WithLogger(log),
			api.WithClientIP(clientip.New(appCfg.ClientIPHeaders...)),
			api.WithMaxBodySize(appCfg.MaxBodySize),
			api.WithCORS(corsCfg),
		}
	)
	if appCfg.MetricsEnabled {
		apiOpts = append(apiOpts, api.WithMetrics(metrics.New()))
	}
	matcher := newMatcher(appCfg.RFC5321Limits)
	apiOpts = append(apiOpts, api.WithMatcher(matcher))

	repo := user.NewMemoryRepository()
	if pgCfg.Enabled() {
		pool, err := pg.Connect(ctx, pgCfg)
		if err != nil {
			return err
		}
		hooks = append(hooks, httpserver.WithShutdownHook(pool.Close))

		if err := pg.Migrate(ctx, pool, user.Migrations(), pgCfg, log); err != nil {
			return err
		}
		repo = user.NewPGRepository(pool)
		apiOpts = append(apiOpts, api.WithHealthCheck("postgres", pg.Healthcheck(pool)))
	} else {
		log.Warn("PG_CONN_URL not set, users are kept in memory")
	}

	var store ratelimiter.Store
	if redisCfg.Enabled() {
		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			return err
		}
		hooks = append(hooks, httpserver.WithShutdownHook(func() { closeRedis(log, client) }))

		if store, err = ratelimiter.NewRedisStore(client); err != nil {
			return err
		}
		apiOpts = append(apiOpts, api.WithHealthCheck("redis", redis.Healthcheck(client)))
	} else {
		mem := ratelimiter.NewMemoryStore()
		hooks = append(hooks, httpserver.WithShutdownHook(mem.Close))
		store = mem
	}

	limiter, err := ratelimiter.NewBucket(store, limitCfg)
	if err != nil {
		return err
	}
	apiOpts = append(apiOpts, api.WithRateLimiter(limiter))

	users := user.NewService(repo, tr, user.WithLogger(log), user.WithMatcher(matcher))
	router := api.New(users, tr, apiOpts...).Router()

	srv := httpserver.NewFromConfig(httpCfg, append(hooks, httpserver.WithLogger(log))...)
	return srv.Run(ctx, router)
}

// newTranslator loads the embedded tables, or the directory named by
// LOCALES_DIR when set.
func newTranslator(ctx context.Context, cfg appConfig, log *slog.Logger) (*i18n.Translator, error) {
	var adapter i18n.TranslationAdapter = i18n.NewFSAdapter(i18n.NewYAMLParser(), locales.FS, ".")
	if cfg.LocalesDir != "" {
		adapter = i18n.NewDirectoryAdapter(i18n.NewYAMLParser(), cfg.LocalesDir)
	}
	return i18n.NewTranslator(ctx, adapter,
		i18n.WithDefaultLanguage(cfg.DefaultLocale),
		i18n.WithFallbackLanguage(true),
		i18n.WithLogger(log),
		i18n.WithMissingTranslationsLogging(true),
	)
}

func closeRedis(log *slog.Logger, client *goredis.Client) {
	if err := client.Close(); err != nil {
		log.Error("Failed to close Redis client", logger.Error(err))
	}
}

// newMatcher builds the matcher shared by the validate and register endpoints.
func newMatcher(rfc5321Limits bool) *emailsyntax.Matcher {
	if rfc5321Limits {
		return emailsyntax.New(emailsyntax.WithRFC5321Limits())
	}
	return emailsyntax.New()
}
