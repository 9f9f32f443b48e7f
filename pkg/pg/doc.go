// Package pg bootstraps PostgreSQL access on top of pgx/v5.
//
// Connect opens a *pgxpool.Pool from Config and retries while the database
// is starting. Migrate applies goose migrations from an fs.FS. Healthcheck
// returns a readiness probe. IsDuplicateKeyError and friends classify driver
// errors by SQLSTATE so repositories can map them to domain errors.
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, user.Migrations, cfg, log); err != nil {
//		return err
//	}
package pg
