// Package pg opens pgx connection pools with retries, applies embedded goose
// migrations and classifies common PostgreSQL errors.
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	if err := pg.Migrate(ctx, pool, auth.Migrations, "migrations", cfg, log); err != nil {
//	    return err
//	}
package pg
