package database

import (
	"context"
	"fmt"
	"networth/src/config"
	aws_handler "networth/src/utils/aws"

	"github.com/jackc/pgx/v5/pgxpool"
)

func SetupDB(cfg *config.Config) (*pgxpool.Pool, error) {
	password := cfg.Databases.SQL.Password

	// Production deployments keep the database password in Secrets Manager
	if cfg.AWS.DBSecretID != "" {
		handler, err := aws_handler.NewAWSHandler(cfg.AWS.Region)
		if err != nil {
			return nil, err
		}
		password, err = handler.SecretManager.GetSecretValue(cfg.AWS.DBSecretID)
		if err != nil {
			return nil, fmt.Errorf("failed to read db secret %s: %w", cfg.AWS.DBSecretID, err)
		}
	}

	dsn := cfg.Databases.SQL.ConnectionString
	if dsn == "" {
		dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.Databases.SQL.Host,
			cfg.Databases.SQL.Username,
			password,
			cfg.Databases.SQL.Database,
			cfg.Databases.SQL.Port)
	}

	// Create connection pool
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	// One connection is pinned by the advisory run lock while a recompute is
	// in flight, so keep at least two around.
	poolConfig.MaxConns = 5
	poolConfig.MinConns = 2

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %v\nPlease ensure the database is running and accessible with the provided credentials", err)
	}

	// Test the connection
	if err := pool.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to ping database: %v\nPlease check your database configuration and ensure it's running", err)
	}
	return pool, nil
}
