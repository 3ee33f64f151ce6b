package database

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	_ "github.com/lib/pq" // Driver postgres

	"github.com/IanAndy202/Hotel-App/config"
)

type Database interface {
	GetDB() *sql.DB
	Close() error
}

type postgres struct {
	db *sql.DB
}

func NewPostgresDatabase(ctx context.Context, cfg *config.Config) (Database, error) {
	db, err := sql.Open("postgres", cfg.PostgresDSN())
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, err
	}

	slog.Info("connected to postgres", "host", cfg.Database.Host, "port", cfg.Database.Port, "dbname", cfg.Database.DBName)

	return &postgres{db: db}, nil
}

func (p *postgres) GetDB() *sql.DB {
	return p.db
}

func (p *postgres) Close() error {
	return p.db.Close()
}
