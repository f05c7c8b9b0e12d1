package reports

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/status-im/crypto-insight/config"
	"github.com/status-im/crypto-insight/interfaces"
)

const schema = `CREATE TABLE IF NOT EXISTS reports (
	id UUID PRIMARY KEY,
	symbol TEXT NOT NULL,
	chain TEXT NOT NULL,
	current_price NUMERIC,
	price_change_24h NUMERIC,
	price_change_percent NUMERIC,
	high_24h NUMERIC,
	low_24h NUMERIC,
	volume NUMERIC,
	source TEXT NOT NULL,
	summary TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
)`

const insertReport = `INSERT INTO reports (
	id, symbol, chain, current_price, price_change_24h, price_change_percent,
	high_24h, low_24h, volume, source, summary, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

// PostgresStore persists reports in the reports table. Rows are only ever inserted.
type PostgresStore struct {
	db  *sql.DB
	log *logrus.Entry
}

// NewPostgresStore wraps an open database handle
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{
		db:  db,
		log: logrus.WithField("component", "ReportStore"),
	}
}

// Open connects to Postgres using the database configuration and checks the connection
func Open(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	pingCtx := ctx
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// EnsureSchema creates the reports table when missing
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create reports table: %w", err)
	}
	return nil
}

// Save implements interfaces.IReportStore
func (s *PostgresStore) Save(ctx context.Context, report interfaces.Report) error {
	start := time.Now()
	_, err := s.db.ExecContext(ctx, insertReport,
		report.ID,
		report.Symbol,
		report.Chain.String(),
		report.CurrentPrice,
		report.PriceChange24h,
		report.PriceChangePercent,
		report.High24h,
		report.Low24h,
		report.Volume,
		report.Source,
		report.Summary,
		report.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert report %s: %w", report.ID, err)
	}

	s.log.WithFields(logrus.Fields{"report_id": report.ID, "symbol": report.Symbol}).
		Debugf("report saved in %s", time.Since(start))
	return nil
}

// Ping implements interfaces.IReportStore
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Start implements core.Interface
func (s *PostgresStore) Start(ctx context.Context) error {
	return s.EnsureSchema(ctx)
}

// Stop implements core.Interface
func (s *PostgresStore) Stop() {
	if err := s.db.Close(); err != nil {
		s.log.Warnf("close database: %v", err)
	}
}
