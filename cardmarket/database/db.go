package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net"
	"os"
	"strings"
	"time"

	"github.com/footycards/card-market/cardmarket/database/models"
	"github.com/footycards/card-market/cardmarket/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

const (
	defaultConnTimeout   = 5 * time.Second
	defaultMaxRetries    = 3
	defaultRetryInterval = time.Second
	slowQueryThreshold   = 250 * time.Millisecond
	schemaVersion        = 1 // bump when schema changes
)

type DBConfig struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	User         string `toml:"user"`
	Password     string `toml:"password"`
	Database     string `toml:"database"`
	SSLMode      string `toml:"ssl_mode"`
	PoolSize     int    `toml:"pool_size"`
	MaxIdleConns int    `toml:"max_idle_conns"`
	MaxLifetime  int    `toml:"max_lifetime"`
}

// DB holds a pgx pool for raw statements and a bun handle for models.
type DB struct {
	pool  *pgxpool.Pool
	bunDB *bun.DB
}

func New(ctx context.Context, cfg DBConfig) (*DB, error) {
	addr := net.JoinHostPort(cfg.Host, fmt.Sprintf("%d", cfg.Port))

	var err error
	for i := 0; i < defaultMaxRetries; i++ {
		var conn net.Conn
		conn, err = net.DialTimeout("tcp", addr, defaultConnTimeout)
		if err == nil {
			conn.Close()
			break
		}
		slog.Warn("Database not reachable yet",
			slog.String("type", "db"),
			slog.String("addr", addr),
			slog.Int("attempt", i+1))
		time.Sleep(defaultRetryInterval)
	}
	if err != nil {
		return nil, fmt.Errorf("database server unreachable after %d attempts: %w", defaultMaxRetries, err)
	}

	poolConfig, err := pgxpool.ParseConfig(buildConnString(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}

	if cfg.PoolSize > 0 {
		poolConfig.MaxConns = int32(cfg.PoolSize)
	}
	if cfg.MaxIdleConns > 0 {
		poolConfig.MinConns = int32(cfg.MaxIdleConns)
	}
	if cfg.MaxLifetime > 0 {
		poolConfig.MaxConnLifetime = time.Duration(cfg.MaxLifetime) * time.Second
	}

	return createDB(ctx, poolConfig, sslMode(cfg.SSLMode))
}

// NewFromDSN connects using a ready connection string.
func NewFromDSN(ctx context.Context, dsn string) (*DB, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}
	return createDB(ctx, poolConfig, sslMode(""))
}

func buildConnString(cfg DBConfig) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?connect_timeout=5&sslmode=%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database, sslMode(cfg.SSLMode),
	)
}

func sslMode(configured string) string {
	if configured != "" {
		return configured
	}
	if env := os.Getenv("PG_SSLMODE"); env != "" {
		return env
	}
	return "disable"
}

func createDB(ctx context.Context, poolConfig *pgxpool.Config, ssl string) (*DB, error) {
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	bunDB := newBunDB(poolConfig, ssl)
	bunDB.AddQueryHook(logger.NewQueryHook(slowQueryThreshold))
	return &DB{pool: pool, bunDB: bunDB}, nil
}

func newBunDB(poolConfig *pgxpool.Config, ssl string) *bun.DB {
	cc := poolConfig.ConnConfig
	dsn := fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		cc.User,
		cc.Password,
		net.JoinHostPort(cc.Host, fmt.Sprintf("%d", cc.Port)),
		cc.Database,
		ssl,
	)

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	if poolConfig.MaxConns > 0 {
		sqldb.SetMaxOpenConns(int(poolConfig.MaxConns))
	}
	return bun.NewDB(sqldb, pgdialect.New())
}

func (db *DB) GetPool() *pgxpool.Pool {
	return db.pool
}

func (db *DB) BunDB() *bun.DB {
	return db.bunDB
}

// appTables is ordered so that TRUNCATE ... CASCADE and creation both work.
var appTables = []string{
	"pack_openings",
	"market_sales_history",
	"market_listings",
	"user_cards",
	"card_serial_counters",
	"packs",
	"cards",
	"collections",
	"users",
}

// ResetAppTables truncates application tables for a fresh start.
func (db *DB) ResetAppTables(ctx context.Context) error {
	if db.bunDB == nil {
		return fmt.Errorf("bun DB not initialized")
	}

	rows, err := db.pool.Query(ctx, `SELECT table_name FROM information_schema.tables WHERE table_schema = 'public'`)
	if err != nil {
		return fmt.Errorf("failed to list tables: %w", err)
	}
	present, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return fmt.Errorf("failed to read tables: %w", err)
	}

	var toTruncate []string
	for _, t := range appTables {
		for _, p := range present {
			if p == t {
				toTruncate = append(toTruncate, fmt.Sprintf("%q", t))
				break
			}
		}
	}

	if len(toTruncate) == 0 {
		slog.Warn("No app tables found to reset", slog.String("type", "db"))
		return nil
	}

	stmt := "TRUNCATE TABLE " + strings.Join(toTruncate, ", ") + " RESTART IDENTITY CASCADE;"
	if _, err := db.ExecWithLog(ctx, stmt); err != nil {
		return fmt.Errorf("failed to truncate tables: %w", err)
	}

	slog.Info("App tables truncated", slog.String("type", "db"), slog.Any("tables", toTruncate))
	return nil
}

func (db *DB) ExecWithLog(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	start := time.Now()
	result, err := db.pool.Exec(ctx, sql, args...)
	logger.LogQuery(sql, time.Since(start), err)
	return result, err
}

func (db *DB) QueryWithLog(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	start := time.Now()
	rows, err := db.pool.Query(ctx, sql, args...)
	logger.LogQuery(sql, time.Since(start), err)
	return rows, err
}

func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
	if db.bunDB != nil {
		db.bunDB.Close()
	}
}

// Ping verifies both database connections are working
func (db *DB) Ping(ctx context.Context) error {
	if err := db.pool.Ping(ctx); err != nil {
		return fmt.Errorf("pgxpool ping failed: %w", err)
	}
	if err := db.bunDB.PingContext(ctx); err != nil {
		return fmt.Errorf("bun ping failed: %w", err)
	}
	return nil
}

// InitializeSchema creates all tables, constraints and indexes. It is idempotent.
func (db *DB) InitializeSchema(ctx context.Context) error {
	if os.Getenv("DB_FAST_INIT") == "1" {
		if err := db.ensureAppMeta(ctx); err == nil {
			if v, _ := db.getAppMeta(ctx, "schema_version"); v == fmt.Sprintf("%d", schemaVersion) {
				slog.Info("Fast DB init: schema up-to-date, skipping initialization",
					slog.String("type", "db"),
					slog.Int("schema_version", schemaVersion))
				return nil
			}
		}
	}

	tables := []any{
		(*models.Collection)(nil),
		(*models.Card)(nil),
		(*models.User)(nil),
		(*models.CardSerialCounter)(nil),
		(*models.UserCard)(nil),
		(*models.Pack)(nil),
		(*models.MarketListing)(nil),
		(*models.TradeRecord)(nil),
		(*models.PackOpening)(nil),
	}

	for _, model := range tables {
		if _, err := db.bunDB.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	constraints := []struct {
		table, name, definition string
	}{
		{"users", "users_balance_non_negative", "CHECK (balance >= 0)"},
		{"collections", "collections_opened_within_total", "CHECK (cards_opened >= 0 AND cards_opened <= total_cards)"},
		{"user_cards", "user_cards_serial_positive", "CHECK (serial_number > 0)"},
		{"user_cards", "user_cards_card_serial_unique", "UNIQUE (card_id, serial_number)"},
		{"user_cards", "user_cards_card_fk", "FOREIGN KEY (card_id) REFERENCES cards(id)"},
		{"user_cards", "user_cards_user_fk", "FOREIGN KEY (user_id) REFERENCES users(user_id)"},
		{"cards", "cards_collection_fk", "FOREIGN KEY (collection_id) REFERENCES collections(id)"},
		{"market_listings", ListingPriceCheck, "CHECK (price > 0)"},
		{"market_listings", "market_listings_status_valid", "CHECK (status IN ('active', 'sold', 'removed'))"},
		{"market_listings", "market_listings_user_card_fk", "FOREIGN KEY (user_card_id) REFERENCES user_cards(id)"},
	}

	for _, c := range constraints {
		if err := db.addConstraint(ctx, c.table, c.name, c.definition); err != nil {
			return err
		}
	}

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_cards_rarity ON cards(rarity);",
		"CREATE INDEX IF NOT EXISTS idx_cards_collection_rarity ON cards(collection_id, rarity);",
		"CREATE INDEX IF NOT EXISTS idx_user_cards_user_id ON user_cards(user_id);",
		"CREATE INDEX IF NOT EXISTS idx_user_cards_user_card ON user_cards(user_id, card_id);",
		// one active listing per owned copy
		"CREATE UNIQUE INDEX IF NOT EXISTS " + ActiveListingIndex + " ON market_listings(user_card_id) WHERE status = 'active';",
		"CREATE INDEX IF NOT EXISTS idx_market_listings_active ON market_listings(created_at DESC) WHERE status = 'active';",
		"CREATE INDEX IF NOT EXISTS idx_market_listings_seller ON market_listings(seller_id, status);",
		"CREATE INDEX IF NOT EXISTS idx_sales_history_user_card ON market_sales_history(user_card_id, sold_at DESC);",
		"CREATE INDEX IF NOT EXISTS idx_sales_history_seller ON market_sales_history(seller_id, sold_at DESC);",
		"CREATE INDEX IF NOT EXISTS idx_sales_history_buyer ON market_sales_history(buyer_id, sold_at DESC);",
		"CREATE INDEX IF NOT EXISTS idx_sales_history_card ON market_sales_history(card_id, sold_at DESC);",
		"CREATE INDEX IF NOT EXISTS idx_pack_openings_user ON pack_openings(user_id, opened_at DESC);",
	}

	for _, idx := range indexes {
		if _, err := db.ExecWithLog(ctx, idx); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	if err := db.ensureAppMeta(ctx); err == nil {
		_ = db.setAppMeta(ctx, "schema_version", fmt.Sprintf("%d", schemaVersion))
	}

	slog.Info("Database schema initialized",
		slog.String("type", "db"),
		slog.Int("schema_version", schemaVersion))
	return nil
}

func (db *DB) addConstraint(ctx context.Context, table, name, definition string) error {
	stmt := fmt.Sprintf(`
		DO $$
		BEGIN
			IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = '%s') THEN
				ALTER TABLE %s ADD CONSTRAINT %s %s;
			END IF;
		END $$;`, name, table, name, definition)

	if _, err := db.ExecWithLog(ctx, stmt); err != nil {
		return fmt.Errorf("failed to add constraint %s: %w", name, err)
	}
	return nil
}

func (db *DB) ensureAppMeta(ctx context.Context) error {
	_, err := db.ExecWithLog(ctx, `CREATE TABLE IF NOT EXISTS app_meta (key TEXT PRIMARY KEY, value TEXT)`)
	return err
}

func (db *DB) getAppMeta(ctx context.Context, key string) (string, error) {
	var v string
	if err := db.pool.QueryRow(ctx, `SELECT value FROM app_meta WHERE key = $1`, key).Scan(&v); err != nil {
		return "", err
	}
	return v, nil
}

func (db *DB) setAppMeta(ctx context.Context, key, value string) error {
	_, err := db.pool.Exec(ctx, `INSERT INTO app_meta(key, value) VALUES($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`, key, value)
	return err
}
