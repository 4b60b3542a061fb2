package db

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"path/filepath"
	"reflect"
	"sync"
	"testing"
	"time"
)

type nopDriver struct{}

func (d nopDriver) Open(name string) (driver.Conn, error) {
	return nopConn{}, nil
}

type nopConn struct{}

func (nopConn) Prepare(query string) (driver.Stmt, error) { return nopStmt{}, nil }
func (nopConn) Close() error                              { return nil }
func (nopConn) Begin() (driver.Tx, error)                 { return nopTx{}, nil }
func (nopConn) Ping(ctx context.Context) error            { return nil }

type nopStmt struct{}

func (nopStmt) Close() error                                    { return nil }
func (nopStmt) NumInput() int                                   { return -1 }
func (nopStmt) Exec(args []driver.Value) (driver.Result, error) { return driver.RowsAffected(0), nil }
func (nopStmt) Query(args []driver.Value) (driver.Rows, error)  { return nil, errors.New("nop driver: query unsupported") }

type nopTx struct{}

func (nopTx) Commit() error   { return nil }
func (nopTx) Rollback() error { return nil }

var registerTestDriverOnce sync.Once

func withTestDriver(t *testing.T) *[]string {
	t.Helper()
	registerTestDriverOnce.Do(func() {
		sql.Register("dbtest", nopDriver{})
	})
	var drivers []string
	prev := openDB
	openDB = func(name, dsn string) (*sql.DB, error) {
		drivers = append(drivers, name)
		return sql.Open("dbtest", dsn)
	}
	t.Cleanup(func() { openDB = prev })
	return &drivers
}

func TestOptionsFromEnvAppliesOverrides(t *testing.T) {
	withTestDriver(t)

	t.Setenv("DB_MAX_OPEN_CONNS", "7")
	t.Setenv("DB_MAX_IDLE_CONNS", "3")
	t.Setenv("DB_CONN_MAX_LIFETIME", "20m")
	t.Setenv("DB_CONN_MAX_IDLE_TIME", "45s")
	t.Setenv("DB_PING_TIMEOUT", "1s")

	opts := OptionsFromEnv(DefaultServerOptions())
	db, err := Connect(context.Background(), "postgres://ignored", opts)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer db.Close()

	if stats := db.Stats(); stats.MaxOpenConnections != 7 {
		t.Fatalf("expected MaxOpenConnections=7, got %d", stats.MaxOpenConnections)
	}
	if opts.MaxIdleConns != 3 || opts.ConnMaxLifetime != 20*time.Minute || opts.ConnMaxIdleTime != 45*time.Second || opts.PingTimeout != time.Second {
		t.Fatalf("unexpected options %+v", opts)
	}
}

func TestOptionsFromEnvIgnoresInvalid(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "lots")
	t.Setenv("DB_PING_TIMEOUT", "soon")
	if got := OptionsFromEnv(DefaultMigrateOptions()); got != DefaultMigrateOptions() {
		t.Fatalf("expected defaults, got %+v", got)
	}
}

func TestOpenDispatchesOnURL(t *testing.T) {
	drivers := withTestDriver(t)

	db, dialect, err := Open(context.Background(), "postgres://user@host/db", DefaultServerOptions())
	if err != nil {
		t.Fatalf("Open postgres: %v", err)
	}
	db.Close()
	if dialect != DialectPostgres {
		t.Fatalf("expected postgres, got %q", dialect)
	}

	db, dialect, err = Open(context.Background(), "sqlite:"+filepath.Join(t.TempDir(), "diag.db"), DefaultServerOptions())
	if err != nil {
		t.Fatalf("Open sqlite: %v", err)
	}
	defer db.Close()
	if dialect != DialectSQLite {
		t.Fatalf("expected sqlite, got %q", dialect)
	}
	if db.Stats().MaxOpenConnections != 1 {
		t.Fatalf("expected single sqlite connection")
	}
	if !reflect.DeepEqual(*drivers, []string{"pgx", "sqlite"}) {
		t.Fatalf("unexpected drivers %v", *drivers)
	}
}

func TestConnectRejectsEmpty(t *testing.T) {
	if _, err := Connect(context.Background(), " ", DefaultServerOptions()); err == nil {
		t.Fatalf("expected error for empty url")
	}
	if _, err := ConnectSQLite(context.Background(), ""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestMigrationsEmbeddedPerDialect(t *testing.T) {
	for _, d := range []Dialect{DialectPostgres, DialectSQLite} {
		names, err := MigrationNames(d)
		if err != nil {
			t.Fatalf("%s: %v", d, err)
		}
		if len(names) == 0 || names[0] != "00001_create_diagnostics.sql" {
			t.Fatalf("%s: unexpected migrations %v", d, names)
		}
	}
	if err := RunMigrations(context.Background(), nil, DialectPostgres); err != nil {
		t.Fatalf("nil db should be a no-op, got %v", err)
	}
}
