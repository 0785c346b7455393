package migrations

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"testing/fstest"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/source"
)

type testLogger struct {
	infos  []string
	warns  []string
	errors []string
}

func (l *testLogger) Info(msg string, _ ...any)  { l.infos = append(l.infos, msg) }
func (l *testLogger) Warn(msg string, _ ...any)  { l.warns = append(l.warns, msg) }
func (l *testLogger) Error(msg string, _ ...any) { l.errors = append(l.errors, msg) }

func (l *testLogger) hasInfo(msg string) bool {
	for _, m := range l.infos {
		if m == msg {
			return true
		}
	}
	return false
}

type fakeMigrator struct {
	upErr error
}

func (m *fakeMigrator) Up() error { return m.upErr }
func (m *fakeMigrator) Close() (error, error) {
	return nil, nil
}

type blockingMigrator struct {
	closeCh   chan struct{}
	closeOnce sync.Once
	closed    atomic.Bool
}

func newBlockingMigrator() *blockingMigrator {
	return &blockingMigrator{closeCh: make(chan struct{})}
}

func (m *blockingMigrator) Up() error {
	<-m.closeCh
	return nil
}

func (m *blockingMigrator) Close() (error, error) {
	m.closeOnce.Do(func() {
		m.closed.Store(true)
		close(m.closeCh)
	})
	return nil, nil
}

var testFS = fstest.MapFS{
	"sqlite3/000001_create_users.up.sql":    {Data: []byte("CREATE TABLE users (id INTEGER);")},
	"sqlite3/000001_create_users.down.sql":  {Data: []byte("DROP TABLE users;")},
	"postgres/000001_create_users.up.sql":   {Data: []byte("CREATE TABLE users (id BIGSERIAL);")},
	"postgres/000001_create_users.down.sql": {Data: []byte("DROP TABLE users;")},
}

// stubFactories swaps all three seams and restores them when the test ends.
func stubFactories(t *testing.T, driver func(*sql.DB, Config) (database.Driver, error), mig func(source.Driver, string, database.Driver) (migrator, error)) {
	t.Helper()

	origDriverFactory := driverFactory
	origMigratorFactory := migratorFactory
	origSourceFactory := sourceFactory
	t.Cleanup(func() {
		driverFactory = origDriverFactory
		migratorFactory = origMigratorFactory
		sourceFactory = origSourceFactory
	})

	sourceFactory = func(_ fs.FS, _ string) (source.Driver, error) { return nil, nil }
	driverFactory = driver
	migratorFactory = mig
}

func noDriver(_ *sql.DB, _ Config) (database.Driver, error) { return nil, nil }

func TestUp_NilDB(t *testing.T) {
	if err := Up(context.Background(), nil, Config{FS: testFS}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestUp_NilFS(t *testing.T) {
	if err := Up(context.Background(), &sql.DB{}, Config{}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestUp_ContextAlreadyCancelled_ReturnsCtxErr(t *testing.T) {
	called := atomic.Bool{}
	stubFactories(t,
		func(_ *sql.DB, _ Config) (database.Driver, error) {
			called.Store(true)
			return nil, nil
		},
		func(_ source.Driver, _ string, _ database.Driver) (migrator, error) {
			called.Store(true)
			return &fakeMigrator{}, nil
		},
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Up(ctx, &sql.DB{}, Config{FS: testFS})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if called.Load() {
		t.Fatalf("expected no driver/migrator creation when ctx already cancelled")
	}
}

func TestUp_ContextDeadlineExceeded_ReturnsCtxErr_AndCloses(t *testing.T) {
	block := newBlockingMigrator()
	stubFactories(t, noDriver, func(_ source.Driver, _ string, _ database.Driver) (migrator, error) {
		return block, nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := Up(ctx, &sql.DB{}, Config{FS: testFS})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected context.DeadlineExceeded, got %v", err)
	}
	if !block.closed.Load() {
		t.Fatalf("expected migrator.Close to be attempted on ctx cancellation")
	}
}

func TestUp_ErrNoChange_ReturnsNil(t *testing.T) {
	logger := &testLogger{}
	stubFactories(t, noDriver, func(_ source.Driver, _ string, _ database.Driver) (migrator, error) {
		return &fakeMigrator{upErr: migrate.ErrNoChange}, nil
	})

	if err := Up(context.Background(), &sql.DB{}, Config{FS: testFS, Logger: logger}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !logger.hasInfo("No migrations to apply") {
		t.Fatalf("expected 'No migrations to apply' log")
	}
}

func TestUp_Success_LogsApplied(t *testing.T) {
	logger := &testLogger{}
	stubFactories(t, noDriver, func(_ source.Driver, _ string, _ database.Driver) (migrator, error) {
		return &fakeMigrator{}, nil
	})

	if err := Up(context.Background(), &sql.DB{}, Config{FS: testFS, Logger: logger}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !logger.hasInfo("Migrations applied successfully") {
		t.Fatalf("expected 'Migrations applied successfully' log")
	}
}

func TestUp_DefaultsDialectAndTable(t *testing.T) {
	var gotCfg Config
	var gotDialect string
	stubFactories(t,
		func(_ *sql.DB, cfg Config) (database.Driver, error) {
			gotCfg = cfg
			return nil, nil
		},
		func(_ source.Driver, dialect string, _ database.Driver) (migrator, error) {
			gotDialect = dialect
			return &fakeMigrator{upErr: migrate.ErrNoChange}, nil
		},
	)

	if err := Up(context.Background(), &sql.DB{}, Config{FS: testFS}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if gotCfg.MigrationsTable != "schema_migrations" {
		t.Fatalf("expected migrations table to be defaulted, got %q", gotCfg.MigrationsTable)
	}
	if gotDialect != DialectPostgres {
		t.Fatalf("expected postgres dialect by default, got %q", gotDialect)
	}
}

func TestUp_ReadsDialectSubdirectory(t *testing.T) {
	origDriverFactory := driverFactory
	origMigratorFactory := migratorFactory
	t.Cleanup(func() {
		driverFactory = origDriverFactory
		migratorFactory = origMigratorFactory
	})

	var first uint
	driverFactory = noDriver
	migratorFactory = func(src source.Driver, _ string, _ database.Driver) (migrator, error) {
		v, err := src.First()
		if err != nil {
			return nil, err
		}
		first = v
		return &fakeMigrator{upErr: migrate.ErrNoChange}, nil
	}

	if err := Up(context.Background(), &sql.DB{}, Config{FS: testFS, Dialect: " SQLite3 "}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if first != 1 {
		t.Fatalf("expected first migration version 1, got %d", first)
	}
}

func TestUp_MissingDialectDirectory(t *testing.T) {
	err := Up(context.Background(), &sql.DB{}, Config{FS: fstest.MapFS{}, Dialect: DialectSQLite})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "migrations: source sqlite3") {
		t.Fatalf("expected wrapped source error, got %v", err)
	}
}

func TestUp_MigratorInitError(t *testing.T) {
	stubFactories(t, noDriver, func(_ source.Driver, _ string, _ database.Driver) (migrator, error) {
		return nil, errors.New("boom")
	})

	err := Up(context.Background(), &sql.DB{}, Config{FS: testFS})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "migrations: init") {
		t.Fatalf("expected wrapped init error, got %v", err)
	}
}

func TestUp_UnsupportedDialect(t *testing.T) {
	origSourceFactory := sourceFactory
	t.Cleanup(func() { sourceFactory = origSourceFactory })
	sourceFactory = func(_ fs.FS, _ string) (source.Driver, error) { return nil, nil }

	err := Up(context.Background(), &sql.DB{}, Config{FS: testFS, Dialect: "mysql"})
	if err == nil || !strings.Contains(err.Error(), "unsupported dialect") {
		t.Fatalf("expected unsupported dialect error, got %v", err)
	}
}
