package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"grant-portal/internal/config"
)

var testDB *sql.DB

// TestMain подключается к тестовой БД из PORTAL_TEST_DSN. Без неё тесты,
// которым нужна база, пропускаются.
func TestMain(m *testing.M) {
	dsn := os.Getenv("PORTAL_TEST_DSN")
	if dsn != "" {
		db, err := sql.Open("mysql", dsn)
		if err != nil {
			panic(fmt.Errorf("не удалось подключиться к тестовой БД: %w", err))
		}

		if err := db.Ping(); err != nil {
			panic(fmt.Errorf("ping failed: %w", err))
		}

		s := &Storage{db: db}
		if err := s.Migrate(context.Background()); err != nil {
			panic(err)
		}

		testDB = db
	}

	code := m.Run()

	if testDB != nil {
		testDB.Close()
	}

	os.Exit(code)
}

func requireDB(t *testing.T) *Storage {
	t.Helper()
	if testDB == nil {
		t.Skip("PORTAL_TEST_DSN is not set")
	}
	return &Storage{db: testDB}
}

func TestDSN(t *testing.T) {
	dsn := DSN(config.Config{
		DBUser:     "portal",
		DBPassword: "secret",
		DBHost:     "db",
		DBPort:     3307,
		DBName:     "grants",
		ParseTime:  true,
	})

	assert.Contains(t, dsn, "portal:secret@tcp(db:3307)/grants")
	assert.Contains(t, dsn, "parseTime=true")
}
