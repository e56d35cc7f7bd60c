package db

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DefaultSQLitePath is where the embedded store lives when SQLITE_PATH is unset.
const DefaultSQLitePath = "data/chemcoat.db"

// Connect opens the relational store. DB_DRIVER selects between the local
// embedded sqlite file (default) and a hosted postgres database (DB_DSN).
func Connect() (*gorm.DB, error) {
	// .env is optional; environment variables may already be set.
	_ = godotenv.Load()

	driver := os.Getenv("DB_DRIVER")
	if driver == "" {
		driver = "sqlite"
	}

	switch driver {
	case "sqlite":
		path := os.Getenv("SQLITE_PATH")
		if path == "" {
			path = DefaultSQLitePath
		}
		return Open(sqlite.Open(path))
	case "postgres":
		dsn := os.Getenv("DB_DSN")
		if dsn == "" {
			return nil, fmt.Errorf("DB_DSN must be set when DB_DRIVER=postgres")
		}
		return Open(postgres.Open(dsn))
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q (expected sqlite or postgres)", driver)
	}
}

// SQLitePath returns the configured path of the embedded store file. The
// migration backup manager copies this file; the path is meaningful only for
// the sqlite driver.
func SQLitePath() string {
	if path := os.Getenv("SQLITE_PATH"); path != "" {
		return path
	}
	return DefaultSQLitePath
}

// Open opens a gorm connection with the project's shared configuration.
func Open(dialector gorm.Dialector) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	return db, nil
}
