package db

import (
	"errors"  // Error construction
	"strings" // URL scheme detection
	"time"    // Slow query threshold and clock

	"github.com/glebarez/sqlite" // Pure Go SQLite dialect for GORM
	"github.com/sirupsen/logrus" // Logrus for structured logging
	"gorm.io/driver/mysql"       // MySQL driver for GORM
	"gorm.io/driver/postgres"    // Postgres driver for GORM
	"gorm.io/gorm"               // GORM ORM library
	"gorm.io/gorm/logger"        // GORM logger interface
)

// ErrEmptyURL is returned when no database URL is configured
var ErrEmptyURL = errors.New("database url is empty")

// Dialector picks the GORM dialect from the scheme of the database URL.
// postgres:// and postgresql:// go to Postgres, mysql:// to MySQL, and
// sqlite:// or a bare file path to SQLite.
func Dialector(databaseURL string) (gorm.Dialector, error) {
	switch {
	case databaseURL == "":
		return nil, ErrEmptyURL
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		return postgres.Open(databaseURL), nil
	case strings.HasPrefix(databaseURL, "mysql://"):
		return mysql.Open(strings.TrimPrefix(databaseURL, "mysql://")), nil
	default:
		return sqliteDialector(strings.TrimPrefix(databaseURL, "sqlite://")), nil
	}
}

// sqliteDialector turns on foreign key enforcement for every pooled connection
func sqliteDialector(path string) gorm.Dialector {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	dsn := path + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	return &sqlite.Dialector{DriverName: sqlite.DriverName, DSN: dsn}
}

// Open connects to the database behind databaseURL
func Open(databaseURL string) (*gorm.DB, error) {
	dialector, err := Dialector(databaseURL)
	if err != nil {
		return nil, err
	}
	return gorm.Open(dialector, &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() }, // Timestamps are stored in UTC
		Logger: logger.New(logrus.StandardLogger(), logger.Config{
			SlowThreshold:             200 * time.Millisecond, // Log queries slower than this
			LogLevel:                  logger.Warn,            // Only warnings and errors
			IgnoreRecordNotFoundError: true,                   // Not found is a normal outcome
		}),
	})
}
