package database

import (
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sandeepkv93/go-service-template/internal/config"
)

// Open picks the driver from the DATABASE_URL scheme: sqlite URLs get the
// sqlite driver, everything else goes to postgres.
func Open(cfg *config.Config) (*gorm.DB, error) {
	logMode := logger.Warn
	if cfg.DatabaseEcho {
		logMode = logger.Info
	}
	gormCfg := &gorm.Config{Logger: logger.Default.LogMode(logMode)}

	if dsn, ok := sqliteDSN(cfg.DatabaseURL); ok {
		return gorm.Open(sqlite.Open(dsn), gormCfg)
	}
	return gorm.Open(postgres.Open(cfg.DatabaseURL), gormCfg)
}

// sqliteDSN strips the sqlite URL scheme, accepting the sqlite:///path form
// as well as the bare sqlite: prefix.
func sqliteDSN(url string) (string, bool) {
	for _, prefix := range []string{"sqlite:///", "sqlite://", "sqlite:"} {
		if strings.HasPrefix(url, prefix) {
			dsn := strings.TrimPrefix(url, prefix)
			if dsn == "" {
				dsn = "file::memory:?cache=shared"
			}
			return dsn, true
		}
	}
	return "", false
}
