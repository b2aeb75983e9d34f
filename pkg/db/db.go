package db

import (
	"github.com/glebarez/sqlite"
	"github.com/smallbiznis/rims/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Module provides the gorm handle backed by the local SQLite file.
var Module = fx.Module("db", fx.Provide(Open))

// Open opens the SQLite store. The driver is pure Go, so the desktop
// build needs no cgo toolchain. TranslateError lets callers match
// gorm.ErrDuplicatedKey instead of driver-specific strings.
func Open(cfg config.Config, logger *zap.Logger) (*gorm.DB, error) {
	gdb, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("database opened", zap.String("path", cfg.DBPath))
	return gdb, nil
}
