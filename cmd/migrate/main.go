package main

import (
	"github.com/QuangTung97/minicrm/config"
	"github.com/QuangTung97/minicrm/pkg/migration"
	"go.uber.org/zap"
	"os"

	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	conf := config.Load()
	logger := config.NewLogger(conf.Log)
	defer func() { _ = logger.Sync() }()

	cmd := migration.MigrateCommand(conf.MySQL.DSN())
	if err := cmd.Execute(); err != nil {
		logger.Error("migrate failed", zap.String("database", conf.MySQL.Database), zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}
