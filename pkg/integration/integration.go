package integration

import (
	"context"
	"fmt"
	"github.com/QuangTung97/minicrm/config"
	"github.com/QuangTung97/minicrm/pkg/migration"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"io/ioutil"
	"os"
	"path"
	"sync"

	// for integration test, must not be imported in any main.go
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// TestCase ...
type TestCase struct {
	DB    *sqlx.DB
	Redis *redis.Client
	Conf  config.Config
}

var initOnce sync.Once

var globalConf config.Config
var globalDB *sqlx.DB
var globalRedis *redis.Client

// children before parents, foreign keys forbid the other order
var allTables = []string{
	"delivery_log",
	"campaign",
	"segment",
	"orders",
	"customer",
}

// NewTestCase ...
func NewTestCase() *TestCase {
	initOnce.Do(func() {
		rootDir := findRootDir()

		conf := config.LoadTestConfig(rootDir)
		migration.MigrateUpForTesting(rootDir, conf.MySQL.DSN())

		db := conf.MySQL.MustConnect(zap.NewNop())

		globalConf = conf
		globalDB = db
		globalRedis = conf.Redis.NewClient()
	})

	return &TestCase{
		Conf:  globalConf,
		DB:    globalDB,
		Redis: globalRedis,
	}
}

// Truncate deletes all rows of the tables, DELETE is used since TRUNCATE is rejected on referenced tables
func (tc *TestCase) Truncate(tables ...string) {
	for _, table := range tables {
		tc.DB.MustExec(fmt.Sprintf("DELETE FROM %s", table))
	}
}

// TruncateAll ...
func (tc *TestCase) TruncateAll() {
	tc.Truncate(allTables...)
}

// FlushRedis clears the test redis database
func (tc *TestCase) FlushRedis() {
	err := tc.Redis.FlushDB(context.Background()).Err()
	if err != nil {
		panic(err)
	}
}

func findRootDir() string {
	workdir, err := os.Getwd()
	if err != nil {
		panic(err)
	}

	directory := workdir
	for {
		files, err := ioutil.ReadDir(directory)
		if err != nil {
			panic(err)
		}
		for _, file := range files {
			if file.IsDir() {
				continue
			}
			if file.Name() == "go.mod" {
				return directory
			}
		}

		directory = path.Dir(directory)
	}
}
