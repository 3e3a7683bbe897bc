package config

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestMySQLConfig_DSN__Adds_Required_Options(t *testing.T) {
	conf := MySQLConfig{
		Host:     "localhost",
		Port:     3306,
		Database: "minicrm",
		Username: "root",
		Password: "1",
		Options: []MySQLOption{
			{Key: "charset", Value: "utf8mb4"},
		},
	}
	assert.Equal(t,
		"root:1@tcp(localhost:3306)/minicrm?charset=utf8mb4&parseTime=true&loc=UTC",
		conf.DSN())
}

func TestMySQLConfig_DSN__Keeps_Explicit_Options(t *testing.T) {
	conf := MySQLConfig{
		Host:     "db",
		Port:     3307,
		Database: "crm",
		Username: "user",
		Password: "pass",
		Options: []MySQLOption{
			{Key: "loc", Value: "Asia/Ho_Chi_Minh"},
		},
	}
	assert.Equal(t,
		"user:pass@tcp(db:3307)/crm?loc=Asia%2FHo_Chi_Minh&parseTime=true",
		conf.DSN())
}

func TestStreamConfig_Enabled(t *testing.T) {
	assert.Equal(t, true, StreamConfig{Driver: StreamDriverRedis}.Enabled())
	assert.Equal(t, true, StreamConfig{Driver: StreamDriverKafka}.Enabled())
	assert.Equal(t, false, StreamConfig{Driver: StreamDriverNone}.Enabled())
	assert.Equal(t, false, StreamConfig{}.Enabled())
}

func TestMemcacheConfig(t *testing.T) {
	conf := MemcacheConfig{Host: "localhost", Port: 11211}
	assert.Equal(t, "localhost:11211", conf.Addr())
	assert.Equal(t, 1, conf.GetNumConns())

	conf.NumConns = 4
	assert.Equal(t, 4, conf.GetNumConns())
}

func TestServerListen(t *testing.T) {
	s := ServerListen{Host: "localhost", Port: 8080}
	assert.Equal(t, ":8080", s.ListenString())
	assert.Equal(t, "localhost:8080", s.String())
}
