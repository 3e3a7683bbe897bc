package config

import (
	"fmt"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"strings"
	"time"
)

// Config is the root config of all binaries
type Config struct {
	Env string `mapstructure:"env"`

	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	MySQL    MySQLConfig    `mapstructure:"mysql"`
	Memcache MemcacheConfig `mapstructure:"memcache"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Kafka    KafkaConfig    `mapstructure:"kafka"`
	Jaeger   JaegerConfig   `mapstructure:"jaeger"`

	Stream   StreamConfig   `mapstructure:"stream"`
	Pipeline PipelineConfig `mapstructure:"pipeline"`
	Vendor   VendorConfig   `mapstructure:"vendor"`
	Stats    StatsConfig    `mapstructure:"stats"`
}

// ServerListen ...
type ServerListen struct {
	Host string `mapstructure:"host"`
	Port uint16 `mapstructure:"port"`
}

// ListenString for net.Listen / http.Server
func (s ServerListen) ListenString() string {
	return fmt.Sprintf(":%d", s.Port)
}

// String ...
func (s ServerListen) String() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// ServerConfig ...
type ServerConfig struct {
	HTTP ServerListen `mapstructure:"http"`
}

// JaegerConfig ...
type JaegerConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	URL     string `mapstructure:"url"`
}

// StreamDriver selects the durable log implementation
type StreamDriver string

const (
	// StreamDriverRedis uses Redis Streams
	StreamDriverRedis StreamDriver = "redis"

	// StreamDriverKafka uses Kafka topics
	StreamDriverKafka StreamDriver = "kafka"

	// StreamDriverNone disables the durable log, every pipeline step runs inline
	StreamDriverNone StreamDriver = "none"
)

// StreamConfig ...
type StreamConfig struct {
	Driver StreamDriver `mapstructure:"driver"`
}

// Enabled reports whether a durable log is configured
func (c StreamConfig) Enabled() bool {
	return c.Driver != StreamDriverNone && c.Driver != ""
}

// PipelineConfig for consumer loops
type PipelineConfig struct {
	ConsumerName string `mapstructure:"consumer_name"`

	IngestBatchSize int           `mapstructure:"ingest_batch_size"`
	IngestBlock     time.Duration `mapstructure:"ingest_block"`
	IngestWorkers   int           `mapstructure:"ingest_workers"`

	SendBatchSize int           `mapstructure:"send_batch_size"`
	SendBlock     time.Duration `mapstructure:"send_block"`

	ReceiptBatchSize int           `mapstructure:"receipt_batch_size"`
	ReceiptBlock     time.Duration `mapstructure:"receipt_block"`

	RetryDelay time.Duration `mapstructure:"retry_delay"`

	NameCacheSize int           `mapstructure:"name_cache_size"`
	NameCacheTTL  time.Duration `mapstructure:"name_cache_ttl"`

	// SharedNameCache puts a memcached read-through behind the local name cache
	SharedNameCache bool `mapstructure:"shared_name_cache"`
}

// VendorConfig ...
type VendorConfig struct {
	URL              string        `mapstructure:"url"`
	Timeout          time.Duration `mapstructure:"timeout"`
	SuccessRate      float64       `mapstructure:"success_rate"`
	CallbackReceipts bool          `mapstructure:"callback_receipts"`
}

// SnapshotStoreType ...
type SnapshotStoreType string

const (
	// SnapshotStoreLocal keeps the stats snapshot in process memory
	SnapshotStoreLocal SnapshotStoreType = "local"

	// SnapshotStoreMemcache shares the stats snapshot through memcached
	SnapshotStoreMemcache SnapshotStoreType = "memcache"
)

// StatsConfig ...
type StatsConfig struct {
	TTL            time.Duration     `mapstructure:"ttl"`
	Interval       time.Duration     `mapstructure:"interval"`
	SnapshotStore  SnapshotStoreType `mapstructure:"snapshot_store"`
	LocalCacheSize int               `mapstructure:"local_cache_size"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "local")
	v.SetDefault("stream.driver", string(StreamDriverRedis))

	v.SetDefault("pipeline.consumer_name", "worker-1")
	v.SetDefault("pipeline.ingest_batch_size", 100)
	v.SetDefault("pipeline.ingest_block", 5*time.Second)
	v.SetDefault("pipeline.ingest_workers", 4)
	v.SetDefault("pipeline.send_batch_size", 50)
	v.SetDefault("pipeline.send_block", 5*time.Second)
	v.SetDefault("pipeline.receipt_batch_size", 200)
	v.SetDefault("pipeline.receipt_block", 2*time.Second)
	v.SetDefault("pipeline.retry_delay", time.Second)
	v.SetDefault("pipeline.name_cache_size", 16*1024*1024)
	v.SetDefault("pipeline.name_cache_ttl", time.Minute)

	v.SetDefault("vendor.url", "http://localhost:8080/vendor/send")
	v.SetDefault("vendor.timeout", 5*time.Second)
	v.SetDefault("vendor.success_rate", 0.9)

	v.SetDefault("stats.ttl", 4*time.Second)
	v.SetDefault("stats.interval", 3*time.Second)
	v.SetDefault("stats.snapshot_store", string(SnapshotStoreLocal))
	v.SetDefault("stats.local_cache_size", 4*1024*1024)
}

func loadConfig(v *viper.Viper) Config {
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil {
		panic(err)
	}

	var conf Config
	err = v.Unmarshal(&conf)
	if err != nil {
		panic(err)
	}
	return conf
}

// Load reads config.yml from the working directory, values can be overridden by env vars
// (e.g. MYSQL_HOST overrides mysql.host). A .env file is loaded first when present.
func Load() Config {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.AddConfigPath(".")
	return loadConfig(v)
}

// LoadTestConfig reads config.test.yml from rootDir
func LoadTestConfig(rootDir string) Config {
	v := viper.New()
	v.SetConfigName("config.test")
	v.SetConfigType("yml")
	v.AddConfigPath(rootDir)
	return loadConfig(v)
}
