package config

// KafkaConfig ...
type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers"`
}
