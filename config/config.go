package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Catalog CatalogConfig `yaml:"catalog"`
	Redis   RedisConfig   `yaml:"redis"`
	Kafka   KafkaConfig   `yaml:"kafka"`
	Cache   CacheConfig   `yaml:"cache"`
}

type HTTPConfig struct {
	Address string `yaml:"address"`
}

type CatalogConfig struct {
	// Seed pins the random source for catalog generation and seat
	// assignment. 0 means seed from the wall clock.
	Seed int64 `yaml:"seed"`
}

type RedisConfig struct {
	// Addr empty disables the search cache.
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	// Brokers empty disables booking events.
	Brokers            []string `yaml:"brokers"`
	BookingTopic       string   `yaml:"booking_topic"`
	NotificationsTopic string   `yaml:"notifications_topic"`
	GroupID            string   `yaml:"group_id"`
}

type CacheConfig struct {
	SearchTTLSeconds int `yaml:"search_ttl_seconds"`
}

func Default() *Config {
	return &Config{
		HTTP:  HTTPConfig{Address: ":8080"},
		Cache: CacheConfig{SearchTTLSeconds: 30},
	}
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}
