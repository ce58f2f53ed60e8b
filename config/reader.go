package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

const (
	StorageDatabase = "database"
	StorageSQLite   = "sqlite"
	StorageMemory   = "memory"
)

type DBConfig struct {
	Name     string `yaml:"name"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

type ConfigSchema struct {
	// Storage selects the backing store: "database", "sqlite" or "memory".
	Storage   string `yaml:"storage"`
	Databases struct {
		Master   DBConfig   `yaml:"master"`
		Replicas []DBConfig `yaml:"replicas"`
	} `yaml:"databases"`
	Backend struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"backend"`
	Redis struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	RabbitMQ struct {
		URL string `yaml:"url"`
	} `yaml:"rabbitmq"`
	Logs struct {
		Level string `yaml:"level"`
	} `yaml:"logs"`
}

var AppConfig *ConfigSchema

func LoadConfig(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	conf := &ConfigSchema{}
	if err := yaml.Unmarshal(data, conf); err != nil {
		return err
	}
	if conf.Storage == "" {
		conf.Storage = StorageDatabase
	}
	switch conf.Storage {
	case StorageDatabase, StorageSQLite, StorageMemory:
	default:
		return fmt.Errorf("unknown storage mode: %s", conf.Storage)
	}
	AppConfig = conf
	return nil
}
