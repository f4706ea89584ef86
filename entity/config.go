package entity

import "time"

type Config struct {
	PostgresConfig PostgresConfig `yaml:"database"`
	JWTSecretKey   string         `yaml:"jwt_secret"`
	ServerPort     string         `yaml:"server_port"`
	// OperationTimeoutSeconds bounds every repository operation. Zero
	// means the 5s default.
	OperationTimeoutSeconds int  `yaml:"operation_timeout_seconds"`
	SeedDemoData            bool `yaml:"seed_demo_data"`

	// OperationTimeout is derived from OperationTimeoutSeconds when the
	// config is read.
	OperationTimeout time.Duration `yaml:"-"`
}

type PostgresConfig struct {
	Host     string `yaml:"host"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	Port     string `yaml:"port"`
	SSLMode  string `yaml:"sslmode"`
}
