package db

import (
	"fmt"

	"github.com/phvlkn/CookBook/entity"
	"github.com/phvlkn/CookBook/logger"
	"github.com/phvlkn/CookBook/model"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB initializes the PostgreSQL connection and runs migrations.
// TranslateError is required so unique violations surface as
// gorm.ErrDuplicatedKey instead of driver errors.
func InitDB(c *entity.Config) error {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.PostgresConfig.Host, c.PostgresConfig.User, c.PostgresConfig.Password,
		c.PostgresConfig.DBName, c.PostgresConfig.Port, c.PostgresConfig.SSLMode)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return fmt.Errorf("could not connect to database: %w", err)
	}
	logger.Info("database connection established")

	logger.Info("running migrations")
	if err := DB.AutoMigrate(model.All()...); err != nil {
		return fmt.Errorf("could not migrate database: %w", err)
	}
	logger.Info("migrations completed")
	return nil
}

func Close() {
	sqlDB, err := DB.DB()
	if err != nil {
		logger.Error("failed to retrieve sql.DB", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("error closing the database connection", zap.Error(err))
	}
}

func GetDBInstance() *gorm.DB {
	return DB
}
