package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Options carries the connection settings for the relational store.
type Options struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	PoolSize int
}

// Connect opens the database and bounds the connection pool. Pool
// saturation surfaces as a context deadline error on the request that hit
// it instead of queueing forever.
func Connect(opts Options) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		opts.Host,
		opts.User,
		opts.Password,
		opts.Name,
		opts.Port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}

	poolSize := opts.PoolSize
	if poolSize <= 0 {
		poolSize = 10
	}
	sqlDB.SetMaxOpenConns(poolSize)
	sqlDB.SetMaxIdleConns(poolSize)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Printf("database connected (pool size %d)", poolSize)

	return db, nil
}
