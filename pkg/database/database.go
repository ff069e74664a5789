package database

import (
	"context"
	"fmt"
	"time"

	"rentsight-backend/pkg/config"
	"rentsight-backend/pkg/logger"
	"rentsight-backend/pkg/metrics"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

var DB *sqlx.DB

// initialize the MySQL connection pool.
func InitDB(cfg *config.Config) error {
	start := time.Now()
	db, err := sqlx.Open("mysql", cfg.Database.DSN)
	if err != nil {
		metrics.MySQLErrorsTotal.WithLabelValues("connect", "").Inc()
		logger.GlobalLogger.Errorf("failed to open MySQL connection: %v", err)
		return fmt.Errorf("failed to open MySQL connection: %v", err)
	}

	db.SetMaxOpenConns(100)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = db.PingContext(ctx)
	metrics.MySQLOperationDuration.WithLabelValues("ping", "").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MySQLErrorsTotal.WithLabelValues("ping", "").Inc()
		db.Close()
		logger.GlobalLogger.Errorf("failed to ping MySQL: %v", err)
		return fmt.Errorf("failed to ping MySQL: %v", err)
	}

	DB = db
	logger.GlobalLogger.Println("MySQL connected successfully.")
	return nil
}

// close the MySQL connection pool.
func CloseDB() {
	if DB != nil {
		if err := DB.Close(); err != nil {
			logger.GlobalLogger.Errorf("Error closing MySQL: %v", err)
		} else {
			logger.GlobalLogger.Println("MySQL connection closed")
		}
	}
}
