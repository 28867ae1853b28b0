package database

import (
	"database/sql"
	"time"

	"learning_iq/internal/platform/config"
	"learning_iq/internal/platform/logger"

	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
)

var DB *sql.DB

func Connect() {
	var err error
	DB, err = sql.Open("pgx", config.AppConfig.DBConnStr)
	if err != nil {
		logger.Fatal("error opening database", "err", err)
	}

	DB.SetMaxOpenConns(25)
	DB.SetMaxIdleConns(25)
	DB.SetConnMaxLifetime(5 * time.Minute)

	// Verify connection
	if err = DB.Ping(); err != nil {
		logger.Fatal("error connecting to database", "err", err)
	}

	logger.Info("connected to PostgreSQL database", "db", config.AppConfig.DBName)
}

func Close() {
	if DB != nil {
		DB.Close()
		logger.Info("database connection closed")
	}
}
