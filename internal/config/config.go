package config

import (
	"log"
	"os"
)

type Config struct {
	Port          string
	DBDSN         string
	LogFile       string
	AdminPassword string
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "hanmart.db" // sqlite file in project root
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./hanmart.log"
	}
	adminPW := os.Getenv("ADMIN_PASSWORD")
	if adminPW == "" {
		adminPW = "admin" // dev default; set a real one in production
	}

	cfg := Config{Port: port, DBDSN: dsn, LogFile: logFile, AdminPassword: adminPW}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s", cfg.Port, cfg.DBDSN, cfg.LogFile)
	return cfg
}
