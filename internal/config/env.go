package config

import (
	"os"
	"strings"
)

type Env struct {
	AppAddr   string
	GinMode   string
	DBUser    string
	DBPass    string
	DBHost    string
	DBName    string
	JWTSecret string
}

func LoadEnv() Env {
	env := Env{
		AppAddr:   getenv("APP_ADDR", ":8080"),
		GinMode:   getenv("GIN_MODE", ""),
		DBUser:    getenv("DB_USER", "root"),
		DBPass:    getenv("DB_PASS", ""),
		DBHost:    getenv("DB_HOST", "127.0.0.1:3306"),
		DBName:    getenv("DB_NAME", "tour_store"),
		JWTSecret: getenv("JWT_SECRET", "super-secret-key-change-me"),
	}
	return env
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}
