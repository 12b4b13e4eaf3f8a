package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	PostgresConn string
	ServerAddr   string
	JWTSecret    string
	AdminEmail   string
	MediaDir     string
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, relying on environment")
	}

	addr := os.Getenv("SERVER_ADDRESS")
	if addr == "" {
		addr = "0.0.0.0:8080"
	}

	mediaDir := os.Getenv("MEDIA_DIR")
	if mediaDir == "" {
		mediaDir = "./media"
	}

	return Config{
		PostgresConn: os.Getenv("POSTGRES_CONN"),
		ServerAddr:   addr,
		JWTSecret:    os.Getenv("JWT_SECRET"),
		AdminEmail:   os.Getenv("ADMIN_EMAIL"),
		MediaDir:     mediaDir,
	}
}
