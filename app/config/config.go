package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type Config struct {
	DB     *sql.DB
	Minio  MinioConfig
	JWT    JWTConfig
	Port   string
	Origen string // allowed CORS origin for the SPA
}

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	URLExpiry time.Duration
}

type JWTConfig struct {
	Secret []byte
	Expiry time.Duration
}

var AppConfig *Config

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads the environment (optionally from .env), opens the Postgres
// pool and fills AppConfig. It fails hard when the database is
// unreachable, like every other startup dependency.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	psqlInfo := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getenv("DB_HOST", "localhost"),
		getenv("DB_PORT", "5432"),
		getenv("DB_USER", "postgres"),
		getenv("DB_PASSWORD", "postgres"),
		getenv("DB_NAME", "colegio"),
		getenv("DB_SSLMODE", "disable"),
	)

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	if err = db.Ping(); err != nil {
		log.Fatalf("Cannot establish database connection: %v", err)
	}

	AppConfig = &Config{
		DB: db,
		Minio: MinioConfig{
			Endpoint:  getenv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: getenv("MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey: getenv("MINIO_SECRET_KEY", "minioadmin"),
			Bucket:    getenv("MINIO_BUCKET", "colegio-archivos"),
			UseSSL:    os.Getenv("MINIO_USE_SSL") == "true",
			URLExpiry: 15 * time.Minute,
		},
		JWT: JWTConfig{
			Secret: []byte(getenv("JWT_SECRET", "colegio-api-secret-key")),
			Expiry: 4 * time.Hour,
		},
		Port:   getenv("PORT", "5000"),
		Origen: getenv("FRONTEND_ORIGIN", "http://localhost:5173"),
	}
	log.Println("Database connected successfully")
}

func GetDB() *sql.DB {
	return AppConfig.DB
}
