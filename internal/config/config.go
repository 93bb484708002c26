package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Drivers de base de datos soportados
const (
	DriverPostgres = "postgres"
	DriverPgx      = "pgx"
	DriverSQLite   = "sqlite3"
)

// Config contiene la configuración del servidor
type Config struct {
	ServerPort   string
	AllowOrigins string

	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBPath     string // Solo sqlite3

	S3BucketName string
	S3Region     string

	SMTPHost      string
	SMTPPort      string
	SMTPUser      string
	SMTPPassword  string
	SMTPFromName  string
	SMTPFromEmail string
	SMTPTimeout   time.Duration // Tope por envío
	NotifyEmail   string
}

// LoadConfig carga la configuración desde .env (si existe) y variables de entorno
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error al cargar .env: %w", err)
		}
		log.Println("Archivo .env no encontrado, usando variables de entorno")
	}

	cfg := &Config{
		ServerPort:   getEnv("SERVER_PORT", "8090"),
		AllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),

		DBDriver:   getEnv("DB_DRIVER", DriverPostgres),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "prestabanco"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		DBPath:     getEnv("DB_PATH", "prestabanco.db"),

		S3BucketName: getEnv("S3_BUCKET_NAME", ""),
		S3Region:     getEnv("S3_REGION", "us-east-1"),

		SMTPHost:      getEnv("SMTP_HOST", ""),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUser:      getEnv("SMTP_USER", ""),
		SMTPPassword:  getEnv("SMTP_PASSWORD", ""),
		SMTPFromName:  getEnv("SMTP_FROM_NAME", "PrestaBanco"),
		SMTPFromEmail: getEnv("SMTP_FROM_EMAIL", ""),
		NotifyEmail:   getEnv("NOTIFY_EMAIL", ""),
	}

	timeout, err := time.ParseDuration(getEnv("SMTP_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("SMTP_TIMEOUT inválido: %w", err)
	}
	cfg.SMTPTimeout = timeout

	switch cfg.DBDriver {
	case DriverPostgres, DriverPgx, DriverSQLite:
	default:
		return nil, fmt.Errorf("driver de base de datos no soportado: %s", cfg.DBDriver)
	}

	return cfg, nil
}

// GetDBConnString construye la cadena de conexión para el driver configurado
func (c *Config) GetDBConnString() string {
	if c.DBDriver == DriverSQLite {
		return c.DBPath
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// SMTPEnabled indica si hay datos suficientes para enviar correos
func (c *Config) SMTPEnabled() bool {
	return c.SMTPHost != "" && c.SMTPFromEmail != "" && c.NotifyEmail != ""
}

// getEnv obtiene una variable de entorno o usa un valor por defecto
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
