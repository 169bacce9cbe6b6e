package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Storage  StorageConfig
	Upload   UploadConfig
	Admin    AdminConfig
}

type ServerConfig struct {
	Port string
	Host string
	Env  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host string
	Port string
}

type StorageConfig struct {
	Driver string // "s3" veya "local"
	Bucket string
	Region string
	// Local driver için
	LocalDir string
}

type UploadConfig struct {
	TempDir     string
	MaxFileSize int64 // bytes
}

type AdminConfig struct {
	// URL path segmenti ile karşılaştırılır; boşsa admin panel 404 döner.
	Token string
}

func LoadConfig() *Config {
	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "3000"),
			Host: getEnv("SERVER_HOST", "localhost"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "video_guestbook"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Host: getEnv("REDIS_HOST", "localhost"),
			Port: getEnv("REDIS_PORT", "6379"),
		},
		Storage: StorageConfig{
			Driver:   getEnv("STORAGE_DRIVER", "s3"),
			Bucket:   getEnv("STORAGE_BUCKET", ""),
			Region:   getEnv("STORAGE_REGION", "us-east-1"),
			LocalDir: getEnv("STORAGE_LOCAL_DIR", "uploads"),
		},
		Upload: UploadConfig{
			TempDir:     getEnv("UPLOAD_TEMP_DIR", "temp_captures"),
			MaxFileSize: getEnvAsInt64("UPLOAD_MAX_FILE_SIZE", 80*1024*1024), // 80MB
		},
		Admin: AdminConfig{
			Token: getEnv("ADMIN_TOKEN", ""),
		},
	}

	if err := os.MkdirAll(config.Upload.TempDir, 0755); err != nil {
		panic(err)
	}

	return config
}

// Validate checks the settings that are fatal at startup. Missing bucket on
// the s3 driver or an empty database name cannot be defaulted away.
func (c *Config) Validate() error {
	if c.Storage.Driver == "s3" && c.Storage.Bucket == "" {
		return fmt.Errorf("STORAGE_BUCKET is required with the s3 storage driver")
	}
	if c.Storage.Driver != "s3" && c.Storage.Driver != "local" {
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	return nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}
