package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                 string
	Env                  string
	DBPath               string
	UploadsDir           string
	CORSOrigins          string
	LogLevel             string
	GoogleClientID       string
	DriveCredentialsFile string
	DriveFolderID        string
	SessionTTLHours      int
}

var AppConfig *Config

func Load() {
	_ = godotenv.Load()

	AppConfig = &Config{
		Port:                 GetEnv("PORT", "3000"),
		Env:                  GetEnv("ENV", "development"),
		DBPath:               GetEnv("DB_PATH", "./data/lifehub.db"),
		UploadsDir:           GetEnv("UPLOADS_DIR", "./uploads"),
		CORSOrigins:          GetEnv("CORS_ORIGINS", "*"),
		LogLevel:             GetEnv("LOG_LEVEL", "info"),
		GoogleClientID:       GetEnv("GOOGLE_CLIENT_ID", ""),
		DriveCredentialsFile: GetEnv("GOOGLE_DRIVE_CREDENTIALS", ""),
		DriveFolderID:        GetEnv("GOOGLE_DRIVE_FOLDER_ID", ""),
		SessionTTLHours:      GetEnvInt("SESSION_TTL_HOURS", 720),
	}
}

// DriveEnabled reports whether documents should be mirrored to Google Drive.
func (c *Config) DriveEnabled() bool {
	return c.DriveCredentialsFile != "" && c.DriveFolderID != ""
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}
