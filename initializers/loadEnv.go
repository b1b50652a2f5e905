package initializers

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	GinMode          string
	DBDriver         string
	DBDSN            string
	ReportsDir       string
	AllowedOrigins   []string
	SeedDefaults     bool
	AdminJWTSecret   string
	ReportsS3Bucket  string
	ReportsS3Prefix  string
	DayEndWebhookURL string
}

var AppConfig Config

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables.")
	}
	AppConfig = ParseConfig(os.Getenv)
}

// ParseConfig applies defaults to whatever getenv returns.
func ParseConfig(getenv func(string) string) Config {
	cfg := Config{
		Port:             valueOr(getenv("PORT"), "3000"),
		GinMode:          getenv("GIN_MODE"),
		DBDriver:         strings.ToLower(valueOr(getenv("DB_DRIVER"), "sqlite")),
		DBDSN:            getenv("DB_DSN"),
		ReportsDir:       valueOr(getenv("REPORTS_DIR"), "data/reports"),
		SeedDefaults:     true,
		AdminJWTSecret:   getenv("ADMIN_JWT_SECRET"),
		ReportsS3Bucket:  getenv("REPORTS_S3_BUCKET"),
		ReportsS3Prefix:  getenv("REPORTS_S3_PREFIX"),
		DayEndWebhookURL: getenv("DAY_END_WEBHOOK_URL"),
	}

	if cfg.DBDSN == "" && cfg.DBDriver == "sqlite" {
		cfg.DBDSN = "db/foodcourt.db"
	}

	if seed := getenv("SEED_DEFAULTS"); seed != "" {
		if parsed, err := strconv.ParseBool(seed); err == nil {
			cfg.SeedDefaults = parsed
		} else {
			log.Printf("Ignoring invalid SEED_DEFAULTS value %q", seed)
		}
	}

	for _, origin := range strings.Split(valueOr(getenv("CORS_ALLOWED_ORIGINS"), "*"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
		}
	}

	return cfg
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
