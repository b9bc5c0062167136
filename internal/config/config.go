package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Feed Config
	FeedBaseURL  string        `env:"FEED_BASE_URL" envDefault:"https://seeclickfix.com/api/v2"`
	FeedTimeout  time.Duration `env:"FEED_TIMEOUT" envDefault:"10s"`
	FeedPerPage  int           `env:"FEED_PER_PAGE" envDefault:"100"`
	FeedCacheTTL time.Duration `env:"FEED_CACHE_TTL" envDefault:"60s"`

	// Redis Config (пустой адрес отключает кеш)
	RedisAddr string `env:"REDIS_ADDR"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Map Config
	DefaultLat       float64 `env:"DEFAULT_LAT" envDefault:"47.2529"`
	DefaultLng       float64 `env:"DEFAULT_LNG" envDefault:"-122.4443"`
	DefaultLabel     string  `env:"DEFAULT_LABEL" envDefault:"Tacoma, WA (default)"`
	AreaRadiusFeet   float64 `env:"AREA_RADIUS_FEET" envDefault:"2000"`
	NearbyRadiusFeet float64 `env:"NEARBY_RADIUS_FEET" envDefault:"400"`
	NearbyPageSize   int     `env:"NEARBY_PAGE_SIZE" envDefault:"10"`

	// Обращения старше этой даты в панель ближайших не запрашиваются
	NearbyMinDate time.Time `env:"NEARBY_MIN_DATE" envDefault:"2024-01-01"`

	// View Config
	ViewSessionTTL time.Duration `env:"VIEW_SESSION_TTL" envDefault:"30m"`
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		HTTPPort:         "8080",
		LogLevel:         "info",
		FeedBaseURL:      "https://seeclickfix.com/api/v2",
		FeedTimeout:      10 * time.Second,
		FeedPerPage:      100,
		FeedCacheTTL:     60 * time.Second,
		DefaultLat:       47.2529,
		DefaultLng:       -122.4443,
		DefaultLabel:     "Tacoma, WA (default)",
		AreaRadiusFeet:   2000,
		NearbyRadiusFeet: 400,
		NearbyPageSize:   10,
		NearbyMinDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		ViewSessionTTL:   30 * time.Minute,
	}
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	def := Default()
	cfg := &Config{
		HTTPPort:         getEnv("HTTP_PORT", def.HTTPPort),
		LogLevel:         getEnv("LOG_LEVEL", def.LogLevel),
		FeedBaseURL:      getEnv("FEED_BASE_URL", def.FeedBaseURL),
		FeedTimeout:      getEnvAsDuration("FEED_TIMEOUT", def.FeedTimeout),
		FeedPerPage:      getEnvAsInt("FEED_PER_PAGE", def.FeedPerPage),
		FeedCacheTTL:     getEnvAsDuration("FEED_CACHE_TTL", def.FeedCacheTTL),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		RedisPass:        os.Getenv("REDIS_PASSWORD"),
		RedisDB:          getEnvAsInt("REDIS_DB", 0),
		DefaultLat:       getEnvAsFloat("DEFAULT_LAT", def.DefaultLat),
		DefaultLng:       getEnvAsFloat("DEFAULT_LNG", def.DefaultLng),
		DefaultLabel:     getEnv("DEFAULT_LABEL", def.DefaultLabel),
		AreaRadiusFeet:   getEnvAsFloat("AREA_RADIUS_FEET", def.AreaRadiusFeet),
		NearbyRadiusFeet: getEnvAsFloat("NEARBY_RADIUS_FEET", def.NearbyRadiusFeet),
		NearbyPageSize:   getEnvAsInt("NEARBY_PAGE_SIZE", def.NearbyPageSize),
		NearbyMinDate:    def.NearbyMinDate,
		ViewSessionTTL:   getEnvAsDuration("VIEW_SESSION_TTL", def.ViewSessionTTL),
	}

	if value, exists := os.LookupEnv("NEARBY_MIN_DATE"); exists {
		minDate, err := time.ParseInLocation("2006-01-02", value, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("NEARBY_MIN_DATE must be YYYY-MM-DD: %w", err)
		}
		cfg.NearbyMinDate = minDate
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет значения, без которых сервис не может работать
func (c *Config) Validate() error {
	if c.FeedBaseURL == "" {
		return fmt.Errorf("FEED_BASE_URL environment variable is required")
	}
	if c.FeedPerPage < 1 {
		return fmt.Errorf("FEED_PER_PAGE must be positive, got %d", c.FeedPerPage)
	}
	if c.AreaRadiusFeet <= 0 || c.NearbyRadiusFeet <= 0 {
		return fmt.Errorf("radius values must be positive")
	}
	if c.NearbyPageSize < 1 {
		return fmt.Errorf("NEARBY_PAGE_SIZE must be positive, got %d", c.NearbyPageSize)
	}
	if c.DefaultLat <= -90 || c.DefaultLat >= 90 || c.DefaultLng < -180 || c.DefaultLng > 180 {
		return fmt.Errorf("default location (%v, %v) is out of range", c.DefaultLat, c.DefaultLng)
	}
	return nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
