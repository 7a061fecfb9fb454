package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Source   SourceConfig
	Geocoder GeocoderConfig
	Map      MapConfig
	Worker   WorkerConfig
	Log      LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	SnapshotCacheTTL time.Duration
	GeocodeCacheTTL  time.Duration
}

// SourceConfig - upstream GIS endpoint'ы с данными карты
type SourceConfig struct {
	PropertiesURL  string
	PlotsURL       string
	RequestTimeout time.Duration
}

type GeocoderConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
}

// MapConfig - параметры пайплайна карты
type MapConfig struct {
	ZoomThreshold    int
	BatchSize        int
	PaddingFactor    float64
	DebounceInterval time.Duration
}

type WorkerConfig struct {
	Enabled         bool
	RefreshInterval time.Duration
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			SnapshotCacheTTL: time.Duration(viper.GetInt("SNAPSHOT_CACHE_TTL")) * time.Second,
			GeocodeCacheTTL:  time.Duration(viper.GetInt("GEOCODE_CACHE_TTL")) * time.Second,
		},
		Source: SourceConfig{
			PropertiesURL:  viper.GetString("SOURCE_PROPERTIES_URL"),
			PlotsURL:       viper.GetString("SOURCE_PLOTS_URL"),
			RequestTimeout: time.Duration(viper.GetInt("SOURCE_REQUEST_TIMEOUT")) * time.Second,
		},
		Geocoder: GeocoderConfig{
			BaseURL:        viper.GetString("GEOCODER_BASE_URL"),
			RequestTimeout: time.Duration(viper.GetInt("GEOCODER_REQUEST_TIMEOUT")) * time.Second,
		},
		Map: MapConfig{
			ZoomThreshold:    viper.GetInt("MAP_ZOOM_THRESHOLD"),
			BatchSize:        viper.GetInt("MAP_BATCH_SIZE"),
			PaddingFactor:    viper.GetFloat64("MAP_PADDING_FACTOR"),
			DebounceInterval: time.Duration(viper.GetInt("MAP_DEBOUNCE_MS")) * time.Millisecond,
		},
		Worker: WorkerConfig{
			Enabled:         viper.GetBool("WORKER_ENABLED"),
			RefreshInterval: time.Duration(viper.GetInt("WORKER_REFRESH_INTERVAL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Set default values if not provided
	if cfg.Source.RequestTimeout == 0 {
		cfg.Source.RequestTimeout = 15 * time.Second
	}
	if cfg.Geocoder.RequestTimeout == 0 {
		cfg.Geocoder.RequestTimeout = 10 * time.Second
	}
	if cfg.Cache.SnapshotCacheTTL == 0 {
		cfg.Cache.SnapshotCacheTTL = 10 * time.Minute
	}
	if cfg.Cache.GeocodeCacheTTL == 0 {
		cfg.Cache.GeocodeCacheTTL = time.Hour
	}
	if cfg.Map.ZoomThreshold == 0 {
		cfg.Map.ZoomThreshold = 12
	}
	if cfg.Map.BatchSize == 0 {
		cfg.Map.BatchSize = 250
	}
	if cfg.Map.PaddingFactor == 0 {
		cfg.Map.PaddingFactor = 0.5
	}
	if cfg.Map.DebounceInterval == 0 {
		cfg.Map.DebounceInterval = 300 * time.Millisecond
	}
	if cfg.Worker.RefreshInterval == 0 {
		cfg.Worker.RefreshInterval = 5 * time.Minute
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
