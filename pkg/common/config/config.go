package config

import (
	"encoding/json"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/go-sql-driver/mysql"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type ServerConfig struct {
	Address string `json:"address"`
}

type SecurityConfig struct {
	MaxBodySize    int64    `json:"maxBodySize"` // bytes
	AllowedMethods []string `json:"allowedMethods"`
	BcryptCost     int      `json:"bcryptCost"`
}

type AuthConfig struct {
	Realm string `json:"realm"` // sent back in WWW-Authenticate
}

type TimeoutConfig struct {
	RequestTimeout int `json:"requestTimeout"` // seconds
}

type CORSConfig struct {
	AllowOrigins     []string      `json:"allowOrigins"`
	AllowMethods     []string      `json:"allowMethods"`
	AllowHeaders     []string      `json:"allowHeaders"`
	ExposeHeaders    []string      `json:"exposeHeaders"`
	AllowCredentials bool          `json:"allowCredentials"`
	MaxAge           time.Duration `json:"maxAge"`
	TrustedDomains   []string      `json:"trustedDomains"`
}

type MiddlewareConfig struct {
	Security SecurityConfig `json:"security"`
	Auth     AuthConfig     `json:"auth"`
	Timeout  TimeoutConfig  `json:"timeout"`
	CORS     CORSConfig     `json:"cors"`
}

type DatabaseConfig struct {
	Host        string `json:"host"` // socket path when UseUnixSock is set
	Port        int    `json:"port"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	DBName      string `json:"dbname"`
	UseUnixSock bool   `json:"useUnixSock"`
	MinPoolSize int    `json:"minPoolSize"`
	MaxPoolSize int    `json:"maxPoolSize"`
	LogLevel    string `json:"logLevel"` // GORM logger level
}

type Config struct {
	Server     ServerConfig     `json:"server"`
	Database   DatabaseConfig   `json:"database"`
	Middleware MiddlewareConfig `json:"middleware"`
	Env        string           `json:"env"`
}

// Default returns a fresh copy of the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Address: ":5000",
		},
		Database: DatabaseConfig{
			Host:        "localhost",
			Port:        3306,
			Username:    "root",
			Password:    "root",
			DBName:      "courses",
			MinPoolSize: 5,
			MaxPoolSize: 50,
			LogLevel:    "warn",
		},
		Middleware: MiddlewareConfig{
			Security: SecurityConfig{
				MaxBodySize:    1 << 20, // 1MB
				AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
				BcryptCost:     10,
			},
			Auth: AuthConfig{
				Realm: "course-api",
			},
			Timeout: TimeoutConfig{
				RequestTimeout: 15,
			},
			CORS: CORSConfig{
				AllowOrigins:     []string{"http://localhost:3000"},
				AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
				AllowHeaders:     []string{"Content-Type", "Authorization", "X-Requested-With"},
				ExposeHeaders:    []string{"Content-Length", "Location", "X-Request-ID"},
				AllowCredentials: true,
				MaxAge:           12 * time.Hour,
			},
		},
		Env: "development",
	}
}

// IsProd reports whether the service runs in production mode.
func (c *Config) IsProd() bool {
	return c.Env == "production"
}

// Load builds the configuration. Precedence: environment > config file > defaults.
func Load() *Config {
	config := Default()

	if configPath := getConfigPath(); configPath != "" {
		if err := loadFromFile(&config, configPath); err != nil {
			hlog.Warnf("Failed to load config file %s: %v", configPath, err)
		}
	}

	loadFromEnv(&config)

	return &config
}

func getConfigPath() string {
	if path := os.Getenv("APP_CONFIG"); path != "" {
		return path
	}

	searchPaths := []string{
		"./config.json",
		"../config.json",
		"/etc/course-api/config.json",
	}

	for _, path := range searchPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

func loadFromFile(config *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, config)
}

func loadFromEnv(config *Config) {
	if v := os.Getenv("SERVER_ADDR"); v != "" {
		config.Server.Address = v
	}

	if v := os.Getenv("APP_ENV"); v != "" {
		config.Env = v
	}

	if v := os.Getenv("MAX_BODY_SIZE"); v != "" {
		if size, err := strconv.ParseInt(v, 10, 64); err == nil {
			config.Middleware.Security.MaxBodySize = size
		} else {
			hlog.Warnf("Invalid MAX_BODY_SIZE: %v", err)
		}
	}

	if v := os.Getenv("ALLOWED_METHODS"); v != "" {
		config.Middleware.Security.AllowedMethods = splitEnvList(strings.ToUpper(v))
	}

	if v := os.Getenv("BCRYPT_COST"); v != "" {
		if cost, err := strconv.Atoi(v); err == nil {
			config.Middleware.Security.BcryptCost = cost
		} else {
			hlog.Warnf("Invalid BCRYPT_COST: %v", err)
		}
	}

	if v := os.Getenv("AUTH_REALM"); v != "" {
		config.Middleware.Auth.Realm = v
	}

	if v := os.Getenv("REQUEST_TIMEOUT"); v != "" {
		if timeout, err := strconv.Atoi(v); err == nil {
			config.Middleware.Timeout.RequestTimeout = timeout
		} else {
			hlog.Warnf("Invalid REQUEST_TIMEOUT: %v", err)
		}
	}

	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		config.Middleware.CORS.AllowOrigins = splitEnvList(v)
	}

	if v := os.Getenv("DB_HOST"); v != "" {
		config.Database.Host = v
	}

	if v := os.Getenv("DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			config.Database.Port = port
		} else {
			hlog.Warnf("Invalid DB_PORT: %v", err)
		}
	}

	if v := os.Getenv("DB_USER"); v != "" {
		config.Database.Username = v
	}

	if v := os.Getenv("DB_PASSWORD"); v != "" {
		config.Database.Password = v
	}

	if v := os.Getenv("DB_NAME"); v != "" {
		config.Database.DBName = v
	}

	if v := os.Getenv("DB_SOCKET"); v != "" {
		config.Database.UseUnixSock = parseBool(v)
	}

	if v := os.Getenv("DB_MIN_POOL"); v != "" {
		if size, err := strconv.Atoi(v); err == nil {
			config.Database.MinPoolSize = size
		}
	}

	if v := os.Getenv("DB_MAX_POOL"); v != "" {
		if size, err := strconv.Atoi(v); err == nil {
			config.Database.MaxPoolSize = size
		}
	}

	if v := os.Getenv("DB_LOG_LEVEL"); v != "" {
		config.Database.LogLevel = strings.ToLower(v)
	}
}

// splitEnvList splits a comma separated value, dropping blanks.
func splitEnvList(value string) []string {
	if value == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseBool(value string) bool {
	value = strings.ToLower(value)
	return value == "true" || value == "1" || value == "yes"
}

// DSN renders the MySQL data source name. clientFoundRows makes UPDATE report
// matched rows, which the ownership-checked course update relies on.
func (c *Config) DSN() string {
	dsn := mysql.NewConfig()
	dsn.User = c.Database.Username
	dsn.Passwd = c.Database.Password
	dsn.DBName = c.Database.DBName
	dsn.ParseTime = true
	dsn.ClientFoundRows = true
	dsn.Loc = time.Local
	dsn.Params = map[string]string{"charset": "utf8mb4"}

	if c.Database.UseUnixSock {
		dsn.Net = "unix"
		dsn.Addr = c.Database.Host
	} else {
		dsn.Net = "tcp"
		dsn.Addr = net.JoinHostPort(c.Database.Host, strconv.Itoa(c.Database.Port))
	}

	return dsn.FormatDSN()
}

// GormConfig maps LogLevel onto the GORM logger and enables dialect error
// translation so duplicate keys surface as gorm.ErrDuplicatedKey.
func (c *Config) GormConfig() *gorm.Config {
	gormConfig := &gorm.Config{TranslateError: true}
	switch c.Database.LogLevel {
	case "silent":
		gormConfig.Logger = logger.Default.LogMode(logger.Silent)
	case "error":
		gormConfig.Logger = logger.Default.LogMode(logger.Error)
	case "warn":
		gormConfig.Logger = logger.Default.LogMode(logger.Warn)
	case "info":
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	}
	return gormConfig
}

func (c *Config) InitDB() (*gorm.DB, error) {
	db, err := gorm.Open(gormmysql.Open(c.DSN()), c.GormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(c.Database.MinPoolSize)
	sqlDB.SetMaxOpenConns(c.Database.MaxPoolSize)

	return db, nil
}
