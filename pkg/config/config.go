package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App   AppConfig
	Store StoreConfig
	DB    DBConfig
	JWT   JWTConfig
	HTTP  HTTPConfig
	Codes CodesConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
}

// StoreConfig selecciona la persistencia: "postgres" o "memory" (desarrollo sin base de datos).
type StoreConfig struct {
	Driver string
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL    string
	Host           string
	Port           int
	User           string
	Password       string
	DBName         string
	SSLMode        string
	MaxConns       int32
	MinConns       int32
	MigrationsPath string // vacío = no correr migraciones al arrancar
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + c.SSLMode,
	}
	return u.String()
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret string
	Issuer string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// CodesConfig parámetros de generación de códigos de entidad.
type CodesConfig struct {
	MaxLength        int // letras del prefijo
	PadWidth         int // dígitos del sufijo
	MaxAttempts      int // reintentos ante conflicto de código
	FallbackCustomer string
	FallbackVendor   string
	FallbackVehicle  string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde .env / config.env).
// Las env vars tienen prioridad.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // opcional

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // opcional

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "transporte-api"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		Store: StoreConfig{
			Driver: strings.ToLower(getString(v, "STORE_DRIVER", "postgres")),
		},
		DB: DBConfig{
			DatabaseURL:    getString(v, "DATABASE_URL", ""),
			Host:           getString(v, "DB_HOST", "localhost"),
			Port:           getInt(v, "DB_PORT", 5432),
			User:           getString(v, "DB_USER", "postgres"),
			Password:       getString(v, "DB_PASSWORD", ""),
			DBName:         getString(v, "DB_NAME", "transporte"),
			SSLMode:        getString(v, "DB_SSLMODE", "disable"),
			MaxConns:       int32(getInt(v, "DB_MAX_CONNS", 10)),
			MinConns:       int32(getInt(v, "DB_MIN_CONNS", 1)),
			MigrationsPath: getString(v, "DB_MIGRATIONS_PATH", "./migrations"),
		},
		JWT: JWTConfig{
			Secret: getString(v, "JWT_SECRET", ""),
			Issuer: getString(v, "JWT_ISSUER", "transporte-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Codes: CodesConfig{
			MaxLength:        getInt(v, "CODE_MAX_LENGTH", 3),
			PadWidth:         getInt(v, "CODE_PAD_WIDTH", 3),
			MaxAttempts:      getInt(v, "CODE_MAX_ATTEMPTS", 5),
			FallbackCustomer: strings.ToUpper(getString(v, "CODE_FALLBACK_CUSTOMER", "CUS")),
			FallbackVendor:   strings.ToUpper(getString(v, "CODE_FALLBACK_VENDOR", "VEN")),
			FallbackVehicle:  strings.ToUpper(getString(v, "CODE_FALLBACK_VEHICLE", "VEH")),
		},
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Store.Driver != "postgres" && c.Store.Driver != "memory" {
		return fmt.Errorf("STORE_DRIVER inválido: %q (postgres|memory)", c.Store.Driver)
	}
	if c.Codes.MaxLength < 1 || c.Codes.PadWidth < 1 || c.Codes.MaxAttempts < 1 {
		return fmt.Errorf("CODE_MAX_LENGTH, CODE_PAD_WIDTH y CODE_MAX_ATTEMPTS deben ser >= 1")
	}
	for _, p := range []string{c.Codes.FallbackCustomer, c.Codes.FallbackVendor, c.Codes.FallbackVehicle} {
		if !isLetters(p) {
			return fmt.Errorf("prefijo de respaldo inválido: %q (solo letras A-Z)", p)
		}
	}
	return nil
}

func isLetters(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if !v.IsSet(key) {
		return def
	}
	if s, ok := v.Get(key).(string); ok {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return def
		}
		return n
	}
	return v.GetInt(key)
}
