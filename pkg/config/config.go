package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App   AppConfig
	Mongo MongoConfig
	JWT   JWTConfig
	HTTP  HTTPConfig
	SMTP  SMTPConfig
	OTP   OTPConfig
	Redis RedisConfig
	Owner OwnerConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// MongoConfig configuración de MongoDB.
type MongoConfig struct {
	URI      string // ej. mongodb://localhost:27017
	Database string // base de datos de la aplicación
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
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

// SMTPConfig configuración del transporte de correo para los códigos OTP.
type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string // remitente; si está vacío se usa User
}

// Sender devuelve la dirección remitente efectiva.
func (c SMTPConfig) Sender() string {
	if c.From != "" {
		return c.From
	}
	return c.User
}

// OTPConfig configuración del almacén de códigos OTP.
type OTPConfig struct {
	Store      string // memory | redis
	TTLMinutes int
}

// TTL devuelve la vigencia de un código OTP.
func (c OTPConfig) TTL() time.Duration {
	return time.Duration(c.TTLMinutes) * time.Minute
}

// RedisConfig configuración de Redis (solo si OTP_STORE=redis).
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// OwnerConfig cuenta propietaria sembrada en el arranque.
// El email define quién recibe el rol SuperAdmin de forma permanente.
type OwnerConfig struct {
	Email    string
	Name     string
	Company  string
	Password string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, MONGO_URI, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// Bind de variables de entorno (Viper las lee automáticamente si AutomaticEnv está activo)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "talentbase-crm"),
		},
		Mongo: MongoConfig{
			URI:      getString(v, "MONGO_URI", "mongodb://localhost:27017"),
			Database: getString(v, "MONGO_DB", "Users"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "talentbase-crm"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 5002),
		},
		SMTP: SMTPConfig{
			Host:     getString(v, "SMTP_HOST", "smtp.gmail.com"),
			Port:     getInt(v, "SMTP_PORT", 587),
			User:     getString(v, "SMTP_USER", ""),
			Password: getString(v, "SMTP_PASSWORD", ""),
			From:     getString(v, "SMTP_FROM", ""),
		},
		OTP: OTPConfig{
			Store:      getString(v, "OTP_STORE", "memory"),
			TTLMinutes: getInt(v, "OTP_TTL_MINUTES", 5),
		},
		Redis: RedisConfig{
			Addr:     getString(v, "REDIS_ADDR", "localhost:6379"),
			Password: getString(v, "REDIS_PASSWORD", ""),
			DB:       getInt(v, "REDIS_DB", 0),
		},
		Owner: OwnerConfig{
			Email:    getString(v, "OWNER_EMAIL", "dhruvbhatiaxcyz@gmail.com"),
			Name:     getString(v, "OWNER_NAME", "Dhruv Bhatia"),
			Company:  getString(v, "OWNER_COMPANY", "Apple"),
			Password: getString(v, "OWNER_PASSWORD", "Password"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
