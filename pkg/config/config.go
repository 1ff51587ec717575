package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Modos de backend de datos.
const (
	BackendLocal  = "local"
	BackendRemote = "remote"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	Backend BackendConfig
	JWT     JWTConfig
	HTTP    HTTPConfig
	Session SessionConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// BackendConfig selecciona y configura el backend de datos. Se lee una sola vez al arrancar.
type BackendConfig struct {
	Mode   string // local | remote
	Local  LocalConfig
	Remote RemoteConfig
}

// LocalConfig base de datos embebida (archivo SQLite en el directorio de datos del usuario).
type LocalConfig struct {
	DataDir           string
	DBFile            string
	SeedAdminPassword string
}

// Path devuelve la ruta completa del archivo de base de datos.
func (c LocalConfig) Path() string {
	return filepath.Join(c.DataDir, c.DBFile)
}

// RemoteConfig servicio REST remoto.
type RemoteConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// Timeout devuelve el timeout de las peticiones HTTP.
func (c RemoteConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
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

// SessionConfig credenciales para el inicio de sesión no interactivo (cmd/compta).
type SessionConfig struct {
	Username string
	Password string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, BACKEND_MODE, REMOTE_BASE_URL, JWT_SECRET, etc.
func Load() (*Config, error) {
	// .env al entorno del proceso; si no existe no es un error.
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "blackwoods-compta"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		Backend: BackendConfig{
			Mode: strings.ToLower(getString(v, "BACKEND_MODE", BackendLocal)),
			Local: LocalConfig{
				DataDir:           getString(v, "LOCAL_DATA_DIR", defaultDataDir()),
				DBFile:            getString(v, "LOCAL_DB_FILE", "blackwoods.db"),
				SeedAdminPassword: getString(v, "SEED_ADMIN_PASSWORD", "admin123"),
			},
			Remote: RemoteConfig{
				BaseURL:        strings.TrimRight(getString(v, "REMOTE_BASE_URL", "http://localhost:5000"), "/"),
				TimeoutSeconds: getInt(v, "REMOTE_TIMEOUT_SECONDS", 15),
			},
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "JWT_ISSUER", "blackwoods-compta"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 5000),
		},
		Session: SessionConfig{
			Username: getString(v, "COMPTA_USERNAME", ""),
			Password: getString(v, "COMPTA_PASSWORD", ""),
		},
	}

	if err := cfg.Backend.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate comprueba el modo de backend y sus parámetros mínimos.
func (c BackendConfig) Validate() error {
	switch c.Mode {
	case BackendLocal:
		if c.Local.DataDir == "" || c.Local.DBFile == "" {
			return fmt.Errorf("config: LOCAL_DATA_DIR y LOCAL_DB_FILE son obligatorios en modo local")
		}
	case BackendRemote:
		if c.Remote.BaseURL == "" {
			return fmt.Errorf("config: REMOTE_BASE_URL es obligatorio en modo remoto")
		}
		if c.Remote.TimeoutSeconds <= 0 {
			return fmt.Errorf("config: REMOTE_TIMEOUT_SECONDS debe ser mayor que 0")
		}
	default:
		return fmt.Errorf("config: BACKEND_MODE desconocido %q (local|remote)", c.Mode)
	}
	return nil
}

// defaultDataDir directorio de datos por usuario: <config dir>/BlackWoodsCompta/Data.
func defaultDataDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, "BlackWoodsCompta", "Data")
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
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
