package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Env is the process configuration read from the environment.
type Env struct {
	Port      string `envconfig:"API_PORT" default:"8080"`
	Env       string `envconfig:"API_ENV" default:"development"`
	StaticDir string `envconfig:"STATIC_DIR"`
	AssetDir  string `envconfig:"ASSET_DIR" default:"examples/assets"`
	// CORSOrigins is a comma separated allow list; empty allows any origin.
	CORSOrigins string `envconfig:"CORS_ORIGINS"`

	MaxSessions    int           `envconfig:"MAX_SESSIONS" default:"64"`
	StreamInterval time.Duration `envconfig:"STREAM_INTERVAL" default:"250ms"`

	LogLevel      string `envconfig:"LOG_LEVEL" default:"info"`
	LogFile       string `envconfig:"LOG_FILE"`
	LogMaxSize    int    `envconfig:"LOG_MAX_SIZE" default:"100"`
	LogMaxBackups int    `envconfig:"LOG_MAX_BACKUPS" default:"5"`
	LogMaxAge     int    `envconfig:"LOG_MAX_AGE" default:"30"`
	LogCompress   bool   `envconfig:"LOG_COMPRESS" default:"false"`
	LogConsole    bool   `envconfig:"LOG_CONSOLE" default:"true"`
}

// LoadEnv reads an optional .env file and then the process environment.
// Variables already set in the environment win over .env.
func LoadEnv() (Env, error) {
	_ = godotenv.Load()
	var e Env
	if err := envconfig.Process("", &e); err != nil {
		return Env{}, err
	}
	return e, nil
}

func (e Env) IsProduction() bool {
	return strings.EqualFold(e.Env, "production")
}

// AllowedOrigins splits CORSOrigins, dropping blanks.
func (e Env) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(e.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
