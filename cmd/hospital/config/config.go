package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/SanteonNL/occupancy/util"
)

// Config holds the settings of the hospital service and its client
type Config struct {
	HospitalName string // Name of the hospital served by the API
	Addr         string // Listen address of the API
	DatabaseURL  string // Postgres URL, empty disables persistence
	LogLevel     zerolog.Level
	APIURL       string // Base URL used by the client
}

const (
	DefaultHospitalName = "Saint Anna"
	DefaultAddr         = ":8080"
	DefaultAPIURL       = "http://localhost:8080"
)

// Load reads envFile (if it exists) into the environment and builds a Config
// from it. Variables already set in the environment win over the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		envPath, err := util.GetAbsolutePath(envFile)
		if err != nil {
			return Config{}, err
		}
		if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", envPath, err)
		}
	}

	level, err := zerolog.ParseLevel(strings.ToLower(getEnv("LOG_LEVEL", "info")))
	if err != nil {
		return Config{}, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	return Config{
		HospitalName: getEnv("HOSPITAL_NAME", DefaultHospitalName),
		Addr:         getEnv("HOSPITAL_ADDR", DefaultAddr),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		LogLevel:     level,
		APIURL:       getEnv("HOSPITAL_API_URL", DefaultAPIURL),
	}, nil
}

// Logger returns a console logger at the configured level
func (c Config) Logger() zerolog.Logger {
	return zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
		w.TimeFormat = time.Kitchen
	})).Level(c.LogLevel).With().Timestamp().Caller().Logger()
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
