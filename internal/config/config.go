package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const defaultPort = "8080"

type Config struct {
	Env         string
	Port        string
	LogLevel    string
	StrictIFSC  bool
	LookupDelay time.Duration
}

// New reads the process environment. Outside prod a .env file in the
// working directory is loaded first; variables already set win.
func New() *Config {
	env := os.Getenv("ENV")
	if env != "prod" {
		_ = godotenv.Load()
	}

	return &Config{
		Env:         env,
		Port:        getOrDefault("PORT", defaultPort),
		LogLevel:    os.Getenv("LOGLEVEL"),
		StrictIFSC:  getBool("STRICTIFSC"),
		LookupDelay: getDuration("LOOKUPDELAY"),
	}
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func getOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}

// invalid or negative durations disable the delay
func getDuration(key string) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d < 0 {
		return 0
	}
	return d
}
