package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort            string
	AppEnv             string
	InvoiceDir         string
	PaymentTimeout     time.Duration
	PaymentLatency     time.Duration
	PaymentSuccessRate float64
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:            getEnv("APP_PORT", "5000"),
		AppEnv:             getEnv("APP_ENV", "development"),
		InvoiceDir:         getEnv("INVOICE_DIR", "invoices"),
		PaymentTimeout:     getDuration("PAYMENT_TIMEOUT", 5*time.Second),
		PaymentLatency:     getDuration("PAYMENT_LATENCY", 1500*time.Millisecond),
		PaymentSuccessRate: getFloat("PAYMENT_SUCCESS_RATE", 0.95),
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

// getFloat parses a ratio in [0, 1]; anything else falls back.
func getFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 || f > 1 {
		return fallback
	}
	return f
}
