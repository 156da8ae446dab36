package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	HTTPAddr        string
	CORSAllowOrigin string

	DatabaseURL string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// EventsChannel is the pub/sub channel the record-change
	// notifications arrive on.
	EventsChannel string
	SnapshotTTL   time.Duration

	LogLevel  string
	PrettyLog bool
}

func MustLoad() Config {
	return Config{
		HTTPAddr:        env("HTTP_ADDR", ":8080"),
		CORSAllowOrigin: env("CORS_ALLOW_ORIGIN", ""),
		DatabaseURL:     mustEnv("DATABASE_URL"),
		RedisAddr:       env("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPassword:   env("REDIS_PASSWORD", ""),
		RedisDB:         envInt("REDIS_DB", 0),
		EventsChannel:   env("EVENTS_CHANNEL", "records.changed"),
		SnapshotTTL:     envDuration("SNAPSHOT_TTL", 5*time.Minute),
		LogLevel:        env("LOG_LEVEL", "info"),
		PrettyLog:       envBool("PRETTY_LOG", false),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing env %s", k)
	}
	return v
}

func envInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("env %s: %v", k, err)
	}
	return n
}

func envBool(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Fatalf("env %s: %v", k, err)
	}
	return b
}

func envDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("env %s: %v", k, err)
	}
	return d
}
