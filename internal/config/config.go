package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr string

	// Lobby limits. MinPlayers and RequireEvenTeams default to the
	// relaxed upstream behavior; tournament rules are MIN_PLAYERS=4
	// with REQUIRE_EVEN_TEAMS=true.
	MaxPlayers       int
	MinPlayers       int
	RequireEvenTeams bool

	// RoomTTL of 0 disables idle-room reaping.
	RoomTTL      time.Duration
	ReapInterval time.Duration
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getenvStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func Load() Config {
	if err := godotenv.Load(); err == nil {
		log.Printf("loaded configuration from .env")
	}
	return Config{
		HTTPAddr:         getenvStr("HTTP_ADDR", ":8080"),
		MaxPlayers:       getenvInt("MAX_PLAYERS", 8),
		MinPlayers:       getenvInt("MIN_PLAYERS", 2),
		RequireEvenTeams: getenvBool("REQUIRE_EVEN_TEAMS", false),
		RoomTTL:          time.Duration(getenvInt("ROOM_TTL_MINUTES", 0)) * time.Minute,
		ReapInterval:     time.Duration(getenvInt("REAP_INTERVAL_SECONDS", 60)) * time.Second,
	}
}
