package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr       string
	TurnTimeout    time.Duration
	RoomCodeLength int
}

func getenvStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

// Load reads configuration from the environment, after loading a .env file
// when one is present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		HTTPAddr:       getenvStr("HTTP_ADDR", ":8080"),
		TurnTimeout:    time.Duration(getenvInt("TURN_TIMEOUT_SECONDS", 60)) * time.Second,
		RoomCodeLength: getenvInt("ROOM_CODE_LENGTH", 6),
	}
}
