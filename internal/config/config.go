package config

import (
	"log"
	"os"
	"strconv"

	"github.com/abdelrahman470/Connect-4-Game/internal/domain"
)

// Config is the startup configuration surface. It is read once at
// startup and never mutated afterwards.
type Config struct {
	Port          string
	Rows          int
	Columns       int
	SearchDepth   int
	BotDifficulty string
}

var AppConfig *Config

func LoadConfig() *Config {
	port := GetEnv("PORT", "8080")
	rows := GetEnvAsInt("ROWS", domain.DefaultRows)
	columns := GetEnvAsInt("COLUMNS", domain.DefaultColumns)
	searchDepth := GetEnvAsInt("SEARCH_DEPTH", 4)
	botDifficulty := GetEnv("BOT_DIFFICULTY", "hard")

	// a grid smaller than the winning line length is unplayable
	if rows < domain.ToWin || columns < domain.ToWin {
		log.Printf("Grid %dx%d is too small to connect %d, using default %dx%d",
			rows, columns, domain.ToWin, domain.DefaultRows, domain.DefaultColumns)
		rows = domain.DefaultRows
		columns = domain.DefaultColumns
	}

	if searchDepth < 1 {
		log.Printf("Invalid SEARCH_DEPTH %d, using default: 4", searchDepth)
		searchDepth = 4
	}

	AppConfig = &Config{
		Port:          port,
		Rows:          rows,
		Columns:       columns,
		SearchDepth:   searchDepth,
		BotDifficulty: botDifficulty,
	}

	return AppConfig
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
