package config

import (
	"log"

	"github.com/joho/godotenv"
)

// LoadEnvFile loads environment variables from the given file if it exists.
// Missing files are fine; deployment environments set variables directly.
func LoadEnvFile(path string) {
	if err := godotenv.Load(path); err != nil {
		log.Printf("no %s file loaded: %v", path, err)
	}
}
