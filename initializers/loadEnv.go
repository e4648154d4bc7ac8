package initializers

import (
	"log"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from the .env file. A missing file is
// fine in deployments where the environment is set by the supervisor.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment.")
	}
}
