package utils

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const ENV_FILENAME = ".env"

// InitEnvironmentVariables loads the optional .env file from the working
// directory and applies LOG_LEVEL. The pipeline has no required settings, so
// a missing file is fine.
func InitEnvironmentVariables() error {
	if err := godotenv.Load(ENV_FILENAME); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to load %s file: %v", ENV_FILENAME, err)
		}
	}

	level, err := log.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		log.SetLevel(log.InfoLevel)
	} else {
		log.SetLevel(level)
	}

	return nil
}
