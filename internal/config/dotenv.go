package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// dotEnvPathVariable overrides the location of the .env file.
const dotEnvPathVariable = "DOTENV_PATH"

// loadDotEnv loads variables from a .env file into the process environment.
// Variables that are already set are not overwritten. A missing file is
// not an error.
func loadDotEnv() error {
	path := os.Getenv(dotEnvPathVariable)
	if path == "" {
		path = ".env"
	}

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading %s: %w", path, err)
	}

	return nil
}
