package dotenv

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const (
	envFileVariable = "ENV_FILE"
	defaultEnvFile  = ".env"
)

// Load подгружает файл окружения, если он есть. Путь берется из ENV_FILE,
// по умолчанию .env в рабочей директории. Уже выставленные переменные не перезаписываются.
func Load() (bool, error) {
	path := os.Getenv(envFileVariable)
	if path == "" {
		path = defaultEnvFile
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat env file %s: %w", path, err)
	}

	if err := godotenv.Load(path); err != nil {
		return false, fmt.Errorf("load env file %s: %w", path, err)
	}
	return true, nil
}

// OverridePort переносит флаг -port в PORT до чтения конфига.
func OverridePort(args []string) error {
	flags := flag.NewFlagSet("service", flag.ContinueOnError)
	port := flags.String("port", "", "HTTP port, overrides PORT")
	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	if *port == "" {
		return nil
	}
	if err := os.Setenv("PORT", *port); err != nil {
		return fmt.Errorf("set PORT: %w", err)
	}
	return nil
}
