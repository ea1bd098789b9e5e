package dotenv

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Load подгружает переменные из файлов (по умолчанию .env), не перетирая уже заданные в окружении.
func Load(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		return fmt.Errorf("load env files %v: %w", paths, err)
	}
	return nil
}

// ApplyFlags позволяет переопределить часть окружения флагами командной строки.
func ApplyFlags(args []string) error {
	fs := flag.NewFlagSet("service", flag.ContinueOnError)

	portFlag := fs.String("port", "", "Server port (overrides PORT environment variable)")
	rosterFlag := fs.String("roster", "", "Courier roster source: static or postgres (overrides ROSTER_SOURCE)")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	overrides := map[string]string{
		"PORT":          *portFlag,
		"ROSTER_SOURCE": *rosterFlag,
	}
	for key, value := range overrides {
		if value == "" {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("failed to set %s environment variable: %w", key, err)
		}
	}
	return nil
}
