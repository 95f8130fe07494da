package dotenv

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Load parses the command line and reads the env file into the process
// environment without overriding variables that are already set. A missing
// file is fine. -port wins over PORT.
func Load() error {
	var (
		portFlag string
		envFile  string
	)
	flag.StringVar(&portFlag, "port", "", "Server port (overrides PORT environment variable)")
	flag.StringVar(&envFile, "env-file", ".env", "Path to the dotenv file")
	flag.Parse()

	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", envFile, err)
	}

	if portFlag != "" {
		if err := os.Setenv("PORT", portFlag); err != nil {
			return fmt.Errorf("failed to set PORT environment variable: %w", err)
		}
	}
	return nil
}
