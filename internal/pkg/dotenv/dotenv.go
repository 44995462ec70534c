package dotenv

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Flag - флаг командной строки, который переопределяет переменную окружения.
type Flag struct {
	Name  string
	Env   string
	Usage string
}

var PortFlag = Flag{Name: "port", Env: "PORT", Usage: "Server port (overrides PORT environment variable)"}

// Load читает .env из рабочей директории и применяет флаги командной строки.
// Отсутствующий .env не ошибка: переменные могут прийти из окружения.
func Load(flags ...Flag) error {
	return LoadArgs(flag.CommandLine, os.Args[1:], ".env", flags...)
}

func LoadArgs(flagSet *flag.FlagSet, args []string, envFile string, flags ...Flag) error {
	if err := godotenv.Load(envFile); err != nil && !isNotExist(err) {
		return fmt.Errorf("load %s: %w", envFile, err)
	}

	values := make([]*string, len(flags))
	for i, f := range flags {
		values[i] = flagSet.String(f.Name, "", f.Usage)
	}
	if err := flagSet.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	for i, f := range flags {
		if *values[i] == "" {
			continue
		}
		if err := os.Setenv(f.Env, *values[i]); err != nil {
			return fmt.Errorf("failed to set %s environment variable: %w", f.Env, err)
		}
	}
	return nil
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
