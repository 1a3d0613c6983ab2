package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"

	"github.com/robgonnella/bumpver/cli/commands"
	app_info "github.com/robgonnella/bumpver/internal/app-info"
	"github.com/robgonnella/bumpver/internal/history"
	"github.com/robgonnella/bumpver/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

/**
 * Main entry point for all commands
 * Here we setup environment config via viper
 */

const exitUsage = 64

func setRunTimeConfig() error {
	userCacheDir, err := os.UserCacheDir()

	if err != nil {
		return err
	}

	configDir := path.Join(userCacheDir, app_info.NAME)

	if err := os.MkdirAll(configDir, 0755); err != nil && !errors.Is(err, os.ErrExist) {
		return err
	}

	logFile := path.Join(configDir, app_info.NAME+".log")

	dbFile := path.Join(configDir, app_info.NAME+".db")

	// share run-time config globally using viper
	viper.Set("log-file", logFile)
	viper.Set("config-dir", configDir)
	viper.Set("database-file", dbFile)

	return nil
}

// Entry point for the cli
func main() {
	log := logger.New()

	err := setRunTimeConfig()

	if err != nil {
		log.Fatal().Err(err).Msg("")
	}

	repo, err := history.NewSqliteDatabase()

	if err != nil {
		log.Fatal().Err(err).Msg("")
	}

	ledger := history.NewService(repo)

	// Get the "root" cobra cli command
	cmd := commands.Root(&commands.CommandProps{
		Ledger: ledger,
	})

	// fold flag parse errors into the usage exit status
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return fmt.Errorf("%w: %s", commands.ErrUnknownArgument, err)
	})

	// execute the cobra command and exit with error code if necessary
	err = cmd.ExecuteContext(context.Background())

	if err != nil {
		log.Error().Err(err).Msg("")

		if errors.Is(err, commands.ErrUnknownArgument) {
			os.Exit(exitUsage)
		}

		os.Exit(2)
	}
}
