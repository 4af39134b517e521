package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/datausa/datausa-go/datausa"
	"github.com/datausa/datausa-go/datausa/logger"
)

var (
	configPath string
	cfg        *datausa.Config
)

var rootCMD = &cobra.Command{
	Use:           "datausa",
	Short:         "Census statistics schema and filter tooling",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := datausa.LoadConfig(configPath)
		switch {
		case err == nil:
			cfg = loaded
		case errors.Is(err, fs.ErrNotExist) && !cmd.Flags().Changed("config"):
			cfg = datausa.DefaultConfig()
		default:
			return err
		}

		slog.SetDefault(logger.New("datausa", cfg.Log.Format, cfg.Log.Level, cfg.Log.AddSource, cmd.ErrOrStderr()))
		return nil
	},
}

func init() {
	rootCMD.PersistentFlags().StringVar(&configPath, "config", "config.toml", "path to config")
	rootCMD.AddCommand(tablesCMD, filterCMD, reflectCMD, initSchemaCMD, queryCMD)
}

// Execute runs the command line and returns the process exit code.
func Execute(version, commit string) int {
	rootCMD.Version = fmt.Sprintf("%s (%s)", version, commit)

	start := time.Now()
	err := rootCMD.ExecuteContext(context.Background())
	if err != nil {
		logger.LogCommand(commandName(os.Args), time.Since(start), err)
		return 1
	}
	return 0
}

func commandName(args []string) string {
	if len(args) > 1 {
		return args[1]
	}
	return rootCMD.Use
}
