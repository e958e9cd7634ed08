package cli

import (
	"fmt"
	"os"

	"dna-sequence-pro/internal/app"
	"dna-sequence-pro/internal/config"
	"dna-sequence-pro/internal/logger"
	"dna-sequence-pro/internal/models"

	"github.com/spf13/cobra"
)

// Version is stamped at build time with -ldflags.
var Version = "1.0.0"

// ExecuteApp runs the sequence window. It is also the body of the entry
// source the packager generates.
func ExecuteApp() {
	if err := newAppCmd(runWindow).Execute(); err != nil {
		os.Exit(1)
	}
}

type windowRunner func(settings models.WindowSettings, log logger.Logger) error

func runWindow(settings models.WindowSettings, log logger.Logger) error {
	return app.NewApplication(settings, log).Run()
}

func newAppCmd(run windowRunner) *cobra.Command {
	var configFile string

	v := config.New("")

	cmd := &cobra.Command{
		Use:          "dna-sequence-pro",
		Short:        "Reverse complement nucleotide sequences in a desktop window",
		Version:      Version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if configFile != "" {
				v.SetConfigFile(configFile)
			}

			c, err := config.Load(v)
			if err != nil {
				return err
			}

			level, err := logger.ParseLevel(c.Log.Level)
			if err != nil {
				return fmt.Errorf("log.level: %w", err)
			}
			log := logger.New(cmd.ErrOrStderr(), level, c.Log.JSON)

			return run(models.WindowSettingsFromConfig(c), log)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configFile, "config", "", "config file (default ./"+config.Name+".yaml)")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.Bool("json-logs", false, "emit JSON log lines")
	flags.String("appearance", "system", "appearance mode: system, light, dark")
	flags.String("color-theme", "blue", "color theme: blue, green, dark-blue")

	_ = v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = v.BindPFlag("log.json", flags.Lookup("json-logs"))
	_ = v.BindPFlag("appearance.mode", flags.Lookup("appearance"))
	_ = v.BindPFlag("appearance.color_theme", flags.Lookup("color-theme"))

	return cmd
}
