package cli

import (
	"fmt"
	"os"

	"dna-sequence-pro/internal/logger"
	"dna-sequence-pro/internal/packager"
	"dna-sequence-pro/internal/shutdown"

	"github.com/spf13/cobra"
)

// ExecutePackager builds the desktop bundle. It exits non-zero only when
// the command returns an error; a failed bundler run is reported and
// exits zero.
func ExecutePackager() {
	if err := newPackagerCmd(packager.NewExecRunner()).Execute(); err != nil {
		os.Exit(1)
	}
}

func newPackagerCmd(runner packager.Runner) *cobra.Command {
	var (
		dir      string
		logLevel string
		jsonLogs bool
	)

	cmd := &cobra.Command{
		Use:          "dna-packager",
		Short:        "Package DNA Sequence Pro as a standalone desktop application",
		Version:      Version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			level, err := logger.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("--log-level: %w", err)
			}
			log := logger.New(cmd.ErrOrStderr(), level, jsonLogs)

			mgr := shutdown.NewManager(log)
			stop := mgr.Listen()
			defer stop()
			defer mgr.Shutdown()

			p := packager.New(runner, log, cmd.OutOrStdout(), packager.Options{
				Dir:     dir,
				Version: Version,
			})

			_, err = p.Build(mgr.Context())
			return err
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "module root to build in")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	cmd.Flags().BoolVar(&jsonLogs, "json-logs", false, "emit JSON log lines")

	return cmd
}
