package cli

import (
	"fmt"
	"os"

	"github.com/op/go-logging"
	"github.com/spf13/cobra"
)

var log = logging.MustGetLogger("salondata")

// Execute runs the salondata CLI.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "salondata",
		Short: "Synthetic hairdresser dataset generator and analyzer",
		Long: `salondata fabricates a deterministic dataset of hairdresser customer
visits and answers the revenue questions the dataset is built for.

Use "generate" to produce a dataset file and "report" to analyze one.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newReportCmd())

	return cmd
}

// initLogger parses the level string and routes go-logging to stdout.
func initLogger(level string) error {
	backend := logging.NewLogBackend(os.Stdout, "", 0)
	format := logging.MustStringFormatter(
		`%{time:2006-01-02 15:04:05} %{level:.5s}     %{message}`,
	)
	formatted := logging.NewBackendFormatter(backend, format)

	leveled := logging.AddModuleLevel(formatted)
	code, err := logging.LogLevel(level)
	if err != nil {
		return err
	}
	leveled.SetLevel(code, "")

	logging.SetBackend(leveled)
	return nil
}
