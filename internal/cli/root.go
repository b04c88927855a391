package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

type rootFlags struct {
	debug       bool
	configPath  string
	logFile     string
	metricsFile string

	baseURL string
	mailto  string
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	os.Exit(ExitCode(err))
}

func newRootCmd() *cobra.Command {
	rf := &rootFlags{}

	cmd := &cobra.Command{
		Use:          "commonmeta",
		Short:        "commonmeta: resolve DOIs to Commonmeta metadata",
		SilenceUsage: true,
	}

	pf := cmd.PersistentFlags()
	pf.BoolVar(&rf.debug, "debug", false, "enable verbose logging (stderr unless a log file is set)")
	pf.StringVar(&rf.configPath, "config", "", "path to commonmeta.yaml (default: searched upward from the working directory)")
	pf.StringVar(&rf.logFile, "log-file", "", "write JSON logs to this file")
	pf.StringVar(&rf.metricsFile, "metrics-file", "", "write upstream fetch metrics in Prometheus text format to this file")
	pf.StringVar(&rf.baseURL, "base-url", "", "Crossref API base URL (overrides config)")
	pf.StringVar(&rf.mailto, "mailto", "", "contact address for the Crossref polite pool (overrides config)")

	cmd.AddCommand(
		convertCmd(rf),
		fetchCmd(rf),
		encodeCmd(),
		decodeCmd(),
		validateCmd(),
		initCmd(rf),
		versionCmd(),
	)
	return cmd
}
