package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/aalvaropc/commonmeta/internal/domain"
	"github.com/aalvaropc/commonmeta/internal/infra/config"
	"github.com/aalvaropc/commonmeta/internal/infra/crossref"
	"github.com/aalvaropc/commonmeta/internal/infra/logger"
	"github.com/aalvaropc/commonmeta/internal/infra/metrics"
)

// appCtx holds what the network-facing commands share.
type appCtx struct {
	cfg     domain.Config
	cfgPath string

	registry *prometheus.Registry
	fetcher  *crossref.Client

	metricsFile string
	closeLog    func() error
}

func loadApp(cmd *cobra.Command, rf *rootFlags) (*appCtx, error) {
	cfg, cfgPath, err := loadConfig(rf.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("base-url") {
		cfg.Upstream.BaseURL = strings.TrimSpace(rf.baseURL)
	}
	if flags.Changed("mailto") {
		cfg.Upstream.Mailto = strings.TrimSpace(rf.mailto)
	}
	if rf.debug {
		cfg.Log.Debug = true
	}
	if strings.TrimSpace(rf.logFile) != "" {
		cfg.Log.Path = strings.TrimSpace(rf.logFile)
	}

	closeLog, err := logger.Setup(logger.Config{
		Path:   cfg.Log.Path,
		Writer: cmd.ErrOrStderr(),
		Debug:  cfg.Log.Debug,
	})
	if err != nil {
		return nil, &domain.OpError{
			Op:   "cli.logger",
			Kind: domain.KindInvalidConfig,
			Path: cfg.Log.Path,
			Err:  err,
		}
	}
	logger.L().Debug("config.loaded", slog.String("path", cfgPath), slog.String("base_url", cfg.Upstream.BaseURL))

	reg := prometheus.NewRegistry()
	return &appCtx{
		cfg:         cfg,
		cfgPath:     cfgPath,
		registry:    reg,
		fetcher:     crossref.NewFromConfig(cfg, crossref.WithMetrics(metrics.NewFetch(reg))),
		metricsFile: strings.TrimSpace(rf.metricsFile),
		closeLog:    closeLog,
	}, nil
}

// loadConfig reads an explicit --config, else the nearest commonmeta.yaml,
// else the defaults.
func loadConfig(explicit string) (domain.Config, string, error) {
	if p := strings.TrimSpace(explicit); p != "" {
		cfg, err := config.Load(p, true)
		return cfg, p, err
	}

	wd, err := os.Getwd()
	if err != nil {
		return domain.DefaultConfig(), "", nil
	}
	found, err := config.Find(wd)
	if err != nil || found == "" {
		return domain.DefaultConfig(), "", nil
	}
	cfg, err := config.Load(found, false)
	return cfg, found, err
}

// Close reports fetch metrics and releases the log file.
func (a *appCtx) Close() error {
	a.reportMetrics()

	var err error
	if a.metricsFile != "" {
		if werr := prometheus.WriteToTextfile(a.metricsFile, a.registry); werr != nil {
			err = fmt.Errorf("write metrics: %w", werr)
		}
	}
	if a.closeLog != nil {
		_ = a.closeLog()
	}
	return err
}

func (a *appCtx) reportMetrics() {
	log := logger.L()
	families, err := a.registry.Gather()
	if err != nil {
		log.Debug("metrics.gather_failed", "error", err.Error())
		return
	}

	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			attrs := []any{"name", mf.GetName()}
			for _, lp := range m.GetLabel() {
				attrs = append(attrs, lp.GetName(), lp.GetValue())
			}
			switch {
			case m.GetCounter() != nil:
				attrs = append(attrs, "value", m.GetCounter().GetValue())
			case m.GetHistogram() != nil:
				attrs = append(attrs, "count", m.GetHistogram().GetSampleCount(), "sum", m.GetHistogram().GetSampleSum())
			}
			log.Debug("metrics.summary", attrs...)
		}
	}
}
