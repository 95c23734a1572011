package observability

import (
	"github.com/uptrace/uptrace-go/uptrace"

	"github.com/riskibarqy/tt-league/internal/config"
	"github.com/riskibarqy/tt-league/internal/platform/logging"
)

// startTracing installs the global OpenTelemetry providers. It is off unless
// enabled with a DSN.
func startTracing(cfg config.Config, logger *logging.Logger) (stopFunc, error) {
	if !cfg.UptraceEnabled || cfg.UptraceDSN == "" {
		return nil, nil
	}

	uptrace.ConfigureOpentelemetry(
		uptrace.WithDSN(cfg.UptraceDSN),
		uptrace.WithServiceName(cfg.ServiceName),
		uptrace.WithServiceVersion(cfg.ServiceVersion),
		uptrace.WithDeploymentEnvironment(cfg.AppEnv),
		uptrace.WithLoggingEnabled(cfg.UptraceLogsEnabled),
	)
	logger.Info("uptrace tracing on", "version", cfg.ServiceVersion, "logs", cfg.UptraceLogsEnabled)
	return uptrace.Shutdown, nil
}
